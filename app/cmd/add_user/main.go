package main

import (
	"flag"
	"fmt"
	"os"

	"skill-snap/app/config"
	"skill-snap/app/database"
	"skill-snap/app/models"
	"skill-snap/app/routes/auth"
)

// Creates a dashboard account from the command line. Used to bootstrap the
// first admin on a fresh deployment.
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", "admin", "role to assign (admin, manager, finance)")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" {
		fmt.Println("Usage: add_user -email <email> -password <password> -first-name <name> [-last-name <name>] [-role <role>]")
		os.Exit(1)
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  hashed,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	if err := database.AssignRole(db, user.ID, *role); err != nil {
		fmt.Printf("Error assigning role: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s) as %s\n", user.FirstName, user.LastName, user.Email, *role)
}
