package schools

import (
	"database/sql"
	"fmt"
	"log"

	"skill-snap/app/models"
)

// InitSchoolsDB ensures the schools table exists.
func InitSchoolsDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS schools (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			address TEXT,
			phone VARCHAR(50),
			email VARCHAR(255),
			logo_url TEXT,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating schools tables: %v", err)
			return err
		}
	}
	return nil
}

func GetAllSchools(db *sql.DB) ([]*models.School, error) {
	query := `SELECT id, name, address, phone, email, logo_url, is_active, created_at, updated_at
			  FROM schools
			  ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schools := []*models.School{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		s := &models.School{}
		err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.Email,
			&s.LogoURL, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, nil
}

func GetSchoolByID(db *sql.DB, id string) (*models.School, error) {
	query := `SELECT id, name, address, phone, email, logo_url, is_active, created_at, updated_at
			  FROM schools WHERE id = $1`

	s := &models.School{}
	err := db.QueryRow(query, id).Scan(&s.ID, &s.Name, &s.Address, &s.Phone,
		&s.Email, &s.LogoURL, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetActiveSchool returns the first active school, which report exports
// use for the document header.
func GetActiveSchool(db *sql.DB) (*models.School, error) {
	query := `SELECT id, name, address, phone, email, logo_url, is_active, created_at, updated_at
			  FROM schools WHERE is_active = true
			  ORDER BY created_at ASC LIMIT 1`

	s := &models.School{}
	err := db.QueryRow(query).Scan(&s.ID, &s.Name, &s.Address, &s.Phone,
		&s.Email, &s.LogoURL, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateSchool(db *sql.DB, s *models.School) error {
	query := `INSERT INTO schools (name, address, phone, email, logo_url, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, s.Name, s.Address, s.Phone, s.Email, s.LogoURL, s.IsActive).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateSchool(db *sql.DB, s *models.School) error {
	query := `UPDATE schools
			  SET name = $1, address = $2, phone = $3, email = $4, logo_url = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7`

	result, err := db.Exec(query, s.Name, s.Address, s.Phone, s.Email, s.LogoURL, s.IsActive, s.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("school not found")
	}
	return nil
}

func DeleteSchool(db *sql.DB, id string) error {
	query := `UPDATE schools SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}
