package employees

import (
	"database/sql"
	"fmt"
	"log"

	"skill-snap/app/models"
)

// InitEmployeesDB ensures the employees and salary_payments tables exist.
func InitEmployeesDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID REFERENCES schools(id) ON DELETE CASCADE,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			role VARCHAR(50) NOT NULL,
			phone VARCHAR(50),
			email VARCHAR(255),
			monthly_salary BIGINT NOT NULL DEFAULT 0,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS salary_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			amount BIGINT NOT NULL,
			month INTEGER NOT NULL,
			year INTEGER NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'completed',
			paid_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			notes TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_salary_payments_employee_id ON salary_payments(employee_id)`,
		`CREATE INDEX IF NOT EXISTS idx_salary_payments_year_month ON salary_payments(year, month)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating employees tables: %v", err)
			return err
		}
	}
	return nil
}

func GetAllEmployees(db *sql.DB) ([]*models.Employee, error) {
	query := `SELECT id, school_id, first_name, last_name, role, phone, email,
			  monthly_salary, is_active, created_at, updated_at
			  FROM employees
			  WHERE is_active = true
			  ORDER BY first_name, last_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Employee{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		e := &models.Employee{}
		err := rows.Scan(&e.ID, &e.SchoolID, &e.FirstName, &e.LastName, &e.Role,
			&e.Phone, &e.Email, &e.MonthlySalary, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

func CreateEmployee(db *sql.DB, e *models.Employee) error {
	query := `INSERT INTO employees (school_id, first_name, last_name, role, phone, email, monthly_salary, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, e.SchoolID, e.FirstName, e.LastName, e.Role, e.Phone, e.Email, e.MonthlySalary).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func UpdateEmployee(db *sql.DB, e *models.Employee) error {
	query := `UPDATE employees
			  SET first_name = $1, last_name = $2, role = $3, phone = $4, email = $5, monthly_salary = $6, updated_at = NOW()
			  WHERE id = $7 AND is_active = true`

	result, err := db.Exec(query, e.FirstName, e.LastName, e.Role, e.Phone, e.Email, e.MonthlySalary, e.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("employee not found")
	}
	return nil
}

func DeleteEmployee(db *sql.DB, id string) error {
	query := `UPDATE employees SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// Salary payment queries

func GetSalaryPayments(db *sql.DB, year, month int) ([]*models.SalaryPayment, error) {
	query := `SELECT sp.id, sp.employee_id, sp.amount, sp.month, sp.year, sp.status, sp.paid_at, sp.notes,
			  e.id, e.first_name, e.last_name, e.role
			  FROM salary_payments sp
			  JOIN employees e ON sp.employee_id = e.id
			  WHERE sp.year = $1 AND sp.month = $2
			  ORDER BY sp.paid_at DESC`

	rows, err := db.Query(query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.SalaryPayment{}
	for rows.Next() {
		p := &models.SalaryPayment{Employee: &models.Employee{}}
		err := rows.Scan(&p.ID, &p.EmployeeID, &p.Amount, &p.Month, &p.Year, &p.Status, &p.PaidAt, &p.Notes,
			&p.Employee.ID, &p.Employee.FirstName, &p.Employee.LastName, &p.Employee.Role)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

func CreateSalaryPayment(db *sql.DB, p *models.SalaryPayment) error {
	query := `INSERT INTO salary_payments (employee_id, amount, month, year, status, paid_at, notes)
			  VALUES ($1, $2, $3, $4, $5, NOW(), $6)
			  RETURNING id, paid_at`

	return db.QueryRow(query, p.EmployeeID, p.Amount, p.Month, p.Year, p.Status, p.Notes).
		Scan(&p.ID, &p.PaidAt)
}

// CancelSalaryPayment flips a payment to cancelled so it no longer counts
// toward the month's paid totals.
func CancelSalaryPayment(db *sql.DB, id string) error {
	query := `UPDATE salary_payments SET status = $1 WHERE id = $2 AND status != $1`
	result, err := db.Exec(query, models.PaymentCancelled, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("salary payment not found")
	}
	return nil
}
