package models

import "time"

// Employee is a non-teaching staff member (manager, receptionist, cleaner...).
type Employee struct {
	ID            string    `json:"id"`
	SchoolID      string    `json:"school_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Role          string    `json:"role"`
	Phone         *string   `json:"phone,omitempty"`
	Email         *string   `json:"email,omitempty"`
	MonthlySalary int64     `json:"monthly_salary"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SalaryPayment records one salary transaction for an employee.
type SalaryPayment struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Amount     int64     `json:"amount"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	Status     string    `json:"status"`
	PaidAt     time.Time `json:"paid_at"`
	Notes      *string   `json:"notes,omitempty"`
	Employee   *Employee `json:"employee,omitempty"`
}
