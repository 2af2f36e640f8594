package models

import "time"

// Teacher gives classes and is paid a percentage of the class income.
type Teacher struct {
	ID            string    `json:"id"`
	SchoolID      string    `json:"school_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         *string   `json:"phone,omitempty"`
	Email         *string   `json:"email,omitempty"`
	SharePercent  float64   `json:"share_percent"`
	ClassCount    int       `json:"class_count"`
	TotalStudents int       `json:"total_students"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TeacherPayment records one payout transaction toward a teacher's earnings.
type TeacherPayment struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacher_id"`
	Amount    int64     `json:"amount"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	Status    string    `json:"status"`
	PaidAt    time.Time `json:"paid_at"`
	Notes     *string   `json:"notes,omitempty"`
	Teacher   *Teacher  `json:"teacher,omitempty"`
}
