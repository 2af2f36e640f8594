package models

import "time"

// PaymentStatus values used by salary and payout transactions.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentCancelled = "cancelled"
)

// Category groups manual expenses (Rent, Utilities, Supplies...).
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expense is a manual expense entry. Amounts are whole DZD.
type Expense struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Title      string    `json:"title"`
	Amount     int64     `json:"amount"`
	Date       time.Time `json:"date"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Category   *Category `json:"category,omitempty"`
}

// Income is a manual income entry outside of student payments.
type Income struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    int64     `json:"amount"`
	Date      time.Time `json:"date"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentPayment is a tuition payment collected from a student.
type StudentPayment struct {
	ID          string    `json:"id"`
	StudentName string    `json:"student_name"`
	TeacherID   *string   `json:"teacher_id,omitempty"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// Debt is an outstanding student balance.
type Debt struct {
	ID          string    `json:"id"`
	StudentName string    `json:"student_name"`
	Amount      int64     `json:"amount"`
	IncurredAt  time.Time `json:"incurred_at"`
	IsSettled   bool      `json:"is_settled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
