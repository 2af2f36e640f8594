package teachers

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"skill-snap/app/models"
)

// InitTeachersDB ensures the teachers and teacher_payments tables exist.
func InitTeachersDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS teachers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID REFERENCES schools(id) ON DELETE CASCADE,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(50),
			email VARCHAR(255),
			share_percent NUMERIC(5,2) NOT NULL DEFAULT 50,
			class_count INTEGER NOT NULL DEFAULT 0,
			total_students INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS teacher_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
			amount BIGINT NOT NULL,
			month INTEGER NOT NULL,
			year INTEGER NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'completed',
			paid_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			notes TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_teacher_payments_teacher_id ON teacher_payments(teacher_id)`,
		`CREATE INDEX IF NOT EXISTS idx_teacher_payments_year_month ON teacher_payments(year, month)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating teachers tables: %v", err)
			return err
		}
	}
	return nil
}

func GetAllTeachers(db *sql.DB) ([]*models.Teacher, error) {
	query := `SELECT id, school_id, first_name, last_name, phone, email,
			  share_percent, class_count, total_students, is_active, created_at, updated_at
			  FROM teachers
			  WHERE is_active = true
			  ORDER BY first_name, last_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Teacher{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		t := &models.Teacher{}
		err := rows.Scan(&t.ID, &t.SchoolID, &t.FirstName, &t.LastName, &t.Phone, &t.Email,
			&t.SharePercent, &t.ClassCount, &t.TotalStudents, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, nil
}

func CreateTeacher(db *sql.DB, t *models.Teacher) error {
	query := `INSERT INTO teachers (school_id, first_name, last_name, phone, email, share_percent, class_count, total_students, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, t.SchoolID, t.FirstName, t.LastName, t.Phone, t.Email,
		t.SharePercent, t.ClassCount, t.TotalStudents).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func UpdateTeacher(db *sql.DB, t *models.Teacher) error {
	query := `UPDATE teachers
			  SET first_name = $1, last_name = $2, phone = $3, email = $4,
			      share_percent = $5, class_count = $6, total_students = $7, updated_at = NOW()
			  WHERE id = $8 AND is_active = true`

	result, err := db.Exec(query, t.FirstName, t.LastName, t.Phone, t.Email,
		t.SharePercent, t.ClassCount, t.TotalStudents, t.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("teacher not found")
	}
	return nil
}

func DeleteTeacher(db *sql.DB, id string) error {
	query := `UPDATE teachers SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// GetTeacherEarnings computes a teacher's share of the month's student
// payments and what has already been paid out.
func GetTeacherEarnings(db *sql.DB, teacherID string, year, month int) (earned, paid float64, err error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	query := `SELECT
		COALESCE((SELECT SUM(sp.amount) * t.share_percent / 100.0
			FROM student_payments sp
			WHERE sp.teacher_id = t.id AND sp.date >= $2 AND sp.date < $3), 0),
		COALESCE((SELECT SUM(tp.amount)
			FROM teacher_payments tp
			WHERE tp.teacher_id = t.id AND tp.year = $4 AND tp.month = $5 AND tp.status = 'completed'), 0)
		FROM teachers t WHERE t.id = $1`

	err = db.QueryRow(query, teacherID, start, end, year, month).Scan(&earned, &paid)
	return earned, paid, err
}

// Payout queries

func GetTeacherPayments(db *sql.DB, year, month int) ([]*models.TeacherPayment, error) {
	query := `SELECT tp.id, tp.teacher_id, tp.amount, tp.month, tp.year, tp.status, tp.paid_at, tp.notes,
			  t.id, t.first_name, t.last_name
			  FROM teacher_payments tp
			  JOIN teachers t ON tp.teacher_id = t.id
			  WHERE tp.year = $1 AND tp.month = $2
			  ORDER BY tp.paid_at DESC`

	rows, err := db.Query(query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.TeacherPayment{}
	for rows.Next() {
		p := &models.TeacherPayment{Teacher: &models.Teacher{}}
		err := rows.Scan(&p.ID, &p.TeacherID, &p.Amount, &p.Month, &p.Year, &p.Status, &p.PaidAt, &p.Notes,
			&p.Teacher.ID, &p.Teacher.FirstName, &p.Teacher.LastName)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

func CreateTeacherPayment(db *sql.DB, p *models.TeacherPayment) error {
	query := `INSERT INTO teacher_payments (teacher_id, amount, month, year, status, paid_at, notes)
			  VALUES ($1, $2, $3, $4, $5, NOW(), $6)
			  RETURNING id, paid_at`

	return db.QueryRow(query, p.TeacherID, p.Amount, p.Month, p.Year, p.Status, p.Notes).
		Scan(&p.ID, &p.PaidAt)
}

func CancelTeacherPayment(db *sql.DB, id string) error {
	query := `UPDATE teacher_payments SET status = $1 WHERE id = $2 AND status != $1`
	result, err := db.Exec(query, models.PaymentCancelled, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("teacher payment not found")
	}
	return nil
}
