package finance

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"skill-snap/app/models"
)

// InitFinanceDB ensures the financial tables exist and seeds the default
// expense categories.
func InitFinanceDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			amount BIGINT NOT NULL,
			date DATE NOT NULL,
			notes TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS incomes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			amount BIGINT NOT NULL,
			date DATE NOT NULL,
			notes TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS student_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_name VARCHAR(255) NOT NULL,
			teacher_id UUID REFERENCES teachers(id) ON DELETE SET NULL,
			amount BIGINT NOT NULL,
			date DATE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS debts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_name VARCHAR(255) NOT NULL,
			amount BIGINT NOT NULL,
			incurred_at DATE NOT NULL DEFAULT NOW(),
			is_settled BOOLEAN DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_category_id ON expenses(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
		`CREATE INDEX IF NOT EXISTS idx_incomes_date ON incomes(date)`,
		`CREATE INDEX IF NOT EXISTS idx_student_payments_date ON student_payments(date)`,
		`CREATE INDEX IF NOT EXISTS idx_student_payments_teacher_id ON student_payments(teacher_id)`,
		`CREATE INDEX IF NOT EXISTS idx_debts_is_settled ON debts(is_settled)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating finance tables: %v", err)
			return err
		}
	}

	seeds := []string{
		`INSERT INTO categories (name, is_active) VALUES
			('Rent', true), ('Utilities', true), ('Supplies', true), ('Maintenance', true)
			ON CONFLICT (name) DO NOTHING`,
	}
	for _, s := range seeds {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Error seeding finance data: %v", err)
		}
	}

	return nil
}

// Income queries

func GetAllIncomes(db *sql.DB) ([]*models.Income, error) {
	query := `SELECT id, title, amount, date, notes, created_at, updated_at
			  FROM incomes
			  ORDER BY date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Income{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		i := &models.Income{}
		err := rows.Scan(&i.ID, &i.Title, &i.Amount, &i.Date, &i.Notes, &i.CreatedAt, &i.UpdatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	return list, nil
}

func CreateIncome(db *sql.DB, i *models.Income) error {
	query := `INSERT INTO incomes (title, amount, date, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, i.Title, i.Amount, i.Date, i.Notes).
		Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

func UpdateIncome(db *sql.DB, i *models.Income) error {
	query := `UPDATE incomes
			  SET title = $1, amount = $2, date = $3, notes = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := db.Exec(query, i.Title, i.Amount, i.Date, i.Notes, i.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("income not found")
	}
	return nil
}

func DeleteIncome(db *sql.DB, id string) error {
	query := `DELETE FROM incomes WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// Expense queries

func GetAllExpenses(db *sql.DB) ([]*models.Expense, error) {
	query := `SELECT e.id, e.category_id, e.title, e.amount, e.date, e.notes,
			  e.created_at, e.updated_at, c.id, c.name
			  FROM expenses e
			  LEFT JOIN categories c ON e.category_id = c.id
			  WHERE e.deleted_at IS NULL
			  ORDER BY e.date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		e := &models.Expense{}
		var catID, catName sql.NullString
		err := rows.Scan(&e.ID, &e.CategoryID, &e.Title, &e.Amount, &e.Date, &e.Notes,
			&e.CreatedAt, &e.UpdatedAt, &catID, &catName)
		if err != nil {
			return nil, err
		}

		if catID.Valid {
			e.Category = &models.Category{
				ID:   catID.String,
				Name: catName.String,
			}
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func CreateExpense(db *sql.DB, e *models.Expense) error {
	query := `INSERT INTO expenses (category_id, title, amount, date, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, e.CategoryID, e.Title, e.Amount, e.Date, e.Notes).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func UpdateExpense(db *sql.DB, e *models.Expense) error {
	query := `UPDATE expenses
			  SET category_id = $1, title = $2, amount = $3, date = $4, notes = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`

	result, err := db.Exec(query, e.CategoryID, e.Title, e.Amount, e.Date, e.Notes, e.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("expense not found")
	}
	return nil
}

func DeleteExpense(db *sql.DB, id string) error {
	query := `UPDATE expenses SET deleted_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// Category queries

func GetAllCategories(db *sql.DB) ([]*models.Category, error) {
	query := `SELECT id, name, is_active, created_at, updated_at
			  FROM categories
			  WHERE deleted_at IS NULL
			  ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		c := &models.Category{}
		err := rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func CreateCategory(db *sql.DB, c *models.Category) error {
	query := `INSERT INTO categories (name, is_active, created_at, updated_at)
			  VALUES ($1, $2, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, c.Name, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func UpdateCategory(db *sql.DB, c *models.Category) error {
	query := `UPDATE categories
			  SET name = $1, is_active = $2, updated_at = NOW()
			  WHERE id = $3 AND deleted_at IS NULL`

	result, err := db.Exec(query, c.Name, c.IsActive, c.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("category not found")
	}
	return nil
}

func DeleteCategory(db *sql.DB, id string) error {
	query := `UPDATE categories SET deleted_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// Student payment queries

func GetStudentPayments(db *sql.DB, year, month int) ([]*models.StudentPayment, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	query := `SELECT id, student_name, teacher_id, amount, date, created_at
			  FROM student_payments
			  WHERE date >= $1 AND date < $2
			  ORDER BY date DESC`

	rows, err := db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.StudentPayment{}
	for rows.Next() {
		p := &models.StudentPayment{}
		err := rows.Scan(&p.ID, &p.StudentName, &p.TeacherID, &p.Amount, &p.Date, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

func CreateStudentPayment(db *sql.DB, p *models.StudentPayment) error {
	query := `INSERT INTO student_payments (student_name, teacher_id, amount, date, created_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, p.StudentName, p.TeacherID, p.Amount, p.Date).
		Scan(&p.ID, &p.CreatedAt)
}

func DeleteStudentPayment(db *sql.DB, id string) error {
	query := `DELETE FROM student_payments WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// Debt queries

func GetAllDebts(db *sql.DB, includeSettled bool) ([]*models.Debt, error) {
	query := `SELECT id, student_name, amount, incurred_at, is_settled, created_at, updated_at
			  FROM debts`
	if !includeSettled {
		query += ` WHERE is_settled = false`
	}
	query += ` ORDER BY incurred_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Debt{}
	for rows.Next() {
		d := &models.Debt{}
		err := rows.Scan(&d.ID, &d.StudentName, &d.Amount, &d.IncurredAt, &d.IsSettled, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, nil
}

func CreateDebt(db *sql.DB, d *models.Debt) error {
	query := `INSERT INTO debts (student_name, amount, incurred_at, is_settled, created_at, updated_at)
			  VALUES ($1, $2, $3, false, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, d.StudentName, d.Amount, d.IncurredAt).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func SettleDebt(db *sql.DB, id string) error {
	query := `UPDATE debts SET is_settled = true, updated_at = NOW() WHERE id = $1 AND is_settled = false`
	result, err := db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("debt not found or already settled")
	}
	return nil
}
