package database

import (
	"database/sql"
	"log"
	"time"

	"skill-snap/app/models"
)

// Finance aggregation queries. These produce the report payload the
// export engine consumes; the exporters themselves never aggregate.

func monthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

// GetMonthSummary computes the headline income/expense/net line and its
// breakdown for one month. Amounts come back as float64 whole DZD.
func GetMonthSummary(db *sql.DB, year, month int) (models.MonthSummary, error) {
	start, end := monthWindow(year, month)
	s := models.MonthSummary{
		MonthName: start.Month().String(),
		Year:      year,
	}

	query := `SELECT
		COALESCE((SELECT SUM(amount) FROM student_payments WHERE date >= $1 AND date < $2), 0),
		COALESCE((SELECT SUM(amount) FROM incomes WHERE date >= $1 AND date < $2), 0),
		COALESCE((SELECT SUM(amount) FROM expenses WHERE date >= $1 AND date < $2 AND deleted_at IS NULL), 0),
		COALESCE((SELECT SUM(tp.amount) FROM teacher_payments tp WHERE tp.year = $3 AND tp.month = $4 AND tp.status = 'completed'), 0),
		COALESCE((SELECT SUM(sp.amount) FROM salary_payments sp WHERE sp.year = $3 AND sp.month = $4 AND sp.status = 'completed'), 0)`

	var studentIncome, manualIncome, manualExpenses, teacherEarnings, employeeSalaries int64
	err := db.QueryRow(query, start, end, year, month).Scan(
		&studentIncome, &manualIncome, &manualExpenses, &teacherEarnings, &employeeSalaries,
	)
	if err != nil {
		return s, err
	}

	s.Breakdown = models.MonthBreakdown{
		StudentIncome:    float64(studentIncome),
		ManualIncome:     float64(manualIncome),
		ManualExpenses:   float64(manualExpenses),
		TeacherEarnings:  float64(teacherEarnings),
		EmployeeSalaries: float64(employeeSalaries),
	}
	s.Income = s.Breakdown.StudentIncome + s.Breakdown.ManualIncome
	s.Expenses = s.Breakdown.ManualExpenses + s.Breakdown.TeacherEarnings + s.Breakdown.EmployeeSalaries
	s.Net = s.Income - s.Expenses
	return s, nil
}

// GetTeacherPayouts rolls up each teacher's calculated share, paid amount
// and remaining balance for the month.
func GetTeacherPayouts(db *sql.DB, year, month int) ([]models.TeacherPayoutLine, error) {
	start, end := monthWindow(year, month)

	query := `SELECT t.first_name || ' ' || t.last_name,
			  t.class_count, t.total_students,
			  COALESCE(e.earned, 0), COALESCE(p.paid, 0)
			  FROM teachers t
			  LEFT JOIN (
				  SELECT teacher_id, SUM(amount * share / 100.0) AS earned
				  FROM (
					  SELECT sp.teacher_id, sp.amount, t2.share_percent AS share
					  FROM student_payments sp
					  JOIN teachers t2 ON sp.teacher_id = t2.id
					  WHERE sp.date >= $1 AND sp.date < $2
				  ) x GROUP BY teacher_id
			  ) e ON t.id = e.teacher_id
			  LEFT JOIN (
				  SELECT teacher_id, SUM(amount) AS paid
				  FROM teacher_payments
				  WHERE year = $3 AND month = $4 AND status = 'completed'
				  GROUP BY teacher_id
			  ) p ON t.id = p.teacher_id
			  WHERE t.is_active = true
			  AND (COALESCE(e.earned, 0) > 0 OR COALESCE(p.paid, 0) > 0)
			  ORDER BY t.first_name, t.last_name`

	rows, err := db.Query(query, start, end, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payouts := []models.TeacherPayoutLine{}
	for rows.Next() {
		var line models.TeacherPayoutLine
		var earned, paid float64
		if err := rows.Scan(&line.TeacherName, &line.ClassCount, &line.TotalStudents, &earned, &paid); err != nil {
			log.Printf("Error scanning teacher payout row: %v", err)
			continue
		}
		line.TotalCalculated = earned
		line.TotalPaid = paid
		line.TotalRemaining = earned - paid
		payouts = append(payouts, line)
	}
	return payouts, rows.Err()
}

// GetDebtSummary aggregates unsettled student debts; NewDebt counts only
// debts incurred inside the month window.
func GetDebtSummary(db *sql.DB, year, month int) (*models.DebtSummary, error) {
	start, end := monthWindow(year, month)

	query := `SELECT
		COALESCE(SUM(amount), 0),
		COALESCE(SUM(CASE WHEN incurred_at >= $1 AND incurred_at < $2 THEN amount ELSE 0 END), 0),
		COUNT(DISTINCT student_name)
		FROM debts WHERE is_settled = false`

	var total, fresh int64
	var students int
	if err := db.QueryRow(query, start, end).Scan(&total, &fresh, &students); err != nil {
		return nil, err
	}

	d := &models.DebtSummary{
		TotalDebt:    float64(total),
		NewDebt:      float64(fresh),
		StudentCount: students,
	}
	if students > 0 {
		d.AvgDebtPerStudent = d.TotalDebt / float64(students)
	}
	return d, nil
}

// GetExpenseCategoryTotals rolls up the month's manual expenses per
// category.
func GetExpenseCategoryTotals(db *sql.DB, year, month int) ([]models.ExpenseCategoryTotal, error) {
	start, end := monthWindow(year, month)

	query := `SELECT c.name, COALESCE(SUM(e.amount), 0), COUNT(e.id)
			  FROM expenses e
			  JOIN categories c ON e.category_id = c.id
			  WHERE e.date >= $1 AND e.date < $2 AND e.deleted_at IS NULL
			  GROUP BY c.name
			  ORDER BY SUM(e.amount) DESC`

	rows, err := db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []models.ExpenseCategoryTotal{}
	for rows.Next() {
		var t models.ExpenseCategoryTotal
		var amount int64
		if err := rows.Scan(&t.Category, &amount, &t.TransactionCount); err != nil {
			log.Printf("Error scanning expense category row: %v", err)
			continue
		}
		t.TotalAmount = float64(amount)
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// GetEmployeeSalaryRollup combines the all-staff salary position with a
// per-role breakdown for the month.
func GetEmployeeSalaryRollup(db *sql.DB, year, month int) (*models.EmployeeSalaryRollup, error) {
	query := `SELECT e.role, COUNT(DISTINCT e.id),
			  COALESCE(SUM(e.monthly_salary), 0),
			  COALESCE(SUM(p.paid), 0)
			  FROM employees e
			  LEFT JOIN (
				  SELECT sp.employee_id, SUM(sp.amount) AS paid
				  FROM salary_payments sp
				  WHERE sp.year = $1 AND sp.month = $2 AND sp.status = 'completed'
				  GROUP BY sp.employee_id
			  ) p ON e.id = p.employee_id
			  WHERE e.is_active = true
			  GROUP BY e.role
			  ORDER BY e.role`

	rows, err := db.Query(query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rollup := &models.EmployeeSalaryRollup{}
	for rows.Next() {
		var line models.SalaryRoleLine
		var calculated, paid int64
		if err := rows.Scan(&line.Role, &line.EmployeeCount, &calculated, &paid); err != nil {
			log.Printf("Error scanning salary rollup row: %v", err)
			continue
		}
		line.TotalCalculated = float64(calculated)
		line.TotalPaid = float64(paid)
		line.TotalRemaining = line.TotalCalculated - line.TotalPaid

		rollup.ByRole = append(rollup.ByRole, line)
		rollup.Summary.EmployeeCount += line.EmployeeCount
		rollup.Summary.TotalCalculated += line.TotalCalculated
		rollup.Summary.TotalPaid += line.TotalPaid
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rollup.Summary.TotalRemaining = rollup.Summary.TotalCalculated - rollup.Summary.TotalPaid
	return rollup, nil
}

// GetReportPayload gathers every slice of the monthly report in one call.
// Optional slices degrade to absent rather than failing the whole export.
func GetReportPayload(db *sql.DB, year, month int) (models.ReportPayload, error) {
	payload := models.ReportPayload{}

	summary, err := GetMonthSummary(db, year, month)
	if err != nil {
		return payload, err
	}
	payload.MonthData = summary

	if payouts, err := GetTeacherPayouts(db, year, month); err != nil {
		log.Printf("Error loading teacher payouts: %v", err)
	} else {
		payload.TeacherPayouts = payouts
	}
	if debt, err := GetDebtSummary(db, year, month); err != nil {
		log.Printf("Error loading debt summary: %v", err)
	} else {
		payload.DebtData = debt
	}
	if cats, err := GetExpenseCategoryTotals(db, year, month); err != nil {
		log.Printf("Error loading expense categories: %v", err)
	} else {
		payload.ExpenseCategories = cats
	}
	if salaries, err := GetEmployeeSalaryRollup(db, year, month); err != nil {
		log.Printf("Error loading employee salaries: %v", err)
	} else {
		payload.EmployeeSalaries = salaries
	}

	return payload, nil
}
