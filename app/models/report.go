package models

// Report payload consumed by the financial export engine. The exporters
// treat it as read-only: all aggregation happens in the finance queries,
// all amounts are whole DZD and only get formatted, never converted.

// MonthBreakdown splits the month's totals by origin.
type MonthBreakdown struct {
	StudentIncome    float64 `json:"student_income"`
	ManualIncome     float64 `json:"manual_income"`
	ManualExpenses   float64 `json:"manual_expenses"`
	TeacherEarnings  float64 `json:"teacher_earnings"`
	EmployeeSalaries float64 `json:"employee_salaries"`
}

// MonthSummary is the headline income/expense/net line for one month.
type MonthSummary struct {
	MonthName string         `json:"month_name"`
	Year      int            `json:"year"`
	Income    float64        `json:"income"`
	Expenses  float64        `json:"expenses"`
	Net       float64        `json:"net"`
	Breakdown MonthBreakdown `json:"breakdown"`
}

// TeacherPayoutLine is one teacher's earnings position for the month.
type TeacherPayoutLine struct {
	TeacherName     string  `json:"teacher_name"`
	ClassCount      int     `json:"class_count"`
	TotalStudents   int     `json:"total_students"`
	TotalCalculated float64 `json:"total_calculated"`
	TotalPaid       float64 `json:"total_paid"`
	TotalRemaining  float64 `json:"total_remaining"`
}

// DebtSummary aggregates outstanding student balances.
type DebtSummary struct {
	TotalDebt         float64 `json:"total_debt"`
	NewDebt           float64 `json:"new_debt"`
	StudentCount      int     `json:"student_count"`
	AvgDebtPerStudent float64 `json:"avg_debt_per_student"`
}

// ExpenseCategoryTotal rolls up manual expenses per category.
type ExpenseCategoryTotal struct {
	Category         string  `json:"category"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int     `json:"transaction_count"`
}

// SalaryRoleLine rolls up employee salaries for one role.
type SalaryRoleLine struct {
	Role            string  `json:"role"`
	EmployeeCount   int     `json:"employee_count"`
	TotalCalculated float64 `json:"total_calculated"`
	TotalPaid       float64 `json:"total_paid"`
	TotalRemaining  float64 `json:"total_remaining"`
}

// SalarySummary is the all-roles employee salary rollup.
type SalarySummary struct {
	EmployeeCount   int     `json:"employee_count"`
	TotalCalculated float64 `json:"total_calculated"`
	TotalPaid       float64 `json:"total_paid"`
	TotalRemaining  float64 `json:"total_remaining"`
}

// EmployeeSalaryRollup combines the overall summary with per-role lines.
type EmployeeSalaryRollup struct {
	Summary SalarySummary    `json:"summary"`
	ByRole  []SalaryRoleLine `json:"by_role"`
}

// SchoolMeta carries the report header fields.
type SchoolMeta struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LogoURL     string `json:"logo_url"`
	ReportDate  string `json:"report_date"`
	ReportTime  string `json:"report_time"`
	GeneratedBy string `json:"generated_by"`
	UserRole    string `json:"user_role"`
}

// ReportPayload is the full input to both report renderers. DebtData and
// EmployeeSalaries are optional; absent sections are simply not rendered.
type ReportPayload struct {
	MonthData         MonthSummary           `json:"month_data"`
	TeacherPayouts    []TeacherPayoutLine    `json:"teacher_payouts"`
	DebtData          *DebtSummary           `json:"debt_data,omitempty"`
	ExpenseCategories []ExpenseCategoryTotal `json:"expense_categories,omitempty"`
	EmployeeSalaries  *EmployeeSalaryRollup  `json:"employee_salaries,omitempty"`
}
