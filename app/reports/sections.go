package reports

import (
	"fmt"
	"strconv"

	"skill-snap/app/models"
)

// Section assembly. All derived figures (targets, variances, estimated
// payment counts, category percentages) are computed here and nowhere
// else; both renderers consume the same rows.

const (
	// Management targets: a 20% profit margin on income, and expenses held
	// to 90% of the current actual.
	profitTargetMargin = 0.20
	expenseTargetRatio = 0.90

	// Assumed average payment sizes used to estimate transaction counts
	// when the backend has no real counts for the month. Display aid only.
	avgStudentPayment = 2500.0
	avgManualPayment  = 1000.0
)

const estimateNote = "Payment counts marked (est.) are derived from average payment size, not from transaction records."

// ProfitTarget returns the target net for a month's income.
func ProfitTarget(income float64) float64 {
	return income * profitTargetMargin
}

// ExpenseTarget returns the target expense level for a month's actual.
func ExpenseTarget(expenses float64) float64 {
	return expenses * expenseTargetRatio
}

// BuildDocument assembles the monthly financial report from the payload.
// Optional payload slices (debt data, employee salaries) simply produce no
// section when absent. Chart images are appended after the summary
// sections; pass nil when exporting without charts.
func BuildDocument(p models.ReportPayload, meta models.SchoolMeta, chartImages []Image) Document {
	title := fmt.Sprintf("Financial Report - %s %d", p.MonthData.MonthName, p.MonthData.Year)

	sections := []Section{
		financialSummarySection(p.MonthData),
		detailedSummarySection(p.MonthData),
		monthlyTrendsSection(p.MonthData),
		studentPaymentDetailsSection(p.MonthData),
		breakdownSection(p.MonthData),
	}

	for _, img := range chartImages {
		img := img
		sections = append(sections, Section{Title: img.Title, Image: &img})
	}

	if len(p.TeacherPayouts) > 0 {
		sections = append(sections, teacherPayoutsSection(p.TeacherPayouts))
	}
	if len(p.ExpenseCategories) > 0 {
		sections = append(sections, expenseCategoriesSection(p.ExpenseCategories))
	}
	if p.DebtData != nil {
		sections = append(sections, debtSection(*p.DebtData))
	}
	if p.EmployeeSalaries != nil {
		sections = append(sections, employeeSalariesSection(*p.EmployeeSalaries))
	}

	return Document{Title: title, Meta: meta, Sections: sections}
}

func financialSummarySection(m models.MonthSummary) Section {
	return Section{
		Title: "Financial Summary",
		Metrics: []Metric{
			{Label: "Total Income", Value: FormatDZD(m.Income)},
			{Label: "Total Expenses", Value: FormatDZD(m.Expenses)},
			{Label: "Net Balance", Value: FormatDZD(m.Net)},
		},
	}
}

func detailedSummarySection(m models.MonthSummary) Section {
	incomePct := 100.0
	expensePct := sharePct(m.Expenses, m.Income)
	netPct := sharePct(m.Net, m.Income)

	netTarget := ProfitTarget(m.Income)
	expTarget := ExpenseTarget(m.Expenses)

	rows := [][]string{
		{"Income", FormatDZD(m.Income), FormatPercent(incomePct), FormatDZD(m.Income), FormatDZD(0), "Actual"},
		{"Expenses", FormatDZD(m.Expenses), FormatPercent(expensePct), FormatDZD(expTarget), FormatDZD(m.Expenses - expTarget), expenseStatus(m.Expenses, expTarget)},
		{"Net Balance", FormatDZD(m.Net), FormatPercent(netPct), FormatDZD(netTarget), FormatDZD(m.Net - netTarget), netStatus(m.Net, netTarget)},
	}

	return Section{
		Title: "Detailed Summary",
		Table: &Table{
			Columns: []Column{
				{Title: "Item", WidthPct: 20, Align: AlignLeft},
				{Title: "Actual", WidthPct: 18, Align: AlignRight},
				{Title: "% of Income", WidthPct: 14, Align: AlignRight},
				{Title: "Target", WidthPct: 18, Align: AlignRight},
				{Title: "Variance", WidthPct: 18, Align: AlignRight},
				{Title: "Status", WidthPct: 12, Align: AlignCenter},
			},
			Rows:        rows,
			OuterBorder: true,
		},
	}
}

func monthlyTrendsSection(m models.MonthSummary) Section {
	netTarget := ProfitTarget(m.Income)
	expTarget := ExpenseTarget(m.Expenses)

	rows := [][]string{
		{"Income", FormatDZD(m.Income), FormatDZD(m.Income), FormatDZD(0)},
		{"Expenses", FormatDZD(m.Expenses), FormatDZD(expTarget), FormatDZD(m.Expenses - expTarget)},
		{"Net Balance", FormatDZD(m.Net), FormatDZD(netTarget), FormatDZD(m.Net - netTarget)},
	}

	return Section{
		Title: "Monthly Trends",
		Table: &Table{
			Columns: []Column{
				{Title: "Metric", WidthPct: 28, Align: AlignLeft},
				{Title: "Actual", WidthPct: 24, Align: AlignRight},
				{Title: "Target", WidthPct: 24, Align: AlignRight},
				{Title: "Variance", WidthPct: 24, Align: AlignRight},
			},
			Rows:        rows,
			OuterBorder: true,
		},
	}
}

func studentPaymentDetailsSection(m models.MonthSummary) Section {
	studentCount := estimateCount(m.Breakdown.StudentIncome, avgStudentPayment)
	manualCount := estimateCount(m.Breakdown.ManualIncome, avgManualPayment)

	rows := [][]string{
		{"Student Payments", FormatDZD(m.Breakdown.StudentIncome), fmt.Sprintf("~%d (est.)", studentCount)},
		{"Manual Income", FormatDZD(m.Breakdown.ManualIncome), fmt.Sprintf("~%d (est.)", manualCount)},
	}

	return Section{
		Title: "Student Payment Details",
		Table: &Table{
			Columns: []Column{
				{Title: "Source", WidthPct: 40, Align: AlignLeft},
				{Title: "Amount", WidthPct: 30, Align: AlignRight},
				{Title: "Payments", WidthPct: 30, Align: AlignRight},
			},
			Rows:        rows,
			OuterBorder: true,
		},
		Note: estimateNote,
	}
}

func breakdownSection(m models.MonthSummary) Section {
	b := m.Breakdown
	rows := [][]string{
		{"Student Income", FormatDZD(b.StudentIncome), "Income"},
		{"Manual Income", FormatDZD(b.ManualIncome), "Income"},
		{"Manual Expenses", FormatDZD(b.ManualExpenses), "Expense"},
		{"Teacher Earnings", FormatDZD(b.TeacherEarnings), "Expense"},
		{"Employee Salaries", FormatDZD(b.EmployeeSalaries), "Expense"},
	}

	return Section{
		Title: "Income & Expense Breakdown",
		Table: &Table{
			Columns: []Column{
				{Title: "Item", WidthPct: 44, Align: AlignLeft},
				{Title: "Amount", WidthPct: 32, Align: AlignRight},
				{Title: "Type", WidthPct: 24, Align: AlignCenter},
			},
			Rows:        rows,
			OuterBorder: true,
		},
	}
}

func teacherPayoutsSection(lines []models.TeacherPayoutLine) Section {
	rows := make([][]string, 0, len(lines))
	for _, t := range lines {
		rows = append(rows, []string{
			t.TeacherName,
			strconv.Itoa(t.ClassCount),
			strconv.Itoa(t.TotalStudents),
			FormatDZD(t.TotalCalculated),
			FormatDZD(t.TotalPaid),
			FormatDZD(t.TotalRemaining),
		})
	}

	return Section{
		Title: "Teacher Payouts",
		Table: &Table{
			Columns: []Column{
				{Title: "Teacher", WidthPct: 28, Align: AlignLeft},
				{Title: "Classes", WidthPct: 10, Align: AlignCenter},
				{Title: "Students", WidthPct: 12, Align: AlignCenter},
				{Title: "Calculated", WidthPct: 18, Align: AlignRight},
				{Title: "Paid", WidthPct: 16, Align: AlignRight},
				{Title: "Remaining", WidthPct: 16, Align: AlignRight},
			},
			Rows:        rows,
			OuterBorder: true,
		},
	}
}

func expenseCategoriesSection(cats []models.ExpenseCategoryTotal) Section {
	var total float64
	for _, c := range cats {
		total += c.TotalAmount
	}

	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{
			c.Category,
			FormatDZD(c.TotalAmount),
			strconv.Itoa(c.TransactionCount),
			FormatPercent(sharePct(c.TotalAmount, total)),
		})
	}

	return Section{
		Title: "Expense Categories",
		Table: &Table{
			Columns: []Column{
				{Title: "Category", WidthPct: 40, Align: AlignLeft},
				{Title: "Amount", WidthPct: 24, Align: AlignRight},
				{Title: "Transactions", WidthPct: 18, Align: AlignCenter},
				{Title: "Share", WidthPct: 18, Align: AlignRight},
			},
			Rows:        rows,
			OuterBorder: true,
		},
	}
}

func debtSection(d models.DebtSummary) Section {
	return Section{
		Title: "Debt Analysis",
		Metrics: []Metric{
			{Label: "Total Debt", Value: FormatDZD(d.TotalDebt)},
			{Label: "New Debt This Month", Value: FormatDZD(d.NewDebt)},
			{Label: "Students With Debt", Value: strconv.Itoa(d.StudentCount)},
			{Label: "Avg Debt / Student", Value: FormatDZD(d.AvgDebtPerStudent)},
		},
	}
}

func employeeSalariesSection(r models.EmployeeSalaryRollup) Section {
	rows := make([][]string, 0, len(r.ByRole))
	for _, line := range r.ByRole {
		rows = append(rows, []string{
			line.Role,
			strconv.Itoa(line.EmployeeCount),
			FormatDZD(line.TotalCalculated),
			FormatDZD(line.TotalPaid),
			FormatDZD(line.TotalRemaining),
		})
	}

	s := Section{
		Title: "Employee Salaries",
		Metrics: []Metric{
			{Label: "Employees", Value: strconv.Itoa(r.Summary.EmployeeCount)},
			{Label: "Calculated", Value: FormatDZD(r.Summary.TotalCalculated)},
			{Label: "Paid", Value: FormatDZD(r.Summary.TotalPaid)},
			{Label: "Remaining", Value: FormatDZD(r.Summary.TotalRemaining)},
		},
	}

	if len(rows) > 0 {
		s.Table = &Table{
			Columns: []Column{
				{Title: "Role", WidthPct: 32, Align: AlignLeft},
				{Title: "Employees", WidthPct: 14, Align: AlignCenter},
				{Title: "Calculated", WidthPct: 18, Align: AlignRight},
				{Title: "Paid", WidthPct: 18, Align: AlignRight},
				{Title: "Remaining", WidthPct: 18, Align: AlignRight},
			},
			Rows:        rows,
			OuterBorder: true,
		}
	}
	return s
}

func sharePct(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

func estimateCount(amount, avgPayment float64) int {
	if avgPayment <= 0 || amount <= 0 {
		return 0
	}
	return int(amount/avgPayment + 0.5)
}

func expenseStatus(actual, target float64) string {
	if actual <= target {
		return "Within Target"
	}
	return "Over Target"
}

func netStatus(actual, target float64) string {
	if actual >= target {
		return "On Track"
	}
	return "Below Target"
}
