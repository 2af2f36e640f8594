package reports

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-snap/app/models"
)

func decemberPayload() models.ReportPayload {
	return models.ReportPayload{
		MonthData: models.MonthSummary{
			MonthName: "December",
			Year:      2024,
			Income:    100000,
			Expenses:  80000,
			Net:       20000,
			Breakdown: models.MonthBreakdown{
				StudentIncome:    75000,
				ManualIncome:     25000,
				ManualExpenses:   30000,
				TeacherEarnings:  35000,
				EmployeeSalaries: 15000,
			},
		},
		TeacherPayouts: []models.TeacherPayoutLine{
			{TeacherName: "John Doe", ClassCount: 3, TotalStudents: 42, TotalCalculated: 15000, TotalPaid: 10000, TotalRemaining: 5000},
			{TeacherName: "Amina Benali", ClassCount: 2, TotalStudents: 28, TotalCalculated: 20000, TotalPaid: 20000, TotalRemaining: 0},
		},
		ExpenseCategories: []models.ExpenseCategoryTotal{
			{Category: "Rent", TotalAmount: 20000, TransactionCount: 1},
			{Category: "Utilities", TotalAmount: 6000, TransactionCount: 3},
			{Category: "Supplies", TotalAmount: 4000, TransactionCount: 5},
		},
		DebtData: &models.DebtSummary{
			TotalDebt: 12000, NewDebt: 4000, StudentCount: 4, AvgDebtPerStudent: 3000,
		},
		EmployeeSalaries: &models.EmployeeSalaryRollup{
			Summary: models.SalarySummary{EmployeeCount: 3, TotalCalculated: 45000, TotalPaid: 30000, TotalRemaining: 15000},
			ByRole: []models.SalaryRoleLine{
				{Role: "manager", EmployeeCount: 1, TotalCalculated: 25000, TotalPaid: 25000, TotalRemaining: 0},
				{Role: "receptionist", EmployeeCount: 2, TotalCalculated: 20000, TotalPaid: 5000, TotalRemaining: 15000},
			},
		},
	}
}

func sectionByTitle(t *testing.T, doc Document, title string) Section {
	t.Helper()
	for _, s := range doc.Sections {
		if s.Title == title {
			return s
		}
	}
	t.Fatalf("section %q not found", title)
	return Section{}
}

func TestBuildDocumentTitle(t *testing.T) {
	doc := BuildDocument(decemberPayload(), models.SchoolMeta{Name: "Skill Snap Academy"}, nil)
	assert.Contains(t, doc.Title, "December")
	assert.Contains(t, doc.Title, "2024")
	assert.Equal(t, "Skill Snap Academy", doc.Meta.Name)
}

func TestFinancialSummaryMetrics(t *testing.T) {
	doc := BuildDocument(decemberPayload(), models.SchoolMeta{}, nil)
	s := sectionByTitle(t, doc, "Financial Summary")

	require.Len(t, s.Metrics, 3)
	assert.Equal(t, "DA 100,000", s.Metrics[0].Value)
	assert.Equal(t, "DA 80,000", s.Metrics[1].Value)
	assert.Equal(t, "DA 20,000", s.Metrics[2].Value)
}

func TestDetailedSummaryTargets(t *testing.T) {
	doc := BuildDocument(decemberPayload(), models.SchoolMeta{}, nil)
	s := sectionByTitle(t, doc, "Detailed Summary")

	require.NotNil(t, s.Table)
	require.Len(t, s.Table.Rows, 3)

	// Expense target is 90% of actual, net target 20% of income.
	expenses := s.Table.Rows[1]
	assert.Equal(t, "DA 72,000", expenses[3])
	assert.Equal(t, "DA 8,000", expenses[4])
	assert.Equal(t, "Over Target", expenses[5])

	net := s.Table.Rows[2]
	assert.Equal(t, "DA 20,000", net[1])
	assert.Equal(t, "DA 20,000", net[3])
	assert.Equal(t, "DA 0", net[4])
	assert.Equal(t, "On Track", net[5])
}

func TestTeacherPayoutRows(t *testing.T) {
	doc := BuildDocument(decemberPayload(), models.SchoolMeta{}, nil)
	s := sectionByTitle(t, doc, "Teacher Payouts")

	require.NotNil(t, s.Table)
	require.Len(t, s.Table.Columns, 6)
	require.Len(t, s.Table.Rows, 2)

	john := s.Table.Rows[0]
	require.Len(t, john, 6)
	for i, cell := range john {
		assert.NotEmpty(t, cell, "cell %d", i)
	}
	assert.Equal(t, "John Doe", john[0])
	assert.Equal(t, "DA 5,000", john[5])
}

func TestExpenseCategorySharesSumToHundred(t *testing.T) {
	doc := BuildDocument(decemberPayload(), models.SchoolMeta{}, nil)
	s := sectionByTitle(t, doc, "Expense Categories")

	require.NotNil(t, s.Table)
	var sum float64
	for _, row := range s.Table.Rows {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(row[3], "%"), 64)
		require.NoError(t, err)
		sum += pct
	}
	assert.InDelta(t, 100.0, sum, 0.2)
}

func TestStudentPaymentEstimates(t *testing.T) {
	doc := BuildDocument(decemberPayload(), models.SchoolMeta{}, nil)
	s := sectionByTitle(t, doc, "Student Payment Details")

	require.NotNil(t, s.Table)
	// 75,000 / 2,500 = 30 student payments, 25,000 / 1,000 = 25 manual.
	assert.Equal(t, "~30 (est.)", s.Table.Rows[0][2])
	assert.Equal(t, "~25 (est.)", s.Table.Rows[1][2])
	assert.NotEmpty(t, s.Note)
}

func TestOptionalSectionsOmitted(t *testing.T) {
	p := decemberPayload()
	p.TeacherPayouts = nil
	p.ExpenseCategories = nil
	p.DebtData = nil
	p.EmployeeSalaries = nil

	doc := BuildDocument(p, models.SchoolMeta{}, nil)
	for _, s := range doc.Sections {
		assert.NotEqual(t, "Teacher Payouts", s.Title)
		assert.NotEqual(t, "Expense Categories", s.Title)
		assert.NotEqual(t, "Debt Analysis", s.Title)
		assert.NotEqual(t, "Employee Salaries", s.Title)
	}
}

func TestChartImagesBecomeSections(t *testing.T) {
	images := []Image{{Title: "Income vs Expenses", DataURL: "data:image/png;base64,xx", Width: 150, Height: 85}}
	doc := BuildDocument(decemberPayload(), models.SchoolMeta{}, images)

	s := sectionByTitle(t, doc, "Income vs Expenses")
	require.NotNil(t, s.Image)
	assert.Equal(t, 150.0, s.Image.Width)
}

func TestZeroIncomeProducesNoNaN(t *testing.T) {
	p := models.ReportPayload{
		MonthData: models.MonthSummary{MonthName: "January", Year: 2025},
	}
	doc := BuildDocument(p, models.SchoolMeta{}, nil)

	for _, s := range doc.Sections {
		if s.Table == nil {
			continue
		}
		for _, row := range s.Table.Rows {
			for _, cell := range row {
				assert.NotContains(t, cell, "NaN")
				assert.NotContains(t, cell, "Inf")
			}
		}
	}
}

func TestTargetHelpers(t *testing.T) {
	assert.InDelta(t, 20000.0, ProfitTarget(100000), 0.001)
	assert.InDelta(t, 72000.0, ExpenseTarget(80000), 0.001)
}
