package reports

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportMonthlyPDF(t *testing.T) {
	result, err := ExportMonthly(decemberPayload(), testMeta())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Fallback)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "financial-analytics-report-2024-december.pdf", result.Filename)
	assert.True(t, bytes.HasPrefix(result.Data, []byte("%PDF")))
}

func TestExportMonthlyEmptyOptionalData(t *testing.T) {
	p := decemberPayload()
	p.TeacherPayouts = nil
	p.ExpenseCategories = nil
	p.DebtData = nil
	p.EmployeeSalaries = nil

	result, err := ExportMonthly(p, testMeta())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(result.Data, []byte("%PDF")))
}

func TestRenderChartImagesBestEffort(t *testing.T) {
	images := renderChartImages(decemberPayload())

	// Income chart always renders, category chart renders when categories
	// are present.
	require.Len(t, images, 2)
	for _, img := range images {
		assert.NotEmpty(t, img.Title)
		assert.Contains(t, img.DataURL, "data:image/png;base64,")
		assert.Equal(t, 150.0, img.Width)
		assert.Equal(t, 85.0, img.Height)
	}
}

func TestRenderChartImagesWithoutCategories(t *testing.T) {
	p := decemberPayload()
	p.ExpenseCategories = nil

	images := renderChartImages(p)
	require.Len(t, images, 1)
	assert.Equal(t, "Income vs Expenses", images[0].Title)
}
