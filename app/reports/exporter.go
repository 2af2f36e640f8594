package reports

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"skill-snap/app/models"
)

// Export orchestration. One export builds a fresh chart registry and a
// fresh writer; nothing is shared between invocations and nothing is
// cached. The PDF path is tried first, the HTML/print path is the
// fallback for any PDF failure.

// ExportResult is the finished artifact handed to the HTTP layer.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
	// Fallback is true when the PDF path failed and the result is the
	// printable HTML document instead.
	Fallback bool
}

// ExportMonthly renders the monthly financial report for the payload.
// When the PDF path fails the printable HTML document is returned instead;
// RenderHTML always emits a full document, so an export never fails
// outright.
func ExportMonthly(payload models.ReportPayload, meta models.SchoolMeta) (*ExportResult, error) {
	images := renderChartImages(payload)
	doc := BuildDocument(payload, meta, images)
	base := fmt.Sprintf("financial-analytics-report-%d-%s",
		payload.MonthData.Year, strings.ToLower(payload.MonthData.MonthName))

	data, err := RenderPDF(doc)
	if err == nil {
		return &ExportResult{
			Data:        data,
			ContentType: "application/pdf",
			Filename:    base + ".pdf",
		}, nil
	}
	log.Printf("PDF export failed, falling back to HTML: %v", err)

	return &ExportResult{
		Data:        []byte(RenderHTML(doc)),
		ContentType: "text/html; charset=utf-8",
		Filename:    base + ".html",
		Fallback:    true,
	}, nil
}

// renderChartImages registers the month's charts in a transient registry,
// captures them best-effort and returns the ones that rendered. A chart
// that fails to capture is simply left out of the document.
func renderChartImages(p models.ReportPayload) []Image {
	reg := NewRegistry()
	defer reg.Clear()

	m := p.MonthData
	reg.Register("income-vs-expenses", ChartSpec{
		Title:  "Income vs Expenses",
		Kind:   ChartBar,
		Labels: []string{"Income", "Expenses", "Net"},
		Values: []float64{m.Income, m.Expenses, m.Net},
	})

	if len(p.ExpenseCategories) > 0 {
		labels := make([]string, 0, len(p.ExpenseCategories))
		values := make([]float64, 0, len(p.ExpenseCategories))
		for _, c := range p.ExpenseCategories {
			labels = append(labels, c.Category)
			values = append(values, c.TotalAmount)
		}
		reg.Register("expense-categories", ChartSpec{
			Title:  "Expenses by Category",
			Kind:   ChartBar,
			Labels: labels,
			Values: values,
			Color:  color.NRGBA{R: 222, G: 96, B: 70, A: 255},
		})
	}

	captured := reg.CaptureMultiple(reg.IDs(), CaptureOptions{})

	var images []Image
	for _, id := range reg.IDs() {
		url := captured[id]
		if url == "" {
			continue
		}
		spec, _ := reg.Get(id)
		images = append(images, Image{
			Title:   spec.Title,
			DataURL: url,
			Width:   150,
			Height:  85,
		})
	}
	return images
}
