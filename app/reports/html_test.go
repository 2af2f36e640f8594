package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-snap/app/models"
)

func TestRenderHTMLBalancedTags(t *testing.T) {
	doc := BuildDocument(decemberPayload(), testMeta(), nil)
	out := RenderHTML(doc)

	for _, tag := range []string{"html", "body", "header", "table", "tr", "h2"} {
		open := strings.Count(out, "<"+tag)
		closed := strings.Count(out, "</"+tag+">")
		assert.Equal(t, open, closed, "unbalanced <%s>", tag)
	}
}

func TestRenderHTMLContainsFormattedAmounts(t *testing.T) {
	doc := BuildDocument(decemberPayload(), testMeta(), nil)
	out := RenderHTML(doc)

	assert.Contains(t, out, "DA 100,000")
	assert.Contains(t, out, "DA 20,000")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Skill Snap Academy")
	assert.Contains(t, out, "window.print()")
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	p := decemberPayload()
	p.TeacherPayouts[0].TeacherName = `<script>alert("x")</script>`
	doc := BuildDocument(p, testMeta(), nil)
	out := RenderHTML(doc)

	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderHTMLSkipsImageSections(t *testing.T) {
	images := []Image{{Title: "Income vs Expenses Chart", DataURL: "data:image/png;base64,xx", Width: 150, Height: 85}}
	doc := BuildDocument(decemberPayload(), testMeta(), images)
	out := RenderHTML(doc)

	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "Income vs Expenses Chart")
}

func TestRenderHTMLOmitsAbsentSections(t *testing.T) {
	p := decemberPayload()
	p.DebtData = nil
	p.EmployeeSalaries = nil
	doc := BuildDocument(p, testMeta(), nil)
	out := RenderHTML(doc)

	assert.NotContains(t, out, "Debt Analysis")
	assert.NotContains(t, out, "Employee Salaries")
}

func TestRenderHTMLAlwaysEmitsSkeleton(t *testing.T) {
	// The fallback path relies on RenderHTML producing a document for any
	// input, including a zero-value one.
	out := RenderHTML(Document{})

	require.NotEmpty(t, out)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "</html>")
}

func TestRenderHTMLColumnAlignment(t *testing.T) {
	doc := BuildDocument(decemberPayload(), models.SchoolMeta{Name: "S"}, nil)
	out := RenderHTML(doc)

	require.Contains(t, out, `class="num"`)
	require.Contains(t, out, `class="ctr"`)
}
