package reports

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-snap/app/models"
)

func testMeta() models.SchoolMeta {
	return models.SchoolMeta{
		Name:        "Skill Snap Academy",
		Address:     "12 Rue Didouche Mourad, Algiers",
		Phone:       "+213 555 000 111",
		Email:       "contact@skillsnap.dz",
		ReportDate:  "31/12/2024",
		ReportTime:  "18:30",
		GeneratedBy: "Test User",
		UserRole:    "admin",
	}
}

func pngDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestInitDocumentStartsBodyOnPageTwo(t *testing.T) {
	w := NewWriter()
	w.InitDocument("Financial Report - December 2024", testMeta())

	assert.Equal(t, 2, w.PageCount())
	assert.Equal(t, pageMargin, w.CurrentY())
}

func TestCursorNeverCrossesBottomMargin(t *testing.T) {
	w := NewWriter()
	w.InitDocument("Financial Report - December 2024", testMeta())

	rows := make([][]string, 120)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("Row %d", i), "DA 1,000", "DA 900"}
	}
	table := Table{
		Columns: []Column{
			{Title: "Item", WidthPct: 40, Align: AlignLeft},
			{Title: "Actual", WidthPct: 30, Align: AlignRight},
			{Title: "Target", WidthPct: 30, Align: AlignRight},
		},
		Rows:        rows,
		OuterBorder: true,
	}

	w.AddSectionTitle("Long Table")
	w.AddTable(table)

	assert.Greater(t, w.PageCount(), 2)
	assert.LessOrEqual(t, w.CurrentY(), pageHeight-pageMargin)
}

func TestPageBreakResetsCursorToMargin(t *testing.T) {
	w := NewWriter()
	w.InitDocument("Report", testMeta())

	// Fill until at least one break happens, then check the last reset.
	for i := 0; i < 40; i++ {
		w.AddSectionTitle(fmt.Sprintf("Section %d", i))
	}
	require.Greater(t, w.PageCount(), 2)
	assert.GreaterOrEqual(t, w.CurrentY(), pageMargin)
}

func TestAddImagePlaceholderAdvancesLikeSuccess(t *testing.T) {
	good := NewWriter()
	good.InitDocument("Report", testMeta())
	good.AddImage(Image{Title: "Chart", DataURL: pngDataURL(t), Width: 150, Height: 85})

	bad := NewWriter()
	bad.InitDocument("Report", testMeta())
	bad.AddImage(Image{Title: "Chart", DataURL: "data:image/png;base64,not-a-real-image", Width: 150, Height: 85})

	assert.Equal(t, good.CurrentY(), bad.CurrentY())
	assert.Equal(t, good.PageCount(), bad.PageCount())
}

func TestTruncateToWidth(t *testing.T) {
	const fontSize = 9.0

	short := "Rent"
	assert.Equal(t, short, truncateToWidth(short, 50, fontSize))

	long := "An exceptionally long expense category title that cannot possibly fit"
	got := truncateToWidth(long, 30, fontSize)
	assert.True(t, len(got) < len(long))
	assert.Contains(t, got, "...")
}

// contentStreams inflates every FlateDecode stream in the PDF so tests can
// inspect the text operators.
func contentStreams(t *testing.T, pdf []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	rest := pdf
	for {
		start := bytes.Index(rest, []byte(">>\nstream\n"))
		if start < 0 {
			break
		}
		rest = rest[start+len(">>\nstream\n"):]
		end := bytes.Index(rest, []byte("endstream"))
		require.GreaterOrEqual(t, end, 0)
		raw := bytes.TrimSuffix(rest[:end], []byte("\n"))
		if zr, err := zlib.NewReader(bytes.NewReader(raw)); err == nil {
			_, _ = io.Copy(&out, zr)
			zr.Close()
		} else {
			out.Write(raw)
		}
		rest = rest[end:]
	}
	require.NotZero(t, out.Len())
	return out.Bytes()
}

func TestNonASCIITextEncodedForCoreFonts(t *testing.T) {
	meta := testMeta()
	meta.Name = "Académie Skill Snap"

	w := NewWriter()
	w.InitDocument("Rapport Financier — Décembre 2024", meta)
	w.AddSectionTitle("Résumé")

	data, err := w.Output()
	require.NoError(t, err)

	streams := contentStreams(t, data)

	// The core Helvetica fonts are cp1252; multi-byte UTF-8 sequences in
	// the text operators would render as mojibake.
	assert.NotContains(t, string(streams), "\xc3\xa9")     // UTF-8 é
	assert.NotContains(t, string(streams), "\xe2\x80\x94") // UTF-8 em dash
	assert.True(t, bytes.Contains(streams, []byte{0xe9}))  // cp1252 é
	assert.True(t, bytes.Contains(streams, []byte{0x97}))  // cp1252 em dash
}

func TestAddMetricsOneRowPerMetric(t *testing.T) {
	w := NewWriter()
	w.InitDocument("Report", testMeta())

	metrics := []Metric{
		{Label: "Total Income", Value: "DA 100,000"},
		{Label: "Total Expenses", Value: "DA 80,000"},
		{Label: "Net Balance", Value: "DA 20,000"},
	}
	before := w.CurrentY()
	w.AddMetrics(metrics)

	// Header row plus one row per metric, then the trailing gap.
	want := before + float64(len(metrics)+1)*rowHeight + trailingGap
	assert.Equal(t, want, w.CurrentY())
}

func TestOutputProducesValidPDF(t *testing.T) {
	doc := BuildDocument(decemberPayload(), testMeta(), nil)
	data, err := RenderPDF(doc)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFooterStampedOnce(t *testing.T) {
	w := NewWriter()
	w.InitDocument("Report", testMeta())
	w.AddSectionTitle("Only Section")

	w.AddFooter()
	w.AddFooter() // second call must be a no-op

	data, err := w.Output()
	require.NoError(t, err)

	// "Page 1 of 2" appears once per page, never duplicated.
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
