package reports

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"skill-snap/app/models"
)

// Page geometry in millimeters (A4 portrait).
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	pageMargin = 20.0

	contentWidth = pageWidth - 2*pageMargin

	// Minimum space a section title or table row needs before forcing a
	// page break.
	breakThreshold = 30.0

	rowHeight   = 8.0
	trailingGap = 8.0
	cellPadding = 2.0

	// Points to millimeters.
	ptToMM = 25.4 / 72.0
)

// Writer builds the paginated PDF report. It holds the single vertical
// write cursor; every append goes through ensureSpace so the page-break
// contract is enforced in one place. A Writer is single-use and must not
// be shared between exports.
type Writer struct {
	pdf      *fpdf.Fpdf
	y        float64
	imageSeq int
	footered bool

	// tr maps UTF-8 input to cp1252 for the core Helvetica fonts; school
	// and teacher names routinely carry accented characters.
	tr func(string) string
}

// NewWriter returns a fresh writer with no pages yet.
func NewWriter() *Writer {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	return &Writer{
		pdf: pdf,
		y:   pageMargin,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// CurrentY exposes the cursor for tests and assertions.
func (w *Writer) CurrentY() float64 { return w.y }

// PageCount reports the number of pages emitted so far.
func (w *Writer) PageCount() int { return w.pdf.PageCount() }

func (w *Writer) pageBreak() {
	w.pdf.AddPage()
	w.y = pageMargin
}

// ensureSpace starts a new page when a block of the given height would
// cross the bottom margin.
func (w *Writer) ensureSpace(h float64) {
	if w.y+h > pageHeight-pageMargin {
		w.pageBreak()
	}
}

func (w *Writer) remaining() float64 {
	return pageHeight - pageMargin - w.y
}

// InitDocument draws the cover header: logo (or a text fallback with the
// school name), contact lines, report title and generation stamp. Body
// content always starts on the following page.
func (w *Writer) InitDocument(title string, meta models.SchoolMeta) {
	w.pageBreak()

	if !w.drawLogo(meta.LogoURL) {
		w.pdf.SetFont("Helvetica", "B", 20)
		w.pdf.SetXY(pageMargin, w.y)
		w.pdf.CellFormat(contentWidth, 10, w.tr(meta.Name), "", 0, "C", false, 0, "")
		w.y += 14
	}

	w.pdf.SetFont("Helvetica", "B", 13)
	w.pdf.SetXY(pageMargin, w.y)
	w.pdf.CellFormat(contentWidth, 7, w.tr(meta.Name), "", 0, "C", false, 0, "")
	w.y += 9

	w.pdf.SetFont("Helvetica", "", 9)
	for _, line := range []string{meta.Address, meta.Phone, meta.Email} {
		if line == "" {
			continue
		}
		w.pdf.SetXY(pageMargin, w.y)
		w.pdf.CellFormat(contentWidth, 5, w.tr(line), "", 0, "C", false, 0, "")
		w.y += 5
	}
	w.y += 8

	w.pdf.SetFont("Helvetica", "B", 16)
	w.pdf.SetXY(pageMargin, w.y)
	w.pdf.CellFormat(contentWidth, 9, w.tr(title), "", 0, "C", false, 0, "")
	w.y += 12

	w.pdf.SetFont("Helvetica", "", 9)
	stamp := fmt.Sprintf("Generated %s %s by %s (%s)", meta.ReportDate, meta.ReportTime, meta.GeneratedBy, meta.UserRole)
	w.pdf.SetXY(pageMargin, w.y)
	w.pdf.CellFormat(contentWidth, 5, w.tr(stamp), "", 0, "C", false, 0, "")
	w.y += 8

	w.pdf.SetDrawColor(60, 60, 60)
	w.pdf.Line(pageMargin, w.y, pageWidth-pageMargin, w.y)

	// Cover stays header-only; the first section opens page 2.
	w.pageBreak()
}

// drawLogo embeds the school logo when the meta carries a decodable image
// data URL. Returns false when the caller should fall back to text.
func (w *Writer) drawLogo(dataURL string) bool {
	if dataURL == "" {
		return false
	}
	img, err := decodeImageDataURL(dataURL)
	if err != nil {
		return false
	}
	name := w.nextImageName()
	opts := fpdf.ImageOptions{ImageType: img.format}
	w.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.data))
	if w.pdf.Err() {
		return false
	}
	const logoW, logoH = 30.0, 30.0
	w.pdf.ImageOptions(name, (pageWidth-logoW)/2, w.y, logoW, logoH, false, opts, 0, "")
	w.y += logoH + 6
	return true
}

// AddSectionTitle draws a bold 14pt heading, breaking first if fewer than
// 30mm remain on the page.
func (w *Writer) AddSectionTitle(title string) {
	if w.remaining() < breakThreshold {
		w.pageBreak()
	}
	w.pdf.SetFont("Helvetica", "B", 14)
	w.pdf.SetTextColor(20, 20, 20)
	w.pdf.SetXY(pageMargin, w.y)
	w.pdf.CellFormat(contentWidth, 7, w.tr(title), "", 0, "L", false, 0, "")
	w.y += 8
}

// AddMetrics lays out headline figures as a two-column label/value table,
// one metric per row.
func (w *Writer) AddMetrics(metrics []Metric) {
	if len(metrics) == 0 {
		return
	}
	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []string{m.Label, m.Value})
	}
	w.AddTable(Table{
		Columns: []Column{
			{Title: "Metric", WidthPct: 55, Align: AlignLeft},
			{Title: "Value", WidthPct: 45, Align: AlignRight},
		},
		Rows:        rows,
		OuterBorder: true,
	})
}

// AddTable renders a grid with a header row. Column x positions come from
// the percentage widths spread over the printable width. Rows that would
// land within 30mm of the bottom push a page break; the header row is not
// repeated on continuation pages. The outer border is suppressed whenever
// the table cannot fit the current page, so a border never pretends to
// cover rows that spilled onto the next page.
func (w *Writer) AddTable(t Table) {
	if len(t.Columns) == 0 {
		return
	}

	xs := make([]float64, len(t.Columns)+1)
	xs[0] = pageMargin
	for i, col := range t.Columns {
		xs[i+1] = xs[i] + contentWidth*col.WidthPct/100
	}

	totalRows := len(t.Rows) + 1 // header included
	totalHeight := float64(totalRows) * rowHeight

	if w.remaining() < breakThreshold {
		w.pageBreak()
	}
	if t.OuterBorder && totalHeight <= w.remaining() {
		w.pdf.SetDrawColor(120, 120, 120)
		w.pdf.Rect(pageMargin, w.y, contentWidth, totalHeight, "D")
	}

	w.drawRow(t, headerCells(t.Columns), true)
	for _, row := range t.Rows {
		if w.remaining() < breakThreshold {
			w.pageBreak()
		}
		w.drawRow(t, row, false)
	}
	w.y += trailingGap
}

func headerCells(cols []Column) []string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = c.Title
	}
	return cells
}

func (w *Writer) drawRow(t Table, cells []string, header bool) {
	fontSize := 9.0
	if header {
		w.pdf.SetFont("Helvetica", "B", fontSize)
		w.pdf.SetFillColor(230, 233, 238)
		w.pdf.SetTextColor(20, 20, 20)
	} else {
		w.pdf.SetFont("Helvetica", "", fontSize)
		w.pdf.SetTextColor(40, 40, 40)
	}
	w.pdf.SetDrawColor(170, 170, 170)

	x := pageMargin
	for i, col := range t.Columns {
		colW := contentWidth * col.WidthPct / 100

		if header {
			w.pdf.Rect(x, w.y, colW, rowHeight, "F")
		}
		// Shared edges: each cell owns its right and bottom border, the
		// first column adds the table's left edge, the header row the top.
		w.pdf.Line(x+colW, w.y, x+colW, w.y+rowHeight)
		w.pdf.Line(x, w.y+rowHeight, x+colW, w.y+rowHeight)
		if i == 0 {
			w.pdf.Line(x, w.y, x, w.y+rowHeight)
		}
		if header {
			w.pdf.Line(x, w.y, x+colW, w.y)
		}

		text := ""
		if i < len(cells) {
			text = truncateToWidth(cells[i], colW-2*cellPadding, fontSize)
		}
		w.pdf.SetXY(x+cellPadding, w.y)
		w.pdf.CellFormat(colW-2*cellPadding, rowHeight, w.tr(text), "", 0, col.Align, false, 0, "")

		x += colW
	}
	w.y += rowHeight
}

// truncateToWidth shortens text that cannot fit the given width, using an
// approximate glyph width of 0.6×fontSize instead of true measurement.
func truncateToWidth(s string, widthMM, fontSize float64) string {
	charW := fontSize * 0.6 * ptToMM
	if charW <= 0 {
		return s
	}
	max := int(widthMM / charW)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// AddImage embeds a chart image under an optional title. A malformed or
// undecodable data URL degrades to a bordered placeholder of the same
// size; the cursor advance is identical either way so layout is unaffected
// by the failure.
func (w *Writer) AddImage(img Image) {
	titleH := 0.0
	if img.Title != "" {
		titleH = 8.0
	}
	w.ensureSpace(titleH + img.Height + 10)

	if img.Title != "" {
		w.pdf.SetFont("Helvetica", "B", 12)
		w.pdf.SetTextColor(20, 20, 20)
		w.pdf.SetXY(pageMargin, w.y)
		w.pdf.CellFormat(contentWidth, 6, w.tr(img.Title), "", 0, "L", false, 0, "")
		w.y += titleH
	}

	x := pageMargin + (contentWidth-img.Width)/2

	decoded, err := decodeImageDataURL(img.DataURL)
	if err == nil {
		name := w.nextImageName()
		opts := fpdf.ImageOptions{ImageType: decoded.format}
		w.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(decoded.data))
		if !w.pdf.Err() {
			w.pdf.ImageOptions(name, x, w.y, img.Width, img.Height, false, opts, 0, "")
		} else {
			w.pdf.ClearError()
			w.drawImagePlaceholder(x, img)
		}
	} else {
		w.drawImagePlaceholder(x, img)
	}

	w.y += img.Height + 10
}

func (w *Writer) drawImagePlaceholder(x float64, img Image) {
	w.pdf.SetDrawColor(150, 150, 150)
	w.pdf.Rect(x, w.y, img.Width, img.Height, "D")
	w.pdf.SetFont("Helvetica", "", 10)
	w.pdf.SetTextColor(120, 120, 120)
	w.pdf.SetXY(x, w.y+img.Height/2-3)
	w.pdf.CellFormat(img.Width, 6, w.tr(img.Title), "", 0, "C", false, 0, "")
}

// AddNote renders a small italic remark under the previous block.
func (w *Writer) AddNote(note string) {
	if note == "" {
		return
	}
	w.ensureSpace(6)
	w.pdf.SetFont("Helvetica", "I", 8)
	w.pdf.SetTextColor(110, 110, 110)
	w.pdf.SetXY(pageMargin, w.y-trailingGap+1)
	w.pdf.CellFormat(contentWidth, 4, w.tr(note), "", 0, "L", false, 0, "")
}

// AddFooter stamps "Page X of N" on every page. It must run exactly once,
// after all content, because N is only known then. Output calls it.
func (w *Writer) AddFooter() {
	if w.footered {
		return
	}
	w.footered = true
	n := w.pdf.PageCount()
	w.pdf.SetFont("Helvetica", "", 9)
	w.pdf.SetTextColor(120, 120, 120)
	for i := 1; i <= n; i++ {
		w.pdf.SetPage(i)
		w.pdf.SetXY(pageMargin, pageHeight-12)
		w.pdf.CellFormat(contentWidth, 5, fmt.Sprintf("Page %d of %d", i, n), "", 0, "C", false, 0, "")
	}
}

// Output finalizes the document and returns the PDF bytes.
func (w *Writer) Output() ([]byte, error) {
	w.AddFooter()
	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *Writer) nextImageName() string {
	w.imageSeq++
	return fmt.Sprintf("report-img-%d", w.imageSeq)
}

// RenderPDF renders the document through a fresh writer.
func RenderPDF(doc Document) ([]byte, error) {
	w := NewWriter()
	w.InitDocument(doc.Title, doc.Meta)
	for _, s := range doc.Sections {
		if s.Title != "" && s.Image == nil {
			w.AddSectionTitle(s.Title)
		}
		w.AddMetrics(s.Metrics)
		if s.Table != nil {
			w.AddTable(*s.Table)
		}
		if s.Image != nil {
			w.AddImage(*s.Image)
		}
		w.AddNote(s.Note)
	}
	return w.Output()
}
