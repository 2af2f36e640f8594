package reports

import "skill-snap/app/models"

// Document model shared by the PDF and HTML renderers. The dashboard used
// to assemble each report section twice (once per output); building one
// neutral document and rendering it twice keeps the figures in lockstep.

// Cell alignments. Values match fpdf's CellFormat align strings.
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// Column describes one table column. WidthPct values of a table are
// expected to sum to 100; the PDF renderer spreads them over the printable
// width, the HTML renderer passes them straight to CSS.
type Column struct {
	Title    string
	WidthPct float64
	Align    string
}

// Table is a rendered-as-is grid. Rows do not include the header row;
// renderers emit Columns as row zero.
type Table struct {
	Columns     []Column
	Rows        [][]string
	OuterBorder bool
}

// Metric is one headline card (label under a big value).
type Metric struct {
	Label string
	Value string
}

// Image is a pre-rendered chart to embed. Only the PDF renderer embeds
// images; the HTML fallback is table/text only.
type Image struct {
	Title   string
	DataURL string
	Width   float64 // mm
	Height  float64 // mm
}

// Section is one titled block of the report.
type Section struct {
	Title   string
	Metrics []Metric
	Table   *Table
	Image   *Image
	Note    string
}

// Document is the full report: header meta plus ordered sections.
type Document struct {
	Title    string
	Meta     models.SchoolMeta
	Sections []Section
}
