package reports

import (
	"fmt"
	"html"
	"strings"
)

// HTML fallback renderer. Produces a self-contained printable document
// from the same document model as the PDF writer; the browser's
// print-to-PDF takes care of pagination. Charts are never embedded here,
// the fallback is table/text only.

const reportStyle = `
body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 24px; }
header { text-align: center; border-bottom: 2px solid #444; padding-bottom: 12px; margin-bottom: 24px; }
header h1 { margin: 4px 0; font-size: 22px; }
header .contact, header .stamp { font-size: 11px; color: #666; }
h2 { font-size: 15px; margin: 24px 0 8px; }
.cards { display: flex; flex-wrap: wrap; gap: 12px; margin-bottom: 8px; }
.card { border: 1px solid #ccc; border-radius: 4px; padding: 8px 14px; min-width: 140px; }
.card .value { font-size: 16px; font-weight: bold; }
.card .label { font-size: 10px; color: #777; text-transform: uppercase; }
table { border-collapse: collapse; width: 100%; margin-bottom: 8px; font-size: 12px; }
th, td { border: 1px solid #aaa; padding: 5px 8px; }
th { background: #e6e9ee; text-align: left; }
td.num { text-align: right; }
td.ctr { text-align: center; }
p.note { font-size: 10px; color: #888; font-style: italic; }
@media print { body { margin: 10mm; } h2 { page-break-after: avoid; } table { page-break-inside: auto; } }
`

// RenderHTML renders the document as one printable HTML string.
func RenderHTML(doc Document) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(doc.Title))
	b.WriteString("<style>")
	b.WriteString(reportStyle)
	b.WriteString("</style>\n</head>\n<body>\n")

	writeHeader(&b, doc)

	for _, s := range doc.Sections {
		if s.Image != nil {
			continue
		}
		if s.Title != "" {
			fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(s.Title))
		}
		writeMetrics(&b, s.Metrics)
		if s.Table != nil {
			writeTable(&b, *s.Table)
		}
		if s.Note != "" {
			fmt.Fprintf(&b, "<p class=\"note\">%s</p>\n", html.EscapeString(s.Note))
		}
	}

	b.WriteString("<script>window.print()</script>\n</body>\n</html>\n")
	return b.String()
}

func writeHeader(b *strings.Builder, doc Document) {
	m := doc.Meta
	b.WriteString("<header>\n")
	fmt.Fprintf(b, "<h1>%s</h1>\n", html.EscapeString(m.Name))

	var contact []string
	for _, line := range []string{m.Address, m.Phone, m.Email} {
		if line != "" {
			contact = append(contact, html.EscapeString(line))
		}
	}
	if len(contact) > 0 {
		fmt.Fprintf(b, "<div class=\"contact\">%s</div>\n", strings.Join(contact, " · "))
	}

	fmt.Fprintf(b, "<h1>%s</h1>\n", html.EscapeString(doc.Title))
	fmt.Fprintf(b, "<div class=\"stamp\">Generated %s %s by %s (%s)</div>\n",
		html.EscapeString(m.ReportDate), html.EscapeString(m.ReportTime),
		html.EscapeString(m.GeneratedBy), html.EscapeString(m.UserRole))
	b.WriteString("</header>\n")
}

func writeMetrics(b *strings.Builder, metrics []Metric) {
	if len(metrics) == 0 {
		return
	}
	b.WriteString("<div class=\"cards\">\n")
	for _, m := range metrics {
		fmt.Fprintf(b, "<div class=\"card\"><div class=\"value\">%s</div><div class=\"label\">%s</div></div>\n",
			html.EscapeString(m.Value), html.EscapeString(m.Label))
	}
	b.WriteString("</div>\n")
}

func writeTable(b *strings.Builder, t Table) {
	b.WriteString("<table>\n<tr>")
	for _, col := range t.Columns {
		fmt.Fprintf(b, "<th style=\"width:%.0f%%\">%s</th>", col.WidthPct, html.EscapeString(col.Title))
	}
	b.WriteString("</tr>\n")

	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for i, col := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			class := ""
			switch col.Align {
			case AlignRight:
				class = " class=\"num\""
			case AlignCenter:
				class = " class=\"ctr\""
			}
			fmt.Fprintf(b, "<td%s>%s</td>", class, html.EscapeString(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
}
