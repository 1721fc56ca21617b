package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheetName = "Daily Report"

// RenderExcel writes a report document into a single-sheet workbook and
// returns the file contents.
func RenderExcel(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, reportSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]

	widths := []float64{18, 24, 14, 10, 16, 18}
	for i, c := range columns {
		if err := f.SetColWidth(reportSheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	st, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, styles: st, columns: columns, lastCol: lastCol, row: 1}
	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case TitleBlock:
			if blk.Organization != "" {
				w.merged(blk.Organization, st.title)
			}
			w.merged(blk.Title, st.subtitle)
			w.row++
		case MetaBlock:
			w.pair(blk.Label+":", blk.Value, st.label, st.plain)
		case HeadingBlock:
			w.row++
			w.merged(blk.Text, st.heading)
		case SummaryBlock:
			w.pair(blk.Label, blk.Value, st.label, st.summary)
		case TableBlock:
			w.table(blk)
		case ParagraphBlock:
			w.merged(blk.Text, st.wrap)
		case FooterBlock:
			w.row++
			for _, line := range blk.Lines {
				w.merged(line, st.footer)
			}
		default:
			return nil, fmt.Errorf("render excel: unsupported block %T", b)
		}
		if w.err != nil {
			return nil, w.err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

type sheetStyles struct {
	title, subtitle, heading, label, plain, summary, header, cell, wrap, footer int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var st sheetStyles
	defs := []struct {
		name  string
		dst   *int
		style *excelize.Style
	}{
		{"title", &st.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{"subtitle", &st.subtitle, &excelize.Style{Font: &excelize.Font{Size: 12, Color: "#646464"}}},
		{"heading", &st.heading, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}}},
		{"label", &st.label, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}}},
		{"plain", &st.plain, &excelize.Style{Font: &excelize.Font{Size: 11}}},
		{"summary", &st.summary, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}},
		{"header", &st.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{"cell", &st.cell, &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{"wrap", &st.wrap, &excelize.Style{
			Font:      &excelize.Font{Size: 10},
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		}},
		{"footer", &st.footer, &excelize.Style{
			Font:      &excelize.Font{Size: 9, Color: "#8C8C8C"},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
	}

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return sheetStyles{}, fmt.Errorf("create %s style: %w", d.name, err)
		}
		*d.dst = id
	}
	return st, nil
}

// sheetWriter appends rows top to bottom and keeps the first error.
type sheetWriter struct {
	f       *excelize.File
	styles  sheetStyles
	columns []string
	lastCol string
	row     int
	err     error
}

func (w *sheetWriter) cell(col string) string {
	return fmt.Sprintf("%s%d", col, w.row)
}

func (w *sheetWriter) set(col string, value any, style int) {
	if w.err != nil {
		return
	}
	if s, ok := value.(string); ok {
		value = sanitizeExcelCell(s)
	}
	if err := w.f.SetCellValue(reportSheetName, w.cell(col), value); err != nil {
		w.err = fmt.Errorf("set %s: %w", w.cell(col), err)
		return
	}
	if err := w.f.SetCellStyle(reportSheetName, w.cell(col), w.cell(col), style); err != nil {
		w.err = fmt.Errorf("style %s: %w", w.cell(col), err)
	}
}

// merged writes text across the full sheet width on its own row.
func (w *sheetWriter) merged(value string, style int) {
	if w.err != nil {
		return
	}
	if err := w.f.MergeCell(reportSheetName, w.cell("A"), w.cell(w.lastCol)); err != nil {
		w.err = fmt.Errorf("merge row %d: %w", w.row, err)
		return
	}
	w.set("A", value, style)
	if w.err == nil {
		w.err = w.f.SetCellStyle(reportSheetName, w.cell("A"), w.cell(w.lastCol), style)
	}
	w.row++
}

func (w *sheetWriter) pair(label, value string, labelStyle, valueStyle int) {
	w.set("A", label, labelStyle)
	w.set("B", value, valueStyle)
	w.row++
}

func (w *sheetWriter) table(b TableBlock) {
	for i, h := range b.Columns {
		if i < len(w.columns) {
			w.set(w.columns[i], h, w.styles.header)
		}
	}
	w.row++

	for _, r := range b.Rows {
		values := []string{r.Category, r.Product, r.PackSize, r.Quantity, r.UnitPrice, r.Total}
		for i, v := range values {
			w.set(w.columns[i], v, w.styles.cell)
		}
		w.row++
	}

	w.set("E", b.TotalLabel+":", w.styles.summary)
	w.set("F", b.TotalValue, w.styles.summary)
	w.row++
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
