package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"taskboard/internal/calendar"
)

// Generator пишет месяц в PDF; в тестах подменяется
type Generator interface {
	WriteMonth(w io.Writer, g calendar.Grid) error
}

// CalendarGenerator prints a month grid as one A4 landscape page.
type CalendarGenerator struct {
	FontPath string // путь до TTF; пусто = встроенный Helvetica (только latin-1)
	fontName string
	now      func() time.Time
}

const (
	pageMargin = 10.0
	headerH    = 7.0
	lineH      = 4.5
	titleMax   = 28 // символов на строку задачи
)

func NewCalendarGenerator(fontPath string) *CalendarGenerator {
	g := &CalendarGenerator{FontPath: fontPath, fontName: "Helvetica", now: time.Now}
	if fontPath != "" {
		g.fontName = "DejaVu"
	}
	return g
}

func (g *CalendarGenerator) WriteMonth(w io.Writer, grid calendar.Grid) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(grid.Title, true)
	pdf.SetAuthor("taskboard", false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	g.addUTF8Font(pdf)
	pdf.AddPage()

	tr := g.translator(pdf)

	// ===== Заголовок
	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, tr(grid.Title), "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 8)
	pdf.CellFormat(0, 5, "Generated "+g.now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pageW, pageH := pdf.GetPageSize()
	colW := (pageW - 2*pageMargin) / 7
	top := pdf.GetY()

	// ===== Дни недели
	pdf.SetFont(g.fontName, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, wd := range calendar.Weekdays {
		pdf.CellFormat(colW, headerH, wd, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	weeks := (len(grid.Cells) + 6) / 7
	rowH := (pageH - pageMargin - top - headerH) / float64(weeks)

	for i, cell := range grid.Cells {
		x := pageMargin + float64(i%7)*colW
		y := top + headerH + float64(i/7)*rowH
		g.cell(pdf, tr, cell, x, y, colW, rowH)
	}
	// Пустые клетки в конце последней недели
	for i := len(grid.Cells); i < weeks*7; i++ {
		x := pageMargin + float64(i%7)*colW
		y := top + headerH + float64(i/7)*rowH
		pdf.Rect(x, y, colW, rowH, "D")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write calendar pdf %s: %w", grid.Title, err)
	}
	return nil
}

// === helpers ===

func (g *CalendarGenerator) cell(pdf *gofpdf.Fpdf, tr func(string) string, c calendar.Cell, x, y, w, h float64) {
	if c.Today {
		pdf.SetFillColor(255, 248, 220)
		pdf.Rect(x, y, w, h, "FD")
	} else {
		pdf.Rect(x, y, w, h, "D")
	}
	if c.Empty {
		return
	}

	pdf.SetFont(g.fontName, "B", 9)
	pdf.SetXY(x+1, y+1)
	pdf.CellFormat(w-2, lineH, fmt.Sprintf("%d", c.Date.Day), "", 2, "R", false, 0, "")

	pdf.SetFont(g.fontName, "", 7)
	for _, t := range c.Tasks {
		pdf.SetX(x + 1)
		pdf.CellFormat(w-2, lineH, tr("- "+truncate(t.Title, titleMax)), "", 2, "L", false, 0, "")
	}
	if c.Hidden > 0 {
		pdf.SetX(x + 1)
		pdf.SetFont(g.fontName, "B", 7)
		pdf.CellFormat(w-2, lineH, fmt.Sprintf("+%d more", c.Hidden), "", 2, "L", false, 0, "")
	}
}

func (g *CalendarGenerator) addUTF8Font(pdf *gofpdf.Fpdf) {
	if g.FontPath == "" {
		return
	}
	// AddUTF8Font принимает путь до TTF
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

// Core fonts need cp1252 text; a UTF-8 TTF takes strings as is.
func (g *CalendarGenerator) translator(pdf *gofpdf.Fpdf) func(string) string {
	if g.FontPath != "" {
		return func(s string) string { return s }
	}
	return pdf.UnicodeTranslatorFromDescriptor("")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
