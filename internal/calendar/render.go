package calendar

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"taskboard/internal/models"
)

//go:embed templates/calendar.tmpl
var templateFS embed.FS

// Render writes the calendar markup fragment for v and returns the normalised view.
func (r *Renderer) Render(w io.Writer, v View) (View, error) {
	g := r.Build(v)
	if err := r.tmpl.ExecuteTemplate(w, "calendar", g); err != nil {
		return v, fmt.Errorf("render calendar %s: %w", g.Title, err)
	}
	return NewView(v.Tasks, g.Year, g.Month), nil
}

// HTML is Render into a string ready to embed in a page.
func (r *Renderer) HTML(v View) (template.HTML, View, error) {
	var buf bytes.Buffer
	out, err := r.Render(&buf, v)
	if err != nil {
		return "", v, err
	}
	return template.HTML(buf.String()), out, nil
}

func parseTemplate(basePath string) *template.Template {
	funcs := template.FuncMap{
		"weekdays":      func() [7]string { return Weekdays },
		"priorityClass": func(t models.Task) string { return PriorityClass(&t) },
		"navURL": func(c Cursor) string {
			return fmt.Sprintf("%s?year=%d&month=%d", basePath, c.Year, int(c.Month))
		},
	}
	return template.Must(template.New("calendar").Funcs(funcs).ParseFS(templateFS, "templates/calendar.tmpl"))
}

// Text is a plain-text month grid for terminals.
func (g Grid) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", g.Title)
	for _, wd := range Weekdays {
		fmt.Fprintf(&b, "%-7s", wd)
	}
	b.WriteString("\n")

	for i, c := range g.Cells {
		if c.Empty {
			b.WriteString(strings.Repeat(" ", 7))
		} else {
			mark := " "
			if c.Today {
				mark = "*"
			}
			cell := fmt.Sprintf("%2d%s", c.Date.Day, mark)
			if n := c.Total(); n > 0 {
				cell += fmt.Sprintf("(%d)", n)
			}
			fmt.Fprintf(&b, "%-7s", cell)
		}
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	if len(g.Cells)%7 != 0 {
		b.WriteString("\n")
	}

	for _, c := range g.Days() {
		if c.Total() == 0 {
			continue
		}
		titles := make([]string, 0, len(c.Tasks)+1)
		for _, t := range c.Tasks {
			titles = append(titles, t.Title)
		}
		if c.Hidden > 0 {
			titles = append(titles, fmt.Sprintf("+%d more", c.Hidden))
		}
		fmt.Fprintf(&b, "%s: %s\n", c.Date, strings.Join(titles, ", "))
	}
	return b.String()
}
