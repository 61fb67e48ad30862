package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"taskboard/internal/calendar"
	"taskboard/internal/models"
)

//go:embed templates/*.tmpl
var pageFS embed.FS

const displayLayout = "Jan 2, 2006 3:04 PM"

// Templates parses the page set. Times are shown in loc.
func Templates(loc *time.Location) (*template.Template, error) {
	funcs := template.FuncMap{
		"detail": func(t models.Task) calendar.TaskDetail { return calendar.Detail(&t, loc) },
		"due": func(t models.Task) string {
			if due, ok := t.Due(); ok {
				return due.In(loc).Format(displayLayout)
			}
			return "No due date"
		},
		"stamp": func(ts *models.Timestamp) string {
			if ts == nil || ts.IsZero() {
				return ""
			}
			return ts.In(loc).Format(displayLayout)
		},
		"assignee": func(t models.Task) string {
			if t.AssignedTo == nil {
				return "Unassigned"
			}
			if t.AssignedToUsername != "" {
				return t.AssignedToUsername
			}
			return fmt.Sprintf("User #%d", *t.AssignedTo)
		},
		"idstr": func(id int64) string { return strconv.FormatInt(id, 10) },
	}
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(pageFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return tmpl, nil
}
