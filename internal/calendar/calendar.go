// Package calendar builds the month grid: it buckets tasks by the calendar day of
// their due date in a display location and lays the days out Sunday-first.
package calendar

import (
	"fmt"
	"log"
	"time"

	"taskboard/internal/models"
)

// Date is a calendar day without time of day or zone.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DayKey is the calendar day of t as seen in loc. Two instants on the same local day
// always share a key, whatever their time of day.
func DayKey(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// Midnight returns the start of the day in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Bucket groups tasks by due day, keeping input order inside a day.
// Tasks without a due date, or with one that did not parse, are left out.
func Bucket(tasks []models.Task, loc *time.Location) map[Date][]models.Task {
	out := make(map[Date][]models.Task)
	for _, t := range tasks {
		due, ok := t.Due()
		if !ok {
			if t.DueDate.Invalid() {
				log.Printf("[calendar][warn] task id=%d: unparseable due_date=%q", t.ID, t.DueDate.Raw)
			}
			continue
		}
		key := DayKey(due, loc)
		out[key] = append(out[key], t)
	}
	return out
}

// Cursor is the (year, month) pair a calendar shows.
type Cursor struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// View is the calendar view-model: the cursor plus the tasks loaded for the page.
// It is a plain value; navigation returns a new View.
type View struct {
	Cursor
	Tasks []models.Task
}

// NewView normalises out-of-range months, so month 13 is January of the next year
// and month 0 is December of the previous one.
func NewView(tasks []models.Task, year int, month time.Month) View {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return View{
		Cursor: Cursor{Year: first.Year(), Month: first.Month()},
		Tasks:  tasks,
	}
}

// Today is the view of the month containing now in loc.
func Today(tasks []models.Task, now time.Time, loc *time.Location) View {
	local := now.In(loc)
	return NewView(tasks, local.Year(), local.Month())
}

func (v View) Prev() View {
	return NewView(v.Tasks, v.Year, v.Month-1)
}

func (v View) Next() View {
	return NewView(v.Tasks, v.Year, v.Month+1)
}

// Title is e.g. "October 2026".
func (v View) Title() string {
	return fmt.Sprintf("%s %d", v.Month, v.Year)
}

// Find looks a task up in the in-memory list; no network.
func (v View) Find(id int64) (*models.Task, bool) {
	for i := range v.Tasks {
		if v.Tasks[i].ID == id {
			return &v.Tasks[i], true
		}
	}
	return nil, false
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
