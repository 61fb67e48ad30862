package calendar

import (
	"html/template"
	"strings"
	"time"

	"taskboard/internal/models"
)

const DefaultMaxVisible = 3

var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one square of the grid. Leading cells before the 1st are Empty.
type Cell struct {
	Empty bool          `json:"empty"`
	Date  Date          `json:"date"`
	Today bool          `json:"today"`
	Tasks []models.Task `json:"tasks,omitempty"` // visible ones only
	// Hidden counts the tasks collapsed into "+N more"; MoreTaskID is the first of them.
	Hidden     int   `json:"hidden"`
	MoreTaskID int64 `json:"more_task_id,omitempty"`
}

// Total is the number of tasks due that day, visible or not.
func (c Cell) Total() int {
	return len(c.Tasks) + c.Hidden
}

type Grid struct {
	Cursor
	Title   string       `json:"title"`
	Prev    Cursor       `json:"prev"`
	Next    Cursor       `json:"next"`
	Leading int          `json:"leading"`
	Cells   []Cell       `json:"cells"`
	Details []TaskDetail `json:"details"`
}

// Days returns the non-empty cells, one per day of the month.
func (g Grid) Days() []Cell {
	return g.Cells[g.Leading:]
}

// TaskDetail is what the detail panel shows, taken from the in-memory record.
type TaskDetail struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	StatusClass   string `json:"status_class"`
	Priority      string `json:"priority"`
	PriorityClass string `json:"priority_class"`
	DueDate       string `json:"due_date"`
	Assignee      string `json:"assignee,omitempty"`
}

func Detail(t *models.Task, loc *time.Location) TaskDetail {
	d := TaskDetail{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        "PENDING",
		StatusClass:   StatusClass(t),
		Priority:      "MEDIUM",
		PriorityClass: PriorityClass(t),
		DueDate:       "No due date",
		Assignee:      t.AssignedToUsername,
	}
	if d.Description == "" {
		d.Description = "No description"
	}
	if t.Status != "" {
		d.Status = strings.ToUpper(strings.ReplaceAll(string(t.Status), "_", " "))
	}
	if t.Priority != "" {
		d.Priority = strings.ToUpper(string(t.Priority))
	}
	if due, ok := t.Due(); ok {
		d.DueDate = due.In(loc).Format("January 2, 2006 3:04 PM")
	}
	return d
}

func PriorityClass(t *models.Task) string {
	if t.Priority == "" {
		return "priority-medium"
	}
	return "priority-" + string(t.Priority)
}

func StatusClass(t *models.Task) string {
	if t.Status == "" {
		return "status-pending"
	}
	return "status-" + string(t.Status)
}

// Renderer turns a View into a Grid and markup.
type Renderer struct {
	loc        *time.Location
	maxVisible int
	now        func() time.Time
	basePath   string
	tmpl       *template.Template
}

type Option func(*Renderer)

// WithClock overrides time.Now, used for the "today" highlight.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithBasePath sets the page the navigation links point to (default "/calendar").
func WithBasePath(path string) Option {
	return func(r *Renderer) { r.basePath = path }
}

func NewRenderer(loc *time.Location, maxVisible int, opts ...Option) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	r := &Renderer{loc: loc, maxVisible: maxVisible, now: time.Now, basePath: "/calendar"}
	for _, opt := range opts {
		opt(r)
	}
	r.tmpl = parseTemplate(r.basePath)
	return r
}

func (r *Renderer) Location() *time.Location {
	return r.loc
}

// Build computes the grid for the view's month.
func (r *Renderer) Build(v View) Grid {
	v = NewView(v.Tasks, v.Year, v.Month)

	first := time.Date(v.Year, v.Month, 1, 0, 0, 0, 0, r.loc)
	days := DaysIn(v.Year, v.Month)
	today := DayKey(r.now(), r.loc)
	buckets := Bucket(v.Tasks, r.loc)

	g := Grid{
		Cursor:  v.Cursor,
		Title:   v.Title(),
		Prev:    v.Prev().Cursor,
		Next:    v.Next().Cursor,
		Leading: int(first.Weekday()),
		Cells:   make([]Cell, 0, int(first.Weekday())+days),
		Details: []TaskDetail{},
	}
	for i := 0; i < g.Leading; i++ {
		g.Cells = append(g.Cells, Cell{Empty: true})
	}

	for day := 1; day <= days; day++ {
		key := Date{Year: v.Year, Month: v.Month, Day: day}
		dayTasks := buckets[key]

		cell := Cell{Date: key, Today: key == today}
		if len(dayTasks) > r.maxVisible {
			cell.Tasks = dayTasks[:r.maxVisible]
			cell.Hidden = len(dayTasks) - r.maxVisible
			cell.MoreTaskID = dayTasks[r.maxVisible].ID
		} else {
			cell.Tasks = dayTasks
		}
		for i := range dayTasks {
			g.Details = append(g.Details, Detail(&dayTasks[i], r.loc))
		}
		g.Cells = append(g.Cells, cell)
	}
	return g
}
