// internal/models/task.go
package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task is the client-side copy of a task as the API returns it.
type Task struct {
	ID                 int64        `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Status             TaskStatus   `json:"status"`
	Priority           TaskPriority `json:"priority"`
	DueDate            *Timestamp   `json:"due_date,omitempty"`
	AssignedTo         *int64       `json:"assigned_to"`
	AssignedToUsername string       `json:"assigned_to_username,omitempty"`
	CreatedBy          *int64       `json:"created_by,omitempty"`
	CreatedAt          *Timestamp   `json:"created_at,omitempty"`
	UpdatedAt          *Timestamp   `json:"updated_at,omitempty"`
}

// Due returns the due instant; ok is false when the task has none or it did not parse.
func (t *Task) Due() (time.Time, bool) {
	if t.DueDate == nil || t.DueDate.IsZero() {
		return time.Time{}, false
	}
	return t.DueDate.Time, true
}

// TaskPayload is the body of POST /api/tasks and PUT /api/tasks/{id}.
type TaskPayload struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	AssignedTo  *int64       `json:"assigned_to"`
	DueDate     string       `json:"due_date,omitempty"` // RFC3339, UTC
}

// AssignPayload is the body of POST /api/tasks/{id}/assign; nil UserID unassigns.
type AssignPayload struct {
	UserID *int64 `json:"user_id"`
}

// Activity is one entry of the upstream activity log.
type Activity struct {
	ID          int64      `json:"id"`
	TaskID      int64      `json:"task_id"`
	Action      string     `json:"action"`
	Description string     `json:"description"`
	CreatedAt   *Timestamp `json:"created_at,omitempty"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Timestamp decodes the ISO-8601 variants the API emits. Values without an offset are UTC.
// Unparseable input decodes to the zero time and keeps Raw, so one bad record
// does not fail a whole listing.
type Timestamp struct {
	time.Time
	Raw string
}

func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	ts.Raw = s
	ts.Time = ParseTimestamp(s)
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		if ts.Raw != "" {
			return json.Marshal(ts.Raw)
		}
		return []byte("null"), nil
	}
	return json.Marshal(ts.UTC().Format(time.RFC3339))
}

// Invalid reports a value that was present but could not be parsed.
func (ts *Timestamp) Invalid() bool {
	return ts != nil && ts.IsZero() && ts.Raw != ""
}

// ParseTimestamp returns the zero time when s matches none of the known layouts.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
