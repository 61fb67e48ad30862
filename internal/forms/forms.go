// Package forms holds the typed form data bound from HTML submissions.
package forms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// Время по умолчанию, если указан только день
	DefaultDueTime = "12:00"
)

var ErrMissingFields = errors.New("required fields missing")

// TaskForm is the create/edit task form. An empty ID means "create".
type TaskForm struct {
	ID          string `form:"id"`
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Priority    string `form:"priority" binding:"omitempty,oneof=low medium high"`
	Status      string `form:"status"`
	AssignedTo  string `form:"assigned_to"`
	DueDate     string `form:"due_date"` // 2006-01-02
	DueTime     string `form:"due_time"` // 15:04, optional
}

// TaskID reports the id of the task being edited; ok is false for a new task.
func (f TaskForm) TaskID() (id int64, ok bool, err error) {
	return parseOptionalID(f.ID, "task id")
}

// DueAt combines DueDate and DueTime in loc. ok is false when no date was entered.
func (f TaskForm) DueAt(loc *time.Location) (t time.Time, ok bool, err error) {
	date := strings.TrimSpace(f.DueDate)
	if date == "" {
		return time.Time{}, false, nil
	}
	clock := strings.TrimSpace(f.DueTime)
	if clock == "" {
		clock = DefaultDueTime
	}
	t, err = time.ParseInLocation(dateLayout+"T"+timeLayout, date+"T"+clock, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid due date %q %q: %w", date, clock, err)
	}
	return t, true, nil
}

// Payload converts the form into the API body.
func (f TaskForm) Payload(loc *time.Location) (models.TaskPayload, error) {
	p := models.TaskPayload{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		Priority:    models.TaskPriority(f.Priority),
		Status:      models.TaskStatus(f.Status),
	}
	if p.Priority == "" {
		p.Priority = models.PriorityMedium
	}
	if p.Status == "" {
		p.Status = models.StatusPending
	}

	assignee, ok, err := parseOptionalID(f.AssignedTo, "assignee")
	if err != nil {
		return models.TaskPayload{}, err
	}
	if ok {
		p.AssignedTo = &assignee
	}

	due, ok, err := f.DueAt(loc)
	if err != nil {
		return models.TaskPayload{}, err
	}
	if ok {
		p.DueDate = due.UTC().Format(time.RFC3339)
	}
	return p, nil
}

// EditTaskForm pre-fills the form from an existing task.
func EditTaskForm(t *models.Task, loc *time.Location) TaskForm {
	f := TaskForm{
		ID:          strconv.FormatInt(t.ID, 10),
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
	}
	if t.AssignedTo != nil {
		f.AssignedTo = strconv.FormatInt(*t.AssignedTo, 10)
	}
	if due, ok := t.Due(); ok {
		local := due.In(loc)
		f.DueDate = local.Format(dateLayout)
		f.DueTime = local.Format(timeLayout)
	}
	return f
}

// AssignForm carries the chosen user; an empty UserID unassigns the task.
type AssignForm struct {
	UserID string `form:"user_id"`
}

func (f AssignForm) Assignee() (*int64, error) {
	id, ok, err := parseOptionalID(f.UserID, "user id")
	if err != nil || !ok {
		return nil, err
	}
	return &id, nil
}

type UserForm struct {
	Username string `form:"username"`
	Email    string `form:"email"`
}

// Validate mirrors the required-field check done before any request is sent.
func (f UserForm) Validate() error {
	if strings.TrimSpace(f.Username) == "" || strings.TrimSpace(f.Email) == "" {
		return ErrMissingFields
	}
	return nil
}

func (f UserForm) Request() models.CreateUserRequest {
	return models.CreateUserRequest{
		Username: strings.TrimSpace(f.Username),
		Email:    strings.TrimSpace(f.Email),
	}
}

func parseOptionalID(raw, what string) (int64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, fmt.Errorf("invalid %s %q", what, raw)
	}
	return id, true, nil
}
