// internal/services/task_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"taskboard/internal/apiclient"
	"taskboard/internal/forms"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

// Alert fallbacks, one per action.
const (
	MsgSaveTask    = "Error saving task"
	MsgLoadTask    = "Error loading task"
	MsgDeleteTask  = "Error deleting task"
	MsgAssignTask  = "Error assigning task"
	MsgLoadUsers   = "Error loading users"
	MsgCreateUser  = "Error creating user"
	MsgDeleteUser  = "Error deleting user"
	MsgLoadTasks   = "Error loading tasks"
	MsgExport      = "Error exporting tasks"
	MsgMissingUser = "Please fill in all required fields"
)

// AlertMessage collapses any failure into the single message shown to the user:
// the server-provided text when there is one, otherwise fallback.
func AlertMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, forms.ErrMissingFields) {
		return MsgMissingUser
	}
	return fallback
}

// TaskService defines the interface for task-related actions of the UI.
type TaskService interface {
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, id int64) (*models.Task, error)
	// Save creates the task when the form has no id and updates it otherwise.
	Save(ctx context.Context, form forms.TaskForm) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
	AssignOptions(ctx context.Context, id int64) (*AssignView, error)
	Assign(ctx context.Context, id int64, userID *int64) (*models.Task, error)
	RecentActivity(ctx context.Context) ([]models.Activity, error)
}

type UserOption struct {
	Value    string
	Label    string
	Selected bool
}

// AssignView is everything the assign dialog needs.
type AssignView struct {
	Task    *models.Task
	Options []UserOption
}

type taskService struct {
	tasks repositories.TaskRepository
	users repositories.UserRepository
	loc   *time.Location

	tg   *TelegramService
	mail EmailService
}

// NewTaskService creates a new instance of TaskService. tg and mail may be nil.
func NewTaskService(tasks repositories.TaskRepository, users repositories.UserRepository, loc *time.Location, tg *TelegramService, mail EmailService) TaskService {
	return &taskService{tasks: tasks, users: users, loc: loc, tg: tg, mail: mail}
}

func (s *taskService) List(ctx context.Context) ([]models.Task, error) {
	return s.tasks.FindAll(ctx)
}

func (s *taskService) Get(ctx context.Context, id int64) (*models.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

func (s *taskService) Save(ctx context.Context, form forms.TaskForm) (*models.Task, error) {
	id, existing, err := form.TaskID()
	if err != nil {
		return nil, err
	}
	payload, err := form.Payload(s.loc)
	if err != nil {
		return nil, err
	}

	if !existing {
		task, err := s.tasks.Store(ctx, payload)
		if err != nil {
			log.Printf("[task][create][err] %v", err)
			return nil, fmt.Errorf("create task: %w", err)
		}
		log.Printf("[task][create][ok] id=%d title=%q", task.ID, task.Title)
		s.notify("📌 New task", task)
		return task, nil
	}

	task, err := s.tasks.Update(ctx, id, payload)
	if err != nil {
		log.Printf("[task][update][err] id=%d: %v", id, err)
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	log.Printf("[task][update][ok] id=%d", id)
	s.notify("✏️ Task updated", task)
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		log.Printf("[task][delete][err] id=%d: %v", id, err)
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	log.Printf("[task][delete][ok] id=%d", id)
	if s.tg != nil {
		if err := s.tg.SendMessage("🗑️ Task #" + strconv.FormatInt(id, 10) + " deleted"); err != nil {
			log.Printf("[task][notify][err] %v", err)
		}
	}
	return nil
}

func (s *taskService) AssignOptions(ctx context.Context, id int64) (*AssignView, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}

	view := &AssignView{Task: task}
	view.Options = append(view.Options, UserOption{Value: "", Label: "Unassigned", Selected: task.AssignedTo == nil})
	for _, u := range users {
		view.Options = append(view.Options, UserOption{
			Value:    strconv.FormatInt(u.ID, 10),
			Label:    fmt.Sprintf("%s (ID: %d)", u.Username, u.ID),
			Selected: task.AssignedTo != nil && *task.AssignedTo == u.ID,
		})
	}
	return view, nil
}

func (s *taskService) Assign(ctx context.Context, id int64, userID *int64) (*models.Task, error) {
	task, err := s.tasks.Assign(ctx, id, userID)
	if err != nil {
		log.Printf("[task][assign][err] id=%d: %v", id, err)
		return nil, fmt.Errorf("assign task %d: %w", id, err)
	}
	if userID == nil {
		log.Printf("[task][assign][ok] id=%d unassigned", id)
		s.notify("👤 Task unassigned", task)
		return task, nil
	}
	log.Printf("[task][assign][ok] id=%d assignee=%d", id, *userID)
	s.notify("👤 Task assigned", task)
	s.mailAssignee(ctx, task, *userID)
	return task, nil
}

func (s *taskService) RecentActivity(ctx context.Context) ([]models.Activity, error) {
	return s.tasks.RecentActivity(ctx)
}

// === notification helpers (best effort, never fail the action) ===

func (s *taskService) notify(prefix string, t *models.Task) {
	if s.tg == nil || t == nil {
		return
	}
	if err := s.tg.SendMessage(FormatTask(prefix, t, s.loc)); err != nil {
		log.Printf("[task][notify][err] id=%d: %v", t.ID, err)
	}
}

func (s *taskService) mailAssignee(ctx context.Context, t *models.Task, userID int64) {
	if s.mail == nil {
		return
	}
	users, err := s.users.List(ctx)
	if err != nil {
		log.Printf("[task][mail][err] list users: %v", err)
		return
	}
	for _, u := range users {
		if u.ID != userID {
			continue
		}
		if err := s.mail.SendAssignmentEmail(u, t, s.loc); err != nil {
			log.Printf("[task][mail][err] to=%s: %v", u.Email, err)
		}
		return
	}
	log.Printf("[task][mail] skip: user %d not found", userID)
}
