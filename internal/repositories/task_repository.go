package repositories

import (
	"context"
	"fmt"

	"taskboard/internal/models"
)

// API is the subset of apiclient.Client the repositories need.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

type TaskRepository interface {
	FindAll(ctx context.Context) ([]models.Task, error)
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	Store(ctx context.Context, payload models.TaskPayload) (*models.Task, error)
	Update(ctx context.Context, id int64, payload models.TaskPayload) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
	Assign(ctx context.Context, id int64, userID *int64) (*models.Task, error)
	RecentActivity(ctx context.Context) ([]models.Activity, error)
}

type taskRepository struct {
	api API
}

func NewTaskRepository(api API) TaskRepository {
	return &taskRepository{api: api}
}

func (r *taskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.api.Get(ctx, "/api/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	task := &models.Task{}
	if err := r.api.Get(ctx, taskPath(id), task); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Store(ctx context.Context, payload models.TaskPayload) (*models.Task, error) {
	task := &models.Task{}
	if err := r.api.Post(ctx, "/api/tasks", payload, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, id int64, payload models.TaskPayload) (*models.Task, error) {
	task := &models.Task{}
	if err := r.api.Put(ctx, taskPath(id), payload, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, taskPath(id))
}

func (r *taskRepository) Assign(ctx context.Context, id int64, userID *int64) (*models.Task, error) {
	task := &models.Task{}
	if err := r.api.Post(ctx, taskPath(id)+"/assign", models.AssignPayload{UserID: userID}, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) RecentActivity(ctx context.Context) ([]models.Activity, error) {
	activity := []models.Activity{}
	if err := r.api.Get(ctx, "/api/activity", &activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func taskPath(id int64) string {
	return fmt.Sprintf("/api/tasks/%d", id)
}
