package repositories

import (
	"context"
	"fmt"

	"taskboard/internal/models"
)

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	api API
}

func NewUserRepository(api API) UserRepository {
	return &userRepository{api: api}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.api.Get(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	user := &models.User{}
	if err := r.api.Post(ctx, "/api/users", req, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/api/users/%d", id))
}
