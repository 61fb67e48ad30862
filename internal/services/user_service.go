package services

import (
	"context"
	"fmt"
	"log"

	"taskboard/internal/forms"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, form forms.UserForm) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// Create validates locally first; an invalid form never reaches the API.
func (s *userService) Create(ctx context.Context, form forms.UserForm) (*models.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	user, err := s.repo.Create(ctx, form.Request())
	if err != nil {
		log.Printf("[user][create][err] username=%q: %v", form.Username, err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	log.Printf("[user][create][ok] id=%d username=%q", user.ID, user.Username)
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("[user][delete][err] id=%d: %v", id, err)
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	log.Printf("[user][delete][ok] id=%d", id)
	return nil
}
