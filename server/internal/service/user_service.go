package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Eursukkul/shareit/pkg/rabbitmq"
	"github.com/Eursukkul/shareit/server/internal/events"
	"github.com/Eursukkul/shareit/server/internal/models"
	"github.com/Eursukkul/shareit/server/internal/repository"
	"gorm.io/gorm"
)

// UserPatch holds the fields of a partial update; nil keeps the old value.
type UserPatch struct {
	Name  *string
	Email *string
}

type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch UserPatch) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	repo    repository.UserRepository
	emitter *events.Emitter
}

func NewUserService(repo repository.UserRepository, emitter *events.Emitter) UserService {
	return &userService{repo: repo, emitter: emitter}
}

func (s *userService) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email must not be blank", ErrValidation)
	}

	user := &models.User{Name: name, Email: email}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, patch UserPatch) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrUserNotFound)
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be blank", ErrValidation)
		}
		user.Name = name
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if email == "" {
			return nil, fmt.Errorf("%w: email must not be blank", ErrValidation)
		}
		user.Email = email
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.emitter.Emit(ctx, rabbitmq.Message{Type: rabbitmq.KeyUserUpdated, UserID: user.ID})
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return lookupErr(err, ErrUserNotFound)
	}
	s.emitter.Emit(ctx, rabbitmq.Message{Type: rabbitmq.KeyUserDeleted, UserID: id})
	return nil
}
