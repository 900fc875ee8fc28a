package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Eursukkul/shareit/pkg/rabbitmq"
	"github.com/Eursukkul/shareit/server/internal/events"
	"github.com/Eursukkul/shareit/server/internal/models"
	"github.com/Eursukkul/shareit/server/internal/repository"
)

type RequestService interface {
	CreateRequest(ctx context.Context, requesterID int64, description string) (*models.ItemRequest, error)
	ListOwnRequests(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error)
	GetRequest(ctx context.Context, userID, requestID int64) (*models.ItemRequest, error)
}

type requestService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	emitter     *events.Emitter
	now         func() time.Time
}

func NewRequestService(requestRepo repository.RequestRepository, userRepo repository.UserRepository, emitter *events.Emitter) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		emitter:     emitter,
		now:         now,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, requesterID int64, description string) (*models.ItemRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description must not be blank", ErrValidation)
	}
	if err := requireUser(ctx, s.userRepo, requesterID); err != nil {
		return nil, err
	}

	request := &models.ItemRequest{
		Description: description,
		RequesterID: requesterID,
		Created:     s.now(),
		Items:       []models.Item{},
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.emitter.Emit(ctx, rabbitmq.Message{Type: rabbitmq.KeyRequestCreated, RequestID: request.ID, UserID: requesterID})
	return request, nil
}

func (s *requestService) ListOwnRequests(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	if err := requireUser(ctx, s.userRepo, requesterID); err != nil {
		return nil, err
	}
	return s.requestRepo.FindByRequester(ctx, requesterID)
}

func (s *requestService) ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error) {
	offset, err := pageOffset(from, size)
	if err != nil {
		return nil, err
	}
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	return s.requestRepo.FindOthers(ctx, userID, offset, size)
}

func (s *requestService) GetRequest(ctx context.Context, userID, requestID int64) (*models.ItemRequest, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, lookupErr(err, ErrRequestNotFound)
	}
	return request, nil
}
