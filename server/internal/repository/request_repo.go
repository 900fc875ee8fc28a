package repository

import (
	"context"

	"github.com/Eursukkul/shareit/server/internal/models"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(ctx context.Context, request *models.ItemRequest) error
	FindByID(ctx context.Context, id int64) (*models.ItemRequest, error)
	FindByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	FindOthers(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("items.id ASC")
	})
}

func (r *requestRepository) Create(ctx context.Context, request *models.ItemRequest) error {
	return r.db.WithContext(ctx).Omit("Items").Create(request).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id int64) (*models.ItemRequest, error) {
	var request models.ItemRequest
	if err := preloadItems(r.db.WithContext(ctx)).First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) FindByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := preloadItems(r.db.WithContext(ctx)).
		Where("requester_id = ?", requesterID).
		Order("created DESC").
		Order("id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// FindOthers pages through requests made by anyone except requesterID.
func (r *requestRepository) FindOthers(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := preloadItems(r.db.WithContext(ctx)).
		Where("requester_id <> ?", requesterID).
		Order("created DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
