package repository

import (
	"context"

	"github.com/Eursukkul/shareit/server/internal/models"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByItems(ctx context.Context, itemIDs []int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Omit("Author").Create(comment).Error
}

func (r *commentRepository) FindByItems(ctx context.Context, itemIDs []int64) ([]models.Comment, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("created ASC").
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
