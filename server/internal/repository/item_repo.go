package repository

import (
	"context"
	"strings"

	"github.com/Eursukkul/shareit/server/internal/models"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id int64) (*models.Item, error)
	FindByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error)
	Search(ctx context.Context, text string, offset, limit int) ([]models.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches text case-insensitively against name or description of
// available items only. LIKE wildcards in text match literally.
func (r *itemRepository) Search(ctx context.Context, text string, offset, limit int) ([]models.Item, error) {
	pattern := "%" + likeEscaper.Replace(text) + "%"
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Where(`UPPER(name) LIKE UPPER(?) ESCAPE '\' OR UPPER(description) LIKE UPPER(?) ESCAPE '\'`, pattern, pattern).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
