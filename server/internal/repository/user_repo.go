package repository

import (
	"context"

	"github.com/Eursukkul/shareit/server/internal/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete removes the user together with everything that references them:
// comments and bookings made by the user or on the user's items, the items
// themselves and the user's requests. Items answering those requests are
// unlinked, not deleted. Returns gorm.ErrRecordNotFound for unknown ids.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownItems := tx.Model(&models.Item{}).Select("id").Where("owner_id = ?", id)
		ownRequests := tx.Model(&models.ItemRequest{}).Select("id").Where("requester_id = ?", id)

		if err := tx.Where("author_id = ? OR item_id IN (?)", id, ownItems).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booker_id = ? OR item_id IN (?)", id, ownItems).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Item{}).
			Where("request_id IN (?)", ownRequests).
			Update("request_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("requester_id = ?", id).Delete(&models.ItemRequest{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
