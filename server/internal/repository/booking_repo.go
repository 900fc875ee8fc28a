package repository

import (
	"context"
	"time"

	"github.com/Eursukkul/shareit/server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id int64) (*models.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id int64) (*models.Booking, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID int64, status models.BookingStatus) error
	FindByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error)
	FindByItemOwner(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error)
	FindActiveByItems(ctx context.Context, itemIDs []int64) ([]models.Booking, error)
	HasCompletedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Preload("Item").Preload("Booker").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate locks the booking row within tx. SQLite ignores the
// locking clause; its single connection already serialises writers.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID int64, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

func (r *bookingRepository) FindByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("bookings.booker_id = ?", bookerID)

	var bookings []models.Booking
	if err := withState(q, state, now).Offset(offset).Limit(limit).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByItemOwner(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)

	var bookings []models.Booking
	if err := withState(q, state, now).Offset(offset).Limit(limit).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// withState filters q to the bookings in state at now and orders them
// newest first.
func withState(q *gorm.DB, state models.BookingState, now time.Time) *gorm.DB {
	switch state {
	case models.StateCurrent:
		q = q.Where("bookings.start_date < ? AND bookings.end_date > ?", now, now)
	case models.StatePast:
		return q.Where("bookings.end_date < ?", now).
			Order("bookings.end_date DESC").
			Order("bookings.id DESC")
	case models.StateFuture:
		q = q.Where("bookings.start_date > ?", now)
	case models.StateWaiting:
		q = q.Where("bookings.status = ?", models.StatusWaiting)
	case models.StateRejected:
		q = q.Where("bookings.status = ?", models.StatusRejected)
	}
	return q.Order("bookings.start_date DESC").Order("bookings.id DESC")
}

// FindActiveByItems returns the non-rejected bookings of the given items
// ordered by start.
func (r *bookingRepository) FindActiveByItems(ctx context.Context, itemIDs []int64) ([]models.Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id IN ? AND status <> ?", itemIDs, models.StatusRejected).
		Order("start_date ASC").
		Order("id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// HasCompletedBooking reports whether bookerID holds an approved booking of
// itemID that ended before now.
func (r *bookingRepository) HasCompletedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ? AND status = ? AND end_date < ?",
			bookerID, itemID, models.StatusApproved, now).
		Count(&count).Error
	return count > 0, err
}
