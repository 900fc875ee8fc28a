package service

import (
	"context"
	"sync"
	"time"

	"github.com/Eursukkul/shareit/server/internal/models"
	"gorm.io/gorm"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn   func(ctx context.Context, user *models.User) error
	updateFn   func(ctx context.Context, user *models.User) error
	findByIDFn func(ctx context.Context, id int64) (*models.User, error)
	findAllFn  func(ctx context.Context) ([]models.User, error)
	deleteFn   func(ctx context.Context, id int64) error
	known      map[int64]bool
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.updateFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	if m.known[id] {
		return &models.User{ID: id, Name: "user", Email: "user@example.com"}, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	return m.findAllFn(ctx)
}
func (m *mockUserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return m.known[id], nil
}
func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// --- Mock ItemRepository ---

type mockItemRepo struct {
	createFn      func(ctx context.Context, item *models.Item) error
	updateFn      func(ctx context.Context, item *models.Item) error
	findByIDFn    func(ctx context.Context, id int64) (*models.Item, error)
	findByOwnerFn func(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error)
	searchFn      func(ctx context.Context, text string, offset, limit int) ([]models.Item, error)
}

func (m *mockItemRepo) Create(ctx context.Context, item *models.Item) error {
	return m.createFn(ctx, item)
}
func (m *mockItemRepo) Update(ctx context.Context, item *models.Item) error {
	return m.updateFn(ctx, item)
}
func (m *mockItemRepo) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockItemRepo) FindByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error) {
	return m.findByOwnerFn(ctx, ownerID, offset, limit)
}
func (m *mockItemRepo) Search(ctx context.Context, text string, offset, limit int) ([]models.Item, error) {
	return m.searchFn(ctx, text, offset, limit)
}

// --- Mock BookingRepository (item side only) ---

type mockBookingRepo struct {
	activeFn    func(ctx context.Context, itemIDs []int64) ([]models.Booking, error)
	completedFn func(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id int64) (*models.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id int64) (*models.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id int64, status models.BookingStatus) error {
	return nil
}
func (m *mockBookingRepo) FindByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) FindByItemOwner(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) FindActiveByItems(ctx context.Context, itemIDs []int64) ([]models.Booking, error) {
	if m.activeFn != nil {
		return m.activeFn(ctx, itemIDs)
	}
	return nil, nil
}
func (m *mockBookingRepo) HasCompletedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	if m.completedFn != nil {
		return m.completedFn(ctx, bookerID, itemID, now)
	}
	return false, nil
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	createFn      func(ctx context.Context, c *models.Comment) error
	findByItemsFn func(ctx context.Context, itemIDs []int64) ([]models.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	return m.createFn(ctx, c)
}
func (m *mockCommentRepo) FindByItems(ctx context.Context, itemIDs []int64) ([]models.Comment, error) {
	if m.findByItemsFn != nil {
		return m.findByItemsFn(ctx, itemIDs)
	}
	return nil, nil
}

// --- Mock RequestRepository ---

type mockRequestRepo struct {
	createFn     func(ctx context.Context, r *models.ItemRequest) error
	findByIDFn   func(ctx context.Context, id int64) (*models.ItemRequest, error)
	findByReqFn  func(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	findOthersFn func(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error)
}

func (m *mockRequestRepo) Create(ctx context.Context, r *models.ItemRequest) error {
	return m.createFn(ctx, r)
}
func (m *mockRequestRepo) FindByID(ctx context.Context, id int64) (*models.ItemRequest, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRequestRepo) FindByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	return m.findByReqFn(ctx, requesterID)
}
func (m *mockRequestRepo) FindOthers(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error) {
	return m.findOthersFn(ctx, requesterID, offset, limit)
}

// --- Recording publisher ---

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return nil
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}
