package handler

import (
	"context"
	"time"

	"github.com/Eursukkul/shareit/server/internal/models"
	"github.com/Eursukkul/shareit/server/internal/service"
)

// --- Mock UserService ---

type mockUserService struct {
	createFn func(ctx context.Context, name, email string) (*models.User, error)
	updateFn func(ctx context.Context, id int64, patch service.UserPatch) (*models.User, error)
	getFn    func(ctx context.Context, id int64) (*models.User, error)
	listFn   func(ctx context.Context) ([]models.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockUserService) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	return m.createFn(ctx, name, email)
}
func (m *mockUserService) UpdateUser(ctx context.Context, id int64, patch service.UserPatch) (*models.User, error) {
	return m.updateFn(ctx, id, patch)
}
func (m *mockUserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return m.getFn(ctx, id)
}
func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}
func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// --- Mock ItemService ---

type mockItemService struct {
	createFn  func(ctx context.Context, ownerID int64, item *models.Item) error
	updateFn  func(ctx context.Context, ownerID, itemID int64, patch service.ItemPatch) (*models.Item, error)
	getFn     func(ctx context.Context, userID, itemID int64) (*service.ItemDetails, error)
	listFn    func(ctx context.Context, ownerID int64, from, size int) ([]service.ItemDetails, error)
	searchFn  func(ctx context.Context, text string, from, size int) ([]models.Item, error)
	commentFn func(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error)
}

func (m *mockItemService) CreateItem(ctx context.Context, ownerID int64, item *models.Item) error {
	return m.createFn(ctx, ownerID, item)
}
func (m *mockItemService) UpdateItem(ctx context.Context, ownerID, itemID int64, patch service.ItemPatch) (*models.Item, error) {
	return m.updateFn(ctx, ownerID, itemID, patch)
}
func (m *mockItemService) GetItem(ctx context.Context, userID, itemID int64) (*service.ItemDetails, error) {
	return m.getFn(ctx, userID, itemID)
}
func (m *mockItemService) ListOwnerItems(ctx context.Context, ownerID int64, from, size int) ([]service.ItemDetails, error) {
	return m.listFn(ctx, ownerID, from, size)
}
func (m *mockItemService) SearchItems(ctx context.Context, text string, from, size int) ([]models.Item, error) {
	return m.searchFn(ctx, text, from, size)
}
func (m *mockItemService) AddComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error) {
	return m.commentFn(ctx, authorID, itemID, text)
}

// --- Mock BookingService ---

type mockBookingService struct {
	createFn     func(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error)
	decideFn     func(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error)
	getFn        func(ctx context.Context, userID, bookingID int64) (*models.Booking, error)
	listBookerFn func(ctx context.Context, bookerID int64, state string, from, size int) ([]models.Booking, error)
	listOwnerFn  func(ctx context.Context, ownerID int64, state string, from, size int) ([]models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error) {
	return m.createFn(ctx, bookerID, itemID, start, end)
}
func (m *mockBookingService) DecideBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error) {
	return m.decideFn(ctx, ownerID, bookingID, approved)
}
func (m *mockBookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	return m.getFn(ctx, userID, bookingID)
}
func (m *mockBookingService) ListBookerBookings(ctx context.Context, bookerID int64, state string, from, size int) ([]models.Booking, error) {
	return m.listBookerFn(ctx, bookerID, state, from, size)
}
func (m *mockBookingService) ListOwnerBookings(ctx context.Context, ownerID int64, state string, from, size int) ([]models.Booking, error) {
	return m.listOwnerFn(ctx, ownerID, state, from, size)
}

// --- Mock RequestService ---

type mockRequestService struct {
	createFn     func(ctx context.Context, requesterID int64, description string) (*models.ItemRequest, error)
	listOwnFn    func(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	listOthersFn func(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error)
	getFn        func(ctx context.Context, userID, requestID int64) (*models.ItemRequest, error)
}

func (m *mockRequestService) CreateRequest(ctx context.Context, requesterID int64, description string) (*models.ItemRequest, error) {
	return m.createFn(ctx, requesterID, description)
}
func (m *mockRequestService) ListOwnRequests(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	return m.listOwnFn(ctx, requesterID)
}
func (m *mockRequestService) ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error) {
	return m.listOthersFn(ctx, userID, from, size)
}
func (m *mockRequestService) GetRequest(ctx context.Context, userID, requestID int64) (*models.ItemRequest, error) {
	return m.getFn(ctx, userID, requestID)
}
