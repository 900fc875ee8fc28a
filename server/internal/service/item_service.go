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

// ItemPatch holds the fields of a partial update; nil keeps the old value.
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

// ItemDetails is an item with its comments and, for the owner, the
// bookings around now.
type ItemDetails struct {
	Item        models.Item
	LastBooking *models.Booking
	NextBooking *models.Booking
	Comments    []models.Comment
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, item *models.Item) error
	UpdateItem(ctx context.Context, ownerID, itemID int64, patch ItemPatch) (*models.Item, error)
	GetItem(ctx context.Context, userID, itemID int64) (*ItemDetails, error)
	ListOwnerItems(ctx context.Context, ownerID int64, from, size int) ([]ItemDetails, error)
	SearchItems(ctx context.Context, text string, from, size int) ([]models.Item, error)
	AddComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error)
}

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
	requestRepo repository.RequestRepository
	emitter     *events.Emitter
	now         func() time.Time
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
	requestRepo repository.RequestRepository,
	emitter *events.Emitter,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		requestRepo: requestRepo,
		emitter:     emitter,
		now:         now,
	}
}

func (s *itemService) CreateItem(ctx context.Context, ownerID int64, item *models.Item) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if item.Name == "" {
		return fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	if item.Description == "" {
		return fmt.Errorf("%w: description must not be blank", ErrValidation)
	}

	if err := requireUser(ctx, s.userRepo, ownerID); err != nil {
		return err
	}
	if item.RequestID != nil {
		if _, err := s.requestRepo.FindByID(ctx, *item.RequestID); err != nil {
			return lookupErr(err, ErrRequestNotFound)
		}
	}

	item.ID = 0
	item.OwnerID = ownerID
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("create item: %w", err)
	}

	s.emitter.Emit(ctx, rabbitmq.Message{Type: rabbitmq.KeyItemCreated, ItemID: item.ID, UserID: ownerID})
	return nil
}

func (s *itemService) UpdateItem(ctx context.Context, ownerID, itemID int64, patch ItemPatch) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, lookupErr(err, ErrItemNotFound)
	}
	if item.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be blank", ErrValidation)
		}
		item.Name = name
	}
	if patch.Description != nil {
		desc := strings.TrimSpace(*patch.Description)
		if desc == "" {
			return nil, fmt.Errorf("%w: description must not be blank", ErrValidation)
		}
		item.Description = desc
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.emitter.Emit(ctx, rabbitmq.Message{Type: rabbitmq.KeyItemUpdated, ItemID: item.ID, UserID: ownerID})
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, userID, itemID int64) (*ItemDetails, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, lookupErr(err, ErrItemNotFound)
	}

	details, err := s.details(ctx, []models.Item{*item}, item.OwnerID == userID)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *itemService) ListOwnerItems(ctx context.Context, ownerID int64, from, size int) ([]ItemDetails, error) {
	offset, err := pageOffset(from, size)
	if err != nil {
		return nil, err
	}
	if err := requireUser(ctx, s.userRepo, ownerID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByOwner(ctx, ownerID, offset, size)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, items, true)
}

// details attaches comments to items and, when withBookings is set, the
// last and next booking of each.
func (s *itemService) details(ctx context.Context, items []models.Item, withBookings bool) ([]ItemDetails, error) {
	out := make([]ItemDetails, len(items))
	if len(items) == 0 {
		return out, nil
	}

	itemIDs := make([]int64, len(items))
	index := make(map[int64]int, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
		index[item.ID] = i
		out[i] = ItemDetails{Item: item, Comments: []models.Comment{}}
	}

	comments, err := s.commentRepo.FindByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		i := index[c.ItemID]
		out[i].Comments = append(out[i].Comments, c)
	}

	if !withBookings {
		return out, nil
	}

	bookings, err := s.bookingRepo.FindActiveByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	byItem := make(map[int64][]models.Booking, len(items))
	for _, b := range bookings {
		byItem[b.ItemID] = append(byItem[b.ItemID], b)
	}
	at := s.now()
	for i := range out {
		out[i].LastBooking, out[i].NextBooking = lastAndNext(byItem[out[i].Item.ID], at)
	}
	return out, nil
}

// lastAndNext expects bookings ordered by start. last is the latest one
// that started at or before now, next the earliest one starting after it.
func lastAndNext(bookings []models.Booking, now time.Time) (last, next *models.Booking) {
	for i := range bookings {
		b := &bookings[i]
		if !b.Start.After(now) {
			last = b
			continue
		}
		if next == nil {
			next = b
		}
	}
	return last, next
}

func (s *itemService) SearchItems(ctx context.Context, text string, from, size int) ([]models.Item, error) {
	offset, err := pageOffset(from, size)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return []models.Item{}, nil
	}
	return s.itemRepo.Search(ctx, text, offset, size)
}

func (s *itemService) AddComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text must not be blank", ErrValidation)
	}

	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, lookupErr(err, ErrUserNotFound)
	}
	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		return nil, lookupErr(err, ErrItemNotFound)
	}

	at := s.now()
	ok, err := s.bookingRepo.HasCompletedBooking(ctx, authorID, itemID, at)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCommentNotAllowed
	}

	comment := &models.Comment{Text: text, ItemID: itemID, AuthorID: authorID, Created: at}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	comment.Author = author

	s.emitter.Emit(ctx, rabbitmq.Message{Type: rabbitmq.KeyCommentCreated, ItemID: itemID, UserID: authorID})
	return comment, nil
}
