package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/shareit/pkg/metrics"
	"github.com/Eursukkul/shareit/pkg/rabbitmq"
	"github.com/Eursukkul/shareit/server/internal/events"
	"github.com/Eursukkul/shareit/server/internal/models"
	"github.com/Eursukkul/shareit/server/internal/repository"
	"gorm.io/gorm"
)

// clockSkew is how far a booking start may trail the server clock; the
// gateway already rejected starts in the past by its own clock.
const clockSkew = time.Minute

type BookingService interface {
	CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error)
	DecideBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (*models.Booking, error)
	ListBookerBookings(ctx context.Context, bookerID int64, state string, from, size int) ([]models.Booking, error)
	ListOwnerBookings(ctx context.Context, ownerID int64, state string, from, size int) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	emitter     *events.Emitter
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	emitter *events.Emitter,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		emitter:     emitter,
		now:         now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error) {
	booker, err := s.userRepo.FindByID(ctx, bookerID)
	if err != nil {
		return nil, lookupErr(err, ErrUserNotFound)
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, lookupErr(err, ErrItemNotFound)
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	start, end = start.UTC(), end.UTC()
	now := s.now()
	switch {
	case start.IsZero() || end.IsZero():
		return nil, fmt.Errorf("%w: start and end are required", ErrBookingDates)
	case start.Before(now.Add(-clockSkew)):
		return nil, fmt.Errorf("%w: start is in the past", ErrBookingDates)
	case !end.After(now):
		return nil, fmt.Errorf("%w: end is in the past", ErrBookingDates)
	case !start.Before(end):
		return nil, fmt.Errorf("%w: start must be before end", ErrBookingDates)
	}

	if item.OwnerID == bookerID {
		return nil, ErrOwnBooking
	}

	booking := &models.Booking{
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   models.StatusWaiting,
	}
	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.bookingRepo.Create(ctx, tx, booking)
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	booking.Item = item
	booking.Booker = booker

	metrics.BookingsTotal.WithLabelValues(string(models.StatusWaiting)).Inc()
	s.emitter.Emit(ctx, rabbitmq.Message{
		Type:      rabbitmq.KeyBookingCreated,
		BookingID: booking.ID,
		ItemID:    itemID,
		UserID:    bookerID,
	})
	return booking, nil
}

func (s *bookingService) DecideBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, lookupErr(err, ErrBookingNotFound)
	}
	if booking.Item == nil || booking.Item.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}

	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the booking row so concurrent decisions serialise.
		locked, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			return lookupErr(err, ErrBookingNotFound)
		}
		if locked.Status != models.StatusWaiting {
			return ErrBookingDecided
		}
		return s.bookingRepo.UpdateStatus(ctx, tx, bookingID, status)
	})
	if err != nil {
		return nil, err
	}
	booking.Status = status

	key := rabbitmq.KeyBookingRejected
	if approved {
		key = rabbitmq.KeyBookingApproved
	}
	metrics.BookingsTotal.WithLabelValues(string(status)).Inc()
	s.emitter.Emit(ctx, rabbitmq.Message{
		Type:      key,
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		UserID:    ownerID,
	})
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, lookupErr(err, ErrBookingNotFound)
	}
	if booking.BookerID != userID && (booking.Item == nil || booking.Item.OwnerID != userID) {
		return nil, ErrAccessDenied
	}
	return booking, nil
}

func (s *bookingService) ListBookerBookings(ctx context.Context, bookerID int64, state string, from, size int) ([]models.Booking, error) {
	st, offset, err := s.listArgs(ctx, bookerID, state, from, size)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.FindByBooker(ctx, bookerID, st, s.now(), offset, size)
}

func (s *bookingService) ListOwnerBookings(ctx context.Context, ownerID int64, state string, from, size int) ([]models.Booking, error) {
	st, offset, err := s.listArgs(ctx, ownerID, state, from, size)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.FindByItemOwner(ctx, ownerID, st, s.now(), offset, size)
}

func (s *bookingService) listArgs(ctx context.Context, userID int64, state string, from, size int) (models.BookingState, int, error) {
	st, ok := models.ParseBookingState(state)
	if !ok {
		return "", 0, ErrUnknownState
	}
	offset, err := pageOffset(from, size)
	if err != nil {
		return "", 0, err
	}
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return "", 0, err
	}
	return st, offset, nil
}
