package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stpnv0/RoomBooker/internal/pricing"
	"github.com/stpnv0/RoomBooker/internal/service/ports"
	"github.com/stpnv0/RoomBooker/internal/validation"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

type BookingService struct {
	api       ports.BookingAPI
	store     ports.BookingStore
	validator *validation.Validator
	now       func() time.Time
	logger    logger.Logger
}

func NewBookingService(
	api ports.BookingAPI,
	store ports.BookingStore,
	validator *validation.Validator,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		api:       api,
		store:     store,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *BookingService) Bootstrap(ctx context.Context) error {
	start := time.Now()
	if err := s.Reload(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	s.logger.Info("bootstrap complete", logger.Duration("took", time.Since(start)))
	return nil
}

// Reload fetches rooms and bookings concurrently. Each successful fetch is
// applied on its own; a failed one leaves the matching collection untouched.
// Both failures are reported.
func (s *BookingService) Reload(ctx context.Context) error {
	var roomsErr, bookingsErr error

	var g errgroup.Group
	g.Go(func() error {
		roomsErr = s.ReloadRooms(ctx)
		return nil
	})
	g.Go(func() error {
		bookingsErr = s.ReloadBookings(ctx)
		return nil
	})
	_ = g.Wait()

	return errors.Join(roomsErr, bookingsErr)
}

func (s *BookingService) ReloadRooms(ctx context.Context) error {
	rooms, err := s.api.FetchRooms(ctx)
	if err != nil {
		s.logger.Error("failed to fetch rooms", logger.String("error", err.Error()))
		return fmt.Errorf("%w: %w", domain.ErrRoomsUnavailable, err)
	}

	s.store.SetRooms(rooms)
	s.logger.Debug("rooms reloaded", logger.Int("count", len(rooms)))
	return nil
}

// ReloadBookings treats the fetched bookings as authoritative.
func (s *BookingService) ReloadBookings(ctx context.Context) error {
	bookings, err := s.api.FetchBookings(ctx)
	if err != nil {
		s.logger.Error("failed to fetch bookings", logger.String("error", err.Error()))
		return fmt.Errorf("%w: %w", domain.ErrBookingsUnavailable, err)
	}

	if err = s.store.SetBookings(bookings); err != nil {
		return fmt.Errorf("apply bookings: %w", err)
	}
	s.logger.Debug("bookings reloaded", logger.Int("count", len(bookings)))
	return nil
}

func (s *BookingService) Quote(roomID, checkIn, checkOut string) int64 {
	room, ok := s.store.Snapshot().FindRoom(roomID)
	if !ok {
		return 0
	}
	return pricing.Total(&room, checkIn, checkOut)
}

func (s *BookingService) Submit(ctx context.Context, draft domain.Draft) (*domain.Booking, error) {
	errs := s.validator.Validate(draft, s.now().UTC())

	var room *domain.Room
	if r, ok := s.store.Snapshot().FindRoom(draft.RoomID); ok {
		room = &r
	}

	total := pricing.Total(room, draft.CheckIn, draft.CheckOut)
	if total <= 0 {
		errs.AddIfMissing("checkOut", validation.MsgInvalidStayDates)
	}
	if draft.RoomID != "" && (room == nil || !room.Available) {
		errs.AddIfMissing("roomId", validation.MsgRoomUnavailable)
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}

	booking, err := s.api.CreateBooking(ctx, domain.BookingRequest{Draft: draft, TotalPrice: total})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err = s.store.AddBooking(*booking); err != nil {
		return nil, fmt.Errorf("store booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", booking.RoomID),
		logger.Int64("total_price", booking.TotalPrice),
	)

	return booking, nil
}

// Cancel is pessimistic: the store changes only after the backend acks.
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	if err := s.api.CancelBooking(ctx, id); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	if err := s.store.MarkCancelled(id); err != nil {
		return fmt.Errorf("mark cancelled: %w", err)
	}

	s.logger.Info("booking cancelled", logger.String("booking_id", id))
	return nil
}
