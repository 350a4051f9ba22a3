package backend

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Op string

const (
	OpFetchRooms    Op = "fetch_rooms"
	OpFetchBookings Op = "fetch_bookings"
	OpCreateBooking Op = "create_booking"
	OpCancelBooking Op = "cancel_booking"
)

const minLatency = time.Millisecond

type Latency struct {
	FetchRooms    time.Duration
	FetchBookings time.Duration
	Create        time.Duration
	Cancel        time.Duration
}

func DefaultLatency() Latency {
	return Latency{
		FetchRooms:    400 * time.Millisecond,
		FetchBookings: 250 * time.Millisecond,
		Create:        400 * time.Millisecond,
		Cancel:        250 * time.Millisecond,
	}
}

type Options struct {
	Rooms   []domain.Room
	Latency Latency
	// FailureRate is the probability in [0,1] that a call fails.
	FailureRate float64
	// FailHook, when set, decides failures instead of FailureRate.
	FailHook func(op Op) error
	Now      func() time.Time
}

type Simulated struct {
	rooms    []domain.Room
	latency  Latency
	failRate float64
	failHook func(op Op) error
	now      func() time.Time
	logger   logger.Logger

	mu       sync.Mutex
	bookings []domain.Booking
}

func NewSimulated(opts Options, logger logger.Logger) *Simulated {
	rooms := opts.Rooms
	if rooms == nil {
		rooms = DefaultRooms
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Simulated{
		rooms:    append([]domain.Room(nil), rooms...),
		latency:  opts.Latency,
		failRate: opts.FailureRate,
		failHook: opts.FailHook,
		now:      now,
		logger:   logger,
		bookings: []domain.Booking{},
	}
}

func (s *Simulated) Seed(bookings []domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(make([]domain.Booking, 0, len(bookings)), bookings...)
}

func (s *Simulated) FetchRooms(ctx context.Context) ([]domain.Room, error) {
	if err := s.roundTrip(ctx, OpFetchRooms, s.latency.FetchRooms); err != nil {
		return nil, err
	}
	return append(make([]domain.Room, 0, len(s.rooms)), s.rooms...), nil
}

func (s *Simulated) FetchBookings(ctx context.Context) ([]domain.Booking, error) {
	if err := s.roundTrip(ctx, OpFetchBookings, s.latency.FetchBookings); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]domain.Booking, 0, len(s.bookings)), s.bookings...), nil
}

func (s *Simulated) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	if err := s.roundTrip(ctx, OpCreateBooking, s.latency.Create); err != nil {
		return nil, err
	}

	booking := domain.Booking{
		ID:         uuid.New().String(),
		GuestName:  req.GuestName,
		Email:      req.Email,
		Phone:      req.Phone,
		RoomID:     req.RoomID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		TotalPrice: req.TotalPrice,
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  s.now().UTC(),
	}

	s.mu.Lock()
	s.bookings = append([]domain.Booking{booking}, s.bookings...)
	s.mu.Unlock()

	s.logger.Debug("simulated booking created", logger.String("booking_id", booking.ID))
	return &booking, nil
}

// CancelBooking acknowledges any id; unknown ids are accepted as already gone.
func (s *Simulated) CancelBooking(ctx context.Context, id string) error {
	if err := s.roundTrip(ctx, OpCancelBooking, s.latency.Cancel); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i] = s.bookings[i].Cancelled()
		}
	}
	return nil
}

func (s *Simulated) roundTrip(ctx context.Context, op Op, latency time.Duration) error {
	if latency < minLatency {
		latency = minLatency
	}

	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	case <-timer.C:
	}

	if err := s.fail(op); err != nil {
		s.logger.Debug("simulated failure",
			logger.String("op", string(op)),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Simulated) fail(op Op) error {
	if s.failHook != nil {
		return s.failHook(op)
	}
	if s.failRate > 0 && rand.Float64() < s.failRate {
		return domain.ErrBackendUnavailable
	}
	return nil
}
