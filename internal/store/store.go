package store

import (
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const DefaultKey = "hotel_booking_app_state_v1"

type Storage interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

type Listener func(domain.Snapshot)

type Subscription uint64

type subscriber struct {
	id Subscription
	fn Listener
}

type Store struct {
	storage Storage
	key     string
	logger  logger.Logger

	// writeMu serializes mutations end to end: commit, persist, notify.
	writeMu sync.Mutex

	mu       sync.RWMutex
	rooms    []domain.Room
	bookings []domain.Booking

	subMu       sync.Mutex
	nextSub     Subscription
	subscribers []subscriber
}

func New(storage Storage, key string, logger logger.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		storage:  storage,
		key:      key,
		logger:   logger,
		rooms:    []domain.Room{},
		bookings: []domain.Booking{},
	}
}

// Initialize loads persisted bookings. Missing, unreadable or malformed data
// leaves the store with no bookings; it never fails.
func (s *Store) Initialize() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	bookings := s.load()

	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()

	s.logger.Info("bookings restored",
		logger.String("key", s.key),
		logger.Int("count", len(bookings)),
	)
}

func (s *Store) load() []domain.Booking {
	raw, ok, err := s.storage.Get(s.key)
	if err != nil {
		s.logger.Warn("failed to read persisted bookings, starting empty",
			logger.String("key", s.key),
			logger.String("error", err.Error()),
		)
		return []domain.Booking{}
	}
	if !ok {
		return []domain.Booking{}
	}

	var bookings []domain.Booking
	if err = json.Unmarshal(raw, &bookings); err != nil {
		s.logger.Warn("persisted bookings are malformed, starting empty",
			logger.String("key", s.key),
			logger.String("error", err.Error()),
		)
		return []domain.Booking{}
	}

	for _, b := range bookings {
		if !b.Status.Valid() {
			s.logger.Warn("persisted booking has unknown status, starting empty",
				logger.String("booking_id", b.ID),
				logger.String("status", string(b.Status)),
			)
			return []domain.Booking{}
		}
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings
}

// Subscribe registers fn to receive a snapshot after every mutation.
// fn runs on the mutating goroutine and must not mutate the store itself.
func (s *Store) Subscribe(fn Listener) Subscription {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSub++
	s.subscribers = append(s.subscribers, subscriber{id: s.nextSub, fn: fn})
	return s.nextSub
}

// Unsubscribe reports whether id was registered.
func (s *Store) Unsubscribe(id Subscription) bool {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for i, sub := range s.subscribers {
		if sub.id == id {
			s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Snapshot{
		Rooms:    append(make([]domain.Room, 0, len(s.rooms)), s.rooms...),
		Bookings: append(make([]domain.Booking, 0, len(s.bookings)), s.bookings...),
	}
}

func (s *Store) SetRooms(rooms []domain.Room) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := append(make([]domain.Room, 0, len(rooms)), rooms...)

	s.mu.Lock()
	s.rooms = next
	s.mu.Unlock()

	s.notify()
}

func (s *Store) SetBookings(bookings []domain.Booking) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := append(make([]domain.Booking, 0, len(bookings)), bookings...)
	if err := s.commitBookings(next); err != nil {
		return fmt.Errorf("set bookings: %w", err)
	}

	s.notify()
	return nil
}

// AddBooking prepends; bookings are kept newest first.
func (s *Store) AddBooking(b domain.Booking) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	next := make([]domain.Booking, 0, len(s.bookings)+1)
	next = append(next, b)
	next = append(next, s.bookings...)
	s.mu.RUnlock()

	if err := s.commitBookings(next); err != nil {
		return fmt.Errorf("add booking: %w", err)
	}

	s.logger.Debug("booking added", logger.String("booking_id", b.ID))
	s.notify()
	return nil
}

// MarkCancelled flips the booking with id to cancelled in place. An unknown
// id changes nothing, but bookings are still persisted and subscribers
// notified.
func (s *Store) MarkCancelled(id string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	next := append(make([]domain.Booking, 0, len(s.bookings)), s.bookings...)
	s.mu.RUnlock()

	found := false
	for i := range next {
		if next[i].ID == id {
			next[i] = next[i].Cancelled()
			found = true
		}
	}

	if err := s.commitBookings(next); err != nil {
		return fmt.Errorf("mark cancelled: %w", err)
	}

	if !found {
		s.logger.Debug("cancel for unknown booking ignored", logger.String("booking_id", id))
	}
	s.notify()
	return nil
}

// Callers hold writeMu.
func (s *Store) commitBookings(next []domain.Booking) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrPersist, err)
	}
	if err = s.storage.Set(s.key, data); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersist, err)
	}

	s.mu.Lock()
	s.bookings = next
	s.mu.Unlock()
	return nil
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := append([]subscriber(nil), s.subscribers...)
	s.subMu.Unlock()

	if len(subs) == 0 {
		return
	}

	snap := s.Snapshot()
	for _, sub := range subs {
		sub.fn(cloneSnapshot(snap))
	}
}

func cloneSnapshot(snap domain.Snapshot) domain.Snapshot {
	return domain.Snapshot{
		Rooms:    append(make([]domain.Room, 0, len(snap.Rooms)), snap.Rooms...),
		Bookings: append(make([]domain.Booking, 0, len(snap.Bookings)), snap.Bookings...),
	}
}
