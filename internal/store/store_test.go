package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stpnv0/RoomBooker/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type failingStorage struct {
	*storage.Memory
	setErr error
	getErr error
}

func (f *failingStorage) Get(key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.Memory.Get(key)
}

func (f *failingStorage) Set(key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Memory.Set(key, value)
}

func booking(id string) domain.Booking {
	return domain.Booking{
		ID:         id,
		GuestName:  "Guest " + id,
		Email:      id + "@example.com",
		Phone:      "555-0100",
		RoomID:     "r101",
		CheckIn:    "2025-01-10",
		CheckOut:   "2025-01-13",
		TotalPrice: 447,
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	return New(mem, DefaultKey, newTestLogger(t)), mem
}

func TestStore_Initialize_Absent(t *testing.T) {
	s, _ := newStore(t)

	s.Initialize()

	assert.Empty(t, s.Snapshot().Bookings)
	assert.NotNil(t, s.Snapshot().Bookings)
}

func TestStore_Initialize_Malformed(t *testing.T) {
	cases := map[string]string{
		"invalid json":     `[{"id":`,
		"not an array":     `{"id":"b1"}`,
		"wrong shape":      `[1, 2, 3]`,
		"unknown status":   `[{"id":"b1","status":"confirmed"},{"id":"b2","status":"pending"}]`,
		"wrong field type": `[{"id":"b1","totalPrice":"lots","status":"confirmed"}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			s, mem := newStore(t)
			require.NoError(t, mem.Set(DefaultKey, []byte(raw)))

			s.Initialize()

			assert.Empty(t, s.Snapshot().Bookings)
		})
	}
}

func TestStore_Initialize_Null(t *testing.T) {
	s, mem := newStore(t)
	require.NoError(t, mem.Set(DefaultKey, []byte(`null`)))

	s.Initialize()

	assert.NotNil(t, s.Snapshot().Bookings)
	assert.Empty(t, s.Snapshot().Bookings)
}

func TestStore_Initialize_ReadError(t *testing.T) {
	fs := &failingStorage{Memory: storage.NewMemory(), getErr: errors.New("disk gone")}
	s := New(fs, DefaultKey, newTestLogger(t))

	s.Initialize()

	assert.Empty(t, s.Snapshot().Bookings)
}

func TestStore_Initialize_DoesNotNotify(t *testing.T) {
	s, mem := newStore(t)
	require.NoError(t, mem.Set(DefaultKey, []byte(`[]`)))
	calls := 0
	s.Subscribe(func(domain.Snapshot) { calls++ })

	s.Initialize()

	assert.Zero(t, calls)
}

func TestStore_SetBookings_RoundTripAcrossRestart(t *testing.T) {
	mem := storage.NewMemory()
	s := New(mem, DefaultKey, newTestLogger(t))
	s.Initialize()

	cancelled := booking("b2").Cancelled()
	want := []domain.Booking{booking("b1"), cancelled, booking("b3")}
	require.NoError(t, s.SetBookings(want))

	restarted := New(mem, DefaultKey, newTestLogger(t))
	restarted.Initialize()

	assert.Equal(t, want, restarted.Snapshot().Bookings)
}

func TestStore_AddBooking_Prepends(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.SetBookings([]domain.Booking{booking("b1"), booking("b2")}))

	require.NoError(t, s.AddBooking(booking("b3")))

	bookings := s.Snapshot().Bookings
	require.Len(t, bookings, 3)
	assert.Equal(t, "b3", bookings[0].ID)
	assert.Equal(t, "b1", bookings[1].ID)
	assert.Equal(t, "b2", bookings[2].ID)
}

func TestStore_AddBooking_PersistsBeforeNotify(t *testing.T) {
	mem := storage.NewMemory()
	s := New(mem, DefaultKey, newTestLogger(t))

	var persistedAtNotify []domain.Booking
	s.Subscribe(func(domain.Snapshot) {
		fresh := New(mem, DefaultKey, newTestLogger(t))
		fresh.Initialize()
		persistedAtNotify = fresh.Snapshot().Bookings
	})

	require.NoError(t, s.AddBooking(booking("b1")))

	require.Len(t, persistedAtNotify, 1)
	assert.Equal(t, "b1", persistedAtNotify[0].ID)
}

func TestStore_MarkCancelled_Known(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.SetBookings([]domain.Booking{booking("b1"), booking("b2"), booking("b3")}))

	require.NoError(t, s.MarkCancelled("b2"))

	bookings := s.Snapshot().Bookings
	require.Len(t, bookings, 3)
	assert.Equal(t, booking("b1"), bookings[0])
	assert.Equal(t, booking("b3"), bookings[2])

	want := booking("b2")
	want.Status = domain.BookingStatusCancelled
	assert.Equal(t, want, bookings[1])
}

func TestStore_MarkCancelled_Unknown(t *testing.T) {
	s, mem := newStore(t)
	initial := []domain.Booking{booking("b1"), booking("b2").Cancelled()}
	require.NoError(t, s.SetBookings(initial))
	require.NoError(t, mem.Set(DefaultKey, []byte(`[]`)))

	notified := 0
	s.Subscribe(func(domain.Snapshot) { notified++ })

	require.NoError(t, s.MarkCancelled("missing"))

	assert.Equal(t, initial, s.Snapshot().Bookings)
	assert.Equal(t, 1, notified)

	raw, ok, err := mem.Get(DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, `[]`, string(raw), "bookings are persisted even for an unknown id")
}

func TestStore_MarkCancelled_Twice(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.SetBookings([]domain.Booking{booking("abc")}))

	require.NoError(t, s.MarkCancelled("abc"))
	require.NoError(t, s.MarkCancelled("abc"))

	bookings := s.Snapshot().Bookings
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.BookingStatusCancelled, bookings[0].Status)
}

func TestStore_SetRooms_NotPersisted(t *testing.T) {
	s, mem := newStore(t)
	notified := 0
	s.Subscribe(func(snap domain.Snapshot) {
		notified++
		assert.Len(t, snap.Rooms, 1)
	})

	s.SetRooms([]domain.Room{{ID: "r101", Type: "Deluxe King Room", PricePerNight: 149}})

	assert.Equal(t, 1, notified)
	_, ok, err := mem.Get(DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SetRooms_ReplacesWholesale(t *testing.T) {
	s, _ := newStore(t)
	s.SetRooms([]domain.Room{{ID: "r1"}, {ID: "r2"}})

	s.SetRooms([]domain.Room{{ID: "r3"}})

	rooms := s.Snapshot().Rooms
	require.Len(t, rooms, 1)
	assert.Equal(t, "r3", rooms[0].ID)
}

func TestStore_Snapshot_IsDefensiveCopy(t *testing.T) {
	s, _ := newStore(t)
	rooms := []domain.Room{{ID: "r1", PricePerNight: 100}}
	s.SetRooms(rooms)
	require.NoError(t, s.SetBookings([]domain.Booking{booking("b1")}))

	rooms[0].PricePerNight = 1
	snap := s.Snapshot()
	snap.Rooms[0].PricePerNight = 2
	snap.Bookings[0].Status = domain.BookingStatusCancelled
	snap.Bookings = append(snap.Bookings, booking("b2"))

	again := s.Snapshot()
	assert.Equal(t, int64(100), again.Rooms[0].PricePerNight)
	require.Len(t, again.Bookings, 1)
	assert.Equal(t, domain.BookingStatusConfirmed, again.Bookings[0].Status)
}

func TestStore_Subscribe_AllListenersSeeEveryMutation(t *testing.T) {
	s, _ := newStore(t)
	var first, second []int

	s.Subscribe(func(snap domain.Snapshot) { first = append(first, len(snap.Bookings)) })
	s.Subscribe(func(snap domain.Snapshot) { second = append(second, len(snap.Bookings)) })

	require.NoError(t, s.AddBooking(booking("b1")))
	require.NoError(t, s.AddBooking(booking("b2")))
	require.NoError(t, s.MarkCancelled("b1"))
	s.SetRooms(nil)

	assert.Equal(t, []int{1, 2, 2, 2}, first)
	assert.Equal(t, first, second)
}

func TestStore_Subscribe_ListenerMayReadSnapshot(t *testing.T) {
	s, _ := newStore(t)
	var seen int
	s.Subscribe(func(domain.Snapshot) {
		seen = len(s.Snapshot().Bookings)
	})

	require.NoError(t, s.AddBooking(booking("b1")))

	assert.Equal(t, 1, seen)
}

func TestStore_Unsubscribe(t *testing.T) {
	s, _ := newStore(t)
	calls := 0
	id := s.Subscribe(func(domain.Snapshot) { calls++ })
	other := s.Subscribe(func(domain.Snapshot) {})

	require.NoError(t, s.AddBooking(booking("b1")))
	assert.True(t, s.Unsubscribe(id))
	assert.False(t, s.Unsubscribe(id))
	require.NoError(t, s.AddBooking(booking("b2")))

	assert.Equal(t, 1, calls)
	assert.NotEqual(t, id, other)
}

func TestStore_WriteFailure_LeavesStateAndSkipsNotify(t *testing.T) {
	fs := &failingStorage{Memory: storage.NewMemory()}
	s := New(fs, DefaultKey, newTestLogger(t))
	require.NoError(t, s.SetBookings([]domain.Booking{booking("b1")}))

	notified := 0
	s.Subscribe(func(domain.Snapshot) { notified++ })
	fs.setErr = errors.New("quota exceeded")

	err := s.AddBooking(booking("b2"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersist)

	err = s.MarkCancelled("b1")
	assert.ErrorIs(t, err, domain.ErrPersist)

	err = s.SetBookings(nil)
	assert.ErrorIs(t, err, domain.ErrPersist)

	assert.Zero(t, notified)
	assert.Equal(t, []domain.Booking{booking("b1")}, s.Snapshot().Bookings)

	restarted := New(fs.Memory, DefaultKey, newTestLogger(t))
	restarted.Initialize()
	assert.Equal(t, []domain.Booking{booking("b1")}, restarted.Snapshot().Bookings)
}

func TestStore_SeparateInstancesAreIsolated(t *testing.T) {
	a, _ := newStore(t)
	b, _ := newStore(t)

	require.NoError(t, a.AddBooking(booking("b1")))

	assert.Len(t, a.Snapshot().Bookings, 1)
	assert.Empty(t, b.Snapshot().Bookings)
}
