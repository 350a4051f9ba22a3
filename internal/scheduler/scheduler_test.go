package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stpnv0/RoomBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_Reloads(t *testing.T) {
	reloader := mocks.NewMockBookingReloader(t)
	log := newTestLogger(t)

	s := New(reloader, 50*time.Millisecond, log)

	reloader.EXPECT().Reload(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reloader.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	reloader := mocks.NewMockBookingReloader(t)
	log := newTestLogger(t)

	s := New(reloader, 50*time.Millisecond, log)

	reloader.EXPECT().Reload(mock.Anything).Return(domain.ErrRoomsUnavailable)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reloader.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reloader := mocks.NewMockBookingReloader(t)
	log := newTestLogger(t)

	s := New(reloader, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	reloader := mocks.NewMockBookingReloader(t)
	log := newTestLogger(t)

	s := New(reloader, 30*time.Millisecond, log)

	reloader.EXPECT().Reload(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reloader.Calls), 3)
}
