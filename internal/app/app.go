package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/stpnv0/RoomBooker/internal/backend"
	"github.com/stpnv0/RoomBooker/internal/config"
	"github.com/stpnv0/RoomBooker/internal/handler"
	"github.com/stpnv0/RoomBooker/internal/handler/dto"
	"github.com/stpnv0/RoomBooker/internal/middleware"
	"github.com/stpnv0/RoomBooker/internal/notification"
	"github.com/stpnv0/RoomBooker/internal/router"
	"github.com/stpnv0/RoomBooker/internal/scheduler"
	"github.com/stpnv0/RoomBooker/internal/service"
	"github.com/stpnv0/RoomBooker/internal/storage"
	"github.com/stpnv0/RoomBooker/internal/store"
	"github.com/stpnv0/RoomBooker/internal/validation"
	"github.com/stpnv0/RoomBooker/internal/view"
	"github.com/wb-go/wbf/logger"
)

const maxIntentSize = 1 << 20

type App struct {
	cfg       *config.Config
	log       logger.Logger
	in        io.Reader
	out       io.Writer
	store     *store.Store
	router    *router.Router
	scheduler *scheduler.Scheduler
}

func New(cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	app := &App{cfg: cfg, in: in, out: out}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"RoomBooker",
		cfg.App.Env,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStore(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	app.initServices()

	return app, nil
}

func (a *App) initStore() error {
	var st store.Storage
	switch a.cfg.Storage.Driver {
	case "memory":
		st = storage.NewMemory()
	default:
		f, err := storage.NewFile(a.cfg.Storage.Dir)
		if err != nil {
			return fmt.Errorf("open storage dir: %w", err)
		}
		st = f
	}

	a.store = store.New(st, a.cfg.Storage.Key, a.log)
	a.store.Initialize()

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "storage ready",
		logger.String("driver", a.cfg.Storage.Driver),
		logger.String("dir", a.cfg.Storage.Dir),
		logger.String("key", a.cfg.Storage.Key),
	)
	return nil
}

func (a *App) initServices() {
	api := backend.NewSimulated(backend.Options{
		Latency:     a.cfg.Backend.Latency(),
		FailureRate: a.cfg.Backend.FailureRate,
	}, a.log)
	// The simulated backend has no records of its own; it starts from what
	// this device already knows.
	api.Seed(a.store.Snapshot().Bookings)

	v := validation.New()
	bookingService := service.NewBookingService(api, a.store, v, a.log)

	presenter := view.NewPresenter(a.store, view.NewTextRenderer(a.out), a.log)
	a.store.Subscribe(presenter.OnState)

	n := notification.NewConsoleNotifier(a.out, a.log)

	if a.cfg.Scheduler.Enabled {
		a.scheduler = scheduler.New(bookingService, a.cfg.Scheduler.Interval, a.log)
	}

	h := handler.NewHandler(bookingService, presenter, n)
	a.router = router.InitRouter(
		h,
		v,
		middleware.Recovery(a.log),
		middleware.IntentLogger(a.log),
	)
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	_ = a.router.Dispatch(ctx, dto.Intent{Type: dto.IntentBootstrap})

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	lines := make(chan []byte)
	errCh := make(chan error, 1)
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		a.readIntents(ctx, lines, errCh)
	}()

	for {
		select {
		case <-ctx.Done():
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
			a.stopReader(readerDone)
			return a.shutdown()
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("read intents: %w", err)
			}
			a.log.LogAttrs(ctx, logger.InfoLevel, "intent stream closed")
			return a.shutdown()
		case line := <-lines:
			a.handleLine(ctx, line)
		}
	}
}

func (a *App) handleLine(ctx context.Context, line []byte) {
	err := a.router.HandleLine(ctx, line)
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) {
		return
	}
	a.log.LogAttrs(ctx, logger.DebugLevel, "intent not applied",
		logger.String("error", err.Error()),
	)
}

func (a *App) readIntents(ctx context.Context, lines chan<- []byte, errCh chan<- error) {
	sc := bufio.NewScanner(a.in)
	sc.Buffer(make([]byte, 0, 64*1024), maxIntentSize)

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		select {
		case lines <- bytes.Clone(line):
		case <-ctx.Done():
			return
		}
	}
	errCh <- sc.Err()
}

// stopReader unblocks a reader stuck in Read by closing the input. Inputs
// that cannot be closed are left to the process exit.
func (a *App) stopReader(done <-chan struct{}) {
	c, ok := a.in.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "close intent stream",
			logger.String("error", err.Error()),
		)
		return
	}
	<-done
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	snap := a.store.Snapshot()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped",
		logger.Int("bookings", len(snap.Bookings)),
	)
	return nil
}
