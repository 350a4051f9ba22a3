package view

import (
	"sync"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Renderer interface {
	Render(m Model) error
}

type snapshotSource interface {
	Snapshot() domain.Snapshot
}

type Presenter struct {
	source   snapshotSource
	renderer Renderer
	logger   logger.Logger

	mu   sync.Mutex
	form Form
}

func NewPresenter(source snapshotSource, renderer Renderer, logger logger.Logger) *Presenter {
	return &Presenter{
		source:   source,
		renderer: renderer,
		logger:   logger,
	}
}

// OnState is a store listener.
func (p *Presenter) OnState(snap domain.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.render(snap)
}

func (p *Presenter) SetLoading(rooms, bookings bool) {
	p.update(func(f *Form) {
		f.RoomsLoading = rooms
		f.BookingsLoading = bookings
	})
}

func (p *Presenter) SetErrors(errs domain.FieldErrors) {
	p.update(func(f *Form) { f.Errors = errs })
}

func (p *Presenter) SetTotal(total int64) {
	p.update(func(f *Form) { f.Total = total })
}

func (p *Presenter) Refresh() {
	p.update(func(*Form) {})
}

func (p *Presenter) update(fn func(f *Form)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.form)
	p.render(p.source.Snapshot())
}

// render must be called with mu held.
func (p *Presenter) render(snap domain.Snapshot) {
	if err := p.renderer.Render(Build(snap, p.form)); err != nil {
		p.logger.Error("render failed", logger.String("error", err.Error()))
	}
}
