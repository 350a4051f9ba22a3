package router

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stpnv0/RoomBooker/internal/handler/dto"
)

type Handler interface {
	Bootstrap(ctx context.Context, in dto.Intent) error
	Reload(ctx context.Context, in dto.Intent) error
	Quote(ctx context.Context, in dto.Intent) error
	Submit(ctx context.Context, in dto.Intent) error
	Cancel(ctx context.Context, in dto.Intent) error
}

type structValidator interface {
	Struct(s any) error
}

type HandlerFunc func(ctx context.Context, in dto.Intent) error

type Middleware func(next HandlerFunc) HandlerFunc

type Router struct {
	routes    map[dto.IntentType]HandlerFunc
	validator structValidator
}

// InitRouter wires every intent type to its handler. The first middleware is
// the outermost.
func InitRouter(h Handler, v structValidator, mw ...Middleware) *Router {
	r := &Router{
		routes:    make(map[dto.IntentType]HandlerFunc),
		validator: v,
	}

	r.handle(dto.IntentBootstrap, h.Bootstrap, mw)
	r.handle(dto.IntentReload, h.Reload, mw)
	r.handle(dto.IntentQuote, h.Quote, mw)
	r.handle(dto.IntentSubmit, h.Submit, mw)
	r.handle(dto.IntentCancel, h.Cancel, mw)

	return r
}

func (r *Router) handle(t dto.IntentType, fn HandlerFunc, mw []Middleware) {
	for i := len(mw) - 1; i >= 0; i-- {
		fn = mw[i](fn)
	}
	r.routes[t] = fn
}

func (r *Router) Dispatch(ctx context.Context, in dto.Intent) error {
	fn, ok := r.routes[in.Type]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownIntent, in.Type)
	}

	if err := r.validator.Struct(in); err != nil {
		return fmt.Errorf("invalid %s intent: %w", in.Type, err)
	}

	return fn(ctx, in)
}

// HandleLine decodes one JSON intent and dispatches it.
func (r *Router) HandleLine(ctx context.Context, line []byte) error {
	var in dto.Intent
	if err := json.Unmarshal(line, &in); err != nil {
		return fmt.Errorf("decode intent: %w", err)
	}
	return r.Dispatch(ctx, in)
}
