package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stpnv0/RoomBooker/internal/handler/dto"
)

const (
	MsgFixErrors           = "Please fix errors before submitting."
	MsgBookingCreated      = "Booking created successfully."
	MsgCreateFailed        = "Unable to create booking. Please retry."
	MsgBookingCancelled    = "Booking cancelled."
	MsgCancelFailed        = "Unable to cancel booking."
	MsgRoomsUnavailable    = "Unable to load rooms. Please try again later."
	MsgBookingsUnavailable = "Unable to load bookings. Please try again later."
)

type BookingSvc interface {
	Bootstrap(ctx context.Context) error
	Reload(ctx context.Context) error
	Quote(roomID, checkIn, checkOut string) int64
	Submit(ctx context.Context, draft domain.Draft) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
}

type Presenter interface {
	SetLoading(rooms, bookings bool)
	SetErrors(errs domain.FieldErrors)
	SetTotal(total int64)
}

type Notifier interface {
	Success(ctx context.Context, msg string)
	Failure(ctx context.Context, msg string)
}

type Handler struct {
	bookingService BookingSvc
	presenter      Presenter
	notifier       Notifier
}

func NewHandler(bookingService BookingSvc, presenter Presenter, notifier Notifier) *Handler {
	return &Handler{
		bookingService: bookingService,
		presenter:      presenter,
		notifier:       notifier,
	}
}

func (h *Handler) Bootstrap(ctx context.Context, _ dto.Intent) error {
	h.presenter.SetLoading(true, true)
	defer h.presenter.SetLoading(false, false)

	return h.handleLoadError(ctx, h.bookingService.Bootstrap(ctx))
}

func (h *Handler) Reload(ctx context.Context, _ dto.Intent) error {
	h.presenter.SetLoading(true, true)
	defer h.presenter.SetLoading(false, false)

	return h.handleLoadError(ctx, h.bookingService.Reload(ctx))
}

func (h *Handler) Quote(_ context.Context, in dto.Intent) error {
	h.presenter.SetTotal(h.bookingService.Quote(in.Draft.RoomID, in.Draft.CheckIn, in.Draft.CheckOut))
	return nil
}

func (h *Handler) Submit(ctx context.Context, in dto.Intent) error {
	h.presenter.SetErrors(nil)

	_, err := h.bookingService.Submit(ctx, in.Draft.ToDomain())
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.presenter.SetErrors(verr.Fields)
			h.presenter.SetTotal(h.bookingService.Quote(in.Draft.RoomID, in.Draft.CheckIn, in.Draft.CheckOut))
			h.notifier.Failure(ctx, MsgFixErrors)
			return nil
		}

		h.notifier.Failure(ctx, MsgCreateFailed)
		return fmt.Errorf("submit: %w", err)
	}

	h.presenter.SetTotal(0)
	h.notifier.Success(ctx, MsgBookingCreated)
	return nil
}

func (h *Handler) Cancel(ctx context.Context, in dto.Intent) error {
	if err := h.bookingService.Cancel(ctx, in.BookingID); err != nil {
		h.notifier.Failure(ctx, MsgCancelFailed)
		return fmt.Errorf("cancel %s: %w", in.BookingID, err)
	}

	h.notifier.Success(ctx, MsgBookingCancelled)
	return nil
}

func (h *Handler) handleLoadError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrRoomsUnavailable) {
		h.notifier.Failure(ctx, MsgRoomsUnavailable)
	}
	if errors.Is(err, domain.ErrBookingsUnavailable) {
		h.notifier.Failure(ctx, MsgBookingsUnavailable)
	}
	return err
}
