package ports

import (
	"context"

	"github.com/stpnv0/RoomBooker/internal/domain"
)

type BookingAPI interface {
	FetchRooms(ctx context.Context) ([]domain.Room, error)
	FetchBookings(ctx context.Context) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) error
}
