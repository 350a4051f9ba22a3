package ports

import "github.com/stpnv0/RoomBooker/internal/domain"

type BookingStore interface {
	Snapshot() domain.Snapshot
	SetRooms(rooms []domain.Room)
	SetBookings(bookings []domain.Booking) error
	AddBooking(b domain.Booking) error
	MarkCancelled(id string) error
}
