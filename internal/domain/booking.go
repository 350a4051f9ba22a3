package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled
}

const DateLayout = "2006-01-02"

type Booking struct {
	ID         string        `json:"id"`
	GuestName  string        `json:"guestName"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	RoomID     string        `json:"roomId"`
	CheckIn    string        `json:"checkIn"`
	CheckOut   string        `json:"checkOut"`
	TotalPrice int64         `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

func (b Booking) Cancelled() Booking {
	b.Status = BookingStatusCancelled
	return b
}

type Draft struct {
	GuestName string `json:"guestName" validate:"notblank"`
	Email     string `json:"email"     validate:"notblank"`
	Phone     string `json:"phone"     validate:"notblank"`
	RoomID    string `json:"roomId"    validate:"required"`
	CheckIn   string `json:"checkIn"   validate:"required"`
	CheckOut  string `json:"checkOut"  validate:"required"`
}

type BookingRequest struct {
	Draft
	TotalPrice int64 `json:"totalPrice"`
}
