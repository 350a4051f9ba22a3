package dto

import "github.com/stpnv0/RoomBooker/internal/domain"

type IntentType string

const (
	IntentBootstrap IntentType = "bootstrap"
	IntentReload    IntentType = "reload"
	IntentQuote     IntentType = "quote"
	IntentSubmit    IntentType = "submit"
	IntentCancel    IntentType = "cancel"
)

type Intent struct {
	Type      IntentType   `json:"type"      validate:"required,oneof=bootstrap reload quote submit cancel"`
	Draft     DraftRequest `json:"draft"`
	BookingID string       `json:"bookingId" validate:"required_if=Type cancel"`
}

type DraftRequest struct {
	GuestName string `json:"guestName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	RoomID    string `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
}

func (r DraftRequest) ToDomain() domain.Draft {
	return domain.Draft{
		GuestName: r.GuestName,
		Email:     r.Email,
		Phone:     r.Phone,
		RoomID:    r.RoomID,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
	}
}
