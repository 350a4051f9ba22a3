package view

import (
	"github.com/stpnv0/RoomBooker/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	EmptyRoomsText    = "No rooms are available currently."
	EmptyBookingsText = "No bookings yet. Start by creating your first booking."
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders whole US dollars, e.g. $1,234.
func FormatCurrency(amount int64) string {
	return printer.Sprintf("$%d", amount)
}

type RoomView struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Price     string `json:"price"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
	Image     string `json:"image"`
	// Option is the label for the room picker.
	Option string `json:"option"`
}

type BookingView struct {
	ID          string `json:"id"`
	GuestName   string `json:"guestName"`
	Room        string `json:"room"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	Total       string `json:"total"`
	Status      string `json:"status"`
	Cancellable bool   `json:"cancellable"`
}

type Model struct {
	Rooms           []RoomView         `json:"rooms"`
	Bookings        []BookingView      `json:"bookings"`
	Errors          domain.FieldErrors `json:"errors"`
	TotalAmount     int64              `json:"totalAmount"`
	Total           string             `json:"total"`
	RoomsLoading    bool               `json:"roomsLoading"`
	BookingsLoading bool               `json:"bookingsLoading"`
}

type Form struct {
	Errors          domain.FieldErrors
	Total           int64
	RoomsLoading    bool
	BookingsLoading bool
}

func Build(snap domain.Snapshot, form Form) Model {
	rooms := make([]RoomView, 0, len(snap.Rooms))
	roomTypes := make(map[string]string, len(snap.Rooms))
	for _, r := range snap.Rooms {
		rooms = append(rooms, toRoomView(r))
		roomTypes[r.ID] = r.Type
	}

	bookings := make([]BookingView, 0, len(snap.Bookings))
	for _, b := range snap.Bookings {
		room, ok := roomTypes[b.RoomID]
		if !ok {
			room = b.RoomID
		}
		bookings = append(bookings, BookingView{
			ID:          b.ID,
			GuestName:   b.GuestName,
			Room:        room,
			CheckIn:     b.CheckIn,
			CheckOut:    b.CheckOut,
			Total:       FormatCurrency(b.TotalPrice),
			Status:      string(b.Status),
			Cancellable: b.Status == domain.BookingStatusConfirmed,
		})
	}

	errs := make(domain.FieldErrors, len(form.Errors))
	for k, v := range form.Errors {
		errs[k] = v
	}

	return Model{
		Rooms:           rooms,
		Bookings:        bookings,
		Errors:          errs,
		TotalAmount:     form.Total,
		Total:           FormatCurrency(form.Total),
		RoomsLoading:    form.RoomsLoading,
		BookingsLoading: form.BookingsLoading,
	}
}

func toRoomView(r domain.Room) RoomView {
	option := r.Type + " (" + FormatCurrency(r.PricePerNight) + "/night)"
	if !r.Available {
		option += " - unavailable"
	}
	return RoomView{
		ID:        r.ID,
		Type:      r.Type,
		Price:     FormatCurrency(r.PricePerNight),
		Capacity:  r.Capacity,
		Available: r.Available,
		Image:     r.Image,
		Option:    option,
	}
}
