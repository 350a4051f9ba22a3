package view

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"
)

type TextRenderer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(m Model) error {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "== Rooms ==")
	switch {
	case m.RoomsLoading:
		fmt.Fprintln(tw, "Loading rooms...")
	case len(m.Rooms) == 0:
		fmt.Fprintln(tw, EmptyRoomsText)
	default:
		for _, room := range m.Rooms {
			status := "Available"
			if !room.Available {
				status = "Unavailable"
			}
			fmt.Fprintf(tw, "[%s]\t%s\t%s/night\t%d Guests\t%s\n",
				room.ID, room.Type, room.Price, room.Capacity, status)
		}
	}

	fmt.Fprintln(tw, "== Bookings ==")
	switch {
	case m.BookingsLoading:
		fmt.Fprintln(tw, "Loading bookings...")
	case len(m.Bookings) == 0:
		fmt.Fprintln(tw, EmptyBookingsText)
	default:
		for _, bk := range m.Bookings {
			action := ""
			if bk.Cancellable {
				action = "cancel: " + bk.ID
			}
			fmt.Fprintf(tw, "%s\t%s\t%s -> %s\t%s\t%s\t%s\n",
				bk.GuestName, bk.Room, bk.CheckIn, bk.CheckOut, bk.Total, bk.Status, action)
		}
	}

	fmt.Fprintln(tw, "== Booking ==")
	fmt.Fprintf(tw, "Total:\t%s\n", m.Total)
	for _, field := range m.Errors.Fields() {
		fmt.Fprintf(tw, "! %s:\t%s\n", field, m.Errors[field])
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("layout frame: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
