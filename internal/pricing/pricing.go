package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Nights returns the stay length in whole days, rounding partial days up.
// The result is zero or negative when checkOut is not after checkIn.
func Nights(checkIn, checkOut time.Time) int {
	// time.Duration saturates at ~292 years.
	secs := checkOut.Unix() - checkIn.Unix()
	nsec := checkOut.Nanosecond() - checkIn.Nanosecond()

	nights := secs / secondsPerDay
	if rem := secs % secondsPerDay; rem > 0 || (rem == 0 && nsec > 0) {
		nights++
	}
	return int(nights)
}

// Total is 0 when the stay cannot be priced.
func Total(room *domain.Room, checkIn, checkOut string) int64 {
	if room == nil || checkIn == "" || checkOut == "" {
		return 0
	}

	in, err := ParseDate(checkIn)
	if err != nil {
		return 0
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return 0
	}

	nights := Nights(in, out)
	if nights <= 0 {
		return 0
	}

	return room.PricePerNight * int64(nights)
}
