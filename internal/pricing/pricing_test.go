package pricing

import (
	"testing"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNights_WholeDays(t *testing.T) {
	assert.Equal(t, 3, Nights(mustDate(t, "2025-01-10"), mustDate(t, "2025-01-13")))
	assert.Equal(t, 1, Nights(mustDate(t, "2025-02-28"), mustDate(t, "2025-03-01")))
	assert.Equal(t, 2, Nights(mustDate(t, "2024-02-28"), mustDate(t, "2024-03-01")))
}

func TestNights_PartialDayRoundsUp(t *testing.T) {
	in := mustDate(t, "2025-01-10")

	assert.Equal(t, 1, Nights(in, in.Add(time.Hour)))
	assert.Equal(t, 2, Nights(in, in.Add(25*time.Hour)))
}

func TestNights_NotAfterCheckIn(t *testing.T) {
	in := mustDate(t, "2025-01-10")

	assert.Equal(t, 0, Nights(in, in))
	assert.Equal(t, -2, Nights(in, mustDate(t, "2025-01-08")))
	assert.LessOrEqual(t, Nights(in, in.Add(-time.Hour)), 0)
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("10/01/2025")
	require.Error(t, err)

	_, err = ParseDate("2025-02-30")
	require.Error(t, err)
}

func TestTotal_Success(t *testing.T) {
	room := &domain.Room{ID: "r1", PricePerNight: 150}

	assert.Equal(t, int64(450), Total(room, "2025-01-10", "2025-01-13"))
}

func TestTotal_NotComputable(t *testing.T) {
	room := &domain.Room{ID: "r1", PricePerNight: 150}

	assert.Zero(t, Total(nil, "2025-01-10", "2025-01-13"))
	assert.Zero(t, Total(room, "", "2025-01-13"))
	assert.Zero(t, Total(room, "2025-01-10", ""))
	assert.Zero(t, Total(room, "2025-01-10", "2025-01-10"))
	assert.Zero(t, Total(room, "2025-01-13", "2025-01-10"))
	assert.Zero(t, Total(room, "garbage", "2025-01-10"))
}

func TestTotal_LargeStayIsExact(t *testing.T) {
	room := &domain.Room{ID: "r1", PricePerNight: 219}

	assert.Equal(t, int64(219*365), Total(room, "2025-01-01", "2026-01-01"))
}

func TestNights_SpanOfCenturies(t *testing.T) {
	assert.Equal(t, 2912150, Nights(mustDate(t, "2026-10-20"), mustDate(t, "9999-12-31")))
	assert.Equal(t, -2912150, Nights(mustDate(t, "9999-12-31"), mustDate(t, "2026-10-20")))
}

func TestTotal_SpanOfCenturiesIsExact(t *testing.T) {
	room := &domain.Room{ID: "r1", PricePerNight: 150}

	assert.Equal(t, int64(150*2912150), Total(room, "2026-10-20", "9999-12-31"))
}
