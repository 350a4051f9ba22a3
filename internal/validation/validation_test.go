package validation

import (
	"testing"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC)

func validDraft() domain.Draft {
	return domain.Draft{
		GuestName: "Alice",
		Email:     "alice@example.com",
		Phone:     "+1 555 0100",
		RoomID:    "r101",
		CheckIn:   "2025-01-10",
		CheckOut:  "2025-01-13",
	}
}

func TestValidator_Validate_Valid(t *testing.T) {
	v := New()

	errs := v.Validate(validDraft(), today)

	assert.Empty(t, errs)
}

func TestValidator_Validate_AllRequiredReportedTogether(t *testing.T) {
	v := New()

	errs := v.Validate(domain.Draft{}, today)

	assert.Equal(t, domain.FieldErrors{
		"guestName": "Guest name is required.",
		"email":     "Email is required.",
		"phone":     "Phone is required.",
		"roomId":    "Please select a room.",
		"checkIn":   "Check-in date is required.",
		"checkOut":  "Check-out date is required.",
	}, errs)
}

func TestValidator_Validate_BlankAfterTrim(t *testing.T) {
	v := New()
	d := validDraft()
	d.GuestName = "   "
	d.Email = "\t"
	d.Phone = " \n "

	errs := v.Validate(d, today)

	assert.Equal(t, []string{"email", "guestName", "phone"}, errs.Fields())
}

func TestValidator_Validate_CheckInInPast(t *testing.T) {
	v := New()
	d := validDraft()
	d.CheckIn = "2025-01-09"

	errs := v.Validate(d, today)

	assert.Equal(t, MsgCheckInPast, errs["checkIn"])
	assert.False(t, errs.Has("checkOut"))
}

func TestValidator_Validate_CheckInTodayIsAllowed(t *testing.T) {
	v := New()
	late := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)

	errs := v.Validate(validDraft(), late)

	assert.Empty(t, errs)
}

func TestValidator_Validate_TodayIsTheUTCDate(t *testing.T) {
	v := New()
	// 2025-01-10 01:00 at UTC+3 is still 2025-01-09 in UTC.
	now := time.Date(2025, 1, 10, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))
	d := validDraft()
	d.CheckIn = "2025-01-09"
	d.CheckOut = "2025-01-11"

	errs := v.Validate(d, now)

	assert.Empty(t, errs)
}

func TestValidator_Validate_PastInUTCAheadOfLocal(t *testing.T) {
	v := New()
	// 2025-01-09 22:00 at UTC-3 is already 2025-01-10 in UTC.
	now := time.Date(2025, 1, 9, 22, 0, 0, 0, time.FixedZone("UTC-3", -3*60*60))
	d := validDraft()
	d.CheckIn = "2025-01-09"

	errs := v.Validate(d, now)

	assert.Equal(t, MsgCheckInPast, errs["checkIn"])
}

func TestValidator_Validate_SameDayStay(t *testing.T) {
	v := New()
	d := validDraft()
	d.CheckOut = d.CheckIn

	errs := v.Validate(d, today)

	assert.Equal(t, domain.FieldErrors{"checkOut": MsgCheckOutNotAfter}, errs)
}

func TestValidator_Validate_CheckOutBeforeCheckIn(t *testing.T) {
	v := New()
	d := validDraft()
	d.CheckIn = "2025-01-15"
	d.CheckOut = "2025-01-12"

	errs := v.Validate(d, today)

	assert.Equal(t, MsgCheckOutNotAfter, errs["checkOut"])
}

func TestValidator_Validate_MalformedDates(t *testing.T) {
	v := New()
	d := validDraft()
	d.CheckIn = "tomorrow"
	d.CheckOut = "2025/01/13"

	errs := v.Validate(d, today)

	assert.Equal(t, MsgCheckInInvalid, errs["checkIn"])
	assert.Equal(t, MsgCheckOutInvalid, errs["checkOut"])
}

func TestValidator_Validate_MissingCheckInSkipsOrdering(t *testing.T) {
	v := New()
	d := validDraft()
	d.CheckIn = ""

	errs := v.Validate(d, today)

	assert.Equal(t, domain.FieldErrors{"checkIn": "Check-in date is required."}, errs)
}

func TestValidator_Struct_UsesJSONNames(t *testing.T) {
	v := New()

	type input struct {
		Kind string `json:"type" validate:"required"`
	}

	err := v.Struct(input{})

	assert.ErrorContains(t, err, "'type'")
}
