package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stpnv0/RoomBooker/internal/pricing"
)

const (
	MsgCheckInPast      = "Check-in cannot be in the past."
	MsgCheckInInvalid   = "Check-in date is invalid."
	MsgCheckOutNotAfter = "Check-out must be after check-in."
	MsgCheckOutInvalid  = "Check-out date is invalid."
	MsgInvalidStayDates = "Please select valid stay dates."
	MsgRoomUnavailable  = "Selected room is unavailable."
	msgFallbackRequired = "This field is required."
)

var requiredMessages = map[string]string{
	"guestName": "Guest name is required.",
	"email":     "Email is required.",
	"phone":     "Phone is required.",
	"roomId":    "Please select a room.",
	"checkIn":   "Check-in date is required.",
	"checkOut":  "Check-out date is required.",
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// notblank is a non-standard validator and must be registered explicitly.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

func (v *Validator) Validate(d domain.Draft, today time.Time) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if err := v.validate.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs[fe.Field()] = requiredMessage(fe.Field())
			}
		}
	}

	today = today.UTC()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var (
		checkIn   time.Time
		checkInOK bool
	)
	if !errs.Has("checkIn") {
		in, err := pricing.ParseDate(d.CheckIn)
		switch {
		case err != nil:
			errs["checkIn"] = MsgCheckInInvalid
		case in.Before(todayDate):
			errs["checkIn"] = MsgCheckInPast
			checkIn, checkInOK = in, true
		default:
			checkIn, checkInOK = in, true
		}
	}

	if !errs.Has("checkOut") {
		out, err := pricing.ParseDate(d.CheckOut)
		switch {
		case err != nil:
			errs["checkOut"] = MsgCheckOutInvalid
		case checkInOK && !out.After(checkIn):
			errs["checkOut"] = MsgCheckOutNotAfter
		}
	}

	return errs
}

func requiredMessage(field string) string {
	if msg, ok := requiredMessages[field]; ok {
		return msg
	}
	return msgFallbackRequired
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
