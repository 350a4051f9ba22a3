package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrBackendUnavailable  = errors.New("booking backend unavailable")
	ErrRoomsUnavailable    = errors.New("rooms unavailable")
	ErrBookingsUnavailable = errors.New("bookings unavailable")
)

var (
	ErrPersist = errors.New("persist bookings")
)

var (
	ErrValidation    = errors.New("validation error")
	ErrUnknownIntent = errors.New("unknown intent")
)

type FieldErrors map[string]string

func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// AddIfMissing keeps an already reported message for field.
func (f FieldErrors) AddIfMissing(field, msg string) {
	if !f.Has(field) {
		f[field] = msg
	}
}

func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields.Fields() {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
