package service

import (
	"errors"
	"time"

	"hotelmock/internal/models"
)

var (
	// ErrMalformedDate is returned for date strings not in YYYY-MM-DD form.
	ErrMalformedDate = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrInvalidRange is returned when checkout is not strictly after checkin.
	ErrInvalidRange = errors.New("check_out_date must be after check_in_date")

	// ErrRoomNotFound is returned for booking requests against unknown rooms.
	ErrRoomNotFound = errors.New("room not found")
)

// ParseDate parses an API date string strictly.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return d, nil
}

// ParseRange parses and validates a stay range. Malformed dates are
// reported before the range check; a range of zero nights is invalid.
func ParseRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	co, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !ci.Before(co) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return ci, co, nil
}
