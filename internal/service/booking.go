package service

import (
	"context"

	"hotelmock/internal/models"
	"hotelmock/internal/pricing"
)

// CreateBooking validates the request, prices the stay and returns a
// confirmed booking record. Nothing is persisted and per-night
// availability is not re-checked: the simulator models the happy path
// of a reservation flow, not the reservation itself.
func (s *Service) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	room, ok := s.store.Room(req.RoomID)
	if !ok {
		return nil, ErrRoomNotFound
	}

	checkIn, checkOut, err := ParseRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		total += pricing.Nightly(room.BasePrice, d)
	}

	booking := &models.Booking{
		BookingID:    s.store.NextBookingID(),
		RoomID:       req.RoomID,
		GuestName:    req.GuestName,
		CheckInDate:  checkIn.Format(models.DateLayout),
		CheckOutDate: checkOut.Format(models.DateLayout),
		TotalPrice:   pricing.Round2(total),
		Status:       models.StatusConfirmed,
	}

	s.logger.Info().
		Int64("booking_id", booking.BookingID).
		Int64("room_id", booking.RoomID).
		Str("check_in", booking.CheckInDate).
		Str("check_out", booking.CheckOutDate).
		Float64("total", booking.TotalPrice).
		Msg("booking simulated")

	return booking, nil
}
