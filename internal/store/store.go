package store

import (
	"time"

	"hotelmock/internal/models"
)

// Store holds the fixture datasets loaded at startup. It is built once
// and read-only afterward: bookings never decrement availability, which
// is a deliberate limitation of the mock.
type Store struct {
	hotels       []models.Hotel
	rooms        []models.Room
	roomsByID    map[int64]models.Room
	availability map[int64]map[string]bool
	nextID       int64
}

// New indexes the fixture collections for O(1) lookup by room id and by
// (room id, date). The seed bookings only feed the id sequence.
func New(hotels []models.Hotel, rooms []models.Room, entries []models.AvailabilityEntry, bookings []models.Booking) *Store {
	s := &Store{
		hotels:       hotels,
		rooms:        rooms,
		roomsByID:    make(map[int64]models.Room, len(rooms)),
		availability: make(map[int64]map[string]bool),
	}

	for _, r := range rooms {
		s.roomsByID[r.RoomID] = r
	}

	for _, e := range entries {
		byDate, ok := s.availability[e.RoomID]
		if !ok {
			byDate = make(map[string]bool)
			s.availability[e.RoomID] = byDate
		}
		byDate[e.Date] = e.IsAvailable
	}

	maxID := int64(models.BookingIDFloor)
	for _, b := range bookings {
		if b.BookingID > maxID {
			maxID = b.BookingID
		}
	}
	s.nextID = maxID + 1

	return s
}

// Room returns the room with the given id.
func (s *Store) Room(id int64) (models.Room, bool) {
	r, ok := s.roomsByID[id]
	return r, ok
}

// IsAvailable reports whether the room can be booked for the given
// night. Dates without an entry in the fixture set are unavailable.
func (s *Store) IsAvailable(roomID int64, d time.Time) bool {
	byDate, ok := s.availability[roomID]
	if !ok {
		return false
	}
	return byDate[d.Format(models.DateLayout)]
}

// Hotels returns the full hotel list in fixture order.
func (s *Store) Hotels() []models.Hotel {
	return s.hotels
}

// Rooms returns the full room list in fixture order.
func (s *Store) Rooms() []models.Room {
	return s.rooms
}

// NextBookingID returns the id the booking simulator assigns. The store
// is never written, so every call returns the same value computed from
// the static seed.
func (s *Store) NextBookingID() int64 {
	return s.nextID
}

// Stats reports fixture sizes for the health endpoint.
func (s *Store) Stats() (hotels, rooms, availabilityEntries int) {
	entries := 0
	for _, byDate := range s.availability {
		entries += len(byDate)
	}
	return len(s.hotels), len(s.rooms), entries
}
