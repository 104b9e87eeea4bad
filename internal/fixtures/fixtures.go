package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hotelmock/internal/models"
)

// Fixture file names inside the data directory. Their schema is an
// external contract shared with the seed generator.
const (
	HotelsFile       = "hotels.json"
	RoomsFile        = "rooms.json"
	AvailabilityFile = "availability.json"
	BookingsFile     = "bookings.json"
)

// Set holds the raw fixture collections before they are indexed by the
// store. Loaded once at process start.
type Set struct {
	Hotels       []models.Hotel
	Rooms        []models.Room
	Availability []models.AvailabilityEntry
	Bookings     []models.Booking
}

// Load reads all four fixture files from dir.
func Load(dir string) (*Set, error) {
	var set Set

	if err := loadJSON(filepath.Join(dir, HotelsFile), &set.Hotels); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, RoomsFile), &set.Rooms); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, AvailabilityFile), &set.Availability); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, BookingsFile), &set.Bookings); err != nil {
		return nil, err
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("fixture validation failed: %w", err)
	}

	return &set, nil
}

// Validate rejects fixture sets the store cannot index unambiguously.
func (s *Set) Validate() error {
	hotelIDs := make(map[int64]bool, len(s.Hotels))
	for _, h := range s.Hotels {
		if h.HotelID == 0 {
			return fmt.Errorf("hotel %q has invalid id 0", h.Name)
		}
		if hotelIDs[h.HotelID] {
			return fmt.Errorf("duplicate hotel id: %d", h.HotelID)
		}
		hotelIDs[h.HotelID] = true
	}

	roomIDs := make(map[int64]bool, len(s.Rooms))
	for _, r := range s.Rooms {
		if r.RoomID == 0 {
			return fmt.Errorf("room in hotel %d has invalid id 0", r.HotelID)
		}
		if roomIDs[r.RoomID] {
			return fmt.Errorf("duplicate room id: %d", r.RoomID)
		}
		roomIDs[r.RoomID] = true
		if r.BasePrice < 0 {
			return fmt.Errorf("room %d has negative base price", r.RoomID)
		}
		if !hotelIDs[r.HotelID] {
			return fmt.Errorf("room %d references unknown hotel %d", r.RoomID, r.HotelID)
		}
	}

	for _, e := range s.Availability {
		if !roomIDs[e.RoomID] {
			return fmt.Errorf("availability entry references unknown room %d", e.RoomID)
		}
		if _, err := parseDate(e.Date); err != nil {
			return fmt.Errorf("availability entry for room %d has invalid date %q", e.RoomID, e.Date)
		}
	}

	return nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, s)
}

func loadJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse fixture %s: %w", filepath.Base(path), err)
	}
	return nil
}
