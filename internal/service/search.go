package service

import (
	"context"
	"strings"
	"time"

	"hotelmock/internal/models"
	"hotelmock/internal/pricing"
	"hotelmock/internal/store"

	"github.com/rs/zerolog"
)

// Service answers availability queries and simulates bookings against
// the read-only fixture store.
type Service struct {
	store  *store.Store
	logger *zerolog.Logger
}

func New(st *store.Store, logger *zerolog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Hotels returns the full hotel list, unfiltered.
func (s *Service) Hotels() []models.Hotel {
	return s.store.Hotels()
}

// Rooms returns rooms matching the filter.
func (s *Service) Rooms(f models.RoomFilter) []models.Room {
	rooms := s.store.Rooms()
	results := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if matchesRoomFilter(r, f) {
			results = append(results, r)
		}
	}
	return results
}

// Search evaluates every candidate room for the requested stay. A room
// is offered only when every night in [CheckIn, CheckOut) is available;
// a single unavailable night rejects the room outright.
func (s *Service) Search(ctx context.Context, p models.SearchParams) (*models.SearchResponse, error) {
	if !p.CheckIn.Before(p.CheckOut) {
		return nil, ErrInvalidRange
	}
	nights := p.Nights()

	resp := &models.SearchResponse{
		Results:  []models.SearchResult{},
		Currency: models.Currency,
	}

	for _, room := range s.store.Rooms() {
		if !matchesSearchFilter(room, p) {
			continue
		}

		total, lastNightly, ok := s.evaluate(room, p.CheckIn, p.CheckOut)
		if !ok {
			continue
		}

		// The price bounds compare the final night's price, not the
		// average across the stay.
		if p.MinPrice != nil && lastNightly < *p.MinPrice {
			continue
		}
		if p.MaxPrice != nil && lastNightly > *p.MaxPrice {
			continue
		}

		resp.Results = append(resp.Results, models.SearchResult{
			HotelID: room.HotelID,
			RoomID:  room.RoomID,
			DateRange: models.DateRange{
				CheckInDate:  p.CheckIn.Format(models.DateLayout),
				CheckOutDate: p.CheckOut.Format(models.DateLayout),
			},
			RoomType:         room.RoomType,
			BedType:          room.BedType,
			CapacityAdults:   room.CapacityAdults,
			CapacityChildren: room.CapacityChildren,
			NightlyPrice:     pricing.Round2(total / float64(nights)),
			TotalPrice:       pricing.Round2(total),
		})
	}

	s.logger.Debug().
		Int("nights", nights).
		Int("results", len(resp.Results)).
		Msg("availability search")

	return resp, nil
}

// evaluate walks each night of the stay. It short-circuits on the first
// unavailable night and otherwise returns the price sum along with the
// last night's price, which feeds the min/max bounds.
func (s *Service) evaluate(room models.Room, checkIn, checkOut time.Time) (total, lastNightly float64, ok bool) {
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		if !s.store.IsAvailable(room.RoomID, d) {
			return 0, 0, false
		}
		p := pricing.Nightly(room.BasePrice, d)
		total += p
		lastNightly = p
	}
	return total, lastNightly, true
}

func matchesRoomFilter(r models.Room, f models.RoomFilter) bool {
	if f.HotelID != 0 && r.HotelID != f.HotelID {
		return false
	}
	if f.RoomType != "" && !strings.EqualFold(r.RoomType, f.RoomType) {
		return false
	}
	if f.BedType != "" && !strings.EqualFold(r.BedType, f.BedType) {
		return false
	}
	return true
}

func matchesSearchFilter(r models.Room, p models.SearchParams) bool {
	if !matchesRoomFilter(r, models.RoomFilter{HotelID: p.HotelID, RoomType: p.RoomType, BedType: p.BedType}) {
		return false
	}
	if r.CapacityAdults < p.Adults {
		return false
	}
	if r.CapacityChildren < p.Children {
		return false
	}
	return true
}
