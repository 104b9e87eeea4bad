package domain

import (
	"context"

	"hotelmock/internal/models"
)

// SearchCache memoizes availability responses. Safe because the fixture
// store never changes after startup. Get returns (nil, nil) on a miss.
type SearchCache interface {
	Get(ctx context.Context, key string) (*models.SearchResponse, error)
	Set(ctx context.Context, key string, resp *models.SearchResponse) error
}

// HotelService is the surface the HTTP layer depends on.
type HotelService interface {
	Hotels() []models.Hotel
	Rooms(f models.RoomFilter) []models.Room
	Search(ctx context.Context, p models.SearchParams) (*models.SearchResponse, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
}
