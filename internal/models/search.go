package models

import "time"

// RoomFilter narrows the room list. Zero values mean "no constraint".
type RoomFilter struct {
	HotelID  int64
	RoomType string
	BedType  string
}

// SearchParams describe an availability query. Capacity and identity
// filters follow RoomFilter semantics; price bounds are optional and
// therefore pointers, since 0 is a valid bound.
type SearchParams struct {
	CheckIn  time.Time
	CheckOut time.Time
	HotelID  int64
	RoomType string
	BedType  string
	Adults   int
	Children int
	MinPrice *float64
	MaxPrice *float64
}

// Nights returns the number of billed nights in [CheckIn, CheckOut).
func (p SearchParams) Nights() int {
	return int(p.CheckOut.Sub(p.CheckIn).Hours() / 24)
}

type DateRange struct {
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

// SearchResult is one room offer in the availability response.
type SearchResult struct {
	HotelID          int64     `json:"hotel_id"`
	RoomID           int64     `json:"room_id"`
	DateRange        DateRange `json:"date_range"`
	RoomType         string    `json:"room_type"`
	BedType          string    `json:"bed_type"`
	CapacityAdults   int       `json:"capacity_adults"`
	CapacityChildren int       `json:"capacity_children"`
	NightlyPrice     float64   `json:"nightly_price"`
	TotalPrice       float64   `json:"total_price"`
}

// SearchResponse is the envelope returned by the availability endpoint.
type SearchResponse struct {
	Results  []SearchResult `json:"results"`
	Currency string         `json:"currency"`
}
