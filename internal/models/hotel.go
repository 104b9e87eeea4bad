package models

type Hotel struct {
	HotelID int64  `json:"hotel_id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Stars   int    `json:"stars"`
}

type Room struct {
	RoomID           int64   `json:"room_id"`
	HotelID          int64   `json:"hotel_id"`
	RoomType         string  `json:"room_type"`
	BedType          string  `json:"bed_type"`
	CapacityAdults   int     `json:"capacity_adults"`
	CapacityChildren int     `json:"capacity_children"`
	BasePrice        float64 `json:"base_price"`
}

// AvailabilityEntry is one night of the sparse availability calendar.
// Dates absent from the dataset count as unavailable.
type AvailabilityEntry struct {
	RoomID      int64  `json:"room_id"`
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
}
