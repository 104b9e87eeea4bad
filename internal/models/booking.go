package models

type Booking struct {
	BookingID    int64   `json:"booking_id"`
	RoomID       int64   `json:"room_id"`
	GuestName    string  `json:"guest_name"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
}

type BookingRequest struct {
	RoomID       int64  `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	GuestName    string `json:"guest_name"`
}
