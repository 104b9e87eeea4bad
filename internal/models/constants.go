package models

const (
	StatusConfirmed = "confirmed"

	// DateLayout формат дат во внешнем API и в фикстурах
	DateLayout = "2006-01-02"

	// Currency единственная валюта ответов поиска
	Currency = "EUR"

	// BookingIDFloor минимальная база для выдаваемых booking_id
	BookingIDFloor = 100
)
