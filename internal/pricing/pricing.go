package pricing

import (
	"math"
	"time"
)

const (
	seasonMultiplier  = 1.2
	weekendMultiplier = 1.1
)

// Nightly returns the price of a single night for a room with the given
// base price. July and August nights cost 20% more, Saturday and Sunday
// nights 10% more; the multipliers stack. The result is rounded to two
// decimals after all multipliers are applied.
func Nightly(basePrice float64, d time.Time) float64 {
	price := basePrice
	if d.Month() == time.July || d.Month() == time.August {
		price *= seasonMultiplier
	}
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		price *= weekendMultiplier
	}
	return Round2(price)
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
