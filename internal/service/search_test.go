package service

import (
	"context"
	"io"
	"testing"
	"time"

	"hotelmock/internal/models"
	"hotelmock/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func avail(roomID int64, date string, ok bool) models.AvailabilityEntry {
	return models.AvailabilityEntry{RoomID: roomID, Date: date, IsAvailable: ok}
}

func newTestService() *Service {
	hotels := []models.Hotel{
		{HotelID: 1, Name: "Hotel Aurora", City: "Lisbon", Country: "PT", Stars: 4},
		{HotelID: 2, Name: "Pension Linde", City: "Vienna", Country: "AT", Stars: 3},
	}
	rooms := []models.Room{
		{RoomID: 10, HotelID: 1, RoomType: "Double", BedType: "Queen", CapacityAdults: 2, CapacityChildren: 1, BasePrice: 100},
		{RoomID: 11, HotelID: 1, RoomType: "Suite", BedType: "King", CapacityAdults: 3, CapacityChildren: 2, BasePrice: 220},
		{RoomID: 20, HotelID: 2, RoomType: "Single", BedType: "Twin", CapacityAdults: 1, CapacityChildren: 0, BasePrice: 50},
	}
	entries := []models.AvailabilityEntry{
		// Room 10: open early July except an explicit blackout on the 3rd,
		// then open again for the 18th-21st.
		avail(10, "2025-07-01", true),
		avail(10, "2025-07-02", true),
		avail(10, "2025-07-03", false),
		avail(10, "2025-07-04", true),
		avail(10, "2025-07-05", true),
		avail(10, "2025-07-18", true),
		avail(10, "2025-07-19", true),
		avail(10, "2025-07-20", true),
		avail(10, "2025-07-21", true),
		// Room 11: only the first two nights of July.
		avail(11, "2025-07-01", true),
		avail(11, "2025-07-02", true),
		// Room 20: open the first five nights of July.
		avail(20, "2025-07-01", true),
		avail(20, "2025-07-02", true),
		avail(20, "2025-07-03", true),
		avail(20, "2025-07-04", true),
		avail(20, "2025-07-05", true),
	}
	bookings := []models.Booking{
		{BookingID: 101, RoomID: 10},
		{BookingID: 104, RoomID: 20},
	}

	logger := zerolog.New(io.Discard)
	return New(store.New(hotels, rooms, entries, bookings), &logger)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return d
}

func searchParams(t *testing.T, checkIn, checkOut string) models.SearchParams {
	t.Helper()
	return models.SearchParams{
		CheckIn:  mustDate(t, checkIn),
		CheckOut: mustDate(t, checkOut),
	}
}

func resultRoomIDs(resp *models.SearchResponse) []int64 {
	ids := make([]int64, 0, len(resp.Results))
	for _, r := range resp.Results {
		ids = append(ids, r.RoomID)
	}
	return ids
}

func TestSearchIncludesOnlyFullyAvailableRooms(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	resp, err := svc.Search(ctx, searchParams(t, "2025-07-01", "2025-07-03"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{10, 11, 20}, resultRoomIDs(resp))
	assert.Equal(t, "EUR", resp.Currency)

	// The 3rd is a blackout for room 10 and missing entirely for room 11;
	// one bad night rejects the whole stay.
	resp, err = svc.Search(ctx, searchParams(t, "2025-07-02", "2025-07-04"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{20}, resultRoomIDs(resp))
}

func TestSearchCheckoutDayNotBilled(t *testing.T) {
	svc := newTestService()

	// Room 11 is only available on the 1st and 2nd; a checkout on the 3rd
	// does not require the 3rd itself.
	resp, err := svc.Search(context.Background(), searchParams(t, "2025-07-01", "2025-07-03"))
	require.NoError(t, err)
	assert.Contains(t, resultRoomIDs(resp), int64(11))
}

func TestSearchPrices(t *testing.T) {
	svc := newTestService()

	// Fri 18th (100 * 1.2 = 120) + Sat 19th (100 * 1.2 * 1.1 = 132).
	p := searchParams(t, "2025-07-18", "2025-07-20")
	p.HotelID = 1
	p.RoomType = "double"

	resp, err := svc.Search(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	result := resp.Results[0]
	assert.Equal(t, int64(10), result.RoomID)
	assert.Equal(t, 252.0, result.TotalPrice)
	assert.Equal(t, 126.0, result.NightlyPrice)
	assert.Equal(t, "2025-07-18", result.DateRange.CheckInDate)
	assert.Equal(t, "2025-07-20", result.DateRange.CheckOutDate)
}

func TestSearchPriceBoundsUseLastNight(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Sun 20th costs 132, Mon 21st costs 120; the bounds compare the
	// final night only.
	p := searchParams(t, "2025-07-20", "2025-07-22")
	p.HotelID = 1

	maxPrice := 125.0
	p.MaxPrice = &maxPrice
	resp, err := svc.Search(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, resultRoomIDs(resp))

	p.MaxPrice = nil
	minPrice := 125.0
	p.MinPrice = &minPrice
	resp, err = svc.Search(ctx, p)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestSearchMinPriceAboveEverythingIsEmptyNotError(t *testing.T) {
	svc := newTestService()

	p := searchParams(t, "2025-07-01", "2025-07-03")
	minPrice := 10000.0
	p.MinPrice = &minPrice

	resp, err := svc.Search(context.Background(), p)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestSearchCapacityFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p := searchParams(t, "2025-07-01", "2025-07-03")
	p.Adults = 2
	resp, err := svc.Search(ctx, p)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{10, 11}, resultRoomIDs(resp))

	p.Children = 2
	resp, err = svc.Search(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, resultRoomIDs(resp))
}

func TestSearchTypeFiltersAreCaseInsensitive(t *testing.T) {
	svc := newTestService()

	p := searchParams(t, "2025-07-01", "2025-07-03")
	p.RoomType = "SUITE"
	p.BedType = "king"

	resp, err := svc.Search(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, resultRoomIDs(resp))
}

func TestSearchRejectsEmptyRange(t *testing.T) {
	svc := newTestService()

	p := searchParams(t, "2025-07-01", "2025-07-01")
	_, err := svc.Search(context.Background(), p)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRoomsFilter(t *testing.T) {
	svc := newTestService()

	rooms := svc.Rooms(models.RoomFilter{})
	assert.Len(t, rooms, 3)

	rooms = svc.Rooms(models.RoomFilter{HotelID: 1})
	assert.Len(t, rooms, 2)

	rooms = svc.Rooms(models.RoomFilter{RoomType: "single", BedType: "TWIN"})
	require.Len(t, rooms, 1)
	assert.Equal(t, int64(20), rooms[0].RoomID)
}

func TestHotelsPassThrough(t *testing.T) {
	svc := newTestService()

	hotels := svc.Hotels()
	require.Len(t, hotels, 2)
	assert.Equal(t, "Hotel Aurora", hotels[0].Name)
}
