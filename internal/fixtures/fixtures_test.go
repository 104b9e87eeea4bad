package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"hotelmock/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtureDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
		require.NoError(t, err)
	}
	return dir
}

func validFiles() map[string]string {
	return map[string]string{
		HotelsFile: `[{"hotel_id": 1, "name": "Hotel Aurora", "city": "Lisbon", "country": "PT", "stars": 4}]`,
		RoomsFile: `[{"room_id": 10, "hotel_id": 1, "room_type": "double", "bed_type": "queen",
			"capacity_adults": 2, "capacity_children": 1, "base_price": 100.0}]`,
		AvailabilityFile: `[{"room_id": 10, "date": "2025-07-01", "is_available": true}]`,
		BookingsFile:     `[{"booking_id": 101, "room_id": 10, "guest_name": "Ada", "check_in_date": "2025-07-01", "check_out_date": "2025-07-02", "total_price": 120.0, "status": "confirmed"}]`,
	}
}

func TestLoad(t *testing.T) {
	dir := writeFixtureDir(t, validFiles())

	set, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, set.Hotels, 1)
	assert.Equal(t, "Hotel Aurora", set.Hotels[0].Name)
	require.Len(t, set.Rooms, 1)
	assert.Equal(t, 100.0, set.Rooms[0].BasePrice)
	require.Len(t, set.Availability, 1)
	assert.True(t, set.Availability[0].IsAvailable)
	require.Len(t, set.Bookings, 1)
	assert.Equal(t, models.StatusConfirmed, set.Bookings[0].Status)
}

func TestLoadMissingFile(t *testing.T) {
	files := validFiles()
	delete(files, BookingsFile)
	dir := writeFixtureDir(t, files)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	files := validFiles()
	files[RoomsFile] = `{not json`
	dir := writeFixtureDir(t, files)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Set)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(s *Set) {},
		},
		{
			name: "duplicate room id",
			mutate: func(s *Set) {
				s.Rooms = append(s.Rooms, s.Rooms[0])
			},
			wantErr: "duplicate room id",
		},
		{
			name: "negative base price",
			mutate: func(s *Set) {
				s.Rooms[0].BasePrice = -1
			},
			wantErr: "negative base price",
		},
		{
			name: "room references unknown hotel",
			mutate: func(s *Set) {
				s.Rooms[0].HotelID = 99
			},
			wantErr: "unknown hotel",
		},
		{
			name: "availability for unknown room",
			mutate: func(s *Set) {
				s.Availability[0].RoomID = 99
			},
			wantErr: "unknown room",
		},
		{
			name: "availability with bad date",
			mutate: func(s *Set) {
				s.Availability[0].Date = "07/01/2025"
			},
			wantErr: "invalid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := &Set{
				Hotels: []models.Hotel{{HotelID: 1, Name: "Hotel Aurora"}},
				Rooms: []models.Room{
					{RoomID: 10, HotelID: 1, RoomType: "double", BasePrice: 100},
				},
				Availability: []models.AvailabilityEntry{
					{RoomID: 10, Date: "2025-07-01", IsAvailable: true},
				},
			}
			tt.mutate(set)

			err := set.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
