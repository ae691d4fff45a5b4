package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroplan/agro-advisor/internal/model"
)

func testCalendar() *CalendarStore {
	return NewCalendarStore([]model.CalendarEntry{
		{Crop: "Rice", State: "Punjab", Season: "Kharif", SowingPeriod: "June-July", HarvestingPeriod: "October-November"},
		{Crop: "Rice", State: "Kerala", Season: "Kharif", SowingPeriod: "May", HarvestingPeriod: "September"},
		{Crop: "Wheat", State: "Punjab", Season: "Rabi", SowingPeriod: "November", HarvestingPeriod: "April"},
	})
}

func TestEntryFor_ExactState(t *testing.T) {
	s := testCalendar()
	e, ok := s.EntryFor("rice", "kerala")
	require.True(t, ok)
	assert.Equal(t, "May", e.SowingPeriod)
}

func TestEntryFor_CropOnlyFallback(t *testing.T) {
	s := testCalendar()
	e, ok := s.EntryFor("Rice", "Bihar")
	require.True(t, ok)
	// First entry for the crop is used when the state has none.
	assert.Equal(t, "Punjab", e.State)
}

func TestEntryFor_Missing(t *testing.T) {
	s := testCalendar()
	_, ok := s.EntryFor("Barley", "Punjab")
	assert.False(t, ok)
}

func TestParseGrowingDays(t *testing.T) {
	tests := []struct {
		name    string
		sowing  string
		harvest string
		days    int
	}{
		{"kharif rice", "June-July", "October-November", 120},
		{"rabi wheat wraps year", "November", "April", 150},
		{"single months", "May", "September", 120},
		{"same month wraps", "March", "March", 360},
		{"mixed case", "JUNE to july", "early October", 120},
		{"unparseable sowing", "mid-season", "October", 90},
		{"unparseable harvest", "June", "n/a", 90},
		{"both empty", "", "", 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, ParseGrowingDays(tt.sowing, tt.harvest))
		})
	}
}

func TestSoilProfileFor(t *testing.T) {
	s := NewSoilStore([]model.SoilProfile{
		{State: "Punjab", N: 270, P: 18, K: 162, PH: 7.8},
	})

	p, ok := s.ProfileFor("punjab")
	require.True(t, ok)
	assert.Equal(t, 7.8, p.PH)

	_, ok = s.ProfileFor("Goa")
	assert.False(t, ok)
}
