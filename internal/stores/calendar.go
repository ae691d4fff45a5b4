package stores

import (
	"strings"

	"github.com/agroplan/agro-advisor/internal/model"
)

// defaultGrowingDays is used when the free-text period strings cannot be
// parsed. Roughly one typical season.
const defaultGrowingDays = 90

var monthNumbers = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// CalendarStore is a read-only view over the crop calendar table.
type CalendarStore struct {
	entries []model.CalendarEntry
}

// NewCalendarStore wraps a loaded calendar collection.
func NewCalendarStore(entries []model.CalendarEntry) *CalendarStore {
	return &CalendarStore{entries: entries}
}

// Len returns the number of calendar entries.
func (s *CalendarStore) Len() int { return len(s.entries) }

// EntryFor returns the calendar entry for a crop in a state. When the
// state has no entry, the first entry for the crop in any state is used.
func (s *CalendarStore) EntryFor(crop, state string) (*model.CalendarEntry, bool) {
	var cropOnly *model.CalendarEntry
	for i := range s.entries {
		if !strings.EqualFold(s.entries[i].Crop, crop) {
			continue
		}
		if strings.EqualFold(s.entries[i].State, state) {
			e := s.entries[i]
			return &e, true
		}
		if cropOnly == nil {
			e := s.entries[i]
			cropOnly = &e
		}
	}
	if cropOnly != nil {
		return cropOnly, true
	}
	return nil, false
}

// ParseGrowingDays derives an approximate growing period in days from
// free-text sowing and harvesting windows. Matching is heuristic: only
// month names are recognized, at roughly 30 days per month. Anything
// unparseable yields the 90-day default. Best-effort, not authoritative.
func ParseGrowingDays(sowing, harvest string) int {
	sowMonth, ok1 := firstMonth(sowing)
	harvestMonth, ok2 := firstMonth(harvest)
	if !ok1 || !ok2 {
		return defaultGrowingDays
	}

	months := harvestMonth - sowMonth
	if months <= 0 {
		months += 12
	}
	return months * 30
}

// firstMonth finds the earliest-positioned month name in a free-text
// period string.
func firstMonth(period string) (int, bool) {
	lower := strings.ToLower(period)
	best := -1
	month := 0
	for name, num := range monthNumbers {
		idx := strings.Index(lower, name)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			month = num
		}
	}
	return month, best >= 0
}
