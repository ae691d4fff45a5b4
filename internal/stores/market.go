package stores

import (
	"sort"
	"strings"

	"github.com/agroplan/agro-advisor/internal/model"
)

// cropCommodities maps crop names from the production dataset to the
// commodity names used by the mandi price feed. Crops not listed here
// fall back to their own name.
var cropCommodities = map[string]string{
	"rice":               "paddy",
	"gram":               "bengal gram",
	"rapeseed & mustard": "mustard",
	"arhar/tur":          "arhar",
	"cotton(lint)":       "cotton",
	"groundnut":          "groundnut",
}

// MarketStore is a read-only view over the mandi price dataset.
type MarketStore struct {
	records []model.PriceRecord
}

// NewMarketStore wraps a loaded price collection.
func NewMarketStore(records []model.PriceRecord) *MarketStore {
	return &MarketStore{records: records}
}

// Len returns the number of price records.
func (s *MarketStore) Len() int { return len(s.records) }

// CommodityFor translates a crop name to its market commodity name,
// falling back to the crop name itself.
func CommodityFor(crop string) string {
	if c, ok := cropCommodities[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return c
	}
	return crop
}

// Match returns price records for a crop, newest first. Records are
// matched by case-insensitive substring on the mapped commodity name.
// Records from the given state are preferred; when the state has none,
// the match widens to all states for that commodity.
func (s *MarketStore) Match(crop, state string) []model.PriceRecord {
	commodity := strings.ToLower(CommodityFor(crop))

	var all, inState []model.PriceRecord
	for _, r := range s.records {
		if !strings.Contains(strings.ToLower(r.Commodity), commodity) {
			continue
		}
		all = append(all, r)
		if state != "" && strings.Contains(strings.ToLower(r.State), strings.ToLower(state)) {
			inState = append(inState, r)
		}
	}

	matched := all
	if len(inState) > 0 {
		matched = inState
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return matched
}
