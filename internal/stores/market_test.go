package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroplan/agro-advisor/internal/model"
)

func price(commodity, state string, day int, modal float64) model.PriceRecord {
	return model.PriceRecord{
		Commodity: commodity, State: state, District: "d", Market: "m",
		Date:       time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		MinPrice:   modal - 100, MaxPrice: modal + 100, ModalPrice: modal,
	}
}

func TestCommodityFor(t *testing.T) {
	assert.Equal(t, "paddy", CommodityFor("Rice"))
	assert.Equal(t, "paddy", CommodityFor(" rice "))
	assert.Equal(t, "mustard", CommodityFor("Rapeseed & Mustard"))
	// Identity fallback for unmapped crops.
	assert.Equal(t, "Wheat", CommodityFor("Wheat"))
}

func TestMatch_PrefersState(t *testing.T) {
	s := NewMarketStore([]model.PriceRecord{
		price("Paddy(Dhan)", "Punjab", 1, 2000),
		price("Paddy(Dhan)", "Haryana", 2, 2100),
		price("Wheat", "Punjab", 3, 2300),
	})

	got := s.Match("Rice", "Punjab")
	require.Len(t, got, 1)
	assert.Equal(t, "Punjab", got[0].State)
}

func TestMatch_FallsBackToAllStates(t *testing.T) {
	s := NewMarketStore([]model.PriceRecord{
		price("Paddy(Dhan)", "Haryana", 1, 2000),
		price("Paddy(Dhan)", "Kerala", 2, 2100),
	})

	got := s.Match("Rice", "Punjab")
	assert.Len(t, got, 2)
}

func TestMatch_SortedNewestFirst(t *testing.T) {
	s := NewMarketStore([]model.PriceRecord{
		price("Wheat", "Punjab", 5, 2250),
		price("Wheat", "Punjab", 20, 2400),
		price("Wheat", "Punjab", 12, 2300),
	})

	got := s.Match("Wheat", "Punjab")
	require.Len(t, got, 3)
	assert.Equal(t, 2400.0, got[0].ModalPrice)
	assert.Equal(t, 2300.0, got[1].ModalPrice)
	assert.Equal(t, 2250.0, got[2].ModalPrice)
}

func TestMatch_NoCommodity(t *testing.T) {
	s := NewMarketStore([]model.PriceRecord{
		price("Wheat", "Punjab", 1, 2300),
	})
	assert.Empty(t, s.Match("Barley", "Punjab"))
}
