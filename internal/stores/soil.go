package stores

import (
	"strings"

	"github.com/agroplan/agro-advisor/internal/model"
)

// SoilStore is a read-only view over the per-state soil profile table.
type SoilStore struct {
	profiles []model.SoilProfile
}

// NewSoilStore wraps a loaded profile collection.
func NewSoilStore(profiles []model.SoilProfile) *SoilStore {
	return &SoilStore{profiles: profiles}
}

// Len returns the number of profiles.
func (s *SoilStore) Len() int { return len(s.profiles) }

// ProfileFor returns the soil profile for a state, if one exists.
func (s *SoilStore) ProfileFor(state string) (*model.SoilProfile, bool) {
	for i := range s.profiles {
		if strings.EqualFold(s.profiles[i].State, state) {
			p := s.profiles[i]
			return &p, true
		}
	}
	return nil, false
}
