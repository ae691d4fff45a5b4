package model

import (
	"strings"
	"time"
)

// Season represents an Indian agricultural season.
type Season string

const (
	SeasonKharif    Season = "Kharif"
	SeasonRabi      Season = "Rabi"
	SeasonZaid      Season = "Zaid"
	SeasonWholeYear Season = "Whole Year"
)

// SeasonForMonth maps a calendar month to the season in which sowing
// would begin. Months 6-10 are the monsoon (Kharif) window, 11-3 the
// winter (Rabi) window, and 4-5 the short summer (Zaid) window.
func SeasonForMonth(month time.Month) Season {
	switch month {
	case time.June, time.July, time.August, time.September, time.October:
		return SeasonKharif
	case time.November, time.December, time.January, time.February, time.March:
		return SeasonRabi
	case time.April, time.May:
		return SeasonZaid
	default:
		return SeasonWholeYear
	}
}

// ParseSeason normalizes a free-text season label from a dataset row.
// Unrecognized values fall through to Whole Year, which the planner
// treats as a catch-all rather than a literal match.
func ParseSeason(s string) Season {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kharif":
		return SeasonKharif
	case "rabi":
		return SeasonRabi
	case "zaid", "summer":
		return SeasonZaid
	default:
		return SeasonWholeYear
	}
}
