package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/avstrong/hotelsearch/internal/catalog"
)

// Matches is the conjunction of the five predicates. dateErr comes from
// ValidateDateRange on the same criteria.
func Matches(h catalog.Hotel, c Criteria, dateErr DateError) bool {
	return MatchesSearch(h, c) &&
		MatchesPrice(h, c) &&
		MatchesRating(h, c) &&
		MatchesAmenities(h, c) &&
		MatchesAvailability(h, c, dateErr)
}

// MatchesPrice is inclusive on both ends. With MinPrice > MaxPrice nothing matches.
func MatchesPrice(h catalog.Hotel, c Criteria) bool {
	return h.Price >= c.MinPrice && h.Price <= c.MaxPrice
}

func MatchesRating(h catalog.Hotel, c Criteria) bool {
	return h.Rating >= c.MinRating
}

func MatchesAmenities(h catalog.Hotel, c Criteria) bool {
	if len(c.Amenities) == 0 {
		return true
	}

	if c.AmenityLogic == LogicAny {
		for _, a := range c.Amenities {
			if h.HasAmenity(a) {
				return true
			}
		}

		return false
	}

	for _, a := range c.Amenities {
		if !h.HasAmenity(a) {
			return false
		}
	}

	return true
}

// MatchesAvailability is bypassed while the date fields are invalid so the
// other filters stay usable. With both dates the requested window must be
// enclosed by the hotel's window; this is not an overlap test.
func MatchesAvailability(h catalog.Hotel, c Criteria, dateErr DateError) bool {
	if dateErr != DateErrorNone {
		return true
	}

	start, hasStart := parseOptionalDate(c.StartDate)
	end, hasEnd := parseOptionalDate(c.EndDate)

	switch {
	case !hasStart && !hasEnd:
		return true
	case hasStart && !hasEnd:
		return h.Availability.Contains(start)
	case !hasStart && hasEnd:
		return h.Availability.Contains(end)
	default:
		return !start.Before(h.Availability.CheckIn) && !end.After(h.Availability.CheckOut)
	}
}

func parseOptionalDate(s string) (catalog.Date, bool) {
	if s == "" {
		return catalog.Date{}, false
	}

	d, err := catalog.ParseDate(s)
	if err != nil {
		return catalog.Date{}, false
	}

	return d, true
}

func MatchesSearch(h catalog.Hotel, c Criteria) bool {
	fold := cases.Fold()

	term := fold.String(strings.TrimSpace(c.Search))
	if term == "" {
		return true
	}

	return strings.Contains(fold.String(h.Name), term) || strings.Contains(fold.String(h.City), term)
}
