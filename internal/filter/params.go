package filter

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/avstrong/hotelsearch/internal/catalog"
)

// FromQuery overlays the recognized URL parameters on defaults. The second
// result reports whether any recognized parameter carried a value, which makes
// the URL the winning source for initialization. Malformed numbers and an
// unknown amenityLogic are treated as absent.
func FromQuery(q url.Values, defaults Criteria) (Criteria, bool) {
	c := defaults.Clone()
	present := false

	for _, f := range Fields() {
		raw := q.Get(string(f))
		if raw == "" {
			continue
		}

		present = true

		switch f {
		case FieldSearch:
			c.Search = raw
		case FieldMinPrice:
			if v, ok := parseNumber(raw); ok {
				c.MinPrice = v
			}
		case FieldMaxPrice:
			if v, ok := parseNumber(raw); ok {
				c.MaxPrice = v
			}
		case FieldAmenities:
			c.Amenities = splitAmenities(raw)
		case FieldAmenityLogic:
			if l := AmenityLogic(raw); l.Valid() {
				c.AmenityLogic = l
			}
		case FieldMinRating:
			if v, ok := parseNumber(raw); ok {
				c.MinRating = v
			}
		case FieldStartDate:
			c.StartDate = raw
		case FieldEndDate:
			c.EndDate = raw
		}
	}

	return c, present
}

// ToQuery encodes c omitting every field equal to its default.
func ToQuery(c, defaults Criteria) url.Values {
	q := url.Values{}

	if c.Search != "" {
		q.Set(string(FieldSearch), c.Search)
	}

	if c.MinPrice != defaults.MinPrice {
		q.Set(string(FieldMinPrice), formatNumber(c.MinPrice))
	}

	if c.MaxPrice != defaults.MaxPrice {
		q.Set(string(FieldMaxPrice), formatNumber(c.MaxPrice))
	}

	if len(c.Amenities) > 0 {
		names := make([]string, len(c.Amenities))
		for i, a := range c.Amenities {
			names[i] = string(a)
		}

		q.Set(string(FieldAmenities), strings.Join(names, ","))
	}

	if c.AmenityLogic != defaults.AmenityLogic {
		q.Set(string(FieldAmenityLogic), string(c.AmenityLogic))
	}

	if c.MinRating != defaults.MinRating {
		q.Set(string(FieldMinRating), formatNumber(c.MinRating))
	}

	if c.StartDate != "" {
		q.Set(string(FieldStartDate), c.StartDate)
	}

	if c.EndDate != "" {
		q.Set(string(FieldEndDate), c.EndDate)
	}

	return q
}

func splitAmenities(raw string) []catalog.Amenity {
	out := []catalog.Amenity{}

	for _, part := range strings.Split(raw, ",") {
		if part != "" {
			out = append(out, catalog.Amenity(part))
		}
	}

	return out
}

func parseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
