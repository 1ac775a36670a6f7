package filter

import (
	"math"
	"slices"
	"strings"

	"github.com/avstrong/hotelsearch/internal/catalog"
)

const maxRating = 5

// Raw user input is coerced to a safe value instead of being rejected.

func CoerceMinPrice(raw string) float64 {
	return coercePrice(raw, 0)
}

// CoerceMaxPrice falls back to the catalog maximum for empty, zero or
// non-numeric input.
func CoerceMaxPrice(raw string, catalogMax float64) float64 {
	return coercePrice(raw, catalogMax)
}

func coercePrice(raw string, fallback float64) float64 {
	v, ok := parseNumber(raw)
	if !ok || v == 0 {
		v = fallback
	}

	return math.Max(0, v)
}

func CoerceRating(raw string) float64 {
	v, ok := parseNumber(raw)
	if !ok {
		return 0
	}

	return math.Min(maxRating, math.Max(0, v))
}

func CoerceAmenityLogic(raw string) AmenityLogic {
	if l := AmenityLogic(strings.ToUpper(strings.TrimSpace(raw))); l.Valid() {
		return l
	}

	return LogicAll
}

// CoerceAmenities keeps vocabulary names only, first occurrence wins.
func CoerceAmenities(raw string) []catalog.Amenity {
	out := []catalog.Amenity{}

	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if !catalog.IsAmenity(name) || slices.Contains(out, catalog.Amenity(name)) {
			continue
		}

		out = append(out, catalog.Amenity(name))
	}

	return out
}

// ToggleAmenity adds a missing amenity at the end or removes a present one.
func ToggleAmenity(selected []catalog.Amenity, a catalog.Amenity) []catalog.Amenity {
	if idx := slices.Index(selected, a); idx >= 0 {
		out := append([]catalog.Amenity{}, selected[:idx]...)

		return append(out, selected[idx+1:]...)
	}

	return append(append([]catalog.Amenity{}, selected...), a)
}
