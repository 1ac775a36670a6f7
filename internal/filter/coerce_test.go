package filter

import (
	"slices"
	"testing"

	"github.com/avstrong/hotelsearch/internal/catalog"
)

func TestCoercePrices(t *testing.T) {
	for raw, want := range map[string]float64{"120": 120, "-5": 0, "abc": 0, "": 0, "12.5": 12.5} {
		if got := CoerceMinPrice(raw); got != want {
			t.Fatalf("CoerceMinPrice(%q) = %v, want %v", raw, got, want)
		}
	}

	for raw, want := range map[string]float64{"120": 120, "-5": 0, "abc": 300, "": 300, "0": 300} {
		if got := CoerceMaxPrice(raw, 300); got != want {
			t.Fatalf("CoerceMaxPrice(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestCoerceRatingAndLogic(t *testing.T) {
	if CoerceRating("4.5") != 4.5 || CoerceRating("x") != 0 || CoerceRating("9") != 5 {
		t.Fatalf("unexpected rating coercion")
	}

	if CoerceAmenityLogic("or") != LogicAny || CoerceAmenityLogic("nope") != LogicAll {
		t.Fatalf("unexpected logic coercion")
	}
}

func TestCoerceAmenities(t *testing.T) {
	got := CoerceAmenities("Pool, Sauna,Spa,Pool,")
	if !slices.Equal(got, []catalog.Amenity{catalog.Pool, catalog.Spa}) {
		t.Fatalf("unexpected amenities: %v", got)
	}
}

func TestToggleAmenity(t *testing.T) {
	sel := []catalog.Amenity{catalog.Pool}

	sel = ToggleAmenity(sel, catalog.Spa)
	if !slices.Equal(sel, []catalog.Amenity{catalog.Pool, catalog.Spa}) {
		t.Fatalf("add: %v", sel)
	}

	sel = ToggleAmenity(sel, catalog.Pool)
	if !slices.Equal(sel, []catalog.Amenity{catalog.Spa}) {
		t.Fatalf("remove: %v", sel)
	}
}
