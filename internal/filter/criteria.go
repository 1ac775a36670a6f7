package filter

import (
	"slices"
	"strings"

	"github.com/avstrong/hotelsearch/internal/catalog"
)

type AmenityLogic string

const (
	// LogicAll requires every selected amenity.
	LogicAll AmenityLogic = "AND"
	// LogicAny requires at least one selected amenity.
	LogicAny AmenityLogic = "OR"
)

func (l AmenityLogic) Valid() bool {
	return l == LogicAll || l == LogicAny
}

type Field string

const (
	FieldSearch       Field = "search"
	FieldMinPrice     Field = "minPrice"
	FieldMaxPrice     Field = "maxPrice"
	FieldAmenities    Field = "amenities"
	FieldAmenityLogic Field = "amenityLogic"
	FieldMinRating    Field = "minRating"
	FieldStartDate    Field = "startDate"
	FieldEndDate      Field = "endDate"
)

// Fields lists the criteria fields in URL order.
func Fields() []Field {
	return []Field{
		FieldSearch, FieldMinPrice, FieldMaxPrice, FieldAmenities,
		FieldAmenityLogic, FieldMinRating, FieldStartDate, FieldEndDate,
	}
}

func ParseField(s string) (Field, bool) {
	for _, f := range Fields() {
		if string(f) == s {
			return f, true
		}
	}

	return "", false
}

type Criteria struct {
	Search       string            `json:"search"`
	MinPrice     float64           `json:"minPrice"`
	MaxPrice     float64           `json:"maxPrice"`
	Amenities    []catalog.Amenity `json:"amenities"`
	AmenityLogic AmenityLogic      `json:"amenityLogic"`
	MinRating    float64           `json:"minRating"`
	StartDate    string            `json:"startDate"`
	EndDate      string            `json:"endDate"`
}

func Defaults(pr catalog.PriceRange) Criteria {
	return Criteria{
		MinPrice:     pr.Min,
		MaxPrice:     pr.Max,
		Amenities:    []catalog.Amenity{},
		AmenityLogic: LogicAll,
	}
}

func (c Criteria) Clone() Criteria {
	out := c
	out.Amenities = append([]catalog.Amenity{}, c.Amenities...)

	return out
}

func (c Criteria) Equal(o Criteria) bool {
	return c.Search == o.Search &&
		c.MinPrice == o.MinPrice &&
		c.MaxPrice == o.MaxPrice &&
		slices.Equal(c.Amenities, o.Amenities) &&
		c.AmenityLogic == o.AmenityLogic &&
		c.MinRating == o.MinRating &&
		c.StartDate == o.StartDate &&
		c.EndDate == o.EndDate
}

// ActiveFilterCount counts the dimensions that deviate from defaults. Each
// dimension contributes at most one, so two dates still count once.
func ActiveFilterCount(c, defaults Criteria) int {
	count := 0

	if strings.TrimSpace(c.Search) != "" {
		count++
	}

	if c.MinPrice > defaults.MinPrice {
		count++
	}

	if c.MaxPrice < defaults.MaxPrice {
		count++
	}

	if len(c.Amenities) > 0 {
		count++
	}

	if c.MinRating > 0 {
		count++
	}

	if c.StartDate != "" || c.EndDate != "" {
		count++
	}

	return count
}
