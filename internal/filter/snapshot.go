package filter

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/avstrong/hotelsearch/internal/catalog"
)

// StorageKey is the single key the criteria snapshot is persisted under.
const StorageKey = "hotel-dashboard-filters"

const snapshotSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"search":       {"type": "string"},
		"minPrice":     {"type": "number"},
		"maxPrice":     {"type": "number"},
		"amenities":    {"type": "array", "items": {"type": "string"}},
		"amenityLogic": {"enum": ["AND", "OR"]},
		"minRating":    {"type": "number"},
		"startDate":    {"type": "string"},
		"endDate":      {"type": "string"}
	}
}`

var snapshotSchema = jsonschema.MustCompileString("hotel-dashboard-filters.schema.json", snapshotSchemaJSON)

type snapshot struct {
	Search       *string            `json:"search"`
	MinPrice     *float64           `json:"minPrice"`
	MaxPrice     *float64           `json:"maxPrice"`
	Amenities    *[]catalog.Amenity `json:"amenities"`
	AmenityLogic *AmenityLogic      `json:"amenityLogic"`
	MinRating    *float64           `json:"minRating"`
	StartDate    *string            `json:"startDate"`
	EndDate      *string            `json:"endDate"`
}

func EncodeSnapshot(c Criteria) ([]byte, error) {
	b, err := json.Marshal(c.Clone())
	if err != nil {
		return nil, fmt.Errorf("marshal criteria snapshot: %w", err)
	}

	return b, nil
}

// DecodeSnapshot overlays the fields present in b on defaults. The blob is
// rejected as a whole when it is not JSON or does not match the schema.
func DecodeSnapshot(b []byte, defaults Criteria) (Criteria, error) {
	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return defaults, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	if err := snapshotSchema.Validate(doc); err != nil {
		return defaults, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	var s snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return defaults, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	c := defaults.Clone()

	if s.Search != nil {
		c.Search = *s.Search
	}

	if s.MinPrice != nil {
		c.MinPrice = *s.MinPrice
	}

	if s.MaxPrice != nil {
		c.MaxPrice = *s.MaxPrice
	}

	if s.Amenities != nil {
		c.Amenities = append([]catalog.Amenity{}, *s.Amenities...)
	}

	if s.AmenityLogic != nil {
		c.AmenityLogic = *s.AmenityLogic
	}

	if s.MinRating != nil {
		c.MinRating = *s.MinRating
	}

	if s.StartDate != nil {
		c.StartDate = *s.StartDate
	}

	if s.EndDate != nil {
		c.EndDate = *s.EndDate
	}

	return c, nil
}
