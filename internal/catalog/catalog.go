package catalog

import (
	"fmt"
	"math"
)

// Catalog is the read-only hotel collection. Accessors hand out copies so no
// caller can mutate a record after load.
type Catalog struct {
	hotels     []Hotel
	byID       map[int]int
	priceRange PriceRange
}

func New(hotels []Hotel) (*Catalog, error) {
	if len(hotels) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		hotels: make([]Hotel, 0, len(hotels)),
		byID:   make(map[int]int, len(hotels)),
		priceRange: PriceRange{
			Min: math.Inf(1),
			Max: math.Inf(-1),
		},
	}

	for _, h := range hotels {
		if err := validate(h); err != nil {
			return nil, err
		}

		if _, ok := c.byID[h.ID]; ok {
			return nil, fmt.Errorf("hotel %d: %w", h.ID, ErrDuplicateID)
		}

		c.byID[h.ID] = len(c.hotels)
		c.hotels = append(c.hotels, h.clone())
		c.priceRange.Min = math.Min(c.priceRange.Min, h.Price)
		c.priceRange.Max = math.Max(c.priceRange.Max, h.Price)
	}

	return c, nil
}

func validate(h Hotel) error {
	switch {
	case h.Price < 0:
		return fmt.Errorf("hotel %d: negative price %v: %w", h.ID, h.Price, ErrInvalidHotel)
	case h.Rating < 0 || h.Rating > 5:
		return fmt.Errorf("hotel %d: rating %v out of [0, 5]: %w", h.ID, h.Rating, ErrInvalidHotel)
	case h.Availability.CheckIn.IsZero() || h.Availability.CheckOut.IsZero():
		return fmt.Errorf("hotel %d: missing availability: %w", h.ID, ErrInvalidHotel)
	case h.Availability.CheckIn.After(h.Availability.CheckOut):
		return fmt.Errorf("hotel %d: check-in after check-out: %w", h.ID, ErrInvalidHotel)
	}

	for _, a := range h.Amenities {
		if !IsAmenity(string(a)) {
			return fmt.Errorf("hotel %d: unknown amenity %q: %w", h.ID, a, ErrInvalidHotel)
		}
	}

	return nil
}

// Hotels returns the records in catalog order.
func (c *Catalog) Hotels() []Hotel {
	out := make([]Hotel, len(c.hotels))
	for i, h := range c.hotels {
		out[i] = h.clone()
	}

	return out
}

func (c *Catalog) Get(id int) (Hotel, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Hotel{}, false
	}

	return c.hotels[idx].clone(), true
}

func (c *Catalog) Len() int {
	return len(c.hotels)
}

func (c *Catalog) PriceRange() PriceRange {
	return c.priceRange
}
