package catalog

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type Amenity string

const (
	WiFi       Amenity = "WiFi"
	Pool       Amenity = "Pool"
	Gym        Amenity = "Gym"
	Beach      Amenity = "Beach"
	Spa        Amenity = "Spa"
	Restaurant Amenity = "Restaurant"
	Parking    Amenity = "Parking"
	Bar        Amenity = "Bar"
)

// AllAmenities returns the amenity vocabulary in display order.
func AllAmenities() []Amenity {
	return []Amenity{WiFi, Pool, Gym, Beach, Spa, Restaurant, Parking, Bar}
}

func IsAmenity(name string) bool {
	for _, a := range AllAmenities() {
		if string(a) == name {
			return true
		}
	}

	return false
}

// Date is a calendar date without time of day or zone.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD only and rejects impossible days such as 2025-02-30.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}

	return Date{t: t}, nil
}

func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}

	return d
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.t.Format(dateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

type Availability struct {
	CheckIn  Date `json:"checkIn"`
	CheckOut Date `json:"checkOut"`
}

// Contains reports whether d lies in [CheckIn, CheckOut].
func (a Availability) Contains(d Date) bool {
	return !d.Before(a.CheckIn) && !d.After(a.CheckOut)
}

type Hotel struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	City         string       `json:"city"`
	Price        float64      `json:"price"`
	Rating       float64      `json:"rating"`
	Amenities    []Amenity    `json:"amenities"`
	Availability Availability `json:"availability"`
}

func (h Hotel) HasAmenity(a Amenity) bool {
	for _, own := range h.Amenities {
		if own == a {
			return true
		}
	}

	return false
}

func (h Hotel) clone() Hotel {
	c := h
	c.Amenities = append([]Amenity(nil), h.Amenities...)

	return c
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
