// Package ordering builds total-order comparators over hotel records from a
// sort specification.
package ordering

import (
	"cmp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/avstrong/hotelsearch/internal/catalog"
)

type Field string

const (
	FieldNone   Field = ""
	FieldPrice  Field = "price"
	FieldRating Field = "rating"
	FieldName   Field = "name"
)

func ParseField(s string) (Field, bool) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldPrice, FieldRating, FieldName:
		return f, true
	default:
		return FieldNone, false
	}
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

func ParseDirection(s string) (Direction, bool) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Ascending, Descending:
		return d, true
	default:
		return "", false
	}
}

// Spec orders by Primary in Direction. Secondary, when set, breaks exact ties
// and is always ascending. Secondary equal to Primary is allowed and has no
// effect.
type Spec struct {
	Primary   Field     `json:"primary"`
	Direction Direction `json:"direction"`
	Secondary Field     `json:"secondary,omitempty"`
}

func Default() Spec {
	return Spec{Primary: FieldPrice, Direction: Ascending}
}

// Toggle mirrors a column header click: the same field flips ascending to
// descending, anything else starts ascending. Secondary is kept.
func (s Spec) Toggle(f Field) Spec {
	next := s
	next.Primary = f
	next.Direction = Ascending

	if s.Primary == f && s.Direction == Ascending {
		next.Direction = Descending
	}

	return next
}

type Comparator func(a, b catalog.Hotel) int

// Build returns a comparator for spec. The comparator owns a collator and must
// not be shared between goroutines.
func Build(spec Spec) Comparator {
	coll := collate.New(language.English, collate.IgnoreCase)

	byField := func(a, b catalog.Hotel, f Field) int {
		switch f {
		case FieldName:
			return coll.CompareString(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case FieldPrice:
			return cmp.Compare(a.Price, b.Price)
		case FieldRating:
			return cmp.Compare(a.Rating, b.Rating)
		default:
			return 0
		}
	}

	return func(a, b catalog.Hotel) int {
		c := byField(a, b, spec.Primary)
		if spec.Direction == Descending {
			c = -c
		}

		if c == 0 && spec.Secondary != FieldNone {
			c = byField(a, b, spec.Secondary)
		}

		return c
	}
}
