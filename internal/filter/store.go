package filter

import (
	"context"
	"net/url"

	"github.com/avstrong/hotelsearch/internal/catalog"
	"github.com/avstrong/hotelsearch/internal/logger"
)

// Location is the page address the criteria are mirrored to.
type Location interface {
	Query() url.Values
	// Replace swaps the current query without adding a history entry.
	Replace(q url.Values)
}

// Storage is a key/value blob store in the shape of browser local storage.
type Storage interface {
	GetItem(ctx context.Context, key string) ([]byte, bool, error)
	SetItem(ctx context.Context, key string, value []byte) error
}

// Store owns the criteria of one session. Every change produces a fresh
// snapshot and mirrors it to the location and the storage. It is not safe for
// concurrent use; the owning session serializes access.
type Store struct {
	l        *logger.Logger
	location Location
	storage  Storage
	defaults Criteria
	current  Criteria
}

func NewStore(l *logger.Logger, defaults Criteria, location Location, storage Storage) *Store {
	return &Store{
		l:        l,
		location: location,
		storage:  storage,
		defaults: defaults.Clone(),
		current:  defaults.Clone(),
	}
}

// Initialize picks the first non-empty source: URL parameters, then the stored
// snapshot, then defaults. Storage problems are logged and never returned.
func (s *Store) Initialize(ctx context.Context) Criteria {
	s.current = s.load(ctx)
	s.persist(ctx)

	return s.Current()
}

func (s *Store) load(ctx context.Context) Criteria {
	if c, ok := FromQuery(s.location.Query(), s.defaults); ok {
		return c
	}

	blob, ok, err := s.storage.GetItem(ctx, StorageKey)
	if err != nil {
		s.l.LogWarnf("Failed to load filters from storage: %v", err)

		return s.defaults.Clone()
	}

	if !ok {
		return s.defaults.Clone()
	}

	c, err := DecodeSnapshot(blob, s.defaults)
	if err != nil {
		s.l.LogWarnf("Ignoring stored filters: %v", err)

		return s.defaults.Clone()
	}

	return c
}

func (s *Store) Current() Criteria {
	return s.current.Clone()
}

func (s *Store) Defaults() Criteria {
	return s.defaults.Clone()
}

func (s *Store) ActiveFilterCount() int {
	return ActiveFilterCount(s.current, s.defaults)
}

func (s *Store) DateError() DateError {
	return ValidateDateRange(s.current.StartDate, s.current.EndDate)
}

// Update applies fn to a copy of the current criteria and commits the copy.
func (s *Store) Update(ctx context.Context, fn func(c *Criteria)) Criteria {
	next := s.current.Clone()
	fn(&next)

	s.current = next
	s.persist(ctx)

	return s.Current()
}

func (s *Store) SetSearch(ctx context.Context, v string) Criteria {
	return s.Update(ctx, func(c *Criteria) { c.Search = v })
}

func (s *Store) SetMinPrice(ctx context.Context, v float64) Criteria {
	return s.Update(ctx, func(c *Criteria) { c.MinPrice = v })
}

func (s *Store) SetMaxPrice(ctx context.Context, v float64) Criteria {
	return s.Update(ctx, func(c *Criteria) { c.MaxPrice = v })
}

func (s *Store) SetAmenities(ctx context.Context, v []catalog.Amenity) Criteria {
	return s.Update(ctx, func(c *Criteria) { c.Amenities = append([]catalog.Amenity{}, v...) })
}

func (s *Store) SetAmenityLogic(ctx context.Context, v AmenityLogic) Criteria {
	return s.Update(ctx, func(c *Criteria) { c.AmenityLogic = v })
}

func (s *Store) SetMinRating(ctx context.Context, v float64) Criteria {
	return s.Update(ctx, func(c *Criteria) { c.MinRating = v })
}

func (s *Store) SetStartDate(ctx context.Context, v string) Criteria {
	return s.Update(ctx, func(c *Criteria) { c.StartDate = v })
}

func (s *Store) SetEndDate(ctx context.Context, v string) Criteria {
	return s.Update(ctx, func(c *Criteria) { c.EndDate = v })
}

func (s *Store) Clear(ctx context.Context) Criteria {
	s.current = s.defaults.Clone()
	s.persist(ctx)

	return s.Current()
}

func (s *Store) persist(ctx context.Context) {
	s.location.Replace(ToQuery(s.current, s.defaults))

	blob, err := EncodeSnapshot(s.current)
	if err != nil {
		s.l.LogErrorf("Failed to encode filters: %v", err)

		return
	}

	if err := s.storage.SetItem(ctx, StorageKey, blob); err != nil {
		s.l.LogWarnf("Failed to save filters to storage: %v", err)
	}
}
