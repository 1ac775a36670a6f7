package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/avstrong/hotelsearch/internal/catalog"
	"github.com/avstrong/hotelsearch/internal/export"
	"github.com/avstrong/hotelsearch/internal/filter"
	"github.com/avstrong/hotelsearch/internal/ordering"
	"github.com/avstrong/hotelsearch/internal/pipeline"
	"github.com/avstrong/hotelsearch/internal/search"
	"github.com/avstrong/hotelsearch/internal/storage/memory"
)

// session is one open dashboard tab. Its mutex is taken before any debouncer
// call and never the other way round.
type session struct {
	mu sync.Mutex

	id         string
	clientID   string
	priceRange catalog.PriceRange
	location   *memory.Location
	store      *filter.Store
	search     *search.Debouncer
	cache      *pipeline.Cache

	sort     ordering.Spec
	page     int
	viewMode ViewMode
}

// criteriaLocked returns the stored criteria with the search term replaced by
// the last applied debounced term.
func (s *session) criteriaLocked() filter.Criteria {
	c := s.store.Current()
	c.Search = s.search.Applied()

	return c
}

func (s *session) resultLocked() pipeline.Result {
	res := s.cache.Run(pipeline.Input{
		Criteria: s.criteriaLocked(),
		Sort:     s.sort,
		Page:     s.page,
	})

	s.page = res.EffectivePage

	return res
}

func (s *session) viewLocked() View {
	res := s.resultLocked()

	return View{
		PageItems:         res.PageItems,
		TotalCount:        res.TotalCount,
		TotalPages:        res.TotalPages,
		EffectivePage:     res.EffectivePage,
		ActiveFilterCount: s.store.ActiveFilterCount(),
		DateError:         res.DateError,
		Loading:           s.search.Pending(),
		ViewMode:          s.viewMode,
		Sort:              s.sort,
		Filters:           s.store.Current(),
		Query:             s.location.String(),
	}
}

func (s *session) view() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewLocked()
}

// mutate runs fn under the session lock and renders the resulting view.
func (s *session) mutate(fn func() error) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(); err != nil {
		return View{}, err
	}

	return s.viewLocked(), nil
}

//nolint:cyclop // one branch per field
func (s *session) setFieldLocked(ctx context.Context, field filter.Field, raw string) {
	switch field {
	case filter.FieldSearch:
		s.store.SetSearch(ctx, raw)
		s.search.Submit(ctx, raw)
	case filter.FieldMinPrice:
		s.store.SetMinPrice(ctx, filter.CoerceMinPrice(raw))
	case filter.FieldMaxPrice:
		s.store.SetMaxPrice(ctx, filter.CoerceMaxPrice(raw, s.priceRange.Max))
	case filter.FieldAmenities:
		s.store.SetAmenities(ctx, filter.CoerceAmenities(raw))
	case filter.FieldAmenityLogic:
		s.store.SetAmenityLogic(ctx, filter.CoerceAmenityLogic(raw))
	case filter.FieldMinRating:
		s.store.SetMinRating(ctx, filter.CoerceRating(raw))
	case filter.FieldStartDate:
		s.store.SetStartDate(ctx, raw)
	case filter.FieldEndDate:
		s.store.SetEndDate(ctx, raw)
	}

	s.page = 1
}

func (s *session) toggleAmenityLocked(ctx context.Context, a catalog.Amenity) {
	s.store.SetAmenities(ctx, filter.ToggleAmenity(s.store.Current().Amenities, a))
	s.page = 1
}

func (s *session) clearLocked(ctx context.Context) {
	s.store.Clear(ctx)
	s.search.Reset("")
	s.page = 1
}

// setSortLocked keeps the page unless the primary field changes.
func (s *session) setSortLocked(spec ordering.Spec) {
	if spec.Primary != s.sort.Primary {
		s.page = 1
	}

	s.sort = spec
}

func (s *session) toggleSortLocked(f ordering.Field) {
	s.sort = s.sort.Toggle(f)
	s.page = 1
}

// export renders the whole filtered and sorted list, not only the current page.
func (s *session) export(now time.Time) Export {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Export{
		Filename: export.Filename(now),
		Content:  export.CSV(s.resultLocked().Sorted),
	}
}

func (s *session) close() {
	s.search.Close()
}
