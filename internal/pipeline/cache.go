package pipeline

import (
	"github.com/avstrong/hotelsearch/internal/catalog"
	"github.com/avstrong/hotelsearch/internal/filter"
	"github.com/avstrong/hotelsearch/internal/ordering"
)

// Cache memoises the filter and sort stages of the last run. A new criteria
// value invalidates both stages, a new sort spec only the sort stage. Results
// are always identical to Run. Not safe for concurrent use.
type Cache struct {
	hotels []catalog.Hotel

	hasFiltered bool
	criteria    filter.Criteria
	dateErr     filter.DateError
	filtered    []catalog.Hotel

	hasSorted bool
	sortSpec  ordering.Spec
	sorted    []catalog.Hotel

	filterRuns int
	sortRuns   int
}

func NewCache(hotels []catalog.Hotel) *Cache {
	return &Cache{hotels: hotels}
}

func (c *Cache) Run(in Input) Result {
	if !c.hasFiltered || !c.criteria.Equal(in.Criteria) {
		c.criteria = in.Criteria.Clone()
		c.dateErr = filter.ValidateDateRange(in.Criteria.StartDate, in.Criteria.EndDate)
		c.filtered = Filter(c.hotels, c.criteria, c.dateErr)
		c.hasFiltered = true
		c.hasSorted = false
		c.filterRuns++
	}

	if !c.hasSorted || c.sortSpec != in.Sort {
		c.sortSpec = in.Sort
		c.sorted = Sort(c.filtered, in.Sort)
		c.hasSorted = true
		c.sortRuns++
	}

	return paginate(c.sorted, in.Page, c.dateErr)
}
