// Package pipeline turns a catalog plus filter, sort and page state into the
// visible result set: filter, then stable sort, then paginate.
package pipeline

import (
	"slices"

	"github.com/avstrong/hotelsearch/internal/catalog"
	"github.com/avstrong/hotelsearch/internal/filter"
	"github.com/avstrong/hotelsearch/internal/ordering"
)

const PageSize = 10

type Input struct {
	Criteria filter.Criteria
	Sort     ordering.Spec
	Page     int
}

type Result struct {
	PageItems     []catalog.Hotel
	TotalCount    int
	TotalPages    int
	EffectivePage int
	DateError     filter.DateError
	// Sorted is the full filtered and sorted list, the export input.
	Sorted []catalog.Hotel
}

// Run recomputes every stage from scratch.
func Run(hotels []catalog.Hotel, in Input) Result {
	dateErr := filter.ValidateDateRange(in.Criteria.StartDate, in.Criteria.EndDate)
	sorted := Sort(Filter(hotels, in.Criteria, dateErr), in.Sort)

	return paginate(sorted, in.Page, dateErr)
}

func Filter(hotels []catalog.Hotel, c filter.Criteria, dateErr filter.DateError) []catalog.Hotel {
	out := make([]catalog.Hotel, 0, len(hotels))

	for _, h := range hotels {
		if filter.Matches(h, c, dateErr) {
			out = append(out, h)
		}
	}

	return out
}

// Sort returns a sorted copy. Records equal under the comparator keep their
// input order.
func Sort(hotels []catalog.Hotel, spec ordering.Spec) []catalog.Hotel {
	out := slices.Clone(hotels)
	slices.SortStableFunc(out, ordering.Build(spec))

	return out
}

func TotalPages(n int) int {
	return max(1, (n+PageSize-1)/PageSize)
}

// EffectivePage resets to the first page when requested falls outside
// [1, totalPages]. A shrinking result set snaps back to page one rather than
// clamping to the last page.
func EffectivePage(requested, totalPages int) int {
	if requested < 1 || requested > totalPages {
		return 1
	}

	return requested
}

func paginate(sorted []catalog.Hotel, requested int, dateErr filter.DateError) Result {
	totalPages := TotalPages(len(sorted))
	page := EffectivePage(requested, totalPages)

	start := min((page-1)*PageSize, len(sorted))
	end := min(start+PageSize, len(sorted))

	return Result{
		PageItems:     slices.Clone(sorted[start:end]),
		TotalCount:    len(sorted),
		TotalPages:    totalPages,
		EffectivePage: page,
		DateError:     dateErr,
		Sorted:        sorted,
	}
}
