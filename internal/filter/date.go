package filter

import "github.com/avstrong/hotelsearch/internal/catalog"

type DateError string

const (
	DateErrorNone          DateError = ""
	DateErrorInvalidFormat DateError = "invalid-format"
	DateErrorInvalidRange  DateError = "invalid-range"
)

// ValidateDateRange never fails the caller; the result is surfaced to the user
// and disables the availability predicate while it is not DateErrorNone.
func ValidateDateRange(startDate, endDate string) DateError {
	if startDate == "" && endDate == "" {
		return DateErrorNone
	}

	var start, end catalog.Date

	if startDate != "" {
		d, err := catalog.ParseDate(startDate)
		if err != nil {
			return DateErrorInvalidFormat
		}

		start = d
	}

	if endDate != "" {
		d, err := catalog.ParseDate(endDate)
		if err != nil {
			return DateErrorInvalidFormat
		}

		end = d
	}

	if startDate != "" && endDate != "" && start.After(end) {
		return DateErrorInvalidRange
	}

	return DateErrorNone
}
