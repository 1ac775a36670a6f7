// Package export serialises hotel lists to spreadsheet-safe CSV.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/avstrong/hotelsearch/internal/catalog"
)

const (
	ContentType = "text/csv; charset=utf-8"

	header           = "ID,Name,City,Price,Rating,Amenities,Check-in,Check-out"
	amenitySeparator = ", "
	lineSeparator    = "\n"
	formulaGuard     = "'"
)

// CSV is byte-for-byte reproducible for the same input list.
func CSV(hotels []catalog.Hotel) []byte {
	var b strings.Builder

	b.WriteString(header)

	for _, h := range hotels {
		b.WriteString(lineSeparator)
		writeRow(&b, h)
	}

	return []byte(b.String())
}

func WriteCSV(w io.Writer, hotels []catalog.Hotel) error {
	if _, err := w.Write(CSV(hotels)); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}

// Filename embeds the calendar date of t.
func Filename(t time.Time) string {
	return "hotels-" + t.Format("2006-01-02") + ".csv"
}

func writeRow(b *strings.Builder, h catalog.Hotel) {
	amenities := make([]string, len(h.Amenities))
	for i, a := range h.Amenities {
		amenities[i] = string(a)
	}

	fields := []string{
		strconv.Itoa(h.ID),
		quoted(h.Name),
		quoted(h.City),
		number(h.Price),
		number(h.Rating),
		quoted(strings.Join(amenities, amenitySeparator)),
		neutralize(h.Availability.CheckIn.String()),
		neutralize(h.Availability.CheckOut.String()),
	}

	b.WriteString(strings.Join(fields, ","))
}

func number(v float64) string {
	return neutralize(strconv.FormatFloat(v, 'f', -1, 64))
}

func quoted(s string) string {
	return `"` + strings.ReplaceAll(neutralize(s), `"`, `""`) + `"`
}

// neutralize stops spreadsheets from evaluating the cell as a formula.
func neutralize(s string) string {
	if s == "" {
		return s
	}

	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return formulaGuard + s
	}

	return s
}
