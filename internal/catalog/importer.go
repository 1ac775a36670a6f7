package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const csvColumns = 8

// LoadFile reads a semicolon separated hotel file with a header row:
// id;name;city;price;rating;amenities;checkIn;checkOut
// Amenities are comma separated inside their column.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

func Load(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = csvColumns

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog csv: %w", err)
	}

	if len(records) < 2 { //nolint:gomnd // header + at least one row
		return nil, ErrEmptyCatalog
	}

	hotels := make([]Hotel, 0, len(records)-1)

	for i, record := range records[1:] {
		hotel, err := parseHotelRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err) //nolint:gomnd // 1-based and header
		}

		hotels = append(hotels, hotel)
	}

	return New(hotels)
}

func parseHotelRecord(record []string) (Hotel, error) {
	var (
		hotel Hotel
		err   error
	)

	if hotel.ID, err = strconv.Atoi(strings.TrimSpace(record[0])); err != nil {
		return hotel, fmt.Errorf("invalid id %q: %w", record[0], ErrInvalidHotel)
	}

	hotel.Name = strings.TrimSpace(record[1])
	hotel.City = strings.TrimSpace(record[2])

	if hotel.Price, err = strconv.ParseFloat(strings.TrimSpace(record[3]), 64); err != nil {
		return hotel, fmt.Errorf("invalid price %q: %w", record[3], ErrInvalidHotel)
	}

	if hotel.Rating, err = strconv.ParseFloat(strings.TrimSpace(record[4]), 64); err != nil {
		return hotel, fmt.Errorf("invalid rating %q: %w", record[4], ErrInvalidHotel)
	}

	for _, a := range strings.Split(record[5], ",") {
		if a = strings.TrimSpace(a); a != "" {
			hotel.Amenities = append(hotel.Amenities, Amenity(a))
		}
	}

	if hotel.Availability.CheckIn, err = ParseDate(strings.TrimSpace(record[6])); err != nil {
		return hotel, fmt.Errorf("invalid check-in: %w", err)
	}

	if hotel.Availability.CheckOut, err = ParseDate(strings.TrimSpace(record[7])); err != nil {
		return hotel, fmt.Errorf("invalid check-out: %w", err)
	}

	return hotel, nil
}
