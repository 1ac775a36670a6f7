package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/avstrong/hotelsearch/internal/catalog"
)

func TestCSV_ExactBytes(t *testing.T) {
	c := catalog.Default()
	h1, _ := c.Get(1)
	h6, _ := c.Get(6)

	got := string(CSV([]catalog.Hotel{h1, h6}))
	want := "ID,Name,City,Price,Rating,Amenities,Check-in,Check-out\n" +
		`1,"Agoda Palace","Bangkok",120,4.5,"WiFi, Pool, Gym",2025-01-15,2025-01-20` + "\n" +
		`6,"City Center Hotel","Bangkok",90,4,"WiFi, Restaurant, Parking",2025-01-01,2025-02-28`

	if got != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", got, want)
	}
}

func TestCSV_EmptyListIsHeaderOnly(t *testing.T) {
	if got := string(CSV(nil)); got != header {
		t.Fatalf("got %q", got)
	}
}

func TestCSV_NeutralizesFormulasAndEscapesQuotes(t *testing.T) {
	h := catalog.Hotel{
		ID: 99, Name: `=HYPERLINK("x")`, City: "@home", Price: 10.25, Rating: 3,
		Amenities: []catalog.Amenity{catalog.WiFi},
		Availability: catalog.Availability{
			CheckIn: catalog.MustDate("2025-01-01"), CheckOut: catalog.MustDate("2025-01-02"),
		},
	}

	got := string(CSV([]catalog.Hotel{h}))
	row := strings.Split(got, "\n")[1]

	if want := `99,"'=HYPERLINK(""x"")","'@home",10.25,3,"WiFi",2025-01-01,2025-01-02`; row != want {
		t.Fatalf("got %s, want %s", row, want)
	}
}

func TestCSV_IsReproducible(t *testing.T) {
	hotels := catalog.Default().Hotels()

	if !bytes.Equal(CSV(hotels), CSV(hotels)) {
		t.Fatal("csv output must be deterministic")
	}

	if n := strings.Count(string(CSV(hotels)), "\n"); n != len(hotels) {
		t.Fatalf("expected %d line breaks, got %d", len(hotels), n)
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil || buf.String() != header {
		t.Fatalf("unexpected write: %q, %v", buf.String(), err)
	}

	if err := WriteCSV(failingWriter{}, nil); !errors.Is(err, errWrite) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 23, 59, 0, 0, time.UTC)
	if got := Filename(ts); got != "hotels-2025-03-07.csv" {
		t.Fatalf("got %s", got)
	}
}
