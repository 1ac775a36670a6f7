package filter

import (
	"context"
	"errors"
	"net/url"

	"github.com/avstrong/hotelsearch/internal/catalog"
)

var errStorageDown = errors.New("storage down")

type fakeLocation struct {
	query    url.Values
	replaces int
}

func (l *fakeLocation) Query() url.Values {
	return l.query
}

func (l *fakeLocation) Replace(q url.Values) {
	l.query = q
	l.replaces++
}

type fakeStorage struct {
	items    map[string][]byte
	getErr   error
	setErr   error
	setCalls int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{items: make(map[string][]byte)}
}

func (s *fakeStorage) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}

	v, ok := s.items[key]

	return v, ok, nil
}

func (s *fakeStorage) SetItem(_ context.Context, key string, value []byte) error {
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}

	s.items[key] = value

	return nil
}

func defaultCriteria() Criteria {
	return Defaults(catalog.Default().PriceRange())
}

func idsMatching(c Criteria) []int {
	dateErr := ValidateDateRange(c.StartDate, c.EndDate)

	var ids []int

	for _, h := range catalog.Default().Hotels() {
		if Matches(h, c, dateErr) {
			ids = append(ids, h.ID)
		}
	}

	return ids
}
