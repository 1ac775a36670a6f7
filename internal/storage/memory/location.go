package memory

import (
	"net/url"
	"sync"
)

// Location holds the query string of one dashboard tab. Replace swaps the
// current query in place, so no history is ever accumulated.
type Location struct {
	mu    sync.Mutex
	query url.Values
}

func NewLocation(query url.Values) *Location {
	return &Location{query: cloneValues(query)}
}

func (l *Location) Query() url.Values {
	l.mu.Lock()
	defer l.mu.Unlock()

	return cloneValues(l.query)
}

func (l *Location) Replace(q url.Values) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.query = cloneValues(q)
}

// String renders the query the way a browser would show it after "?".
func (l *Location) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.query.Encode()
}

func cloneValues(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}

	return out
}
