package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avstrong/hotelsearch/internal/catalog"
	"github.com/avstrong/hotelsearch/internal/dashboard"
	"github.com/avstrong/hotelsearch/internal/idgen/random"
	"github.com/avstrong/hotelsearch/internal/logger"
	"github.com/avstrong/hotelsearch/internal/storage/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	l := logger.Discard()
	manager := dashboard.New(dashboard.Config{
		L:           l,
		Catalog:     catalog.Default(),
		Storage:     memory.New(memory.Config{L: l}),
		IDGenerator: random.New(),
		Now:         func() time.Time { return time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC) },
	})
	t.Cleanup(manager.Close)

	srv, err := New(context.Background(), Conf{
		L:                  l,
		Host:               "localhost",
		Port:               "0",
		LivenessEndpoint:   "/liveness",
		CORSAllowedOrigins: []string{"http://dashboard.test"},
	}, manager)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return ts
}

func do(t *testing.T, method, url, body string, header http.Header) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}

	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	return out
}

func createSession(t *testing.T, ts *httptest.Server, query string) dashboard.SessionInfo {
	t.Helper()

	resp := do(t, http.MethodPost, ts.URL+"/api/v1/sessions"+query, "", http.Header{"X-Client-Id": {"client-1"}})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session: status %d", resp.StatusCode)
	}

	return decodeBody[dashboard.SessionInfo](t, resp)
}

func TestLiveness(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/liveness", "", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status %d", resp.StatusCode)
	}

	if resp.Header.Get(traceIDHeader) == "" {
		t.Fatal("every response must carry a trace id")
	}
}

func TestCatalog(t *testing.T) {
	ts := newTestServer(t)

	info := decodeBody[dashboard.CatalogInfo](t, do(t, http.MethodGet, ts.URL+"/api/v1/catalog", "", nil))
	if info.HotelCount != 15 || info.PageSize != 10 || info.PriceRange.Max != 300 {
		t.Fatalf("unexpected catalog %+v", info)
	}
}

func TestSessionFlow(t *testing.T) {
	ts := newTestServer(t)

	info := createSession(t, ts, "?minPrice=100&maxPrice=200")
	if info.ClientID != "client-1" || info.View.TotalCount != 8 || info.Query != "maxPrice=200&minPrice=100" {
		t.Fatalf("unexpected session %+v", info)
	}

	base := ts.URL + "/api/v1/sessions/" + info.SessionID

	view := decodeBody[dashboard.View](t, do(t, http.MethodPatch, base+"/filters",
		`{"field":"amenities","value":["Pool","Spa"]}`, nil))
	if view.TotalCount != 2 || view.ActiveFilterCount != 3 {
		t.Fatalf("expected 2 hotels with Pool and Spa in range, got %d / %d", view.TotalCount, view.ActiveFilterCount)
	}

	view = decodeBody[dashboard.View](t, do(t, http.MethodPatch, base+"/filters",
		`{"field":"amenityLogic","value":"OR"}`, nil))
	if view.TotalCount != 8 {
		t.Fatalf("expected 8 hotels with Pool or Spa in range, got %d", view.TotalCount)
	}

	view = decodeBody[dashboard.View](t, do(t, http.MethodPut, base+"/sort",
		`{"primary":"rating","direction":"desc","secondary":"name"}`, nil))
	if view.PageItems[0].ID != 5 || view.Sort.Secondary != "name" {
		t.Fatalf("unexpected first hotel %d", view.PageItems[0].ID)
	}

	view = decodeBody[dashboard.View](t, do(t, http.MethodPost, base+"/sort/price", "", nil))
	if view.Sort.Primary != "price" || view.Sort.Direction != "asc" {
		t.Fatalf("unexpected sort %+v", view.Sort)
	}

	view = decodeBody[dashboard.View](t, do(t, http.MethodPut, base+"/view-mode", `{"mode":"table"}`, nil))
	if view.ViewMode != dashboard.ViewTable {
		t.Fatalf("unexpected mode %s", view.ViewMode)
	}

	view = decodeBody[dashboard.View](t, do(t, http.MethodPost, base+"/amenities/Spa", "", nil))
	if len(view.Filters.Amenities) != 1 || view.Filters.Amenities[0] != catalog.Pool {
		t.Fatalf("Spa toggle must remove it, got %v", view.Filters.Amenities)
	}

	view = decodeBody[dashboard.View](t, do(t, http.MethodDelete, base+"/filters", "", nil))
	if view.TotalCount != 15 || view.ActiveFilterCount != 0 || view.Query != "" {
		t.Fatalf("clear must restore defaults, got %+v", view)
	}

	view = decodeBody[dashboard.View](t, do(t, http.MethodPut, base+"/page", `{"page":2}`, nil))
	if view.EffectivePage != 2 || len(view.PageItems) != 5 {
		t.Fatalf("unexpected page %d with %d items", view.EffectivePage, len(view.PageItems))
	}

	if resp := do(t, http.MethodDelete, base, "", nil); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status %d", resp.StatusCode)
	}

	if resp := do(t, http.MethodGet, base, "", nil); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted session must be 404, got %d", resp.StatusCode)
	}
}

func TestExport(t *testing.T) {
	ts := newTestServer(t)
	info := createSession(t, ts, "?search=phuket")

	resp := do(t, http.MethodGet, ts.URL+"/api/v1/sessions/"+info.SessionID+"/export", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="hotels-2025-01-02.csv"` {
		t.Fatalf("unexpected disposition %q", got)
	}

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv") {
		t.Fatalf("unexpected content type %q", resp.Header.Get("Content-Type"))
	}

	body, _ := io.ReadAll(resp.Body)
	if lines := bytes.Count(body, []byte("\n")); lines != 5 {
		t.Fatalf("expected header plus 5 Phuket hotels, got %d line breaks", lines)
	}
}

func TestErrors(t *testing.T) {
	ts := newTestServer(t)
	info := createSession(t, ts, "")
	base := ts.URL + "/api/v1/sessions/" + info.SessionID

	cases := []struct {
		name   string
		method string
		url    string
		body   string
		status int
	}{
		{"unknown field", http.MethodPatch, base + "/filters", `{"field":"stars","value":"5"}`, http.StatusBadRequest},
		{"object value", http.MethodPatch, base + "/filters", `{"field":"search","value":{}}`, http.StatusBadRequest},
		{"malformed body", http.MethodPut, base + "/page", `{"page":`, http.StatusBadRequest},
		{"unknown body field", http.MethodPut, base + "/page", `{"page":1,"size":5}`, http.StatusBadRequest},
		{"unknown amenity", http.MethodPost, base + "/amenities/Sauna", "", http.StatusBadRequest},
		{"bad sort", http.MethodPut, base + "/sort", `{"primary":"city"}`, http.StatusBadRequest},
		{"bad mode", http.MethodPut, base + "/view-mode", `{"mode":"list"}`, http.StatusBadRequest},
		{"missing session", http.MethodGet, ts.URL + "/api/v1/sessions/nope", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if resp := do(t, tc.method, tc.url, tc.body, nil); resp.StatusCode != tc.status {
				t.Fatalf("got %d, want %d", resp.StatusCode, tc.status)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, http.MethodOptions, ts.URL+"/api/v1/catalog", "", http.Header{
		"Origin":                        {"http://dashboard.test"},
		"Access-Control-Request-Method": {http.MethodPatch},
	})

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://dashboard.test" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}

func TestRawValue(t *testing.T) {
	for in, want := range map[string]string{`"bang"`: "bang", `120.5`: "120.5", `["Pool","Spa"]`: "Pool,Spa", `null`: ""} {
		if got, ok := rawValue(json.RawMessage(in)); !ok || got != want {
			t.Fatalf("rawValue(%s) = %q, %v", in, got, ok)
		}
	}

	if _, ok := rawValue(json.RawMessage(`true`)); ok {
		t.Fatal("booleans are not filter input")
	}
}
