package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avstrong/hotelsearch/internal/dashboard"
	"github.com/avstrong/hotelsearch/internal/export"
)

const maxBodyBytes = 1 << 20

type setFilterRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

type setPageRequest struct {
	Page int `json:"page"`
}

type setViewModeRequest struct {
	Mode string `json:"mode"`
}

func (s *Server) catalogHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dManager.Catalog())
}

// createSessionHandler treats its own query string as the page URL of the tab.
func (s *Server) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if clientID := strings.TrimSpace(r.Header.Get(clientIDHeader)); clientID != "" {
		ctx = dashboard.NewContextWithClientID(ctx, clientID)
	}

	out, err := s.dManager.CreateSession(ctx, r.URL.Query())
	if err != nil {
		s.writeError(w, err, "create a session")

		return
	}

	s.writeJSON(w, http.StatusCreated, out)
}

func (s *Server) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.dManager.View(r.Context(), chi.URLParam(r, "sessionID"))
	s.writeView(w, view, err, "get a session")
}

func (s *Server) deleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.dManager.DeleteSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		s.writeError(w, err, "delete a session")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setFilterHandler(w http.ResponseWriter, r *http.Request) {
	var req setFilterRequest
	if !s.decode(w, r, &req) {
		return
	}

	raw, ok := rawValue(req.Value)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, map[string][]string{
			"value": {"provide a string, a number or a list of strings"},
		})

		return
	}

	view, err := s.dManager.SetField(r.Context(), chi.URLParam(r, "sessionID"), req.Field, raw)
	s.writeView(w, view, err, "set a filter")
}

func (s *Server) toggleAmenityHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.dManager.ToggleAmenity(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "amenity"))
	s.writeView(w, view, err, "toggle an amenity")
}

func (s *Server) clearFiltersHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.dManager.ClearFilters(r.Context(), chi.URLParam(r, "sessionID"))
	s.writeView(w, view, err, "clear filters")
}

func (s *Server) setSortHandler(w http.ResponseWriter, r *http.Request) {
	var req dashboard.SortInput
	if !s.decode(w, r, &req) {
		return
	}

	view, err := s.dManager.SetSort(r.Context(), chi.URLParam(r, "sessionID"), req)
	s.writeView(w, view, err, "set sort")
}

func (s *Server) toggleSortHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.dManager.ToggleSort(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "field"))
	s.writeView(w, view, err, "toggle sort")
}

func (s *Server) setPageHandler(w http.ResponseWriter, r *http.Request) {
	var req setPageRequest
	if !s.decode(w, r, &req) {
		return
	}

	view, err := s.dManager.SetPage(r.Context(), chi.URLParam(r, "sessionID"), req.Page)
	s.writeView(w, view, err, "set page")
}

func (s *Server) setViewModeHandler(w http.ResponseWriter, r *http.Request) {
	var req setViewModeRequest
	if !s.decode(w, r, &req) {
		return
	}

	view, err := s.dManager.SetViewMode(r.Context(), chi.URLParam(r, "sessionID"), req.Mode)
	s.writeView(w, view, err, "set view mode")
}

func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	out, err := s.dManager.Export(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeError(w, err, "export")

		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(out.Content); err != nil {
		s.l.LogErrorf("Could not write export: %v", err.Error())
	}
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r chi.Router) {
	r.Use(middleware.RealIP, s.loggerMiddleware(), s.recoverMiddleware(), s.corsMiddleware())

	r.Get(s.conf.LivenessEndpoint, s.livenessHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", s.catalogHandler)

		r.Post("/sessions", s.createSessionHandler)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", s.getSessionHandler)
			r.Delete("/", s.deleteSessionHandler)
			r.Patch("/filters", s.setFilterHandler)
			r.Delete("/filters", s.clearFiltersHandler)
			r.Post("/amenities/{amenity}", s.toggleAmenityHandler)
			r.Put("/sort", s.setSortHandler)
			r.Post("/sort/{field}", s.toggleSortHandler)
			r.Put("/page", s.setPageHandler)
			r.Put("/view-mode", s.setViewModeHandler)
			r.Get("/export", s.exportHandler)
		})
	})
}

// rawValue turns a JSON filter value into the text a form input would carry.
// Lists are comma joined, the amenities wire format.
func rawValue(msg json.RawMessage) (string, bool) {
	if len(msg) == 0 || string(msg) == "null" {
		return "", true
	}

	var str string
	if err := json.Unmarshal(msg, &str); err == nil {
		return str, true
	}

	var num json.Number
	if err := json.Unmarshal(msg, &num); err == nil {
		return num.String(), true
	}

	var list []string
	if err := json.Unmarshal(msg, &list); err == nil {
		return strings.Join(list, ","), true
	}

	return "", false
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return false
	}

	return true
}

func (s *Server) writeView(w http.ResponseWriter, view dashboard.View, err error, action string) {
	if err != nil {
		s.writeError(w, err, action)

		return
	}

	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) writeError(w http.ResponseWriter, err error, action string) {
	if inputErr := dashboard.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	if errors.Is(err, dashboard.ErrSessionNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	if errors.Is(err, dashboard.ErrClosed) {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

		return
	}

	s.l.LogErrorf("Could not %s: %v", action, err.Error())
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}
