package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const (
	traceIDHeader  = "X-Trace-ID"
	clientIDHeader = "X-Client-ID"
	corsMaxAge     = 300
)

func (s *Server) loggerMiddleware() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now().UTC()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			traceID := requestTraceID(r)
			ww.Header().Set(traceIDHeader, traceID)

			next.ServeHTTP(ww, r)

			s.l.LogInfo(
				"type: access, method: %s, url: %s, proto: %s, status: %d, bytes: %d, userAgent: %s, traceID: %s, latency: %s",
				r.Method,
				r.URL.Path,
				r.Proto,
				ww.Status(),
				ww.BytesWritten(),
				r.Header.Get("User-Agent"),
				traceID,
				time.Since(start),
			)
		})
	}
}

// requestTraceID prefers an active span, then a well-formed X-Trace-ID header,
// then a fresh uuid.
func requestTraceID(r *http.Request) string {
	if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
		return uuid.UUID(sc.TraceID()).String()
	}

	if id, err := uuid.Parse(r.Header.Get(traceIDHeader)); err == nil {
		return id.String()
	}

	return uuid.NewString()
}

func (s *Server) recoverMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if re := recover(); re != nil {
					err, ok := re.(error)
					if !ok {
						err = fmt.Errorf("%v: %w", re, ErrPanic)
					}
					s.l.LogErrorf("type: panic, error: %v", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) corsMiddleware() func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: s.conf.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", clientIDHeader, traceIDHeader},
		ExposedHeaders: []string{"Content-Disposition", traceIDHeader},
		MaxAge:         corsMaxAge,
	})
}
