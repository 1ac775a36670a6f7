package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avstrong/hotelsearch/internal/dashboard"
	"github.com/avstrong/hotelsearch/internal/logger"
)

type Server struct {
	srv      *http.Server
	router   chi.Router
	l        *logger.Logger
	conf     Conf
	dManager *dashboard.Manager
}

type Conf struct {
	L                  *logger.Logger
	ServerLogger       *log.Logger
	Host               string
	Port               string
	ReadHeaderTimeout  time.Duration
	LivenessEndpoint   string
	CORSAllowedOrigins []string
}

func New(ctx context.Context, conf Conf, dashboardManager *dashboard.Manager) (*Server, error) {
	router := chi.NewRouter()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.ServerLogger,
		Handler:           router,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:      srv,
		router:   router,
		l:        conf.L,
		conf:     conf,
		dManager: dashboardManager,
	}

	server.addRoutes(router)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}
