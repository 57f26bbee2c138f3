package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/payment_ingestor/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, paymentsRepo PaymentsRepository, filesRepo FilesRepository) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(paymentsRepo, filesRepo),
		},
	}
}

func NewRouter(paymentsRepo PaymentsRepository, filesRepo FilesRepository) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	payments := NewPaymentsHandler(paymentsRepo)
	files := NewFilesHandler(filesRepo)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/payments", payments.GetPaymentByPaymentID)
		r.Get("/payments/{id}", payments.GetPaymentByID)
		r.Get("/files", files.GetFiles)
		r.Get("/files/{name}/payments", payments.GetPaymentsByFile)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
