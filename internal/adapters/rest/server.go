package rest

import (
	"context"
	"net/http"
	"time"

	"catalog-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(httpPort string,
	allowedOrigins []string,
	catalogHandlers *CatalogHandler,
	selectionHandlers *SelectionHandler,
	contactHandlers *ContactHandler,
	baseLogger port.LoggerPort) *Server {

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + httpPort,
			Handler:           NewRouter(allowedOrigins, catalogHandlers, selectionHandlers, contactHandlers, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// NewRouter собирает маршруты сервиса; вынесен отдельно, чтобы тесты шли через тот же роутер
func NewRouter(allowedOrigins []string,
	catalogHandlers *CatalogHandler,
	selectionHandlers *SelectionHandler,
	contactHandlers *ContactHandler,
	baseLogger port.LoggerPort) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", TraceIDHeader, VisitorIDHeader},
		ExposedHeaders: []string{TraceIDHeader, VisitorIDHeader},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", catalogHandlers.SearchCatalog)
		r.Get("/dictionaries", catalogHandlers.GetDictionaries)

		r.Route("/selection", func(r chi.Router) {
			r.Use(VisitorMiddleware)

			r.Get("/favorites", selectionHandlers.GetFavorites)
			r.Post("/favorites/{propertyID}", selectionHandlers.ToggleFavorite)

			r.Get("/comparison", selectionHandlers.GetComparison)
			r.Post("/comparison/{propertyID}", selectionHandlers.AddToComparison)
			r.Delete("/comparison/{propertyID}", selectionHandlers.RemoveFromComparison)
		})

		r.Post("/contact-requests", contactHandlers.SubmitContactRequest)
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
