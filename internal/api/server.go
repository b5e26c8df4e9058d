// Package api exposes scraping, searching and Q&A over HTTP.
package api

import (
	"context"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sells-group/pagechat/internal/model"
	"github.com/sells-group/pagechat/internal/scrape"
	"github.com/sells-group/pagechat/internal/session"
)

// Searcher runs a search and scrapes the hits.
type Searcher interface {
	Search(ctx context.Context, topic string, n int) model.SearchResult
}

// Asker answers a question against a session slot.
type Asker interface {
	Ask(ctx context.Context, question, modelID string, slot *model.Slot) string
}

// Deps wires the server to its collaborators.
type Deps struct {
	Scraper  scrape.PageScraper
	Searcher Searcher
	Asker    Asker
	Store    session.Store
	Models   []model.ModelDescriptor

	NumResults     int
	AllowedOrigins []string
	CookieName     string
}

// Server serves the JSON API.
type Server struct {
	deps Deps
}

// NewServer creates a Server.
func NewServer(deps Deps) *Server {
	if len(deps.AllowedOrigins) == 0 {
		deps.AllowedOrigins = []string{"*"}
	}
	return &Server{deps: deps}
}

// Router builds the HTTP handler with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.deps.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", session.HeaderName},
		ExposedHeaders:   []string{session.HeaderName},
		AllowCredentials: !slices.Contains(s.deps.AllowedOrigins, "*"),
		MaxAge:           300,
	}))

	r.Get("/health", s.health)
	r.Get("/models", s.listModels)

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(s.deps.CookieName))
		r.Post("/scrape", s.scrape)
		r.Post("/search-scrape", s.searchScrape)
		r.Post("/chat", s.chat)
		r.Post("/clear", s.clear)
	})

	return r
}
