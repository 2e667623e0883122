// Package handler implements the HTTP handlers for the cruise packing API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, list.go, weather.go, catalog.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/hmdeck/cruise-packing/internal/domain"
	"github.com/hmdeck/cruise-packing/internal/service"
)

// ListServicer defines the business operations the list handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type ListServicer interface {
	Create(ctx context.Context, params service.CreateListParams) (domain.PackingList, error)
	GetByID(ctx context.Context, id string) (domain.PackingList, error)
	List(ctx context.Context) ([]domain.PackingList, error)
	Update(ctx context.Context, id string, params service.UpdateListParams) (domain.PackingList, error)
	Delete(ctx context.Context, id string) error
}

// Server implements all API endpoints.
type Server struct {
	lists ListServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(lists ListServicer) *Server {
	return &Server{lists: lists}
}

// Routes registers every endpoint on a fresh chi router.
// Mount it under "/" in main; middleware is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/api/weather", s.GetWeather)
	r.Get("/api/default-items", s.GetDefaultItems)

	r.Route("/api/packing-lists", func(r chi.Router) {
		r.Get("/", s.ListPackingLists)
		r.Post("/", s.CreatePackingList)
		r.Get("/{id}", s.GetPackingList)
		r.Put("/{id}", s.UpdatePackingList)
		r.Delete("/{id}", s.DeletePackingList)
	})

	return r
}
