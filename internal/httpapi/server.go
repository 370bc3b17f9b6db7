package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"artisthub/internal/app/artists"
	"artisthub/internal/store"
)

// ArtistService describes the artist workflows exposed over HTTP.
type ArtistService interface {
	Create(ctx context.Context, req artists.NewArtistRequest) (store.Artist, error)
	ListAll(ctx context.Context) ([]store.Artist, error)
	GetByID(ctx context.Context, id int64) (artists.GetArtistResponse, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	artists ArtistService
}

// New configures a Server with the given artist service.
func New(artists ArtistService) *Server {
	return &Server{artists: artists}
}

// Routes exposes the HTTP handlers for the artist catalogue.
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	router.HandleFunc("/artist", s.handleCreateArtist).Methods(http.MethodPost)
	router.HandleFunc("/artist", s.handleListArtists).Methods(http.MethodGet)
	// Must stay ahead of /artist/{id}.
	router.HandleFunc("/artist/test", s.handleTest).Methods(http.MethodGet)
	router.HandleFunc("/artist/{id}", s.handleGetArtist).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "resource not found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	return router
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
