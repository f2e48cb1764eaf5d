package server

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/hashkv/hashkv/storage"
)

// Server exposes a storage.Store over HTTP.
type Server struct {
	store *storage.Store
}

func New(store *storage.Store) *Server {
	return &Server{store: store}
}

// Router returns the API routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/insert/", s.InsertHandler)
	r.HandleFunc("/retrieve/", s.RetrieveHandler)
	r.HandleFunc("/delete/", s.DeleteHandler)
	r.HandleFunc("/stats/", s.StatsHandler)
	r.HandleFunc("/ping/", s.PingHandler)
	return r
}

// ListenAndServe serves the API on host:port with request logging to
// stderr, blocking until the listener fails.
func (s *Server) ListenAndServe(host string, port int) error {
	// Setup host:port to listen on
	listenOn := fmt.Sprintf("%s:%d", host, port)

	// Set up logging
	loggedRoute := handlers.LoggingHandler(os.Stderr, s.Router())

	log.Printf("Starting server on %s\n", listenOn)
	return http.ListenAndServe(listenOn, loggedRoute)
}
