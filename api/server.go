package api

import (
	"net/http"

	"catdistribution/backend/handlers"
	"catdistribution/backend/middleware"
	"catdistribution/backend/services"
	"catdistribution/backend/stream"

	"github.com/gorilla/mux"
)

// Server represents the API server
type Server struct {
	router     *mux.Router
	generation *handlers.GenerationHandler
	hub        *stream.Hub
	listHub    *stream.Hub
}

// Options configures NewServer
type Options struct {
	Generation     *services.Generation
	Hub            *stream.Hub
	// ListHub streams the full collection after every generated cat
	ListHub        *stream.Hub
	AllowedOrigins []string
	Production     bool
}

// NewServer creates a new API server
func NewServer(opts Options) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		generation: handlers.NewGenerationHandler(opts.Generation),
		hub:        opts.Hub,
		listHub:    opts.ListHub,
	}

	s.router.Use(middleware.RequestLogger)
	s.router.Use(middleware.CORS(opts.AllowedOrigins, opts.Production))

	// Register routes with both direct paths and /api prefix to maintain compatibility
	s.registerRoutes(s.router)
	s.registerRoutes(s.router.PathPrefix("/api").Subrouter())
	return s
}

// Handler returns the HTTP handler for the API server
func (s *Server) Handler() http.Handler {
	return s.router
}

// registerRoutes sets up all API routes
func (s *Server) registerRoutes(r *mux.Router) {
	// Public routes (no auth required)
	r.HandleFunc("/health", handlers.Health).Methods("GET", "OPTIONS")
	if s.hub != nil {
		r.Handle("/ws/cats", s.hub).Methods("GET")
	}
	if s.listHub != nil {
		r.Handle("/ws/cats-list", s.listHub).Methods("GET")
	}

	// Create a subrouter for authenticated routes
	protectedRouter := r.PathPrefix("").Subrouter()
	protectedRouter.Use(middleware.AuthMiddleware)

	protectedRouter.HandleFunc("/operationLogs", handlers.GetOperationLogs).Methods("GET")
	protectedRouter.HandleFunc("/operationLogs/{userId}", handlers.AddOperationLog).Methods("POST")

	// fixed segments go before /cats/{id}
	protectedRouter.HandleFunc("/cats", handlers.GetCats).Methods("GET")
	protectedRouter.HandleFunc("/cats", handlers.CreateCat).Methods("POST")
	protectedRouter.HandleFunc("/cats/page", handlers.GetCatsPage).Methods("GET")
	protectedRouter.HandleFunc("/cats/statistics", handlers.GetCatStatistics).Methods("GET")
	protectedRouter.HandleFunc("/cats/name/{name}", handlers.GetCatByName).Methods("GET")
	protectedRouter.HandleFunc("/cats/generate/start", s.generation.Start).Methods("POST")
	protectedRouter.HandleFunc("/cats/generate/stop", s.generation.Stop).Methods("POST")
	protectedRouter.HandleFunc("/cats/generate/status", s.generation.Status).Methods("GET")
	protectedRouter.HandleFunc("/cats/{id}", handlers.GetCat).Methods("GET")
	protectedRouter.HandleFunc("/cats/{id}", handlers.UpdateCat).Methods("PUT")
	protectedRouter.HandleFunc("/cats/{id}", handlers.DeleteCat).Methods("DELETE")

	protectedRouter.HandleFunc("/users", handlers.GetUsers).Methods("GET")
	protectedRouter.HandleFunc("/users/sync", handlers.SyncUser).Methods("POST")
}
