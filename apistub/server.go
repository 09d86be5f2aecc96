// Package apistub is an in-process stand-in for the Praxis backend.
// It reproduces the backend's routes, wire format and error detail
// strings so the API client, the classifier and the TUI can be
// exercised in tests and offline development without the real service.
package apistub

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/praxis-dev/client/challenge"
	"github.com/praxis-dev/client/profile"
)

type Server struct {
	router *chi.Mux

	mu          sync.Mutex
	profiles    map[string]profile.Profile    // profile id -> profile
	attributes  map[string]profile.Attributes // profile id -> attributes
	challenges  map[int]challenge.Challenge   // challenge id -> challenge
	activeByPID map[string][]int              // profile id -> active challenge ids
	submitted   map[int]bool                  // challenge id -> already scored
	resumes     map[string][]profile.Resume   // profile id -> resumes
	nextID      int
}

func New() *Server {
	router := chi.NewRouter()

	logger := httplog.NewLogger("praxis-stub", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})
	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	s := &Server{
		router:      router,
		profiles:    map[string]profile.Profile{},
		attributes:  map[string]profile.Attributes{},
		challenges:  map[int]challenge.Challenge{},
		activeByPID: map[string][]int{},
		submitted:   map[int]bool{},
		resumes:     map[string][]profile.Resume{},
		nextID:      1,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Get("/healthz", s.health)

	r.Group(func(r chi.Router) {
		r.Use(s.requireBearer)
		r.Post("/challenges/generate", s.generateChallenges)
		r.Get("/challenges/active", s.listActiveChallenges)
		r.Get("/challenges/{challengeID}", s.getChallenge)
		r.Post("/submissions", s.createSubmission)
		r.Get("/profile", s.getProfile)
		r.Get("/attributes/{profileID}", s.getAttributes)
		r.Patch("/attributes/{profileID}", s.patchAttributes)
		r.Post("/resumes/upload/file", s.uploadResume)
		r.Get("/resumes/", s.listResumes)
		r.Delete("/account/delete", s.deleteAccount)
	})
}

// Router exposes the handler for httptest servers.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

// Submitted reports whether a submission for the challenge has been
// scored. Test helper.
func (s *Server) Submitted(challengeID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted[challengeID]
}
