package server

import (
	"database/sql"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"blog/internal/metrics"
	"blog/internal/session"
)

type Server struct {
	DB         *sql.DB
	Sessions   *session.Store
	CookieName string

	log     *logrus.Logger
	metrics *metrics.Collector
	tmpl    map[string]*template.Template
	secure  bool
	router  http.Handler
}

type Config struct {
	TemplateDir   string
	SecureCookies bool
}

func New(db *sql.DB, sessions *session.Store, log *logrus.Logger, collector *metrics.Collector, cfg Config) (*Server, error) {
	templates := map[string]*template.Template{}
	layout := filepath.Join(cfg.TemplateDir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(cfg.TemplateDir, "*.html"))
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		if filepath.Base(page) == "layout.html" {
			continue
		}
		t, err := template.ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		templates[name] = t
	}

	s := &Server{
		DB:         db,
		Sessions:   sessions,
		CookieName: "session_id",
		log:        log,
		metrics:    collector,
		tmpl:       templates,
		secure:     cfg.SecureCookies,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/signup", s.handleSignupForm)
	r.Post("/signup", s.handleSignup)
	r.Get("/signin", s.handleSigninForm)
	r.Post("/signin", s.handleSignin)
	r.Get("/logout", s.handleLogout)

	r.Get("/create", s.requireAuth(s.handleCreateForm))
	r.Post("/create", s.requireAuth(s.handleCreate))
	r.Route("/posts/{id}", func(r chi.Router) {
		r.Get("/edit", s.requireAuth(s.handleEditForm))
		r.Post("/edit", s.requireAuth(s.handleEdit))
		r.Post("/delete", s.requireAuth(s.handleDelete))
	})

	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	t, ok := s.tmpl[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

// serverError hides backend faults behind a generic response. The cause is
// logged, never sent to the client.
func (s *Server) serverError(w http.ResponseWriter, context string, err error) {
	s.log.WithError(err).Error(context)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
