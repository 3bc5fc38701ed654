package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"blog/internal/models"
)

type authedHandler func(http.ResponseWriter, *http.Request, models.Identity)

// requireAuth resolves the session cookie and passes the bound identity to
// next. Anonymous requests are redirected to the sign-in page, never erred.
func (s *Server) requireAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.currentIdentity(r)
		if !ok {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}
		next(w, r, id)
	}
}

func (s *Server) currentIdentity(r *http.Request) (models.Identity, bool) {
	cookie, err := r.Cookie(s.CookieName)
	if err != nil || cookie.Value == "" {
		return models.Identity{}, false
	}
	return s.Sessions.Resolve(cookie.Value)
}

// identityValue adapts currentIdentity for template data, where an anonymous
// visitor is represented by nil.
func (s *Server) identityValue(r *http.Request) any {
	if id, ok := s.currentIdentity(r); ok {
		return id
	}
	return nil
}

// ownPost loads the post addressed by the {id} route parameter and enforces
// that id is its creator. A missing post is reported before any ownership
// comparison, so absence never leaks who owns what.
func (s *Server) ownPost(w http.ResponseWriter, r *http.Request, id models.Identity) (*models.Post, bool) {
	blogID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	post, err := models.GetPost(s.DB, blogID)
	if err != nil {
		s.serverError(w, "loading post", err)
		return nil, false
	}
	if post == nil {
		http.NotFound(w, r)
		return nil, false
	}
	if post.CreatorUserID != id.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return nil, false
	}
	return post, true
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.metrics.RecordHTTPStatus(rec.statusCode)
		entry := s.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.statusCode,
			"duration_ms": float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond),
		})
		switch {
		case rec.statusCode >= 500:
			entry.Error("request")
		case rec.statusCode >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	})
}
