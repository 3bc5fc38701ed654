package server

import (
	"errors"
	"net/http"
	"regexp"

	"blog/internal/models"
)

var userIDRE = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

func validateSignup(userID, password, name string) string {
	if !userIDRE.MatchString(userID) {
		return "user id must be 3-32 letters, digits or underscores"
	}
	if len(password) < 8 {
		return "password must be at least 8 characters"
	}
	if name == "" || len(name) > 64 {
		return "name must be 1-64 characters"
	}
	return ""
}

func validatePost(title, body string) string {
	if title == "" || len(title) > 200 {
		return "title must be 1-200 characters"
	}
	if body == "" || len(body) > 20000 {
		return "body must be 1-20000 characters"
	}
	return ""
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := models.ListPosts(s.DB)
	if err != nil {
		s.serverError(w, "listing posts", err)
		return
	}
	s.render(w, "index", map[string]any{
		"Identity": s.identityValue(r),
		"Posts":    posts,
	})
}

func (s *Server) handleSignupForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "signup", map[string]any{
		"Identity": s.identityValue(r),
		"Error":    "",
	})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	userID := r.FormValue("user_id")
	password := r.FormValue("password")
	name := r.FormValue("name")

	if msg := validateSignup(userID, password, name); msg != "" {
		s.render(w, "signup", map[string]any{
			"Identity": s.identityValue(r),
			"Error":    msg,
		})
		return
	}

	err := models.CreateUser(s.DB, userID, password, name)
	if errors.Is(err, models.ErrDuplicateUser) {
		s.render(w, "signup", map[string]any{
			"Identity": s.identityValue(r),
			"Error":    "that user id is already taken",
		})
		return
	}
	if err != nil {
		s.serverError(w, "creating user", err)
		return
	}

	s.metrics.RecordSignup()
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}

func (s *Server) handleSigninForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "signin", map[string]any{
		"Identity": s.identityValue(r),
		"Error":    "",
	})
}

func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) {
	userID := r.FormValue("user_id")
	password := r.FormValue("password")

	user, err := models.Authenticate(s.DB, userID, password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		s.render(w, "signin", map[string]any{
			"Identity": s.identityValue(r),
			"Error":    "invalid user id or password",
		})
		return
	}
	if err != nil {
		s.serverError(w, "authenticating", err)
		return
	}

	token := s.Sessions.Start(models.Identity{UserID: user.UserID, Name: user.Name})
	s.metrics.RecordSessionStart()
	http.SetCookie(w, &http.Cookie{
		Name:     s.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.Sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.CookieName); err == nil {
		s.Sessions.End(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: s.CookieName, Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}

func (s *Server) handleCreateForm(w http.ResponseWriter, r *http.Request, id models.Identity) {
	s.render(w, "create", map[string]any{
		"Identity": id,
		"Error":    "",
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request, id models.Identity) {
	title := r.FormValue("title")
	body := r.FormValue("body")

	if msg := validatePost(title, body); msg != "" {
		s.render(w, "create", map[string]any{
			"Identity": id,
			"Error":    msg,
		})
		return
	}

	if _, err := models.CreatePost(s.DB, id, title, body); err != nil {
		s.serverError(w, "creating post", err)
		return
	}
	s.metrics.RecordPostOp("created")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request, id models.Identity) {
	post, ok := s.ownPost(w, r, id)
	if !ok {
		return
	}
	s.render(w, "edit", map[string]any{
		"Identity": id,
		"Post":     post,
		"Error":    "",
	})
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request, id models.Identity) {
	post, ok := s.ownPost(w, r, id)
	if !ok {
		return
	}

	title := r.FormValue("title")
	body := r.FormValue("body")
	if msg := validatePost(title, body); msg != "" {
		s.render(w, "edit", map[string]any{
			"Identity": id,
			"Post":     post,
			"Error":    msg,
		})
		return
	}

	err := models.UpdatePost(s.DB, post.BlogID, title, body)
	if errors.Is(err, models.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, "updating post", err)
		return
	}
	s.metrics.RecordPostOp("updated")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, id models.Identity) {
	post, ok := s.ownPost(w, r, id)
	if !ok {
		return
	}

	err := models.DeletePost(s.DB, post.BlogID)
	if errors.Is(err, models.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, "deleting post", err)
		return
	}
	s.metrics.RecordPostOp("deleted")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
