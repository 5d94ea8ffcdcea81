package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avelis/daybook/internal/common"
	"github.com/avelis/daybook/internal/server/models"
	"github.com/avelis/daybook/internal/server/services"
)

// entryResponse is the wire shape of a journal entry.
type entryResponse struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"entry"`
	Score int       `json:"score"`
	Mood  string    `json:"mood"`
	Date  time.Time `json:"date"`
}

func toEntryResponse(e *models.Entry) entryResponse {
	return entryResponse{
		ID:    e.ID,
		Title: e.Title,
		Body:  e.Body,
		Score: e.Score,
		Mood:  e.Mood,
		Date:  e.Date,
	}
}

// handleSignup registers a new user from the signup form and redirects to
// the login page. A duplicate email is a 409; any other persistence failure
// answers with a generic 500.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid form")
		return
	}

	email := r.PostFormValue("email")
	username := r.PostFormValue("username")
	password := r.PostFormValue("psw")

	user, err := s.users.Register(r.Context(), email, username, password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			writeErr(w, http.StatusConflict, "email already registered")
			return
		}
		s.logger.Error(r.Context(), "error saving user", "error", err.Error())
		writeErr(w, http.StatusInternalServerError, "error saving user")
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)
	http.Redirect(w, r, "/login.html", http.StatusSeeOther)
}

// handleLogin authenticates the login form, sets the session cookie, and
// redirects to the entries page. Unknown email and wrong password produce
// the same 401.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid form")
		return
	}

	email := r.PostFormValue("uname")
	password := r.PostFormValue("psw")

	token, err := s.users.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			recordAuthAttempt("login", false)
			writeErr(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		s.logger.Error(r.Context(), "error logging in", "error", err.Error())
		writeErr(w, http.StatusInternalServerError, "error logging in")
		return
	}

	recordAuthAttempt("login", true)
	http.SetCookie(w, s.sessionCookie(token))
	http.Redirect(w, r, "/entries.html", http.StatusSeeOther)
}

// handleLogout clears the session cookie. Stateless tokens stay valid until
// natural expiry, so this only forgets the client-side copy.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.expiredSessionCookie())
	http.Redirect(w, r, "/login.html", http.StatusSeeOther)
}

// handleListEntries returns the authenticated user's entries, newest first.
func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	list, err := s.entries.List(r.Context(), claims.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "error fetching entries", "error", err.Error(), "user_id", claims.UserID)
		writeErr(w, http.StatusInternalServerError, "error fetching entries")
		return
	}

	resp := make([]entryResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleAddEntry stores a new journal entry for the authenticated user. The
// owner is always the token subject, never a client-supplied id.
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var input services.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid entry payload")
		return
	}

	entry, err := s.entries.Add(r.Context(), claims.UserID, input)
	if err != nil {
		s.logger.Error(r.Context(), "error saving entry", "error", err.Error(), "user_id", claims.UserID)
		writeErr(w, http.StatusInternalServerError, "error saving entry")
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// sessionCookie builds the HTTP-only session cookie carrying token.
func (s *Server) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.codec.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
