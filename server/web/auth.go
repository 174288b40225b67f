package web

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/Muralis01/event-fest/server/auth"
	"github.com/Muralis01/event-fest/server/database"
	"github.com/Muralis01/event-fest/server/eazyfest"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// departments offered in the signup form.
var departments = []string{
	"Computer Science",
	"Electronics",
	"Mechanical",
	"Civil",
	"Electrical",
	"Chemical",
	"Biotechnology",
	"Business Administration",
}

func (h *handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var session *database.Session
		cookie, err := r.Cookie("session")
		if err != nil && !errors.Is(err, http.ErrNoCookie) {
			slog.ErrorContext(ctx, "Failed to get session cookie", slog.Any("err", err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		if cookie != nil {
			session, err = h.DB.GetSession(ctx, cookie.Value)
			if err != nil && !errors.Is(err, sql.ErrNoRows) && !errors.Is(err, database.ErrSessionExpired) {
				slog.ErrorContext(ctx, "Failed to get session", slog.Any("err", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
		}

		if session == nil {
			if strings.HasPrefix(r.URL.Path, "/registrations") {
				h.forceLogin(w, r)
				return
			}
			session = &database.Session{}
		}

		r = r.WithContext(auth.SetSession(ctx, *session))
		next.ServeHTTP(w, r)
	})
}

func (h *handler) forceLogin(w http.ResponseWriter, r *http.Request) {
	u := url.URL{
		Path:     "/login",
		RawQuery: url.Values{"rd": {r.URL.Path}}.Encode(),
	}
	http.Redirect(w, r, u.String(), http.StatusFound)
}

// clearSession drops the stored session and its cookie. Called on logout and
// whenever the API rejects the stored token.
func (h *handler) clearSession(w http.ResponseWriter, r *http.Request) {
	session := auth.GetSession(r)
	if session.ID != "" {
		if err := h.DB.DeleteSession(r.Context(), session.ID); err != nil {
			slog.ErrorContext(r.Context(), "Failed to delete session", slog.Any("err", err))
		}
	}
	removeSessionCookie(w)
}

type LoginVars struct {
	Username string
	Redirect string
	Message  string
	Errors   []string
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	if auth.GetSession(r).LoggedIn() {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	query := r.URL.Query()

	var message string
	if query.Get("signed_up") != "" {
		message = "Account created. Sign in to continue."
	}

	h.renderLogin(w, r, LoginVars{
		Redirect: query.Get("rd"),
		Message:  message,
	})
}

func (h *handler) DoLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	redirect := r.FormValue("rd")

	vars := LoginVars{
		Username: username,
		Redirect: redirect,
	}

	if username == "" || password == "" {
		vars.Errors = append(vars.Errors, "Username and password are required")
		h.renderLogin(w, r, vars)
		return
	}

	credentials, err := h.Client.Login(ctx, username, password)
	if err != nil {
		vars.Errors = append(vars.Errors, loginErrorMessage(err))
		h.renderLogin(w, r, vars)
		return
	}

	now := time.Now()
	expiration := now.Add(auth.SessionDuration)
	sessionID := auth.RandomStr(32)
	if err = h.DB.CreateSession(ctx, database.Session{
		ID:          sessionID,
		CreatedAt:   now,
		ExpiresAt:   expiration,
		Token:       credentials.Token,
		StudentID:   credentials.StudentID,
		StudentName: credentials.Name,
		StudentRole: credentials.Role,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to create session", slog.Any("err", err))
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	addSessionCookie(w, sessionID, expiration)

	if redirect == "" || !strings.HasPrefix(redirect, "/") {
		redirect = "/"
	}
	http.Redirect(w, r, redirect, http.StatusFound)
}

func loginErrorMessage(err error) string {
	var netErr *eazyfest.NetworkError
	switch {
	case errors.Is(err, eazyfest.ErrUnauthenticated), errors.Is(err, eazyfest.ErrForbidden):
		return "Invalid username or password"
	case errors.As(err, &netErr):
		return "Could not reach the server. Check your connection and try again."
	}
	return "Login failed. Please try again."
}

func (h *handler) renderLogin(w http.ResponseWriter, r *http.Request, vars LoginVars) {
	if err := h.Templates().ExecuteTemplate(w, "login.gohtml", vars); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render login template", slog.Any("err", err))
	}
}

type SignupVars struct {
	Name        string
	Email       string
	Department  string
	Departments []string
	Errors      []string
}

func (h *handler) Signup(w http.ResponseWriter, r *http.Request) {
	if auth.GetSession(r).LoggedIn() {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.renderSignup(w, r, SignupVars{})
}

func (h *handler) DoSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	signup := eazyfest.StudentSignup{
		Name:       strings.TrimSpace(r.FormValue("name")),
		Email:      strings.TrimSpace(r.FormValue("email")),
		Department: r.FormValue("department"),
		Password:   r.FormValue("password"),
	}
	confirm := r.FormValue("confirm_password")

	vars := SignupVars{
		Name:       signup.Name,
		Email:      signup.Email,
		Department: signup.Department,
	}

	vars.Errors = validateSignup(signup, confirm)
	if len(vars.Errors) > 0 {
		h.renderSignup(w, r, vars)
		return
	}

	if err := h.Client.SignupStudent(ctx, signup); err != nil {
		vars.Errors = append(vars.Errors, signupErrorMessage(err))
		h.renderSignup(w, r, vars)
		return
	}

	http.Redirect(w, r, "/login?signed_up=1", http.StatusFound)
}

func validateSignup(signup eazyfest.StudentSignup, confirm string) []string {
	var errs []string
	if len(signup.Name) < 2 {
		errs = append(errs, "Name must be at least 2 characters")
	}
	if !emailRegex.MatchString(signup.Email) {
		errs = append(errs, "Enter a valid email address")
	}
	if signup.Department == "" {
		errs = append(errs, "Select a department")
	}
	if len(signup.Password) < 6 {
		errs = append(errs, "Password must be at least 6 characters")
	}
	if confirm != signup.Password {
		errs = append(errs, "Passwords do not match")
	}
	return errs
}

func signupErrorMessage(err error) string {
	var netErr *eazyfest.NetworkError
	switch {
	case errors.Is(err, eazyfest.ErrConflict):
		return "An account with this email already exists"
	case errors.As(err, &netErr):
		return "Could not reach the server. Check your connection and try again."
	}
	return "Signup failed. Please try again."
}

func (h *handler) renderSignup(w http.ResponseWriter, r *http.Request, vars SignupVars) {
	vars.Departments = departments
	if err := h.Templates().ExecuteTemplate(w, "signup.gohtml", vars); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render signup template", slog.Any("err", err))
	}
}

func (h *handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

func addSessionCookie(w http.ResponseWriter, session string, expiration time.Time) {
	cookie := http.Cookie{
		Name:     "session",
		Value:    session,
		Expires:  expiration,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // Can use via http reqs
		HttpOnly: true,  // Can't be accessed by JS
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
}

func removeSessionCookie(w http.ResponseWriter) {
	cookie := http.Cookie{
		Name:     "session",
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // Can use via http reqs
		HttpOnly: true,  // Can't be accessed by JS
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
}
