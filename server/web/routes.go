package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"

	"github.com/Muralis01/event-fest/internal/middlewares"
	"github.com/Muralis01/event-fest/internal/tsync"
	"github.com/Muralis01/event-fest/server"
)

const (
	gridPageSize = 9
	listPageSize = 10
)

// actionKey identifies one in-flight registration or cancellation: one
// session acting on one entity. Other entities of the same session stay
// independently actionable.
type actionKey struct {
	SessionID string
	ID        int
}

type handler struct {
	*server.Server

	registering *tsync.PendingTracker[actionKey]
	cancelling  *tsync.PendingTracker[actionKey]
}

func Routes(srv *server.Server) http.Handler {
	h := &handler{
		Server:      srv,
		registering: tsync.NewPendingTracker[actionKey](),
		cancelling:  tsync.NewPendingTracker[actionKey](),
	}

	fileServer := http.FileServer(h.StaticFS)
	var fs http.Handler
	if srv.Cfg.Dev {
		fs = fileServer
	} else {
		fs = middlewares.Cache(fileServer)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Dashboard)

	mux.HandleFunc("GET /events/{event_id}", h.Event)
	mux.HandleFunc("GET /events/{event_id}/qr", h.EventQR)
	mux.HandleFunc("POST /events/{event_id}/register", h.RegisterEvent)

	mux.HandleFunc("GET /registrations", h.Registrations)
	mux.HandleFunc("POST /registrations/{registration_id}/cancel", h.CancelRegistration)

	mux.HandleFunc("GET  /login", h.Login)
	mux.HandleFunc("POST /login", h.DoLogin)
	mux.HandleFunc("GET  /signup", h.Signup)
	mux.HandleFunc("POST /signup", h.DoSignup)
	mux.HandleFunc("POST /logout", h.Logout)

	mux.Handle("GET  /static/", fs)
	mux.Handle("HEAD /static/", fs)

	if srv.Cfg.Dev {
		mux.HandleFunc("GET /dev/reload", h.DevReload)
	}

	mux.HandleFunc("/", h.NotFound)

	return cleanPath(middlewares.AccessLog(h.auth(mux)))
}

func (h *handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.WriteHeader(http.StatusNotFound)
	if err := h.Templates().ExecuteTemplate(w, "not_found.gohtml", nil); err != nil {
		slog.ErrorContext(ctx, "Failed to render not found template", slog.Any("err", err))
	}
}

func cleanPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			cleaned := path.Clean(r.URL.Path)
			if cleaned != r.URL.Path {
				r.URL.Path = cleaned
			}
		}
		next.ServeHTTP(w, r)
	})
}

// DevReload streams server-sent events that instruct the browser to refresh
// whenever the dev watcher picks up a change on disk. The SSE connection stays
// open until the client disconnects or the server shuts down.
func (h *handler) DevReload(w http.ResponseWriter, r *http.Request) {
	if h.ReloadNotifier == nil {
		http.NotFound(w, r)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	cancel, ch := h.ReloadNotifier.Subscribe()
	if ch == nil {
		w.WriteHeader(http.StatusGone)
		return
	}
	defer cancel()

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if _, err := fmt.Fprint(w, "data: reload\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
