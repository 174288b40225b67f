package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Muralis01/event-fest/server/database"
	"github.com/Muralis01/event-fest/server/eazyfest"
)

var (
	//go:embed static
	static embed.FS

	//go:embed templates/*.gohtml
	templates embed.FS
)

func New(cfg Config) (*Server, error) {
	funcs := template.FuncMap{
		"dev": func() bool {
			return cfg.Dev
		},
	}
	for name, f := range templateFuncs {
		funcs[name] = f
	}

	var staticFS http.FileSystem
	var t func() *template.Template
	var notifier *ReloadNotifier
	if cfg.Dev {
		root, err := os.OpenRoot("server/")
		if err != nil {
			return nil, fmt.Errorf("failed to open static directory: %w", err)
		}
		staticFS = http.FS(root.FS())
		t = func() *template.Template {
			return template.Must(template.New("templates").
				Funcs(funcs).
				ParseFS(root.FS(), "templates/*.gohtml"))
		}

		notifier = newReloadNotifier()
		startDevWatcher("server/", notifier)
	} else {
		staticFS = http.FS(static)

		st := template.Must(template.New("templates").
			Funcs(funcs).
			ParseFS(templates, "templates/*.gohtml"),
		)

		t = func() *template.Template {
			return st
		}
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	return &Server{
		Cfg:            cfg,
		HTTPClient:     httpClient,
		Client:         eazyfest.New(cfg.EazyFest, httpClient),
		DB:             db,
		Templates:      t,
		StaticFS:       staticFS,
		ReloadNotifier: notifier,
	}, nil
}

type Server struct {
	Cfg            Config
	HTTPClient     *http.Client
	Client         *eazyfest.Client
	DB             *database.Database
	Templates      func() *template.Template
	StaticFS       http.FileSystem
	ReloadNotifier *ReloadNotifier

	server *http.Server
}

func (s *Server) Start(handler http.Handler) {
	s.server = &http.Server{
		Addr:    s.Cfg.Server.Addr,
		Handler: handler,
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", slog.Any("err", err))
		}
	}()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.ReloadNotifier != nil {
		s.ReloadNotifier.Close()
	}

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown failed", slog.Any("err", err))
		}
	}

	if err := s.DB.Close(); err != nil {
		slog.Error("Database close failed", slog.Any("err", err))
	}
}
