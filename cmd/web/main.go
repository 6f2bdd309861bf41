package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"hospital-portal/internal/backend"
	"hospital-portal/internal/config"
	"hospital-portal/internal/logger"
	"hospital-portal/internal/middleware"
	"hospital-portal/internal/session"
	"hospital-portal/internal/view"
	"hospital-portal/internal/web"
)

const staticDir = "ui/static"

func init() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	l := logger.New(cfg)

	srv := web.NewServer(
		backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout, logger.WithModule(l, "backend")),
		session.NewStore(session.Options{
			CookieName: cfg.Session.CookieName,
			Secret:     cfg.Session.Secret,
			MaxAge:     cfg.Session.MaxAge,
			Secure:     cfg.CookieSecure,
		}),
		view.DefaultBookingOverlay{},
		logger.WithModule(l, "web"),
	)

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, srv, l),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		l.Info("http.server.started", "addr", httpServer.Addr, "backend", cfg.Backend.URL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("http.server.failed", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		l.Error("http.server.shutdown_failed", "error", err.Error())
		return
	}
	l.Info("http.server.stopped")
}

func newRouter(cfg *config.Config, srv *web.Server, l *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(logger.WithModule(l, "http")))

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF(middleware.CSRFOptions{
			Key:    []byte(cfg.CSRF.Key),
			Secure: cfg.CookieSecure,
			Logger: logger.WithModule(l, "csrf"),
		}))
		srv.Routes(r)
	})
	return r
}
