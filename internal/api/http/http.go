package httpapi

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jekabolt/waitlister/internal/apisrv/auth"
	"github.com/jekabolt/waitlister/internal/apisrv/respond"
	"github.com/jekabolt/waitlister/internal/apisrv/upload"
	"github.com/jekabolt/waitlister/internal/apisrv/user"
	"github.com/jekabolt/waitlister/internal/apisrv/waitlist"
	"github.com/jekabolt/waitlister/internal/apisrv/webhook"
	"github.com/jekabolt/waitlister/internal/metrics"
	"github.com/jekabolt/waitlister/internal/middleware"
	"github.com/jekabolt/waitlister/log"
)

//go:embed static
var fs embed.FS

const (
	requestTimeout    = 60 * time.Second
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second

	defaultJoinRateLimit = 10
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// JoinRateLimit is the number of join requests allowed per client IP per minute.
	JoinRateLimit int `mapstructure:"join_rate_limit"`
}

// Pinger reports database health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers groups the endpoint implementations mounted by the router.
type Handlers struct {
	Auth     *auth.Server
	Waitlist *waitlist.Server
	User     *user.Server
	Webhook  *webhook.Server
	Upload   *upload.Server
	DB       Pinger
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Router builds the full route tree.
func (s *Server) Router(h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(log.RequestLogger(slog.Default()))
	r.Use(chimw.Recoverer)
	r.Use(metrics.InstrumentHandler)
	r.Use(s.cors())

	r.Get("/healthz", healthz(h.DB))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/embed.js", embedScript)

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))
		r.Use(render.SetContentType(render.ContentTypeJSON))

		// public
		r.Get("/waitlist/{id}", h.Waitlist.GetWaitlist)
		r.With(
			middleware.ClientIdentifier,
			httprate.Limit(s.joinRateLimit(), time.Minute,
				httprate.WithKeyFuncs(middleware.KeyByClientIP),
				httprate.WithLimitHandler(tooManyRequests),
			),
		).Post("/waitlist/{id}/join", h.Waitlist.Join)
		r.Post("/webhooks/creem", h.Webhook.Creem)

		// session
		r.Group(func(r chi.Router) {
			r.Use(h.Auth.WithAuth)

			r.Get("/waitlist", h.Waitlist.ListWaitlists)
			r.Post("/waitlist", h.Waitlist.CreateWaitlist)
			r.Delete("/waitlist", h.Waitlist.DeleteWaitlist)
			r.Get("/waitlist/{id}/settings", h.Waitlist.GetSettings)
			r.Put("/waitlist/{id}/settings", h.Waitlist.PutSettings)
			r.Get("/waitlist/{id}/analytics", h.Waitlist.Analytics)
			r.Get("/waitlist/{id}/submissions", h.Waitlist.Submissions)

			r.Get("/user/payment-status", h.User.PaymentStatus)
			r.Post("/upload", h.Upload.UploadImage)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, respond.ErrNotFound("Not found"))
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context, h *Handlers) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           h2c.NewHandler(s.Router(h), &http2.Server{}),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		slog.Default().InfoContext(ctx, "waitlister listening", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

func (s *Server) joinRateLimit() int {
	if s.c.JoinRateLimit > 0 {
		return s.c.JoinRateLimit
	}
	return defaultJoinRateLimit
}

func (s *Server) cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	// credentials are allowed, so there is no wildcard
	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}

	return false
}

func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status, body := http.StatusOK, "ok"
		if err := db.Ping(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "healthz: database ping failed",
				slog.String("err", err.Error()),
			)
			status, body = http.StatusServiceUnavailable, "unavailable"
		}
		render.Status(r, status)
		render.JSON(w, r, map[string]string{"status": body})
	}
}

func embedScript(w http.ResponseWriter, r *http.Request) {
	b, err := fs.ReadFile("static/embed.js")
	if err != nil {
		render.Render(w, r, respond.ErrInternalServerError(err))
		return
	}
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(b)
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	render.Render(w, r, respond.ErrTooManyRequests())
}
