package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jekabolt/waitlister/config"
	httpapi "github.com/jekabolt/waitlister/internal/api/http"
	"github.com/jekabolt/waitlister/internal/apisrv/auth"
	"github.com/jekabolt/waitlister/internal/apisrv/upload"
	"github.com/jekabolt/waitlister/internal/apisrv/user"
	"github.com/jekabolt/waitlister/internal/apisrv/waitlist"
	"github.com/jekabolt/waitlister/internal/apisrv/webhook"
	"github.com/jekabolt/waitlister/internal/bucket"
	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/mail"
	"github.com/jekabolt/waitlister/internal/payment/creem"
	"github.com/jekabolt/waitlister/internal/ratelimit"
	"github.com/jekabolt/waitlister/internal/store"
)

const (
	// confirmation mails per email address: two right away, then one per hour
	mailLimitInterval = time.Hour
	mailLimitBurst    = 2
	limiterSweepEvery = 10 * time.Minute
)

// App is the main application
type App struct {
	hs     *httpapi.Server
	db     dependency.Repository
	c      *config.Config
	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting waitlister")

	ctx, a.cancel = context.WithCancel(ctx)

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}

	authS, err := auth.New(&a.c.Auth, a.db)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server", slog.String("err", err.Error()))
		return err
	}

	mailer, err := mail.New(&a.c.Mailer)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create mailer", slog.String("err", err.Error()))
		return err
	}
	if !mailer.Enabled() {
		slog.Default().WarnContext(ctx, "mailer is not configured, confirmation emails are disabled")
	}

	files, err := a.fileStore()
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create bucket", slog.String("err", err.Error()))
		return err
	}

	mailLimits := ratelimit.NewLimiter(mailLimitInterval, mailLimitBurst)
	go mailLimits.Run(ctx, limiterSweepEvery)

	if a.c.Creem.WebhookSecret == "" {
		slog.Default().WarnContext(ctx, "creem webhook secret is not configured, webhooks will be rejected")
	}

	a.hs = httpapi.New(&a.c.HTTP)
	err = a.hs.Start(ctx, &httpapi.Handlers{
		Auth:     authS,
		Waitlist: waitlist.New(a.db, mailer, mailLimits),
		User:     user.New(a.db),
		Webhook:  webhook.New(creem.New(&a.c.Creem, a.db)),
		Upload:   upload.New(files),
		DB:       a.db,
	})
	if err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.Stop(context.Background())
	}()

	return nil
}

func (a *App) fileStore() (dependency.FileStore, error) {
	if !a.c.BucketEnabled() {
		slog.Default().Warn("bucket is not configured, uploads are disabled")
		return &bucket.Bucket{Config: &a.c.Bucket}, nil
	}
	b, err := bucket.New(&a.c.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket: %w", err)
	}
	return b, nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	a.once.Do(func() { a.stop(ctx) })
}

func (a *App) stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown", slog.String("err", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	if a.cancel != nil {
		a.cancel()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
