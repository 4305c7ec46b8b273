package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/waitlister/internal/apisrv/respond"
	"github.com/jekabolt/waitlister/internal/auth/jwt"
	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
)

const (
	// SessionCookie is the cookie the auth library stores the session token in.
	SessionCookie = "session_token"
)

type ctxKey struct{}

// Config contains the configuration for session verification.
type Config struct {
	// JWTSecret is shared with the external auth library that issues sessions.
	JWTSecret string `mapstructure:"jwt_secret"`
}

// Server verifies session tokens and resolves them to accounts.
type Server struct {
	repo    dependency.Repository
	JwtAuth *jwtauth.JWTAuth
}

// New creates a new auth server.
func New(c *Config, repo dependency.Repository) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, errors.New("auth: jwt secret is not set")
	}
	return &Server{
		repo:    repo,
		JwtAuth: jwt.New(c.JWTSecret),
	}, nil
}

// WithAuth rejects requests without a valid session with 401 and stores the
// caller's account in the request context.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			render.Render(w, r, respond.ErrUnauthorized("Unauthorized"))
			return
		}

		session, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			render.Render(w, r, respond.ErrUnauthorized("Unauthorized"))
			return
		}

		acc, err := s.repo.Accounts().GetAccountById(r.Context(), session.AccountId)
		if err != nil {
			if errors.Is(err, gerr.ErrNotFound) {
				render.Render(w, r, respond.ErrUnauthorized("Unauthorized"))
				return
			}
			respond.Error(w, r, "auth: get account", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), acc)))
	})
}

// tokenFromRequest reads the bearer header first, then the session cookie.
func tokenFromRequest(r *http.Request) string {
	if t := jwtauth.TokenFromHeader(r); t != "" {
		return t
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// WithAccount stores acc in ctx.
func WithAccount(ctx context.Context, acc *entity.Account) context.Context {
	return context.WithValue(ctx, ctxKey{}, acc)
}

// AccountFromContext returns the account set by WithAuth.
func AccountFromContext(ctx context.Context) (*entity.Account, bool) {
	acc, ok := ctx.Value(ctxKey{}).(*entity.Account)
	return acc, ok && acc != nil
}
