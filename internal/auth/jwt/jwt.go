package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

var ErrNoSubject = errors.New("token has no subject")

// Session is the identity carried by a verified session token.
type Session struct {
	AccountId string
	Email     string
}

// New returns an HS256 verifier sharing the auth library's secret.
func New(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

// VerifyToken checks signature and expiry and returns the session. The
// subject claim is the account id and must be present.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (*Session, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return nil, err
	}
	if t.Subject() == "" {
		return nil, ErrNoSubject
	}
	s := &Session{AccountId: t.Subject()}
	if email, ok := t.Get("email"); ok {
		s.Email, _ = email.(string)
	}
	return s, nil
}

// NewToken issues a session token the same way the auth library does. It is
// used by tests and local tooling.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, accountId, email string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
		"sub": accountId,
	}
	if email != "" {
		claims["email"] = email
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return "", err
	}
	return ts, nil
}
