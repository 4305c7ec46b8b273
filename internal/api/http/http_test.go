package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jekabolt/waitlister/internal/apisrv/auth"
	"github.com/jekabolt/waitlister/internal/apisrv/upload"
	"github.com/jekabolt/waitlister/internal/apisrv/user"
	"github.com/jekabolt/waitlister/internal/apisrv/waitlist"
	"github.com/jekabolt/waitlister/internal/apisrv/webhook"
	"github.com/jekabolt/waitlister/internal/auth/jwt"
	"github.com/jekabolt/waitlister/internal/dependency/mocks"
	"github.com/jekabolt/waitlister/internal/entity"
	"github.com/jekabolt/waitlister/internal/payment/creem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "router-secret"

type fixture struct {
	rep     *mocks.Repository
	handler http.Handler
	authSrv *auth.Server
}

func newFixture(t *testing.T, c *Config) *fixture {
	t.Helper()
	rep := mocks.NewRepository(t)
	authSrv, err := auth.New(&auth.Config{JWTSecret: jwtSecret}, rep)
	require.NoError(t, err)

	s := New(c)
	h := s.Router(&Handlers{
		Auth:     authSrv,
		Waitlist: waitlist.New(rep, nil, nil),
		User:     user.New(rep),
		Webhook:  webhook.New(creem.New(&creem.Config{WebhookSecret: "whsec"}, rep)),
		Upload:   upload.New(mocks.NewFileStore(t)),
		DB:       rep,
	})
	return &fixture{rep: rep, handler: h, authSrv: authSrv}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, &Config{})

	f.rep.EXPECT().Ping(mock.Anything).Return(nil).Once()
	rec := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	f.rep.EXPECT().Ping(mock.Anything).Return(errors.New("gone")).Once()
	rec = f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestEmbedScript(t *testing.T) {
	f := newFixture(t, &Config{})

	rec := f.do(httptest.NewRequest(http.MethodGet, "/embed.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/javascript"))
	assert.Contains(t, rec.Body.String(), "data-waitlist-id")
	assert.Contains(t, rec.Body.String(), "/widget/")
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, &Config{})

	f.rep.EXPECT().Ping(mock.Anything).Return(nil).Once()
	f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rec := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/healthz"`)
}

func TestSessionRoutesRequireAuth(t *testing.T) {
	f := newFixture(t, &Config{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/waitlist"},
		{http.MethodPost, "/api/waitlist"},
		{http.MethodDelete, "/api/waitlist?id=x"},
		{http.MethodGet, "/api/waitlist/x/settings"},
		{http.MethodPut, "/api/waitlist/x/settings"},
		{http.MethodGet, "/api/waitlist/x/analytics"},
		{http.MethodGet, "/api/waitlist/x/submissions"},
		{http.MethodGet, "/api/user/payment-status"},
		{http.MethodPost, "/api/upload"},
	} {
		rec := f.do(httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestAuthenticatedList(t *testing.T) {
	f := newFixture(t, &Config{})
	accounts := mocks.NewAccounts(t)
	wls := mocks.NewWaitlist(t)
	f.rep.EXPECT().Accounts().Return(accounts)
	f.rep.EXPECT().Waitlist().Return(wls)

	accounts.EXPECT().GetAccountById(mock.Anything, "acc-1").
		Return(&entity.Account{Id: "acc-1", Email: "owner@x.com"}, nil)
	wls.EXPECT().ListWaitlists(mock.Anything, "acc-1").Return([]entity.Waitlist{}, nil)

	token, err := jwt.NewToken(f.authSrv.JwtAuth, time.Hour, "acc-1", "owner@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/waitlist", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"waitlists":[]}`, rec.Body.String())
}

func TestPublicWaitlist(t *testing.T) {
	f := newFixture(t, &Config{})
	wls := mocks.NewWaitlist(t)
	f.rep.EXPECT().Waitlist().Return(wls)
	wls.EXPECT().GetWaitlistById(mock.Anything, "wl-1").
		Return(&entity.Waitlist{Id: "wl-1", OwnerId: "acc-1", Name: "Rocket"}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/waitlist/wl-1", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, true, out["success"])
}

func TestJoinRateLimit(t *testing.T) {
	f := newFixture(t, &Config{JoinRateLimit: 1})

	join := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/waitlist/wl-1/join", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", ip)
		return f.do(req).Code
	}

	// empty body fails validation before any store call
	assert.Equal(t, http.StatusBadRequest, join("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, join("10.0.0.1"))
	assert.Equal(t, http.StatusBadRequest, join("10.0.0.2"))

	// a client-chosen left-hand hop does not open a new bucket
	assert.Equal(t, http.StatusTooManyRequests, join("198.51.100.1, 10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, join("198.51.100.2, 10.0.0.1"))
}

func TestCORS(t *testing.T) {
	f := newFixture(t, &Config{AllowedOrigins: []string{"https://app.example.com"}})

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/waitlist", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		return f.do(req)
	}

	rec := preflight("https://app.example.com")
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	rec = preflight("http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = preflight("https://evil.example.com")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcardNotReflected(t *testing.T) {
	f := newFixture(t, &Config{AllowedOrigins: []string{"*"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/waitlist", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := f.do(req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestIsOriginAllowed(t *testing.T) {
	assert.False(t, isOriginAllowed("https://a.com", []string{"*"}))
	assert.True(t, isOriginAllowed("https://a.com", []string{"https://a.com"}))
	assert.True(t, isOriginAllowed("https://localhost:8443", nil))
	assert.False(t, isOriginAllowed("https://b.com", []string{"https://a.com"}))
}

func TestNotFound(t *testing.T) {
	f := newFixture(t, &Config{})
	rec := f.do(httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
