package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/waitlister/internal/auth/jwt"
	"github.com/jekabolt/waitlister/internal/dependency/mocks"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "hehe"

func TestAuth(t *testing.T) {
	repMock := mocks.NewRepository(t)
	accMock := mocks.NewAccounts(t)
	repMock.EXPECT().Accounts().Return(accMock).Maybe()

	authsrv, err := New(&Config{JWTSecret: jwtSecret}, repMock)
	require.NoError(t, err)

	token, err := jwt.NewToken(authsrv.JwtAuth, time.Hour, "acc-1", "a@x.com")
	require.NoError(t, err)

	var got *entity.Account
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = AccountFromContext(r.Context())
		w.Write([]byte("OK"))
	})
	handlerAuth := authsrv.WithAuth(nextHandler)

	accMock.EXPECT().GetAccountById(mock.Anything, "acc-1").Return(&entity.Account{Id: "acc-1", Email: "a@x.com"}, nil)

	// bearer header
	req := httptest.NewRequest(http.MethodGet, "http://testing", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	rec := httptest.NewRecorder()
	handlerAuth.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "acc-1", got.Id)

	// session cookie
	req = httptest.NewRequest(http.MethodGet, "http://testing", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec = httptest.NewRecorder()
	handlerAuth.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// bad token case
	req = httptest.NewRequest(http.MethodGet, "http://testing", nil)
	req.Header.Set("Authorization", "Bearer bad token")
	rec = httptest.NewRecorder()
	handlerAuth.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// no token
	rec = httptest.NewRecorder()
	handlerAuth.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://testing", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthUnknownAccount(t *testing.T) {
	repMock := mocks.NewRepository(t)
	accMock := mocks.NewAccounts(t)
	repMock.EXPECT().Accounts().Return(accMock)

	authsrv, err := New(&Config{JWTSecret: jwtSecret}, repMock)
	require.NoError(t, err)

	token, err := jwt.NewToken(authsrv.JwtAuth, time.Hour, "gone", "")
	require.NoError(t, err)

	accMock.EXPECT().GetAccountById(mock.Anything, "gone").Return(nil, gerr.AccountNotFound)

	called := false
	h := authsrv.WithAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	req := httptest.NewRequest(http.MethodGet, "http://testing", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestNewRequiresSecret(t *testing.T) {
	_, err := New(&Config{}, nil)
	assert.Error(t, err)
}
