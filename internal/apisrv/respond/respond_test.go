package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{gerr.Validation("Name is required."), http.StatusBadRequest, "Name is required."},
		{gerr.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
		{fmt.Errorf("delete: %w", gerr.ErrForbidden), http.StatusForbidden, "Forbidden"},
		{gerr.WaitlistNotFound, http.StatusNotFound, "Waitlist not found"},
		{gerr.AccountNotFound, http.StatusNotFound, "Not found"},
		{gerr.ErrTooLarge, http.StatusRequestEntityTooLarge, "payload too large"},
		{errors.New("dial tcp: refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), "test", c.err)
		assert.Equal(t, c.code, rec.Code, c.err.Error())

		var body ErrResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, c.msg, body.Message)
	}
}

func TestRawJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RawJSON(rec, http.StatusOK, []byte(`{"a" : 1}`))
	assert.Equal(t, `{"a" : 1}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
