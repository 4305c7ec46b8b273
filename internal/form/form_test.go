package form

import (
	"net/url"
	"strings"
	"testing"

	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateWaitlistRequest(t *testing.T) {
	f := &CreateWaitlistRequest{Name: "  Beta  ", Description: strPtr("  ")}
	require.NoError(t, f.Validate())
	wi := f.WaitlistInsert("acc-1")
	assert.Equal(t, "Beta", wi.Name)
	assert.Equal(t, "acc-1", wi.OwnerId)
	assert.False(t, wi.Description.Valid)

	f = &CreateWaitlistRequest{Name: "   "}
	err := f.Validate()
	assert.ErrorIs(t, err, gerr.ErrValidation)
	assert.Equal(t, "Name is required.", err.Error())

	f = &CreateWaitlistRequest{Name: strings.Repeat("a", 256)}
	assert.ErrorIs(t, f.Validate(), gerr.ErrValidation)

	f = &CreateWaitlistRequest{Name: "ok", Description: strPtr(strings.Repeat("d", 1001))}
	assert.ErrorIs(t, f.Validate(), gerr.ErrValidation)

	f = &CreateWaitlistRequest{Name: "ok", Description: strPtr("launch list")}
	require.NoError(t, f.Validate())
	assert.Equal(t, "launch list", f.WaitlistInsert("acc-1").Description.String)
}

func TestJoinWaitlistRequest(t *testing.T) {
	f := &JoinWaitlistRequest{Email: "  A@X.com "}
	require.NoError(t, f.Validate())
	assert.Equal(t, "a@x.com", f.Email)
	ei := f.EntryInsert("W1")
	assert.Equal(t, "W1", ei.WaitlistId)
	assert.False(t, ei.Name.Valid)

	f = &JoinWaitlistRequest{Email: "a@x.com", Name: strPtr(" Ann ")}
	require.NoError(t, f.Validate())
	assert.Equal(t, "Ann", f.EntryInsert("W1").Name.String)

	for _, email := range []string{"", "   ", "not-an-email"} {
		f = &JoinWaitlistRequest{Email: email}
		assert.ErrorIs(t, f.Validate(), gerr.ErrValidation, email)
	}
}

func TestParseSubmissionsQuery(t *testing.T) {
	sq := ParseSubmissionsQuery(url.Values{})
	assert.Equal(t, &SubmissionsQuery{Page: 1, Limit: 20}, sq)

	sq = ParseSubmissionsQuery(url.Values{"page": {"0"}, "limit": {"-4"}})
	assert.Equal(t, 1, sq.Page)
	assert.Equal(t, 20, sq.Limit)

	sq = ParseSubmissionsQuery(url.Values{"page": {"3"}, "limit": {"500"}, "search": {" FOO "}})
	assert.Equal(t, 3, sq.Page)
	assert.Equal(t, 100, sq.Limit)
	assert.Equal(t, "foo", sq.Search)
	assert.Equal(t, 200, sq.Offset())

	f := sq.Filter("W1")
	assert.Equal(t, "W1", f.WaitlistId)
	assert.Equal(t, 200, f.Offset)
	assert.Equal(t, 100, f.Limit)
}

func TestTotalPages(t *testing.T) {
	sq := &SubmissionsQuery{Page: 1, Limit: 20}
	assert.Equal(t, 0, sq.TotalPages(0))
	assert.Equal(t, 1, sq.TotalPages(20))
	assert.Equal(t, 2, sq.TotalPages(21))
}

func TestValidateSettings(t *testing.T) {
	assert.NoError(t, ValidateSettings([]byte(`{"layout":"centered"}`)))
	assert.NoError(t, ValidateSettings([]byte(` null `)))
	assert.True(t, IsNullSettings([]byte(" null\n")))

	for _, body := range []string{"", "[1,2]", `"str"`, "{broken"} {
		assert.ErrorIs(t, ValidateSettings([]byte(body)), gerr.ErrValidation, body)
	}
}
