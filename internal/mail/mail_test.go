package mail

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (f *fakeSender) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status}, nil
}

func testMailer(t *testing.T, s sender) *Mailer {
	t.Helper()
	m, err := New(&Config{
		APIKey:    "SG.test",
		FromEmail: "hello@waitlister.dev",
		FromName:  "Waitlister",
		ReplyTo:   "support@waitlister.dev",
	})
	require.NoError(t, err)
	m.cli = s
	return m
}

var jc = &entity.JoinConfirmation{
	WaitlistName: "Rocket <Beta>",
	Name:         "Ada",
	Email:        "ada@x.com",
}

func TestNewDisabledWithoutKey(t *testing.T) {
	m, err := New(&Config{})
	require.NoError(t, err)
	assert.False(t, m.Enabled())
	assert.NoError(t, m.SendJoinConfirmation(context.Background(), "ada@x.com", jc))
}

func TestNewIncompleteConfig(t *testing.T) {
	_, err := New(&Config{APIKey: "SG.test"})
	assert.Error(t, err)
}

func TestSendJoinConfirmation(t *testing.T) {
	fs := &fakeSender{status: http.StatusAccepted}
	m := testMailer(t, fs)
	assert.True(t, m.Enabled())

	require.NoError(t, m.SendJoinConfirmation(context.Background(), "ada@x.com", jc))
	require.Len(t, fs.sent, 1)

	msg := fs.sent[0]
	assert.Equal(t, "You're on the Rocket <Beta> waitlist", msg.Subject)
	assert.Equal(t, "hello@waitlister.dev", msg.From.Address)
	assert.Equal(t, "support@waitlister.dev", msg.ReplyTo.Address)
	require.Len(t, msg.Personalizations, 1)
	assert.Equal(t, "ada@x.com", msg.Personalizations[0].To[0].Address)
	assert.Equal(t, "Ada", msg.Personalizations[0].To[0].Name)

	require.Len(t, msg.Content, 2)
	assert.Equal(t, "text/plain", msg.Content[0].Type)
	assert.Contains(t, msg.Content[0].Value, "Hi Ada,")
	assert.Equal(t, "text/html", msg.Content[1].Type)
	html := msg.Content[1].Value
	assert.Contains(t, html, "Rocket &lt;Beta&gt;")
	assert.False(t, strings.Contains(html, "<Beta>"), "waitlist name must be escaped")
}

func TestSendJoinConfirmationErrors(t *testing.T) {
	m := testMailer(t, &fakeSender{status: http.StatusTooManyRequests})
	err := m.SendJoinConfirmation(context.Background(), "ada@x.com", jc)
	assert.ErrorIs(t, err, gerr.MailApiLimitReached)

	m = testMailer(t, &fakeSender{status: http.StatusBadRequest})
	assert.Error(t, m.SendJoinConfirmation(context.Background(), "ada@x.com", jc))

	m = testMailer(t, &fakeSender{err: errors.New("dial tcp: timeout")})
	assert.Error(t, m.SendJoinConfirmation(context.Background(), "ada@x.com", jc))

	fs := &fakeSender{status: http.StatusAccepted}
	m = testMailer(t, fs)
	assert.Error(t, m.SendJoinConfirmation(context.Background(), "", jc))
	assert.Empty(t, fs.sent)
}

func TestJoinPlainTextWithoutName(t *testing.T) {
	txt := joinPlainText(&entity.JoinConfirmation{WaitlistName: "Rocket", Email: "a@x.com"})
	assert.True(t, strings.HasPrefix(txt, "Hi,\n"))
}
