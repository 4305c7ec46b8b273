package mail

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"path"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	gerr "github.com/jekabolt/waitlister/internal/errors"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Config struct {
	APIKey    string `mapstructure:"sendgrid_api_key"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_email_name"`
	ReplyTo   string `mapstructure:"reply_to"`
}

// sender is the part of *sendgrid.Client the mailer uses.
type sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type Mailer struct {
	cli       sender
	from      *mail.Email
	replyTo   *mail.Email
	templates map[string]*template.Template
}

// New returns a disabled mailer when no API key is configured.
func New(c *Config) (*Mailer, error) {
	m := &Mailer{
		templates: make(map[string]*template.Template),
	}
	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	if c == nil || c.APIKey == "" {
		return m, nil
	}
	if c.FromEmail == "" || c.FromName == "" {
		return nil, fmt.Errorf("incomplete mailer config: from_email and from_email_name are required")
	}

	m.cli = sendgrid.NewSendClient(c.APIKey)
	m.from = mail.NewEmail(c.FromName, c.FromEmail)
	if c.ReplyTo != "" {
		m.replyTo = mail.NewEmail(c.FromName, c.ReplyTo)
	}
	return m, nil
}

// Enabled reports whether mails are actually sent.
func (m *Mailer) Enabled() bool {
	return m.cli != nil
}

func (m *Mailer) parseTemplates() error {
	const templateDir = "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		tmpl, err := template.ParseFS(templatesFS, path.Join(templateDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		m.templates[entry.Name()] = tmpl
	}
	return nil
}

func (m *Mailer) render(tn string, data any) (string, error) {
	tmpl, ok := m.templates[tn]
	if !ok {
		return "", fmt.Errorf("template not found: %v", tn)
	}
	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return "", fmt.Errorf("error executing template: %w", err)
	}
	return body.String(), nil
}

func (m *Mailer) buildMessage(to, toName, subject, plain, html string) *mail.SGMailV3 {
	msg := mail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.Subject = subject
	if m.replyTo != nil {
		msg.SetReplyTo(m.replyTo)
	}

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(toName, to))
	msg.AddPersonalizations(p)

	msg.AddContent(mail.NewContent("text/plain", plain), mail.NewContent("text/html", html))
	return msg
}

func (m *Mailer) send(ctx context.Context, msg *mail.SGMailV3) error {
	if !m.Enabled() {
		return nil
	}
	resp, err := m.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return gerr.MailApiLimitReached
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("error sending email bad status code: %d, body: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
