package creem

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/shopspring/decimal"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw body.
const SignatureHeader = "creem-signature"

var (
	ErrSecretNotConfigured = errors.New("creem webhook secret is not configured")
	ErrMissingSignature    = errors.New("missing signature")
	ErrInvalidSignature    = errors.New("invalid signature")
)

type Config struct {
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// Result describes how an event was handled.
type Result struct {
	Ignored bool
	Reason  string
	// UserId is set when an existing account was marked paid.
	UserId string
	// Pending is set when the payment was stored for a future account.
	Pending bool
}

type Processor struct {
	c    *Config
	repo dependency.Repository
}

func New(c *Config, repo dependency.Repository) *Processor {
	return &Processor{
		c:    c,
		repo: repo,
	}
}

// Verify checks the signature of a raw body.
func (p *Processor) Verify(body []byte, signature string) error {
	if p.c == nil || p.c.WebhookSecret == "" {
		return ErrSecretNotConfigured
	}
	if signature == "" {
		return ErrMissingSignature
	}
	if !ValidSignature(p.c.WebhookSecret, body, signature) {
		return ErrInvalidSignature
	}
	return nil
}

// Sign returns the hex HMAC-SHA256 of body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidSignature compares in constant time.
func ValidSignature(secret string, body []byte, signature string) bool {
	expected := Sign(secret, body)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature))))
}

// HandleEvent applies a verified event. Events that are not fully paid
// one-time checkouts are ignored without error so the sender doesn't retry
// them. Redelivery is safe: setting the flag and the upsert are idempotent.
func (p *Processor) HandleEvent(ctx context.Context, e *Event, raw []byte) (*Result, error) {
	if e.EventType != EventCheckoutCompleted {
		return &Result{Ignored: true}, nil
	}

	switch {
	case e.Object.Status != CheckoutStatusCompleted:
		return ignored("checkout not completed"), nil
	case e.Object.Order.Status != OrderStatusPaid:
		return ignored("order not paid"), nil
	case e.Object.Order.Type != OrderTypeOnetime:
		return ignored("order is not a one-time payment"), nil
	}

	cust := e.Object.CustomerInfo()
	email := strings.ToLower(strings.TrimSpace(cust.Email))
	if email == "" {
		return ignored("no customer email"), nil
	}

	acc, err := p.repo.Accounts().GetAccountByEmail(ctx, email)
	switch {
	case err == nil:
		if err := p.repo.Accounts().SetPayment(ctx, acc.Id, true); err != nil {
			return nil, fmt.Errorf("can't set account payment: %w", err)
		}
		slog.Default().InfoContext(ctx, "account marked as paid",
			slog.String("event_id", e.Id),
			slog.String("account_id", acc.Id),
		)
		return &Result{UserId: acc.Id}, nil
	case !errors.Is(err, gerr.ErrNotFound):
		return nil, fmt.Errorf("can't get account by email: %w", err)
	}

	pp := &entity.PendingPaymentInsert{
		Email:   email,
		Payload: string(raw),
	}
	if cust.Id != "" {
		pp.CustomerId = sql.NullString{String: cust.Id, Valid: true}
	}
	if e.Object.Order.Currency != "" {
		pp.Amount = decimal.NullDecimal{Decimal: e.Object.Order.AmountDecimal(), Valid: true}
		pp.Currency = sql.NullString{String: strings.ToUpper(e.Object.Order.Currency), Valid: true}
	}
	if err := p.repo.Payments().UpsertPendingPayment(ctx, pp); err != nil {
		return nil, fmt.Errorf("can't store pending payment: %w", err)
	}
	slog.Default().InfoContext(ctx, "pending payment stored",
		slog.String("event_id", e.Id),
	)
	return &Result{Pending: true}, nil
}

func ignored(reason string) *Result {
	return &Result{Ignored: true, Reason: reason}
}
