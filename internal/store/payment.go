package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
)

type paymentsStore struct {
	*MYSQLStore
}

// Payments returns an object implementing Payments interface
func (ms *MYSQLStore) Payments() dependency.Payments {
	return &paymentsStore{
		MYSQLStore: ms,
	}
}

// UpsertPendingPayment relies on the unique key on email, so redelivered
// events update the existing row in place.
func (ps *paymentsStore) UpsertPendingPayment(ctx context.Context, pp *entity.PendingPaymentInsert) error {
	query := `
		INSERT INTO pending_payment (id, email, customer_id, amount, currency, payload, created_at, updated_at)
		VALUES (:id, :email, :customerId, :amount, :currency, :payload, :now, :now)
		ON DUPLICATE KEY UPDATE
			customer_id = VALUES(customer_id),
			amount = VALUES(amount),
			currency = VALUES(currency),
			payload = VALUES(payload),
			updated_at = VALUES(updated_at)`
	err := ExecNamed(ctx, ps.DB(), query, map[string]any{
		"id":         uuid.NewString(),
		"email":      pp.Email,
		"customerId": pp.CustomerId,
		"amount":     pp.Amount,
		"currency":   pp.Currency,
		"payload":    pp.Payload,
		"now":        ps.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to upsert pending payment: %w", err)
	}
	return nil
}

func (ps *paymentsStore) GetPendingPaymentByEmail(ctx context.Context, email string) (*entity.PendingPayment, error) {
	query := `SELECT * FROM pending_payment WHERE email = LOWER(:email)`
	pp, err := QueryNamedOne[entity.PendingPayment](ctx, ps.DB(), query, map[string]any{
		"email": email,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pending payment %w", gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pending payment: %w", err)
	}
	return &pp, nil
}

func (ps *paymentsStore) DeletePendingPayment(ctx context.Context, id string) error {
	query := `DELETE FROM pending_payment WHERE id = :id`
	if err := ExecNamed(ctx, ps.DB(), query, map[string]any{"id": id}); err != nil {
		return fmt.Errorf("failed to delete pending payment: %w", err)
	}
	return nil
}
