package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
)

type accountStore struct {
	*MYSQLStore
}

// Accounts returns an object implementing Accounts interface
func (ms *MYSQLStore) Accounts() dependency.Accounts {
	return &accountStore{
		MYSQLStore: ms,
	}
}

func (as *accountStore) GetAccountById(ctx context.Context, id string) (*entity.Account, error) {
	return as.getOne(ctx, `SELECT * FROM account WHERE id = :value`, id)
}

func (as *accountStore) GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return as.getOne(ctx, `SELECT * FROM account WHERE LOWER(email) = LOWER(:value)`, email)
}

func (as *accountStore) getOne(ctx context.Context, query, value string) (*entity.Account, error) {
	acc, err := QueryNamedOne[entity.Account](ctx, as.DB(), query, map[string]any{
		"value": value,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.AccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &acc, nil
}

func (as *accountStore) SetPayment(ctx context.Context, accountId string, paid bool) error {
	query := `UPDATE account SET payment = :payment, updated_at = :updatedAt WHERE id = :id`
	err := ExecNamed(ctx, as.DB(), query, map[string]any{
		"id":        accountId,
		"payment":   paid,
		"updatedAt": as.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to set account payment: %w", err)
	}
	return nil
}
