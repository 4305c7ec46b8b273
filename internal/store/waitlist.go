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

type waitlistStore struct {
	*MYSQLStore
}

// Waitlist returns an object implementing Waitlist interface
func (ms *MYSQLStore) Waitlist() dependency.Waitlist {
	return &waitlistStore{
		MYSQLStore: ms,
	}
}

func (ws *waitlistStore) ListWaitlists(ctx context.Context, ownerId string) ([]entity.Waitlist, error) {
	query := `SELECT * FROM waitlist WHERE owner_id = :ownerId ORDER BY created_at DESC`
	wls, err := QueryListNamed[entity.Waitlist](ctx, ws.DB(), query, map[string]any{
		"ownerId": ownerId,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlists: %w", err)
	}
	return wls, nil
}

func (ws *waitlistStore) AddWaitlist(ctx context.Context, wl *entity.WaitlistInsert) (*entity.Waitlist, error) {
	id := uuid.NewString()
	query := `INSERT INTO waitlist (id, owner_id, name, description) VALUES (:id, :ownerId, :name, :description)`
	err := ExecNamed(ctx, ws.DB(), query, map[string]any{
		"id":          id,
		"ownerId":     wl.OwnerId,
		"name":        wl.Name,
		"description": wl.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add waitlist: %w", err)
	}
	return ws.GetWaitlistById(ctx, id)
}

func (ws *waitlistStore) GetWaitlistById(ctx context.Context, id string) (*entity.Waitlist, error) {
	query := `SELECT * FROM waitlist WHERE id = :id`
	wl, err := QueryNamedOne[entity.Waitlist](ctx, ws.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.WaitlistNotFound
		}
		return nil, fmt.Errorf("failed to get waitlist: %w", err)
	}
	return &wl, nil
}

func (ws *waitlistStore) DeleteWaitlistById(ctx context.Context, id string) error {
	query := `DELETE FROM waitlist WHERE id = :id`
	ra, err := ExecNamedRowsAffected(ctx, ws.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete waitlist: %w", err)
	}
	if ra == 0 {
		return gerr.WaitlistNotFound
	}
	return nil
}

func (ws *waitlistStore) UpdateSettings(ctx context.Context, id string, settings []byte) error {
	// An identical write within the same second affects zero rows; callers
	// check existence before updating.
	query := `UPDATE waitlist SET settings = :settings, updated_at = :updatedAt WHERE id = :id`
	err := ExecNamed(ctx, ws.DB(), query, map[string]any{
		"id":        id,
		"settings":  sql.NullString{String: string(settings), Valid: settings != nil},
		"updatedAt": ws.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to update waitlist settings: %w", err)
	}
	return nil
}
