package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
)

type entriesStore struct {
	*MYSQLStore
}

// Entries returns an object implementing Entries interface
func (ms *MYSQLStore) Entries() dependency.Entries {
	return &entriesStore{
		MYSQLStore: ms,
	}
}

func (es *entriesStore) GetEntryByEmail(ctx context.Context, waitlistId, email string) (*entity.WaitlistEntry, error) {
	query := `SELECT * FROM waitlist_entry WHERE waitlist_id = :waitlistId AND email = :email`
	e, err := QueryNamedOne[entity.WaitlistEntry](ctx, es.DB(), query, map[string]any{
		"waitlistId": waitlistId,
		"email":      email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get waitlist entry: %w", err)
	}
	return &e, nil
}

// AddEntry inserts the entry. The unique key on (waitlist_id, email) turns a
// concurrent duplicate into gerr.ErrAlreadyJoined.
func (es *entriesStore) AddEntry(ctx context.Context, e *entity.WaitlistEntryInsert) (*entity.WaitlistEntry, error) {
	id := uuid.NewString()
	// created_at comes from the column default so that DATE(created_at)
	// follows the database session's calendar day.
	query := `INSERT INTO waitlist_entry (id, waitlist_id, email, name) VALUES (:id, :waitlistId, :email, :name)`
	err := ExecNamed(ctx, es.DB(), query, map[string]any{
		"id":         id,
		"waitlistId": e.WaitlistId,
		"email":      e.Email,
		"name":       e.Name,
	})
	if err != nil {
		if es.IsErrUniqueViolation(err) {
			return nil, gerr.ErrAlreadyJoined
		}
		return nil, fmt.Errorf("failed to add waitlist entry: %w", err)
	}
	return &entity.WaitlistEntry{
		Id:         id,
		WaitlistId: e.WaitlistId,
		Email:      e.Email,
		Name:       e.Name,
		CreatedAt:  es.Now().UTC(),
	}, nil
}

func (es *entriesStore) GetEntriesPaged(ctx context.Context, f *entity.EntriesFilter) ([]entity.WaitlistEntry, int, error) {
	where := `WHERE waitlist_id = :waitlistId`
	params := map[string]any{
		"waitlistId": f.WaitlistId,
		"limit":      f.Limit,
		"offset":     f.Offset,
	}
	if f.Search != "" {
		where += ` AND LOWER(email) LIKE :search`
		params["search"] = "%" + escapeLike(f.Search) + "%"
	}

	total, err := QueryCountNamed(ctx, es.DB(), `SELECT COUNT(*) FROM waitlist_entry `+where, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count waitlist entries: %w", err)
	}

	query := `SELECT * FROM waitlist_entry ` + where + ` ORDER BY created_at DESC LIMIT :limit OFFSET :offset`
	entries, err := QueryListNamed[entity.WaitlistEntry](ctx, es.DB(), query, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get waitlist entries: %w", err)
	}
	return entries, total, nil
}
