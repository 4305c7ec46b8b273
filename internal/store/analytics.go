package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/entity"
)

type analyticsStore struct {
	*MYSQLStore
}

// Analytics returns an object implementing Analytics interface
func (ms *MYSQLStore) Analytics() dependency.Analytics {
	return &analyticsStore{
		MYSQLStore: ms,
	}
}

func (as *analyticsStore) CountEntries(ctx context.Context, waitlistId string) (int, error) {
	query := `SELECT COUNT(*) FROM waitlist_entry WHERE waitlist_id = :waitlistId`
	n, err := QueryCountNamed(ctx, as.DB(), query, map[string]any{
		"waitlistId": waitlistId,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

// DailyGrowth groups by the database's local calendar day. Days without
// signups are not returned.
func (as *analyticsStore) DailyGrowth(ctx context.Context, waitlistId string, since time.Time) ([]entity.DailySignups, error) {
	query := `
		SELECT DATE_FORMAT(DATE(created_at), '%Y-%m-%d') AS day, COUNT(*) AS count
		FROM waitlist_entry
		WHERE waitlist_id = :waitlistId AND created_at >= :since
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at) ASC`
	growth, err := QueryListNamed[entity.DailySignups](ctx, as.DB(), query, map[string]any{
		"waitlistId": waitlistId,
		"since":      since,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get daily growth: %w", err)
	}
	return growth, nil
}

func (as *analyticsStore) RecentEntries(ctx context.Context, waitlistId string, limit int) ([]entity.WaitlistEntry, error) {
	query := `SELECT * FROM waitlist_entry WHERE waitlist_id = :waitlistId ORDER BY created_at DESC LIMIT :limit`
	entries, err := QueryListNamed[entity.WaitlistEntry](ctx, as.DB(), query, map[string]any{
		"waitlistId": waitlistId,
		"limit":      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get recent entries: %w", err)
	}
	return entries, nil
}
