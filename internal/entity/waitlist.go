package entity

import (
	"database/sql"
	"time"
)

// Waitlist represents the waitlist table
type Waitlist struct {
	Id          string         `db:"id"`
	OwnerId     string         `db:"owner_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	// Settings holds the raw settings document exactly as it was submitted.
	Settings  sql.NullString `db:"settings"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// WaitlistInsert is used to create a new waitlist
type WaitlistInsert struct {
	OwnerId     string
	Name        string
	Description sql.NullString
}

// IsOwnedBy reports whether the waitlist belongs to the given account.
func (w *Waitlist) IsOwnedBy(accountId string) bool {
	return w != nil && w.OwnerId == accountId
}

// WaitlistEntry represents a signup recorded against a waitlist
type WaitlistEntry struct {
	Id         string         `db:"id"`
	WaitlistId string         `db:"waitlist_id"`
	Email      string         `db:"email"`
	Name       sql.NullString `db:"name"`
	CreatedAt  time.Time      `db:"created_at"`
}

// WaitlistEntryInsert is used to add an entry. Email must already be normalized.
type WaitlistEntryInsert struct {
	WaitlistId string
	Email      string
	Name       sql.NullString
}
