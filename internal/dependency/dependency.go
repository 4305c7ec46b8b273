package dependency

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/jekabolt/waitlister/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Waitlist interface {
		// ListWaitlists returns every waitlist owned by the account, newest first.
		ListWaitlists(ctx context.Context, ownerId string) ([]entity.Waitlist, error)
		// AddWaitlist creates a waitlist with a fresh id and empty settings.
		AddWaitlist(ctx context.Context, wl *entity.WaitlistInsert) (*entity.Waitlist, error)
		// GetWaitlistById returns gerr.WaitlistNotFound when the id is unknown.
		GetWaitlistById(ctx context.Context, id string) (*entity.Waitlist, error)
		// DeleteWaitlistById removes the waitlist and, by cascade, its entries.
		DeleteWaitlistById(ctx context.Context, id string) error
		// UpdateSettings replaces the settings document and refreshes updated_at.
		UpdateSettings(ctx context.Context, id string, settings []byte) error
	}

	Entries interface {
		// GetEntryByEmail returns sql.ErrNoRows wrapped when the email has not joined.
		GetEntryByEmail(ctx context.Context, waitlistId, email string) (*entity.WaitlistEntry, error)
		// AddEntry inserts a new entry, returning gerr.ErrAlreadyJoined on a unique violation.
		AddEntry(ctx context.Context, e *entity.WaitlistEntryInsert) (*entity.WaitlistEntry, error)
		// GetEntriesPaged returns one page of entries and the total count matching the filter.
		GetEntriesPaged(ctx context.Context, f *entity.EntriesFilter) ([]entity.WaitlistEntry, int, error)
	}

	Analytics interface {
		CountEntries(ctx context.Context, waitlistId string) (int, error)
		// DailyGrowth returns per-day counts for entries created at or after since.
		DailyGrowth(ctx context.Context, waitlistId string, since time.Time) ([]entity.DailySignups, error)
		RecentEntries(ctx context.Context, waitlistId string, limit int) ([]entity.WaitlistEntry, error)
	}

	Accounts interface {
		GetAccountById(ctx context.Context, id string) (*entity.Account, error)
		// GetAccountByEmail matches case-insensitively.
		GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
		SetPayment(ctx context.Context, accountId string, paid bool) error
	}

	Payments interface {
		// UpsertPendingPayment inserts or updates the pending payment keyed by email.
		UpsertPendingPayment(ctx context.Context, pp *entity.PendingPaymentInsert) error
		GetPendingPaymentByEmail(ctx context.Context, email string) (*entity.PendingPayment, error)
		DeletePendingPayment(ctx context.Context, id string) error
	}

	Repository interface {
		Waitlist() Waitlist
		Entries() Entries
		Analytics() Analytics
		Accounts() Accounts
		Payments() Payments
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Ping(ctx context.Context) error
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	FileStore interface {
		// UploadImage stores an image under the account's folder and returns its public URL.
		UploadImage(ctx context.Context, accountId string, r io.Reader, size int64, contentType string) (*entity.UploadedImage, error)
	}

	Mailer interface {
		SendJoinConfirmation(ctx context.Context, to string, jc *entity.JoinConfirmation) error
		Enabled() bool
	}
)
