package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	waitlistColumns = []string{"id", "owner_id", "name", "description", "settings", "created_at", "updated_at"}
	entryColumns    = []string{"id", "waitlist_id", "email", "name", "created_at"}
)

func newMockStore(t *testing.T) (*MYSQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewWithDB(sqlx.NewDb(db, "mysql")), mock
}

func TestWaitlist_GetWaitlistById(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM waitlist WHERE id = \?`).
		WithArgs("W1").
		WillReturnRows(sqlmock.NewRows(waitlistColumns).
			AddRow("W1", "acc-1", "Beta", nil, `{"headerText":"hi"}`, now, now))

	wl, err := ms.Waitlist().GetWaitlistById(ctx, "W1")
	require.NoError(t, err)
	assert.Equal(t, "Beta", wl.Name)
	assert.True(t, wl.IsOwnedBy("acc-1"))
	assert.False(t, wl.Description.Valid)
	assert.Equal(t, `{"headerText":"hi"}`, wl.Settings.String)

	mock.ExpectQuery(`SELECT \* FROM waitlist WHERE id = \?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(waitlistColumns))

	_, err = ms.Waitlist().GetWaitlistById(ctx, "missing")
	assert.ErrorIs(t, err, gerr.ErrNotFound)
}

func TestWaitlist_ListWaitlists(t *testing.T) {
	ms, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM waitlist WHERE owner_id = \? ORDER BY created_at DESC`).
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows(waitlistColumns).
			AddRow("W2", "acc-1", "Gamma", "second", nil, now, now).
			AddRow("W1", "acc-1", "Beta", nil, nil, now, now))

	wls, err := ms.Waitlist().ListWaitlists(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, wls, 2)
	assert.Equal(t, "W2", wls[0].Id)
	assert.Equal(t, "second", wls[0].Description.String)
}

func TestWaitlist_ListWaitlistsEmpty(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM waitlist WHERE owner_id = \?`).
		WithArgs("acc-2").
		WillReturnRows(sqlmock.NewRows(waitlistColumns))

	wls, err := ms.Waitlist().ListWaitlists(context.Background(), "acc-2")
	require.NoError(t, err)
	assert.NotNil(t, wls)
	assert.Empty(t, wls)
}

func TestWaitlist_AddWaitlist(t *testing.T) {
	ms, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO waitlist \(id, owner_id, name, description\) VALUES \(\?, \?, \?, \?\)`).
		WithArgs(sqlmock.AnyArg(), "acc-1", "Beta", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM waitlist WHERE id = \?`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(waitlistColumns).
			AddRow("W1", "acc-1", "Beta", nil, nil, now, now))

	wl, err := ms.Waitlist().AddWaitlist(context.Background(), &entity.WaitlistInsert{
		OwnerId: "acc-1",
		Name:    "Beta",
	})
	require.NoError(t, err)
	assert.Equal(t, "Beta", wl.Name)
	assert.False(t, wl.Settings.Valid)
}

func TestWaitlist_DeleteWaitlistById(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM waitlist WHERE id = \?`).
		WithArgs("W1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, ms.Waitlist().DeleteWaitlistById(ctx, "W1"))

	mock.ExpectExec(`DELETE FROM waitlist WHERE id = \?`).
		WithArgs("W1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, ms.Waitlist().DeleteWaitlistById(ctx, "W1"), gerr.WaitlistNotFound)
}

func TestWaitlist_UpdateSettingsKeepsBytes(t *testing.T) {
	ms, mock := newMockStore(t)
	doc := `{"layout":"centered", "buttonColor":"#000000","showSocialProof":true}`

	mock.ExpectExec(`UPDATE waitlist SET settings = \?, updated_at = \? WHERE id = \?`).
		WithArgs(doc, sqlmock.AnyArg(), "W1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, ms.Waitlist().UpdateSettings(context.Background(), "W1", []byte(doc)))
}

func TestWaitlist_UpdateSettingsUnchangedRow(t *testing.T) {
	ms, mock := newMockStore(t)
	doc := `{"layout":"centered"}`

	// same document again within the same second: MySQL changes no row
	mock.ExpectExec(`UPDATE waitlist SET settings = \?, updated_at = \? WHERE id = \?`).
		WithArgs(doc, sqlmock.AnyArg(), "W1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, ms.Waitlist().UpdateSettings(context.Background(), "W1", []byte(doc)))
}

func TestEntries_AddEntryDuplicate(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO waitlist_entry`).
		WithArgs(sqlmock.AnyArg(), "W1", "a@x.com", nil).
		WillReturnError(&mysql.MySQLError{Number: mysqlErrDuplicateEntry, Message: "Duplicate entry"})

	_, err := ms.Entries().AddEntry(context.Background(), &entity.WaitlistEntryInsert{
		WaitlistId: "W1",
		Email:      "a@x.com",
	})
	assert.ErrorIs(t, err, gerr.ErrAlreadyJoined)
}

func TestEntries_AddEntry(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO waitlist_entry \(id, waitlist_id, email, name\) VALUES \(\?, \?, \?, \?\)`).
		WithArgs(sqlmock.AnyArg(), "W1", "a@x.com", "Ann").
		WillReturnResult(sqlmock.NewResult(0, 1))

	e, err := ms.Entries().AddEntry(context.Background(), &entity.WaitlistEntryInsert{
		WaitlistId: "W1",
		Email:      "a@x.com",
		Name:       sql.NullString{String: "Ann", Valid: true},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, e.Id)
	assert.Equal(t, "a@x.com", e.Email)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestEntries_GetEntryByEmailMissing(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM waitlist_entry WHERE waitlist_id = \? AND email = \?`).
		WithArgs("W1", "b@x.com").
		WillReturnRows(sqlmock.NewRows(entryColumns))

	_, err := ms.Entries().GetEntryByEmail(context.Background(), "W1", "b@x.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestEntries_GetEntriesPagedSearch(t *testing.T) {
	ms, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM waitlist_entry WHERE waitlist_id = \? AND LOWER\(email\) LIKE \?`).
		WithArgs("W1", `%foo\_bar%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(`SELECT \* FROM waitlist_entry WHERE waitlist_id = \? AND LOWER\(email\) LIKE \? ORDER BY created_at DESC LIMIT \? OFFSET \?`).
		WithArgs("W1", `%foo\_bar%`, 20, 20).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow("E21", "W1", "foo_bar@x.com", nil, now))

	entries, total, err := ms.Entries().GetEntriesPaged(context.Background(), &entity.EntriesFilter{
		WaitlistId: "W1",
		Search:     "foo_bar",
		Limit:      20,
		Offset:     20,
	})
	require.NoError(t, err)
	assert.Equal(t, 21, total)
	require.Len(t, entries, 1)
	assert.Equal(t, "foo_bar@x.com", entries[0].Email)
}

func TestAnalytics_DailyGrowth(t *testing.T) {
	ms, mock := newMockStore(t)
	since := time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT DATE_FORMAT\(DATE\(created_at\), '%Y-%m-%d'\) AS day, COUNT\(\*\) AS count\s+FROM waitlist_entry\s+WHERE waitlist_id = \? AND created_at >= \?\s+GROUP BY DATE\(created_at\)\s+ORDER BY DATE\(created_at\) ASC`).
		WithArgs("W1", since).
		WillReturnRows(sqlmock.NewRows([]string{"day", "count"}).
			AddRow("2026-10-01", 3).
			AddRow("2026-10-04", 1))

	growth, err := ms.Analytics().DailyGrowth(context.Background(), "W1", since)
	require.NoError(t, err)
	assert.Equal(t, []entity.DailySignups{
		{Date: "2026-10-01", Count: 3},
		{Date: "2026-10-04", Count: 1},
	}, growth)
}

func TestPayments_UpsertPendingPayment(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO pending_payment .* ON DUPLICATE KEY UPDATE`).
		WithArgs(sqlmock.AnyArg(), "new@x.com", "cust_1", "20", "USD", `{"id":"evt_1"}`, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := ms.Payments().UpsertPendingPayment(context.Background(), &entity.PendingPaymentInsert{
		Email:      "new@x.com",
		CustomerId: sql.NullString{String: "cust_1", Valid: true},
		Amount:     decimal.NullDecimal{Decimal: decimal.NewFromInt(20), Valid: true},
		Currency:   sql.NullString{String: "USD", Valid: true},
		Payload:    `{"id":"evt_1"}`,
	})
	assert.NoError(t, err)
}

func TestAccounts_GetAccountByEmailMissing(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM account WHERE LOWER\(email\) = LOWER\(\?\)`).
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "payment", "created_at", "updated_at"}))

	_, err := ms.Accounts().GetAccountByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, gerr.AccountNotFound)
}

func TestTx_RetriesDeadlock(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE account SET payment = \?`).
		WillReturnError(&mysql.MySQLError{Number: mysqlErrDeadlock, Message: "Deadlock found"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE account SET payment = \?`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	calls := 0
	err := ms.Tx(context.Background(), func(ctx context.Context, rep dependency.Repository) error {
		calls++
		return rep.Accounts().SetPayment(ctx, "acc-1", true)
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestTx_RollbackOnError(t *testing.T) {
	ms, mock := newMockStore(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := ms.Tx(context.Background(), func(ctx context.Context, rep dependency.Repository) error {
		assert.True(t, rep.InTx())
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
