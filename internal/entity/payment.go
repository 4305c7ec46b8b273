package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// PendingPayment is a paid checkout for an email that has no account yet.
type PendingPayment struct {
	Id         string              `db:"id"`
	Email      string              `db:"email"`
	CustomerId sql.NullString      `db:"customer_id"`
	Amount     decimal.NullDecimal `db:"amount"`
	Currency   sql.NullString      `db:"currency"`
	Payload    string              `db:"payload"`
	CreatedAt  time.Time           `db:"created_at"`
	UpdatedAt  time.Time           `db:"updated_at"`
}

// PendingPaymentInsert holds the values upserted by the webhook receiver.
type PendingPaymentInsert struct {
	Email      string
	CustomerId sql.NullString
	Amount     decimal.NullDecimal
	Currency   sql.NullString
	Payload    string
}
