package entity

import (
	"database/sql"
	"time"
)

// Account represents the account table. Rows are written by the external auth library.
type Account struct {
	Id        string         `db:"id"`
	Email     string         `db:"email"`
	Name      sql.NullString `db:"name"`
	Payment   bool           `db:"payment"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
