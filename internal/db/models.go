package db

import (
	"database/sql"
)

// Entry is one row of the key/value table
type Entry struct {
	Key       string
	Value     string
	UpdatedAt sql.NullTime
}
