package entity

import (
	"time"
)

// BaseSimple holds the columns every append-only table carries.
type BaseSimple struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
