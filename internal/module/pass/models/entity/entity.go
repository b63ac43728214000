package entity

import (
	"database/sql"
	"time"
)

const (
	PassStatusActive   = "active"
	PassStatusInactive = "inactive"
)

type MoviePass struct {
	UserID    int64        `db:"user_id"`
	Status    string       `db:"status"`
	ExpiresAt time.Time    `db:"expires_at"`
	TaskID    string       `db:"task_id"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}
