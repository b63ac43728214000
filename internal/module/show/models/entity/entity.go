package entity

import (
	"database/sql"
	"time"
)

const (
	ShowStatusScheduled = "scheduled"
	ShowStatusRunning   = "running"
	ShowStatusCompleted = "completed"
	ShowStatusCancelled = "cancelled"
)

const (
	SeatStatusAvailable = "available"
	SeatStatusPending   = "pending"
	SeatStatusBooked    = "booked"
)

type Show struct {
	ID        int64        `db:"id"`
	MovieID   int64        `db:"movie_id"`
	TheaterID int64        `db:"theater_id"`
	ScreenID  int64        `db:"screen_id"`
	VendorID  int64        `db:"vendor_id"`
	StartTime time.Time    `db:"start_time"`
	EndTime   time.Time    `db:"end_time"`
	Status    string       `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

// ShowSeat carries the per-show seat state machine. A seat number has at
// most one active state at a time; pending holds record the owning user
// and the hold timestamp so stale holds can be reclaimed past the TTL.
type ShowSeat struct {
	ID         int64         `db:"id"`
	ShowID     int64         `db:"show_id"`
	SeatNumber string        `db:"seat_number"`
	Status     string        `db:"status"`
	Price      float64       `db:"price"`
	HeldBy     sql.NullInt64 `db:"held_by"`
	HeldAt     sql.NullTime  `db:"held_at"`
}
