package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	PaymentMethodWallet = "wallet"
	PaymentMethodStripe = "stripe"
	PaymentMethodOnline = "online"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is the aggregate root tying a user's seats, amounts and payment
// sub-state together. Amount invariant: total_amount equals sub_total +
// convenience_fee - movie_pass_discount - coupon_discount + donation
// within a rounding tolerance of 1 unit.
type Booking struct {
	ID                uuid.UUID      `db:"id"`
	BookingCode       string         `db:"booking_code"`
	ShowID            int64          `db:"show_id"`
	UserID            int64          `db:"user_id"`
	SeatNumbers       pq.StringArray `db:"seat_numbers"`
	SubTotal          float64        `db:"sub_total"`
	ConvenienceFee    float64        `db:"convenience_fee"`
	Donation          float64        `db:"donation"`
	CouponDiscount    float64        `db:"coupon_discount"`
	MoviePassDiscount float64        `db:"movie_pass_discount"`
	TotalDiscount     float64        `db:"total_discount"`
	TotalAmount       float64        `db:"total_amount"`
	PaymentMethod     string         `db:"payment_method"`
	PaymentID         sql.NullString `db:"payment_id"`
	PaymentStatus     string         `db:"payment_status"`
	Status            string         `db:"status"`
	QRCode            string         `db:"qr_code"`
	ExpiresAt         sql.NullTime   `db:"expires_at"`
	Reason            sql.NullString `db:"reason"`
	TaskID            sql.NullString `db:"task_id"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         sql.NullTime   `db:"updated_at"`
}

// ShowInfo is the slice of the shows row the orchestrator needs.
type ShowInfo struct {
	ID        int64     `db:"id"`
	TheaterID int64     `db:"theater_id"`
	VendorID  int64     `db:"vendor_id"`
	StartTime time.Time `db:"start_time"`
	Status    string    `db:"status"`
}
