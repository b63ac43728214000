package entity

import (
	"database/sql"
	"time"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

const (
	TransactionSourceLoyalty = "loyalty"
	TransactionSourceRefund  = "refund"
	TransactionSourceTopup   = "topup"
	TransactionSourceBooking = "booking"
	TransactionSourcePayout  = "payout"
)

type Wallet struct {
	UserID    int64        `db:"user_id"`
	Balance   float64      `db:"balance"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

// WalletTransaction rows are append-only. The wallet balance must always
// equal the signed sum of its transactions; every balance mutation is
// paired with a transaction append inside the same database transaction.
type WalletTransaction struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Amount    float64   `db:"amount"`
	Type      string    `db:"type"`
	Source    string    `db:"source"`
	Remark    string    `db:"remark"`
	CreatedAt time.Time `db:"created_at"`
}

type VendorRevenue struct {
	VendorID int64   `db:"vendor_id"`
	Gross    float64 `db:"gross"`
}
