package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"movie-booking-service/internal/module/wallet/models/entity"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/log"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// db
	PushTransactionAndUpdateBalance(ctx context.Context, trx entity.WalletTransaction) error
	FindWalletByUserID(ctx context.Context, userID int64) (entity.Wallet, error)
	ListTransactions(ctx context.Context, userID int64) ([]entity.WalletTransaction, error)
	RedeemLoyaltyPointsAndUpdateWallet(ctx context.Context, userID int64, points int) error
	AggregateVendorRevenue(ctx context.Context, from time.Time, to time.Time) ([]entity.VendorRevenue, error)
	HasPayoutForPeriod(ctx context.Context, vendorID int64, remark string) (bool, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// PushTransactionAndUpdateBalance implements Repositories. The balance
// adjustment and the transaction append happen inside one database
// transaction. Debits are a single conditional update so the affordability
// check and the subtraction cannot be split across an interleaving window:
// zero rows affected means insufficient balance.
func (r *repositories) PushTransactionAndUpdateBalance(ctx context.Context, trx entity.WalletTransaction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	if trx.Type == entity.TransactionTypeDebit {
		res, err := tx.ExecContext(ctx, `
			UPDATE wallets
			SET balance = ROUND((balance - $1)::numeric, 2), updated_at = NOW()
			WHERE user_id = $2 AND balance >= $1
		`, trx.Amount, trx.UserID)
		if err != nil {
			tx.Rollback()
			return errors.InternalServerError("error update wallet balance")
		}
		affected, err := res.RowsAffected()
		if err != nil {
			tx.Rollback()
			return errors.InternalServerError("error update wallet balance")
		}
		if affected == 0 {
			tx.Rollback()
			return errors.UnprocessableEntity("insufficient balance")
		}
	} else {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO wallets (user_id, balance)
			VALUES ($1, ROUND($2::numeric, 2))
			ON CONFLICT (user_id)
			DO UPDATE SET balance = ROUND((wallets.balance + $2)::numeric, 2), updated_at = NOW()
		`, trx.UserID, trx.Amount)
		if err != nil {
			tx.Rollback()
			return errors.InternalServerError("error update wallet balance")
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO wallet_transactions (user_id, amount, type, source, remark)
		VALUES ($1, $2, $3, $4, $5)
	`, trx.UserID, trx.Amount, trx.Type, trx.Source, trx.Remark)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error append wallet transaction")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// FindWalletByUserID implements Repositories. A missing wallet reads as a
// zero balance rather than an error.
func (r *repositories) FindWalletByUserID(ctx context.Context, userID int64) (entity.Wallet, error) {
	query := `SELECT user_id, balance, created_at, updated_at FROM wallets WHERE user_id = $1`
	var wallet entity.Wallet
	err := r.db.GetContext(ctx, &wallet, query, userID)
	if err == sql.ErrNoRows {
		return entity.Wallet{UserID: userID, Balance: 0}, nil
	}
	if err != nil {
		return entity.Wallet{}, errors.InternalServerError("error find wallet by user id")
	}
	return wallet, nil
}

// ListTransactions implements Repositories.
func (r *repositories) ListTransactions(ctx context.Context, userID int64) ([]entity.WalletTransaction, error) {
	query := `
		SELECT id, user_id, amount, type, source, remark, created_at
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	var trxs []entity.WalletTransaction
	err := r.db.SelectContext(ctx, &trxs, query, userID)
	if err != nil {
		return nil, errors.InternalServerError("error list wallet transactions")
	}
	return trxs, nil
}

// RedeemLoyaltyPointsAndUpdateWallet implements Repositories. Loyalty
// points live on the users row; the point debit and the wallet credit are
// one multi-table transaction with rollback on any failed step. Points
// convert 1:1 into wallet currency.
func (r *repositories) RedeemLoyaltyPointsAndUpdateWallet(ctx context.Context, userID int64, points int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE users
		SET loyalty_points = loyalty_points - $1
		WHERE id = $2 AND loyalty_points >= $1
	`, points, userID)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error deduct loyalty points")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error deduct loyalty points")
	}
	if affected == 0 {
		tx.Rollback()
		return errors.UnprocessableEntity("insufficient loyalty points")
	}

	amount := float64(points)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, ROUND($2::numeric, 2))
		ON CONFLICT (user_id)
		DO UPDATE SET balance = ROUND((wallets.balance + $2)::numeric, 2), updated_at = NOW()
	`, userID, amount)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error update wallet balance")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO wallet_transactions (user_id, amount, type, source, remark)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, amount, entity.TransactionTypeCredit, entity.TransactionSourceLoyalty, "loyalty points redemption")
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error append wallet transaction")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// AggregateVendorRevenue implements Repositories. Gross revenue per vendor
// over the period, counting only confirmed bookings with completed payment
// for shows that have completed.
func (r *repositories) AggregateVendorRevenue(ctx context.Context, from time.Time, to time.Time) ([]entity.VendorRevenue, error) {
	query := `
		SELECT s.vendor_id AS vendor_id, COALESCE(SUM(b.total_amount), 0) AS gross
		FROM bookings b
		JOIN shows s ON s.id = b.show_id
		WHERE b.status = 'confirmed'
		  AND b.payment_status = 'completed'
		  AND s.status = 'completed'
		  AND b.created_at >= $1 AND b.created_at < $2
		GROUP BY s.vendor_id
	`
	var rows []entity.VendorRevenue
	err := r.db.SelectContext(ctx, &rows, query, from, to)
	if err != nil {
		return nil, errors.InternalServerError("error aggregate vendor revenue")
	}
	return rows, nil
}

// HasPayoutForPeriod implements Repositories. The payout remark doubles as
// the idempotency key for a payout run.
func (r *repositories) HasPayoutForPeriod(ctx context.Context, vendorID int64, remark string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM wallet_transactions
			WHERE user_id = $1 AND source = $2 AND remark = $3
		)
	`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, vendorID, entity.TransactionSourcePayout, remark)
	if err != nil {
		return false, errors.InternalServerError("error check payout for period")
	}
	return exists, nil
}
