package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"

	"movie-booking-service/config"
	"movie-booking-service/internal/module/wallet/models/entity"
	"movie-booking-service/internal/module/wallet/models/request"
	"movie-booking-service/internal/module/wallet/models/response"
	"movie-booking-service/internal/module/wallet/repositories"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/helpers"
	"movie-booking-service/internal/pkg/log"
)

type usecase struct {
	repo        repositories.Repositories
	log         log.Logger
	publisher   message.Publisher
	rs          *redsync.Redsync
	cfgPlatform *config.PlatformConfig
}

type Usecase interface {
	// http
	Balance(ctx context.Context, userID int64) (response.WalletBalance, error)
	Transactions(ctx context.Context, userID int64) ([]response.WalletTransaction, error)
	TopUp(ctx context.Context, userID int64, payload *request.TopUp) (response.WalletBalance, error)
	RedeemLoyaltyPoints(ctx context.Context, userID int64, payload *request.RedeemLoyaltyPoints) error
	// cross-module
	PushTransaction(ctx context.Context, trx entity.WalletTransaction) error
	// scheduler
	VendorPayout(ctx context.Context, payload *request.VendorPayout) error
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher, rs *redsync.Redsync, cfgPlatform *config.PlatformConfig) Usecase {
	return &usecase{
		repo:        repo,
		log:         log,
		publisher:   publisher,
		rs:          rs,
		cfgPlatform: cfgPlatform,
	}
}

func (u *usecase) Balance(ctx context.Context, userID int64) (response.WalletBalance, error) {
	wallet, err := u.repo.FindWalletByUserID(ctx, userID)
	if err != nil {
		return response.WalletBalance{}, err
	}
	return response.WalletBalance{
		UserID:  wallet.UserID,
		Balance: wallet.Balance,
	}, nil
}

func (u *usecase) Transactions(ctx context.Context, userID int64) ([]response.WalletTransaction, error) {
	trxs, err := u.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.WalletTransaction, 0, len(trxs))
	for _, trx := range trxs {
		resp = append(resp, response.WalletTransaction{
			Amount:    trx.Amount,
			Type:      trx.Type,
			Source:    trx.Source,
			Remark:    trx.Remark,
			CreatedAt: trx.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}

func (u *usecase) TopUp(ctx context.Context, userID int64, payload *request.TopUp) (response.WalletBalance, error) {
	trx := entity.WalletTransaction{
		UserID: userID,
		Amount: helpers.RoundCurrency(payload.Amount),
		Type:   entity.TransactionTypeCredit,
		Source: entity.TransactionSourceTopup,
		Remark: "wallet top up",
	}
	if err := u.repo.PushTransactionAndUpdateBalance(ctx, trx); err != nil {
		return response.WalletBalance{}, err
	}

	return u.Balance(ctx, userID)
}

func (u *usecase) RedeemLoyaltyPoints(ctx context.Context, userID int64, payload *request.RedeemLoyaltyPoints) error {
	return u.repo.RedeemLoyaltyPointsAndUpdateWallet(ctx, userID, payload.Points)
}

// PushTransaction exposes the atomic ledger write to the booking and show
// modules (debits for wallet payments, credits for refunds and revenue).
func (u *usecase) PushTransaction(ctx context.Context, trx entity.WalletTransaction) error {
	trx.Amount = helpers.RoundCurrency(trx.Amount)
	if trx.Amount <= 0 {
		return errors.BadRequest("transaction amount must be positive")
	}
	return u.repo.PushTransactionAndUpdateBalance(ctx, trx)
}

// VendorPayout settles the previous month (or the period named in the
// payload) for every vendor with completed-show revenue: vendor wallets are
// credited net of the platform commission and the platform admin wallet is
// debited the same amount. The payout remark is the idempotency key per
// vendor per period, so a run that dies partway resumes without double
// paying; a redsync mutex keeps concurrent instances from running the same
// period at once. A single failed transfer is logged and the loop
// continues.
func (u *usecase) VendorPayout(ctx context.Context, payload *request.VendorPayout) error {
	period := payload.Period
	if period == "" {
		period = time.Now().UTC().AddDate(0, -1, 0).Format("2006-01")
	}

	mutex := u.rs.NewMutex("vendor_payout:"+period, redsync.WithExpiry(10*time.Minute))
	if err := mutex.LockContext(ctx); err != nil {
		u.log.Warn(ctx, "vendor payout already running for period", period)
		return nil
	}
	defer mutex.UnlockContext(ctx)

	from, err := time.Parse("2006-01", period)
	if err != nil {
		return errors.BadRequest("invalid payout period")
	}
	to := from.AddDate(0, 1, 0)

	revenues, err := u.repo.AggregateVendorRevenue(ctx, from, to)
	if err != nil {
		return err
	}

	remark := fmt.Sprintf("vendor payout %s", period)
	for _, rev := range revenues {
		paid, err := u.repo.HasPayoutForPeriod(ctx, rev.VendorID, remark)
		if err != nil {
			u.log.Error(ctx, "error check payout state", rev.VendorID, err)
			continue
		}
		if paid {
			continue
		}

		net := helpers.RoundCurrency(rev.Gross * (1 - u.cfgPlatform.CommissionRate))
		if net <= 0 {
			continue
		}

		err = u.repo.PushTransactionAndUpdateBalance(ctx, entity.WalletTransaction{
			UserID: rev.VendorID,
			Amount: net,
			Type:   entity.TransactionTypeCredit,
			Source: entity.TransactionSourcePayout,
			Remark: remark,
		})
		if err != nil {
			u.log.Error(ctx, "error credit vendor payout", rev.VendorID, err)
			continue
		}

		err = u.repo.PushTransactionAndUpdateBalance(ctx, entity.WalletTransaction{
			UserID: u.cfgPlatform.AdminUserID,
			Amount: net,
			Type:   entity.TransactionTypeDebit,
			Source: entity.TransactionSourcePayout,
			Remark: fmt.Sprintf("%s to vendor %d", remark, rev.VendorID),
		})
		if err != nil {
			u.log.Error(ctx, "error debit platform wallet for payout", rev.VendorID, err)
		}

		u.notify(ctx, rev.VendorID, fmt.Sprintf("monthly payout of %.2f credited to your wallet", net))
	}

	return nil
}

func (u *usecase) notify(ctx context.Context, userID int64, msg string) {
	payload, _ := json.Marshal(request.NotificationMessage{
		UserID:  userID,
		Message: msg,
	})
	if err := u.publisher.Publish("notification", message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish notification", err)
	}
}
