package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"movie-booking-service/config"
	"movie-booking-service/internal/module/show/models/entity"
	"movie-booking-service/internal/module/show/models/request"
	"movie-booking-service/internal/module/show/models/response"
	"movie-booking-service/internal/module/show/repositories"
	walletentity "movie-booking-service/internal/module/wallet/models/entity"
	walletusecases "movie-booking-service/internal/module/wallet/usecases"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/helpers"
	"movie-booking-service/internal/pkg/log"
	"movie-booking-service/internal/pkg/scheduler"
)

type usecase struct {
	repo         repositories.Repositories
	log          log.Logger
	publisher    message.Publisher
	walletUC     walletusecases.Usecase
	cfgScheduler *config.SchedulerConfig
}

type Usecase interface {
	// http
	CreateShow(ctx context.Context, vendorID int64, payload *request.CreateShow) (response.CreatedShow, error)
	SeatMap(ctx context.Context, showID int64) (response.SeatMap, error)
	SelectSeats(ctx context.Context, userID int64, payload *request.SelectSeats) (response.SeatHold, error)
	// cross-module
	ConfirmBookedSeats(ctx context.Context, showID int64, seatNumbers []string) error
	ReleaseSeats(ctx context.Context, showID int64, userID int64, seatNumbers []string) error
	// scheduler
	StartShow(ctx context.Context, payload *request.ShowTask) error
	CompleteShow(ctx context.Context, payload *request.ShowTask) error
	ReleaseExpiredSeats(ctx context.Context, payload *request.ShowTask) error
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher, walletUC walletusecases.Usecase, cfgScheduler *config.SchedulerConfig) Usecase {
	return &usecase{
		repo:         repo,
		log:          log,
		publisher:    publisher,
		walletUC:     walletUC,
		cfgScheduler: cfgScheduler,
	}
}

func (u *usecase) holdTTL() time.Duration {
	return time.Duration(u.cfgScheduler.SeatHoldTTLMinutes) * time.Minute
}

func (u *usecase) CreateShow(ctx context.Context, vendorID int64, payload *request.CreateShow) (response.CreatedShow, error) {
	if !payload.EndTime.After(payload.StartTime) {
		return response.CreatedShow{}, errors.BadRequest("show end time must be after start time")
	}

	show := entity.Show{
		MovieID:   payload.MovieID,
		TheaterID: payload.TheaterID,
		ScreenID:  payload.ScreenID,
		VendorID:  vendorID,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
	}
	showID, err := u.repo.CreateShow(ctx, show, payload.SeatNumbers, payload.SeatPrice)
	if err != nil {
		return response.CreatedShow{}, err
	}

	taskPayload, _ := json.Marshal(request.ShowTask{ShowID: showID})
	if _, err := u.repo.SetTaskScheduler(ctx, helpers.DurationCalculation(payload.StartTime), scheduler.TypeStartShow, taskPayload); err != nil {
		u.log.Error(ctx, "error schedule start show task", showID, err)
	}
	if _, err := u.repo.SetTaskScheduler(ctx, helpers.DurationCalculation(payload.EndTime), scheduler.TypeCompleteShow, taskPayload); err != nil {
		u.log.Error(ctx, "error schedule complete show task", showID, err)
	}

	return response.CreatedShow{ShowID: showID}, nil
}

func (u *usecase) SeatMap(ctx context.Context, showID int64) (response.SeatMap, error) {
	show, err := u.repo.FindShowByID(ctx, showID)
	if err != nil {
		return response.SeatMap{}, err
	}

	seats, err := u.repo.ListSeats(ctx, showID)
	if err != nil {
		return response.SeatMap{}, err
	}

	resp := response.SeatMap{
		ShowID: show.ID,
		Status: show.Status,
		Seats:  make([]response.Seat, 0, len(seats)),
	}
	staleBefore := time.Now().UTC().Add(-u.holdTTL())
	for _, seat := range seats {
		status := seat.Status
		// a stale pending hold reads as available even before the reaper runs
		if status == entity.SeatStatusPending && seat.HeldAt.Valid && seat.HeldAt.Time.Before(staleBefore) {
			status = entity.SeatStatusAvailable
		}
		resp.Seats = append(resp.Seats, response.Seat{
			SeatNumber: seat.SeatNumber,
			Status:     status,
			Price:      seat.Price,
		})
	}
	return resp, nil
}

// SelectSeats places a temporary hold on each requested seat. Each seat is
// one compare-and-set update; on contention the losing caller gets a
// conflict for the first seat that could not be taken. Seats won before
// the losing one stay pending and are reclaimed by the hold TTL.
func (u *usecase) SelectSeats(ctx context.Context, userID int64, payload *request.SelectSeats) (response.SeatHold, error) {
	show, err := u.repo.FindShowByID(ctx, payload.ShowID)
	if err != nil {
		return response.SeatHold{}, err
	}
	if show.Status != entity.ShowStatusScheduled {
		return response.SeatHold{}, errors.Conflict("show is not open for booking")
	}

	seen := make(map[string]struct{}, len(payload.SeatNumbers))
	unique := make([]string, 0, len(payload.SeatNumbers))
	for _, seatNumber := range payload.SeatNumbers {
		if seatNumber == "" {
			continue
		}
		if _, ok := seen[seatNumber]; !ok {
			seen[seatNumber] = struct{}{}
			unique = append(unique, seatNumber)
		}
	}
	if len(unique) == 0 {
		return response.SeatHold{}, errors.BadRequest("seat_numbers is required")
	}

	staleBefore := time.Now().UTC().Add(-u.holdTTL())
	for _, seatNumber := range unique {
		held, err := u.repo.HoldSeat(ctx, payload.ShowID, seatNumber, userID, staleBefore)
		if err != nil {
			return response.SeatHold{}, err
		}
		if !held {
			return response.SeatHold{}, errors.Conflict(fmt.Sprintf("seat %s is unavailable", seatNumber))
		}
	}

	taskPayload, _ := json.Marshal(request.ShowTask{ShowID: payload.ShowID})
	if _, err := u.repo.SetTaskScheduler(ctx, u.holdTTL(), scheduler.TypeReleaseExpiredSeats, taskPayload); err != nil {
		u.log.Error(ctx, "error schedule release expired seats task", payload.ShowID, err)
	}

	u.publishSeatUpdate(ctx, payload.ShowID, unique, entity.SeatStatusPending)

	expiresAt := time.Now().UTC().Add(u.holdTTL())
	return response.SeatHold{
		ShowID:      payload.ShowID,
		SeatNumbers: unique,
		ExpiresAt:   expiresAt.Format(time.RFC3339),
	}, nil
}

// ConfirmBookedSeats flips held seats to booked on behalf of the booking
// orchestrator. Idempotent.
func (u *usecase) ConfirmBookedSeats(ctx context.Context, showID int64, seatNumbers []string) error {
	if err := u.repo.ConfirmBookedSeats(ctx, showID, seatNumbers); err != nil {
		return err
	}
	u.publishSeatUpdate(ctx, showID, seatNumbers, entity.SeatStatusBooked)
	return nil
}

// ReleaseSeats returns a user's seats to the pool (cancellation path).
func (u *usecase) ReleaseSeats(ctx context.Context, showID int64, userID int64, seatNumbers []string) error {
	if err := u.repo.ReleaseSeatsByUser(ctx, showID, userID, seatNumbers); err != nil {
		return err
	}
	u.publishSeatUpdate(ctx, showID, seatNumbers, entity.SeatStatusAvailable)
	return nil
}

func (u *usecase) StartShow(ctx context.Context, payload *request.ShowTask) error {
	updated, err := u.repo.UpdateShowStatus(ctx, payload.ShowID, entity.ShowStatusScheduled, entity.ShowStatusRunning)
	if err != nil {
		return err
	}
	if !updated {
		u.log.Info(ctx, "start show skipped, show not in scheduled state", payload.ShowID)
	}
	return nil
}

// CompleteShow advances running shows to completed and credits the vendor
// wallet with the show's confirmed revenue. The conditional status update
// makes redelivery a no-op, so the credit happens at most once.
func (u *usecase) CompleteShow(ctx context.Context, payload *request.ShowTask) error {
	updated, err := u.repo.UpdateShowStatus(ctx, payload.ShowID, entity.ShowStatusRunning, entity.ShowStatusCompleted)
	if err != nil {
		return err
	}
	if !updated {
		u.log.Info(ctx, "complete show skipped, show not running", payload.ShowID)
		return nil
	}

	show, err := u.repo.FindShowByID(ctx, payload.ShowID)
	if err != nil {
		return err
	}
	revenue, err := u.repo.SumConfirmedRevenue(ctx, payload.ShowID)
	if err != nil {
		return err
	}
	if revenue <= 0 {
		return nil
	}

	return u.walletUC.PushTransaction(ctx, walletentity.WalletTransaction{
		UserID: show.VendorID,
		Amount: revenue,
		Type:   walletentity.TransactionTypeCredit,
		Source: walletentity.TransactionSourceBooking,
		Remark: fmt.Sprintf("revenue for show %d", payload.ShowID),
	})
}

func (u *usecase) ReleaseExpiredSeats(ctx context.Context, payload *request.ShowTask) error {
	staleBefore := time.Now().UTC().Add(-u.holdTTL())
	released, err := u.repo.ReleaseExpiredSeats(ctx, payload.ShowID, staleBefore)
	if err != nil {
		return err
	}
	if len(released) > 0 {
		u.publishSeatUpdate(ctx, payload.ShowID, released, entity.SeatStatusAvailable)
	}
	return nil
}

func (u *usecase) publishSeatUpdate(ctx context.Context, showID int64, seatNumbers []string, status string) {
	payload, _ := json.Marshal(request.SeatUpdateEvent{
		ShowID:      showID,
		SeatNumbers: seatNumbers,
		Status:      status,
	})
	if err := u.publisher.Publish("seat_update", message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish seat update", showID, err)
	}
}
