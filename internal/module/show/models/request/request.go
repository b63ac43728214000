package request

import "time"

type CreateShow struct {
	MovieID     int64     `json:"movie_id" validate:"required"`
	TheaterID   int64     `json:"theater_id" validate:"required"`
	ScreenID    int64     `json:"screen_id" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	SeatPrice   float64   `json:"seat_price" validate:"required,gt=0"`
	SeatNumbers []string  `json:"seat_numbers" validate:"required,min=1"`
}

type SelectSeats struct {
	ShowID      int64    `json:"show_id" validate:"required"`
	SeatNumbers []string `json:"seat_numbers" validate:"required,min=1"`
}

// ShowTask is the payload for show-keyed scheduler tasks (start_show,
// complete_show, release_expired_seats).
type ShowTask struct {
	ShowID int64 `json:"show_id" validate:"required"`
}

type SeatUpdateEvent struct {
	ShowID      int64    `json:"show_id"`
	SeatNumbers []string `json:"seat_numbers"`
	Status      string   `json:"status"`
}
