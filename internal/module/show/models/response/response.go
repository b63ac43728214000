package response

type CreatedShow struct {
	ShowID int64 `json:"show_id"`
}

type Seat struct {
	SeatNumber string  `json:"seat_number"`
	Status     string  `json:"status"`
	Price      float64 `json:"price"`
}

type SeatMap struct {
	ShowID int64  `json:"show_id"`
	Status string `json:"status"`
	Seats  []Seat `json:"seats"`
}

type SeatHold struct {
	ShowID      int64    `json:"show_id"`
	SeatNumbers []string `json:"seat_numbers"`
	ExpiresAt   string   `json:"expires_at"`
}
