package request

import "time"

type CreateBooking struct {
	ShowID         int64    `json:"show_id" validate:"required"`
	SeatNumbers    []string `json:"seat_numbers" validate:"required,min=1"`
	PaymentMethod  string   `json:"payment_method" validate:"required"`
	SubTotal       float64  `json:"sub_total" validate:"required,gt=0"`
	ConvenienceFee float64  `json:"convenience_fee" validate:"gte=0"`
	Donation       float64  `json:"donation" validate:"gte=0"`
	CouponDiscount float64  `json:"coupon_discount" validate:"gte=0"`
	// UseMoviePass is only an eligibility flag; the discount itself is
	// recomputed server side and never trusted from the client.
	UseMoviePass bool       `json:"use_movie_pass"`
	TotalAmount  float64    `json:"total_amount" validate:"required,gt=0"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

type CancelBooking struct {
	BookingID string `json:"booking_id" validate:"required"`
	Reason    string `json:"reason"`
}

type PaymentCallback struct {
	BookingID string `json:"booking_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
}

// BookingExpiration is the payload of the cancel_pending_booking task.
type BookingExpiration struct {
	BookingID string `json:"booking_id" validate:"required"`
}

type CheckoutSession struct {
	UserID      int64    `json:"user_id"`
	BookingID   string   `json:"booking_id"`
	Amount      float64  `json:"amount"`
	ShowID      int64    `json:"show_id"`
	SeatNumbers []string `json:"seat_numbers"`
	CallbackURL string   `json:"callback_url"`
}

type BookingNotification struct {
	BookingID string `json:"booking_id"`
	UserID    int64  `json:"user_id"`
	VendorID  int64  `json:"vendor_id,omitempty"`
	Message   string `json:"message"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
