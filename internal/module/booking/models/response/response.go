package response

type UserServiceValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    int64  `json:"user_id"`
	EmailUser string `json:"email_user"`
}

type CheckoutSession struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

type CreatedBooking struct {
	BookingID     string  `json:"booking_id"`
	BookingCode   string  `json:"booking_code"`
	QRCode        string  `json:"qr_code"`
	PaymentStatus string  `json:"payment_status"`
	TotalAmount   float64 `json:"total_amount"`
	RedirectURL   string  `json:"redirect_url,omitempty"`
}

type Booking struct {
	BookingID         string   `json:"booking_id"`
	BookingCode       string   `json:"booking_code"`
	ShowID            int64    `json:"show_id"`
	SeatNumbers       []string `json:"seat_numbers"`
	SubTotal          float64  `json:"sub_total"`
	ConvenienceFee    float64  `json:"convenience_fee"`
	Donation          float64  `json:"donation"`
	CouponDiscount    float64  `json:"coupon_discount"`
	MoviePassDiscount float64  `json:"movie_pass_discount"`
	TotalAmount       float64  `json:"total_amount"`
	PaymentMethod     string   `json:"payment_method"`
	PaymentStatus     string   `json:"payment_status"`
	Status            string   `json:"status"`
	Reason            string   `json:"reason,omitempty"`
	CreatedAt         string   `json:"created_at"`
}
