package request

type TopUp struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type RedeemLoyaltyPoints struct {
	Points int `json:"points" validate:"required,gt=0"`
}

type VendorPayout struct {
	Period string `json:"period"`
}

type NotificationMessage struct {
	UserID  int64  `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}
