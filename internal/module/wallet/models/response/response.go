package response

type WalletBalance struct {
	UserID  int64   `json:"user_id"`
	Balance float64 `json:"balance"`
}

type WalletTransaction struct {
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Source    string  `json:"source"`
	Remark    string  `json:"remark"`
	CreatedAt string  `json:"created_at"`
}
