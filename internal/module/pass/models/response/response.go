package response

type MoviePass struct {
	UserID    int64  `json:"user_id"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
}
