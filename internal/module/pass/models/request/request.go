package request

type PurchasePass struct {
	Months int `json:"months" validate:"required,gt=0,lte=12"`
}

// PassTask is the payload for the expire_movie_pass scheduler task.
type PassTask struct {
	UserID int64 `json:"user_id" validate:"required"`
}
