package milestone

type EditFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type ReorderRequest struct {
	FromIndex *int `json:"from_index" binding:"required"`
	ToIndex   *int `json:"to_index" binding:"required"`
}

type AddMilestoneRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Amount       *int64 `json:"amount" validate:"required,gte=0"`
	DurationDays int    `json:"duration_days" validate:"gte=0,lte=3650"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}
