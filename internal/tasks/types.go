package tasks

type CreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

type CreateInput struct {
	Title       string
	Description *string
	Status      Status
}
