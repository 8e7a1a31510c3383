package dto

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"_id"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
