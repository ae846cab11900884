package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// CreatedResponse reports the id of a newly created row
type CreatedResponse struct {
	ID int64 `json:"id"`
}
