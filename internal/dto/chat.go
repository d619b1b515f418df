package dto

type ChatRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	BookingID string `json:"booking_id,omitempty"`
	Warning   string `json:"warning,omitempty"`
}
