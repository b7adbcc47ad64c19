package dto

import "time"

// ListEnvelope is the legacy read-API envelope. The integer status and
// message text are part of the interop contract and must not change.
type ListEnvelope struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"Resources fetched successfully"`
	Data    interface{} `json:"data"`
}

// NewListEnvelope creates the fixed success envelope for list endpoints.
func NewListEnvelope(message string, data interface{}) ListEnvelope {
	return ListEnvelope{
		Status:  200,
		Message: message,
		Data:    data,
	}
}

// APIResponse is the structured envelope used by the versioned API surface.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewSuccessResponse creates a success response wrapping data.
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}
