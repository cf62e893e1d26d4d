package dto

import "time"

// APIResponse provides the standard envelope for successful API responses
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Count     *int         `json:"count,omitempty" example:"12"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse creates a standard success response
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewCountedResponse creates a success response carrying a collection and its size
func NewCountedResponse(data interface{}, count int) APIResponse {
	return APIResponse{
		Success:   true,
		Count:     &count,
		Data:      data,
		Timestamp: time.Now(),
	}
}
