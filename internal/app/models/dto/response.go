package dto

import "time"

// APIResponse is the standard success envelope: a human-readable message
// plus optional payload.
type APIResponse struct {
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewSuccessResponse wraps a payload in the standard envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse builds an envelope carrying only a message.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
}

// VisitorCountResponse is the payload of the visitor count endpoint.
type VisitorCountResponse struct {
	Count int64 `json:"count"`
}

// ImportResult reports the outcome of a bulk spreadsheet import. Rows are
// inserted independently; failed rows are skipped, not rolled back.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
