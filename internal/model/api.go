package model

import "encoding/json"

// Error codes returned in the envelope. The HTTP status code carries the
// coarse class (400/404/500); these identify the exact failure.
const (
	CodeInvalidJSON           = "INVALID_JSON"
	CodeMissingFields         = "MISSING_FIELDS"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeEventNotFound         = "EVENT_NOT_FOUND"
	CodeInsufficientInventory = "INSUFFICIENT_INVENTORY"
	CodeInternalError         = "INTERNAL_ERROR"
)

// APIError is the error half of the response envelope.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// APIResponse is the uniform envelope for every boundary call. Exactly one of
// Data and Error is set; callers branch on the presence of Error.
type APIResponse struct {
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   *APIError       `json:"error,omitempty"`
}
