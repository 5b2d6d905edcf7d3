package dto

import "time"

// APIResponse is the envelope every endpoint returns: either Data or Error
// is set, never both.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-30T12:01:05.123Z"`
}
