package models

import "encoding/json"

// Envelope is the body shape shared by every endpoint of the rider API
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
