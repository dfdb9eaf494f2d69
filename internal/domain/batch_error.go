package domain

import "time"

// BatchError records one problem observed while processing a batch.
type BatchError struct {
	Type      ErrorKind      `json:"type"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewBatchError builds a BatchError stamped with at.
func NewBatchError(kind ErrorKind, message string, details map[string]any, at time.Time) BatchError {
	return BatchError{Type: kind, Message: message, Details: details, Timestamp: at}
}
