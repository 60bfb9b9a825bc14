package common

import (
	"github.com/google/uuid"
)

// ID is a string alias for UUID v4.
type ID string

// NewID generates a new UUID v4.
func NewID() ID {
	return ID(uuid.New().String())
}

// SortOrder defines the direction of sorting.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ErrorDetail provides structured error information for aggregate results.
// Batch operations (matrix, chronology) record per-item failures here instead
// of failing the whole call.  Each entry gets its own ID so callers can
// reference individual failures in follow-up reports.
type ErrorDetail struct {
	ID      ID                     `json:"id"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

//Personal.AI order the ending
