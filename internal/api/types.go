package api

import "evalgo.org/ontomapper/internal/validation"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message  string                       `json:"message"`
	Warnings []validation.ValidationError `json:"warnings,omitempty"`
}

// ValidPropertyResponse is the answer to a property suggestion check.
type ValidPropertyResponse struct {
	Valid bool `json:"valid"`
}

// MermaidResponse wraps a generated flowchart.
type MermaidResponse struct {
	Mermaid string `json:"mermaid"`
	Success bool   `json:"success"`
}

// HealthResponse reports service status and the size of the loaded ontology.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Triples int    `json:"triples"`
}
