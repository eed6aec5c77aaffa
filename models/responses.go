package models

// ErrorResponse is the JSON body written for every failed API request.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`

	// Fields lists every violated input field for validation failures.
	Fields []string `json:"fields,omitempty"`
}

// ListingsResponse wraps a list of listings together with its length.
type ListingsResponse struct {
	Listings []Listing `json:"listings"`
	Length   int       `json:"length"`
}

// RejectRequest carries the administrator's rejection reason.
type RejectRequest struct {
	Reason string `json:"rejection_reason" validate:"required,max=1000"`
}
