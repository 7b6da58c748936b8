package models

// ErrorResponse is the body of every non-validation error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of operations that only report success.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the body of 400 responses caused by invalid input.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// APIInfo is returned by the root endpoint.
type APIInfo struct {
	Message   string                       `json:"message"`
	Version   string                       `json:"version"`
	Endpoints map[string]map[string]string `json:"endpoints"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// SeedReport summarizes what the demo data seeder inserted.
type SeedReport struct {
	Users     []Identity `json:"users"`
	Products  int        `json:"products"`
	Favorites int        `json:"favorites"`
}
