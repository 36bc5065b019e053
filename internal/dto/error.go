package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of the health probe.
type HealthResponse struct {
	OK bool `json:"OK"`
}
