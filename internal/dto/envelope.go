package dto

// Envelope is the uniform response body every endpoint returns.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// NewEnvelope builds a response envelope. Success is derived from the status code.
func NewEnvelope(statusCode int, data any, message string) Envelope {
	return Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}
