package bolticdomain

// ErrorResponse is the error body returned by Boltic endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Text returns the most descriptive message available.
func (e ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
