package utils

// ErrorResponse is the JSON body every failing route returns: a short
// human-readable message plus the underlying error string.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
