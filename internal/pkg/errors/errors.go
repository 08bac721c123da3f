package errors

import "net/http"

// ErrorResponse carries an HTTP status alongside a user-facing message so
// handlers can map failures without inspecting error strings.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &ErrorResponse{Code: http.StatusBadRequest, Message: message}
}

func UnauthorizedError(message string) error {
	return &ErrorResponse{Code: http.StatusUnauthorized, Message: message}
}

func ForbiddenError(message string) error {
	return &ErrorResponse{Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) error {
	return &ErrorResponse{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) error {
	return &ErrorResponse{Code: http.StatusConflict, Message: message}
}

func InternalServerError(message string) error {
	return &ErrorResponse{Code: http.StatusInternalServerError, Message: message}
}

// FromError extracts the typed response if err was built by this package.
func FromError(err error) (*ErrorResponse, bool) {
	resp, ok := err.(*ErrorResponse)
	return resp, ok
}
