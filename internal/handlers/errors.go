package handlers

import (
	"net/http"

	"real-api/pkg/lambda"
)

// Error labels used in client and server error bodies
const (
	ErrMethodNotAllowed    = "Method not allowed"
	ErrInvalidJSON         = "Invalid JSON"
	ErrNotFound            = "Not Found"
	ErrInternalServerError = "Internal Server Error"
	ErrPayloadTooLarge     = "Payload Too Large"
)

const (
	invalidJSONMessage = "Request body must be valid JSON"
	notFoundMessage    = "The requested path was not found"
	internalMessage    = "An unexpected error occurred"
	tooLargeMessage    = "Request body exceeds the size limit"
)

// Pre-rendered so these paths cannot themselves fail
const (
	internalErrorBody = `{"error":"` + ErrInternalServerError + `","message":"` + internalMessage + `"}`
	tooLargeBody      = `{"error":"` + ErrPayloadTooLarge + `","message":"` + tooLargeMessage + `"}`
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error          string   `json:"error"`
	Message        string   `json:"message"`
	AvailablePaths []string `json:"availablePaths,omitempty"`
}

// methodNotAllowed answers a known path called with a verb it does not accept
func (d *Dispatcher) methodNotAllowed(route Route) (*lambda.Response, error) {
	return d.jsonResponse(http.StatusMethodNotAllowed, ErrorResponse{
		Error:   ErrMethodNotAllowed,
		Message: route.Name + " endpoint only accepts " + route.allowedList() + " requests",
	})
}

func (d *Dispatcher) invalidJSON() (*lambda.Response, error) {
	return d.jsonResponse(http.StatusBadRequest, ErrorResponse{
		Error:   ErrInvalidJSON,
		Message: invalidJSONMessage,
	})
}

func (d *Dispatcher) notFound() (*lambda.Response, error) {
	return d.jsonResponse(http.StatusNotFound, ErrorResponse{
		Error:          ErrNotFound,
		Message:        notFoundMessage,
		AvailablePaths: d.AvailablePaths(),
	})
}

// InternalError never fails and never echoes the underlying error
func (d *Dispatcher) InternalError() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    d.headers(),
		Body:       internalErrorBody,
	}
}

// PayloadTooLarge answers a body the transport refused to read in full
func (d *Dispatcher) PayloadTooLarge() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusRequestEntityTooLarge,
		Headers:    d.headers(),
		Body:       tooLargeBody,
	}
}
