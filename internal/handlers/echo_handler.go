package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"real-api/pkg/lambda"
)

// EchoMessage is the confirmation returned with every echoed body
const EchoMessage = "This is the message I received"

// EchoResponse returns the parsed request body verbatim
type EchoResponse struct {
	Message         string          `json:"message"`
	OriginalMessage json.RawMessage `json:"originalMessage"`
	APIName         string          `json:"apiName"`
	Timestamp       string          `json:"timestamp"`
}

// @Summary Echo a JSON body
// @Description Return the posted JSON document unchanged
// @Tags echo
// @Accept json
// @Produce json
// @Param payload body object false "Any JSON value"
// @Success 200 {object} EchoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 405 {object} ErrorResponse
// @Router /echo [post]
func (d *Dispatcher) handleEcho(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	result := ParseJSONBody(req.Body)
	if result.Invalid {
		return d.invalidJSON()
	}

	return d.jsonResponse(http.StatusOK, EchoResponse{
		Message:         EchoMessage,
		OriginalMessage: result.Value,
		APIName:         d.cfg.API.Name,
		Timestamp:       formatTimestamp(d.now()),
	})
}
