package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"real-api/pkg/lambda"
)

// TimestampLayout renders UTC times with millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Handler builds the response for a matched route. A returned error is
// reported to the caller as a generic 500.
type Handler func(ctx context.Context, req *lambda.Request) (*lambda.Response, error)

// Clock returns the current time
type Clock func() time.Time

// formatTimestamp renders t as an ISO-8601 UTC timestamp
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// jsonResponse serializes payload and attaches a fresh copy of the CORS headers
func (d *Dispatcher) jsonResponse(statusCode int, payload interface{}) (*lambda.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response body: %w", err)
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    d.headers(),
		Body:       string(body),
	}, nil
}
