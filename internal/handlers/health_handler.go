package handlers

import (
	"context"
	"net/http"

	"real-api/pkg/lambda"
)

// StatusHealthy is the marker reported by the health route
const StatusHealthy = "healthy"

// HealthResponse describes the running service
type HealthResponse struct {
	Message     string `json:"message"`
	APIName     string `json:"apiName"`
	Status      string `json:"status"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

// @Summary Health check
// @Description Report that the API is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router / [get]
func (d *Dispatcher) handleHealth(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return d.jsonResponse(http.StatusOK, HealthResponse{
		Message:     d.cfg.API.Name + " is running successfully",
		APIName:     d.cfg.API.Name,
		Status:      StatusHealthy,
		Version:     d.cfg.API.Version,
		Environment: d.cfg.Environment,
		Timestamp:   formatTimestamp(d.now()),
	})
}
