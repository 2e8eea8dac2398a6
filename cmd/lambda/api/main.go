package main

import (
	"context"
	"encoding/json"

	"real-api/internal/config"
	"real-api/pkg/lambda"
	"real-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

// handler accepts the raw payload so REST, HTTP API and function URL events
// can all be normalized by the same code. It never returns an error; every
// failure is already a response.
func handler(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	resp := container.Dispatcher.HandleEvent(ctx, event)
	return lambda.ToProxyResponse(resp), nil
}

func main() {
	awslambda.Start(handler)
}
