package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"real-api/internal/config"
	"real-api/internal/middleware"
	"real-api/pkg/lambda"
)

// Dispatcher routes normalized requests to the response builders. It holds
// no mutable state after construction and is safe for concurrent use.
type Dispatcher struct {
	cfg            *config.Config
	logger         logrus.FieldLogger
	now            Clock
	routes         []Route
	availablePaths []string
}

// Option customizes a Dispatcher
type Option func(*Dispatcher)

// WithClock overrides the time source used for response timestamps
func WithClock(clock Clock) Option {
	return func(d *Dispatcher) {
		d.now = clock
	}
}

// NewDispatcher creates a dispatcher with the fixed route table
func NewDispatcher(cfg *config.Config, logger logrus.FieldLogger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.routes = d.buildRoutes()
	for _, route := range d.routes {
		d.availablePaths = append(d.availablePaths, route.Path)
	}

	return d
}

// AvailablePaths lists the advertised routes in table order
func (d *Dispatcher) AvailablePaths() []string {
	paths := make([]string, len(d.availablePaths))
	copy(paths, d.availablePaths)
	return paths
}

// HandleEvent normalizes a raw invocation payload and dispatches it. A
// payload that cannot be normalized yields the generic 500 and still logs
// the entry line, carrying only the payload size.
func (d *Dispatcher) HandleEvent(ctx context.Context, raw []byte) *lambda.Response {
	req, err := lambda.ParseEvent(raw)
	if err != nil {
		d.logger.WithField("event_size", len(raw)).Info("Request received")
		d.logger.WithError(err).Error("Error processing request")
		return d.InternalError()
	}
	return d.Dispatch(ctx, req)
}

// Dispatch produces the response for req. It never panics; every failure
// becomes a well-formed response.
func (d *Dispatcher) Dispatch(ctx context.Context, req *lambda.Request) (resp *lambda.Response) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.WithField("panic", fmt.Sprintf("%v", r)).Error("Error processing request")
			resp = d.InternalError()
		}
	}()

	if req == nil {
		d.logger.Error("Error processing request: nil request")
		return d.InternalError()
	}

	method := lambda.NormalizeMethod(req.Method)
	path := lambda.NormalizePath(req.Path)

	d.logger.WithFields(logrus.Fields{
		"request_id":   req.RequestID,
		"method":       method,
		"path":         path,
		"query_string": req.QueryString,
		"headers":      req.Headers,
	}).Info("Request received")

	resp, err := d.route(ctx, method, path, req)
	if err != nil {
		d.logger.WithError(err).WithField("request_id", req.RequestID).Error("Error processing request")
		return d.InternalError()
	}

	return resp
}

func (d *Dispatcher) route(ctx context.Context, method, path string, req *lambda.Request) (*lambda.Response, error) {
	// Preflight takes priority over path matching
	if method == http.MethodOptions {
		return &lambda.Response{
			StatusCode: http.StatusOK,
			Headers:    d.headers(),
			Body:       "",
		}, nil
	}

	for _, route := range d.routes {
		if !route.matches(path) {
			continue
		}
		if !route.allows(method) {
			return d.methodNotAllowed(route)
		}
		return route.Handler(ctx, req)
	}

	return d.notFound()
}

func (d *Dispatcher) headers() map[string]string {
	return middleware.CORSHeaders(d.cfg.CORS)
}
