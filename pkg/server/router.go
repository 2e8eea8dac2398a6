package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"real-api/internal/handlers"
	"real-api/internal/middleware"
	"real-api/pkg/lambda"
)

// maxBodyBytes caps request bodies on the local server
const maxBodyBytes = 10 * 1024 * 1024

// NewRouter builds the local development server. Every request falls
// through to the dispatcher so routing behaves exactly as it does in Lambda.
func NewRouter(container *Container) *gin.Engine {
	if container.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(container.Logger))

	router.NoRoute(DispatchHandler(container.Dispatcher))

	return router
}

// DispatchHandler adapts a gin request into a lambda.Request and writes the
// dispatcher's response back
func DispatchHandler(d *handlers.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
		if err != nil {
			_ = c.Error(err)
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeResponse(c, d.PayloadTooLarge())
				return
			}
			writeResponse(c, d.InternalError())
			return
		}

		req := &lambda.Request{
			Method:      lambda.NormalizeMethod(c.Request.Method),
			Path:        lambda.NormalizePath(c.Request.URL.Path),
			QueryString: c.Request.URL.RawQuery,
			Headers:     flattenHeaders(c.Request.Header),
			Body:        body,
			RequestID:   c.GetString(middleware.RequestIDKey),
		}

		writeResponse(c, d.Dispatch(c.Request.Context(), req))
	}
}

func writeResponse(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, resp.Headers[middleware.HeaderContentType], []byte(resp.Body))
}

func flattenHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for key, values := range header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}
	return headers
}
