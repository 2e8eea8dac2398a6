package lambda

// Request represents a normalized HTTP request for serverless functions.
// It is built once per invocation and never mutated afterwards.
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	QueryString string            `json:"query_string"`
	Headers     map[string]string `json:"headers"`
	Body        []byte            `json:"body"`
	RequestID   string            `json:"request_id"`
}

// Response represents an HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}
