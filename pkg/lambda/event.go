package lambda

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// ErrMalformedEvent is returned when the invocation payload cannot be
// interpreted as an HTTP event
var ErrMalformedEvent = errors.New("malformed event")

// Defaults applied when the event does not carry a usable value
const (
	DefaultMethod = "GET"
	DefaultPath   = "/"
)

var knownMethods = map[string]bool{
	"GET":     true,
	"HEAD":    true,
	"POST":    true,
	"PUT":     true,
	"PATCH":   true,
	"DELETE":  true,
	"OPTIONS": true,
}

// ParseEvent decodes a raw invocation payload into a Request.
//
// API Gateway REST (payload v1), HTTP API (payload v2) and function URL
// events are accepted. Every field is resolved through the same chain:
// the nested request context value first, then the flat top-level value,
// then a default.
func ParseEvent(raw []byte) (*Request, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: event is not an object", ErrMalformedEvent)
	}

	var v2 events.APIGatewayV2HTTPRequest
	if err := json.Unmarshal(raw, &v2); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	var v1 events.APIGatewayProxyRequest
	if err := json.Unmarshal(raw, &v1); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	body, err := decodeBody(v1.Body, v1.IsBase64Encoded || v2.IsBase64Encoded)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method:      NormalizeMethod(firstNonEmpty(v2.RequestContext.HTTP.Method, v1.HTTPMethod, v1.RequestContext.HTTPMethod)),
		Path:        NormalizePath(firstNonEmpty(v2.RequestContext.HTTP.Path, v2.RawPath, v1.Path)),
		QueryString: queryString(v2, v1),
		Headers:     mergeHeaders(v1.Headers, v1.MultiValueHeaders),
		Body:        body,
		RequestID:   firstNonEmpty(v2.RequestContext.RequestID, v1.RequestContext.RequestID, uuid.New().String()),
	}, nil
}

// NormalizeMethod upper-cases the method and falls back to GET for
// missing or unknown verbs
func NormalizeMethod(method string) string {
	method = strings.ToUpper(strings.TrimSpace(method))
	if !knownMethods[method] {
		return DefaultMethod
	}
	return method
}

// NormalizePath returns "/" for an empty path
func NormalizePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return DefaultPath
	}
	return path
}

// ToProxyResponse converts a Response into the shape the Lambda runtime
// expects from an API Gateway proxy integration
func ToProxyResponse(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}

func decodeBody(body string, isBase64 bool) ([]byte, error) {
	if body == "" {
		return nil, nil
	}
	if !isBase64 {
		return []byte(body), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: body is not valid base64: %v", ErrMalformedEvent, err)
	}
	return decoded, nil
}

func queryString(v2 events.APIGatewayV2HTTPRequest, v1 events.APIGatewayProxyRequest) string {
	if v2.RawQueryString != "" {
		return v2.RawQueryString
	}

	values := url.Values{}
	if len(v1.MultiValueQueryStringParameters) > 0 {
		for key, vals := range v1.MultiValueQueryStringParameters {
			for _, v := range vals {
				values.Add(key, v)
			}
		}
		return values.Encode()
	}

	for key, v := range v1.QueryStringParameters {
		values.Set(key, v)
	}
	return values.Encode()
}

func mergeHeaders(single map[string]string, multi map[string][]string) map[string]string {
	headers := make(map[string]string, len(single)+len(multi))
	for key, vals := range multi {
		if len(vals) > 0 {
			headers[key] = vals[0]
		}
	}
	for key, v := range single {
		headers[key] = v
	}
	return headers
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
