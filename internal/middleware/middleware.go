package middleware

import (
	"real-api/internal/config"
)

// Header names shared by every response
const (
	HeaderContentType  = "Content-Type"
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"

	ContentTypeJSON = "application/json"
)

// CORSHeaders returns a fresh copy of the fixed header set attached to
// every response, success or failure
func CORSHeaders(cfg config.CORSConfig) map[string]string {
	return map[string]string{
		HeaderContentType:  ContentTypeJSON,
		HeaderAllowOrigin:  cfg.AllowOrigin,
		HeaderAllowMethods: cfg.AllowMethods,
		HeaderAllowHeaders: cfg.AllowHeaders,
	}
}
