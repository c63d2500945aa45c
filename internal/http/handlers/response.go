// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints. The wire contract is deliberately small: success and failure
// envelopes both use a single "result" field carrying a human-readable
// message, and /read returns a bare JSON array of records.
//
// Conventions:
//   - `fail()` centralizes error formatting, ensuring 5xx responses are
//     logged with request context for observability.
//   - All runtime errors during request handling are converted to a 500 with
//     the error text in the result field; there is no separate client/server
//     error taxonomy beyond 404 for unknown routes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkarag/go-records-api/internal/http/middleware"
)

// Result is the JSON envelope returned by /write, /delete, and every error
// response.
//
// Example:
//
//	HTTP/1.1 200 OK
//	{ "result": "Added record with name:alice to database" }
type Result struct {
	// Human-readable outcome or error message.
	Result string `json:"result"`
}

// fail aborts the request with a Result envelope carrying msg.
//
// Server errors (>=500) are logged using the request-scoped logger from
// middleware before the response is written.
func fail(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, Result{Result: msg})
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
