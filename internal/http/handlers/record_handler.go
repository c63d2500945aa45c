// Record HTTP handlers.
//
// This file exposes the three record endpoints:
//   - GET /read    (select records by name)
//   - GET /write   (insert a record with the given name)
//   - GET /delete  (drop the records table)
//
// Handlers are transport-thin: they parse the query, delegate to the
// RecordService, and translate results into HTTP responses. The `name`
// query parameter defaults to DefaultRecordName when absent; this default
// is an explicit, documented part of the request-parsing contract.
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkarag/go-records-api/internal/domain"
)

// DefaultRecordName is the value used for the `name` query parameter when a
// request omits it.
const DefaultRecordName = "john"

// RecordService defines the record operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RecordService interface {
	// Insert stores a new record with the given name.
	Insert(ctx context.Context, name string) (*domain.Record, error)
	// FindByName returns all records matching name in insertion order.
	FindByName(ctx context.Context, name string) ([]domain.Record, error)
	// DropAll removes the records table entirely.
	DropAll(ctx context.Context) error
}

// Handlers groups the HTTP endpoints for record operations. It depends on an
// abstract service interface to keep transport concerns separate from
// persistence logic.
type Handlers struct {
	recSvc RecordService
}

// New constructs and returns a Handlers instance bound to the given service.
func New(recSvc RecordService) *Handlers {
	return &Handlers{recSvc: recSvc}
}

// recordName extracts the `name` query parameter, applying the documented
// default when the parameter is absent or empty.
func recordName(c *gin.Context) string {
	if v := c.Query("name"); v != "" {
		return v
	}
	return DefaultRecordName
}

// ReadRecords handles GET /read.
//
// It returns all records matching the `name` query parameter (default
// DefaultRecordName) as a JSON array, in insertion order. No matches yield
// an empty array with status 200. Query failures (including a dropped
// records table) are converted to a 500 Result envelope.
func (h *Handlers) ReadRecords(c *gin.Context) {
	name := recordName(c)

	records, err := h.recSvc.FindByName(c.Request.Context(), name)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, records)
}

// WriteRecord handles GET /write.
//
// It inserts a record with the `name` query parameter (default
// DefaultRecordName) and confirms with a Result envelope. The statement is
// applied immediately under auto-commit semantics.
func (h *Handlers) WriteRecord(c *gin.Context) {
	name := recordName(c)

	if _, err := h.recSvc.Insert(c.Request.Context(), name); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, Result{Result: fmt.Sprintf("Added record with name:%s to database", name)})
}

// DropTable handles GET /delete.
//
// It drops the records table unconditionally. Any `name` query parameter is
// ignored: the drop is a table-level operation, not a filtered delete.
func (h *Handlers) DropTable(c *gin.Context) {
	if err := h.recSvc.DropAll(c.Request.Context()); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, Result{Result: "Deleted all data in the table"})
}

// NotFound is the fallback for unmatched paths (and any non-GET method). It
// reports 404 with the offending path in the Result envelope.
func NotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, fmt.Sprintf("path: %s is not valid", c.Request.URL.Path))
}
