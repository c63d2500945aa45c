// Package services defines the business logic for record operations. This
// file centralizes service-level error values so they can be consistently
// returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrTableMissing indicates that the records table does not exist, which
	// happens after a drop-all until the schema is re-initialized.
	ErrTableMissing = errors.New("records table does not exist")
)
