// Package runtimecheck verifies that a running application can talk to its
// backend canister.
//
// The backend's runPreflightChecks method is a stub that always rejects with
// a "not supported" message; that rejection is a documented platform
// limitation (ErrUnsupported) and never fails the check. Only a missing
// handle or a handle that cannot be inspected makes the check fail.
package runtimecheck

import (
	"context"
	"errors"
	"reflect"
)

// MethodRunPreflightChecks is the diagnostic method invoked on the backend.
const MethodRunPreflightChecks = "runPreflightChecks"

// ErrUnsupported is the known limitation reported by the backend stub.
var ErrUnsupported = errors.New("preflight checks are not supported by the backend canister")

// Handle is an established session with the backend canister.
// Implementations are owned by the connection layer; the checker only reads them.
type Handle interface {
	// Methods lists the callable backend methods. An error means the handle
	// itself is unusable.
	Methods() ([]string, error)
	// RunPreflightChecks invokes the backend's diagnostic method.
	RunPreflightChecks(ctx context.Context) error
}

// isNil reports whether h is nil, including a typed nil pointer.
func isNil(h Handle) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
