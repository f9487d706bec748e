package core

import (
	"errors"
	"fmt"
)

// Placement rejection codes.
const (
	CodeNoCell           = "NO_CELL"
	CodeOutsideFootprint = "OUTSIDE_FOOTPRINT"
	CodeEdgeOccupied     = "EDGE_OCCUPIED"
	CodeEmptyShape       = "EMPTY_SHAPE"
	CodeOutOfBounds      = "OUT_OF_BOUNDS"
)

// Invariant violation codes.
const (
	CodeAsymmetricEdge = "ASYMMETRIC_EDGE"
	CodeStaleComplete  = "STALE_COMPLETE"
)

// PlacementError reports why a drop has no valid target.
// Board state is never modified when one is returned.
type PlacementError struct {
	Code    string
	Message string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// RejectionCode returns the code of a *PlacementError in err's chain, or ""
// when err is not a placement rejection.
func RejectionCode(err error) string {
	var pe *PlacementError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

func rejectf(code, format string, args ...any) *PlacementError {
	return &PlacementError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// InvariantError reports a broken shared-edge or completion invariant.
// These are programming errors, never user errors.
type InvariantError struct {
	Code    string
	Cell    Index
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("[%s] cell %s: %s", e.Code, e.Cell, e.Message)
}
