package ir

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Construction failures. Every builder error wraps exactly one of these.
var (
	ErrInvalidConstruction      = errors.New("no constructor for value kind and data type")
	ErrIllegalCast              = errors.New("illegal cast")
	ErrIllTypedOperand          = errors.New("ill-typed operand")
	ErrUnrepresentablePromotion = errors.New("unrepresentable promotion")
	ErrInvalidOperator          = errors.New("invalid operator")
)

// ConstructionError describes a rejected graph construction request.
// Kind/DataType describe the first (or only) operand, Kind2/DataType2 the
// second operand or the requested target.
type ConstructionError struct {
	Op        string    // Builder step that failed (e.g. "cast", "promote", "new_value")
	Kind      ValueKind // Kind of the offending value
	Kind2     ValueKind // Second kind, for promotion failures
	DataType  DataType  // Data type of the offending value
	DataType2 DataType  // Second or target data type
	Err       error     // One of the Err* sentinels
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Err.Error())

	switch {
	case errors.Is(e.Err, ErrIllegalCast):
		fmt.Fprintf(&b, " from data type %s to data type %s", e.DataType, e.DataType2)
	case errors.Is(e.Err, ErrInvalidConstruction):
		fmt.Fprintf(&b, " (kind %s, data type %s)", e.Kind, e.DataType2)
	default:
		fmt.Fprintf(&b, " (kinds %s, %s; data types %s, %s)", e.Kind, e.Kind2, e.DataType, e.DataType2)
	}
	return b.String()
}

// Unwrap returns the sentinel so errors.Is matches the failure class.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}
