package ir

import "fmt"

// Value is a handle to a value node owned by an Arena.
// The zero Value is not a value.
type Value int32

// NoValue is the invalid handle.
const NoValue Value = 0

// payload is the kind-specific part of a value node. The set of payloads is
// closed: scalarPayload, tensorPayload and domainPayload.
type payload interface {
	kind() ValueKind
}

type scalarPayload struct{}

func (scalarPayload) kind() ValueKind { return KindScalar }

// tensorPayload carries the shape of a tensor view.
type tensorPayload struct {
	shape Shape
}

func (tensorPayload) kind() ValueKind { return KindTensorView }

// newForOutput derives the payload of an output tensor view with the same
// shape as p.
func (p tensorPayload) newForOutput() tensorPayload {
	return tensorPayload{shape: p.shape.Clone()}
}

// domainPayload describes one iteration axis. It is not an arithmetic value.
type domainPayload struct {
	extent int
}

func (domainPayload) kind() ValueKind { return KindIterDomain }

// valueNode is the arena record behind a Value. It is never mutated after
// creation except for the use list, which only grows.
type valueNode struct {
	dtype    DataType
	payload  payload
	producer StmtID
	uses     []StmtID
}

// scalarPrefix returns the short name used when printing a scalar of type dt.
func scalarPrefix(dt DataType) string {
	switch dt {
	case Float:
		return "f"
	case Int:
		return "i"
	case Half:
		return "h"
	case Bool:
		return "b"
	default:
		return "v"
	}
}

// Describe returns a short printable name for v, e.g. "f3", "T4_float[2, 3]".
func (a *Arena) Describe(v Value) string {
	n := a.node(v)
	if n == nil {
		return "<invalid>"
	}
	switch p := n.payload.(type) {
	case tensorPayload:
		return fmt.Sprintf("T%d_%s%s", v, n.dtype, p.shape)
	case domainPayload:
		return fmt.Sprintf("iS%d{%d}", v, p.extent)
	default:
		return fmt.Sprintf("%s%d", scalarPrefix(n.dtype), v)
	}
}
