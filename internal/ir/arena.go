package ir

import "fmt"

// ArenaConfig sizes the initial storage of an Arena.
type ArenaConfig struct {
	// InitialValues is the value capacity reserved up front.
	InitialValues int

	// InitialStatements is the statement capacity reserved up front.
	InitialStatements int
}

// DefaultArenaConfig returns capacities suited to a typical fusion.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		InitialValues:     64,
		InitialStatements: 64,
	}
}

// Arena owns every value and statement of one expression graph.
//
// The arena is append-only: nothing is removed or mutated once recorded.
// It has no internal locking; concurrent builds must use separate arenas.
//
// Usage:
//
//	a := NewArena()
//	x := a.NewScalar(Float)
//	y := a.NewScalar(Float)
//	z, err := a.Add(x, y)
type Arena struct {
	values     []valueNode // index 0 is reserved for NoValue
	statements []Statement // index 0 is reserved for "no producer"
}

// NewArena creates an arena with the default configuration.
func NewArena() *Arena {
	return NewArenaWithConfig(DefaultArenaConfig())
}

// NewArenaWithConfig creates an arena with the given configuration.
func NewArenaWithConfig(cfg ArenaConfig) *Arena {
	values := make([]valueNode, 1, max(cfg.InitialValues, 0)+1)
	statements := make([]Statement, 1, max(cfg.InitialStatements, 0)+1)
	return &Arena{
		values:     values,
		statements: statements,
	}
}

// NewScalar adds a graph input scalar of data type dt. Null is accepted and
// yields an unresolved placeholder that builders reject.
func (a *Arena) NewScalar(dt DataType) Value {
	return a.alloc(dt, scalarPayload{})
}

// NewTensor adds a graph input tensor view of the given shape and data type.
func (a *Arena) NewTensor(shape Shape, dt DataType) (Value, error) {
	if err := shape.Validate(); err != nil {
		return NoValue, fmt.Errorf("new tensor: %w", err)
	}
	return a.alloc(dt, tensorPayload{shape: shape.Clone()}), nil
}

// NewIterDomain adds an iteration axis of the given extent.
func (a *Arena) NewIterDomain(extent int) (Value, error) {
	if extent <= 0 {
		return NoValue, fmt.Errorf("new iter domain: invalid extent %d (must be > 0)", extent)
	}
	return a.alloc(Int, domainPayload{extent: extent}), nil
}

func (a *Arena) alloc(dt DataType, p payload) Value {
	a.values = append(a.values, valueNode{dtype: dt, payload: p})
	return Value(len(a.values) - 1)
}

// node returns the record behind v, or nil if v is not a value of this arena.
func (a *Arena) node(v Value) *valueNode {
	if v <= NoValue || int(v) >= len(a.values) {
		return nil
	}
	return &a.values[v]
}

// IsValue reports whether v is a value owned by this arena.
func (a *Arena) IsValue(v Value) bool {
	return a.node(v) != nil
}

// Kind returns the kind of v, or KindNone if v is not a value.
func (a *Arena) Kind(v Value) ValueKind {
	n := a.node(v)
	if n == nil {
		return KindNone
	}
	return n.payload.kind()
}

// DataType returns the data type of v, or Null if v is not a value.
func (a *Arena) DataType(v Value) DataType {
	n := a.node(v)
	if n == nil {
		return Null
	}
	return n.dtype
}

// Shape returns a copy of the shape of a tensor view, or nil for any other value.
func (a *Arena) Shape(v Value) Shape {
	n := a.node(v)
	if n == nil {
		return nil
	}
	if p, ok := n.payload.(tensorPayload); ok {
		return p.shape.Clone()
	}
	return nil
}

// register appends stmt, records it as the producer of its output and as a
// use of each input.
func (a *Arena) register(stmt Statement) StmtID {
	id := StmtID(len(a.statements))
	switch s := stmt.(type) {
	case *UnaryOp:
		s.id = id
	case *BinaryOp:
		s.id = id
	default:
		panic(fmt.Sprintf("unknown statement type %T", stmt))
	}

	out := a.node(stmt.Output())
	if out.producer != 0 {
		panic(fmt.Sprintf("value %d already produced by statement %d", stmt.Output(), out.producer))
	}
	out.producer = id

	for _, in := range stmt.Inputs() {
		n := a.node(in)
		n.uses = append(n.uses, id)
	}
	a.statements = append(a.statements, stmt)
	return id
}
