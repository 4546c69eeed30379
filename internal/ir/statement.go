package ir

// StmtID identifies a statement within its Arena. Zero means none.
type StmtID int32

// UnaryOpType tags a single-operand statement.
type UnaryOpType int

// Unary operators.
const (
	UnaryCast UnaryOpType = iota
	UnaryNeg
	UnaryAbs
	UnaryExp
	UnaryCeil
	UnaryFloor
)

// String returns the operator name.
func (t UnaryOpType) String() string {
	switch t {
	case UnaryCast:
		return "cast"
	case UnaryNeg:
		return "neg"
	case UnaryAbs:
		return "abs"
	case UnaryExp:
		return "exp"
	case UnaryCeil:
		return "ceil"
	case UnaryFloor:
		return "floor"
	default:
		return "unknown"
	}
}

func (t UnaryOpType) valid() bool {
	return t >= UnaryCast && t <= UnaryFloor
}

// BinaryOpType tags a two-operand statement.
//
// Order is significant: every operator from BinaryMod onwards produces an
// integer result regardless of operand types.
type BinaryOpType int

// Binary operators.
const (
	BinaryAdd BinaryOpType = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryLT
	BinaryCeilDiv
)

// String returns the operator name.
func (t BinaryOpType) String() string {
	switch t {
	case BinaryAdd:
		return "add"
	case BinarySub:
		return "sub"
	case BinaryMul:
		return "mul"
	case BinaryDiv:
		return "div"
	case BinaryMod:
		return "mod"
	case BinaryLT:
		return "lt"
	case BinaryCeilDiv:
		return "ceilDiv"
	default:
		return "unknown"
	}
}

// IntegerOutput reports whether the operator always yields an Int result.
func (t BinaryOpType) IntegerOutput() bool {
	return t >= BinaryMod
}

func (t BinaryOpType) valid() bool {
	return t >= BinaryAdd && t <= BinaryCeilDiv
}

// Statement is one recorded operation in the expression graph.
// Each statement produces exactly one output value.
type Statement interface {
	// ID returns the statement's position in its arena.
	ID() StmtID

	// Inputs returns the operand values in order.
	Inputs() []Value

	// Output returns the value produced by this statement.
	Output() Value

	// OpName returns the operator name, e.g. "add" or "cast".
	OpName() string
}

// UnaryOp represents out = op(in).
type UnaryOp struct {
	id  StmtID
	typ UnaryOpType
	in  Value
	out Value
}

// ID returns the statement's position in its arena.
func (op *UnaryOp) ID() StmtID { return op.id }

// Inputs returns [in].
func (op *UnaryOp) Inputs() []Value { return []Value{op.in} }

// Output returns the result value.
func (op *UnaryOp) Output() Value { return op.out }

// OpName returns the operator name.
func (op *UnaryOp) OpName() string { return op.typ.String() }

// Op returns the operator tag.
func (op *UnaryOp) Op() UnaryOpType { return op.typ }

// In returns the single operand.
func (op *UnaryOp) In() Value { return op.in }

// BinaryOp represents out = op(lhs, rhs).
type BinaryOp struct {
	id  StmtID
	typ BinaryOpType
	lhs Value
	rhs Value
	out Value
}

// ID returns the statement's position in its arena.
func (op *BinaryOp) ID() StmtID { return op.id }

// Inputs returns [lhs, rhs].
func (op *BinaryOp) Inputs() []Value { return []Value{op.lhs, op.rhs} }

// Output returns the result value.
func (op *BinaryOp) Output() Value { return op.out }

// OpName returns the operator name.
func (op *BinaryOp) OpName() string { return op.typ.String() }

// Op returns the operator tag.
func (op *BinaryOp) Op() BinaryOpType { return op.typ }

// LHS returns the first operand.
func (op *BinaryOp) LHS() Value { return op.lhs }

// RHS returns the second operand.
func (op *BinaryOp) RHS() Value { return op.rhs }
