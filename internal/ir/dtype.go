// Package ir builds the typed expression graph consumed by the fuser's
// lowering and scheduling stages.
//
// Values and statements live in an Arena. Builders read operand types,
// derive the result type through the promotion tables in this file, allocate
// the result value and append exactly one statement linking operands to it.
// Nothing is evaluated or folded here.
package ir

// ValueKind is the structural kind of a value.
type ValueKind int

// Supported value kinds. KindNone is reported for invalid handles.
const (
	KindNone ValueKind = iota
	KindScalar
	KindTensorView
	KindIterDomain
)

// String returns a human-readable name for the value kind.
func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindScalar:
		return "scalar"
	case KindTensorView:
		return "tensor_view"
	case KindIterDomain:
		return "iter_domain"
	default:
		return "unknown"
	}
}

// DataType is the element type carried by a value.
type DataType int

// Supported data types. Null marks a value whose type is not resolved yet.
const (
	Null DataType = iota
	Bool
	Int
	Half
	Float
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Half:
		return "half"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// rank orders data types for promotion; the wider type wins.
func (dt DataType) rank() int {
	switch dt {
	case Bool:
		return 1
	case Int:
		return 2
	case Half:
		return 3
	case Float:
		return 4
	default:
		return 0
	}
}

// PromoteKind returns the kind of the result of combining values of kinds a
// and b. A tensor view dominates a scalar. Iteration domains and unset kinds
// do not take part in arithmetic.
func PromoteKind(a, b ValueKind) (ValueKind, error) {
	if !a.arithmetic() || !b.arithmetic() {
		return KindNone, &ConstructionError{
			Op:    "promote",
			Kind:  a,
			Kind2: b,
			Err:   ErrUnrepresentablePromotion,
		}
	}
	if a == KindTensorView || b == KindTensorView {
		return KindTensorView, nil
	}
	return KindScalar, nil
}

func (k ValueKind) arithmetic() bool {
	return k == KindScalar || k == KindTensorView
}

// PromoteDataType returns the element type of the result of combining values
// of data types a and b: Float > Half > Int > Bool. Null has no promotion.
func PromoteDataType(a, b DataType) (DataType, error) {
	ra, rb := a.rank(), b.rank()
	if ra == 0 || rb == 0 {
		return Null, &ConstructionError{
			Op:        "promote",
			DataType:  a,
			DataType2: b,
			Err:       ErrUnrepresentablePromotion,
		}
	}
	if ra >= rb {
		return a, nil
	}
	return b, nil
}

type castPair struct {
	from, to DataType
}

// legalCasts whitelists conversions between distinct data types.
var legalCasts = map[castPair]struct{}{
	{Float, Int}:  {},
	{Int, Float}:  {},
	{Float, Half}: {},
	{Half, Float}: {},
	{Half, Int}:   {},
	{Int, Half}:   {},
	{Bool, Int}:   {},
	{Bool, Float}: {},
	{Int, Bool}:   {},
}

// IsCastLegal reports whether a value of type from may be cast to type to.
// Identity casts are legal; Null never is.
func IsCastLegal(from, to DataType) bool {
	if from == Null || to == Null {
		return false
	}
	if from == to {
		return true
	}
	_, ok := legalCasts[castPair{from, to}]
	return ok
}
