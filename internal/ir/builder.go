package ir

import "github.com/pkg/errors"

// CastOp records out = cast<dt>(v) and returns out.
//
// If v already has data type dt, v itself is returned and nothing is
// recorded. Casts not permitted by IsCastLegal fail with ErrIllegalCast.
func (a *Arena) CastOp(dt DataType, v Value) (Value, error) {
	if err := a.checkOperand("cast", v); err != nil {
		return NoValue, err
	}

	from := a.DataType(v)
	if from == dt {
		return v, nil
	}
	if !IsCastLegal(from, dt) {
		return NoValue, &ConstructionError{
			Op:        "cast",
			Kind:      a.Kind(v),
			DataType:  from,
			DataType2: dt,
			Err:       ErrIllegalCast,
		}
	}

	out, err := a.NewValueLikeType(v, dt)
	if err != nil {
		return NoValue, errors.Wrapf(err, "cast %s to %s", a.Describe(v), dt)
	}
	a.register(&UnaryOp{typ: UnaryCast, in: v, out: out})
	return out, nil
}

// UnaryOp records out = op(v) where out has the kind and data type of v.
// Casts must go through CastOp.
func (a *Arena) UnaryOp(op UnaryOpType, v Value) (Value, error) {
	if !op.valid() || op == UnaryCast {
		return NoValue, errors.Wrapf(ErrInvalidOperator, "unary op %s", op)
	}
	if err := a.checkOperand(op.String(), v); err != nil {
		return NoValue, err
	}

	out, err := a.NewValueLike(v)
	if err != nil {
		return NoValue, errors.Wrapf(err, "unary op %s", op)
	}
	a.register(&UnaryOp{typ: op, in: v, out: out})
	return out, nil
}

// BinaryOp records out = op(v1, v2) and returns out.
//
// The output kind and data type follow PromoteKind and PromoteDataType.
// Operators with IntegerOutput always produce Int regardless of promotion.
func (a *Arena) BinaryOp(op BinaryOpType, v1, v2 Value) (Value, error) {
	if !op.valid() {
		return NoValue, errors.Wrapf(ErrInvalidOperator, "binary op %s", op)
	}

	template, dt, err := a.promoteNew(v1, v2)
	if err != nil {
		return NoValue, errors.Wrapf(err, "binary op %s", op)
	}
	if op.IntegerOutput() {
		dt = Int
	}

	out, err := a.NewValueLikeType(template, dt)
	if err != nil {
		return NoValue, errors.Wrapf(err, "binary op %s", op)
	}
	a.register(&BinaryOp{typ: op, lhs: v1, rhs: v2, out: out})
	return out, nil
}

// promoteNew resolves the promoted data type of v1 and v2 and picks the
// operand whose kind matches the promoted kind as the template for the
// output. When both match, v2 is the template.
func (a *Arena) promoteNew(v1, v2 Value) (Value, DataType, error) {
	if err := a.checkOperand("promote", v1); err != nil {
		return NoValue, Null, err
	}
	if err := a.checkOperand("promote", v2); err != nil {
		return NoValue, Null, err
	}

	kind, err := PromoteKind(a.Kind(v1), a.Kind(v2))
	if err != nil {
		return NoValue, Null, err
	}
	dt, err := PromoteDataType(a.DataType(v1), a.DataType(v2))
	if err != nil {
		return NoValue, Null, err
	}

	if kind == a.Kind(v2) {
		return v2, dt, nil
	}
	return v1, dt, nil
}

// checkOperand rejects handles that are not values and values whose data
// type is unresolved.
func (a *Arena) checkOperand(op string, v Value) error {
	n := a.node(v)
	if n == nil {
		return &ConstructionError{Op: op, Err: ErrIllTypedOperand}
	}
	if n.dtype == Null {
		return &ConstructionError{
			Op:   op,
			Kind: n.payload.kind(),
			Err:  ErrIllTypedOperand,
		}
	}
	return nil
}
