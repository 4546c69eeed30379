package ir

// NewValueLike returns a new value of the same kind and data type as src.
// A tensor view source propagates its shape to the new value.
func (a *Arena) NewValueLike(src Value) (Value, error) {
	return a.NewValueLikeType(src, a.DataType(src))
}

// NewValueLikeType returns a new value shaped after src with data type dt.
//
// Tensor views derive the output from their own shape. Scalars are freshly
// allocated, and only Float and Int scalars can be constructed this way.
// Anything else fails with ErrInvalidConstruction and allocates nothing.
func (a *Arena) NewValueLikeType(src Value, dt DataType) (Value, error) {
	n := a.node(src)
	if n == nil {
		return NoValue, &ConstructionError{
			Op:        "new_value",
			Kind:      KindNone,
			DataType2: dt,
			Err:       ErrInvalidConstruction,
		}
	}

	switch p := n.payload.(type) {
	case tensorPayload:
		if dt != Null {
			return a.alloc(dt, p.newForOutput()), nil
		}
	case scalarPayload:
		switch dt {
		case Float, Int:
			return a.alloc(dt, scalarPayload{}), nil
		}
	}

	return NoValue, &ConstructionError{
		Op:        "new_value",
		Kind:      n.payload.kind(),
		DataType:  n.dtype,
		DataType2: dt,
		Err:       ErrInvalidConstruction,
	}
}
