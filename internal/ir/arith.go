package ir

// Add records v1 + v2.
func (a *Arena) Add(v1, v2 Value) (Value, error) {
	return a.BinaryOp(BinaryAdd, v1, v2)
}

// Sub records v1 - v2.
func (a *Arena) Sub(v1, v2 Value) (Value, error) {
	return a.BinaryOp(BinarySub, v1, v2)
}

// Mul records v1 * v2.
func (a *Arena) Mul(v1, v2 Value) (Value, error) {
	return a.BinaryOp(BinaryMul, v1, v2)
}

// Div records v1 / v2.
func (a *Arena) Div(v1, v2 Value) (Value, error) {
	return a.BinaryOp(BinaryDiv, v1, v2)
}

// Mod records v1 % v2. The result is always Int.
func (a *Arena) Mod(v1, v2 Value) (Value, error) {
	return a.BinaryOp(BinaryMod, v1, v2)
}

// LT records v1 < v2. The result is always Int.
func (a *Arena) LT(v1, v2 Value) (Value, error) {
	return a.BinaryOp(BinaryLT, v1, v2)
}

// CeilDiv records ceil(v1 / v2). The result is always Int.
func (a *Arena) CeilDiv(v1, v2 Value) (Value, error) {
	return a.BinaryOp(BinaryCeilDiv, v1, v2)
}

// Neg records -v.
func (a *Arena) Neg(v Value) (Value, error) {
	return a.UnaryOp(UnaryNeg, v)
}

// Abs records |v|.
func (a *Arena) Abs(v Value) (Value, error) {
	return a.UnaryOp(UnaryAbs, v)
}

// Exp records exp(v).
func (a *Arena) Exp(v Value) (Value, error) {
	return a.UnaryOp(UnaryExp, v)
}

// Ceil records ceil(v).
func (a *Arena) Ceil(v Value) (Value, error) {
	return a.UnaryOp(UnaryCeil, v)
}

// Floor records floor(v).
func (a *Arena) Floor(v Value) (Value, error) {
	return a.UnaryOp(UnaryFloor, v)
}
