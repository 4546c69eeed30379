// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ir provides typed expression-graph construction for the fuser.
//
// Every value and statement lives in an Arena. Builders promote operand
// types, allocate the result value and record exactly one statement per
// call. Failures are returned as errors that wrap one of the Err* sentinels
// and can be inspected with errors.As as a *ConstructionError.
//
// Example:
//
//	import "github.com/born-ml/fuser/ir"
//
//	func main() {
//	    a := ir.NewArena()
//	    x, _ := a.NewTensor(ir.Shape{128, 64}, ir.Float)
//	    n := a.NewScalar(ir.Int)
//
//	    y := ir.Must(a.Add(x, n))       // T3_float[128, 64]
//	    _ = ir.Must(a.CeilDiv(y, n))    // always Int
//	    fmt.Print(a)
//	}
package ir

import "github.com/born-ml/fuser/internal/ir"

// Arena owns the values and statements of one expression graph.
type Arena = ir.Arena

// ArenaConfig sizes the initial storage of an Arena.
type ArenaConfig = ir.ArenaConfig

// Value is a handle to a value owned by an Arena.
type Value = ir.Value

// StmtID identifies a statement within its Arena.
type StmtID = ir.StmtID

// Shape represents the dimensions of a tensor view.
type Shape = ir.Shape

// ValueKind is the structural kind of a value.
type ValueKind = ir.ValueKind

// DataType is the element type carried by a value.
type DataType = ir.DataType

// Statement is one recorded operation.
type Statement = ir.Statement

// UnaryOp is a recorded single-operand statement.
type UnaryOp = ir.UnaryOp

// BinaryOp is a recorded two-operand statement.
type BinaryOp = ir.BinaryOp

// UnaryOpType tags a single-operand statement.
type UnaryOpType = ir.UnaryOpType

// BinaryOpType tags a two-operand statement.
type BinaryOpType = ir.BinaryOpType

// ConstructionError describes a rejected construction request.
type ConstructionError = ir.ConstructionError

// NoValue is the invalid handle.
const NoValue = ir.NoValue

// Value kinds.
const (
	KindNone       = ir.KindNone
	KindScalar     = ir.KindScalar
	KindTensorView = ir.KindTensorView
	KindIterDomain = ir.KindIterDomain
)

// Data types.
const (
	Null  = ir.Null
	Bool  = ir.Bool
	Int   = ir.Int
	Half  = ir.Half
	Float = ir.Float
)

// Unary operators.
const (
	UnaryCast  = ir.UnaryCast
	UnaryNeg   = ir.UnaryNeg
	UnaryAbs   = ir.UnaryAbs
	UnaryExp   = ir.UnaryExp
	UnaryCeil  = ir.UnaryCeil
	UnaryFloor = ir.UnaryFloor
)

// Binary operators.
const (
	BinaryAdd     = ir.BinaryAdd
	BinarySub     = ir.BinarySub
	BinaryMul     = ir.BinaryMul
	BinaryDiv     = ir.BinaryDiv
	BinaryMod     = ir.BinaryMod
	BinaryLT      = ir.BinaryLT
	BinaryCeilDiv = ir.BinaryCeilDiv
)

// Construction failures.
var (
	ErrInvalidConstruction      = ir.ErrInvalidConstruction
	ErrIllegalCast              = ir.ErrIllegalCast
	ErrIllTypedOperand          = ir.ErrIllTypedOperand
	ErrUnrepresentablePromotion = ir.ErrUnrepresentablePromotion
	ErrInvalidOperator          = ir.ErrInvalidOperator
)

// NewArena creates an arena with the default configuration.
func NewArena() *Arena {
	return ir.NewArena()
}

// NewArenaWithConfig creates an arena with the given configuration.
func NewArenaWithConfig(cfg ArenaConfig) *Arena {
	return ir.NewArenaWithConfig(cfg)
}

// DefaultArenaConfig returns capacities suited to a typical fusion.
func DefaultArenaConfig() ArenaConfig {
	return ir.DefaultArenaConfig()
}

// PromoteKind returns the kind of the result of combining kinds a and b.
func PromoteKind(a, b ValueKind) (ValueKind, error) {
	return ir.PromoteKind(a, b)
}

// PromoteDataType returns the data type of the result of combining a and b.
func PromoteDataType(a, b DataType) (DataType, error) {
	return ir.PromoteDataType(a, b)
}

// IsCastLegal reports whether a value of type from may be cast to type to.
func IsCastLegal(from, to DataType) bool {
	return ir.IsCastLegal(from, to)
}

// Must returns v or panics with err. It suits graph-building code where a
// rejected request is a programming error.
//
// Example:
//
//	y := ir.Must(a.Mul(x, x))
func Must(v Value, err error) Value {
	if err != nil {
		panic(err)
	}
	return v
}
