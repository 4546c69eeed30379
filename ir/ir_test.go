// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ir_test

import (
	"errors"
	"testing"

	"github.com/born-ml/fuser/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicAPI builds a small graph through the public aliases.
func TestPublicAPI(t *testing.T) {
	a := ir.NewArenaWithConfig(ir.DefaultArenaConfig())
	x, err := a.NewTensor(ir.Shape{16, 4}, ir.Float)
	require.NoError(t, err)
	n := a.NewScalar(ir.Int)

	y := ir.Must(a.Add(x, n))
	blocks := ir.Must(a.CeilDiv(y, n))

	assert.Equal(t, ir.KindTensorView, a.Kind(blocks))
	assert.Equal(t, ir.Int, a.DataType(blocks))
	assert.Equal(t, 2, a.NumStatements())
	assert.True(t, ir.IsCastLegal(ir.Float, ir.Int))
}

func TestMust_PanicsOnError(t *testing.T) {
	a := ir.NewArena()
	unset := a.NewScalar(ir.Null)

	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ir.ErrIllTypedOperand))

		var cerr *ir.ConstructionError
		assert.True(t, errors.As(err, &cerr))
	}()

	ir.Must(a.Mul(unset, unset))
}
