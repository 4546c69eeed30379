package ir

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewValueLike_TypeStable checks that cloning keeps kind and data type.
func TestNewValueLike_TypeStable(t *testing.T) {
	a := NewArena()

	tv, err := a.NewTensor(Shape{4, 8}, Half)
	require.NoError(t, err)

	for _, src := range []Value{a.NewScalar(Float), a.NewScalar(Int), tv} {
		out, err := a.NewValueLike(src)
		require.NoError(t, err)

		assert.NotEqual(t, src, out)
		assert.Equal(t, a.Kind(src), a.Kind(out))
		assert.Equal(t, a.DataType(src), a.DataType(out))
	}
}

func TestNewValueLikeType_TensorPropagatesShape(t *testing.T) {
	a := NewArena()

	shape := Shape{2, 3}
	tv, err := a.NewTensor(shape, Float)
	require.NoError(t, err)

	out, err := a.NewValueLikeType(tv, Int)
	require.NoError(t, err)

	assert.Equal(t, KindTensorView, a.Kind(out))
	assert.Equal(t, Int, a.DataType(out))
	assert.True(t, shape.Equal(a.Shape(out)))

	// The output owns its own shape.
	shape[0] = 7
	got := a.Shape(out)
	got[1] = 9
	assert.Equal(t, Shape{2, 3}, a.Shape(out))
}

func TestNewValueLikeType_UnsupportedScalar(t *testing.T) {
	a := NewArena()
	s := a.NewScalar(Float)
	before := a.NumValues()

	for _, dt := range []DataType{Half, Bool, Null} {
		_, err := a.NewValueLikeType(s, dt)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConstruction)

		var cerr *ConstructionError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, KindScalar, cerr.Kind)
		assert.Equal(t, dt, cerr.DataType2)
		assert.Contains(t, err.Error(), "scalar")
		assert.Contains(t, err.Error(), dt.String())
	}

	assert.Equal(t, before, a.NumValues(), "failed construction must not allocate")
}

func TestNewValueLikeType_NonArithmeticKind(t *testing.T) {
	a := NewArena()
	id, err := a.NewIterDomain(16)
	require.NoError(t, err)

	_, err = a.NewValueLikeType(id, Int)
	assert.ErrorIs(t, err, ErrInvalidConstruction)
	assert.Contains(t, err.Error(), "iter_domain")

	_, err = a.NewValueLike(NoValue)
	assert.ErrorIs(t, err, ErrInvalidConstruction)
}

func TestNewValueLike_HasNoProducer(t *testing.T) {
	a := NewArena()
	out, err := a.NewValueLike(a.NewScalar(Int))
	require.NoError(t, err)

	_, ok := a.Producer(out)
	assert.False(t, ok)
	assert.Equal(t, 0, a.NumStatements())
}
