package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) (*Arena, Value, Value, Value) {
	t.Helper()

	a := NewArenaWithConfig(ArenaConfig{InitialValues: 4, InitialStatements: 2})
	tv, err := a.NewTensor(Shape{2, 3}, Float)
	require.NoError(t, err)
	s := a.NewScalar(Int)

	sum, err := a.Add(tv, s)
	require.NoError(t, err)
	blocks, err := a.CeilDiv(sum, s)
	require.NoError(t, err)

	return a, tv, s, blocks
}

func TestArena_Inputs(t *testing.T) {
	a, tv, s, _ := buildSample(t)
	assert.Equal(t, []Value{tv, s}, a.Inputs())
	assert.Equal(t, 4, a.NumValues())
	assert.Equal(t, 2, a.NumStatements())
}

func TestArena_Uses(t *testing.T) {
	a, tv, s, blocks := buildSample(t)

	assert.Len(t, a.Uses(tv), 1)
	assert.Len(t, a.Uses(s), 2, "fan-out to both statements")
	assert.Empty(t, a.Uses(blocks))
	assert.Nil(t, a.Uses(NoValue))

	_, ok := a.Producer(tv)
	assert.False(t, ok)
}

func TestArena_StatementsTopological(t *testing.T) {
	a, _, _, _ := buildSample(t)

	defined := make(map[Value]bool)
	for _, v := range a.Inputs() {
		defined[v] = true
	}
	for _, stmt := range a.Statements() {
		for _, in := range stmt.Inputs() {
			assert.True(t, defined[in], "operand %d used before definition", in)
		}
		defined[stmt.Output()] = true
	}

	first, ok := a.Statement(1)
	require.True(t, ok)
	assert.Equal(t, "add", first.OpName())

	_, ok = a.Statement(0)
	assert.False(t, ok)
	_, ok = a.Statement(3)
	assert.False(t, ok)
}

func TestArena_Format(t *testing.T) {
	a := NewArena()
	x := a.NewScalar(Float)
	y := a.NewScalar(Float)

	sum, err := a.Add(x, y)
	require.NoError(t, err)
	_, err = a.CastOp(Int, sum)
	require.NoError(t, err)
	tv, err := a.NewTensor(Shape{2}, Float)
	require.NoError(t, err)
	id, err := a.NewIterDomain(4)
	require.NoError(t, err)

	assert.Equal(t, "f3 = add(f1, f2)\ni4 = cast<int>(f3)\n", a.String())
	assert.Equal(t, "T5_float[2]", a.Describe(tv))
	assert.Equal(t, "iS6{4}", a.Describe(id))
	assert.Equal(t, "<invalid>", a.Describe(NoValue))
}

func TestArena_RejectsBadInputs(t *testing.T) {
	a := NewArena()

	_, err := a.NewTensor(Shape{2, 0}, Float)
	assert.Error(t, err)

	_, err = a.NewIterDomain(0)
	assert.Error(t, err)

	assert.Equal(t, 0, a.NumValues())
	assert.False(t, a.IsValue(NoValue))
	assert.Equal(t, KindNone, a.Kind(NoValue))
	assert.Equal(t, Null, a.DataType(NoValue))
	assert.Nil(t, a.Shape(NoValue))
}

func TestShape(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, 24, s.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, "[2, 3, 4]", s.String())
	assert.NoError(t, s.Validate())
	assert.Error(t, Shape{1, -1}.Validate())
	assert.True(t, s.Equal(s.Clone()))
	assert.False(t, s.Equal(Shape{2, 3}))
}
