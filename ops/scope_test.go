package ops

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func TestScope_Names(t *testing.T) {
	s := NewScope()
	x := must(Const(s, float32(1)))
	assert.Equal(t, "Const", x.Op.Name())
	sum := must(Add(s, x, x))
	assert.Equal(t, "Add", sum.Op.Name())
	sum = must(Add(s, x, x))
	assert.Equal(t, "Add_1", sum.Op.Name())

	t.Run("sub-scopes", func(t *testing.T) {
		layer := s.SubScope("layer")
		assert.Equal(t, "layer", layer.Namespace())
		assert.Equal(t, "layer/Add", must(Add(layer, x, x)).Op.Name())
		assert.Equal(t, "layer/Add_1", must(Add(layer, x, x)).Op.Name())

		layer1 := s.SubScope("layer")
		assert.Equal(t, "layer_1", layer1.Namespace())
		assert.Equal(t, "layer_1/Add", must(Add(layer1, x, x)).Op.Name())

		inner := layer.SubScope("dense 1")
		assert.Equal(t, "layer/dense_1", inner.Namespace())
		assert.Equal(t, "scope", s.SubScope("").Namespace())
		assert.Equal(t, "n_hidden", s.SubScope("_hidden").Namespace())
		assert.Same(t, s.Graph(), inner.Graph())
	})

	t.Run("WithName", func(t *testing.T) {
		named := must(Add(s.WithName("total"), x, x))
		assert.Equal(t, "total", named.Op.Name())
		assert.Equal(t, "Add_2", must(Add(s, x, x)).Op.Name())

		layer := s.SubScope("named")
		assert.Equal(t, "named/total", must(Add(layer.WithName("total"), x, x)).Op.Name())

		_, err := Add(s.WithName("total"), x, x)
		require.ErrorContains(t, err, `duplicate operation name "total"`)
	})

	t.Run("existing graph", func(t *testing.T) {
		s2 := NewScopeWithGraph(s.Graph())
		assert.Equal(t, "Add_3", must(Add(s2, x, x)).Op.Name())
	})
}

func TestScope_FailedOperationKeepsName(t *testing.T) {
	s := NewScope()
	x := must(Const(s, float32(1)))
	y := must(Const(s, int32(1)))
	_, err := Add(s, x, y)
	require.Error(t, err)
	assert.Equal(t, "Add", must(Add(s, x, x)).Op.Name())

	named := s.WithName("total")
	_, err = Add(named, x, y)
	require.Error(t, err)
	assert.Equal(t, "total", must(Add(named, x, x)).Op.Name())
	_, err = Add(named, x, x)
	require.ErrorContains(t, err, `duplicate operation name "total"`)
}

func TestScope_Finalize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewScope().Finalize()
		require.ErrorContains(t, err, "graph has no operations")
	})

	t.Run("finalized", func(t *testing.T) {
		s := NewScope()
		sub := s.SubScope("sub")
		x := must(Placeholder(sub, dtypes.Float32))
		g := must(s.Finalize())
		assert.Equal(t, 1, g.NumOperations())
		assert.Same(t, g, s.Graph())

		_, err := Neg(s, x)
		require.ErrorContains(t, err, "scope already finalized")
		_, err = Neg(sub, x)
		require.ErrorContains(t, err, "scope already finalized")
		_, err = s.Finalize()
		require.ErrorContains(t, err, "scope already finalized")
	})
}

func TestBuild(t *testing.T) {
	s := NewScope()
	x := must(Const(s, []float32{1, 2}))
	op := must(Build(s, "Square", []opgraph.Input{x}, nil))
	assert.Equal(t, "Square", op.Name())
	assert.Equal(t, "Square", op.Type())

	_, err := Build(s, "Frobnicate", nil, nil)
	require.ErrorContains(t, err, `unknown operation type "Frobnicate"`)
}
