package tensors

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFromValue(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		tensor, err := FromValue(3.0)
		require.NoError(t, err)
		assert.Equal(t, dtypes.Float64, tensor.DType())
		assert.True(t, tensor.Shape().IsScalar())
		assert.Equal(t, []float64{3}, tensor.Flat())
		assert.Equal(t, "dense<3.0> : float64[]", tensor.Literal())
	})

	t.Run("matrix", func(t *testing.T) {
		tensor, err := FromValue([][]int32{{1, 2, 3}, {4, 5, 6}})
		require.NoError(t, err)
		require.NoError(t, tensor.Shape().Check(dtypes.Int32, 2, 3))
		assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, tensor.Flat())
		assert.Equal(t, "dense<[[1, 2, 3], [4, 5, 6]]> : int32[2,3]", tensor.Literal())
		assert.Equal(t, 6, tensor.Size())
	})

	t.Run("int is converted", func(t *testing.T) {
		tensor, err := FromValue([]int{7, 8})
		require.NoError(t, err)
		assert.Equal(t, dtypes.Int64, tensor.DType())
		assert.Equal(t, []int64{7, 8}, tensor.Flat())
	})

	t.Run("float16", func(t *testing.T) {
		tensor, err := FromValue([]float16.Float16{float16.Fromfloat32(1.5), float16.Fromfloat32(-2)})
		require.NoError(t, err)
		assert.Equal(t, dtypes.Float16, tensor.DType())
		assert.Equal(t, "dense<[1.5, -2.0]> : float16[2]", tensor.Literal())
	})

	t.Run("bool and complex", func(t *testing.T) {
		tensor, err := FromValue([]bool{true, false})
		require.NoError(t, err)
		assert.Equal(t, "dense<[true, false]> : bool[2]", tensor.Literal())

		tensor, err = FromValue(complex64(1 + 2i))
		require.NoError(t, err)
		assert.Equal(t, "dense<(1.0, 2.0)> : complex64[]", tensor.Literal())
	})

	t.Run("tensor pass-through", func(t *testing.T) {
		tensor, err := FromValue(float32(1))
		require.NoError(t, err)
		same, err := FromValue(tensor)
		require.NoError(t, err)
		assert.Same(t, tensor, same)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := FromValue([][]float32{{1, 2}, {3}})
		require.Error(t, err)
		_, err = FromValue("not a number")
		require.Error(t, err)
		_, err = FromValue((*Tensor)(nil))
		require.ErrorContains(t, err, "nil *Tensor")
		_, err = FromValue([]float32{})
		require.Error(t, err)
	})
}

func TestFromFlatAndDimensions(t *testing.T) {
	tensor, err := FromFlatAndDimensions([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	require.NoError(t, tensor.Shape().Check(dtypes.Float32, 3, 2))
	assert.Equal(t, "dense<[[1.0, 2.0], [3.0, 4.0], [5.0, 6.0]]> : float32[3,2]", tensor.Literal())
	assert.Equal(t, "(Float32)[3 2]: [[1.0, 2.0], [3.0, 4.0], [5.0, 6.0]]", tensor.String())

	// Flat values are copied.
	flat := []int64{1, 2}
	tensor, err = FromFlatAndDimensions(flat, 2)
	require.NoError(t, err)
	flat[0] = 100
	assert.Equal(t, []int64{1, 2}, tensor.Flat())

	_, err = FromFlatAndDimensions([]float32{1, 2, 3}, 2, 2)
	require.Error(t, err)
	_, err = FromFlatAndDimensions(1.0)
	require.Error(t, err)
	_, err = FromFlatAndDimensions([]float32{1, 2}, -1, 2)
	require.Error(t, err)
}
