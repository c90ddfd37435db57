package ops

import (
	"fmt"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/gomlx/opgraph/types/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialOps(t *testing.T) {
	s := NewScope()

	t.Run("Const", func(t *testing.T) {
		c := must(Const(s, [][]float32{{1, 2, 3}, {4, 5, 6}}))
		assert.NoError(t, c.Shape().Check(dtypes.Float32, 2, 3))
		_, err := Const(s, "not a tensor")
		require.Error(t, err)
		_, err = Const(s, [][]int32{{1, 2}, {3}})
		require.Error(t, err)
		_, err = Const(s, (*tensors.Tensor)(nil))
		require.Error(t, err)
	})

	t.Run("Placeholder", func(t *testing.T) {
		x := must(Placeholder(s, dtypes.Int64))
		assert.Equal(t, dtypes.Int64, x.DataType())
		assert.True(t, x.Shape().UnknownRank)

		y := must(Placeholder(s, dtypes.Float32, PlaceholderShape(shapes.Make(dtypes.Float32, shapes.UnknownDim, 3))))
		assert.Equal(t, []int{shapes.UnknownDim, 3}, y.Shape().Dimensions)
		assert.Equal(t, "Placeholder_1", y.Op.Name())
	})
}

func TestGeneratedOps(t *testing.T) {
	s := NewScope()
	x := must(Placeholder(s, dtypes.Float32, PlaceholderShape(shapes.Make(dtypes.Float32, 1, 8, 8, 3))))
	filter := must(Const(s, [][][][]float32{{{{1, 2, 3}}}}))
	i32 := must(Const(s, []int32{0, 1}))

	t.Run("single output", func(t *testing.T) {
		y := must(Add(s, x, x))
		assert.Equal(t, dtypes.Float32, y.DataType())
		assert.Equal(t, 0, y.Index)
		_, err := Add(s, x, i32)
		require.ErrorContains(t, err, `Add operation "Add_1"`)
	})

	t.Run("optional attributes", func(t *testing.T) {
		conv := must(Conv2D(s, x, filter, []int64{1, 1, 1, 1}, "SAME",
			Conv2DDataFormat("NCHW"), Conv2DDilations([]int64{1, 2, 2, 1})))
		assert.Equal(t, "NCHW", must(conv.Op.Attr("data_format")))
		assert.Equal(t, []int64{1, 2, 2, 1}, must(conv.Op.Attr("dilations")))
		assert.Equal(t, true, must(conv.Op.Attr("use_cudnn_on_gpu")))

		_, err := Conv2D(s, x, filter, []int64{1, 1}, "SAME")
		require.ErrorContains(t, err, "less than the minimum 4")
		_, err = Conv2D(s, x, filter, []int64{1, 1, 1, 1}, "SAME", Conv2DDataFormat("CHWN"))
		require.ErrorContains(t, err, "not in the allowed values")

		product := must(MatMul(s, x, x, MatMulTransposeB(true)))
		assert.Equal(t, true, must(product.Op.Attr("transpose_b")))
		assert.Equal(t, false, must(product.Op.Attr("transpose_a")))
	})

	t.Run("tuple of outputs", func(t *testing.T) {
		y, idx, err := Unique(s, i32, UniqueOutIdx(dtypes.Int64))
		require.NoError(t, err)
		assert.Equal(t, dtypes.Int32, y.DataType())
		assert.Equal(t, dtypes.Int64, idx.DataType())
		assert.Equal(t, 1, idx.Index)
		assert.Same(t, y.Op, idx.Op)

		outputs := make([]opgraph.Output, 6)
		outputs[0], outputs[1], outputs[2], outputs[3], outputs[4], outputs[5], err =
			FusedBatchNormV3(s, x, x, x, x, x, FusedBatchNormV3IsTraining(false))
		require.NoError(t, err)
		for ii, output := range outputs {
			assert.Equal(t, ii, output.Index)
			assert.Equal(t, dtypes.Float32, output.DataType())
		}
		assert.Equal(t, float32(0.0001), must(outputs[0].Op.Attr("epsilon")))
	})

	t.Run("list outputs", func(t *testing.T) {
		axis := must(Const(s, int32(0)))
		parts := must(Split(s, axis, x, 3))
		require.Len(t, parts, 3)
		for ii, part := range parts {
			assert.Equal(t, ii, part.Index)
		}

		splitDim := must(Const(s, int64(1)))
		indices := must(Const(s, [][]int64{{0, 0}, {1, 2}}))
		values := must(Const(s, []float64{1, 2}))
		shape := must(Const(s, []int64{2, 3}))
		outIndices, outValues, outShape, err := SparseSplit(s, splitDim, indices, values, shape, 2)
		require.NoError(t, err)
		require.Len(t, outIndices, 2)
		require.Len(t, outValues, 2)
		require.Len(t, outShape, 2)
		assert.Equal(t, []int{0, 1}, []int{outIndices[0].Index, outIndices[1].Index})
		assert.Equal(t, []int{2, 3}, []int{outValues[0].Index, outValues[1].Index})
		assert.Equal(t, []int{4, 5}, []int{outShape[0].Index, outShape[1].Index})
		assert.Equal(t, dtypes.Float64, outValues[1].DataType())
		assert.Equal(t, dtypes.Int64, outShape[0].DataType())

		identity := must(IdentityN(s, []opgraph.Output{i32, values}))
		require.Len(t, identity, 2)
		assert.Equal(t, dtypes.Float64, identity[1].DataType())
	})

	t.Run("list followed by single output", func(t *testing.T) {
		splits := []opgraph.Output{must(Const(s, []int64{0, 2})), must(Const(s, []int64{0, 1, 3}))}
		dense := must(Const(s, []float32{1, 2, 3}))
		nested, denseValues, err := RaggedGather(s, splits, dense, i32, 1)
		require.NoError(t, err)
		require.Len(t, nested, 1)
		assert.Equal(t, dtypes.Int64, nested[0].DataType())
		assert.Equal(t, 1, denseValues.Index)
		assert.Equal(t, dtypes.Float32, denseValues.DataType())
		assert.Equal(t, int64(2), must(denseValues.Op.Attr("params_ragged_rank")))

		nested, denseValues, err = RaggedGather(s, splits, dense, i32, 0)
		require.NoError(t, err)
		assert.Empty(t, nested)
		assert.Equal(t, 0, denseValues.Index)
	})

	t.Run("list inputs", func(t *testing.T) {
		merged := must(DynamicStitch(s, []opgraph.Output{i32, i32}, []opgraph.Output{x, x}))
		assert.Equal(t, dtypes.Float32, merged.DataType())
		_, err := DynamicStitch(s, []opgraph.Output{i32}, []opgraph.Output{x, x})
		require.ErrorContains(t, err, `other inputs of length "N"`)

		concat := must(ConcatV2(s, []opgraph.Output{x, x}, must(Const(s, int64(3)))))
		assert.Equal(t, dtypes.Int64, must(concat.Op.Attr("Tidx")))
	})

	t.Run("no outputs", func(t *testing.T) {
		condition := must(Const(s, true))
		op := must(Assert(s, condition, []opgraph.Output{x, i32}, AssertSummarize(5)))
		assert.Equal(t, 0, op.NumOutputs())
		assert.Equal(t, int64(5), must(op.Attr("summarize")))
		assert.Equal(t, []dtypes.DType{dtypes.Float32, dtypes.Int32}, must(op.Attr("T")))

		noop := must(NoOp(s))
		assert.Equal(t, "NoOp", noop.Name())
		assert.Equal(t, 0, noop.NumInputs())
	})

	t.Run("renamed parameters", func(t *testing.T) {
		re := must(Const(s, []float64{1}))
		im := must(Const(s, []float64{2}))
		c := must(Complex(s, re, im, ComplexTout(dtypes.Complex128)))
		assert.Equal(t, dtypes.Complex128, c.DataType())

		bits := must(Bitcast(s, i32, dtypes.Float32))
		assert.Equal(t, dtypes.Float32, bits.DataType())
	})

	t.Run("static shapes", func(t *testing.T) {
		v := must(VariableV2(s, shapes.Make(dtypes.InvalidDType, 2, 2), dtypes.Float32, VariableV2SharedName("v")))
		assert.NoError(t, v.Shape().Check(dtypes.Float32, 2, 2))
		assert.Equal(t, "", must(v.Op.Attr("container")))
	})

	program := must(s.Finalize())
	fmt.Printf("%s graph has %d operations\n", t.Name(), program.NumOperations())
	assert.Contains(t, program.String(), `op: "RaggedGather"`)
}
