package opgraph

import (
	"fmt"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/gomlx/opgraph/types/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func must1[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// constant adds a Const operation to the graph.
func constant(g *Graph, name string, value any) Output {
	t := must1(tensors.FromValue(value))
	op := must1(g.AddOperation(OpSpec{
		Type:  "Const",
		Name:  name,
		Attrs: map[string]any{"dtype": t.DType(), "value": t},
	}))
	return op.Output(0)
}

func TestGraph_Build(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		g := NewGraph()
		_, err := g.Build()
		require.ErrorContains(t, err, "graph has no operations")
		assert.Equal(t, "", g.String())
	})

	t.Run("add", func(t *testing.T) {
		g := NewGraph()
		a := constant(g, "a", []int32{1, 2})
		b := constant(g, "b", []int32{3, 4})
		sum := must1(g.AddOperation(OpSpec{Type: "Add", Name: "sum", Input: []Input{a, b}}))
		program := string(must1(g.Build()))
		fmt.Printf("%s graph:\n%s", t.Name(), program)
		assert.Contains(t, program, `node {
  name: "a"
  op: "Const"
  attr {
    key: "dtype"
    value { type: int32 }
  }
  attr {
    key: "value"
    value { tensor: dense<[1, 2]> : int32[2] }
  }
}
`)
		assert.Contains(t, program, `node {
  name: "sum"
  op: "Add"
  input: "a"
  input: "b"
  attr {
    key: "T"
    value { type: int32 }
  }
}
`)
		assert.Equal(t, 3, g.NumOperations())
		assert.Same(t, sum, g.Operation("sum"))
		assert.Nil(t, g.Operation("missing"))
		ops := g.Operations()
		require.Len(t, ops, 3)
		assert.Equal(t, "a", ops[0].Name())
		assert.Equal(t, `Add("sum")`, sum.String())
		assert.Same(t, g, sum.Graph())
		assert.Equal(t, "Add", sum.Type())
	})

	t.Run("list attributes", func(t *testing.T) {
		g := NewGraph()
		x := constant(g, "x", [][][][]float32{{{{1}}}})
		f := constant(g, "f", [][][][]float32{{{{2}}}})
		conv := must1(g.NewOperation("Conv2D", "conv").
			AddInput(x).AddInput(f).
			SetAttrIntList("strides", []int64{1, 1, 1, 1}).
			SetAttrString("padding", "SAME").
			SetAttrBool("use_cudnn_on_gpu", false).
			Finish())
		program := g.String()
		assert.Contains(t, program, `    key: "strides"
    value { list { i: [1, 1, 1, 1] } }`)
		assert.Contains(t, program, `    key: "explicit_paddings"
    value { list { } }`)
		assert.Contains(t, program, `    key: "data_format"
    value { s: "NHWC" }`)
		assert.Contains(t, program, `    key: "use_cudnn_on_gpu"
    value { b: false }`)
		assert.Equal(t, []string{"T", "data_format", "dilations", "explicit_paddings", "padding", "strides", "use_cudnn_on_gpu"},
			conv.AttrNames())
	})

	t.Run("output references", func(t *testing.T) {
		g := NewGraph()
		x := constant(g, "x", []float32{1, 2, 1})
		unique := must1(g.AddOperation(OpSpec{Type: "Unique", Name: "unique", Input: []Input{x}}))
		must1(g.AddOperation(OpSpec{Type: "Identity", Name: "idx", Input: []Input{unique.Output(1)}}))
		program := g.String()
		assert.Contains(t, program, `input: "unique:1"`)
		assert.Equal(t, "unique", unique.Output(0).String())
		assert.Equal(t, "<invalid>", Output{}.String())
	})
}

func TestOperation_Outputs(t *testing.T) {
	g := NewGraph()
	axis := constant(g, "axis", int32(0))
	value := constant(g, "value", []float32{1, 2, 3})

	t.Run("number attr", func(t *testing.T) {
		split := must1(g.AddOperation(OpSpec{
			Type:  "Split",
			Name:  "split",
			Input: []Input{axis, value},
			Attrs: map[string]any{"num_split": 3},
		}))
		assert.Equal(t, 3, split.NumOutputs())
		assert.Equal(t, 3, must1(split.OutputListSize("output")))
		for _, output := range split.Outputs() {
			assert.Equal(t, dtypes.Float32, output.DataType())
			assert.True(t, output.Shape().UnknownRank)
		}
		assert.Equal(t, int64(3), must1(split.Attr("num_split")))
		assert.Equal(t, dtypes.Float32, must1(split.Attr("T")))
		_, err := split.Attr("missing")
		require.ErrorContains(t, err, `has no attribute "missing"`)
		_, err = split.OutputListSize("missing")
		require.ErrorContains(t, err, `has no output named "missing"`)
		assert.PanicsWithError(t, `output index 3 out of range for Split operation "split" with 3 outputs`,
			func() { split.Output(3) })
		assert.Panics(t, func() { split.Output(-1) })
		assert.False(t, Output{Op: split, Index: 3}.Ok())
		assert.Equal(t, dtypes.InvalidDType, Output{Op: split, Index: 3}.DataType())
		assert.False(t, Output{}.Shape().Ok())
	})

	t.Run("multiple outputs", func(t *testing.T) {
		unique := must1(g.AddOperation(OpSpec{Type: "Unique", Name: "unique", Input: []Input{value}}))
		require.Equal(t, 2, unique.NumOutputs())
		assert.Equal(t, dtypes.Float32, unique.Output(0).DataType())
		assert.Equal(t, dtypes.Int32, unique.Output(1).DataType())
		_, err := unique.OutputListSize("y")
		require.ErrorContains(t, err, "is not a list")
	})

	t.Run("type list", func(t *testing.T) {
		identity := must1(g.AddOperation(OpSpec{
			Type:  "IdentityN",
			Name:  "identity_n",
			Input: []Input{OutputList{axis, value}},
		}))
		require.Equal(t, 2, identity.NumOutputs())
		assert.Equal(t, 2, identity.NumInputs())
		assert.Equal(t, axis, identity.Input(0))
		assert.Equal(t, dtypes.Int32, identity.Output(0).DataType())
		assert.Equal(t, dtypes.Float32, identity.Output(1).DataType())
		assert.Equal(t, []dtypes.DType{dtypes.Int32, dtypes.Float32}, must1(identity.Attr("T")))
		assert.Contains(t, g.String(), `value { list { type: [int32, float32] } }`)
	})

	t.Run("static shapes", func(t *testing.T) {
		assert.NoError(t, value.Shape().Check(dtypes.Float32, 3))
		assert.NoError(t, axis.Shape().Check(dtypes.Int32))

		x := must1(g.NewOperation("Placeholder", "x").
			SetAttrType("dtype", dtypes.Float64).
			SetAttrShape("shape", shapes.Make(dtypes.Int8, 2, shapes.UnknownDim)).
			Finish())
		shape := x.Output(0).Shape()
		assert.Equal(t, dtypes.Float64, shape.DType)
		assert.Equal(t, []int{2, shapes.UnknownDim}, shape.Dimensions)
		assert.Contains(t, g.String(), `value { shape: [2,?] }`)

		y := must1(g.NewOperation("Placeholder", "y").SetAttr("dtype", "float32").Finish())
		assert.True(t, y.Output(0).Shape().UnknownRank)
		assert.Equal(t, dtypes.Float32, y.Output(0).DataType())
	})
}
