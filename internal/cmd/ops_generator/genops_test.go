package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gomlx/opgraph/internal/utils"
	"github.com/gomlx/opgraph/opdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
op "Const" {
  summary = "Returns a constant tensor."
  output "output" { type_attr = "dtype" }
  attr "value" { type = "tensor" }
  attr "dtype" { type = "type" }
}

op "Convert" {
  summary     = "Converts x to another type."
  description = <<-EOT
    The conversion is done element-wise.
  EOT

  input "x" {
    type_attr   = "T"
    description = "Tensor to convert."
  }
  output "y" {
    type_attr   = "type"
    description = "Converted tensor."
  }

  attr "T" { type = "type" }
  attr "type" {
    type        = "type"
    description = "Target dtype."
  }
  attr "truncate" {
    type        = "bool"
    default     = false
    description = "Truncate instead of rounding."
  }
  attr "dims" {
    type    = "list(int)"
    default = [1, 2]
  }
}

op "SplitInTwo" {
  summary = "LSTM-like split of x."
  input "values" {
    type_attr   = "T"
    number_attr = "N"
  }
  output "parts" {
    type_attr   = "T"
    number_attr = "N"
  }
  output "rest" { type_attr = "T" }
  attr "T" { type = "type" }
  attr "N" { type = "int" }
  attr "shape" { type = "shape" }
}

op "Unstack" {
  summary = "Unpacks x along its first dimension."
  input "x" { type_attr = "T" }
  output "slices" {
    type_attr   = "T"
    number_attr = "num"
  }
  attr "T" { type = "type" }
  attr "num" { type = "int" }
}

op "Barrier" {
  summary = "Waits."
  input "inputs" { type_list_attr = "T" }
  attr "T" { type = "list(type)" }
}
`

func TestGenerateOps(t *testing.T) {
	reg := opdefs.New()
	require.NoError(t, reg.LoadSource([]byte(testSchema), "test.hcl"))
	var buf bytes.Buffer
	require.NoError(t, GenerateOps(&buf, reg))
	src := buf.String()
	fmt.Printf("Generated:\n%s\n", src)

	assert.Contains(t, src, "Don't edit it directly.")
	assert.Contains(t, src, `"github.com/gomlx/gopjrt/dtypes"`)
	assert.Contains(t, src, `"github.com/gomlx/opgraph/types/shapes"`)
	assert.NotContains(t, src, `"github.com/gomlx/opgraph/types/tensors"`)
	assert.NotContains(t, src, "func Const(")

	t.Run("optional attributes", func(t *testing.T) {
		assert.Contains(t, src, `// ConvertAttr is an optional argument to Convert.
type ConvertAttr func(optionalAttr)`)
		assert.Contains(t, src, `// ConvertTruncate sets the optional truncate attribute to value.
//
// value: Truncate instead of rounding.
// If not specified, defaults to false
func ConvertTruncate(value bool) ConvertAttr {
	return func(m optionalAttr) {
		m["truncate"] = value
	}
}`)
		assert.Contains(t, src, "// If not specified, defaults to [1, 2]\nfunc ConvertDims(value []int64) ConvertAttr {")
	})

	t.Run("function", func(t *testing.T) {
		assert.Contains(t, src, `// Convert converts x to another type.
//
// The conversion is done element-wise.
//
// Arguments:
//   - x: Tensor to convert.
//   - type: Target dtype.
//
// Returns:
//   - y: Converted tensor.
func Convert(scope *Scope, x opgraph.Output, type_ dtypes.DType, optional ...ConvertAttr) (y opgraph.Output, err error) {
	attrs := map[string]any{"type": type_}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Convert", []opgraph.Input{x}, attrs)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}`)
	})

	t.Run("list outputs", func(t *testing.T) {
		assert.Contains(t, src, "// SplitInTwo LSTM-like split of x.\n")
		assert.Contains(t, src, `func SplitInTwo(scope *Scope, values []opgraph.Output, shape shapes.Shape) (parts []opgraph.Output, rest opgraph.Output, err error) {
	attrs := map[string]any{"shape": shape}
	op, err := Build(scope, "SplitInTwo", []opgraph.Input{opgraph.OutputList(values)}, attrs)
	if err != nil {
		return
	}
	var idx int
	if parts, idx, err = makeOutputList(op, idx, "parts"); err != nil {
		return
	}
	rest = op.Output(idx)
	return
}`)
	})

	t.Run("last list output", func(t *testing.T) {
		assert.Contains(t, src, `	op, err := Build(scope, "Unstack", []opgraph.Input{x}, attrs)
	if err != nil {
		return
	}
	var idx int
	if slices, _, err = makeOutputList(op, idx, "slices"); err != nil {
		return
	}
	return
}`)
	})

	t.Run("no outputs", func(t *testing.T) {
		assert.Contains(t, src, `func Barrier(scope *Scope, inputs []opgraph.Output) (op *opgraph.Operation, err error) {
	return Build(scope, "Barrier", []opgraph.Input{opgraph.OutputList(inputs)}, nil)
}`)
	})
}

func TestGoParamName(t *testing.T) {
	used := utils.MakeSet[string]()
	assert.Equal(t, "inputSizes", goParamName("input_sizes", used))
	assert.Equal(t, "type_", goParamName("type", used))
	assert.Equal(t, "real_", goParamName("real", used))
	assert.Equal(t, "idx_", goParamName("idx", used))
	assert.Equal(t, "dstT", goParamName("DstT", used))
	assert.Equal(t, "inputSizes_", goParamName("input_sizes", used))
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "returns x + y.", lowerFirst("Returns x + y."))
	assert.Equal(t, "LSTM cell.", lowerFirst("LSTM cell."))
	assert.Equal(t, "A", lowerFirst("A"))
	assert.Equal(t, "", lowerFirst(""))
	assert.Equal(t, "a b c", oneLine("  a\n b\tc "))
}
