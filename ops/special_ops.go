package ops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/gomlx/opgraph/types/tensors"
	"github.com/pkg/errors"
)

// Const adds an operation that produces value as output.
//
// The value can be a *tensors.Tensor, or a Go scalar or (multi-dimensional) slice of a supported type,
// in which case its dtype and shape are derived from it (see tensors.FromValue).
func Const(scope *Scope, value any) (output opgraph.Output, err error) {
	t, err := tensors.FromValue(value)
	if err != nil {
		return output, errors.WithMessage(err, "Const")
	}
	op, err := Build(scope, "Const", nil, map[string]any{
		"dtype": t.DType(),
		"value": t,
	})
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// PlaceholderAttr is an optional argument to Placeholder.
type PlaceholderAttr func(optionalAttr)

// PlaceholderShape sets the optional shape attribute to value. Only its dimensions are used, unknown
// dimensions are given as -1 (see shapes.UnknownDim).
//
// If not specified, defaults to an unknown rank.
func PlaceholderShape(value shapes.Shape) PlaceholderAttr {
	return func(m optionalAttr) {
		m["shape"] = value
	}
}

// Placeholder adds an operation that stands for a tensor that will be fed into the computation.
//
// Arguments:
//   - dtype: The type of elements in the tensor.
func Placeholder(scope *Scope, dtype dtypes.DType, optional ...PlaceholderAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{"dtype": dtype}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Placeholder", nil, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}
