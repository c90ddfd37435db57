// Package ops defines one function per operation type, each adding an operation to a graph and
// returning its outputs.
//
// Functions take a Scope as the first argument, which holds the graph and the names of the
// operations already created. Then come the inputs of the operation, followed by its required
// attributes. Optional attributes are given as a trailing variadic list of functional options,
// e.g. Conv2D takes Conv2DDataFormat("NCHW").
//
// Example:
//
//	s := ops.NewScope()
//	x, _ := ops.Placeholder(s, dtypes.Float32, ops.PlaceholderShape(shapes.Make(dtypes.Float32, 2, 3)))
//	y, _ := ops.Const(s, [][]float32{{1, 2, 3}, {4, 5, 6}})
//	sum, err := ops.Add(s, x, y)
//
// Errors are the ones returned by the graph: the functions in this package don't validate anything.
//
// Most of the functions are generated (see gen_ops.go) from the op schemas in the opdefs package.
package ops

// Generates gen_ops.go with one function per op defined in the opdefs schemas.
//go:generate go run ../internal/cmd/ops_generator -output=gen_ops.go
