// Package opgraph holds a computation graph in construction: operations are added one at a time, each
// one naming its type, its inputs (outputs of previously added operations) and its attributes.
//
// Among its features:
//
//   - Operations are validated against their definitions in an opdefs.Registry: number and kind of inputs,
//     dtypes, attribute kinds, allowed values and required attributes.
//   - Attributes derived from the inputs (dtypes and list lengths) are inferred, and default values are filled in.
//   - The graph can be written in a human-readable text format.
//
// It doesn't execute anything: kernels, devices and sessions are the job of an executor that consumes the graph.
//
// Operations are usually not created directly, but with the functions of the package
// github.com/gomlx/opgraph/ops, one per operation type.
package opgraph

// IndentationStep used when writing the graph.
const IndentationStep = "  "
