package opgraph

import (
	"fmt"
	"io"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph/types/shapes"
)

// Input is an input of an operation: either a single Output or an OutputList.
type Input interface {
	isInput()
}

// Output represents one of the outputs of an Operation: the operation and the index of the output.
//
// The zero value is invalid, and it is rejected as an input of operations.
type Output struct {
	Op    *Operation
	Index int
}

func (Output) isInput() {}

// OutputList is a list of outputs used as one input of an operation that takes a list of tensors
// (e.g. the "values" of Concat).
type OutputList []Output

func (OutputList) isInput() {}

// Ok returns whether the output refers to an existing output of an operation.
func (o Output) Ok() bool {
	return o.Op != nil && o.Index >= 0 && o.Index < o.Op.NumOutputs()
}

// DataType returns the dtype of the output, or dtypes.InvalidDType if the output is not valid.
func (o Output) DataType() dtypes.DType {
	if !o.Ok() {
		return dtypes.InvalidDType
	}
	return o.Op.outputShapes[o.Index].DType
}

// Shape returns the shape of the output.
//
// The dimensions are only known for operations with a static shape: operations with a single output and
// a "shape" attribute (e.g. Placeholder) or a "value" tensor attribute (e.g. Const).
// For all others the rank is unknown and only the dtype is set.
func (o Output) Shape() shapes.Shape {
	if !o.Ok() {
		return shapes.Invalid()
	}
	return o.Op.outputShapes[o.Index].Clone()
}

// Write writes the reference to the output in the graph text format.
func (o Output) Write(w io.Writer, _ string) error {
	_, err := fmt.Fprintf(w, "%q", o.String())
	return err
}

// String implements fmt.Stringer: the name of the operation, followed by ":<index>" for the outputs
// other than the first.
func (o Output) String() string {
	if o.Op == nil {
		return "<invalid>"
	}
	if o.Index == 0 {
		return o.Op.name
	}
	return fmt.Sprintf("%s:%d", o.Op.name, o.Index)
}
