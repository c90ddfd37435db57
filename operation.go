package opgraph

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph/opdefs"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/gomlx/opgraph/types/tensors"
	"github.com/pkg/errors"
)

// Operation is a node of the Graph, created by OpDescriptor.Finish.
//
// It is immutable once created.
type Operation struct {
	graph *Graph
	def   *opdefs.OpDef
	name  string

	// inputs flattened: lists of inputs are expanded in place.
	inputs []Output

	// attrs holds the normalized value of every attribute: set, inferred or default.
	attrs map[string]any

	// outputShapes for each output, with lists of outputs expanded in place.
	outputShapes []shapes.Shape

	// outputLists maps the name of each output argument to its position and length in outputShapes.
	outputLists map[string]argRange
}

// argRange is the position of an argument in the flattened inputs or outputs.
type argRange struct {
	start, size int
}

// Graph the operation belongs to.
func (op *Operation) Graph() *Graph { return op.graph }

// Type of the operation, e.g. "Conv2D".
func (op *Operation) Type() string { return op.def.Name }

// Name of the operation, unique in its graph.
func (op *Operation) Name() string { return op.name }

// Def returns the definition of the operation type.
func (op *Operation) Def() *opdefs.OpDef { return op.def }

// NumInputs returns the number of inputs, with lists of inputs counted element by element.
func (op *Operation) NumInputs() int { return len(op.inputs) }

// Input returns the i-th input, counting lists of inputs element by element.
func (op *Operation) Input(i int) Output { return op.inputs[i] }

// NumOutputs returns the number of outputs, with lists of outputs counted element by element.
func (op *Operation) NumOutputs() int { return len(op.outputShapes) }

// Output returns the i-th output of the operation.
// It panics if i is out of range, like indexing a slice.
func (op *Operation) Output(i int) Output {
	if i < 0 || i >= len(op.outputShapes) {
		panic(errors.Errorf("output index %d out of range for %s operation %q with %d outputs",
			i, op.def.Name, op.name, len(op.outputShapes)))
	}
	return Output{Op: op, Index: i}
}

// Outputs returns all the outputs of the operation.
func (op *Operation) Outputs() []Output {
	outputs := make([]Output, len(op.outputShapes))
	for ii := range outputs {
		outputs[ii] = Output{Op: op, Index: ii}
	}
	return outputs
}

// OutputListSize returns the number of outputs of the named output argument, which must be a list.
func (op *Operation) OutputListSize(name string) (int, error) {
	arg := op.def.Output(name)
	if arg == nil {
		return 0, errors.Errorf("%s operation %q has no output named %q", op.def.Name, op.name, name)
	}
	if !arg.IsList() {
		return 0, errors.Errorf("output %q of %s operation %q is not a list", name, op.def.Name, op.name)
	}
	return op.outputLists[name].size, nil
}

// Attr returns the value of the attribute, in the canonical Go representation of its kind
// (see opdefs.NormalizeAttrValue).
func (op *Operation) Attr(name string) (any, error) {
	value, found := op.attrs[name]
	if !found {
		return nil, errors.Errorf("%s operation %q has no attribute %q", op.def.Name, op.name, name)
	}
	return value, nil
}

// AttrNames returns the sorted names of the attributes of the operation.
func (op *Operation) AttrNames() []string {
	names := make([]string, 0, len(op.attrs))
	for name := range op.attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// String implements fmt.Stringer.
func (op *Operation) String() string {
	return fmt.Sprintf("%s(%q)", op.def.Name, op.name)
}

// Write writes the operation in the graph text format, with the given indentation.
func (op *Operation) Write(writer io.Writer, indentation string) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}
	we := func(e elementWriter, indentation string) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		err = e.Write(writer, indentation)
	}
	nextIndent := indentation + IndentationStep

	w("%snode {\n", indentation)
	w("%sname: %q\n", nextIndent, op.name)
	w("%sop: %q\n", nextIndent, op.def.Name)
	for _, input := range op.inputs {
		w("%sinput: ", nextIndent)
		we(input, nextIndent)
		w("\n")
	}
	for _, name := range op.AttrNames() {
		w("%sattr {\n", nextIndent)
		w("%skey: %q\n", nextIndent+IndentationStep, name)
		w("%svalue { %s }\n", nextIndent+IndentationStep, attrValueText(op.attrs[name]))
		w("%s}\n", nextIndent)
	}
	w("%s}", indentation)
	return err
}

// attrValueText converts a normalized attribute value to its text representation, e.g. `i: 3` or
// `list { type: [float32, int32] }`.
func attrValueText(value any) string {
	switch v := value.(type) {
	case string:
		return "s: " + strconv.Quote(v)
	case int64:
		return "i: " + strconv.FormatInt(v, 10)
	case float32:
		return "f: " + strconv.FormatFloat(float64(v), 'g', -1, 32)
	case bool:
		return "b: " + strconv.FormatBool(v)
	case dtypes.DType:
		return "type: " + shapes.DTypeName(v)
	case shapes.Shape:
		return "shape: " + v.DimsString()
	case *tensors.Tensor:
		return "tensor: " + v.Literal()
	}

	// Lists.
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice {
		return fmt.Sprintf("unknown: %q", fmt.Sprintf("%v", value))
	}
	if v.Len() == 0 {
		return "list { }"
	}
	var key string
	parts := make([]string, v.Len())
	for ii := range v.Len() {
		elem := attrValueText(v.Index(ii).Interface())
		key, parts[ii], _ = strings.Cut(elem, ": ")
	}
	return fmt.Sprintf("list { %s: [%s] }", key, strings.Join(parts, ", "))
}
