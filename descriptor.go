package opgraph

import (
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph/opdefs"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/gomlx/opgraph/types/tensors"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// OpDescriptor accumulates the inputs and attributes of an operation being created.
// It is created by Graph.NewOperation, and the operation is added to the graph with Finish.
//
// Inputs and attributes are only checked by Finish.
type OpDescriptor struct {
	graph        *Graph
	opType, name string

	// inputs in the order they were added, each either an Output or an OutputList.
	inputs []Input

	// attrs as given by SetAttr, not normalized.
	attrs map[string]any

	finished bool
}

// AddInput appends a single input to the operation.
func (d *OpDescriptor) AddInput(input Output) *OpDescriptor {
	d.inputs = append(d.inputs, input)
	return d
}

// AddInputList appends one input holding a list of outputs, for input arguments that are lists.
func (d *OpDescriptor) AddInputList(inputs []Output) *OpDescriptor {
	d.inputs = append(d.inputs, OutputList(slices.Clone(inputs)))
	return d
}

// SetAttr sets the value of an attribute. The value is converted to the kind of the attribute by Finish,
// see opdefs.NormalizeAttrValue for the accepted Go types.
func (d *OpDescriptor) SetAttr(name string, value any) *OpDescriptor {
	d.attrs[name] = value
	return d
}

// SetAttrString sets an attribute of kind "string".
func (d *OpDescriptor) SetAttrString(name, value string) *OpDescriptor {
	return d.SetAttr(name, value)
}

// SetAttrInt sets an attribute of kind "int".
func (d *OpDescriptor) SetAttrInt(name string, value int64) *OpDescriptor {
	return d.SetAttr(name, value)
}

// SetAttrFloat sets an attribute of kind "float".
func (d *OpDescriptor) SetAttrFloat(name string, value float32) *OpDescriptor {
	return d.SetAttr(name, value)
}

// SetAttrBool sets an attribute of kind "bool".
func (d *OpDescriptor) SetAttrBool(name string, value bool) *OpDescriptor {
	return d.SetAttr(name, value)
}

// SetAttrType sets an attribute of kind "type".
func (d *OpDescriptor) SetAttrType(name string, value dtypes.DType) *OpDescriptor {
	return d.SetAttr(name, value)
}

// SetAttrShape sets an attribute of kind "shape". The DType of the shape is ignored.
func (d *OpDescriptor) SetAttrShape(name string, value shapes.Shape) *OpDescriptor {
	return d.SetAttr(name, value)
}

// SetAttrTensor sets an attribute of kind "tensor".
func (d *OpDescriptor) SetAttrTensor(name string, value *tensors.Tensor) *OpDescriptor {
	return d.SetAttr(name, value)
}

// SetAttrStringList sets an attribute of kind "list(string)".
func (d *OpDescriptor) SetAttrStringList(name string, value []string) *OpDescriptor {
	return d.SetAttr(name, slices.Clone(value))
}

// SetAttrIntList sets an attribute of kind "list(int)".
func (d *OpDescriptor) SetAttrIntList(name string, value []int64) *OpDescriptor {
	return d.SetAttr(name, slices.Clone(value))
}

// SetAttrFloatList sets an attribute of kind "list(float)".
func (d *OpDescriptor) SetAttrFloatList(name string, value []float32) *OpDescriptor {
	return d.SetAttr(name, slices.Clone(value))
}

// SetAttrBoolList sets an attribute of kind "list(bool)".
func (d *OpDescriptor) SetAttrBoolList(name string, value []bool) *OpDescriptor {
	return d.SetAttr(name, slices.Clone(value))
}

// SetAttrTypeList sets an attribute of kind "list(type)".
func (d *OpDescriptor) SetAttrTypeList(name string, value []dtypes.DType) *OpDescriptor {
	return d.SetAttr(name, slices.Clone(value))
}

// SetAttrShapeList sets an attribute of kind "list(shape)".
func (d *OpDescriptor) SetAttrShapeList(name string, value []shapes.Shape) *OpDescriptor {
	return d.SetAttr(name, slices.Clone(value))
}

// Finish validates the operation against its definition and adds it to the graph.
//
// It fails if the operation type is unknown, if the name is empty or already used, if the inputs don't
// match the definition (count, lists, dtypes, graph), if an attribute is unknown, has a value of the wrong
// kind or violates its constraints, or if a required attribute is missing.
//
// Attributes derived from the inputs (dtypes and list lengths) are inferred, and unset optional attributes
// get their default values.
//
// A descriptor can only be finished once.
func (d *OpDescriptor) Finish() (*Operation, error) {
	op, err := d.finish()
	if err != nil {
		return nil, errors.WithMessagef(err, "%s operation %q", d.opType, d.name)
	}
	d.graph.addOperation(op)
	if klog.V(2).Enabled() {
		klog.Infof("opgraph: added %s with %d inputs and %d outputs", op, op.NumInputs(), op.NumOutputs())
	}
	return op, nil
}

func (d *OpDescriptor) finish() (*Operation, error) {
	if d.finished {
		return nil, errors.New("descriptor already finished")
	}
	d.finished = true

	def := d.graph.registry.Lookup(d.opType)
	if def == nil {
		return nil, errors.Errorf("unknown operation type %q", d.opType)
	}
	switch {
	case d.name == "":
		return nil, errors.New("operation name cannot be empty")
	case strings.ContainsAny(d.name, ": \t\n\""):
		return nil, errors.Errorf("invalid operation name %q", d.name)
	case d.graph.byName[d.name] != nil:
		return nil, errors.Errorf("duplicate operation name %q", d.name)
	}

	op := &Operation{
		graph:       d.graph,
		def:         def,
		name:        d.name,
		attrs:       make(map[string]any, len(def.Attrs)),
		outputLists: make(map[string]argRange, len(def.Outputs)),
	}
	inferred, err := d.checkInputs(def, op)
	if err != nil {
		return nil, err
	}
	if err = d.setAttrs(def, op, inferred); err != nil {
		return nil, err
	}
	if err = op.setOutputShapes(); err != nil {
		return nil, err
	}
	return op, nil
}

// checkInputs validates the inputs and flattens them into op.inputs.
// It returns the values of the attributes inferred from the inputs.
func (d *OpDescriptor) checkInputs(def *opdefs.OpDef, op *Operation) (map[string]any, error) {
	if len(d.inputs) != len(def.Inputs) {
		return nil, errors.Errorf("expected %d inputs, got %d", len(def.Inputs), len(d.inputs))
	}
	inferred := make(map[string]any)
	setInferredType := func(argName, attrName string, dtype dtypes.DType) error {
		if previous, found := inferred[attrName]; found && previous.(dtypes.DType) != dtype {
			return errors.Errorf("input %q has dtype %s, but other inputs of type %q have dtype %s",
				argName, shapes.DTypeName(dtype), attrName, shapes.DTypeName(previous.(dtypes.DType)))
		}
		inferred[attrName] = dtype
		return nil
	}
	for ii, arg := range def.Inputs {
		var outputs []Output
		switch in := d.inputs[ii].(type) {
		case Output:
			if arg.IsList() {
				return nil, errors.Errorf("input %q requires a list of outputs, got a single output", arg.Name)
			}
			outputs = []Output{in}
		case OutputList:
			if !arg.IsList() {
				return nil, errors.Errorf("input %q requires a single output, got a list of %d outputs", arg.Name, len(in))
			}
			outputs = in
		default:
			return nil, errors.Errorf("input %q: unsupported input type %T", arg.Name, d.inputs[ii])
		}

		for jj, output := range outputs {
			if !output.Ok() {
				return nil, errors.Errorf("input %q (#%d) is not a valid output", arg.Name, jj)
			}
			if output.Op.graph != d.graph {
				return nil, errors.Errorf("input %q (#%d) %s is from a different graph", arg.Name, jj, output)
			}
			dtype := output.DataType()
			switch {
			case arg.Type != dtypes.InvalidDType:
				if dtype != arg.Type {
					return nil, errors.Errorf("input %q (#%d) must have dtype %s, got %s",
						arg.Name, jj, shapes.DTypeName(arg.Type), shapes.DTypeName(dtype))
				}
			case arg.TypeAttr != "":
				if err := setInferredType(arg.Name, arg.TypeAttr, dtype); err != nil {
					return nil, err
				}
			}
		}

		if arg.NumberAttr != "" {
			if previous, found := inferred[arg.NumberAttr]; found && previous.(int64) != int64(len(outputs)) {
				return nil, errors.Errorf("input %q has %d elements, but other inputs of length %q have %d elements",
					arg.Name, len(outputs), arg.NumberAttr, previous)
			}
			inferred[arg.NumberAttr] = int64(len(outputs))
		}
		if arg.TypeListAttr != "" {
			types := make([]dtypes.DType, len(outputs))
			for jj, output := range outputs {
				types[jj] = output.DataType()
			}
			inferred[arg.TypeListAttr] = types
		}
		op.inputs = append(op.inputs, outputs...)
	}
	return inferred, nil
}

// setAttrs normalizes the attributes set, checks them against the inferred ones, and fills in the defaults.
func (d *OpDescriptor) setAttrs(def *opdefs.OpDef, op *Operation, inferred map[string]any) error {
	for name, value := range d.attrs {
		attr := def.Attr(name)
		if attr == nil {
			return errors.Errorf("unknown attribute %q", name)
		}
		normalized, err := opdefs.NormalizeAttrValue(attr.Kind, value)
		if err != nil {
			return errors.WithMessagef(err, "attribute %q", name)
		}
		if inferredValue, found := inferred[name]; found && !attrValuesEqual(normalized, inferredValue) {
			return errors.Errorf("attribute %q set to %s, but the inputs require %s",
				name, attrValueText(normalized), attrValueText(inferredValue))
		}
		op.attrs[name] = normalized
	}
	for name, value := range inferred {
		op.attrs[name] = value
	}
	for _, attr := range def.Attrs {
		value, found := op.attrs[attr.Name]
		if !found {
			if !attr.HasDefault {
				return errors.Errorf("missing required attribute %q", attr.Name)
			}
			value = attr.Default
			op.attrs[attr.Name] = value
		}
		if err := attr.CheckAttrValue(value); err != nil {
			return err
		}
	}
	return nil
}

// attrValuesEqual compares normalized values of the kinds that can be inferred: type, int and list(type).
func attrValuesEqual(a, b any) bool {
	if typesA, ok := a.([]dtypes.DType); ok {
		typesB, ok := b.([]dtypes.DType)
		return ok && slices.Equal(typesA, typesB)
	}
	return a == b
}

// MaxOutputListLength is the maximum number of outputs of an output list.
const MaxOutputListLength = 1 << 20

// setOutputShapes sets the dtypes of the outputs from the attributes of the operation.
// The dimensions are only known for single output operations with a "shape" attribute or a "value"
// tensor attribute.
func (op *Operation) setOutputShapes() error {
	for _, arg := range op.def.Outputs {
		var types []dtypes.DType
		switch {
		case arg.TypeListAttr != "":
			types = op.attrs[arg.TypeListAttr].([]dtypes.DType)
		default:
			dtype := arg.Type
			if arg.TypeAttr != "" {
				dtype = op.attrs[arg.TypeAttr].(dtypes.DType)
			}
			n := int64(1)
			if arg.NumberAttr != "" {
				n = op.attrs[arg.NumberAttr].(int64)
				if n < 0 {
					return errors.Errorf("output %q has negative length %d", arg.Name, n)
				}
				if n > MaxOutputListLength {
					return errors.Errorf("output %q length %d exceeds the maximum %d", arg.Name, n, MaxOutputListLength)
				}
			}
			types = slices.Repeat([]dtypes.DType{dtype}, int(n))
		}
		op.outputLists[arg.Name] = argRange{start: len(op.outputShapes), size: len(types)}
		for _, dtype := range types {
			op.outputShapes = append(op.outputShapes, shapes.MakeUnknownRank(dtype))
		}
	}

	if len(op.outputShapes) != 1 {
		return nil
	}
	dtype := op.outputShapes[0].DType
	if attr := op.def.Attr("shape"); attr != nil && attr.Kind == opdefs.AttrShape {
		shape := op.attrs["shape"].(shapes.Shape).Clone()
		shape.DType = dtype
		op.outputShapes[0] = shape
	} else if attr := op.def.Attr("value"); attr != nil && attr.Kind == opdefs.AttrTensor {
		value := op.attrs["value"].(*tensors.Tensor)
		if value.DType() != dtype {
			return errors.Errorf("value of dtype %s doesn't match the output dtype %s",
				shapes.DTypeName(value.DType()), shapes.DTypeName(dtype))
		}
		op.outputShapes[0] = value.Shape().Clone()
	}
	return nil
}
