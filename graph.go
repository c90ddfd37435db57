package opgraph

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gomlx/opgraph/opdefs"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
)

// Graph holds the operations of a computation graph in construction.
// See details in NewGraph.
//
// A Graph is not safe for concurrent use: operations must be added from one goroutine at a time.
type Graph struct {
	registry *opdefs.Registry

	// operations in the order they were created.
	operations []*Operation

	// byName indexes the operations by their unique names.
	byName map[string]*Operation
}

// NewGraph creates a new empty Graph, validating its operations with the definitions of the default
// registry (see opdefs.Default).
//
// Operations are added with NewOperation (or AddOperation), usually through the functions in the
// package github.com/gomlx/opgraph/ops.
//
// Once you are all set, call Graph.Build to get the graph in its text format.
//
// It panics if the embedded op schemas fail to load.
func NewGraph() *Graph {
	return NewGraphWithRegistry(must.M1(opdefs.Default()))
}

// NewGraphWithRegistry creates a new empty Graph whose operations are validated against the given registry.
func NewGraphWithRegistry(registry *opdefs.Registry) *Graph {
	return &Graph{
		registry: registry,
		byName:   make(map[string]*Operation),
	}
}

// Registry used to validate the operations of the graph.
func (g *Graph) Registry() *opdefs.Registry {
	return g.registry
}

// elementWriter represents elements of the graph that know how to write themselves.
type elementWriter interface {
	Write(w io.Writer, indentation string) error
}

// NewOperation creates a descriptor for a new operation of the given type and unique name.
// The operation is only added to the graph when OpDescriptor.Finish is called.
func (g *Graph) NewOperation(opType, name string) *OpDescriptor {
	return &OpDescriptor{
		graph:  g,
		opType: opType,
		name:   name,
		attrs:  make(map[string]any),
	}
}

// OpSpec is the specification of an Operation to be added to a Graph with AddOperation.
type OpSpec struct {
	// Type of the operation, e.g. "Conv2D".
	Type string

	// Name of the operation, it must be unique in the graph.
	Name string

	// Input of the operation, in the order they are defined: each either an Output or an OutputList.
	Input []Input

	// Attrs maps attribute names to their values. Inferred attributes and those with a default value can
	// be omitted.
	Attrs map[string]any
}

// AddOperation adds the operation described by spec to the graph.
// It is a shortcut to NewOperation, AddInput (or AddInputList) for each input, SetAttr for each attribute
// and finally OpDescriptor.Finish.
func (g *Graph) AddOperation(spec OpSpec) (*Operation, error) {
	desc := g.NewOperation(spec.Type, spec.Name)
	for _, input := range spec.Input {
		switch in := input.(type) {
		case Output:
			desc.AddInput(in)
		case OutputList:
			desc.AddInputList(in)
		default:
			return nil, errors.Errorf("%s operation %q: unsupported input type %T", spec.Type, spec.Name, input)
		}
	}
	for name, value := range spec.Attrs {
		desc.SetAttr(name, value)
	}
	return desc.Finish()
}

// Operation returns the operation with the given name, or nil if there is none.
func (g *Graph) Operation(name string) *Operation {
	return g.byName[name]
}

// Operations returns the operations of the graph in the order they were created.
func (g *Graph) Operations() []*Operation {
	ops := make([]*Operation, len(g.operations))
	copy(ops, g.operations)
	return ops
}

// NumOperations returns the number of operations in the graph.
func (g *Graph) NumOperations() int {
	return len(g.operations)
}

// addOperation registers a finished operation.
func (g *Graph) addOperation(op *Operation) {
	g.operations = append(g.operations, op)
	g.byName[op.name] = op
}

// Write the graph (a readable text) to the given writer.
//
// It writes empty graphs without an error, to help debugging.
//
// See Graph.Build to check and output the graph.
func (g *Graph) Write(writer io.Writer) error {
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

	for _, op := range g.operations {
		we(op, "")
		w("\n")
	}
	return err
}

// Build checks the validity of the graph and returns it in its text format.
//
// If you want the output of an incomplete graph (without the checking), use Graph.Write instead.
func (g *Graph) Build() ([]byte, error) {
	if len(g.operations) == 0 {
		return nil, errors.New("graph has no operations")
	}
	for _, op := range g.operations {
		for ii, input := range op.inputs {
			if g.byName[input.Op.name] != input.Op {
				return nil, errors.Errorf("input #%d of %s refers to operation %q not in the graph", ii, op, input.Op.name)
			}
		}
	}
	var buf bytes.Buffer
	err := g.Write(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String implements fmt.Stringer, and returns the graph in its text format.
func (g *Graph) String() string {
	var sb strings.Builder
	if err := g.Write(&sb); err != nil {
		return fmt.Sprintf("failed to write graph: %+v", err)
	}
	return sb.String()
}
