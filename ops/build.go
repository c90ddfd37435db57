package ops

import (
	"github.com/gomlx/opgraph"
	"github.com/pkg/errors"
)

// optionalAttr holds the optional attributes set by the functional options of the generated functions.
type optionalAttr map[string]any

// Build adds an operation of the given type to the scope's graph: it is named after the scope (see Scope),
// the inputs are added in order, either single outputs (opgraph.Output) or lists (opgraph.OutputList), and
// then the attributes are set.
//
// It is the function used by all the functions of this package, and can be used for operations for which
// there is no function. Any validation is left to the graph.
func Build(scope *Scope, opType string, inputs []opgraph.Input, attrs map[string]any) (*opgraph.Operation, error) {
	name, err := scope.opName(opType)
	if err != nil {
		return nil, err
	}
	op, err := scope.graph.AddOperation(opgraph.OpSpec{
		Type:  opType,
		Name:  name,
		Input: inputs,
		Attrs: attrs,
	})
	if err != nil {
		return nil, err
	}
	scope.reserveName(name)
	return op, nil
}

// makeOutputList returns the outputs of the list output argument name, which starts at the output index start.
// It also returns the index of the output following the list.
func makeOutputList(op *opgraph.Operation, start int, name string) (list []opgraph.Output, next int, err error) {
	size, err := op.OutputListSize(name)
	if err != nil {
		return nil, start, errors.WithMessagef(err, "failed to unpack outputs of %s", op)
	}
	list = make([]opgraph.Output, size)
	for ii := range size {
		list[ii] = op.Output(start + ii)
	}
	return list, start + size, nil
}
