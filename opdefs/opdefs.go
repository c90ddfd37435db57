// Package opdefs holds the definitions of graph operations: their inputs, outputs and attributes.
//
// The definitions are data: they are written in HCL schema files, one "op" block per operation, and
// loaded into a Registry. Both the graph runtime (to validate the operations being built) and the
// code generator of the ops package (to write one Go function per operation) are driven by it.
//
// Example of a schema:
//
//	op "BiasAdd" {
//	  summary = "Adds bias to value."
//
//	  input "value" { type_attr = "T" }
//	  input "bias"  { type_attr = "T" }
//	  output "output" { type_attr = "T" }
//
//	  attr "T" {
//	    type           = "type"
//	    allowed_values = ["float16", "bfloat16", "float32", "float64"]
//	  }
//	  attr "data_format" {
//	    type    = "string"
//	    default = "NHWC"
//	  }
//	}
//
// The embedded default schemas are accessible with Default.
package opdefs

import (
	"github.com/gomlx/gopjrt/dtypes"
)

// OpDef defines one operation type.
type OpDef struct {
	// Name of the operation type, e.g. "Conv2D". It is also the name of the generated Go function.
	Name string

	// Summary is a one-line description, Description is an optional longer one.
	Summary, Description string

	Inputs  []*ArgDef
	Outputs []*ArgDef
	Attrs   []*AttrDef

	// Stateful ops have side effects or depend on state (variables, random number generators).
	Stateful bool
}

// ArgDef defines an input or output argument of an operation.
//
// Exactly one of Type, TypeAttr or TypeListAttr defines the dtype of the argument.
// If NumberAttr is set, the argument is a list of NumberAttr tensors of the same dtype.
// If TypeListAttr is set, the argument is a list of tensors, one per dtype in the attribute.
type ArgDef struct {
	Name        string
	Description string

	// Type is the fixed dtype of the argument, or dtypes.InvalidDType if it is given by an attribute.
	Type dtypes.DType

	TypeAttr     string
	NumberAttr   string
	TypeListAttr string
}

// IsList returns whether the argument is a list of tensors.
func (arg *ArgDef) IsList() bool {
	return arg.NumberAttr != "" || arg.TypeListAttr != ""
}

// AttrDef defines an attribute of an operation.
type AttrDef struct {
	Name        string
	Kind        AttrKind
	Description string

	// HasDefault indicates the attribute is optional, and Default holds its value, in the canonical
	// Go representation of its Kind (see NormalizeAttrValue).
	HasDefault bool
	Default    any

	// AllowedValues, if not empty, restricts the values of "string" and "type" attributes (or their
	// lists). Types are given by their names, e.g. "float32".
	AllowedValues []string

	// Minimum for "int" attributes, or the minimum length of lists.
	Minimum *int64
}

// Attr returns the definition of the named attribute, or nil if not defined.
func (def *OpDef) Attr(name string) *AttrDef {
	for _, attr := range def.Attrs {
		if attr.Name == name {
			return attr
		}
	}
	return nil
}

// Input returns the definition of the named input, or nil if not defined.
func (def *OpDef) Input(name string) *ArgDef {
	for _, arg := range def.Inputs {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// Output returns the definition of the named output, or nil if not defined.
func (def *OpDef) Output(name string) *ArgDef {
	for _, arg := range def.Outputs {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// IsInferredAttr returns whether the value of the attribute is derived from the inputs of the operation:
// a type attribute of an input, the number of elements of an input list, or the types of an input list.
//
// Inferred attributes are not parameters of the generated functions.
func (def *OpDef) IsInferredAttr(name string) bool {
	for _, input := range def.Inputs {
		if input.TypeAttr == name || input.NumberAttr == name || input.TypeListAttr == name {
			return true
		}
	}
	return false
}

// InferredAttrs returns the attributes derived from the inputs, in the order they were defined.
func (def *OpDef) InferredAttrs() []*AttrDef {
	var attrs []*AttrDef
	for _, attr := range def.Attrs {
		if def.IsInferredAttr(attr.Name) {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// RequiredAttrs returns the attributes that are not inferred and have no default value, in the order they
// were defined.
func (def *OpDef) RequiredAttrs() []*AttrDef {
	var attrs []*AttrDef
	for _, attr := range def.Attrs {
		if !attr.HasDefault && !def.IsInferredAttr(attr.Name) {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// OptionalAttrs returns the attributes that are not inferred and have a default value, in the order they
// were defined.
func (def *OpDef) OptionalAttrs() []*AttrDef {
	var attrs []*AttrDef
	for _, attr := range def.Attrs {
		if attr.HasDefault && !def.IsInferredAttr(attr.Name) {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}
