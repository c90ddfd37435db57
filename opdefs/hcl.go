package opdefs

import (
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// schemaFile is the top-level structure of an HCL schema file.
type schemaFile struct {
	Ops []*opBlock `hcl:"op,block"`
}

// opBlock is an `op "Name" { ... }` block.
type opBlock struct {
	Name        string       `hcl:"name,label"`
	Summary     string       `hcl:"summary,optional"`
	Description string       `hcl:"description,optional"`
	Stateful    bool         `hcl:"stateful,optional"`
	Inputs      []*argBlock  `hcl:"input,block"`
	Outputs     []*argBlock  `hcl:"output,block"`
	Attrs       []*attrBlock `hcl:"attr,block"`
}

// argBlock is an `input "name" { ... }` or `output "name" { ... }` block.
type argBlock struct {
	Name         string `hcl:"name,label"`
	Description  string `hcl:"description,optional"`
	Type         string `hcl:"type,optional"`
	TypeAttr     string `hcl:"type_attr,optional"`
	NumberAttr   string `hcl:"number_attr,optional"`
	TypeListAttr string `hcl:"type_list_attr,optional"`
}

// attrBlock is an `attr "name" { ... }` block.
type attrBlock struct {
	Name          string         `hcl:"name,label"`
	Type          string         `hcl:"type"`
	Description   string         `hcl:"description,optional"`
	Default       hcl.Expression `hcl:"default,optional"`
	AllowedValues []string       `hcl:"allowed_values,optional"`
	Minimum       *int64         `hcl:"minimum,optional"`
}

// parseSchema parses the HCL source of a schema file and converts its op blocks to OpDef.
// The returned definitions are not validated.
func parseSchema(parser *hclparse.Parser, src []byte, filename string) ([]*OpDef, error) {
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse schema %s", filename)
	}
	var schema schemaFile
	if diags = gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode schema %s", filename)
	}
	defs := make([]*OpDef, 0, len(schema.Ops))
	for _, block := range schema.Ops {
		def, err := block.toOpDef()
		if err != nil {
			return nil, errors.WithMessagef(err, "in %s", filename)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (block *opBlock) toOpDef() (*OpDef, error) {
	def := &OpDef{
		Name:        block.Name,
		Summary:     strings.TrimSpace(block.Summary),
		Description: strings.TrimSpace(block.Description),
		Stateful:    block.Stateful,
	}
	for _, arg := range block.Inputs {
		argDef, err := arg.toArgDef()
		if err != nil {
			return nil, errors.WithMessagef(err, "op %q input %q", block.Name, arg.Name)
		}
		def.Inputs = append(def.Inputs, argDef)
	}
	for _, arg := range block.Outputs {
		argDef, err := arg.toArgDef()
		if err != nil {
			return nil, errors.WithMessagef(err, "op %q output %q", block.Name, arg.Name)
		}
		def.Outputs = append(def.Outputs, argDef)
	}
	for _, attr := range block.Attrs {
		attrDef, err := attr.toAttrDef()
		if err != nil {
			return nil, errors.WithMessagef(err, "op %q attr %q", block.Name, attr.Name)
		}
		def.Attrs = append(def.Attrs, attrDef)
	}
	return def, nil
}

func (block *argBlock) toArgDef() (*ArgDef, error) {
	arg := &ArgDef{
		Name:         block.Name,
		Description:  strings.TrimSpace(block.Description),
		Type:         dtypes.InvalidDType,
		TypeAttr:     block.TypeAttr,
		NumberAttr:   block.NumberAttr,
		TypeListAttr: block.TypeListAttr,
	}
	if block.Type != "" {
		dtype, err := shapes.DTypeFromName(block.Type)
		if err != nil {
			return nil, err
		}
		arg.Type = dtype
	}
	return arg, nil
}

func (block *attrBlock) toAttrDef() (*AttrDef, error) {
	kind, err := ParseAttrKind(block.Type)
	if err != nil {
		return nil, err
	}
	attr := &AttrDef{
		Name:          block.Name,
		Kind:          kind,
		Description:   strings.TrimSpace(block.Description),
		AllowedValues: block.AllowedValues,
		Minimum:       block.Minimum,
	}
	if block.Default == nil {
		return attr, nil
	}
	value, diags := block.Default.Value(nil)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, "invalid default")
	}
	if value.IsNull() {
		// A missing "default" is decoded by gohcl as a null expression.
		return attr, nil
	}
	goValue, err := ctyToGo(value)
	if err != nil {
		return nil, errors.WithMessage(err, "invalid default")
	}
	attr.Default, err = NormalizeAttrValue(kind, goValue)
	if err != nil {
		return nil, errors.WithMessage(err, "invalid default")
	}
	attr.HasDefault = true
	return attr, nil
}

// ctyToGo converts a cty value, as parsed from HCL, to a plain Go value: string, int64 (for integral
// numbers), float64, bool or []any (for lists and tuples).
func ctyToGo(value cty.Value) (any, error) {
	if !value.IsKnown() || value.IsNull() {
		return nil, errors.New("value must be known and not null")
	}
	ty := value.Type()
	switch {
	case ty == cty.String:
		return value.AsString(), nil
	case ty == cty.Bool:
		return value.True(), nil
	case ty == cty.Number:
		if value.AsBigFloat().IsInt() {
			var i int64
			if err := gocty.FromCtyValue(value, &i); err != nil {
				return nil, errors.Wrap(err, "integer out of range")
			}
			return i, nil
		}
		var f float64
		if err := gocty.FromCtyValue(value, &f); err != nil {
			return nil, errors.Wrap(err, "invalid number")
		}
		return f, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		elements := value.AsValueSlice()
		result := make([]any, len(elements))
		for ii, elem := range elements {
			var err error
			result[ii], err = ctyToGo(elem)
			if err != nil {
				return nil, errors.WithMessagef(err, "element #%d", ii)
			}
		}
		return result, nil
	}
	return nil, errors.Errorf("unsupported value type %s", ty.FriendlyName())
}
