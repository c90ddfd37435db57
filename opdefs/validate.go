package opdefs

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph/internal/utils"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/pkg/errors"
)

// Validate checks the consistency of the operation definition:
//
//   - The op name is a valid exported Go identifier, since it is used as the name of the generated function.
//   - Input, output and attribute names are valid identifiers and unique; inputs and attributes don't share names.
//   - Each argument has exactly one source for its dtype (Type, TypeAttr or TypeListAttr), and the attributes
//     referred by TypeAttr, NumberAttr and TypeListAttr exist with kinds type, int and list(type) respectively.
//   - AllowedValues are only used by string and type kinds (or their lists), and are valid dtype names for types.
//   - Minimum is only used by int and list kinds.
//   - Default values satisfy the attribute constraints.
//
// All problems found are reported in the returned error.
func (def *OpDef) Validate() error {
	var errs []string
	addErr := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if def.Name == "" {
		return errors.New("op definition has an empty name")
	}
	first := []rune(def.Name)[0]
	if utils.NormalizeIdentifier(def.Name) != def.Name || !unicode.IsUpper(first) {
		addErr("op name %q must be a valid exported Go identifier", def.Name)
	}

	attrs := make(map[string]*AttrDef, len(def.Attrs))
	for _, attr := range def.Attrs {
		if attr.Name == "" || utils.NormalizeIdentifier(attr.Name) != attr.Name {
			addErr("attr name %q is not a valid identifier", attr.Name)
		}
		if _, found := attrs[attr.Name]; found {
			addErr("attr %q defined more than once", attr.Name)
		}
		attrs[attr.Name] = attr
		if attr.Kind == AttrInvalid {
			addErr("attr %q has an invalid kind", attr.Name)
			continue
		}
		if len(attr.AllowedValues) > 0 {
			switch attr.Kind.Elem() {
			case AttrString:
			case AttrType:
				for _, name := range attr.AllowedValues {
					if _, err := shapes.DTypeFromName(name); err != nil {
						addErr("attr %q allowed value: %v", attr.Name, err)
					}
				}
			default:
				addErr("attr %q of kind %s can't have allowed_values", attr.Name, attr.Kind)
			}
		}
		if attr.Minimum != nil && attr.Kind != AttrInt && !attr.Kind.IsList() {
			addErr("attr %q of kind %s can't have a minimum", attr.Name, attr.Kind)
		}
		if attr.HasDefault {
			if err := attr.CheckAttrValue(attr.Default); err != nil {
				addErr("attr %q default: %v", attr.Name, err)
			}
		}
	}

	checkArgs := func(direction string, args []*ArgDef) {
		names := utils.MakeSet[string](len(args))
		for _, arg := range args {
			if arg.Name == "" || utils.NormalizeIdentifier(arg.Name) != arg.Name {
				addErr("%s name %q is not a valid identifier", direction, arg.Name)
			}
			if names.Has(arg.Name) {
				addErr("%s %q defined more than once", direction, arg.Name)
			}
			names.Insert(arg.Name)
			if direction == "input" {
				if _, found := attrs[arg.Name]; found {
					addErr("input %q has the same name as an attr", arg.Name)
				}
			}

			numSources := 0
			if arg.Type != dtypes.InvalidDType {
				numSources++
			}
			if arg.TypeAttr != "" {
				numSources++
			}
			if arg.TypeListAttr != "" {
				numSources++
			}
			if numSources != 1 {
				addErr("%s %q must have exactly one of type, type_attr or type_list_attr", direction, arg.Name)
			}
			if arg.NumberAttr != "" && arg.TypeListAttr != "" {
				addErr("%s %q can't have both number_attr and type_list_attr", direction, arg.Name)
			}
			checkRef := func(field, attrName string, kind AttrKind) {
				if attrName == "" {
					return
				}
				attr, found := attrs[attrName]
				if !found {
					addErr("%s %q %s refers to undefined attr %q", direction, arg.Name, field, attrName)
					return
				}
				if attr.Kind != kind {
					addErr("%s %q %s refers to attr %q of kind %s, wanted %s", direction, arg.Name, field, attrName, attr.Kind, kind)
				}
			}
			checkRef("type_attr", arg.TypeAttr, AttrType)
			checkRef("number_attr", arg.NumberAttr, AttrInt)
			checkRef("type_list_attr", arg.TypeListAttr, AttrListType)
		}
	}
	checkArgs("input", def.Inputs)
	checkArgs("output", def.Outputs)

	if len(errs) > 0 {
		return errors.Errorf("invalid op definition %q:\n- %s", def.Name, strings.Join(errs, "\n- "))
	}
	return nil
}
