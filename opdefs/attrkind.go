package opdefs

import (
	"strings"

	"github.com/pkg/errors"
)

// AttrKind is the kind of value an attribute holds.
type AttrKind int

const (
	AttrInvalid AttrKind = iota
	AttrString
	AttrInt
	AttrFloat
	AttrBool
	AttrType
	AttrShape
	AttrTensor
	AttrListString
	AttrListInt
	AttrListFloat
	AttrListBool
	AttrListType
	AttrListShape
)

var attrKindNames = map[AttrKind]string{
	AttrInvalid:    "invalid",
	AttrString:     "string",
	AttrInt:        "int",
	AttrFloat:      "float",
	AttrBool:       "bool",
	AttrType:       "type",
	AttrShape:      "shape",
	AttrTensor:     "tensor",
	AttrListString: "list(string)",
	AttrListInt:    "list(int)",
	AttrListFloat:  "list(float)",
	AttrListBool:   "list(bool)",
	AttrListType:   "list(type)",
	AttrListShape:  "list(shape)",
}

// String returns the name of the kind as used in schema files, e.g. "list(int)".
func (k AttrKind) String() string {
	if name, found := attrKindNames[k]; found {
		return name
	}
	return "invalid"
}

// ParseAttrKind parses the name of an attribute kind, as used in the schema files.
func ParseAttrKind(name string) (AttrKind, error) {
	name = strings.ReplaceAll(name, " ", "")
	for kind, kindName := range attrKindNames {
		if kind != AttrInvalid && kindName == name {
			return kind, nil
		}
	}
	return AttrInvalid, errors.Errorf("unknown attribute kind %q", name)
}

// IsList returns whether the kind is a list of values.
func (k AttrKind) IsList() bool {
	return k >= AttrListString && k <= AttrListShape
}

// Elem returns the kind of the elements of a list kind. For non-list kinds it returns the kind itself.
func (k AttrKind) Elem() AttrKind {
	switch k {
	case AttrListString:
		return AttrString
	case AttrListInt:
		return AttrInt
	case AttrListFloat:
		return AttrFloat
	case AttrListBool:
		return AttrBool
	case AttrListType:
		return AttrType
	case AttrListShape:
		return AttrShape
	default:
		return k
	}
}
