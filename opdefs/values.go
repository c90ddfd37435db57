package opdefs

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/gomlx/opgraph/types/tensors"
	"github.com/pkg/errors"
)

// NormalizeAttrValue converts a Go value to the canonical representation of the attribute kind:
//
//   - string: string
//   - int: int64 (any Go integer type is accepted)
//   - float: float32 (float64 and integers are accepted)
//   - bool: bool
//   - type: dtypes.DType (or its name, e.g. "float32")
//   - shape: shapes.Shape (or a slice of integer dimensions, or "*" for unknown rank)
//   - tensor: *tensors.Tensor (or any value accepted by tensors.FromValue)
//   - list(X): []X with the canonical X above, from any slice of acceptable values.
//
// It returns an error if the value can't be converted.
func NormalizeAttrValue(kind AttrKind, value any) (any, error) {
	if value == nil {
		return nil, errors.Errorf("nil value for attribute of kind %s", kind)
	}
	if !kind.IsList() {
		return normalizeScalarAttr(kind, value)
	}
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, errors.Errorf("attribute of kind %s requires a slice, got %T", kind, value)
	}
	elemKind := kind.Elem()
	n := v.Len()
	switch elemKind {
	case AttrString:
		return normalizeList[string](v, elemKind)
	case AttrInt:
		return normalizeList[int64](v, elemKind)
	case AttrFloat:
		return normalizeList[float32](v, elemKind)
	case AttrBool:
		return normalizeList[bool](v, elemKind)
	case AttrType:
		return normalizeList[dtypes.DType](v, elemKind)
	case AttrShape:
		// A slice of integers would be ambiguous: it is never a list of shapes.
		if n > 0 && isIntegerKind(reflect.ValueOf(v.Index(0).Interface()).Kind()) {
			return nil, errors.Errorf("attribute of kind %s requires a slice of shapes, got %T", kind, value)
		}
		return normalizeList[shapes.Shape](v, elemKind)
	}
	return nil, errors.Errorf("invalid attribute kind %s", kind)
}

func normalizeList[T any](v reflect.Value, elemKind AttrKind) ([]T, error) {
	result := make([]T, v.Len())
	for ii := range v.Len() {
		elem, err := normalizeScalarAttr(elemKind, v.Index(ii).Interface())
		if err != nil {
			return nil, errors.WithMessagef(err, "element #%d", ii)
		}
		result[ii] = elem.(T)
	}
	return result, nil
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func normalizeScalarAttr(kind AttrKind, value any) (any, error) {
	if value == nil {
		return nil, errors.Errorf("nil value for attribute of kind %s", kind)
	}
	v := reflect.ValueOf(value)
	switch kind {
	case AttrString:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case AttrInt:
		switch {
		case v.CanInt():
			return v.Int(), nil
		case v.CanUint():
			u := v.Uint()
			if u > math.MaxInt64 {
				return nil, errors.Errorf("value %d overflows attribute kind %q", u, kind)
			}
			return int64(u), nil
		}
	case AttrFloat:
		switch {
		case v.CanFloat():
			return float32(v.Float()), nil
		case v.CanInt():
			return float32(v.Int()), nil
		case v.CanUint():
			return float32(v.Uint()), nil
		}
	case AttrBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case AttrType:
		switch t := value.(type) {
		case dtypes.DType:
			if t == dtypes.InvalidDType {
				return nil, errors.New("invalid dtype for attribute of kind type")
			}
			return t, nil
		case string:
			return shapes.DTypeFromName(t)
		}
	case AttrShape:
		switch s := value.(type) {
		case shapes.Shape:
			return s.Clone(), nil
		case string:
			if s == "*" {
				return shapes.MakeUnknownRank(dtypes.InvalidDType), nil
			}
		default:
			if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
				dims := make([]int, v.Len())
				for ii := range v.Len() {
					dimV := reflect.ValueOf(v.Index(ii).Interface())
					if !dimV.CanInt() {
						return nil, errors.Errorf("shape dimensions must be integers, got %T", value)
					}
					dims[ii] = int(dimV.Int())
					if dims[ii] < shapes.UnknownDim {
						return nil, errors.Errorf("invalid shape dimension %d", dims[ii])
					}
				}
				return shapes.Make(dtypes.InvalidDType, dims...), nil
			}
		}
	case AttrTensor:
		t, err := tensors.FromValue(value)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, errors.Errorf("invalid attribute kind %s", kind)
	}
	return nil, errors.Errorf("value of type %T can't be used for attribute of kind %s", value, kind)
}

// CheckAttrValue checks that a normalized value satisfies the AllowedValues and Minimum constraints of the attribute.
func (attr *AttrDef) CheckAttrValue(value any) error {
	if len(attr.AllowedValues) > 0 {
		var values []any
		if attr.Kind.IsList() {
			v := reflect.ValueOf(value)
			for ii := range v.Len() {
				values = append(values, v.Index(ii).Interface())
			}
		} else {
			values = []any{value}
		}
		for _, elem := range values {
			if !attr.isAllowed(elem) {
				return errors.Errorf("value %v for attribute %q is not in the allowed values %q", elem, attr.Name, attr.AllowedValues)
			}
		}
	}
	if attr.Minimum != nil {
		switch {
		case attr.Kind == AttrInt:
			if value.(int64) < *attr.Minimum {
				return errors.Errorf("value %d for attribute %q is less than the minimum %d", value, attr.Name, *attr.Minimum)
			}
		case attr.Kind.IsList():
			if n := reflect.ValueOf(value).Len(); int64(n) < *attr.Minimum {
				return errors.Errorf("length %d of attribute %q is less than the minimum %d", n, attr.Name, *attr.Minimum)
			}
		}
	}
	return nil
}

func (attr *AttrDef) isAllowed(elem any) bool {
	switch e := elem.(type) {
	case string:
		return slices.Contains(attr.AllowedValues, e)
	case dtypes.DType:
		for _, name := range attr.AllowedValues {
			if dtype, err := shapes.DTypeFromName(name); err == nil && dtype == e {
				return true
			}
		}
		return false
	}
	return true
}

// FormatAttrValue formats a normalized attribute value for documentation and tools: strings are quoted,
// types are given by name, shapes by their dimensions (e.g. "[2,?]") and lists as "[1, 2, 3]".
func FormatAttrValue(kind AttrKind, value any) string {
	if kind.IsList() {
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.Slice {
			return fmt.Sprintf("%v", value)
		}
		parts := make([]string, v.Len())
		for ii := range v.Len() {
			parts[ii] = FormatAttrValue(kind.Elem(), v.Index(ii).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case dtypes.DType:
		return shapes.DTypeName(v)
	case shapes.Shape:
		return v.DimsString()
	case *tensors.Tensor:
		return v.Literal()
	default:
		return fmt.Sprintf("%v", v)
	}
}
