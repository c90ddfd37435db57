// Package tensors implements the constant tensor values carried by "tensor" attributes of graph operations
// (e.g. the "value" of a Const).
//
// A Tensor here is just a host-side holder of flat row-major data and its shape: it is never transferred to
// a device and there are no operations defined over it.
package tensors

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Tensor holds a constant value: a flat slice of a Go type matching its DType, stored in row-major order.
type Tensor struct {
	shape shapes.Shape
	flat  any
}

// FromValue creates a Tensor from a Go scalar or from (possibly nested) slices of a supported type.
// Nested slices must be regular: all sub-slices at the same level have the same length.
//
// Example:
//
//	t, err := tensors.FromValue([][]float32{{1, 2}, {3, 4}}) // Shape (Float32)[2 2]
func FromValue(value any) (*Tensor, error) {
	if t, ok := value.(*Tensor); ok {
		if t == nil {
			return nil, errors.New("tensors.FromValue(nil *Tensor)")
		}
		return t, nil
	}
	shape, err := shapes.FromAnyValue(value)
	if err != nil {
		return nil, errors.WithMessagef(err, "tensors.FromValue(%T)", value)
	}
	goType := shape.DType.GoType()
	flatV := reflect.MakeSlice(reflect.SliceOf(goType), 0, shape.Size())
	var flatten func(v reflect.Value, axis int)
	flatten = func(v reflect.Value, axis int) {
		if axis == shape.Rank() {
			flatV = reflect.Append(flatV, v.Convert(goType))
			return
		}
		for ii := range v.Len() {
			flatten(v.Index(ii), axis+1)
		}
	}
	flatten(reflect.ValueOf(value), 0)
	return &Tensor{shape: shape, flat: flatV.Interface()}, nil
}

// FromFlatAndDimensions creates a Tensor from a flat slice of values (in row-major order) and the dimensions
// of the shape. The number of elements must match the size of the shape.
func FromFlatAndDimensions(flat any, dimensions ...int) (*Tensor, error) {
	flatV := reflect.ValueOf(flat)
	if flatV.Kind() != reflect.Slice {
		return nil, errors.Errorf("tensors.FromFlatAndDimensions requires a slice, got %T", flat)
	}
	dtype := dtypes.FromGoType(flatV.Type().Elem())
	if dtype == dtypes.InvalidDType {
		return nil, errors.Errorf("unsupported flat values type %T -- expected a slice of a basic data type", flat)
	}
	for _, dim := range dimensions {
		if dim < 0 {
			return nil, errors.Errorf("tensor dimensions must be known and non-negative, got %v", dimensions)
		}
	}
	shape := shapes.Make(dtype, dimensions...)
	if shape.Size() != flatV.Len() {
		return nil, errors.Errorf("flat values size %d doesn't match shape size %d (%s)", flatV.Len(), shape.Size(), shape)
	}
	goType := dtype.GoType()
	if flatV.Type().Elem() != goType {
		converted := reflect.MakeSlice(reflect.SliceOf(goType), flatV.Len(), flatV.Len())
		for ii := range flatV.Len() {
			converted.Index(ii).Set(flatV.Index(ii).Convert(goType))
		}
		flatV = converted
	} else {
		flatV = reflect.AppendSlice(reflect.MakeSlice(flatV.Type(), 0, flatV.Len()), flatV)
	}
	return &Tensor{shape: shape, flat: flatV.Interface()}, nil
}

// Shape of the tensor.
func (t *Tensor) Shape() shapes.Shape { return t.shape }

// DType of the tensor elements.
func (t *Tensor) DType() dtypes.DType { return t.shape.DType }

// Size is the number of elements in the tensor.
func (t *Tensor) Size() int { return t.shape.Size() }

// Flat returns the underlying flat slice (e.g. []float32) of values in row-major order.
// It should not be modified.
func (t *Tensor) Flat() any { return t.flat }

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	return fmt.Sprintf("%s: %s", t.shape, t.valuesString())
}

// Literal returns the textual literal used when writing a graph, e.g.: `dense<[[1, 2], [3, 4]]> : int32[2,2]`.
func (t *Tensor) Literal() string {
	return fmt.Sprintf("dense<%s> : %s%s", t.valuesString(), shapes.DTypeName(t.shape.DType), t.shape.DimsString())
}

func (t *Tensor) valuesString() string {
	flatV := reflect.ValueOf(t.flat)
	var sb strings.Builder
	var pos int
	var writeAxis func(axis int)
	writeAxis = func(axis int) {
		if axis == t.shape.Rank() {
			sb.WriteString(formatElement(flatV.Index(pos).Interface()))
			pos++
			return
		}
		sb.WriteByte('[')
		for ii := range t.shape.Dimensions[axis] {
			if ii > 0 {
				sb.WriteString(", ")
			}
			writeAxis(axis + 1)
		}
		sb.WriteByte(']')
	}
	writeAxis(0)
	return sb.String()
}

// formatElement formats one scalar value. Floats always carry a decimal point, so they are not mistaken by integers.
func formatElement(v any) string {
	switch e := v.(type) {
	case float16.Float16:
		return formatFloat(float64(e.Float32()))
	case float32:
		return formatFloat(float64(e))
	case float64:
		return formatFloat(e)
	case complex64:
		return fmt.Sprintf("(%s, %s)", formatFloat(float64(real(e))), formatFloat(float64(imag(e))))
	case complex128:
		return fmt.Sprintf("(%s, %s)", formatFloat(real(e)), formatFloat(imag(e)))
	case bool:
		if e {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", e)
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprintf("%g", f)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%.1f", f)
	}
	return fmt.Sprintf("%g", f)
}
