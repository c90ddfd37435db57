package shapes

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// FromAnyValue returns the shape of a Go value used as a tensor (see tensors.FromValue): a scalar of a
// supported type (bool, ints, floats, complex, float16.Float16) or (nested) slices of it.
//
// Nested slices must be regular, and they can't be empty, since the inner dimensions couldn't be known.
//
// Example:
//
//	shape, _ := shapes.FromAnyValue([][]float64{{0, 0}}) // Returns shape (Float64)[1 2]
func FromAnyValue(v any) (Shape, error) {
	if v == nil {
		return Invalid(), errors.New("cannot get the shape of a nil value")
	}

	// Dimensions are read following the first element of each level.
	value := reflect.ValueOf(v)
	var dims []int
	elem := value
	for elem.Kind() == reflect.Slice {
		if elem.Len() == 0 {
			return Invalid(), errors.Errorf("empty slice in %T at axis %d, the inner dimensions are unknown", v, len(dims))
		}
		dims = append(dims, elem.Len())
		elem = elem.Index(0)
	}
	dtype := dtypes.FromGoType(elem.Type())
	if dtype == dtypes.InvalidDType {
		return Invalid(), errors.Errorf("cannot use values of type %s as a tensor", elem.Type())
	}
	shape := Make(dtype, dims...)
	if err := checkRegular(value, dims); err != nil {
		return Invalid(), errors.WithMessagef(err, "irregular %T with shape %s", v, shape)
	}
	return shape, nil
}

// checkRegular checks that every sub-slice of value has the given dimensions.
func checkRegular(value reflect.Value, dims []int) error {
	if len(dims) == 0 {
		return nil
	}
	if value.Len() != dims[0] {
		return errors.Errorf("sub-slice of length %d where %d was expected", value.Len(), dims[0])
	}
	for ii := range value.Len() {
		if err := checkRegular(value.Index(ii), dims[1:]); err != nil {
			return err
		}
	}
	return nil
}
