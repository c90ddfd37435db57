// Package shapes defines Shape and associated tools.
//
// Shape represents the data type and the dimensions of a tensor: either a constant value carried
// by an attribute, or the expected value of an operation output in a graph.
//
// Unlike shapes of concrete tensors, shapes in a graph under construction may be partially known:
// a dimension of -1 (UnknownDim) means the size of that axis is not known, and a shape with
// UnknownRank set doesn't even know how many axes it has.
//
// Attributes of kind "shape" only use the dimensions; the DType of those shapes is ignored.
package shapes

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph/internal/utils"
	"github.com/pkg/errors"
)

// UnknownDim is the value of a dimension whose size is not known.
const UnknownDim = -1

// Shape of a tensor: its DType and dimensions.
//
// Use Make to create a new shape.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int

	// UnknownRank indicates that not even the number of axes is known. Dimensions is empty in this case.
	UnknownRank bool
}

// Make returns a Shape structure filled with the values given.
//
// Dimensions can be UnknownDim (-1), any other negative value panics.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim < UnknownDim {
			panic(errors.Errorf("shapes.Make(%s, %v): invalid dimension %d", dtype, dimensions, dim))
		}
	}
	return s
}

// MakeUnknownRank returns a shape of the given dtype with unknown rank.
func MakeUnknownRank(dtype dtypes.DType) Shape {
	return Shape{DType: dtype, UnknownRank: true}
}

// Scalar returns a scalar shape of the given dtype.
func Scalar(dtype dtypes.DType) Shape {
	return Shape{DType: dtype}
}

// Invalid returns an invalid shape.
//
// Invalid().Ok() == false.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether this is a valid Shape. A "zero" shape, that is just instantiating it with Shape{}, is invalid.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank of the shape, that is, the number of axes. It returns -1 if the rank is unknown.
func (s Shape) Rank() int {
	if s.UnknownRank {
		return -1
	}
	return len(s.Dimensions)
}

// IsScalar returns whether the shape is known to be a scalar (rank 0).
func (s Shape) IsScalar() bool { return !s.UnknownRank && len(s.Dimensions) == 0 }

// IsFullyDefined returns whether the rank and all dimensions are known.
func (s Shape) IsFullyDefined() bool {
	if s.UnknownRank {
		return false
	}
	return !slices.Contains(s.Dimensions, UnknownDim)
}

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis or if the rank is unknown.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if s.UnknownRank || adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		panic(errors.Errorf("Shape.Dim(%d) out-of-bounds for shape %s", axis, s))
	}
	return s.Dimensions[adjustedAxis]
}

// Size returns the number of elements of DType needed for this shape: the product of all dimensions.
// It returns -1 if the shape is not fully defined.
func (s Shape) Size() int {
	if !s.IsFullyDefined() {
		return -1
	}
	size := 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return size
}

// Memory returns the number of bytes needed to store a tensor of this shape, or 0 if the shape is not fully defined.
func (s Shape) Memory() uintptr {
	size := s.Size()
	if size < 0 {
		return 0
	}
	return s.DType.Memory() * uintptr(size)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	s.Dimensions = slices.Clone(s.Dimensions)
	return s
}

// Equal compares two shapes for equality: dtype, rank and dimensions are compared.
// Unknown dimensions are only equal to unknown dimensions.
func (s Shape) Equal(s2 Shape) bool {
	if s.DType != s2.DType || s.UnknownRank != s2.UnknownRank {
		return false
	}
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// IsCompatibleWith returns whether the two shapes could describe the same tensor: dtypes must match, and
// unknown ranks or dimensions match anything.
func (s Shape) IsCompatibleWith(s2 Shape) bool {
	if s.DType != s2.DType {
		return false
	}
	if s.UnknownRank || s2.UnknownRank {
		return true
	}
	if len(s.Dimensions) != len(s2.Dimensions) {
		return false
	}
	for axis, dim := range s.Dimensions {
		dim2 := s2.Dimensions[axis]
		if dim != UnknownDim && dim2 != UnknownDim && dim != dim2 {
			return false
		}
	}
	return true
}

// Check that the shape has the given dtype and dimensions, and returns an error otherwise.
func (s Shape) Check(dtype dtypes.DType, dimensions ...int) error {
	if s.DType != dtype || s.UnknownRank || !slices.Equal(s.Dimensions, dimensions) {
		return errors.Errorf("shape %s doesn't match wanted (%s)%v", s, dtype, dimensions)
	}
	return nil
}

// DimsString returns only the dimensions formatted like "[2,?,3]", or "[*]" if the rank is unknown.
func (s Shape) DimsString() string {
	if s.UnknownRank {
		return "[*]"
	}
	parts := make([]string, len(s.Dimensions))
	for i, dim := range s.Dimensions {
		if dim == UnknownDim {
			parts[i] = "?"
		} else {
			parts[i] = strconv.Itoa(dim)
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// String implements fmt.Stringer, pretty-prints the shape, e.g.: "(Float32)[2 ?]".
func (s Shape) String() string {
	if s.UnknownRank {
		return fmt.Sprintf("(%s)[...]", s.DType)
	}
	if len(s.Dimensions) == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)%s", s.DType, strings.ReplaceAll(s.DimsString(), ",", " "))
}

// DTypeName returns the lower-case name used for the dtype in op schemas and in graph dumps, e.g. "float32".
func DTypeName(dtype dtypes.DType) string {
	return utils.DTypeName(dtype)
}

// DTypeFromName converts a lower-case dtype name ("float32", "int64", "bfloat16", ...) to its DType.
// The aliases "half", "float", "double" and "int" are also accepted.
func DTypeFromName(name string) (dtypes.DType, error) {
	dtype, found := utils.DTypeFromName(name)
	if !found {
		return dtypes.InvalidDType, errors.Errorf("unknown dtype name %q", name)
	}
	return dtype, nil
}
