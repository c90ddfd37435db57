package utils

import (
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
)

// SupportedDTypes lists the dtypes that can be named in op schemas and attributes, in the order
// they are listed by tools.
var SupportedDTypes = []dtypes.DType{
	dtypes.Bool,
	dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64,
	dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64,
	dtypes.Float16, dtypes.BFloat16, dtypes.Float32, dtypes.Float64,
	dtypes.Complex64, dtypes.Complex128,
}

var dtypeByName = func() map[string]dtypes.DType {
	m := make(map[string]dtypes.DType, len(SupportedDTypes)+4)
	for _, dtype := range SupportedDTypes {
		m[DTypeName(dtype)] = dtype
	}
	// Common aliases.
	m["half"] = dtypes.Float16
	m["float"] = dtypes.Float32
	m["double"] = dtypes.Float64
	m["int"] = dtypes.Int64
	return m
}()

// DTypeName returns the lower-case name of the dtype used in schema files and in the text
// representation of graphs: "float32", "int64", "bfloat16", etc.
func DTypeName(dtype dtypes.DType) string {
	if dtype == dtypes.InvalidDType {
		return "invalid"
	}
	return strings.ToLower(dtype.String())
}

// DTypeFromName is the inverse of DTypeName. It also accepts a few aliases ("half", "float", "double", "int").
// It returns false if the name is unknown.
func DTypeFromName(name string) (dtypes.DType, bool) {
	dtype, found := dtypeByName[strings.ToLower(strings.TrimSpace(name))]
	return dtype, found
}
