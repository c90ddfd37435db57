package opdefs

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpDef_Validate(t *testing.T) {
	newDef := func() *OpDef {
		return &OpDef{
			Name:    "Concat",
			Inputs:  []*ArgDef{{Name: "values", TypeAttr: "T", NumberAttr: "N"}, {Name: "axis", Type: dtypes.Int32}},
			Outputs: []*ArgDef{{Name: "output", TypeAttr: "T"}},
			Attrs: []*AttrDef{
				{Name: "T", Kind: AttrType},
				{Name: "N", Kind: AttrInt, Minimum: ptr(int64(2))},
			},
		}
	}
	require.NoError(t, newDef().Validate())

	testCases := []struct {
		name   string
		modify func(def *OpDef)
		errMsg string
	}{
		{"empty name", func(def *OpDef) { def.Name = "" }, "empty name"},
		{"unexported name", func(def *OpDef) { def.Name = "concat" }, "valid exported Go identifier"},
		{"invalid name", func(def *OpDef) { def.Name = "Con-cat" }, "valid exported Go identifier"},
		{"duplicate attr", func(def *OpDef) { def.Attrs = append(def.Attrs, &AttrDef{Name: "T", Kind: AttrType}) },
			`attr "T" defined more than once`},
		{"invalid kind", func(def *OpDef) { def.Attrs[0].Kind = AttrInvalid }, "invalid kind"},
		{"duplicate input", func(def *OpDef) { def.Inputs[1].Name = "values" }, `input "values" defined more than once`},
		{"input named as attr", func(def *OpDef) { def.Inputs[1].Name = "N" }, "same name as an attr"},
		{"no dtype", func(def *OpDef) { def.Outputs[0].TypeAttr = "" }, "exactly one of type"},
		{"two dtypes", func(def *OpDef) { def.Outputs[0].Type = dtypes.Float32 }, "exactly one of type"},
		{"undefined attr", func(def *OpDef) { def.Outputs[0].TypeAttr = "U" }, `refers to undefined attr "U"`},
		{"wrong kind", func(def *OpDef) { def.Inputs[0].NumberAttr = "T" }, "wanted int"},
		{"allowed values on int", func(def *OpDef) { def.Attrs[1].AllowedValues = []string{"1"} }, "can't have allowed_values"},
		{"allowed unknown dtype", func(def *OpDef) { def.Attrs[0].AllowedValues = []string{"float33"} }, `unknown dtype name "float33"`},
		{"minimum on type", func(def *OpDef) { def.Attrs[0].Minimum = ptr(int64(1)) }, "can't have a minimum"},
		{"default below minimum", func(def *OpDef) {
			def.Attrs[1].HasDefault = true
			def.Attrs[1].Default = int64(1)
		}, "less than the minimum"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def := newDef()
			tc.modify(def)
			err := def.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}

	t.Run("all errors reported", func(t *testing.T) {
		def := newDef()
		def.Outputs[0].TypeAttr = "U"
		def.Attrs[0].Minimum = ptr(int64(1))
		err := def.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "undefined attr")
		assert.Contains(t, err.Error(), "can't have a minimum")
	})
}

func ptr[T any](v T) *T { return &v }
