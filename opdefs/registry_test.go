package opdefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

const scaleSchema = `
op "Scale" {
  summary     = "Scales x."
  description = <<-EOT
    Multiplies x by factor.
  EOT

  input "x" {
    type_attr   = "T"
    description = "Input."
  }
  output "y" { type_attr = "T" }

  attr "T" {
    type           = "type"
    allowed_values = ["float32", "float64"]
  }
  attr "factor" {
    type    = "float"
    default = 0.5
  }
  attr "axes" {
    type    = "list(int)"
    default = [0, 1]
    minimum = 1
  }
  attr "mode" {
    type           = "string"
    allowed_values = ["fast", "exact"]
  }
}
`

func TestRegistry_Default(t *testing.T) {
	reg := must(Default())
	assert.Equal(t, 161, reg.Len())
	assert.Same(t, reg, must(Default()))

	conv := reg.Lookup("Conv2D")
	require.NotNil(t, conv)
	assert.Equal(t, "Computes a 2-D convolution given 4-D input and filter tensors.", conv.Summary)
	require.Len(t, conv.Inputs, 2)
	assert.Equal(t, "T", conv.Inputs[0].TypeAttr)
	assert.Equal(t, dtypes.InvalidDType, conv.Inputs[0].Type)

	dataFormat := conv.Attr("data_format")
	require.NotNil(t, dataFormat)
	assert.True(t, dataFormat.HasDefault)
	assert.Equal(t, "NHWC", dataFormat.Default)
	dilations := conv.Attr("dilations")
	require.NotNil(t, dilations)
	assert.Equal(t, []int64{1, 1, 1, 1}, dilations.Default)
	assert.Equal(t, []int64{}, conv.Attr("explicit_paddings").Default)

	var required []string
	for _, attr := range conv.RequiredAttrs() {
		required = append(required, attr.Name)
	}
	assert.Equal(t, []string{"strides", "padding"}, required)
	assert.True(t, conv.IsInferredAttr("T"))
	assert.False(t, conv.IsInferredAttr("strides"))
	require.Len(t, conv.InferredAttrs(), 1)

	assert.Nil(t, reg.Lookup("NoSuchOp"))
	names := reg.Names()
	assert.Len(t, names, 161)
	assert.IsIncreasing(t, names)
}

func TestRegistry_LoadSource(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.LoadSource([]byte(scaleSchema), "scale.hcl"))
		def := reg.Lookup("Scale")
		require.NotNil(t, def)
		assert.Equal(t, "Multiplies x by factor.", def.Description)
		assert.Equal(t, "Input.", def.Inputs[0].Description)
		assert.Equal(t, float32(0.5), def.Attr("factor").Default)
		assert.Equal(t, []int64{0, 1}, def.Attr("axes").Default)
		assert.Equal(t, int64(1), *def.Attr("axes").Minimum)
		assert.False(t, def.Attr("mode").HasDefault)
		assert.Len(t, def.OptionalAttrs(), 2)
	})

	t.Run("duplicate", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.LoadSource([]byte(scaleSchema), "scale.hcl"))
		err := reg.LoadSource([]byte(scaleSchema), "again.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `op "Scale" is already registered`)
		assert.Contains(t, err.Error(), "again.hcl")
	})

	t.Run("syntax error", func(t *testing.T) {
		err := New().LoadSource([]byte(`op "Broken" {`), "broken.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse schema broken.hcl")
	})

	t.Run("unknown field", func(t *testing.T) {
		err := New().LoadSource([]byte(`op "X" { colour = "red" }`), "x.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode schema")
	})

	t.Run("invalid kind", func(t *testing.T) {
		err := New().LoadSource([]byte(`op "X" {
  attr "a" { type = "map(int)" }
}`), "x.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `attr "a"`)
	})

	t.Run("invalid default", func(t *testing.T) {
		err := New().LoadSource([]byte(`op "X" {
  attr "a" {
    type    = "int"
    default = "three"
  }
}`), "x.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid default")
	})

	t.Run("unknown dtype", func(t *testing.T) {
		err := New().LoadSource([]byte(`op "X" {
  output "y" { type = "string" }
}`), "x.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown dtype name "string"`)
	})
}

func TestRegistry_LoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "scale.hcl"), []byte(scaleSchema), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("not a schema"), 0o644))

	t.Run("recursive", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.LoadDir(context.Background(), dir))
		assert.Equal(t, []string{"Scale"}, reg.Names())
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := New().LoadDir(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no schemas", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.LoadDir(context.Background(), t.TempDir()))
		assert.Equal(t, 0, reg.Len())
	})

	t.Run("LoadFile", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.LoadFile(filepath.Join(dir, "sub", "scale.hcl")))
		assert.Equal(t, 1, reg.Len())
		require.Error(t, reg.LoadFile(filepath.Join(dir, "missing.hcl")))
	})
}
