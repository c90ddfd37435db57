package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCLI()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const testSchema = `
op "Double" {
  summary = "Doubles x."
  input "x" { type_attr = "T" }
  output "y" { type_attr = "T" }
  attr "T" { type = "type" }
}
`

func TestList(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		out, err := runCLI(t, "list")
		require.NoError(t, err)
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "SUMMARY")
		assert.Contains(t, out, "Conv2D")
		assert.Contains(t, out, "MatMul")
	})

	t.Run("prefix", func(t *testing.T) {
		out, err := runCLI(t, "list", "conv")
		require.NoError(t, err)
		assert.Contains(t, out, "Conv2D")
		assert.NotContains(t, out, "MatMul")
	})

	t.Run("schema dir", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "double.hcl"), []byte(testSchema), 0o644))
		out, err := runCLI(t, "--schema", dir, "list")
		require.NoError(t, err)
		assert.Contains(t, out, "Double")
		assert.NotContains(t, out, "Conv2D")
	})

	t.Run("empty schema dir", func(t *testing.T) {
		_, err := runCLI(t, "--schema", t.TempDir(), "list")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no op schemas found")
	})
}

func TestDescribe(t *testing.T) {
	t.Run("Conv2D", func(t *testing.T) {
		out, err := runCLI(t, "describe", "Conv2D")
		require.NoError(t, err)
		assert.Contains(t, out, "Conv2D: Computes a 2-D convolution")
		assert.Contains(t, out, "Inputs:")
		assert.Contains(t, out, "filter")
		assert.Contains(t, out, "Attributes:")
		assert.Contains(t, out, "(inferred)")
		assert.Contains(t, out, "(required)")
		assert.Contains(t, out, `"NHWC"`)
		assert.Contains(t, out, "[1, 1, 1, 1]")
		assert.Contains(t, out, "in SAME,VALID,EXPLICIT")
		assert.Contains(t, out, ">= 4")
	})

	t.Run("list input", func(t *testing.T) {
		out, err := runCLI(t, "describe", "AddN")
		require.NoError(t, err)
		assert.Contains(t, out, "N * T")
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := runCLI(t, "describe", "NoSuchOp")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown op "NoSuchOp"`)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := runCLI(t, "describe")
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.hcl")
	require.NoError(t, os.WriteFile(good, []byte(testSchema), 0o644))

	t.Run("file", func(t *testing.T) {
		out, err := runCLI(t, "validate", good)
		require.NoError(t, err)
		assert.Contains(t, out, "1 ops validated")
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := runCLI(t, "validate", good, good)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("invalid", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.hcl")
		require.NoError(t, os.WriteFile(bad, []byte(`op "Bad" { summary = "Bad." }`+"\n"+`op "Bad2" {`), 0o644))
		_, err := runCLI(t, "validate", bad)
		require.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := runCLI(t, "validate", filepath.Join(dir, "missing.hcl"))
		require.Error(t, err)
	})

	t.Run("embedded schemas dir", func(t *testing.T) {
		out, err := runCLI(t, "validate", filepath.Join("..", "..", "opdefs", "schemas"))
		require.NoError(t, err)
		assert.Contains(t, out, "161 ops validated")
	})
}
