/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package shapes

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	if invalidShape.Ok() {
		t.Error("Invalid().Ok() should be false")
	}

	shape0 := Make(dtypes.Float64)
	if !shape0.Ok() {
		t.Error("shape0.Ok() should be true")
	}
	if !shape0.IsScalar() {
		t.Error("shape0.IsScalar() should be true")
	}
	if !shape0.IsFullyDefined() {
		t.Error("shape0.IsFullyDefined() should be true")
	}
	if shape0.Rank() != 0 {
		t.Errorf("shape0.Rank() = %d, want 0", shape0.Rank())
	}
	if len(shape0.Dimensions) != 0 {
		t.Errorf("len(shape0.Dimensions) = %d, want 0", len(shape0.Dimensions))
	}
	if shape0.Size() != 1 {
		t.Errorf("shape0.Size() = %d, want 1", shape0.Size())
	}
	if int(shape0.Memory()) != 8 {
		t.Errorf("shape0.Memory() = %d, want 8", int(shape0.Memory()))
	}

	shape1 := Make(dtypes.Float32, 4, 3, 2)
	if !shape1.Ok() {
		t.Error("shape1.Ok() should be true")
	}
	if shape1.IsScalar() {
		t.Error("shape1.IsScalar() should be false")
	}
	if !shape1.IsFullyDefined() {
		t.Error("shape1.IsFullyDefined() should be true")
	}
	if shape1.Rank() != 3 {
		t.Errorf("shape1.Rank() = %d, want 3", shape1.Rank())
	}
	if len(shape1.Dimensions) != 3 {
		t.Errorf("len(shape1.Dimensions) = %d, want 3", len(shape1.Dimensions))
	}
	if shape1.Size() != 4*3*2 {
		t.Errorf("shape1.Size() = %d, want %d", shape1.Size(), 4*3*2)
	}
	if int(shape1.Memory()) != 4*4*3*2 {
		t.Errorf("shape1.Memory() = %d, want %d", int(shape1.Memory()), 4*4*3*2)
	}
}

func panics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic, but code did not panic")
		}
	}()
	f()
}

func notPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("expected no panic, but code panicked: %v", r)
		}
	}()
	f()
}

func TestDim(t *testing.T) {
	shape := Make(dtypes.Float32, 4, 3, 2)
	if d := shape.Dim(0); d != 4 {
		t.Errorf("shape.Dim(0) = %d, want 4", d)
	}
	if d := shape.Dim(1); d != 3 {
		t.Errorf("shape.Dim(1) = %d, want 3", d)
	}
	if d := shape.Dim(2); d != 2 {
		t.Errorf("shape.Dim(2) = %d, want 2", d)
	}
	if d := shape.Dim(-3); d != 4 {
		t.Errorf("shape.Dim(-3) = %d, want 4", d)
	}
	if d := shape.Dim(-2); d != 3 {
		t.Errorf("shape.Dim(-2) = %d, want 3", d)
	}
	if d := shape.Dim(-1); d != 2 {
		t.Errorf("shape.Dim(-1) = %d, want 2", d)
	}
	panics(t, func() { _ = shape.Dim(3) })
	panics(t, func() { _ = shape.Dim(-4) })
}

func TestFromAnyValue(t *testing.T) {
	shape, err := FromAnyValue([]int32{1, 2, 3})
	if err != nil {
		t.Fatalf("FromAnyValue failed: %v", err)
	}
	notPanics(t, func() {
		if err := shape.Check(dtypes.Int32, 3); err != nil {
			panic(err)
		}
	})

	shape, err = FromAnyValue([][][]complex64{{{1, 2, -3}, {3, 4 + 2i, -7 - 1i}}})
	if err != nil {
		t.Fatalf("FromAnyValue failed: %v", err)
	}
	notPanics(t, func() {
		if err := shape.Check(dtypes.Complex64, 1, 2, 3); err != nil {
			panic(err)
		}
	})

	// Irregular shape is not accepted:
	shape, err = FromAnyValue([][]float32{{1, 2, 3}, {4, 5}})
	if err == nil {
		t.Errorf("irregular shape should have returned an error, instead got shape %s", shape)
	}
	if _, err = FromAnyValue([][]int8{{1}, {}}); err == nil {
		t.Error("irregular inner slice should have returned an error")
	}
	if _, err = FromAnyValue([][]int8{}); err == nil {
		t.Error("empty slice should have returned an error")
	}
	if _, err = FromAnyValue([]string{"a"}); err == nil {
		t.Error("strings can't be used as tensors")
	}
	shape, err = FromAnyValue(true)
	if err != nil || shape.Rank() != 0 || shape.DType != dtypes.Bool {
		t.Errorf("FromAnyValue(true) = %s, %v", shape, err)
	}
}

func TestPartialShapes(t *testing.T) {
	partial := Make(dtypes.Float32, UnknownDim, 28, 28)
	if partial.IsFullyDefined() {
		t.Error("partial.IsFullyDefined() should be false")
	}
	if partial.Size() != -1 {
		t.Errorf("partial.Size() = %d, want -1", partial.Size())
	}
	if partial.Memory() != 0 {
		t.Errorf("partial.Memory() = %d, want 0", partial.Memory())
	}
	if got := partial.String(); got != "(Float32)[? 28 28]" {
		t.Errorf("partial.String() = %q", got)
	}
	if got := partial.DimsString(); got != "[?,28,28]" {
		t.Errorf("partial.DimsString() = %q", got)
	}
	if !partial.IsCompatibleWith(Make(dtypes.Float32, 32, 28, 28)) {
		t.Error("partial should be compatible with (Float32)[32 28 28]")
	}
	if partial.IsCompatibleWith(Make(dtypes.Float32, 32, 28)) {
		t.Error("partial should not be compatible with a rank-2 shape")
	}
	if partial.IsCompatibleWith(Make(dtypes.Float64, 32, 28, 28)) {
		t.Error("partial should not be compatible with a different dtype")
	}

	unknown := MakeUnknownRank(dtypes.Int64)
	if unknown.Rank() != -1 {
		t.Errorf("unknown.Rank() = %d, want -1", unknown.Rank())
	}
	if unknown.IsScalar() {
		t.Error("unknown.IsScalar() should be false")
	}
	if !unknown.IsCompatibleWith(Make(dtypes.Int64, 1, 2, 3)) {
		t.Error("unknown rank should be compatible with any shape of the same dtype")
	}
	if got := unknown.DimsString(); got != "[*]" {
		t.Errorf("unknown.DimsString() = %q", got)
	}
	if unknown.Equal(Make(dtypes.Int64)) {
		t.Error("unknown rank should not be equal to a scalar")
	}
	panics(t, func() { _ = unknown.Dim(0) })
	panics(t, func() { _ = Make(dtypes.Float32, -2) })
}

func TestDTypeFromName(t *testing.T) {
	dtype, err := DTypeFromName("float32")
	if err != nil || dtype != dtypes.Float32 {
		t.Errorf("DTypeFromName(\"float32\") = %s, %v", dtype, err)
	}
	if name := DTypeName(dtypes.Int64); name != "int64" {
		t.Errorf("DTypeName(Int64) = %q", name)
	}
	if _, err := DTypeFromName("quaternion"); err == nil {
		t.Error("DTypeFromName(\"quaternion\") should fail")
	}
	if _, err := FromAnyValue(nil); err == nil {
		t.Error("FromAnyValue(nil) should fail")
	}
}
