package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVector3(5, 7, 9)

	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(4, 5, 6)
	v2 := NewVector3(1, 2, 3)

	result := v1.Sub(v2)
	expected := NewVector3(3, 3, 3)

	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)

	result := v1.Dot(v2)
	expected := 32.0 // 1*4 + 2*5 + 3*6

	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)

	result := v1.Cross(v2)
	expected := NewVector3(0, 0, 1)

	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)

	length := v.Length()
	expected := 5.0

	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)

	normalized := v.Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected unit length, got %v", normalized.Length())
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	v := NewVector3(0, 0, 0)

	normalized := v.Normalize()
	expected := NewVector3(0, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize of zero vector failed: expected %v, got %v", expected, normalized)
	}
}

func TestVector3MinMax(t *testing.T) {
	v1 := NewVector3(1, 5, 3)
	v2 := NewVector3(4, 2, 6)

	minResult := v1.Min(v2)
	expectedMin := NewVector3(1, 2, 3)
	if minResult != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, minResult)
	}

	maxResult := v1.Max(v2)
	expectedMax := NewVector3(4, 5, 6)
	if maxResult != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, maxResult)
	}
}

func TestVector3IsFinite(t *testing.T) {
	if !NewVector3(1, 2, 3).IsFinite() {
		t.Error("IsFinite failed: finite vector reported as non-finite")
	}
	if NewVector3(math.NaN(), 0, 0).IsFinite() {
		t.Error("IsFinite failed: NaN component reported as finite")
	}
	if NewVector3(0, math.Inf(1), 0).IsFinite() {
		t.Error("IsFinite failed: infinite component reported as finite")
	}
	if NewVector3(0, 0, math.Inf(-1)).IsFinite() {
		t.Error("IsFinite failed: negative infinite component reported as finite")
	}
}
