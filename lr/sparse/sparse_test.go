package sparse

import "testing"

func TestSetValue(t *testing.T) {
	m := NewIntMatrix(10, 10, -1)
	m.Set(2, 3, 4711)
	if v := m.Value(2, 3); v != 4711 {
		t.Fatalf("expected 4711, got %d", v)
	}
	if cnt := m.ValueCount(); cnt != 1 {
		t.Fatalf("expected 1 stored value, got %d", cnt)
	}
	if v := m.Value(9, 9); v != -1 {
		t.Fatalf("expected null-value -1, got %d", v)
	}
}

func TestOverwrite(t *testing.T) {
	m := NewIntMatrix(3, 3, DefaultNullValue)
	m.Set(1, 1, 5)
	m.Set(1, 1, 6)
	if v := m.Value(1, 1); v != 6 {
		t.Fatalf("expected overwritten value 6, got %d", v)
	}
	if cnt := m.ValueCount(); cnt != 1 {
		t.Fatalf("expected a single stored entry after overwrite, got %d", cnt)
	}
}

func TestFromDense(t *testing.T) {
	rows := [][]int32{
		{DefaultNullValue, 1, DefaultNullValue},
		{2, DefaultNullValue, 3},
	}
	m := FromDense(rows, DefaultNullValue)
	if m.M() != 2 || m.N() != 3 {
		t.Fatalf("expected 2x3 matrix, got %dx%d", m.M(), m.N())
	}
	if v := m.Value(0, 1); v != 1 {
		t.Fatalf("expected 1 at (0,1), got %d", v)
	}
	if v := m.Value(1, 0); v != 2 {
		t.Fatalf("expected 2 at (1,0), got %d", v)
	}
	if v := m.Value(0, 0); v != DefaultNullValue {
		t.Fatalf("expected null-value at (0,0), got %d", v)
	}
	if cnt := m.ValueCount(); cnt != 3 {
		t.Fatalf("expected 3 stored values, got %d", cnt)
	}
}
