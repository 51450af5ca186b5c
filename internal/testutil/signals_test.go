package testutil

import "testing"

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDeterministicMatrixShape(t *testing.T) {
	m := DeterministicMatrix(7, 3, 5, 2)
	if len(m) != 3 {
		t.Fatalf("rows = %d, want 3", len(m))
	}
	for i, row := range m {
		if len(row) != 5 || cap(row) != 5 {
			t.Fatalf("row %d len/cap = %d/%d, want 5/5", i, len(row), cap(row))
		}
	}
	RequireSliceNearlyEqual(t, Flatten(m), DeterministicNoise(7, 2, 15), 0)
}

func TestImpulse2D(t *testing.T) {
	m := Impulse2D(3, 4, 1, 2)
	for i := range m {
		for j, v := range m[i] {
			want := 0.0
			if i == 1 && j == 2 {
				want = 1
			}
			if v != want {
				t.Fatalf("m[%d][%d] = %v, want %v", i, j, v, want)
			}
		}
	}

	for _, v := range Flatten(Impulse2D(2, 2, 5, 0)) {
		if v != 0 {
			t.Fatal("out-of-bounds impulse should leave the matrix zero")
		}
	}
}

func TestConstant2D(t *testing.T) {
	for _, v := range Flatten(Constant2D(2, 3, 0.5)) {
		if v != 0.5 {
			t.Fatalf("got %v, want 0.5", v)
		}
	}
}
