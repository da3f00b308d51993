package corpusdex

import (
	"reflect"
	"testing"
)

func TestIntersect(t *testing.T) {
	cases := []struct {
		a, b, want []uint32
	}{
		{[]uint32{1, 2, 3}, []uint32{2, 3, 4}, []uint32{2, 3}},
		{[]uint32{}, []uint32{1, 2}, []uint32{}},
		{[]uint32{1, 2, 3}, []uint32{4, 5}, []uint32{}},
		{[]uint32{1, 2, 3}, []uint32{1, 2, 3}, []uint32{1, 2, 3}},
	}
	for _, c := range cases {
		got := Intersect(c.a, c.b)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Intersect(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestUnion(t *testing.T) {
	cases := []struct {
		a, b, want []uint32
	}{
		{[]uint32{1, 3}, []uint32{2, 3, 4}, []uint32{1, 2, 3, 4}},
		{[]uint32{}, []uint32{1, 2}, []uint32{1, 2}},
		{[]uint32{1, 2, 3}, []uint32{1, 2, 3}, []uint32{1, 2, 3}},
	}
	for _, c := range cases {
		got := Union(c.a, c.b)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Union(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestComplement(t *testing.T) {
	got := Complement([]uint32{1, 3}, 5)
	want := []uint32{0, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complement({1,3}, 5) = %v, want %v", got, want)
	}
}

func TestComplement_Empty(t *testing.T) {
	got := Complement([]uint32{}, 3)
	want := []uint32{0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complement({}, 3) = %v, want %v", got, want)
	}
}

func TestComplement_FullList(t *testing.T) {
	got := Complement([]uint32{0, 1, 2}, 3)
	if len(got) != 0 {
		t.Errorf("Complement(full, 3) = %v, want empty", got)
	}
}

func TestAlgebraLaws(t *testing.T) {
	L := []uint32{1, 3, 5, 7}
	N := uint32(10)

	if got := Intersect(L, L); !reflect.DeepEqual(got, L) {
		t.Errorf("intersect(L,L) = %v, want %v", got, L)
	}
	if got := Union(L, L); !reflect.DeepEqual(got, L) {
		t.Errorf("union(L,L) = %v, want %v", got, L)
	}

	comp := Complement(L, N)
	if got := Complement(comp, N); !reflect.DeepEqual(got, L) {
		t.Errorf("complement(complement(L,N),N) = %v, want %v", got, L)
	}

	if got := Intersect(L, comp); len(got) != 0 {
		t.Errorf("intersect(L, complement(L,N)) = %v, want empty", got)
	}

	full := Union(L, comp)
	for i := uint32(0); i < N; i++ {
		if full[i] != i {
			t.Fatalf("union(L, complement(L,N)) = %v, want [0..%d)", full, N)
		}
	}
}
