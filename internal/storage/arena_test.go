package storage

import "testing"

func TestSetTakeDestroy(t *testing.T) {
	a := New[string](4)
	if a.Len() != 4 {
		t.Fatalf("Len = %d, want 4", a.Len())
	}

	a.Set(2, "live")
	if *a.Ref(2) != "live" {
		t.Fatalf("Ref(2) = %q, want %q", *a.Ref(2), "live")
	}

	got := a.Take(2)
	if got != "live" {
		t.Fatalf("Take(2) = %q, want %q", got, "live")
	}
	if *a.Ref(2) != "" {
		t.Fatalf("slot not destroyed after Take: %q", *a.Ref(2))
	}
}

func TestDestroyReleasesReferences(t *testing.T) {
	a := New[*int](2)
	v := 41
	a.Set(0, &v)
	a.Destroy(0)
	if *a.Ref(0) != nil {
		t.Fatal("destroyed slot still holds a reference")
	}
}

func TestCopySpanLeavesSourceIntact(t *testing.T) {
	src := New[int](5)
	dst := New[int](5)
	for i := 0; i < 5; i++ {
		src.Set(i, i*10)
	}

	dst.CopySpan(src, 1, 4)

	for i := 1; i < 4; i++ {
		if *dst.Ref(i) != i*10 {
			t.Fatalf("dst slot %d = %d, want %d", i, *dst.Ref(i), i*10)
		}
		if *src.Ref(i) != i*10 {
			t.Fatalf("src slot %d mutated by copy", i)
		}
	}
	// Slots outside the span stay untouched.
	if *dst.Ref(0) != 0 || *dst.Ref(4) != 0 {
		t.Fatal("CopySpan touched slots outside [first, last)")
	}
}

func TestMoveSpanDestroysSource(t *testing.T) {
	src := New[int](4)
	dst := New[int](4)
	for i := 0; i < 4; i++ {
		src.Set(i, i+1)
	}

	dst.MoveSpan(src, 0, 4)

	for i := 0; i < 4; i++ {
		if *dst.Ref(i) != i+1 {
			t.Fatalf("dst slot %d = %d, want %d", i, *dst.Ref(i), i+1)
		}
		if *src.Ref(i) != 0 {
			t.Fatalf("src slot %d = %d, want destroyed", i, *src.Ref(i))
		}
	}
}
