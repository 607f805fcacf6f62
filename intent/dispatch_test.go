package intent

import (
	"testing"
	"unsafe"
)

func TestKindTableMatchesSpec(t *testing.T) {
	tests := []struct {
		k                    Kind
		keeps, moves, shallow bool
	}{
		{KindRefer, true, false, true},
		{KindCopy, true, false, true},
		{KindMove, true, true, true},
		{KindAbandon, false, true, true},
		{KindDisown, false, false, true},
		{KindClone, true, false, false},
	}
	for _, tt := range tests {
		if got := tt.k.Keeps(); got != tt.keeps {
			t.Errorf("%s.Keeps() = %v, want %v", tt.k, got, tt.keeps)
		}
		if got := tt.k.Moves(); got != tt.moves {
			t.Errorf("%s.Moves() = %v, want %v", tt.k, got, tt.moves)
		}
		if got := tt.k.Shallow(); got != tt.shallow {
			t.Errorf("%s.Shallow() = %v, want %v", tt.k, got, tt.shallow)
		}
	}
}

func TestIntentsNeverNest(t *testing.T) {
	inner := Move(42)
	outer := Copy(inner)
	if outer.Kind() != KindMove {
		t.Fatalf("nested intent did not collapse to inner kind: got %s", outer.Kind())
	}
}

type pod struct{ X, Y int64 }

func TestIntentNewPODBulkCopy(t *testing.T) {
	var dst pod
	src := pod{X: 1, Y: 2}
	ops := Ops{IsPOD: true, Size: unsafe.Sizeof(pod{})}
	if err := IntentNew(&dst, Copy(src), ops); err != nil {
		t.Fatalf("IntentNew: %v", err)
	}
	if dst != src {
		t.Fatalf("IntentNew POD copy mismatch: got %+v, want %+v", dst, src)
	}
}

func TestIntentNewCloneRequiresTrivialCopyabilityForPOD(t *testing.T) {
	var dst pod
	src := pod{X: 1, Y: 2}
	ops := Ops{IsPOD: true, IsTriviallyCopyable: false, Size: unsafe.Sizeof(pod{})}
	if err := IntentNew(&dst, Clone(src), ops); err != ErrUnsupportedIntent {
		t.Fatalf("expected ErrUnsupportedIntent, got %v", err)
	}
}

func TestIntentNewFallsBackToMoveCtorForAbandon(t *testing.T) {
	var dst pod
	src := pod{X: 7, Y: 8}
	called := false
	ops := Ops{
		MoveCtor: func(dstP, srcP unsafe.Pointer) {
			called = true
			*(*pod)(dstP) = *(*pod)(srcP)
		},
	}
	if err := IntentNew(&dst, Abandon(src), ops); err != nil {
		t.Fatalf("IntentNew: %v", err)
	}
	if !called || dst != src {
		t.Fatalf("abandon did not fall back to move ctor: called=%v dst=%+v", called, dst)
	}
}

func TestIntentNewFallsBackToCopyCtorForDisown(t *testing.T) {
	var dst pod
	src := pod{X: 3, Y: 4}
	called := false
	ops := Ops{
		CopyCtor: func(dstP, srcP unsafe.Pointer) {
			called = true
			*(*pod)(dstP) = *(*pod)(srcP)
		},
	}
	if err := IntentNew(&dst, Disown(src), ops); err != nil {
		t.Fatalf("IntentNew: %v", err)
	}
	if !called || dst != src {
		t.Fatalf("disown did not fall back to copy ctor")
	}
}

func TestIntentNewUnsupportedFails(t *testing.T) {
	var dst pod
	if err := IntentNew(&dst, Copy(pod{}), Ops{}); err != ErrUnsupportedIntent {
		t.Fatalf("expected ErrUnsupportedIntent, got %v", err)
	}
}

func TestIntentAssignPrefersExplicitAssigner(t *testing.T) {
	var dst pod
	src := pod{X: 9, Y: 10}
	calledCtor, calledAssign := false, false
	ops := Ops{
		CopyCtor:   func(unsafe.Pointer, unsafe.Pointer) { calledCtor = true },
		CopyAssign: func(dstP, srcP unsafe.Pointer) { calledAssign = true; *(*pod)(dstP) = *(*pod)(srcP) },
	}
	if err := IntentAssign(&dst, Copy(src), ops); err != nil {
		t.Fatalf("IntentAssign: %v", err)
	}
	if calledCtor || !calledAssign || dst != src {
		t.Fatalf("IntentAssign did not prefer explicit assigner: ctor=%v assign=%v", calledCtor, calledAssign)
	}
}

func TestDeintStripsWrapper(t *testing.T) {
	if got := Deint(Refer("hello")); got != "hello" {
		t.Fatalf("Deint = %q, want hello", got)
	}
}

func TestIntentOfSelectsMoveForRvalue(t *testing.T) {
	i := IntentOf[int](Rvalue[int]{V: 5})
	if i.Kind() != KindMove {
		t.Fatalf("IntentOf(Rvalue) = %s, want Move", i.Kind())
	}
	j := IntentOf[int](5)
	if j.Kind() != KindRefer {
		t.Fatalf("IntentOf(plain) = %s, want Refer", j.Kind())
	}
}
