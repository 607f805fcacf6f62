package hash

import "testing"

func TestHashBytesDeterministic(t *testing.T) {
	a := HashBytes([]byte("Anyness::Many"))
	b := HashBytes([]byte("Anyness::Many"))
	if !a.Equal(b) {
		t.Fatalf("HashBytes not deterministic: %v != %v", a, b)
	}
}

func TestHashBytesWidths(t *testing.T) {
	data := []byte("const uint16*const *")
	h32 := HashBytesWidth(data, Width32)
	h64 := HashBytesWidth(data, Width64)
	h128 := HashBytesWidth(data, Width128)
	if h32.Width() != Width32 || h64.Width() != Width64 || h128.Width() != Width128 {
		t.Fatalf("width not preserved: %v %v %v", h32, h64, h128)
	}
	hi, lo := h128.Bytes128()
	if hi == 0 && lo == 0 {
		t.Fatalf("128-bit hash is zero")
	}
}

func TestHashOfComposesArrayOfInnerHashes(t *testing.T) {
	x := HashString("x")
	y := HashString("y")
	composed1 := HashOf(x, y)
	composed2 := HashOf(x, y)
	if !composed1.Equal(composed2) {
		t.Fatalf("HashOf not deterministic")
	}
	reordered := HashOf(y, x)
	if composed1.Equal(reordered) {
		t.Fatalf("HashOf should be order sensitive")
	}
}

type fakeDescriptor struct {
	intrinsic Hash
}

func (f fakeDescriptor) Hash() Hash { return f.intrinsic }

func TestHashOfUsesIntrinsicHashForHashable(t *testing.T) {
	d := fakeDescriptor{intrinsic: HashString("intrinsic")}
	viaDescriptor := HashOf(d)
	viaIntrinsic := HashOf(d.intrinsic)
	if !viaDescriptor.Equal(viaIntrinsic) {
		t.Fatalf("HashOf did not use descriptor's intrinsic hash")
	}
}

func TestHashOfHashesPointerBitsNotPointee(t *testing.T) {
	type T struct{ V int }
	a := &T{V: 1}
	b := &T{V: 1}
	if HashOf(a).Equal(HashOf(b)) {
		t.Fatalf("expected distinct pointers to distinct identical values to hash differently")
	}
	if !HashOf(a).Equal(HashOf(a)) {
		t.Fatalf("expected same pointer to hash the same")
	}
}
