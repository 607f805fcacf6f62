package meta

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/langulus/rtti/hash"
)

func TestNewMetaDataHashMatchesTokenHash(t *testing.T) {
	d := NewMetaData("Anyness::Many")
	if d.Hash().IsZero() {
		t.Fatalf("expected non-zero hash")
	}
	if !d.Hash().Equal(hash.HashString("Anyness::Many")) {
		t.Fatalf("descriptor hash does not match the hash of its token")
	}
	d2 := NewMetaData("Anyness::Many")
	if !d.Hash().Equal(d2.Hash()) {
		t.Fatalf("same token produced different hashes")
	}
}

func TestValidateCatchesBadAlignment(t *testing.T) {
	d := NewMetaData("Bad")
	d.Alignment = 3
	d.Size = 8
	if err := d.Validate(); err == nil {
		t.Fatalf("expected alignment error")
	}
}

func TestValidateSparseRequiresPointerSize(t *testing.T) {
	d := NewMetaData("T*")
	d.Alignment = 8
	d.IsSparse = true
	d.Size = 3
	if err := d.Validate(); err == nil {
		t.Fatalf("expected sparse size error")
	}
	d.Size = uintptr(unsafe.Sizeof(uintptr(0)))
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAbstractForbidsDefaultCtor(t *testing.T) {
	d := NewMetaData("Abstract")
	d.Alignment = 8
	d.Size = 8
	d.IsAbstract = true
	d.VTable.DefaultCtor = func([]byte) {}
	if err := d.Validate(); err == nil {
		t.Fatalf("expected abstract/default-ctor error")
	}
}

func TestAbilityBindAndLookup(t *testing.T) {
	verb := NewMetaVerb("Create", "Destroy")
	a := NewAbility(verb)
	sig := Signature{}
	called := false
	a.BindMutable(sig, func(receiver, v, args []byte) { called = true })
	fn, ok := a.Mutable(sig)
	if !ok {
		t.Fatalf("expected mutable overload bound")
	}
	fn(nil, nil, nil)
	if !called {
		t.Fatalf("bound function not invoked")
	}
	if _, ok := a.Constant(sig); ok {
		t.Fatalf("constant overload should not exist")
	}
}

func TestMetaDataAbilityLazyCreate(t *testing.T) {
	d := NewMetaData("Widget")
	verb := NewMetaVerb("Create", "Destroy")
	a1 := d.Ability(verb)
	a2 := d.Ability(verb)
	if a1 != a2 {
		t.Fatalf("expected same Ability instance on repeated lookup")
	}
	if d.IsAbleTo(verb) {
		t.Fatalf("ability with no bound overloads should not be 'able'")
	}
	a1.BindMutable(Signature{}, func([]byte, []byte, []byte) {})
	if !d.IsAbleTo(verb) {
		t.Fatalf("expected IsAbleTo true after binding an overload")
	}
}

func TestRequestSizeUsesAllocationTable(t *testing.T) {
	d := NewMetaData("Small")
	d.Size = 16
	d.AllocationTable[12] = 256 // a 4096-byte page holds 256 16-byte elements
	if got := d.RequestSize(4096); got != 256 {
		t.Fatalf("RequestSize(4096) = %d, want 256", got)
	}
}

func TestMetaDataStructuralCompatibility(t *testing.T) {
	a := NewMetaData("T")
	a.Size, a.Alignment = 8, 8
	b := NewMetaData("T")
	b.Size, b.Alignment = 8, 8
	if !a.CompatibleWith(b) {
		t.Fatalf("expected structurally identical descriptors to be compatible")
	}
	b.Size = 16
	if a.CompatibleWith(b) {
		t.Fatalf("expected differing size to break compatibility")
	}
}

func TestRetrieverMemoizes(t *testing.T) {
	calls := 0
	target := NewMetaData("Node")
	r := NewRetriever(func() (Any, error) {
		calls++
		return target, nil
	})
	m := Member{Name: "next", TypeRetriever: r}
	d1, err := m.Type()
	if err != nil {
		t.Fatalf("Type(): %v", err)
	}
	d2, err := m.Type()
	if err != nil {
		t.Fatalf("Type(): %v", err)
	}
	if d1 != d2 || d1 != target {
		t.Fatalf("retriever did not memoize the same descriptor")
	}
	if calls != 1 {
		t.Fatalf("resolver called %d times, want 1", calls)
	}
}

func TestMemberOrderingPreserved(t *testing.T) {
	d := NewMetaData("Point")
	d.Members = []Member{
		{Name: "x", TypeRetriever: Resolved(NewMetaData("float")), Offset: 0},
		{Name: "y", TypeRetriever: Resolved(NewMetaData("float")), Offset: 4},
	}
	if diff := cmp.Diff([]string{"x", "y"}, memberNames(d)); diff != "" {
		t.Fatalf("member order not preserved (-want +got):\n%s", diff)
	}
}

func memberNames(d *MetaData) []string {
	names := make([]string, len(d.Members))
	for i, m := range d.Members {
		names[i] = m.Name
	}
	return names
}
