package cast

import (
	"testing"

	"github.com/langulus/rtti/meta"
)

func TestReflexivity(t *testing.T) {
	m := meta.NewMetaData("Widget")
	if !Is(m, m) {
		t.Fatalf("Is(m,m) should hold")
	}
	if !IsSimilar(m, m) {
		t.Fatalf("IsSimilar(m,m) should hold")
	}
	if !IsExact(m, m) {
		t.Fatalf("IsExact(m,m) should hold")
	}
}

func TestIsIgnoresOriginDecorations(t *testing.T) {
	origin := meta.NewMetaData("int32")
	ptr := meta.NewMetaData("int32*")
	ptr.IsSparse = true
	ptr.Origin = origin
	ptr.Deptr = origin
	if !Is(ptr, origin) {
		t.Fatalf("Is(ptr, origin) should hold, both share the same origin")
	}
}

func buildChain() (grandparent, parent, child *meta.MetaData) {
	grandparent = meta.NewMetaData("Base")
	parent = meta.NewMetaData("Mid")
	child = meta.NewMetaData("Derived")
	parent.Bases = []meta.Base{{Type: grandparent}}
	child.Bases = []meta.Base{{Type: parent}}
	return
}

func TestGetDistanceToCountsHops(t *testing.T) {
	grandparent, parent, child := buildChain()
	if d := GetDistanceTo(child, child); d != 0 {
		t.Fatalf("distance to self = %d, want 0", d)
	}
	if d := GetDistanceTo(child, parent); d != 1 {
		t.Fatalf("distance to parent = %d, want 1", d)
	}
	if d := GetDistanceTo(child, grandparent); d != 2 {
		t.Fatalf("distance to grandparent = %d, want 2", d)
	}
}

func TestGetDistanceToUnreachableIsInfinite(t *testing.T) {
	_, _, child := buildChain()
	unrelated := meta.NewMetaData("Unrelated")
	if d := GetDistanceTo(child, unrelated); d != Infinite {
		t.Fatalf("distance to unrelated = %d, want Infinite", d)
	}
}

func TestGetDistanceToIgnoresImposedBases(t *testing.T) {
	child := meta.NewMetaData("Derived")
	imposed := meta.NewMetaData("RoutingOnly")
	child.Bases = []meta.Base{{Type: imposed, Imposed: true}}
	if d := GetDistanceTo(child, imposed); d != Infinite {
		t.Fatalf("imposed base should not count toward distance, got %d", d)
	}
}

func TestCastsToViaBase(t *testing.T) {
	grandparent, _, child := buildChain()
	if !CastsTo(child, grandparent) {
		t.Fatalf("expected CastsTo through transitive base chain")
	}
}

func TestCastsToViaConverter(t *testing.T) {
	a := meta.NewMetaData("Celsius")
	b := meta.NewMetaData("Fahrenheit")
	a.AddConverter(&meta.Converter{To: b})
	if !CastsTo(a, b) {
		t.Fatalf("expected CastsTo via reflected converter")
	}
	if CastsTo(b, a) {
		t.Fatalf("converter is one-directional, CastsTo(b,a) should be false")
	}
}

func TestCastsToNRequiresBinaryCompatibleBaseAndExactMultiple(t *testing.T) {
	element := meta.NewMetaData("Vec3")
	element.Size = 12
	block := meta.NewMetaData("Block")
	block.Size = 36
	block.Bases = []meta.Base{{Type: element, BinaryCompatible: true}}
	if !CastsToN(block, element, 3) {
		t.Fatalf("expected CastsToN(block, element, 3) to hold")
	}
	if CastsToN(block, element, 2) {
		t.Fatalf("CastsToN with wrong count should fail")
	}
}

func TestIsRelatedToIsSymmetricOverCastsTo(t *testing.T) {
	grandparent, _, child := buildChain()
	if !IsRelatedTo(child, grandparent) || !IsRelatedTo(grandparent, child) {
		t.Fatalf("expected IsRelatedTo to hold both directions")
	}
	unrelated := meta.NewMetaData("Unrelated")
	if IsRelatedTo(child, unrelated) {
		t.Fatalf("unrelated types should not be related")
	}
}

func TestGetMostConcreteFallsBackToSelf(t *testing.T) {
	a := meta.NewMetaData("Abstract")
	if GetMostConcrete(a) != a {
		t.Fatalf("expected self when no Concrete override set")
	}
	concrete := meta.NewMetaData("Impl")
	a.Concrete = concrete
	if GetMostConcrete(a) != concrete {
		t.Fatalf("expected Concrete override")
	}
}

func TestRemovePointerStripsOneLayer(t *testing.T) {
	origin := meta.NewMetaData("byte")
	ptr := meta.NewMetaData("byte*")
	ptr.Deptr = origin
	if RemovePointer(ptr) != origin {
		t.Fatalf("RemovePointer did not strip the pointer layer")
	}
}
