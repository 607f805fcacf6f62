package meta

import "testing"

func TestMetaVerbSharedIdentity(t *testing.T) {
	create := NewMetaVerb("Create", "Destroy")
	if create.TokenReverse != "Destroy" {
		t.Fatalf("TokenReverse = %q, want Destroy", create.TokenReverse)
	}
}

func TestMetaVerbMarkAbleDeduplicates(t *testing.T) {
	v := NewMetaVerb("Create", "Destroy")
	d := NewMetaData("Widget")
	v.MarkAble(d)
	v.MarkAble(d)
	if len(v.Able()) != 1 {
		t.Fatalf("MarkAble duplicated entry: %d", len(v.Able()))
	}
}

func TestMetaConstValueAccessor(t *testing.T) {
	enum := NewMetaData("Suit")
	c := NewMetaConst("Suit::Hearts", enum, func() any { return 2 })
	if c.ValueType != enum {
		t.Fatalf("ValueType mismatch")
	}
	if v := c.Value(); v != 2 {
		t.Fatalf("Value() = %v, want 2", v)
	}
}
