package cast

import (
	"testing"

	"github.com/langulus/rtti/meta"
)

func TestGetAbilityAndIsAbleTo(t *testing.T) {
	d := meta.NewMetaData("Widget")
	verb := meta.NewMetaVerb("Create", "Destroy")
	ability := d.Ability(verb)
	ability.BindMutable(meta.Signature{}, func(receiver, verb, args []byte) {})

	if !IsAbleTo(d, verb) {
		t.Fatalf("expected Widget to be able to Create")
	}
	got, ok := GetAbility(d, verb)
	if !ok || got != ability {
		t.Fatalf("GetAbility mismatch")
	}
}

func TestGetConverter(t *testing.T) {
	a := meta.NewMetaData("Celsius")
	b := meta.NewMetaData("Fahrenheit")
	conv := &meta.Converter{To: b}
	a.AddConverter(conv)

	got, ok := GetConverter(a, b)
	if !ok || got != conv {
		t.Fatalf("GetConverter mismatch")
	}
}

func TestGetNamedValueOf(t *testing.T) {
	enum := meta.NewMetaData("Suit")
	hearts := meta.NewMetaConst("Suit::Hearts", enum, func() any { return 2 })
	enum.NamedValues = append(enum.NamedValues, hearts)

	got, ok := GetNamedValueOf(enum, 2)
	if !ok || got != hearts {
		t.Fatalf("GetNamedValueOf mismatch")
	}
	if _, ok := GetNamedValueOf(enum, 99); ok {
		t.Fatalf("expected no match for an absent value")
	}
}

func TestGetMemberByOffset(t *testing.T) {
	d := meta.NewMetaData("Widget")
	d.Members = []meta.Member{
		{Name: "a", Offset: 0},
		{Name: "b", Offset: 4},
	}
	offset := uintptr(4)
	m, ok := GetMember(d, MemberQuery{Offset: &offset})
	if !ok || m.Name != "b" {
		t.Fatalf("GetMember by offset mismatch")
	}
}

func TestRequestSizeDelegates(t *testing.T) {
	d := meta.NewMetaData("Vec3")
	d.Size = 12
	d.AllocationTable[6] = 5 // 64 bytes / 12 ~ 5
	if RequestSize(d, 64) != d.RequestSize(64) {
		t.Fatalf("RequestSize did not delegate to MetaData.RequestSize")
	}
}
