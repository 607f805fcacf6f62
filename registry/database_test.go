package registry

import (
	"errors"
	"sort"
	"testing"

	"github.com/langulus/rtti/meta"
	"github.com/langulus/rtti/token"
)

func namesOf(t *testing.T, items []meta.Any) []string {
	t.Helper()
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, string(it.Base().Token))
	}
	sort.Strings(out)
	return out
}

func TestAmbiguousLookupAcrossNamespaces(t *testing.T) {
	db := New()

	n1, err := db.RegisterData("N1::Type", meta.NewMetaData(""))
	if err != nil {
		t.Fatalf("register N1::Type: %v", err)
	}
	n2, err := db.RegisterData("N2::Type", meta.NewMetaData(""))
	if err != nil {
		t.Fatalf("register N2::Type: %v", err)
	}
	n3, err := db.RegisterData("N3::type", meta.NewMetaData(""))
	if err != nil {
		t.Fatalf("register N3::type: %v", err)
	}
	_ = n1
	_ = n2
	_ = n3

	create := meta.NewMetaVerb("Create", "Destroy")
	if _, err := db.RegisterVerb("Verbs::Create", "Create", "Destroy", "+", "-", create); err != nil {
		t.Fatalf("register verb: %v", err)
	}
	n1Create, err := db.RegisterData("N1::Create", meta.NewMetaData(""))
	if err != nil {
		t.Fatalf("register N1::Create: %v", err)
	}
	_ = n1Create

	got := namesOf(t, db.GetAmbiguousMeta("type"))
	want := []string{"N1::Type", "N2::Type", "N3::type"}
	if len(got) != len(want) {
		t.Fatalf("GetAmbiguousMeta(type) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GetAmbiguousMeta(type) = %v, want %v", got, want)
		}
	}

	createBucket := namesOf(t, db.GetAmbiguousMeta("create"))
	wantCreate := []string{"Create", "N1::Create"}
	if len(createBucket) != len(wantCreate) {
		t.Fatalf("GetAmbiguousMeta(create) = %v, want %v", createBucket, wantCreate)
	}

	v, err := db.GetOperator("  +  ")
	if err != nil || v != create {
		t.Fatalf("GetOperator(+) = %v, %v; want Create verb", v, err)
	}
	v, err = db.GetOperator("\t - \n")
	if err != nil || v != create {
		t.Fatalf("GetOperator(-) = %v, %v; want Create verb", v, err)
	}
}

func TestUnloadLibraryRemovesOnlyItsOwnDescriptors(t *testing.T) {
	db := New()
	db.SetBoundary("MAIN")
	if _, err := db.RegisterData("Kept::Thing", meta.NewMetaData("")); err != nil {
		t.Fatalf("register Kept::Thing: %v", err)
	}

	db.SetBoundary("PluginA")
	for _, tok := range []token.Token{"PluginA::One", "PluginA::Two", "PluginA::Three"} {
		if _, err := db.RegisterData(tok, meta.NewMetaData("")); err != nil {
			t.Fatalf("register %s: %v", tok, err)
		}
	}

	db.UnloadLibrary("PluginA")

	for _, tok := range []token.Token{"PluginA::One", "PluginA::Two", "PluginA::Three"} {
		if _, err := db.GetMetaData(tok); err == nil {
			t.Fatalf("expected %s to be gone after UnloadLibrary", tok)
		}
		if got := db.GetAmbiguousMeta(token.LastName(tok)); len(got) != 0 {
			t.Fatalf("expected %s to be removed from ambiguous index, got %v", tok, got)
		}
	}

	if _, err := db.GetMetaData("Kept::Thing"); err != nil {
		t.Fatalf("Kept::Thing should survive an unrelated boundary unload: %v", err)
	}
}

func TestRegistrationSymmetry(t *testing.T) {
	db := New()
	const tok token.Token = "Widget"

	for i := 0; i < 3; i++ {
		if _, err := db.RegisterData(tok, meta.NewMetaData("")); err != nil {
			t.Fatalf("register #%d: %v", i, err)
		}
	}
	d, err := db.GetMetaData(tok)
	if err != nil {
		t.Fatalf("expected Widget registered: %v", err)
	}
	if d.References() != 3 {
		t.Fatalf("references = %d, want 3", d.References())
	}

	for i := 0; i < 3; i++ {
		if err := db.Unregister(meta.KindData, tok); err != nil {
			t.Fatalf("unregister #%d: %v", i, err)
		}
	}

	if _, err := db.GetMetaData(tok); err != ErrUnknownToken {
		t.Fatalf("expected ErrUnknownToken after full unregistration, got %v", err)
	}
	if got := db.GetAmbiguousMeta("Widget"); len(got) != 0 {
		t.Fatalf("expected no orphaned ambiguous entries, got %v", got)
	}
}

func TestRegisterDataConflictOnIncompatibleBody(t *testing.T) {
	db := New()
	a := meta.NewMetaData("")
	a.Size = 4
	a.Alignment = 4
	if _, err := db.RegisterData("Conflicting", a); err != nil {
		t.Fatalf("register a: %v", err)
	}

	b := meta.NewMetaData("")
	b.Size = 8
	b.Alignment = 8
	if _, err := db.RegisterData("Conflicting", b); !errors.Is(err, ErrRegistrationConflict) {
		t.Fatalf("expected ErrRegistrationConflict, got %v", err)
	}
}

func TestNonMainBoundaryForcesPoolTypeTactic(t *testing.T) {
	db := New()
	db.SetBoundary("PluginB")
	d, err := db.RegisterData("PluginB::Gadget", meta.NewMetaData(""))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if d.PoolTactic != meta.PoolType {
		t.Fatalf("pool tactic = %v, want PoolType for non-MAIN boundary", d.PoolTactic)
	}
}
