package token

import "testing"

func TestDeriveStripsKeywordsAndNamespace(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"class Langulus::Anyness::Many", "Anyness::Many"},
		{"struct Point", "Point"},
		{"enum Langulus::Flow::State", "Flow::State"},
		{"std::uint64_t", "uint64"},
		{"unsigned long long", "uint64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.name); string(got) != tt.want {
				t.Fatalf("Derive(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestDerivePointerDecorationsPreserved(t *testing.T) {
	// NameOf<const uint16_t* const*>() -> "const uint16*const *". The raw
	// pretty-name a compiler hands Derive spells
	// uint16_t out as its std:: typedef, which the replace table then
	// substitutes down to "uint16"; the const/pointer decorations are
	// preserved and read outer-in, with a canonical single space after
	// each "const" regardless of the source's own spacing.
	got := Derive("const std::uint16_t* const*")
	want := "const uint16*const *"
	if string(got) != want {
		t.Fatalf("Derive(%q) = %q, want %q", "const std::uint16_t* const*", got, want)
	}
}

func TestDeriveEnumeratorIsolatesFinalSegment(t *testing.T) {
	got := DeriveEnumerator(
		"One::Two::Three::TemplatedTypeDeepIntoNamespaces<uint16_t>::VeryDeeplyTemplatedEnum",
		"One::Two::Three::TemplatedTypeDeepIntoNamespaces<uint16_t>::VeryDeeplyTemplatedEnum::YesYouGotThatRight",
	)
	const suffix = "::YesYouGotThatRight"
	if len(got) < len(suffix) || string(got)[len(got)-len(suffix):] != suffix {
		t.Fatalf("DeriveEnumerator(...) = %q, want suffix %q", got, suffix)
	}
}

func TestLastNameSkipsBracketedSegments(t *testing.T) {
	tok := Token("N1::Map<N2::Key, N3::Value>::Entry")
	if got := LastName(tok); got != "Entry" {
		t.Fatalf("LastName(%q) = %q, want %q", tok, got, "Entry")
	}
}

func TestLastNameHandlesBareToken(t *testing.T) {
	if got := LastName(Token("Type")); got != "Type" {
		t.Fatalf("LastName(Type) = %q, want Type", got)
	}
}

func TestIsolateOperatorTrimsAndLowers(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  +  ", "+"},
		{"\t - \n", "-"},
		{"CREATE", "create"},
	}
	for _, tt := range tests {
		if got := IsolateOperator(Token(tt.in)); string(got) != tt.want {
			t.Fatalf("IsolateOperator(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeriveGenericRecursesIntoArguments(t *testing.T) {
	got := DeriveGeneric("Langulus::Anyness::Pair", []Token{"std::uint32_t", "class Widget"})
	if string(got) != "Anyness::Pair<uint32, Widget>" {
		t.Fatalf("DeriveGeneric = %q", got)
	}
}

func TestLowerFoldsCase(t *testing.T) {
	if Token("Type").Lower() != Token("type") {
		t.Fatalf("Lower did not fold case")
	}
}
