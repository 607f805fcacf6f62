// Package token derives canonical, cross-compiler-stable type tokens.
//
// A Go program has no "pretty function" string the way a C++ template
// instantiation does, so the input here is whatever name the caller already
// produced for a type (typically via reflect.Type.String(), augmented with
// pointer/const decorations the caller tracked separately). What matters is
// that the canonicalization rules are applied uniformly, so that two callers
// describing the same type always land on the same Token.
package token

import "strings"

// Token is an immutable, canonicalized spelling of a type. Two Tokens are
// the same type identity iff they are byte-equal.
type Token string

// Lower is the case-folded form used as a registry map key.
func (t Token) Lower() Token {
	return Token(strings.ToLower(string(t)))
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return string(t)
}

// Empty reports whether the token carries no spelling.
func (t Token) Empty() bool {
	return len(t) == 0
}

// skipPatterns are leading substrings removed, in order, repeatedly, before
// any replacement is attempted: class/struct/enum keywords and the
// Langulus:: namespace prefix the original library strips from every
// pretty-name.
var skipPatterns = []string{
	" ",
	"\t",
	"class ",
	"struct ",
	"enum ",
	"Langulus::",
}

// replacePatterns are leading exact matches substituted verbatim. Longest
// patterns are listed first so that, e.g., "unsigned long long" is matched
// before "unsigned long".
var replacePatterns = []struct {
	from, to string
}{
	{"const", "const "}, // canonical single space after const regardless of source spacing
	{"signed char", "int8"},
	{"unsigned char", "uint8"},
	{"unsigned short", "uint16"},
	{"unsigned int", "uint32"},
	{"unsigned long long", "uint64"},
	{"unsigned long", "uint64"},
	{"short", "int16"},
	{"long long", "int64"},
	{"long", "int64"},
	{"std::int8_t", "int8"},
	{"std::int16_t", "int16"},
	{"std::int32_t", "int32"},
	{"std::int64_t", "int64"},
	{"std::uint8_t", "uint8"},
	{"std::uint16_t", "uint16"},
	{"std::uint32_t", "uint32"},
	{"std::uint64_t", "uint64"},
}
