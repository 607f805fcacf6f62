package token

import "strings"

// Derive canonicalizes a raw type spelling into a Token, applying the
// skip/replace rules scanner implements. Callers are expected to have
// already stripped reference-ness (Go has no reference types to strip,
// unlike the C++ source, so this is a no-op boundary kept only for
// documentation).
func Derive(name string) Token {
	return Token(newScanner(name).run())
}

// DeriveGeneric builds the canonical token for a generic/template
// instantiation base<arg0, arg1, ...>, canonicalizing base and each argument
// independently before joining them. This is the Go-native substitute for
// templates retaining angle-bracket argument lists whose arguments recurse
// through the same canonicalization — Go has no single pretty-function
// string to scan for a generic instantiation, so the recursion that the
// C++ scanner gets "for free" (because the arguments are textually
// embedded) must be driven explicitly here.
func DeriveGeneric(base string, args []Token) Token {
	canonicalBase := Derive(base)
	if len(args) == 0 {
		return canonicalBase
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = string(Derive(string(a)))
	}
	var b strings.Builder
	b.WriteString(string(canonicalBase))
	b.WriteByte('<')
	b.WriteString(strings.Join(parts, ", "))
	b.WriteByte('>')
	return Token(b.String())
}

// DeriveEnumerator isolates the final "::Name" segment of a named
// enumerator's pretty-printed constant expression and appends it to the
// normalized enum type name, yielding "EnumType::Name".
func DeriveEnumerator(enumType string, constantPrettyName string) Token {
	segment := lastUnbracketedSegment(constantPrettyName)
	base := Derive(enumType)
	return Token(string(base) + "::" + segment)
}

// LastName returns the suffix of tok after the last "::" that is not
// enclosed in angle brackets, used by the registry's ambiguous-name index.
func LastName(tok Token) string {
	return lastUnbracketedSegment(string(tok))
}

// lastUnbracketedSegment scans right to left, skipping over balanced <...>
// spans, and returns the text after the last top-level "::".
func lastUnbracketedSegment(s string) string {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '>':
			depth++
		case '<':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 && i > 0 && s[i-1] == ':' {
				return s[i+1:]
			}
		}
	}
	return s
}

// IsolateOperator trims leading/trailing bytes <= 0x20 and lower-cases the
// result, producing the key used by the registry's operator map.
func IsolateOperator(tok Token) Token {
	trimmed := strings.TrimFunc(string(tok), func(r rune) bool {
		return r <= 0x20
	})
	return Token(strings.ToLower(trimmed))
}
