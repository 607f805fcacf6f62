package token

import "strings"

// scanner walks a raw type-name string applying the skip/replace rules that
// canonicalize a compiler's pretty-name. Its shape (byte position,
// peek/consume, rule tables) mirrors internal/swiftdemangle's parser,
// adapted from mangled-name decoding to canonicalization of an
// already-demangled spelling.
type scanner struct {
	src []byte
	pos int
	out strings.Builder
}

func newScanner(s string) *scanner {
	return &scanner{src: []byte(s)}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) hasPrefix(p string) bool {
	return strings.HasPrefix(string(s.src[s.pos:]), p)
}

// applySkips removes any leading skip pattern, repeatedly, until none match.
func (s *scanner) applySkips() bool {
	skipped := false
	for {
		matched := false
		for _, p := range skipPatterns {
			if s.hasPrefix(p) {
				s.pos += len(p)
				matched = true
				skipped = true
			}
		}
		if !matched {
			break
		}
	}
	return skipped
}

// applyReplace substitutes the first matching leading replace pattern and
// reports whether one applied.
func (s *scanner) applyReplace() bool {
	for _, r := range replacePatterns {
		if s.hasPrefix(r.from) {
			s.out.WriteString(r.to)
			s.pos += len(r.from)
			return true
		}
	}
	return false
}

// run consumes the whole source, copying bytes verbatim except where a skip
// or replace pattern applies, and returns the canonical spelling.
func (s *scanner) run() string {
	for !s.eof() {
		if s.applySkips() {
			continue
		}
		if s.applyReplace() {
			continue
		}
		s.out.WriteByte(s.src[s.pos])
		s.pos++
	}
	return strings.TrimSuffix(s.out.String(), " ")
}
