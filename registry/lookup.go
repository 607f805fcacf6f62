package registry

import (
	"strings"

	"github.com/langulus/rtti/meta"
	"github.com/langulus/rtti/token"
)

// GetMetaData looks up a data descriptor by token, case-insensitively.
func (db *Database) GetMetaData(tok token.Token) (*meta.MetaData, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	d, ok := db.data[string(tok.Lower())]
	if !ok {
		return nil, ErrUnknownToken
	}
	return d, nil
}

// GetMetaTrait looks up a trait descriptor by token, case-insensitively.
func (db *Database) GetMetaTrait(tok token.Token) (*meta.MetaTrait, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	t, ok := db.trait[string(tok.Lower())]
	if !ok {
		return nil, ErrUnknownToken
	}
	return t, nil
}

// GetMetaVerb looks up a verb descriptor by either its positive or reverse
// token, case-insensitively.
func (db *Database) GetMetaVerb(tok token.Token) (*meta.MetaVerb, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, ok := db.verb[string(tok.Lower())]
	if !ok {
		return nil, ErrUnknownToken
	}
	return v, nil
}

// GetMetaConstant looks up a named-constant descriptor by token,
// case-insensitively.
func (db *Database) GetMetaConstant(tok token.Token) (*meta.MetaConst, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	c, ok := db.constant[string(tok.Lower())]
	if !ok {
		return nil, ErrUnknownToken
	}
	return c, nil
}

// GetOperator looks up the verb bound to an operator spelling, trimming
// leading/trailing bytes ≤ 0x20 and lower-casing first.
func (db *Database) GetOperator(op token.Token) (*meta.MetaVerb, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, ok := db.operator[string(token.IsolateOperator(op))]
	if !ok {
		return nil, ErrUnknownToken
	}
	return v, nil
}

// GetAmbiguousMeta returns every descriptor whose last unqualified token
// segment equals short, compared case-insensitively, in no particular order
// (the set itself carries no ordering guarantee).
func (db *Database) GetAmbiguousMeta(short string) []meta.Any {
	db.mu.RLock()
	defer db.mu.RUnlock()
	var out []meta.Any
	seen := make(map[meta.Any]bool)
	for last, set := range db.ambiguous {
		if !strings.EqualFold(last, short) {
			continue
		}
		for d := range set {
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	return out
}

// GetShortestUnambiguousToken walks m's token right-to-left, extending the
// suffix at each "::" boundary until exactly one descriptor in the
// ambiguous index shares it. If no suffix disambiguates (including the
// full token), the full token is returned.
func (db *Database) GetShortestUnambiguousToken(m meta.Any) token.Token {
	db.mu.RLock()
	defer db.mu.RUnlock()

	full := string(m.Base().Token)
	trie := newSegmentTrie()
	for _, set := range db.ambiguous {
		for owner := range set {
			trie.insert(string(owner.Base().Token))
		}
	}
	return token.Token(trie.shortestUnambiguousSuffix(full))
}
