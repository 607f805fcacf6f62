package registry

import (
	"fmt"

	"github.com/langulus/rtti/meta"
	"github.com/langulus/rtti/token"
)

// indexAmbiguous records d under the last unqualified segment of tok; every
// primary-map descriptor must also appear in this ambiguous map.
func (db *Database) indexAmbiguous(tok token.Token, d meta.Any) {
	last := token.LastName(tok)
	set, ok := db.ambiguous[last]
	if !ok {
		set = make(map[meta.Any]bool)
		db.ambiguous[last] = set
	}
	set[d] = true
}

// unindexAmbiguous removes d from the last-segment bucket of tok, deleting
// the bucket entirely once empty so GetAmbiguousMeta never reports a
// dangling empty set.
func (db *Database) unindexAmbiguous(tok token.Token, d meta.Any) {
	last := token.LastName(tok)
	set, ok := db.ambiguous[last]
	if !ok {
		return
	}
	delete(set, d)
	if len(set) == 0 {
		delete(db.ambiguous, last)
	}
}

// RegisterData registers d under tok, merging with an existing compatible
// registration or failing on a structural conflict: two independent
// registrations of the same canonical token merge by incrementing
// references and must agree on all structural fields.
func (db *Database) RegisterData(tok token.Token, d *meta.MetaData) (*meta.MetaData, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	key := string(tok.Lower())
	if existing, ok := db.data[key]; ok {
		if !existing.CompatibleWith(d) {
			return nil, fmt.Errorf("%w: %s", ErrRegistrationConflict, tok)
		}
		existing.Retain()
		return existing, nil
	}

	d.Token = tok
	d.LibraryName = token.Token(db.boundary)
	if db.boundary != MainBoundary {
		d.PoolTactic = meta.PoolType
	}
	db.data[key] = d
	db.indexAmbiguous(tok, d)
	return d, nil
}

// RegisterTrait registers t under tok with the same merge-or-conflict rule
// as RegisterData.
func (db *Database) RegisterTrait(tok token.Token, t *meta.MetaTrait) (*meta.MetaTrait, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	key := string(tok.Lower())
	if existing, ok := db.trait[key]; ok {
		if existing.DataType != t.DataType {
			return nil, fmt.Errorf("%w: %s", ErrRegistrationConflict, tok)
		}
		existing.Retain()
		return existing, nil
	}

	t.Token = tok
	t.LibraryName = token.Token(db.boundary)
	db.trait[key] = t
	db.indexAmbiguous(tok, t)
	return t, nil
}

// RegisterConstant registers c under tok with the same merge-or-conflict
// rule as RegisterData.
func (db *Database) RegisterConstant(tok token.Token, c *meta.MetaConst) (*meta.MetaConst, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	key := string(tok.Lower())
	if existing, ok := db.constant[key]; ok {
		if existing.ValueType != c.ValueType {
			return nil, fmt.Errorf("%w: %s", ErrRegistrationConflict, tok)
		}
		existing.Retain()
		return existing, nil
	}

	c.Token = tok
	c.LibraryName = token.Token(db.boundary)
	db.constant[key] = c
	db.indexAmbiguous(tok, c)
	return c, nil
}

// RegisterVerb registers v under five tokens at once: cppName, tok (positive),
// tokReverse (negative), op (positive operator), opReverse (negative
// operator). Either operator may be empty. Both tok and tokReverse resolve
// to v from db.verb; both non-empty operators resolve to v from
// db.operator; both tokens are indexed into the ambiguous map; cppName
// indexes v into db.uniqueVerbs so a second registration under the same
// cpp_name merges instead of conflicting.
func (db *Database) RegisterVerb(cppName string, tok, tokReverse, op, opReverse token.Token, v *meta.MetaVerb) (*meta.MetaVerb, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if existing, ok := db.uniqueVerbs[cppName]; ok {
		if existing.TokenReverse != tokReverse {
			return nil, fmt.Errorf("%w: verb %s", ErrRegistrationConflict, cppName)
		}
		existing.Retain()
		return existing, nil
	}

	v.Token = tok
	v.TokenReverse = tokReverse
	v.Operator = op
	v.OperatorReverse = opReverse
	v.CppName = token.Token(cppName)
	v.LibraryName = token.Token(db.boundary)

	db.uniqueVerbs[cppName] = v
	db.verb[string(tok.Lower())] = v
	db.verb[string(tokReverse.Lower())] = v
	db.indexAmbiguous(tok, v)
	db.indexAmbiguous(tokReverse, v)

	if !op.Empty() {
		db.operator[string(token.IsolateOperator(op))] = v
	}
	if !opReverse.Empty() {
		db.operator[string(token.IsolateOperator(opReverse))] = v
	}
	return v, nil
}

// Unregister decrements tok's reference count and, at zero, removes the
// descriptor from every index it was inserted into. kind selects which of
// the four maps to consult.
func (db *Database) Unregister(kind meta.Kind, tok token.Token) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	key := string(tok.Lower())
	switch kind {
	case meta.KindData:
		d, ok := db.data[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownToken, tok)
		}
		if d.Release() {
			delete(db.data, key)
			db.unindexAmbiguous(d.Token, d)
		}
	case meta.KindTrait:
		t, ok := db.trait[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownToken, tok)
		}
		if t.Release() {
			delete(db.trait, key)
			db.unindexAmbiguous(t.Token, t)
		}
	case meta.KindConstant:
		c, ok := db.constant[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownToken, tok)
		}
		if c.Release() {
			delete(db.constant, key)
			db.unindexAmbiguous(c.Token, c)
		}
	case meta.KindVerb:
		v, ok := db.verb[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownToken, tok)
		}
		if v.Release() {
			delete(db.verb, string(v.Token.Lower()))
			delete(db.verb, string(v.TokenReverse.Lower()))
			delete(db.uniqueVerbs, string(v.CppName))
			if !v.Operator.Empty() {
				delete(db.operator, string(token.IsolateOperator(v.Operator)))
			}
			if !v.OperatorReverse.Empty() {
				delete(db.operator, string(token.IsolateOperator(v.OperatorReverse)))
			}
			db.unindexAmbiguous(v.Token, v)
			db.unindexAmbiguous(v.TokenReverse, v)
		}
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrAssumptionFailure, kind)
	}
	return nil
}
