package registry

import (
	"github.com/langulus/rtti/meta"
	"github.com/langulus/rtti/token"
)

// UnloadLibrary removes, unconditionally and regardless of reference count,
// every descriptor whose LibraryName equals boundary, across all four maps
// and the operator/unique-verb/ambiguous indices: it walks every map and
// removes every descriptor whose library_name matches. The whole sweep
// runs under a single write lock so a concurrent reader never observes a
// boundary only half torn down.
//
// Grounded on codesign.go's handling of a Mach-O's embedded code-directory:
// there, every blob belonging to one signing identity is validated and torn
// down as a unit; here, every descriptor belonging to one Boundary is
// removed as a unit.
func (db *Database) UnloadLibrary(boundary string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for key, d := range db.data {
		if string(d.LibraryName) == boundary {
			delete(db.data, key)
			db.unindexAmbiguous(d.Token, d)
		}
	}
	for key, t := range db.trait {
		if string(t.LibraryName) == boundary {
			delete(db.trait, key)
			db.unindexAmbiguous(t.Token, t)
		}
	}
	for key, c := range db.constant {
		if string(c.LibraryName) == boundary {
			delete(db.constant, key)
			db.unindexAmbiguous(c.Token, c)
		}
	}

	removed := make(map[*meta.MetaVerb]bool)
	for key, v := range db.verb {
		if string(v.LibraryName) == boundary {
			delete(db.verb, key)
			removed[v] = true
		}
	}
	for v := range removed {
		db.unindexAmbiguous(v.Token, v)
		db.unindexAmbiguous(v.TokenReverse, v)
		delete(db.uniqueVerbs, string(v.CppName))
		if !v.Operator.Empty() {
			delete(db.operator, string(token.IsolateOperator(v.Operator)))
		}
		if !v.OperatorReverse.Empty() {
			delete(db.operator, string(token.IsolateOperator(v.OperatorReverse)))
		}
	}
}
