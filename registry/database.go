// Package registry implements the process-global, library-partitioned
// descriptor database (Interface/Database), its registration and lookup
// surface, and the Boundary protocol governing per-library unload.
//
// Grounded on blacktop/go-macho's file.go, which centralizes every Mach-O
// accessor (symbols, load commands, sections) behind one *File with an
// internal set of maps built once at Open() time; Database plays the same
// role for reflected descriptors, built incrementally as types register
// instead of parsed once from a binary.
package registry

import (
	"os"
	"sync"

	"github.com/langulus/rtti/meta"
)

// MainBoundary is the reserved Boundary value carried for the main
// executable, as opposed to a dynamically loaded module.
const MainBoundary = "MAIN"

// Database is the process-global registry: four by-lowercase-token maps
// (data, trait, verb, constant), an operator index, a unique-verb index
// keyed by cpp_name, and an ambiguous-name index keyed by last unqualified
// segment. All mutation is serialized by mu; lookups take the read lock —
// concurrent readers require no locking once registration has quiesced.
type Database struct {
	mu sync.RWMutex

	data     map[string]*meta.MetaData
	trait    map[string]*meta.MetaTrait
	verb     map[string]*meta.MetaVerb
	constant map[string]*meta.MetaConst

	operator    map[string]*meta.MetaVerb
	uniqueVerbs map[string]*meta.MetaVerb

	// ambiguous indexes every data/trait/verb/constant descriptor by the
	// last unqualified segment of every token it was registered under.
	ambiguous map[string]map[meta.Any]bool

	// boundary is the Boundary value stamped onto every registration made
	// through the Register* methods (see register.go); SetBoundary changes it
	// for subsequent registrations.
	boundary string
}

// New constructs an empty Database whose default Boundary is read from
// RTTI_BOUNDARY, defaulting to MainBoundary. Each executable or shared
// library defines a constant Boundary string, realized here as a
// process-start environment read the way a Mach-O's embedded code-signing
// identity is fixed at link time rather than computed per call.
func New() *Database {
	boundary := os.Getenv("RTTI_BOUNDARY")
	if boundary == "" {
		boundary = MainBoundary
	}
	return &Database{
		data:        make(map[string]*meta.MetaData),
		trait:       make(map[string]*meta.MetaTrait),
		verb:        make(map[string]*meta.MetaVerb),
		constant:    make(map[string]*meta.MetaConst),
		operator:    make(map[string]*meta.MetaVerb),
		uniqueVerbs: make(map[string]*meta.MetaVerb),
		ambiguous:   make(map[string]map[meta.Any]bool),
		boundary:    boundary,
	}
}

// global is the process-wide Database, constructed exactly once at package
// init and torn down only at process exit — the Nifty Counter idiom,
// collapsed to a package-level var since Go already guarantees single,
// race-free package initialization regardless of how many packages import
// registry.
var global = New()

// Global returns the process-wide Database.
func Global() *Database { return global }

// Boundary reports the Boundary value this Database stamps onto
// registrations made through its default Register* methods.
func (db *Database) Boundary() string { return db.boundary }

// SetBoundary overrides the Boundary value used by subsequent default
// registrations, e.g. when a plugin host loads a shared library under a
// distinct boundary name before calling its init entrypoint.
func (db *Database) SetBoundary(b string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.boundary = b
}
