// Package meta implements the descriptor data model: Meta, MetaData,
// MetaTrait, MetaVerb, MetaConst, and their component types (Member,
// Ability, Base, Converter).
//
// Grounded on blacktop/go-macho's types/objc.go ObjC class/ivar/method/
// protocol shapes (superclass → Base, ivars → Member, methods → Ability,
// protocols → additional Base) and pkg/swift's field/generic descriptors
// (named values, generic requirements → Converter).
package meta

import (
	"sync/atomic"

	"github.com/langulus/rtti/hash"
	"github.com/langulus/rtti/token"
)

// Kind tags which of the four descriptor families a Meta belongs to. Go has
// no language-level polymorphism cheap enough for four drastically
// different field sets sharing one base, so dynamic dispatch is emulated
// with tagged variants (Kind) plus per-kind field sets: each kind gets its
// own concrete struct embedding Meta, and Kind lets callers recover which
// one they're holding from an interface value.
type Kind int

const (
	KindData Kind = iota
	KindTrait
	KindVerb
	KindConstant
)

func (k Kind) String() string {
	switch k {
	case KindData:
		return "Data"
	case KindTrait:
		return "Trait"
	case KindVerb:
		return "Verb"
	case KindConstant:
		return "Constant"
	default:
		return "Unknown"
	}
}

// PoolTactic selects the allocation strategy a MetaData prefers.
type PoolTactic int

const (
	PoolDefault PoolTactic = iota
	PoolSize
	PoolType
)

func (p PoolTactic) String() string {
	switch p {
	case PoolSize:
		return "Size"
	case PoolType:
		return "Type"
	default:
		return "Default"
	}
}

// Any is implemented by every concrete descriptor kind (*MetaData,
// *MetaTrait, *MetaVerb, *MetaConst), giving registry/cast code a common
// handle without needing generics at every call site.
type Any interface {
	hash.Hashable
	Base() *Meta
}

// Meta holds the fields common to every descriptor kind, immutable after
// registration except References.
type Meta struct {
	kind        Kind
	Token       token.Token
	Info        token.Token
	CppName     token.Token
	LibraryName token.Token

	hashValue token.Token // the exact bytes that were hashed, kept for diagnostics
	hash      hash.Hash

	VersionMajor int
	VersionMinor int

	// references counts independent registrations of this descriptor not
	// yet matched by an unregistration. Mutated under the registry's lock
	// (see registry/register.go); atomic so a concurrent reader that holds
	// only a borrowed *Meta never races with it.
	references int64
}

// NewMeta constructs the common fields for a descriptor of the given kind,
// deriving its hash from tok via the token/hash packages.
func NewMeta(kind Kind, tok token.Token) Meta {
	return Meta{
		kind:         kind,
		Token:        tok,
		hashValue:    tok,
		hash:         hash.HashString(string(tok)),
		VersionMajor: 1,
		VersionMinor: 0,
		references:   1,
	}
}

// Kind reports which descriptor family this Meta belongs to.
func (m *Meta) Kind() Kind { return m.kind }

// Hash implements hash.Hashable: HashOf(someDMeta) uses this intrinsic hash
// rather than the pointer bits.
func (m *Meta) Hash() hash.Hash { return m.hash }

// References reports the current registration count.
func (m *Meta) References() int64 { return atomic.LoadInt64(&m.references) }

// retain increments the registration count; called when a second
// registration of the same token is merged into this descriptor.
func (m *Meta) retain() int64 { return atomic.AddInt64(&m.references, 1) }

// release decrements the registration count and reports whether it reached
// zero (at which point the registry may destroy the descriptor).
func (m *Meta) release() bool {
	return atomic.AddInt64(&m.references, -1) == 0
}

// Retain is the exported form of retain, for callers outside the package
// (the registry) that merge a repeat registration into an existing
// descriptor.
func (m *Meta) Retain() int64 { return m.retain() }

// Release is the exported form of release.
func (m *Meta) Release() bool { return m.release() }

// Base satisfies Any for embedders that promote Meta's method set; concrete
// kinds override this to return &x.Meta directly (see data.go etc.), so
// this exists purely so *Meta itself also satisfies Any's Base() shape.
func (m *Meta) Base() *Meta { return m }
