// Package synth implements building a *meta.MetaData from a Go type's
// reflection traits. Where the C++ source pulls bases/members/
// verbs/conversions out of compile-time reflection macros, synth pulls the
// same information from Go's reflect package plus a family of small,
// optional interfaces a type may implement to opt into richer metadata —
// the same "ask the value if it implements a narrow interface, use a
// reflect-derived default otherwise" shape blacktop/go-macho uses throughout
// objc.go (a class reports its own ivars/methods when present, falls back
// to "none" otherwise).
package synth

import "github.com/langulus/rtti/meta"

// MemberDecl is a caller-declared override for one struct field, used by
// MembersProvider when reflect's default (exported-fields-in-declaration-
// order) needs augmenting with a trait tag.
type MemberDecl struct {
	Name  string
	Trait string
	Count uint
}

// VerbBinding associates a verb token with the mutable/constant dispatch
// functions a type provides for it.
type VerbBinding struct {
	Verb     string
	Reverse  string
	Operator string
	Mutable  meta.AbilityFunc
	Constant meta.AbilityFunc
}

// Conversion declares a reflected conversion target and construction
// function, mirroring meta.Converter.
type Conversion struct {
	To        any // a value of the destination type, used only for its reflect.Type
	Construct func(dst, src []byte) error
}

// NamedValue declares one enumerator, mirroring meta.MetaConst.
type NamedValue struct {
	Name  string
	Value any
}

// Named lets a type supply an explicit token instead of one derived from
// its reflect.Type (e.g. to match a C++ mangled name it interoperates
// with).
type Named interface{ RTTIName() string }

// Infoer supplies free-text documentation, mapped onto Meta.info.
type Infoer interface{ RTTIInfo() string }

// FileExtensionser supplies MetaData.file_extensions.
type FileExtensionser interface{ RTTIFiles() string }

// Versioned supplies Meta.version_major/version_minor.
type Versioned interface{ RTTIVersion() (major, minor int) }

// Suffixed supplies MetaData.suffix.
type Suffixed interface{ RTTISuffix() string }

// DeepFlagger opts into MetaData.is_deep.
type DeepFlagger interface{ RTTIDeep() bool }

// PODFlagger overrides the reflect-derived is_pod determination.
type PODFlagger interface{ RTTIPOD() bool }

// NullifiableFlagger opts into MetaData.is_nullifiable.
type NullifiableFlagger interface{ RTTINullifiable() bool }

// AbstractFlagger opts into MetaData.is_abstract.
type AbstractFlagger interface{ RTTIAbstract() bool }

// UninsertableFlagger opts into MetaData.is_uninsertable.
type UninsertableFlagger interface{ RTTIUninsertable() bool }

// UnallocatableFlagger opts into MetaData.is_unallocatable.
type UnallocatableFlagger interface{ RTTIUnallocatable() bool }

// PoolTactician overrides the default pool tactic.
type PoolTactician interface{ RTTIPoolTactic() meta.PoolTactic }

// ConcreteProvider supplies MetaData.concrete: a value of the type that
// should be instantiated in T's place.
type ConcreteProvider interface{ RTTIConcrete() any }

// ProducerProvider supplies MetaData.producer: a value of the type
// required as creation context.
type ProducerProvider interface{ RTTIProducer() any }

// AllocationPager overrides the computed allocation page size.
type AllocationPager interface{ RTTIAllocationPage() uintptr }

// BasesProvider supplies additional MetaData.bases as a list of base values,
// each used only for its reflect.Type: these bases carry no offset or count
// (embedded fields are recorded as bases with their offsets separately).
// Imposed bases are listed separately via ImposedBasesProvider.
type BasesProvider interface{ RTTIBases() []any }

// ImposedBasesProvider supplies additional bases declared for routing only
// (Base.imposed) — e.g. a marker interface with no storage footprint.
type ImposedBasesProvider interface{ RTTIImposedBases() []any }

// VerbsProvider supplies the verbs T implements.
type VerbsProvider interface{ RTTIVerbs() []VerbBinding }

// ConversionsProvider supplies T's reflected conversions.
type ConversionsProvider interface{ RTTIConversions() []Conversion }

// MembersProvider attaches trait tags, matched by field name, to the
// reflect-derived member list. It does not add, remove or reorder members,
// and MemberDecl.Count is not read.
type MembersProvider interface{ RTTIMembers() []MemberDecl }

// NamedValuesProvider supplies T's named enumerators (meaningful only for
// types standing in for an enum).
type NamedValuesProvider interface{ RTTINamedValues() []NamedValue }

// InnerTyper supplies the decayed/element type a wrapper type stands in
// for, used when T itself does not come from reflect.Type peeling (e.g. a
// named handle type wrapping an opaque pointer).
type InnerTyper interface{ RTTIInnerType() any }

// ClonerAny opts a type into a user-defined deep copy. Its presence is what
// licenses VTable.CloneCtor/CloneAssign to be non-nil at all — a slot is
// left null when no legal path exists, so a type that does not implement
// ClonerAny gets a nil clone slot rather than one quietly aliasing a
// shallow copy. Declared non-generic (returning any rather than a type
// parameter) because synthesis only ever holds a reflect.Type past the
// point where a concrete T would let it express this generically.
type ClonerAny interface{ RTTIClone() any }

// AbandonFlagger opts a type into a reflected abandon constructor distinct
// from MoveCtor. Without this opt-in, AbandonCtor/AbandonAssign are left
// nil: Go's structural move (set then zero the source) is always
// available as MoveCtor, but abandon's weaker postcondition — the source
// need not survive its own destructor — is not something synthesis can
// assume merely because a type is movable, so it must be declared
// explicitly.
type AbandonFlagger interface{ RTTIAbandonable() bool }
