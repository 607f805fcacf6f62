package meta

import (
	"errors"

	"github.com/langulus/rtti/token"
)

// Member describes one field of a MetaData, grounded on types/objc.go's
// Ivar shape (name, offset) generalized with the trait tag and deferred
// retrievers needed to resolve cyclic type graphs.
type Member struct {
	Name string
	// TypeRetriever resolves this member's *MetaData, deferred so a struct
	// can declare a member of its own (still-being-built) type.
	TypeRetriever *Retriever
	// TraitRetriever optionally resolves the *MetaTrait this member is
	// tagged with (nil if the member carries no trait tag).
	TraitRetriever *Retriever
	Offset         uintptr
	Count          uint // >1 only for fixed-size arrays
}

// Type resolves the member's data type descriptor.
func (m Member) Type() (*MetaData, error) {
	v, err := m.TypeRetriever.Resolve()
	if err != nil {
		return nil, err
	}
	d, ok := v.(*MetaData)
	if !ok {
		return nil, errors.New("meta: member type_retriever did not resolve to a MetaData")
	}
	return d, nil
}

// Trait resolves the member's trait tag, if any.
func (m Member) Trait() (*MetaTrait, error) {
	if m.TraitRetriever == nil {
		return nil, nil
	}
	v, err := m.TraitRetriever.Resolve()
	if err != nil {
		return nil, err
	}
	tr, ok := v.(*MetaTrait)
	if !ok {
		return nil, errors.New("meta: member trait_retriever did not resolve to a MetaTrait")
	}
	return tr, nil
}

// Signature is the ordered list of argument types an Ability overload
// accepts.
type Signature []*MetaData

// Equal reports structural equality of two signatures.
func (s Signature) Equal(o Signature) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// key renders a signature to a comparable map key.
func (s Signature) key() string {
	b := make([]byte, 0, len(s)*8)
	for _, d := range s {
		if d == nil {
			b = append(b, 0)
			continue
		}
		b = append(b, []byte(d.Token)...)
		b = append(b, ';')
	}
	return string(b)
}

// AbilityFunc is an erased dispatch target: receiver address, verb payload
// address, argument addresses.
type AbilityFunc func(receiver, verb, args []byte)

// Ability is one dynamically-dispatched operation a MetaData implements,
// keyed by its verb identity with separate mutable/constant overload sets
// per argument signature.
type Ability struct {
	Verb     *MetaVerb
	mutable  map[string]AbilityFunc
	constant map[string]AbilityFunc
	sigs     map[string]Signature
}

// NewAbility constructs an empty Ability for the given verb.
func NewAbility(verb *MetaVerb) *Ability {
	return &Ability{
		Verb:     verb,
		mutable:  make(map[string]AbilityFunc),
		constant: make(map[string]AbilityFunc),
		sigs:     make(map[string]Signature),
	}
}

// BindMutable registers fn as the mutable-context overload for sig.
func (a *Ability) BindMutable(sig Signature, fn AbilityFunc) {
	k := sig.key()
	a.mutable[k] = fn
	a.sigs[k] = sig
}

// BindConstant registers fn as the constant-context overload for sig.
func (a *Ability) BindConstant(sig Signature, fn AbilityFunc) {
	k := sig.key()
	a.constant[k] = fn
	a.sigs[k] = sig
}

// Mutable looks up the mutable-context overload for sig.
func (a *Ability) Mutable(sig Signature) (AbilityFunc, bool) {
	fn, ok := a.mutable[sig.key()]
	return fn, ok
}

// Constant looks up the constant-context overload for sig.
func (a *Ability) Constant(sig Signature) (AbilityFunc, bool) {
	fn, ok := a.constant[sig.key()]
	return fn, ok
}

// Signatures lists every argument signature this ability has at least one
// overload for, in no particular order — insertion order into an ability's
// overload set is not observable.
func (a *Ability) Signatures() []Signature {
	out := make([]Signature, 0, len(a.sigs))
	for _, s := range a.sigs {
		out = append(out, s)
	}
	return out
}

// Base describes one parent type embedded inside a derived MetaData at a
// known offset. Grounded on types/objc.go's
// SuperclassVMAddr chain, generalized to carry offset/count/imposed/
// binary-compatibility the way the source's multiple-inheritance support
// requires.
type Base struct {
	Type             *MetaData
	Offset           uintptr
	Count            uint // how many copies of Type fit in the derived layout
	BinaryCompatible bool // Type completely fills the derived layout
	Imposed          bool // declared for routing only; excluded from distance/dispatch
}

// Converter describes a reflected conversion from the owning MetaData to
// another type.
type Converter struct {
	To          *MetaData
	Construct   func(dst, src []byte) error
}

// MetaData is the descriptor for an ordinary reflected data type — the
// workhorse meta-kind.
type MetaData struct {
	Meta

	Members      []Member
	abilities    map[*MetaVerb]*Ability
	Bases        []Base
	converters   map[*MetaData]*Converter
	NamedValues  []*MetaConst

	// Origin is the fully decayed type (pointers stripped, cv stripped).
	// Nil for incomplete types reachable only through a pointer layer.
	Origin *MetaData
	// Deptr is Type with exactly one pointer layer removed; for a
	// single-pointer type this equals Origin (cv preserved).
	Deptr *MetaData

	Concrete *MetaData // used when instantiating an abstract type
	Producer *MetaData // a type that must exist as creation context

	IsSparse       bool // pointer
	IsConstant     bool
	IsPOD          bool
	IsNullifiable  bool
	IsAbstract     bool
	IsDeep         bool
	IsUninsertable bool
	IsUnallocatable bool

	Size           uintptr
	Alignment      uintptr
	AllocationPage uintptr
	// AllocationTable[msb] is the number of whole elements fitting in a
	// 2^msb-byte block, MSB-indexed.
	AllocationTable [64]uintptr

	FileExtensions token.Token // comma-separated
	Suffix         token.Token
	PoolTactic     PoolTactic

	VTable VTable
}

// VTable is the set of erased, nullable operations a MetaData carries for
// its type's construction, destruction, comparison and dispatch. Every
// non-nil slot is a non-template indirection baked for one concrete T by
// synth.Of; see synth/vtable.go.
type VTable struct {
	DefaultCtor    func(dst []byte)
	DescriptorCtor func(dst []byte, blueprint any) error

	ReferCtor, CopyCtor, MoveCtor, CloneCtor, DisownCtor, AbandonCtor func(src, dst []byte)
	ReferAssign, CopyAssign, MoveAssign, CloneAssign, DisownAssign, AbandonAssign func(src, dst []byte)

	Destructor func(ptr []byte)

	Comparer func(a, b []byte) bool
	Resolver func(ptr []byte) *MetaData
	Hasher   func(ptr []byte) uint64

	DispatchMutable  func(ptr []byte, verb any) error
	DispatchConstant func(ptr []byte, verb any) error
}

// NewMetaData constructs a MetaData with its common Meta fields populated
// and its internal maps initialized.
func NewMetaData(tok token.Token) *MetaData {
	return &MetaData{
		Meta:       NewMeta(KindData, tok),
		abilities:  make(map[*MetaVerb]*Ability),
		converters: make(map[*MetaData]*Converter),
	}
}

// Base satisfies the Any interface.
func (d *MetaData) Base() *Meta { return &d.Meta }

// Abilities returns the verb→Ability map. Insertion order is not
// observable, so this is a map, not a slice.
func (d *MetaData) Abilities() map[*MetaVerb]*Ability { return d.abilities }

// Ability looks up (and lazily creates, for the writer side during
// synthesis) the Ability entry for verb.
func (d *MetaData) Ability(verb *MetaVerb) *Ability {
	if a, ok := d.abilities[verb]; ok {
		return a
	}
	a := NewAbility(verb)
	d.abilities[verb] = a
	return a
}

// IsAbleTo reports whether d has any overload of verb at all.
func (d *MetaData) IsAbleTo(verb *MetaVerb) bool {
	a, ok := d.abilities[verb]
	return ok && (len(a.mutable) > 0 || len(a.constant) > 0)
}

// Converters exposes the destination→Converter map.
func (d *MetaData) Converters() map[*MetaData]*Converter { return d.converters }

// Converter looks up the reflected conversion to dst, if any.
func (d *MetaData) Converter(dst *MetaData) (*Converter, bool) {
	c, ok := d.converters[dst]
	return c, ok
}

// AddConverter registers (or overwrites) a conversion to dst.
func (d *MetaData) AddConverter(c *Converter) {
	d.converters[c.To] = c
}

// RequestSize returns the number of whole elements of d that fit in the
// largest power-of-two block not exceeding bytes, read from the allocation
// table entry at floor(log2(bytes)); when that entry is empty it returns
// bytes / Size.
func (d *MetaData) RequestSize(bytes uintptr) uintptr {
	if d.Size == 0 {
		return 0
	}
	msb := msbIndex(bytes)
	if msb < len(d.AllocationTable) && d.AllocationTable[msb] > 0 {
		return d.AllocationTable[msb]
	}
	return bytes / d.Size
}

func msbIndex(n uintptr) int {
	idx := 0
	for n > 1 {
		n >>= 1
		idx++
	}
	return idx
}
