package synth

import (
	"fmt"
	"reflect"

	"github.com/blacktop/go-dwarf"

	"github.com/langulus/rtti/meta"
	"github.com/langulus/rtti/registry"
	"github.com/langulus/rtti/token"
)

// DefaultAllocationPage is the page size (in bytes) a MetaData's
// allocation_page defaults to when neither the type nor the caller opts
// into a larger value — a package-level configuration var, matching
// blacktop/go-macho's own style of compile-time constants overridable
// before first use rather than a config file.
var DefaultAllocationPage uintptr = 16

// DWARFData, when non-nil, is consulted during synthesis of struct types to
// enrich reflect-derived Members with DWARF-recovered offsets/names. Unset
// by default; a caller
// that has opened the running binary's debug info (typically via debug/elf
// or debug/macho) assigns it once before synthesizing types from a package
// compiled with debug symbols. Best-effort: reflect's own offsets for
// exported fields are never overwritten, so a failed or no-op enrichment
// leaves the descriptor exactly as reflect already produced it.
var DWARFData *dwarf.Data

// Of synthesizes, or fetches the already-published descriptor for, T. T
// must be a complete, non-reference type; Go has no reference types to
// strip, so "reference-ness" is always already stripped by construction.
func Of[T any]() *meta.MetaData {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	return ofType(rt)
}

// OfType is the reflect.Type-driven entry point Of[T] delegates to after
// peeling T down to a reflect.Type; exported so rtti can synthesize
// descriptors for types it only holds as a reflect.Type (e.g. a trait
// marker's declared DataType).
func OfType(rt reflect.Type) *meta.MetaData { return ofType(rt) }

// Token renders rt's canonical registry token without synthesizing a
// descriptor, for callers (rtti's MetaTraitOf/MetaVerbOf) that need T's
// identity but store it in a different map than MetaData's. Honors the
// Named opt-in exactly like declaredToken, so a trait or verb marker can
// rename itself the same way a data type can.
func Token(rt reflect.Type) token.Token { return declaredToken(rt) }

// ofType is the reflect.Type-driven recursive core Of delegates to; bases,
// members and pointer layers all recurse through here rather than through
// Of, since reflect.Type is all synthesis has once it has peeled past the
// caller's original type parameter.
func ofType(rt reflect.Type) *meta.MetaData {
	if rt.Kind() == reflect.Ptr {
		elemDesc := ofType(rt.Elem())
		tok := token.Token(string(elemDesc.Token) + "*")
		if existing, err := registry.Global().GetMetaData(tok); err == nil {
			return existing
		}
		return synthesizePointer(rt, tok, elemDesc)
	}
	tok := declaredToken(rt)
	if existing, err := registry.Global().GetMetaData(tok); err == nil {
		return existing
	}
	return synthesizeValue(rt, tok)
}

// declaredToken resolves rt's registry token, honoring the Named opt-in (a
// type may supply an explicit token instead of one derived from its
// reflect.Type) before falling back to canonicalName. This
// must run before registration, not after: RegisterData stamps its tok
// parameter onto d.Token unconditionally, so a rename applied only to the
// already-built MetaData (as applyReflectable used to do) would be
// silently discarded the moment it merged into the registry.
func declaredToken(rt reflect.Type) token.Token {
	sample := reflect.New(rt).Interface()
	if n, ok := sample.(Named); ok {
		return token.Derive(n.RTTIName())
	}
	return token.Derive(canonicalName(rt))
}

// canonicalName renders rt the way token.Derive expects to receive a
// pretty-printed type spelling: package-qualified for named types (the Go
// analogue of a C++ namespace-qualified name), with one trailing "*" per
// pointer layer, outer-in — decorators read outer-in, the same direction
// the scanner in token/scanner.go consumes them.
func canonicalName(rt reflect.Type) string {
	if rt.Kind() == reflect.Ptr {
		return canonicalName(rt.Elem()) + "*"
	}
	if rt.PkgPath() == "" {
		return rt.String()
	}
	return rt.PkgPath() + "::" + rt.Name()
}

func originOf(d *meta.MetaData) *meta.MetaData {
	if d.Origin != nil {
		return d.Origin
	}
	return d
}

func synthesizePointer(rt reflect.Type, tok token.Token, elemDesc *meta.MetaData) *meta.MetaData {
	d := meta.NewMetaData(tok)
	d.Origin = originOf(elemDesc)
	d.Deptr = elemDesc
	d.IsSparse = true
	d.Size = pointerWidth
	d.Alignment = pointerWidth
	d.AllocationPage = pointerWidth
	d.IsNullifiable = true
	d.VTable = sparseVTable()
	clone := cloneThroughPointer(rt.Elem(), elemDesc)
	d.VTable.CloneCtor = clone
	d.VTable.CloneAssign = clone
	fillAllocationTable(d)

	registered, _ := registry.Global().RegisterData(tok, d)
	return registered
}

func synthesizeValue(rt reflect.Type, tok token.Token) *meta.MetaData {
	d := meta.NewMetaData(tok)
	d.Size = rt.Size()
	d.Alignment = uintptr(rt.Align())
	if d.Alignment == 0 {
		d.Alignment = 1
	}
	d.AllocationPage = roofPow2(max(d.Alignment, DefaultAllocationPage))

	d.IsPOD = isPOD(rt)
	d.IsNullifiable = d.IsPOD

	enumerateMembers(rt, d)
	enumerateBases(rt, d)
	attachNumberBases(rt, d)
	applyReflectable(rt, d)
	enumerateOpts(rt, d)
	enrichFromDWARFIfAvailable(rt, d)

	fillAllocationTable(d)

	d.VTable = buildVTable(rt, d.IsPOD)
	if d.IsAbstract {
		d.VTable.DefaultCtor = nil
	}

	if err := d.Validate(); err != nil {
		panic(fmt.Errorf("synth: %s violates a MetaData invariant: %w", tok, err))
	}

	registered, _ := registry.Global().RegisterData(tok, d)
	return registered
}

// enrichFromDWARFIfAvailable best-effort-enriches d's Members from DWARFData
// when one has been installed and rt is a struct; a failure or absence of a
// matching DWARF entry is not an error here, since reflect's own offsets
// already populated d.Members — DWARF only ever fills in what reflect could
// not see.
func enrichFromDWARFIfAvailable(rt reflect.Type, d *meta.MetaData) {
	if DWARFData == nil || rt.Kind() != reflect.Struct {
		return
	}
	_ = EnrichFromDWARF(DWARFData, rt.Name(), d)
}

// roofPow2 rounds n up to the next power of two (n itself, if already one).
func roofPow2(n uintptr) uintptr {
	if n == 0 {
		return 1
	}
	p := uintptr(1)
	for p < n {
		p <<= 1
	}
	return p
}

// fillAllocationTable populates allocation_table[msb] with the number of
// whole elements of d that fit in a 2^msb-byte block.
func fillAllocationTable(d *meta.MetaData) {
	if d.Size == 0 {
		return
	}
	for msb := range d.AllocationTable {
		block := uintptr(1) << uint(msb)
		if block < d.Alignment {
			continue
		}
		d.AllocationTable[msb] = block / d.Size
	}
}

// enumerateMembers walks rt's exported, non-embedded fields into d.Members
// in declaration order: offset, count (from array extent), and a deferred
// type retriever so a struct that
// (indirectly) contains its own type terminates instead of recursing
// forever during synthesis.
func enumerateMembers(rt reflect.Type, d *meta.MetaData) {
	if rt.Kind() != reflect.Struct {
		return
	}
	traits := memberTraitOverrides(rt)

	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.PkgPath != "" || f.Anonymous {
			continue
		}
		count := uint(1)
		ft := f.Type
		if ft.Kind() == reflect.Array {
			count = uint(ft.Len())
			ft = ft.Elem()
		}
		memberType := ft
		m := meta.Member{
			Name:          f.Name,
			Offset:        f.Offset,
			Count:         count,
			TypeRetriever: meta.NewRetriever(func() (meta.Any, error) { return ofType(memberType), nil }),
		}
		if trait, ok := traits[f.Name]; ok && trait != "" {
			traitTok := token.Token(trait)
			m.TraitRetriever = meta.NewRetriever(func() (meta.Any, error) {
				return registry.Global().GetMetaTrait(traitTok)
			})
		}
		d.Members = append(d.Members, m)
	}
}

func memberTraitOverrides(rt reflect.Type) map[string]string {
	out := map[string]string{}
	sample := reflect.New(rt).Interface()
	if mp, ok := sample.(MembersProvider); ok {
		for _, decl := range mp.RTTIMembers() {
			out[decl.Name] = decl.Trait
		}
	}
	return out
}

// enumerateBases records every embedded field as a non-imposed Base — Go's
// structural embedding is the natural analogue of C++ inheritance, the way
// types/objc.go treats a class's SuperclassVMAddr chain — plus any
// additional bases a type opts into via BasesProvider/ImposedBasesProvider
// for routing relationships with no storage footprint.
func enumerateBases(rt reflect.Type, d *meta.MetaData) {
	if rt.Kind() == reflect.Struct {
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.Anonymous {
				continue
			}
			bt := f.Type
			sparse := bt.Kind() == reflect.Ptr
			if sparse {
				bt = bt.Elem()
			}
			baseDesc := ofType(bt)
			d.Bases = append(d.Bases, meta.Base{
				Type:             baseDesc,
				Offset:           f.Offset,
				Count:            1,
				BinaryCompatible: !sparse && f.Offset == 0 && bt.Size() == rt.Size(),
			})
		}
	}

	sample := reflect.New(rt).Interface()
	if bp, ok := sample.(BasesProvider); ok {
		for _, b := range bp.RTTIBases() {
			d.Bases = append(d.Bases, meta.Base{Type: ofType(reflect.TypeOf(b))})
		}
	}
	if ip, ok := sample.(ImposedBasesProvider); ok {
		for _, b := range ip.RTTIImposedBases() {
			d.Bases = append(d.Bases, meta.Base{Type: ofType(reflect.TypeOf(b)), Imposed: true})
		}
	}
}

// applyReflectable overlays every opt-in flag/field interface a type may
// implement on top of the reflect-derived defaults.
func applyReflectable(rt reflect.Type, d *meta.MetaData) {
	sample := reflect.New(rt).Interface()

	// Named is resolved earlier, by declaredToken, before d's token is
	// interned in the registry — see ofType.
	if in, ok := sample.(Infoer); ok {
		d.Info = token.Token(in.RTTIInfo())
	}
	if fe, ok := sample.(FileExtensionser); ok {
		d.FileExtensions = token.Token(fe.RTTIFiles())
	}
	if v, ok := sample.(Versioned); ok {
		d.VersionMajor, d.VersionMinor = v.RTTIVersion()
	}
	if s, ok := sample.(Suffixed); ok {
		d.Suffix = token.Token(s.RTTISuffix())
	}
	if fl, ok := sample.(DeepFlagger); ok {
		d.IsDeep = fl.RTTIDeep()
	}
	if fl, ok := sample.(PODFlagger); ok {
		d.IsPOD = fl.RTTIPOD()
	}
	if fl, ok := sample.(NullifiableFlagger); ok {
		d.IsNullifiable = fl.RTTINullifiable()
	}
	if fl, ok := sample.(AbstractFlagger); ok {
		d.IsAbstract = fl.RTTIAbstract()
	}
	if fl, ok := sample.(UninsertableFlagger); ok {
		d.IsUninsertable = fl.RTTIUninsertable()
	}
	if fl, ok := sample.(UnallocatableFlagger); ok {
		d.IsUnallocatable = fl.RTTIUnallocatable()
	}
	if pt, ok := sample.(PoolTactician); ok {
		d.PoolTactic = pt.RTTIPoolTactic()
	}
	if cp, ok := sample.(ConcreteProvider); ok {
		d.Concrete = ofType(reflect.TypeOf(cp.RTTIConcrete()))
	}
	if pp, ok := sample.(ProducerProvider); ok {
		d.Producer = ofType(reflect.TypeOf(pp.RTTIProducer()))
	}
	if ap, ok := sample.(AllocationPager); ok {
		d.AllocationPage = ap.RTTIAllocationPage()
	}
}

// enumerateOpts wires a type's verbs, conversions and named values — three
// pieces of a descriptor that have no reflect.StructField equivalent and
// so must come entirely from opt-in interfaces.
func enumerateOpts(rt reflect.Type, d *meta.MetaData) {
	sample := reflect.New(rt).Interface()

	if vp, ok := sample.(VerbsProvider); ok {
		for _, vb := range vp.RTTIVerbs() {
			verb, err := registry.Global().GetMetaVerb(token.Token(vb.Verb))
			if err != nil {
				verb, _ = registry.Global().RegisterVerb(
					vb.Verb, token.Token(vb.Verb), token.Token(vb.Reverse),
					token.Token(vb.Operator), "", meta.NewMetaVerb(token.Token(vb.Verb), token.Token(vb.Reverse)))
			}
			ability := d.Ability(verb)
			if vb.Mutable != nil {
				ability.BindMutable(meta.Signature{}, vb.Mutable)
			}
			if vb.Constant != nil {
				ability.BindConstant(meta.Signature{}, vb.Constant)
			}
			verb.MarkAble(d)
		}
	}

	if cp, ok := sample.(ConversionsProvider); ok {
		for _, c := range cp.RTTIConversions() {
			target := ofType(reflect.TypeOf(c.To))
			d.AddConverter(&meta.Converter{To: target, Construct: c.Construct})
		}
	}

	if nv, ok := sample.(NamedValuesProvider); ok {
		for _, n := range nv.RTTINamedValues() {
			value := n.Value
			tok := token.DeriveEnumerator(string(d.Token), n.Name)
			c := meta.NewMetaConst(tok, d, func() any { return value })
			registered, _ := registry.Global().RegisterConstant(tok, c)
			d.NamedValues = append(d.NamedValues, registered)
		}
	}
}
