// Package rtti is the public query surface: MetaOf, MetaDataOf,
// MetaTraitOf, MetaVerbOf, plumbed over synth's reflection-driven
// synthesis and registry's process-global database. It is the one front
// door callers import — the same role file.go's exported *File methods
// play for every other accessor in blacktop/go-macho.
package rtti

import (
	"reflect"

	"github.com/langulus/rtti/meta"
	"github.com/langulus/rtti/synth"
)

// Reflectable re-exports synth's opt-in interface family under this
// package's public name, so a caller only needs to import rtti to see the
// full reflection opt-in surface.
type (
	Reflectable          = synth.Named
	Infoer               = synth.Infoer
	FileExtensionser     = synth.FileExtensionser
	Versioned            = synth.Versioned
	Suffixed             = synth.Suffixed
	DeepFlagger          = synth.DeepFlagger
	PODFlagger           = synth.PODFlagger
	NullifiableFlagger   = synth.NullifiableFlagger
	AbstractFlagger      = synth.AbstractFlagger
	UninsertableFlagger  = synth.UninsertableFlagger
	UnallocatableFlagger = synth.UnallocatableFlagger
	PoolTactician        = synth.PoolTactician
	ConcreteProvider     = synth.ConcreteProvider
	ProducerProvider     = synth.ProducerProvider
	AllocationPager      = synth.AllocationPager
	BasesProvider        = synth.BasesProvider
	ImposedBasesProvider = synth.ImposedBasesProvider
	VerbsProvider        = synth.VerbsProvider
	ConversionsProvider  = synth.ConversionsProvider
	MembersProvider      = synth.MembersProvider
	NamedValuesProvider  = synth.NamedValuesProvider
	VerbBinding          = synth.VerbBinding
	Conversion           = synth.Conversion
	NamedValue           = synth.NamedValue
	MemberDecl           = synth.MemberDecl
)

// InnerTyper lets a typed wrapper report the type it stands in for, so
// MetaOf on the wrapper resolves to the inner type's descriptor instead of
// the wrapper's own.
type InnerTyper interface{ RTTIInnerType() any }

// MetaDataOf synthesizes or fetches T's data descriptor, forcing the Data
// meta-kind regardless of any trait/verb opt-ins T might also carry.
func MetaDataOf[T any]() *meta.MetaData {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	if inner, ok := any(&zero).(InnerTyper); ok {
		return synth.OfType(reflect.TypeOf(inner.RTTIInnerType()))
	}
	return synth.OfType(rt)
}

// MetaOf returns T's data descriptor, exactly as MetaDataOf does. It does
// not inspect T's opt-ins and never returns a trait or verb descriptor;
// MetaTraitOf and MetaVerbOf are the entry points for those kinds.
func MetaOf[T any]() meta.Any {
	return MetaDataOf[T]()
}
