package rtti

import (
	"reflect"

	"github.com/langulus/rtti/meta"
	"github.com/langulus/rtti/registry"
	"github.com/langulus/rtti/synth"
)

// DataTyped lets a trait marker type narrow the value type it expects,
// mapped onto MetaTrait.data_type.
type DataTyped interface{ RTTIDataType() any }

// MetaTraitOf synthesizes or fetches the MetaTrait for marker type T. T is
// typically an empty struct used purely as a compile-time tag (the closest
// Go analogue of a C++ trait declared via a reflection macro with no
// storage of its own).
func MetaTraitOf[T any]() *meta.MetaTrait {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	tok := synth.Token(rt)

	if existing, err := registry.Global().GetMetaTrait(tok); err == nil {
		return existing
	}

	tr := meta.NewMetaTrait(tok)
	if dt, ok := any(&zero).(DataTyped); ok {
		tr.DataType = synth.OfType(reflect.TypeOf(dt.RTTIDataType()))
	}
	registered, _ := registry.Global().RegisterTrait(tok, tr)
	return registered
}
