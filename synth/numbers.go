package synth

import (
	"reflect"

	"github.com/langulus/rtti/meta"
)

// Number, Signed and Unsigned are marker base types standing in for the
// original source's CT::Number/CT::Signed/CT::Unsigned concepts (see
// _examples/original_source/source/Numbers.hpp). They carry no storage
// footprint; synthesizeValue attaches them as non-imposed bases to Go's
// built-in arithmetic kinds so cast.CastsTo[Number]/[Signed]/[Unsigned] can
// answer without requiring a user type to embed anything itself.
type (
	Number   struct{}
	Signed   struct{}
	Unsigned struct{}
)

var signedIntegerKinds = map[reflect.Kind]bool{
	reflect.Int: true, reflect.Int8: true, reflect.Int16: true,
	reflect.Int32: true, reflect.Int64: true,
}

var unsignedIntegerKinds = map[reflect.Kind]bool{
	reflect.Uint: true, reflect.Uint8: true, reflect.Uint16: true,
	reflect.Uint32: true, reflect.Uint64: true, reflect.Uintptr: true,
}

var floatKinds = map[reflect.Kind]bool{
	reflect.Float32: true, reflect.Float64: true,
}

// attachNumberBases imposes Number (and, for integers, Signed or Unsigned)
// as a non-imposed base of rt's descriptor when rt is one of Go's built-in
// arithmetic kinds — non-imposed so cast.GetDistanceTo/CastsTo's transitive
// base walk (which skips Imposed bases) actually reaches them. Skips
// Number/Signed/Unsigned themselves to avoid a marker acquiring
// a base of itself during their own synthesis.
func attachNumberBases(rt reflect.Type, d *meta.MetaData) {
	switch rt {
	case reflect.TypeOf(Number{}), reflect.TypeOf(Signed{}), reflect.TypeOf(Unsigned{}):
		return
	}

	k := rt.Kind()
	isSigned := signedIntegerKinds[k]
	isUnsigned := unsignedIntegerKinds[k]
	if !isSigned && !isUnsigned && !floatKinds[k] {
		return
	}

	d.Bases = append(d.Bases, meta.Base{Type: Of[Number](), Count: 1})
	switch {
	case isSigned:
		d.Bases = append(d.Bases, meta.Base{Type: Of[Signed](), Count: 1})
	case isUnsigned:
		d.Bases = append(d.Bases, meta.Base{Type: Of[Unsigned](), Count: 1})
	}
}
