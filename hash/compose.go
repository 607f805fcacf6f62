package hash

import "reflect"

// Hashable is implemented by anything carrying its own intrinsic identity
// hash — meta descriptors, in particular. Multi-argument hashing special-
// cases such values: pointer hashing hashes the pointer bits except for
// meta descriptors, which hash via their intrinsic hash instead.
type Hashable interface {
	Hash() Hash
}

// HashOf composes the hashes of several inputs by hashing the array of
// their component hashes. Each input is reduced to a component Hash via
// componentHash before composition.
func HashOf(items ...any) Hash {
	return HashOfWidth(DefaultWidth, items...)
}

// HashOfWidth is HashOf with an explicit width for both the component
// hashes and the final composition.
func HashOfWidth(w Width, items ...any) Hash {
	if len(items) == 0 {
		return HashBytesWidth(nil, w)
	}
	buf := make([]byte, 0, len(items)*int(w/8))
	for _, item := range items {
		buf = append(buf, componentHash(item, w).rawBytes()...)
	}
	return HashBytesWidth(buf, w)
}

// componentHash reduces a single HashOf argument to a Hash:
//   - a Hashable (meta descriptors) hashes via its intrinsic Hash().
//   - a Hash is used as-is, at its own width.
//   - a string/Token-like value (any type whose kind is string) hashes its
//     bytes.
//   - any other pointer hashes the pointer bits, not the pointee — two
//     distinct instances of equal value are intentionally distinguished,
//     mirroring the C++ source hashing raw addresses.
//   - anything else falls back to hashing its default string form.
func componentHash(item any, w Width) Hash {
	switch v := item.(type) {
	case Hashable:
		return v.Hash()
	case Hash:
		return v
	case string:
		return HashBytesWidth([]byte(v), w)
	case []byte:
		return HashBytesWidth(v, w)
	case nil:
		return HashBytesWidth(nil, w)
	}

	rv := reflect.ValueOf(item)
	if rv.Kind() == reflect.String {
		return HashBytesWidth([]byte(rv.String()), w)
	}
	if rv.Kind() == reflect.Ptr || rv.Kind() == reflect.UnsafePointer {
		var b [8]byte
		ptr := rv.Pointer()
		for i := range b {
			b[i] = byte(ptr >> (8 * i))
		}
		return HashBytesWidth(b[:], w)
	}

	return HashBytesWidth([]byte(reflectString(rv)), w)
}

func reflectString(rv reflect.Value) string {
	if !rv.IsValid() {
		return "<invalid>"
	}
	return rv.Type().String() + ":" + formatValue(rv)
}

func formatValue(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	default:
		return rv.Type().Name()
	}
}
