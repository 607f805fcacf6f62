package synth

import (
	"reflect"
	"unsafe"

	"github.com/langulus/rtti/meta"
)

// isPOD reports whether rt's values can be bulk byte-copied: no pointers,
// interfaces, slices, maps, channels, funcs or strings anywhere in the
// type, recursively through arrays and structs.
func isPOD(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isPOD(rt.Elem())
	case reflect.Struct:
		for i := 0; i < rt.NumField(); i++ {
			if !isPOD(rt.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// valueAt produces an addressable reflect.Value of type rt over b's
// backing array, or a detached zero value when b is empty (used by
// DefaultCtor, which has no meaningful source).
func valueAt(rt reflect.Type, b []byte) reflect.Value {
	if len(b) == 0 {
		return reflect.New(rt).Elem()
	}
	return reflect.NewAt(rt, unsafe.Pointer(&b[0])).Elem()
}

// buildVTable fills a MetaData's erased operation vtable by probing rt's
// reflection traits in priority order: abandon/disown/clone/refer/copy/move
// constructors and assigners, leaving a slot nil when no legal path exists.
// Since synthesis works from a reflect.Type rather than a concrete Go type
// parameter, each slot is realized as a reflect.Value Set/Zero rather than
// the generic intent.IntentNew/IntentAssign ladder intent.go implements —
// that ladder is exercised directly wherever a caller already holds a
// concrete T (see intent/dispatch_test.go); here it is mirrored by hand at the
// erased layer, the one place this repo cannot keep full static typing.
// Refer/Copy/Move/Disown always have a legal Go-native path (a plain Set,
// optionally followed by zeroing the source); Clone and Abandon do not —
// both require an explicit opt-in (ClonerAny, AbandonFlagger) and are left
// nil without one, e.g. a plain struct with only a destructor gets
// clone_ctor == nil and abandon_ctor == nil.
func buildVTable(rt reflect.Type, pod bool) meta.VTable {
	shallowCopy := func(src, dst []byte) {
		valueAt(rt, dst).Set(valueAt(rt, src))
	}
	move := func(src, dst []byte) {
		s := valueAt(rt, src)
		valueAt(rt, dst).Set(s)
		s.Set(reflect.Zero(rt))
	}

	_ = pod // POD types take the same Set-based path; no separate byte-copy fast path is needed for correctness.

	vt := meta.VTable{
		DefaultCtor: func(dst []byte) { valueAt(rt, dst).Set(reflect.Zero(rt)) },

		ReferCtor:  shallowCopy,
		CopyCtor:   shallowCopy,
		MoveCtor:   move,
		DisownCtor: shallowCopy,

		ReferAssign:  shallowCopy,
		CopyAssign:   shallowCopy,
		MoveAssign:   move,
		DisownAssign: shallowCopy,

		Destructor: func(ptr []byte) { valueAt(rt, ptr).Set(reflect.Zero(rt)) },

		Comparer: func(a, b []byte) bool {
			return reflect.DeepEqual(valueAt(rt, a).Interface(), valueAt(rt, b).Interface())
		},
	}

	sample := reflect.New(rt).Interface()

	if _, ok := sample.(ClonerAny); ok {
		clone := func(src, dst []byte) {
			sv := valueAt(rt, src)
			if cloner, ok := sv.Addr().Interface().(ClonerAny); ok {
				if cloned := reflect.ValueOf(cloner.RTTIClone()); cloned.IsValid() && cloned.Type() == rt {
					valueAt(rt, dst).Set(cloned)
					return
				}
			}
			shallowCopy(src, dst)
		}
		vt.CloneCtor = clone
		vt.CloneAssign = clone
	}

	if af, ok := sample.(AbandonFlagger); ok && af.RTTIAbandonable() {
		vt.AbandonCtor = move
		vt.AbandonAssign = move
	}

	return vt
}

// pointerWidth is the byte width of a sparse (pointer) descriptor: a
// sparse type's size is always exactly sizeof(void*).
var pointerWidth = unsafe.Sizeof(uintptr(0))

func copyPointerBytes(src, dst []byte) {
	copy(dst[:pointerWidth], src[:pointerWidth])
}

func movePointerBytes(src, dst []byte) {
	copyPointerBytes(src, dst)
	for i := range src[:pointerWidth] {
		src[i] = 0
	}
}

// sparseVTable is the vtable bound to a pointer-layer descriptor: default
// construction to nil, bulk copy/move of the pointer bits themselves
// (never the pointee), and identity comparison. Clone is deliberately not
// wired here — unlike every other intent, clone does not stop at the
// pointer; synthesizePointer overrides CloneCtor/CloneAssign with
// cloneThroughPointer once it has the pointee's own descriptor in hand.
func sparseVTable() meta.VTable {
	return meta.VTable{
		DefaultCtor: func(dst []byte) {
			for i := range dst[:pointerWidth] {
				dst[i] = 0
			}
		},
		ReferCtor: copyPointerBytes, CopyCtor: copyPointerBytes, DisownCtor: copyPointerBytes,
		MoveCtor: movePointerBytes, AbandonCtor: movePointerBytes,

		ReferAssign: copyPointerBytes, CopyAssign: copyPointerBytes, DisownAssign: copyPointerBytes,
		MoveAssign: movePointerBytes, AbandonAssign: movePointerBytes,

		Comparer: func(a, b []byte) bool {
			return *(*uintptr)(unsafe.Pointer(&a[0])) == *(*uintptr)(unsafe.Pointer(&b[0]))
		},
	}
}

// cloneThroughPointer builds the Clone constructor/assigner for a
// pointer-layer descriptor. Every other sparse intent copies the pointer
// bits verbatim and stops; clone is the one intent that recurses past the
// indirection instead of stopping at it, so it dereferences the source
// pointer, clones the pointee using elemDesc's own clone constructor
// (which, for a multiply-indirect pointer, is itself a cloneThroughPointer
// closure and so recurses down to the fully dense type), allocates fresh
// storage of elemType for the result, and stores the new pointer. Falls
// back to a plain pointer-bit copy when the pointee has no clone
// constructor of its own (e.g. no ClonerAny opt-in anywhere in the chain),
// and to a nil destination when the source pointer is nil.
func cloneThroughPointer(elemType reflect.Type, elemDesc *meta.MetaData) func(src, dst []byte) {
	return func(src, dst []byte) {
		if elemDesc == nil || elemDesc.VTable.CloneCtor == nil {
			copyPointerBytes(src, dst)
			return
		}
		srcPtr := *(*uintptr)(unsafe.Pointer(&src[0]))
		if srcPtr == 0 {
			for i := range dst[:pointerWidth] {
				dst[i] = 0
			}
			return
		}
		srcPointee := unsafe.Slice((*byte)(unsafe.Pointer(srcPtr)), elemDesc.Size)

		cloned := reflect.New(elemType)
		dstPointee := unsafe.Slice((*byte)(unsafe.Pointer(cloned.Pointer())), elemDesc.Size)
		elemDesc.VTable.CloneCtor(srcPointee, dstPointee)

		*(*uintptr)(unsafe.Pointer(&dst[0])) = uintptr(cloned.Pointer())
	}
}
