package intent

import (
	"errors"
	"unsafe"
)

// ErrUnsupportedIntent is returned by IntentNew/IntentAssign when no legal
// construction or assignment path exists for the requested intent — the
// runtime form of an unsupported-intent error, used on the type-erased
// path where failure cannot be caught at compile time.
var ErrUnsupportedIntent = errors.New("intent: no legal construction path for this (intent, type) pair")

// Ctor is an erased constructor: construct a value at dst from the source
// at src. meta.VTable's construction slots take the same two addresses as
// byte slices, source first.
type Ctor func(dst, src unsafe.Pointer)

// Assigner is an erased assignment: assign the value at src onto the
// already-live value at dst.
type Assigner func(dst, src unsafe.Pointer)

// Ops is the subset of a type's erased vtable IntentNew/IntentAssign need:
// one optional Ctor/Assigner per intent, plus the POD/trivial-copyability
// facts that license a bulk byte copy. meta.MetaData carries the same set
// of constructor/assigner slots in its VTable (see meta/data.go); Ops is a
// separate, smaller type so that intent has no import-time dependency on
// meta.
type Ops struct {
	ReferCtor, CopyCtor, MoveCtor, AbandonCtor, DisownCtor, CloneCtor Ctor
	ReferAssign, CopyAssign, MoveAssign, AbandonAssign, DisownAssign, CloneAssign Assigner

	IsPOD               bool
	IsTriviallyCopyable bool
	Size                uintptr
}

func (o Ops) ctorFor(k Kind) Ctor {
	switch k {
	case KindRefer:
		return o.ReferCtor
	case KindCopy:
		return o.CopyCtor
	case KindMove:
		return o.MoveCtor
	case KindAbandon:
		return o.AbandonCtor
	case KindDisown:
		return o.DisownCtor
	case KindClone:
		return o.CloneCtor
	default:
		return nil
	}
}

func (o Ops) assignerFor(k Kind) Assigner {
	switch k {
	case KindRefer:
		return o.ReferAssign
	case KindCopy:
		return o.CopyAssign
	case KindMove:
		return o.MoveAssign
	case KindAbandon:
		return o.AbandonAssign
	case KindDisown:
		return o.DisownAssign
	case KindClone:
		return o.CloneAssign
	default:
		return nil
	}
}

// copyBytes performs the bulk byte copy licensed for POD types.
func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 || dst == nil || src == nil {
		return
	}
	d := unsafe.Slice((*byte)(dst), n)
	s := unsafe.Slice((*byte)(src), n)
	copy(d, s)
}

// IntentNew constructs *dst from the intent-wrapped source i, following the
// priority ladder:
//  1. the type's explicit constructor for the deduced intent.
//  2. for POD types, a byte copy/move (clone additionally requires
//     IsTriviallyCopyable).
//  3. for move/abandon, fall back to the move constructor.
//  4. for refer/copy/disown, fall back to the copy constructor.
//  5. otherwise, ErrUnsupportedIntent.
func IntentNew[T any](dst *T, i Intent[T], ops Ops) error {
	k := i.Kind()
	src := unsafe.Pointer(&i.value)
	dp := unsafe.Pointer(dst)

	if fn := ops.ctorFor(k); fn != nil {
		fn(dp, src)
		return nil
	}

	if ops.IsPOD && (k != KindClone || ops.IsTriviallyCopyable) {
		copyBytes(dp, src, ops.Size)
		return nil
	}

	if k.Moves() {
		if ops.MoveCtor != nil {
			ops.MoveCtor(dp, src)
			return nil
		}
	} else if k == KindRefer || k == KindCopy || k == KindDisown {
		if ops.CopyCtor != nil {
			ops.CopyCtor(dp, src)
			return nil
		}
	}

	return ErrUnsupportedIntent
}

// IntentAssign mirrors IntentNew's ladder for assignment onto an
// already-live *dst.
func IntentAssign[T any](dst *T, i Intent[T], ops Ops) error {
	k := i.Kind()
	src := unsafe.Pointer(&i.value)
	dp := unsafe.Pointer(dst)

	if fn := ops.assignerFor(k); fn != nil {
		fn(dp, src)
		return nil
	}

	if ops.IsPOD && (k != KindClone || ops.IsTriviallyCopyable) {
		copyBytes(dp, src, ops.Size)
		return nil
	}

	if k.Moves() {
		if ops.MoveAssign != nil {
			ops.MoveAssign(dp, src)
			return nil
		}
	} else if k == KindRefer || k == KindCopy || k == KindDisown {
		if ops.CopyAssign != nil {
			ops.CopyAssign(dp, src)
			return nil
		}
	}

	return ErrUnsupportedIntent
}
