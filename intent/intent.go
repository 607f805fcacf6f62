// Package intent implements a seven-way value-transfer taxonomy: Refer,
// Copy, Move, Abandon, Disown, Clone and Describe, plus the
// IntentNew/IntentAssign dispatchers that pick the best available
// construction or assignment path for a given (intent, type) pair.
//
// The erased-function-pointer shape the dispatchers pick between is
// modelled on _examples/Sinacam-Interface's interface_detail::thunk: a
// small, fixed set of optional function values (copy/move/destroy) keyed
// off what the underlying type actually supports.
package intent

// Kind identifies one of the seven value-transfer contracts.
type Kind int

const (
	KindRefer Kind = iota
	KindCopy
	KindMove
	KindAbandon
	KindDisown
	KindClone
	KindDescribe
)

func (k Kind) String() string {
	switch k {
	case KindRefer:
		return "Refer"
	case KindCopy:
		return "Copy"
	case KindMove:
		return "Move"
	case KindAbandon:
		return "Abandon"
	case KindDisown:
		return "Disown"
	case KindClone:
		return "Clone"
	case KindDescribe:
		return "Describe"
	default:
		return "Unknown"
	}
}

// Keeps reports whether the intent references/retains the source (spec
// table §4.2 "Keep" column).
func (k Kind) Keeps() bool {
	switch k {
	case KindRefer, KindCopy, KindMove, KindClone:
		return true
	default:
		return false
	}
}

// Moves reports whether the intent resets the source after transfer.
func (k Kind) Moves() bool {
	switch k {
	case KindMove, KindAbandon:
		return true
	default:
		return false
	}
}

// Shallow reports whether the intent stops at the first indirection
// (everything except Clone, which is deep, and Describe, which is special).
func (k Kind) Shallow() bool {
	return k != KindClone && k != KindDescribe
}

// intentLike is satisfied by any Intent[T] instantiation, regardless of T.
// Used to detect and collapse nested wrapping: intents never nest.
type intentLike interface {
	intentKind() Kind
}

// Intent wraps a value of type T with a value-transfer contract. It is the
// Go-native counterpart of the C++ source's Refer<T>/Copy<T>/Move<T>/... %
// wrapper templates.
type Intent[T any] struct {
	kind  Kind
	value T
}

func (i Intent[T]) intentKind() Kind { return i.kind }

// Kind reports the (possibly collapsed, see wrap) intent kind.
func (i Intent[T]) Kind() Kind { return i.kind }

// Value returns the wrapped payload.
func (i Intent[T]) Value() T { return i.value }

// wrap constructs an Intent[T], collapsing one level of nesting: if T is
// itself an Intent[U] instantiation, the outer Kind is discarded in favor
// of the inner one, so that wrapping an already-wrapped value is a no-op at
// the Kind level — "intents never nest".
func wrap[T any](kind Kind, v T) Intent[T] {
	if il, ok := any(v).(intentLike); ok {
		kind = il.intentKind()
	}
	return Intent[T]{kind: kind, value: v}
}

// Refer wraps v for reference semantics: keeps, does not move, shallow.
func Refer[T any](v T) Intent[T] { return wrap(KindRefer, v) }

// Copy wraps v for copy semantics: keeps, does not move, shallow.
func Copy[T any](v T) Intent[T] { return wrap(KindCopy, v) }

// Move wraps v for move semantics: keeps the destination valid, resets the
// source, shallow.
func Move[T any](v T) Intent[T] { return wrap(KindMove, v) }

// Abandon wraps v for abandon semantics: does not keep, resets the source,
// shallow. Used when the source is about to be destroyed regardless.
func Abandon[T any](v T) Intent[T] { return wrap(KindAbandon, v) }

// Disown wraps v for disown semantics: does not keep, does not move,
// shallow. The destination gets an independent, unlinked value.
func Disown[T any](v T) Intent[T] { return wrap(KindDisown, v) }

// Clone wraps v for clone semantics: keeps, does not move, deep (recurses
// past the first indirection). IntentNew/IntentAssign (dispatch.go) use the
// clone slot of the Ops they are given for T as written; no pointer layers
// are stripped from T here.
func Clone[T any](v T) Intent[T] { return wrap(KindClone, v) }

// Describe wraps a descriptor-shaped value (a "Neat" in the source
// terminology; this repo's containers are out of scope, so v is typically
// a map[string]any or similar blueprint).
func Describe[T any](v T) Intent[T] { return wrap(KindDescribe, v) }

// Deint strips the intent wrapper, returning the raw payload.
func Deint[T any](i Intent[T]) T { return i.value }

// Rvalue marks a value as a transient temporary for IntentOf, the Go
// substitute for the C++ source's rvalue/lvalue distinction (which Go's
// type system has no equivalent of).
type Rvalue[T any] struct{ V T }

// IntentOf selects Move for values explicitly marked as transient via
// Rvalue, and Refer otherwise: rvalues move, lvalues are referred.
func IntentOf[T any](v any) Intent[T] {
	if rv, ok := v.(Rvalue[T]); ok {
		return Move(rv.V)
	}
	return Refer(v.(T))
}
