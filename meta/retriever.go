package meta

import (
	"errors"
	"sync"
)

// ErrUnresolved is returned by Retriever.Resolve before the underlying type
// graph has progressed far enough to produce a descriptor — the Go
// analogue of a cyclic C++ type reference that has not yet been completed.
var ErrUnresolved = errors.New("meta: retriever not yet resolvable")

// Retriever is a deferred, memoized lookup of a descriptor. Members store
// one for their type and one for their trait instead of a direct
// *MetaData/*MetaTrait pointer, because a struct's own member can
// reference the struct's still-incomplete descriptor.
//
// Shape grounded on pkg/fixupchains' lazily-resolved, offset-keyed chain of
// addresses: there, a fixup is resolved once and memoized by file offset;
// here, a retriever is resolved once and memoized by closing over the type
// parameter that produced it.
type Retriever struct {
	mu       sync.Mutex
	resolved bool
	value    Any
	err      error
	fn       func() (Any, error)
}

// NewRetriever wraps a resolver closure. The closure is invoked on each
// Resolve call until it first succeeds; that result is memoized for every
// subsequent Resolve call.
func NewRetriever(fn func() (Any, error)) *Retriever {
	return &Retriever{fn: fn}
}

// Resolved wraps an already-known descriptor, for the common case where the
// type graph is acyclic and nothing needs deferring.
func Resolved(v Any) *Retriever {
	return &Retriever{resolved: true, value: v}
}

// Resolve runs (or replays) the deferred lookup. Once it has successfully
// resolved, the result is fixed for the lifetime of the Retriever — the
// descriptor is created lazily on first access.
func (r *Retriever) Resolve() (Any, error) {
	if r == nil {
		return nil, ErrUnresolved
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved {
		return r.value, r.err
	}
	if r.fn == nil {
		return nil, ErrUnresolved
	}
	v, err := r.fn()
	if err == nil {
		r.resolved = true
		r.value = v
		r.fn = nil
	}
	return v, err
}
