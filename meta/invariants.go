package meta

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrBadAlignment signals a MetaData whose Alignment is not a power of
	// two ≤128.
	ErrBadAlignment = errors.New("meta: alignment must be a power of two not exceeding 128")
	// ErrSparseSize signals a sparse (pointer) MetaData whose Size does not
	// equal a pointer's width.
	ErrSparseSize = errors.New("meta: sparse type size must equal pointer size")
	// ErrAbstractDefaultCtor signals an abstract MetaData that nonetheless
	// carries a default constructor, which is disallowed.
	ErrAbstractDefaultCtor = errors.New("meta: abstract type must not have a default constructor")
)

// Validate checks the cross-field invariants MetaData must hold. It is
// called by synth.Of after synthesis and may also be
// called by user code that hand-builds a MetaData via registration.
func (d *MetaData) Validate() error {
	if d.Alignment == 0 || d.Alignment > 128 || d.Alignment&(d.Alignment-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrBadAlignment, d.Alignment)
	}
	if d.IsSparse && d.Size != unsafe.Sizeof(uintptr(0)) {
		return fmt.Errorf("%w: got %d", ErrSparseSize, d.Size)
	}
	if d.IsAbstract && d.VTable.DefaultCtor != nil {
		return ErrAbstractDefaultCtor
	}
	return nil
}

// CompatibleWith reports whether two independent registrations of the same
// token describe structurally compatible bodies: two independent
// registrations of the same canonical token merge into one descriptor and
// must agree on all structural fields. Compares the fields that matter for
// binary layout and identity; abilities, converters and named values are
// not compared.
func (d *MetaData) CompatibleWith(o *MetaData) bool {
	return d.Size == o.Size &&
		d.Alignment == o.Alignment &&
		d.IsSparse == o.IsSparse &&
		d.IsPOD == o.IsPOD &&
		len(d.Members) == len(o.Members) &&
		len(d.Bases) == len(o.Bases)
}
