package meta

import "github.com/langulus/rtti/token"

// MetaConst is the descriptor for one named enumerator. ValueType is the
// owning enum's MetaData; PtrToValue points
// into that type's static storage for the constant, mirrored here as an
// accessor function since Go has no static-storage address for arbitrary
// constant expressions the way C++ does.
type MetaConst struct {
	Meta

	ValueType *MetaData
	// Value returns the constant's value as an opaque, comparable Go
	// value (the Go substitute for "ptr_to_value into the owning type's
	// static storage").
	Value func() any
}

// NewMetaConst constructs a MetaConst with its common Meta fields
// populated.
func NewMetaConst(tok token.Token, valueType *MetaData, value func() any) *MetaConst {
	return &MetaConst{
		Meta:      NewMeta(KindConstant, tok),
		ValueType: valueType,
		Value:     value,
	}
}

// Base satisfies the Any interface.
func (c *MetaConst) Base() *Meta { return &c.Meta }
