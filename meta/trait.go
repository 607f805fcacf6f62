package meta

import "github.com/langulus/rtti/token"

// MetaTrait is the descriptor for a trait tag. Adds a single field
// narrowing the trait's expected value type.
type MetaTrait struct {
	Meta

	// DataType optionally narrows the trait's value type; nil if the trait
	// imposes no constraint.
	DataType *MetaData
}

// NewMetaTrait constructs a MetaTrait with its common Meta fields
// populated.
func NewMetaTrait(tok token.Token) *MetaTrait {
	return &MetaTrait{Meta: NewMeta(KindTrait, tok)}
}

// Base satisfies the Any interface.
func (t *MetaTrait) Base() *Meta { return &t.Meta }
