package meta

import "github.com/langulus/rtti/token"

// VerbFunc is an erased, stateless or default verb execution target.
type VerbFunc func(context, verb []byte) error

// MetaVerb is the descriptor for a verb (opcode for dynamic dispatch). A
// verb has exactly one canonical identity; its
// positive and reverse tokens (antonyms) both resolve to the same
// descriptor, and it optionally carries operator spellings for the
// registry's operator index.
type MetaVerb struct {
	Meta

	TokenReverse    token.Token
	Operator        token.Token
	OperatorReverse token.Token
	Precedence      float64

	DefaultMutable   VerbFunc
	DefaultConstant  VerbFunc
	DefaultStateless VerbFunc

	// able is the set of data types known to implement this verb, in
	// registration order. Populated during synthesis (see synth.go's
	// enumerateOpts).
	able []*MetaData
}

// NewMetaVerb constructs a MetaVerb with its common Meta fields populated.
func NewMetaVerb(tok, tokenReverse token.Token) *MetaVerb {
	return &MetaVerb{
		Meta:         NewMeta(KindVerb, tok),
		TokenReverse: tokenReverse,
	}
}

// Base satisfies the Any interface.
func (v *MetaVerb) Base() *Meta { return &v.Meta }

// Able lists the data types known to implement this verb.
func (v *MetaVerb) Able() []*MetaData { return v.able }

// MarkAble records d as implementing v, if not already recorded.
func (v *MetaVerb) MarkAble(d *MetaData) {
	for _, existing := range v.able {
		if existing == d {
			return
		}
	}
	v.able = append(v.able, d)
}
