package rtti

import (
	"reflect"

	"github.com/langulus/rtti/meta"
	"github.com/langulus/rtti/registry"
	"github.com/langulus/rtti/synth"
	"github.com/langulus/rtti/token"
)

// VerbTokens lets a verb marker type declare its positive and negative
// verb tokens. A verb registers under five tokens at once: cpp_name (always
// T's own canonical token), these two, and the two operator spellings from
// VerbOperators. When VerbTokens is not implemented, both verb tokens
// default to T's canonical token.
type VerbTokens interface {
	PositiveVerb() string
	NegativeVerb() string
}

// VerbOperators is the optional operator-spelling half of the verb opt-in
// surface; a verb with no infix spelling simply does not implement it.
type VerbOperators interface {
	PositiveOperator() string
	NegativeOperator() string
}

// Precedented lets a verb marker type declare its binary-operator
// precedence, mapped onto MetaVerb.precedence.
type Precedented interface{ RTTIPrecedence() float64 }

// DefaultExecutor lets a verb marker type supply the default mutable/
// stateless execution functors MetaVerb carries.
type DefaultExecutor interface {
	ExecuteDefault(context, verb []byte) error
	ExecuteStateless(context, verb []byte) error
}

// MetaVerbOf synthesizes or fetches the MetaVerb for marker type T.
func MetaVerbOf[T any]() *meta.MetaVerb {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	cppName := string(synth.Token(rt))

	positive, negative := cppName, cppName
	if vt, ok := any(&zero).(VerbTokens); ok {
		positive, negative = vt.PositiveVerb(), vt.NegativeVerb()
	}
	var op, opReverse string
	if vo, ok := any(&zero).(VerbOperators); ok {
		op, opReverse = vo.PositiveOperator(), vo.NegativeOperator()
	}

	v := meta.NewMetaVerb(token.Token(positive), token.Token(negative))
	if p, ok := any(&zero).(Precedented); ok {
		v.Precedence = p.RTTIPrecedence()
	}
	if de, ok := any(&zero).(DefaultExecutor); ok {
		v.DefaultMutable = de.ExecuteDefault
		v.DefaultStateless = de.ExecuteStateless
	}

	registered, _ := registry.Global().RegisterVerb(
		cppName, token.Token(positive), token.Token(negative), token.Token(op), token.Token(opReverse), v)
	return registered
}
