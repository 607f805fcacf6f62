package cast

import "github.com/langulus/rtti/meta"

// IsAbleTo reports whether a implements verb at all — a thin pass-through
// onto MetaData.IsAbleTo kept here so every ability/conversion/member
// predicate is reachable from one package.
func IsAbleTo(a *meta.MetaData, verb *meta.MetaVerb) bool {
	return a.IsAbleTo(verb)
}

// GetAbility looks up a's Ability entry for verb.
func GetAbility(a *meta.MetaData, verb *meta.MetaVerb) (*meta.Ability, bool) {
	ab, ok := a.Abilities()[verb]
	return ab, ok
}

// GetConverter looks up a's reflected conversion to target.
func GetConverter(a *meta.MetaData, target *meta.MetaData) (*meta.Converter, bool) {
	return a.Converter(target)
}

// GetNamedValueOf finds the MetaConst among a's NamedValues whose Value()
// equals value, comparing via Go equality (value must be a comparable
// type for a meaningful match; each MetaConst holds one concrete
// enumerator value).
func GetNamedValueOf(a *meta.MetaData, value any) (*meta.MetaConst, bool) {
	for _, c := range a.NamedValues {
		if c.Value() == value {
			return c, true
		}
	}
	return nil, false
}

// MemberQuery narrows a GetMember search; a nil/zero field is not checked.
// At least one field should be set or every member of a matches the first
// one found.
type MemberQuery struct {
	Trait  *meta.MetaTrait
	Type   *meta.MetaData
	Offset *uintptr
}

// GetMember returns the first member of a matching every non-nil field of q.
func GetMember(a *meta.MetaData, q MemberQuery) (*meta.Member, bool) {
	for i := range a.Members {
		m := &a.Members[i]
		if q.Offset != nil && m.Offset != *q.Offset {
			continue
		}
		if q.Type != nil {
			mt, err := m.Type()
			if err != nil || mt != q.Type {
				continue
			}
		}
		if q.Trait != nil {
			tr, err := m.Trait()
			if err != nil || tr != q.Trait {
				continue
			}
		}
		return m, true
	}
	return nil, false
}

// RequestSize is the package-level form of MetaData.RequestSize, grouped
// here so it's reachable without reaching into meta directly.
func RequestSize(a *meta.MetaData, bytes uintptr) uintptr {
	return a.RequestSize(bytes)
}
