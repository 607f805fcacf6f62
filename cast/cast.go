// Package cast implements comparison, casting and distance predicates over
// *meta.MetaData descriptors.
//
// Grounded on blacktop/go-macho's objc.go GetObjCClass, which walks a
// class's SuperclassVMAddr chain one hop at a time until it hits nil —
// exactly the shape GetDistanceTo needs for counting base hops, and the
// shape CastsTo needs for walking the non-imposed base list transitively.
package cast

import (
	"math"

	"github.com/langulus/rtti/meta"
)

// Infinite is the reserved sentinel GetDistanceTo returns when b is
// unreachable from a.
const Infinite = math.MaxInt32

// origin returns a's fully decayed type, falling back to a itself when no
// Origin was recorded (e.g. a is already the origin).
func origin(a *meta.MetaData) *meta.MetaData {
	if a == nil {
		return nil
	}
	if a.Origin != nil {
		return a.Origin
	}
	return a
}

// Is reports whether a and b designate the same canonical type, ignoring
// top-level const/volatile/pointer decorations: origin(a) == origin(b).
func Is(a, b *meta.MetaData) bool {
	return origin(a) == origin(b)
}

// depth reports how many pointer layers a carries before reaching its
// origin, walking the Deptr chain the way GetObjCClass walks superclasses.
func depth(a *meta.MetaData) int {
	n := 0
	cur := a
	for cur != nil && cur.IsSparse && cur.Deptr != nil && cur.Deptr != cur {
		n++
		cur = cur.Deptr
	}
	return n
}

// layerAt returns the descriptor n pointer layers down from a (0 == a
// itself), following Deptr.
func layerAt(a *meta.MetaData, n int) *meta.MetaData {
	cur := a
	for i := 0; i < n && cur != nil; i++ {
		cur = cur.Deptr
	}
	return cur
}

// IsSimilar reports whether a and b have the same pointer depth and agree
// at every layer on pointee type and const-qualification.
func IsSimilar(a, b *meta.MetaData) bool {
	da, db := depth(a), depth(b)
	if da != db {
		return false
	}
	for i := 0; i <= da; i++ {
		la, lb := layerAt(a, i), layerAt(b, i)
		if origin(la) != origin(lb) {
			return false
		}
		if la != nil && lb != nil && la.IsConstant != lb.IsConstant {
			return false
		}
	}
	return true
}

// IsExact reports pointer identity of the two descriptors.
func IsExact(a, b *meta.MetaData) bool {
	return a == b
}

// HasBase reports whether target appears among a's direct bases (imposed
// or not).
func HasBase(a, target *meta.MetaData) bool {
	for _, base := range a.Bases {
		if base.Type == target {
			return true
		}
	}
	return false
}

// HasDerivation reports whether target is reachable from a through any
// chain of non-imposed bases — the transitive counterpart to HasBase.
func HasDerivation(a, target *meta.MetaData) bool {
	return GetDistanceTo(a, target) != Infinite
}

// CastsTo reports whether a value of type a can be interpreted as a single
// target: a is target, target appears among a's non-imposed bases
// transitively, or a has a reflected converter to target.
func CastsTo(a, target *meta.MetaData) bool {
	if Is(a, target) {
		return true
	}
	if HasDerivation(origin(a), origin(target)) {
		return true
	}
	if _, ok := origin(a).Converter(origin(target)); ok {
		return true
	}
	return false
}

// CastsToN reports whether target describes a layout that fits n
// contiguous copies inside a: some base of a is binary-compatible with
// target and a.Size / target.Size == n.
func CastsToN(a, target *meta.MetaData, n int) bool {
	oa, ot := origin(a), origin(target)
	if ot == nil || ot.Size == 0 {
		return false
	}
	if oa.Size%ot.Size != 0 || oa.Size/ot.Size != uintptr(n) {
		return false
	}
	for _, base := range oa.Bases {
		if base.BinaryCompatible && origin(base.Type) == ot {
			return true
		}
	}
	return false
}

// IsRelatedTo reports whether either CastsTo(a,b) or CastsTo(b,a) holds.
func IsRelatedTo(a, b *meta.MetaData) bool {
	return CastsTo(a, b) || CastsTo(b, a)
}

// GetDistanceTo returns the minimum number of non-imposed base hops from a
// to b: 0 if Is(a,b), Infinite if unreachable. Breadth-first over the base
// graph, mirroring GetObjCClass's hop-by-hop superclass walk generalized to
// multiple (non-virtual) bases per type.
func GetDistanceTo(a, b *meta.MetaData) int {
	oa, ob := origin(a), origin(b)
	if oa == ob {
		return 0
	}

	type frame struct {
		t     *meta.MetaData
		depth int
	}
	visited := map[*meta.MetaData]bool{oa: true}
	queue := []frame{{oa, 0}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, base := range f.t.Bases {
			if base.Imposed {
				continue
			}
			bt := origin(base.Type)
			if bt == ob {
				return f.depth + 1
			}
			if bt == nil || visited[bt] {
				continue
			}
			visited[bt] = true
			queue = append(queue, frame{bt, f.depth + 1})
		}
	}
	return Infinite
}

// GetMostConcrete returns a's Concrete override if one was reflected,
// otherwise a itself.
func GetMostConcrete(a *meta.MetaData) *meta.MetaData {
	if a != nil && a.Concrete != nil {
		return a.Concrete
	}
	return a
}

// RemovePointer strips exactly one pointer layer.
func RemovePointer(a *meta.MetaData) *meta.MetaData {
	if a == nil {
		return nil
	}
	return a.Deptr
}
