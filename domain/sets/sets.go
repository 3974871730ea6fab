// Package sets implements the set calculator: union, intersection,
// differences and complements of two finite sets of labels.
package sets

import "strings"

// Set is a finite set that remembers insertion order.
type Set struct {
	items []string
	index map[string]struct{}
}

// New builds a set from labels, ignoring repeats.
func New(labels ...string) Set {
	s := Set{index: make(map[string]struct{}, len(labels))}
	for _, l := range labels {
		s.add(l)
	}
	return s
}

func (s *Set) add(label string) {
	if _, ok := s.index[label]; ok {
		return
	}
	s.index[label] = struct{}{}
	s.items = append(s.items, label)
}

// Has reports membership.
func (s Set) Has(label string) bool {
	_, ok := s.index[label]
	return ok
}

// Len is the cardinality.
func (s Set) Len() int { return len(s.items) }

// Items returns the members in insertion order.
func (s Set) Items() []string {
	return append([]string(nil), s.items...)
}

// String renders the set as "{a, b}".
func (s Set) String() string {
	return "{" + strings.Join(s.items, ", ") + "}"
}

func (s Set) filter(keep func(string) bool) Set {
	out := New()
	for _, item := range s.items {
		if keep(item) {
			out.add(item)
		}
	}
	return out
}

// Union keeps s's order followed by new members of o.
func (s Set) Union(o Set) Set {
	return New(append(s.Items(), o.items...)...)
}

func (s Set) Intersect(o Set) Set {
	return s.filter(o.Has)
}

// Minus is s - o.
func (s Set) Minus(o Set) Set {
	return s.filter(func(x string) bool { return !o.Has(x) })
}

// SubsetOf reports s ⊆ o. The empty set is a subset of every set.
func (s Set) SubsetOf(o Set) bool {
	for _, item := range s.items {
		if !o.Has(item) {
			return false
		}
	}
	return true
}

// Report holds every result the calculator shows.
type Report struct {
	A, B, Universe Set

	Union               Set
	Intersection        Set
	DifferenceAB        Set
	DifferenceBA        Set
	SymmetricDifference Set

	ComplementA            Set
	ComplementB            Set
	ComplementUnion        Set
	ComplementIntersection Set

	Disjoint bool
	ASubsetB bool
	BSubsetA bool
	Equal    bool
}

// Calculate runs every operation on a and b. Complements are relative to
// universe, or to a ∪ b when universe is empty.
func Calculate(a, b, universe []string) Report {
	sa, sb := New(a...), New(b...)
	union := sa.Union(sb)

	u := New(universe...)
	if u.Len() == 0 {
		u = union
	}

	r := Report{
		A:            sa,
		B:            sb,
		Universe:     u,
		Union:        union,
		Intersection: sa.Intersect(sb),
		DifferenceAB: sa.Minus(sb),
		DifferenceBA: sb.Minus(sa),
		ASubsetB:     sa.SubsetOf(sb),
		BSubsetA:     sb.SubsetOf(sa),
	}
	r.SymmetricDifference = r.DifferenceAB.Union(r.DifferenceBA)
	r.ComplementA = u.Minus(sa)
	r.ComplementB = u.Minus(sb)
	r.ComplementUnion = u.Minus(union)
	r.ComplementIntersection = u.Minus(r.Intersection)
	r.Disjoint = r.Intersection.Len() == 0
	r.Equal = r.ASubsetB && r.BSubsetA
	return r
}
