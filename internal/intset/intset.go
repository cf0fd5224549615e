// Package intset provides the ordered set of small non-negative integers used
// for letter positions and automaton states.
package intset

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set is an ordered set of non-negative ints. The zero value is not usable;
// create one with New.
type Set struct {
	bits *bitset.BitSet
}

// New returns a set holding the given elements. Negative elements panic.
func New(elems ...int) *Set {
	s := &Set{bits: bitset.New(0)}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Range returns the set {lo, ..., hi}. It is empty when hi < lo.
func Range(lo, hi int) *Set {
	s := New()
	for i := lo; i <= hi; i++ {
		s.Add(i)
	}
	return s
}

func (s *Set) Add(e int) {
	if e < 0 {
		panic("intset: negative element " + strconv.Itoa(e))
	}
	s.bits.Set(uint(e))
}

func (s *Set) Remove(e int) {
	if e < 0 {
		return
	}
	s.bits.Clear(uint(e))
}

func (s *Set) Has(e int) bool {
	if e < 0 {
		return false
	}
	return s.bits.Test(uint(e))
}

func (s *Set) Len() int {
	return int(s.bits.Count())
}

func (s *Set) Empty() bool {
	return s.bits.None()
}

// AddAll adds every element of o to s.
func (s *Set) AddAll(o *Set) {
	s.bits.InPlaceUnion(o.bits)
}

// Union returns a new set with the elements of both s and o.
func (s *Set) Union(o *Set) *Set {
	return &Set{bits: s.bits.Union(o.bits)}
}

// Intersection returns a new set with the elements found in both s and o.
func (s *Set) Intersection(o *Set) *Set {
	return &Set{bits: s.bits.Intersection(o.bits)}
}

// Intersects reports whether s and o share at least one element.
func (s *Set) Intersects(o *Set) bool {
	return s.bits.IntersectionCardinality(o.bits) > 0
}

// Equal compares elements only; the capacity of the backing bitsets is
// irrelevant.
func (s *Set) Equal(o *Set) bool {
	return s.bits.SymmetricDifferenceCardinality(o.bits) == 0
}

func (s *Set) Copy() *Set {
	return &Set{bits: s.bits.Clone()}
}

// Each calls fn on every element in increasing order.
func (s *Set) Each(fn func(e int)) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fn(int(i))
	}
}

// Elements returns the elements in increasing order.
func (s *Set) Elements() []int {
	out := make([]int, 0, s.Len())
	s.Each(func(e int) { out = append(out, e) })
	return out
}

// Min returns the smallest element, or -1 for an empty set.
func (s *Set) Min() int {
	i, ok := s.bits.NextSet(0)
	if !ok {
		return -1
	}
	return int(i)
}

// Max returns the largest element, or -1 for an empty set.
func (s *Set) Max() int {
	max := -1
	s.Each(func(e int) { max = e })
	return max
}

// Key is a canonical encoding of the set: two sets have the same key iff they
// hold the same elements.
func (s *Set) Key() string {
	var sb strings.Builder
	s.Each(func(e int) {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	})
	return sb.String()
}

func (s *Set) String() string {
	return "{" + strings.ReplaceAll(s.Key(), ",", ", ") + "}"
}
