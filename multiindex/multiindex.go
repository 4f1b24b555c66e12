// Copyright (c) 2023 Colin McRae

// Package multiindex provides the small, comparable index types used as
// map keys by the form packages: strictly increasing index sets for wedge
// products and basis forms, and exponent vectors for monomials.
package multiindex

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxLength is the largest number of entries an Index or a Monomial holds.
// It bounds the dimension of the forms (n + 1 <= MaxLength).
const MaxLength = 16

// Index is a strictly increasing sequence of at most MaxLength non-negative
// integers below 256. The zero value is the empty index.
type Index struct {
	length uint8
	values [MaxLength]uint8
}

// Canonicalize sorts seq and returns the sorted copy together with the sign
// of the sorting permutation. If an entry of seq repeats, the returned sign
// is 0 and the returned slice is nil.
func Canonicalize(seq []int) ([]int, int) {
	sign := 1
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] == seq[j] {
				return nil, 0
			}
			if seq[i] > seq[j] {
				sign = -sign
			}
		}
	}
	sorted := make([]int, len(seq))
	copy(sorted, seq)
	sort.Ints(sorted)
	return sorted, sign
}

// New canonicalizes seq and returns the corresponding Index with the sign of
// the sorting permutation. The sign is 0, and the Index empty, if seq has a
// repeated entry. An error is returned if an entry is negative, does not fit
// in a byte or if seq is too long.
func New(seq ...int) (Index, int, error) {
	if len(seq) > MaxLength {
		return Index{}, 0, fmt.Errorf(
			"multiindex.New: %d entries exceed the maximum %d", len(seq), MaxLength,
		)
	}
	for _, v := range seq {
		if v < 0 || v > 255 {
			return Index{}, 0, fmt.Errorf("multiindex.New: entry %d is not in {0,...,255}", v)
		}
	}
	sorted, sign := Canonicalize(seq)
	if sign == 0 {
		return Index{}, 0, nil
	}
	var retVal Index
	retVal.length = uint8(len(sorted))
	for i, v := range sorted {
		retVal.values[i] = uint8(v)
	}
	return retVal, sign, nil
}

// MustNew is New for arguments known to be distinct, in range and sorted.
// It panics otherwise; it is meant for indices built by the form packages
// from indices that are already canonical.
func MustNew(seq ...int) Index {
	idx, sign, err := New(seq...)
	if err != nil || sign != 1 {
		panic(fmt.Sprintf("multiindex.MustNew: %v is not a canonical index", seq))
	}
	return idx
}

// Parse reads an index written as "i|j|k" (the empty string is the empty
// index) and canonicalizes it.
func Parse(key string) (Index, int, error) {
	if key == "" {
		return Index{}, 1, nil
	}
	parts := strings.Split(key, "|")
	seq := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Index{}, 0, fmt.Errorf("multiindex.Parse: could not parse %q: %q", key, err.Error())
		}
		seq[i] = v
	}
	return New(seq...)
}

// ParseInRange is Parse for keys whose entries must lie in {lo,...,hi}. The
// range is checked before canonicalization, so a key with a repeated entry
// and an out-of-range entry is still an error.
func ParseInRange(key string, lo, hi int) (Index, int, error) {
	if key == "" {
		return Index{}, 1, nil
	}
	parts := strings.Split(key, "|")
	seq := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Index{}, 0, fmt.Errorf("multiindex.ParseInRange: could not parse %q: %q", key, err.Error())
		}
		if v < lo || v > hi {
			return Index{}, 0, fmt.Errorf("multiindex.ParseInRange: entry %d of %q is not in {%d,...,%d}", v, key, lo, hi)
		}
		seq[i] = v
	}
	return New(seq...)
}

// Len returns the number of entries.
func (idx Index) Len() int {
	return int(idx.length)
}

// At returns entry i.
func (idx Index) At(i int) int {
	return int(idx.values[i])
}

// Values returns the entries as a fresh slice.
func (idx Index) Values() []int {
	retVal := make([]int, idx.length)
	for i := range retVal {
		retVal[i] = int(idx.values[i])
	}
	return retVal
}

// Contains reports whether v is an entry of idx.
func (idx Index) Contains(v int) bool {
	return idx.Position(v) >= 0
}

// Position returns the position of v in idx, or -1 if v is not an entry.
func (idx Index) Position(v int) int {
	for i := 0; i < int(idx.length); i++ {
		if int(idx.values[i]) == v {
			return i
		}
	}
	return -1
}

// Remove returns idx without its entry at position pos.
func (idx Index) Remove(pos int) Index {
	var retVal Index
	for i := 0; i < int(idx.length); i++ {
		if i == pos {
			continue
		}
		retVal.values[retVal.length] = idx.values[i]
		retVal.length++
	}
	return retVal
}

// Insert adds v to idx and returns the result with the sign of moving v
// from the front of the sequence to its sorted position. The sign is 0 if v
// is already an entry.
func (idx Index) Insert(v int) (Index, int) {
	return Union(MustNew(v), idx)
}

// Union returns the canonical form of the concatenation of a and b with the
// sign of the shuffle that sorts it, or sign 0 if a and b intersect.
func Union(a, b Index) (Index, int) {
	if !Disjoint(a, b) || int(a.length)+int(b.length) > MaxLength {
		return Index{}, 0
	}
	seq := append(a.Values(), b.Values()...)
	retVal, sign, err := New(seq...)
	if err != nil {
		return Index{}, 0
	}
	return retVal, sign
}

// Disjoint reports whether a and b have no entry in common.
func Disjoint(a, b Index) bool {
	for i := 0; i < int(a.length); i++ {
		if b.Contains(int(a.values[i])) {
			return false
		}
	}
	return true
}

// Less orders indices first by length, then lexicographically.
func (idx Index) Less(other Index) bool {
	if idx.length != other.length {
		return idx.length < other.length
	}
	for i := 0; i < int(idx.length); i++ {
		if idx.values[i] != other.values[i] {
			return idx.values[i] < other.values[i]
		}
	}
	return false
}

// String writes idx as "i|j|k".
func (idx Index) String() string {
	parts := make([]string, idx.length)
	for i := range parts {
		parts[i] = strconv.Itoa(int(idx.values[i]))
	}
	return strings.Join(parts, "|")
}

// Subsets returns every Index of length k with entries in {lo,...,hi}, in
// increasing lexicographic order.
func Subsets(lo, hi, k int) []Index {
	var retVal []Index
	current := make([]int, 0, k)
	var recurse func(start int)
	recurse = func(start int) {
		if len(current) == k {
			retVal = append(retVal, MustNew(current...))
			return
		}
		for v := start; v <= hi; v++ {
			current = append(current, v)
			recurse(v + 1)
			current = current[:len(current)-1]
		}
	}
	recurse(lo)
	return retVal
}
