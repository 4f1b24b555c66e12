// Copyright (c) 2023 Colin McRae

package cubical

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DanielRobertNicoud/dupont-contraction/multiindex"
)

// Cell is a face of the n-cube: the coordinates in Directions vary and the
// others are fixed to the bits of Bits, in increasing coordinate order. The
// face {x_1 = 0, x_3 = 1} of the 4-cube with x_2, x_4 free is "2|4,01".
type Cell struct {
	directions multiindex.Index
	bits       string
}

// parseCell reads a key "i_1|...|i_k,b_1...b_{n-k}". The returned sign is
// that of sorting the directions, and 0 if one repeats. A key with a repeated
// direction still needs one bit per coordinate outside its distinct
// directions.
func parseCell(n int, key string) (Cell, int, error) {
	directionsKey, bits, found := strings.Cut(key, ",")
	if !found || strings.Contains(bits, ",") {
		return Cell{}, 0, fmt.Errorf("cell %q must have the form \"i|j,01\"", key)
	}
	directions, sign, err := multiindex.ParseInRange(strings.TrimSpace(directionsKey), 1, n)
	if err != nil {
		return Cell{}, 0, err
	}
	bits = strings.TrimSpace(bits)
	if strings.Trim(bits, "01") != "" {
		return Cell{}, 0, fmt.Errorf("cell %q has a bit string other than 0s and 1s", key)
	}
	degree := directions.Len()
	if sign == 0 {
		degree = distinctEntries(directionsKey)
	}
	if len(bits) != n-degree {
		return Cell{}, 0, fmt.Errorf(
			"cell %q has %d directions and %d bits, expected %d in total", key, degree, len(bits), n,
		)
	}
	if sign == 0 {
		return Cell{}, 0, nil
	}
	return Cell{directions: directions, bits: bits}, sign, nil
}

// distinctEntries counts the distinct entries of a key already accepted by
// multiindex.ParseInRange.
func distinctEntries(key string) int {
	seen := map[int]bool{}
	for _, part := range strings.Split(key, "|") {
		v, _ := strconv.Atoi(strings.TrimSpace(part))
		seen[v] = true
	}
	return len(seen)
}

// Degree returns the number of free directions.
func (c Cell) Degree() int {
	return c.directions.Len()
}

// complement returns the fixed coordinates in increasing order.
func (c Cell) complement(n int) []int {
	retVal := make([]int, 0, n-c.directions.Len())
	for k := 1; k <= n; k++ {
		if !c.directions.Contains(k) {
			retVal = append(retVal, k)
		}
	}
	return retVal
}

// Less orders cells by degree, then directions, then bits.
func (c Cell) Less(other Cell) bool {
	if c.directions != other.directions {
		return c.directions.Less(other.directions)
	}
	return c.bits < other.bits
}

func (c Cell) String() string {
	return c.directions.String() + "," + c.bits
}

// LaTeX writes an empty part as \emptyset, e.g. "\omega_{\emptyset,01}".
func (c Cell) LaTeX() string {
	directions, bits := c.directions.String(), c.bits
	if directions == "" {
		directions = "\\emptyset"
	}
	if bits == "" {
		bits = "\\emptyset"
	}
	return fmt.Sprintf("\\omega_{%s,%s}", directions, bits)
}

// cells returns the cells of the n-cube of degree k, ordered by Less.
func cells(n, k int) []Cell {
	var retVal []Cell
	for _, directions := range multiindex.Subsets(1, n, k) {
		for _, bits := range bitStrings(n - k) {
			retVal = append(retVal, Cell{directions: directions, bits: bits})
		}
	}
	return retVal
}

// bitStrings returns the 2^length strings of 0s and 1s in lexicographic
// order.
func bitStrings(length int) []string {
	retVal := []string{""}
	for i := 0; i < length; i++ {
		next := make([]string, 0, 2*len(retVal))
		for _, prefix := range retVal {
			next = append(next, prefix+"0", prefix+"1")
		}
		retVal = next
	}
	return retVal
}
