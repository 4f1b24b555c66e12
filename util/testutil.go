package util

import (
	"fmt"
	"math/rand"
	"strings"
)

// The functions in this file generate pseudo-random input for property tests
// of the form packages. They return the string-keyed maps accepted
// by the form constructors, so this package does not depend on them.

// RandomCoefficient returns a nonzero rational number with numerator in
// {-maxEntry,...,maxEntry} and denominator in {1,...,maxEntry}, as a string
func RandomCoefficient(rng *rand.Rand, maxEntry int) string {
	numerator := 0
	for numerator == 0 {
		numerator = rng.Intn(2*maxEntry+1) - maxEntry
	}
	denominator := rng.Intn(maxEntry) + 1
	if denominator == 1 {
		return fmt.Sprintf("%d", numerator)
	}
	return fmt.Sprintf("%d/%d", numerator, denominator)
}

// RandomSullivanSpec returns numTerms random terms coeff * monomial * wedge.
// Wedge indices are distinct entries of {lo,...,hi}, listed in random order,
// with exactly degree entries. Monomials have numCoords exponents, each in
// {0,...,maxExponent}. Terms that collide are summed by the constructor.
func RandomSullivanSpec(
	rng *rand.Rand, lo, hi, degree, numCoords, maxExponent, numTerms int,
) map[string]map[string]any {
	retVal := map[string]map[string]any{}
	for i := 0; i < numTerms; i++ {
		wedge := GetIndices(rng, degree, hi-lo+1)
		for j := range wedge {
			wedge[j] += lo
		}
		rng.Shuffle(len(wedge), func(a, b int) { wedge[a], wedge[b] = wedge[b], wedge[a] })
		exponents := make([]int, numCoords)
		for j := range exponents {
			exponents[j] = rng.Intn(maxExponent + 1)
		}
		wedgeKey := JoinInts(wedge, "|")
		if _, ok := retVal[wedgeKey]; !ok {
			retVal[wedgeKey] = map[string]any{}
		}
		retVal[wedgeKey][JoinInts(exponents, "|")] = RandomCoefficient(rng, 5)
	}
	return retVal
}

// RandomVertexSetSpec returns a random combination of basis forms
// omega_{i_0...i_degree} with vertices in {0,...,n}, keyed "i_0|...|i_k"
func RandomVertexSetSpec(rng *rand.Rand, n, degree, numTerms int) map[string]any {
	retVal := map[string]any{}
	for i := 0; i < numTerms; i++ {
		vertices := GetIndices(rng, degree+1, n+1)
		rng.Shuffle(len(vertices), func(a, b int) { vertices[a], vertices[b] = vertices[b], vertices[a] })
		retVal[JoinInts(vertices, "|")] = RandomCoefficient(rng, 5)
	}
	return retVal
}

// RandomCubeCellSpec returns a random combination of cubical basis forms
// omega_{I,J} with |I| = degree, keyed "i_1|...|i_k,j_1...j_{n-k}"
func RandomCubeCellSpec(rng *rand.Rand, n, degree, numTerms int) map[string]any {
	retVal := map[string]any{}
	for i := 0; i < numTerms; i++ {
		directions := GetIndices(rng, degree, n)
		for j := range directions {
			directions[j]++
		}
		var bits strings.Builder
		for j := 0; j < n-degree; j++ {
			bits.WriteByte(byte('0' + rng.Intn(2)))
		}
		retVal[JoinInts(directions, "|")+","+bits.String()] = RandomCoefficient(rng, 5)
	}
	return retVal
}

// GetRelabeling returns a pseudo-random permutation of {0,...,size-1} drawn
// from rng that moves at least one element, for size >= 2, as the partial
// map accepted by the Permute methods.
func GetRelabeling(rng *rand.Rand, size int) map[int]int {
	permutation := rng.Perm(size)
	moved := false
	for i, p := range permutation {
		if p != i {
			moved = true
			break
		}
	}
	if !moved {
		// Swap a random element with its successor
		src := rng.Intn(size - 1)
		permutation[src], permutation[src+1] = permutation[src+1], permutation[src]
	}
	retVal := make(map[int]int, size)
	for i, p := range permutation {
		retVal[i] = p
	}
	return retVal
}

// GetIndices returns a pseudo-random, increasing subset of size numIndices
// of {0,...,numItems-1} drawn from rng. numIndices should be in
// {0,...,numItems}.
func GetIndices(rng *rand.Rand, numIndices, numItems int) []int {
	retVal := make([]int, numIndices)
	lastChoice := -1
	for i := 0; i < numIndices; i++ {
		numChoices := (numItems - (lastChoice + 1)) - (numIndices - i - 1)
		if numChoices <= 1 {
			retVal[i] = lastChoice + 1
		} else {
			retVal[i] = lastChoice + rng.Intn(numChoices) + 1
		}
		lastChoice = retVal[i]
	}
	return retVal
}

// JoinInts writes x with the given separator, e.g. "1|2|3"
func JoinInts(x []int, sep string) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, sep)
}
