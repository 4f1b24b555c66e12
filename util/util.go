// Copyright (c) 2023 Colin McRae

package util

import (
	"fmt"
	"math/big"
)

// Factorial returns k! as a big.Int. Negative k is treated as 0.
func Factorial(k int) *big.Int {
	retVal := big.NewInt(1)
	for i := 2; i <= k; i++ {
		retVal.Mul(retVal, big.NewInt(int64(i)))
	}
	return retVal
}

// FactorialRat returns k! as a big.Rat
func FactorialRat(k int) *big.Rat {
	return new(big.Rat).SetInt(Factorial(k))
}

// DirichletIntegral returns prod(e_i!) / (sum(e_i) + dim)!, the integral of
// t_0^e_0 ... t_dim^e_dim over the standard dim-simplex with respect to
// dt_1 ... dt_dim.
func DirichletIntegral(exponents []int, dim int) *big.Rat {
	numerator := big.NewInt(1)
	total := dim
	for _, e := range exponents {
		numerator.Mul(numerator, Factorial(e))
		total += e
	}
	return new(big.Rat).SetFrac(numerator, Factorial(total))
}

// Catalan returns the k-th Catalan number, binomial(2k, k) / (k + 1)
func Catalan(k int) int64 {
	if k < 0 {
		return 0
	}
	retVal := new(big.Int).Binomial(int64(2*k), int64(k))
	retVal.Quo(retVal, big.NewInt(int64(k+1)))
	return retVal.Int64()
}

// Permutations returns every permutation of {0,...,n-1} in lexicographic
// order, starting with the identity
func Permutations(n int) [][]int {
	current := make([]int, n)
	for i := range current {
		current[i] = i
	}
	retVal := [][]int{CopyInts(current)}
	for {
		// Find the longest non-increasing suffix
		i := n - 2
		for i >= 0 && current[i] >= current[i+1] {
			i--
		}
		if i < 0 {
			return retVal
		}
		j := n - 1
		for current[j] <= current[i] {
			j--
		}
		current[i], current[j] = current[j], current[i]
		for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
			current[l], current[r] = current[r], current[l]
		}
		retVal = append(retVal, CopyInts(current))
	}
}

// Invert returns the inverse of the permutation perm of {0,...,len(perm)-1}.
// An error is returned if perm is not a permutation.
func Invert(perm []int) ([]int, error) {
	retVal := make([]int, len(perm))
	for i := range retVal {
		retVal[i] = -1
	}
	for i, p := range perm {
		if p < 0 || p >= len(perm) || retVal[p] != -1 {
			return nil, fmt.Errorf("Invert: %v is not a permutation", perm)
		}
		retVal[p] = i
	}
	return retVal, nil
}

// CompletePermutation extends the partial map partial on {0,...,size-1}
// to a permutation. A point missing from partial is fixed if its own value
// is still free; the remaining points are sent, in increasing order, to the
// values not yet used, in increasing order. An error is returned if partial
// is not injective or leaves {0,...,size-1}.
func CompletePermutation(partial map[int]int, size int) ([]int, error) {
	retVal := make([]int, size)
	used := make([]bool, size)
	for i := range retVal {
		retVal[i] = -1
	}
	for from, to := range partial {
		if from < 0 || from >= size || to < 0 || to >= size {
			return nil, fmt.Errorf(
				"CompletePermutation: %d -> %d is not a map on {0,...,%d}", from, to, size-1,
			)
		}
		if used[to] {
			return nil, fmt.Errorf("CompletePermutation: %d is the image of two points", to)
		}
		used[to] = true
		retVal[from] = to
	}
	for i := range retVal {
		if retVal[i] == -1 && !used[i] {
			retVal[i] = i
			used[i] = true
		}
	}
	next := 0
	for i := range retVal {
		if retVal[i] != -1 {
			continue
		}
		for used[next] {
			next++
		}
		retVal[i] = next
		used[next] = true
	}
	return retVal, nil
}

// CopyInts returns a copy of x
func CopyInts(x []int) []int {
	retVal := make([]int, len(x))
	copy(retVal, x)
	return retVal
}
