// Copyright (c) 2023 Colin McRae

package polynomial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DanielRobertNicoud/dupont-contraction/multiindex"
)

var simplexNotation = Notation{Variable: "t", Differential: "dt", Offset: 0}

func TestLaTeX(t *testing.T) {
	p := fromPairs(t, [4]int64{1, 2, 3, 1}, [4]int64{0, 0, -1, 2})
	assert.Equal(t, "-\\frac{1}{2} + 3t_{0}t_{1}^{2}", LaTeX(p, simplexNotation))

	p = fromPairs(t, [4]int64{0, 1, -1, 1}, [4]int64{1, 0, 1, 1})
	assert.Equal(t, "t_{0} - t_{1}", LaTeX(p, simplexNotation))

	p = fromPairs(t, [4]int64{2, 0, 1, 1})
	assert.Equal(t, "x_{1}^{2}", LaTeX(p, Notation{Variable: "x", Differential: "dx", Offset: 1}))

	assert.Equal(t, "0", LaTeX(Polynomial{}, simplexNotation))
}

func TestFormLaTeX(t *testing.T) {
	terms := map[multiindex.Index]Polynomial{
		multiindex.MustNew(0, 1): fromPairs(t, [4]int64{1, 0, 1, 1}, [4]int64{0, 1, 1, 1}),
		{}:                       fromPairs(t, [4]int64{0, 0, 2, 1}, [4]int64{1, 0, -1, 1}),
		multiindex.MustNew(1):    fromPairs(t, [4]int64{0, 0, -1, 1}),
	}
	assert.Equal(
		t, "2 - t_{0} - dt_{1} + \\left(t_{0} + t_{1}\\right)dt_{0}dt_{1}", FormLaTeX(terms, simplexNotation),
	)

	terms = map[multiindex.Index]Polynomial{
		multiindex.MustNew(0): fromPairs(t, [4]int64{0, 0, 1, 1}, [4]int64{0, 1, 1, 1}),
	}
	assert.Equal(t, "\\left(1 + t_{1}\\right)dt_{0}", FormLaTeX(terms, simplexNotation))

	terms = map[multiindex.Index]Polynomial{{}: fromPairs(t, [4]int64{0, 0, -1, 1})}
	assert.Equal(t, "-1", FormLaTeX(terms, simplexNotation))

	terms = map[multiindex.Index]Polynomial{multiindex.MustNew(1): fromPairs(t, [4]int64{0, 1, -1, 3})}
	assert.Equal(t, "-\\frac{1}{3}t_{1}dt_{1}", FormLaTeX(terms, simplexNotation))

	assert.Equal(t, "0", FormLaTeX(map[multiindex.Index]Polynomial{}, simplexNotation))
	assert.Equal(t, "0", FormLaTeX(map[multiindex.Index]Polynomial{{}: {}}, simplexNotation))
}
