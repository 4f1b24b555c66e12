// Copyright (c) 2023 Colin McRae

package main

import (
	"fmt"
	"sort"

	"github.com/DanielRobertNicoud/dupont-contraction/bigmatrix"
	"github.com/DanielRobertNicoud/dupont-contraction/cubical"
	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
	"github.com/DanielRobertNicoud/dupont-contraction/operad"
	"github.com/DanielRobertNicoud/dupont-contraction/simplicial"
)

// formValue is a Dupont form as read from flags or a worksheet: its
// dimension and the terms accepted by NewDupontForm.
type formValue struct {
	dim   int
	terms map[string]any
}

// geometry runs the commands on one family of forms.
type geometry interface {
	productTable(n int, opts ...operad.Option) ([]string, [][]string, error)
	evaluate(op string, forms []formValue, opts ...operad.Option) (string, error)
	matrixTable(n, k int) ([]string, [][]string, string, error)
}

// algebra adapts the package functions of a contraction to geometry.
type algebra[D operad.Dupont[D, S], S operad.Sullivan[S, D]] struct {
	newForm       func(n int, terms map[string]any) (D, error)
	basisOfDegree func(n, k int) ([]D, error)
	matrix        func(n, k int) (*bigmatrix.BigMatrix, error)
	d             func(D) D
}

var geometries = map[string]geometry{
	"simplicial": &algebra[*simplicial.DupontForm, *simplicial.SullivanForm]{
		newForm:       simplicial.NewDupontForm,
		basisOfDegree: simplicial.BasisOfDegree,
		matrix:        simplicial.DifferentialMatrix,
		d:             (*simplicial.DupontForm).D,
	},
	"cubical": &algebra[*cubical.DupontForm, *cubical.SullivanForm]{
		newForm:       cubical.NewDupontForm,
		basisOfDegree: cubical.BasisOfDegree,
		matrix:        cubical.DifferentialMatrix,
		d:             (*cubical.DupontForm).D,
	},
}

func lookupGeometry(name string) (geometry, error) {
	g, ok := geometries[name]
	if !ok {
		names := make([]string, 0, len(geometries))
		for known := range geometries {
			names = append(names, known)
		}
		sort.Strings(names)
		return nil, formerr.InvalidArgumentType("lookupGeometry", "unknown geometry %q, expected one of %v", name, names)
	}
	return g, nil
}

func (a *algebra[D, S]) basis(n int) ([]D, error) {
	var retVal []D
	for k := 0; k <= n; k++ {
		forms, err := a.basisOfDegree(n, k)
		if err != nil {
			return nil, err
		}
		retVal = append(retVal, forms...)
	}
	return retVal, nil
}

// productTable returns the binary products of all pairs of basis forms.
func (a *algebra[D, S]) productTable(n int, opts ...operad.Option) ([]string, [][]string, error) {
	basis, err := a.basis(n)
	if err != nil {
		return nil, nil, err
	}
	headers := []string{"l2"}
	for _, form := range basis {
		headers = append(headers, form.String())
	}
	rows := make([][]string, len(basis))
	for i, x := range basis {
		rows[i] = []string{x.String()}
		for _, y := range basis {
			product, err := operad.AInfinityProduct[D, S]([]D{x, y}, opts...)
			if err != nil {
				return nil, nil, err
			}
			rows[i] = append(rows[i], product.String())
		}
	}
	return headers, rows, nil
}

// evaluate applies op to forms: "ainfinity" is the transferred product of
// all of them, "d" the differential and "i" the inclusion of a single form.
func (a *algebra[D, S]) evaluate(op string, forms []formValue, opts ...operad.Option) (string, error) {
	const caller = "evaluate"
	args := make([]D, len(forms))
	for i, form := range forms {
		x, err := a.newForm(form.dim, form.terms)
		if err != nil {
			return "", err
		}
		args[i] = x
	}
	switch op {
	case "ainfinity":
		product, err := operad.AInfinityProduct[D, S](args, opts...)
		if err != nil {
			return "", err
		}
		return product.String(), nil
	case "d", "i":
		if len(args) != 1 {
			return "", formerr.InvalidArgumentType(caller, "%s takes one form, got %d", op, len(args))
		}
		if op == "d" {
			return a.d(args[0]).String(), nil
		}
		return fmt.Sprint(args[0].I()), nil
	}
	return "", formerr.UnsupportedOperation(caller, "operation %q", op)
}

// matrixTable returns the differential from degree k to k+1 with basis
// forms as row and column labels, followed by a summary line from
// matrixSummary.
func (a *algebra[D, S]) matrixTable(n, k int) ([]string, [][]string, string, error) {
	m, err := a.matrix(n, k)
	if err != nil {
		return nil, nil, "", err
	}
	sources, err := a.basisOfDegree(n, k)
	if err != nil {
		return nil, nil, "", err
	}
	targets, err := a.basisOfDegree(n, k+1)
	if err != nil {
		return nil, nil, "", err
	}
	summary, err := a.matrixSummary(n, k, len(sources), m)
	if err != nil {
		return nil, nil, "", err
	}
	headers := []string{"d"}
	for _, source := range sources {
		headers = append(headers, source.String())
	}
	rows := make([][]string, len(targets))
	for i, target := range targets {
		rows[i] = []string{target.String()}
		for j := range sources {
			entry, err := m.Get(i, j)
			if err != nil {
				return nil, nil, "", err
			}
			rows[i] = append(rows[i], entry.RatString())
		}
	}
	return headers, rows, summary, nil
}

// matrixSummary checks that d_{k+1} d_k vanishes and reports the rank of d_k
// and the dimension of the cohomology in degree k, numSources - rank d_k -
// rank d_{k-1}.
func (a *algebra[D, S]) matrixSummary(n, k, numSources int, dk *bigmatrix.BigMatrix) (string, error) {
	const caller = "matrixSummary"
	if k+1 < n {
		next, err := a.matrix(n, k+1)
		if err != nil {
			return "", err
		}
		composite, err := bigmatrix.NewEmpty(0, 0).Mul(next, dk)
		if err != nil {
			return "", err
		}
		if !composite.IsZero() {
			return "", formerr.InvalidForm(caller, "d_%d d_%d does not vanish", k+1, k)
		}
	}
	rank, previous := dk.Rank(), 0
	if k > 0 {
		prev, err := a.matrix(n, k-1)
		if err != nil {
			return "", err
		}
		previous = prev.Rank()
	}
	return fmt.Sprintf("rank %d, cohomology of degree %d has dimension %d", rank, k, numSources-rank-previous), nil
}
