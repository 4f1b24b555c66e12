// Copyright (c) 2023 Colin McRae

// Package bigmatrix holds the matrices of linear operators on Dupont forms,
// with exact rational entries, written in a basis of those forms.
package bigmatrix

import (
	"fmt"
	"math/big"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
)

// BigMatrix is a dense row-major matrix of rationals. A matrix with no rows
// or no columns is stored as 0 x 0.
type BigMatrix struct {
	values  []*big.Rat
	numRows int
	numCols int
}

// NewEmpty returns a numRows x numCols matrix with 0s in each value. Negative numRows
// or numCols is interpreted as 0, and a 0 x n or n x 0 matrix is interpreted as 0 x 0.
func NewEmpty(numRows int, numCols int) *BigMatrix {
	if numRows <= 0 || numCols <= 0 {
		return &BigMatrix{}
	}
	retVal := &BigMatrix{
		values:  make([]*big.Rat, numRows*numCols),
		numRows: numRows,
		numCols: numCols,
	}
	for i := range retVal.values {
		retVal.values[i] = new(big.Rat)
	}
	return retVal
}

// Mul replaces the contents of bm with the matrix xy and returns bm. x and y
// may alias bm. If the columns of x do not match the rows of y, an error
// wrapping formerr.ErrDimensionMismatch is returned.
func (bm *BigMatrix) Mul(x *BigMatrix, y *BigMatrix) (*BigMatrix, error) {
	if x.numCols != y.numRows {
		return nil, formerr.DimensionMismatch("BigMatrix.Mul", x.numCols, y.numRows)
	}
	product := NewEmpty(x.numRows, y.numCols)
	term := new(big.Rat)
	for i := 0; i < product.numRows; i++ {
		for k := 0; k < x.numCols; k++ {
			xEntry := x.values[i*x.numCols+k]
			if xEntry.Sign() == 0 {
				continue
			}
			for j := 0; j < product.numCols; j++ {
				yEntry := y.values[k*y.numCols+j]
				if yEntry.Sign() == 0 {
					continue
				}
				entry := product.values[i*product.numCols+j]
				entry.Add(entry, term.Mul(xEntry, yEntry))
			}
		}
	}
	*bm = *product
	return bm, nil
}

// Set sets the value in row i, column j to x. This is a deep
// copy.
func (bm *BigMatrix) Set(i int, j int, x *big.Rat) error {
	if err := bm.checkIndices("BigMatrix.Set", i, j); err != nil {
		return err
	}
	bm.values[i*bm.numCols+j].Set(x)
	return nil
}

// Get returns the pointer to the value in row i, column j of bm.
// This is not a deep copy.
func (bm *BigMatrix) Get(i int, j int) (*big.Rat, error) {
	if err := bm.checkIndices("BigMatrix.Get", i, j); err != nil {
		return nil, err
	}
	return bm.values[i*bm.numCols+j], nil
}

func (bm *BigMatrix) checkIndices(caller string, i, j int) error {
	if i < 0 || bm.numRows <= i {
		return fmt.Errorf("%s: row %d outside range {0, ... %d}", caller, i, bm.numRows-1)
	}
	if j < 0 || bm.numCols <= j {
		return fmt.Errorf("%s: column %d outside range {0, ... %d}", caller, j, bm.numCols-1)
	}
	return nil
}

// IsZero reports whether every entry of bm is 0
func (bm *BigMatrix) IsZero() bool {
	for _, value := range bm.values {
		if value.Sign() != 0 {
			return false
		}
	}
	return true
}

// Rank returns the rank of bm by exact row reduction of a copy of bm.
func (bm *BigMatrix) Rank() int {
	rows := make([][]*big.Rat, bm.numRows)
	for i := range rows {
		rows[i] = make([]*big.Rat, bm.numCols)
		for j := range rows[i] {
			rows[i][j] = new(big.Rat).Set(bm.values[i*bm.numCols+j])
		}
	}
	rank := 0
	factor, term := new(big.Rat), new(big.Rat)
	for col := 0; col < bm.numCols && rank < bm.numRows; col++ {
		pivot := rank
		for pivot < bm.numRows && rows[pivot][col].Sign() == 0 {
			pivot++
		}
		if pivot == bm.numRows {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for _, row := range rows[rank+1:] {
			if row[col].Sign() == 0 {
				continue
			}
			factor.Quo(row[col], rows[rank][col])
			for j := col; j < bm.numCols; j++ {
				row[j].Sub(row[j], term.Mul(factor, rows[rank][j]))
			}
		}
		rank++
	}
	return rank
}

// NumRows returns the number of rows in bm
func (bm *BigMatrix) NumRows() int {
	return bm.numRows
}

// NumCols returns the number of columns in bm
func (bm *BigMatrix) NumCols() int {
	return bm.numCols
}
