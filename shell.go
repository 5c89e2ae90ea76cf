/*
 * shell.go, part of gbasis.
 *
 * Copyright 2023 Ruben D. Guerrero
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package gbasis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Shell is a contracted set of Cartesian Gaussian primitives sharing one
// center, one set of angular momentum components, and one set of
// exponents/contraction coefficients. It is the unit handed to this
// library by basis-set parsers and consumed by integral and grid codes.
// Exponents are linear, i.e. the a in exp(-a*r^2), and no normalization
// is applied: coefficients are used exactly as given.
type Shell struct {
	Center [3]float64
	Comps  [][3]int  //Cartesian angular momentum components (mx,my,mz), one per basis function
	Exps   []float64 //primitive exponents, a in exp(-a*r^2)
	Coeffs []float64 //contraction coefficients, one per primitive
}

// NewShell builds a Shell after checking shapes: at least one component
// and one primitive, as many coefficients as exponents, and non-negative
// angular momentum components.
func NewShell(center [3]float64, comps [][3]int, exps, coeffs []float64) (*Shell, error) {
	if len(comps) == 0 {
		return nil, Error{"gbasis: a shell needs at least one angular momentum component", []string{"NewShell"}, true}
	}
	for _, comp := range comps {
		for _, m := range comp {
			if m < 0 {
				return nil, Error{ErrNegativeAngMom.Error(), []string{"NewShell"}, true}
			}
		}
	}
	if len(exps) == 0 {
		return nil, Error{"gbasis: a shell needs at least one primitive", []string{"NewShell"}, true}
	}
	if len(exps) != len(coeffs) {
		return nil, Error{fmt.Sprintf("gbasis: %d exponents but %d contraction coefficients", len(exps), len(coeffs)), []string{"NewShell"}, true}
	}
	return &Shell{Center: center, Comps: comps, Exps: exps, Coeffs: coeffs}, nil
}

// NewCartShell builds a Shell carrying every Cartesian component of the
// given total angular momentum (so 1 function for s, 3 for p, 6 for d...).
func NewCartShell(angmom int, center [3]float64, exps, coeffs []float64) (*Shell, error) {
	if angmom < 0 {
		return nil, Error{"gbasis: total angular momentum must be non-negative", []string{"NewCartShell"}, true}
	}
	S, err := NewShell(center, CartComps(angmom), exps, coeffs)
	if err != nil {
		return nil, errDecorate(err, "NewCartShell")
	}
	return S, nil
}

// NFuncs returns the number of basis functions in the shell, i.e. the
// number of Cartesian angular momentum components.
func (S *Shell) NFuncs() int {
	return len(S.Comps)
}

// NPrims returns the number of primitives in the contraction.
func (S *Shell) NPrims() int {
	return len(S.Exps)
}

// AngMom returns the total angular momentum of the first component of
// the shell. For shells built with NewCartShell all components share it.
func (S *Shell) AngMom() int {
	if len(S.Comps) == 0 {
		return 0
	}
	c := S.Comps[0]
	return c[0] + c[1] + c[2]
}

// Eval evaluates every basis function of the shell at every point
// (one point per row). The returned matrix is NFuncs()×N.
func (S *Shell) Eval(points *mat.Dense) (*mat.Dense, error) {
	ret, err := EvalContraction(points, S.Center, S.Comps, S.Exps, S.Coeffs)
	if err != nil {
		return nil, errDecorate(err, "Shell.Eval")
	}
	return ret, nil
}

// EvalDeriv evaluates the given partial derivative of every basis
// function of the shell at every point. Negative orders count as zero.
func (S *Shell) EvalDeriv(points *mat.Dense, orders [3]int) (*mat.Dense, error) {
	ret, err := EvalDerivContraction(points, orders, S.Center, S.Comps, S.Exps, S.Coeffs)
	if err != nil {
		return nil, errDecorate(err, "Shell.EvalDeriv")
	}
	return ret, nil
}

// CartComps returns the (angmom+1)(angmom+2)/2 Cartesian components for
// the given total angular momentum, ordered with the x power descending
// and, within equal x powers, the y power descending. So a p shell gives
// (1,0,0),(0,1,0),(0,0,1) and a d shell
// (2,0,0),(1,1,0),(1,0,1),(0,2,0),(0,1,1),(0,0,2).
// It panics on negative angular momentum.
func CartComps(angmom int) [][3]int {
	if angmom < 0 {
		panic(ErrNegativeAngMom)
	}
	ret := make([][3]int, 0, (angmom+1)*(angmom+2)/2)
	for x := angmom; x >= 0; x-- {
		for y := angmom - x; y >= 0; y-- {
			ret = append(ret, [3]int{x, y, angmom - x - y})
		}
	}
	return ret
}
