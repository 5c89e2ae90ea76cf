/*
 * deriv.go, part of gbasis.
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

//Evaluation of derivatives of Cartesian Gaussian contractions.
//
//A contracted function is sum_k coeffs[k] * x^mx*y^my*z^mz * exp(-alphas[k]*r^2),
//with r relative to the center, one term per primitive. Its partial
//derivative of order (nx,ny,nz) separates into one factor per dimension.
//For a dimension with order n<=0 the factor is the plain monomial times
//the 1-D Gaussian. For n>0 it is exp(-a*x^2) times a polynomial in x,
//which is evaluated as a Hermite series (see hermite.go).

package gbasis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// EvalDerivContraction evaluates the (orders[0], orders[1], orders[2])
// partial derivative of a Cartesian Gaussian contraction at every point.
// points has one point per row (N×3). Negative derivative orders are
// treated as zero orders. comps holds the L angular momentum components
// (mx,my,mz) sharing this contraction, and alphas and coeffs the K
// primitive exponents and contraction coefficients. alphas are the linear
// exponents a in exp(-a*x^2), not their square roots.
// The returned matrix is L×N: one row per angular momentum component,
// one column per point.
func EvalDerivContraction(points *mat.Dense, orders [3]int, center [3]float64, comps [][3]int, alphas, coeffs []float64) (*mat.Dense, error) {
	if points == nil {
		return nil, Error{ErrNilPoints.Error(), []string{"EvalDerivContraction"}, true}
	}
	npoints, c := points.Dims()
	if c != 3 {
		return nil, Error{fmt.Sprintf("gbasis: points matrix has %d columns, need 3", c), []string{"EvalDerivContraction"}, true}
	}
	if len(alphas) == 0 {
		return nil, Error{"gbasis: no primitive exponents given", []string{"EvalDerivContraction"}, true}
	}
	if len(alphas) != len(coeffs) {
		return nil, Error{fmt.Sprintf("gbasis: %d exponents but %d contraction coefficients", len(alphas), len(coeffs)), []string{"EvalDerivContraction"}, true}
	}
	if len(comps) == 0 {
		return nil, Error{"gbasis: no angular momentum components given", []string{"EvalDerivContraction"}, true}
	}
	for _, comp := range comps {
		for _, m := range comp {
			if m < 0 {
				return nil, Error{ErrNegativeAngMom.Error(), []string{"EvalDerivContraction"}, true}
			}
		}
	}
	//orders arrives by value, so clamping negatives here doesn't touch the caller's array.
	maxn := 0
	for d, n := range orders {
		if n < 0 {
			orders[d] = 0
		}
		if orders[d] > maxn {
			maxn = orders[d]
		}
	}
	hcoeffs := make([]float64, maxn+1) //scratch for the Hermite coefficient tables
	ret := mat.NewDense(len(comps), npoints, nil)
	var rel, gauss [3]float64
	for p := 0; p < npoints; p++ {
		for d := 0; d < 3; d++ {
			rel[d] = points.At(p, d) - center[d]
		}
		for k, a := range alphas {
			for d := 0; d < 3; d++ {
				gauss[d] = math.Exp(-a * rel[d] * rel[d])
			}
			for l, comp := range comps {
				v := coeffs[k]
				for d := 0; d < 3; d++ {
					if n := orders[d]; n > 0 {
						hc := hcoeffs[:n+1]
						hermDerivCoeffs(hc, n, comp[d], a, rel[d])
						v *= HermVal(math.Sqrt(a)*rel[d], hc) * gauss[d]
					} else {
						//math.Pow gives the wanted 0^0=1 for s-type components.
						v *= math.Pow(rel[d], float64(comp[d])) * gauss[d]
					}
				}
				ret.Set(l, p, ret.At(l, p)+v)
			}
		}
	}
	return ret, nil
}

// EvalContraction evaluates a Cartesian Gaussian contraction, without
// derivatization, at every point (one point per row of points).
// It is the zero-order case of EvalDerivContraction and returns the
// same L×N layout.
func EvalContraction(points *mat.Dense, center [3]float64, comps [][3]int, alphas, coeffs []float64) (*mat.Dense, error) {
	ret, err := EvalDerivContraction(points, [3]int{}, center, comps, alphas, coeffs)
	if err != nil {
		return nil, errDecorate(err, "EvalContraction")
	}
	return ret, nil
}

// EvalDerivPrim evaluates the (orders[0], orders[1], orders[2]) partial
// derivative of a single unnormalized Gaussian primitive at one point.
// It panics on negative angular momentum components: a primitive is a
// fundamental object and a malformed one means the caller is broken.
func EvalDerivPrim(point [3]float64, orders [3]int, center [3]float64, comp [3]int, alpha float64) float64 {
	points := mat.NewDense(1, 3, []float64{point[0], point[1], point[2]})
	ret, err := EvalDerivContraction(points, orders, center, [][3]int{comp}, []float64{alpha}, []float64{1})
	if err != nil {
		panic(err.Error())
	}
	return ret.At(0, 0)
}

// EvalPrim evaluates a single unnormalized Gaussian primitive at one point.
func EvalPrim(point [3]float64, center [3]float64, comp [3]int, alpha float64) float64 {
	return EvalDerivPrim(point, [3]int{}, center, comp, alpha)
}
