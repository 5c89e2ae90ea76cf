/*
 * hermite.go, part of gbasis.
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

//The n-th derivative of x^m*exp(-a*x^2) is exp(-a*x^2) times a polynomial
//in x. That polynomial is assembled here as a series in the physicists'
//Hermite polynomials H_h(sqrt(a)*x), with combinatorial coefficients.

package gbasis

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// HermVal evaluates the Hermite series sum_h c[h]*H_h(x) at x, where H_h
// is the physicists' Hermite polynomial of degree h, using the Clenshaw
// recurrence on H_{k+1}(x) = 2x*H_k(x) - 2k*H_{k-1}(x).
func HermVal(x float64, c []float64) float64 {
	if len(c) == 0 {
		return 0
	}
	var b1, b2 float64
	for k := len(c) - 1; k >= 1; k-- {
		b1, b2 = c[k]+2*x*b1-2*float64(k+1)*b2, b1
	}
	return c[0] + 2*x*b1 - 2*b2
}

// hermTermAlive is the masking predicate for the h-th term of the
// coefficient table for the n-th derivative of x^m*exp(-a*x^2).
// Terms with h>n exceed the derivative order, and terms with h<n-m
// would need more derivatives of the monomial than it survives.
// An alive term always has m-n+h>=0, so no negative power of x
// is ever evaluated.
func hermTermAlive(h, n, m int) bool {
	return h <= n && h >= n-m
}

// hermDerivCoeffs fills c (length n+1) with the Hermite-series
// coefficients, in the variable sqrt(alpha)*x, of the polynomial part of
// the n-th derivative of x^m*exp(-alpha*x^2).
// The h-th alive coefficient is C(n,h) * P(m,n-h) * (-sqrt(alpha))^h * x^(m-n+h),
// where P is the falling factorial m!/(m-(n-h))!. Masked terms are exactly zero.
func hermDerivCoeffs(c []float64, n, m int, alpha, x float64) {
	sqa := math.Sqrt(alpha)
	for h := 0; h <= n; h++ {
		if !hermTermAlive(h, n, m) {
			c[h] = 0
			continue
		}
		c[h] = float64(combin.Binomial(n, h)) *
			float64(combin.NumPermutations(m, n-h)) *
			math.Pow(-sqa, float64(h)) *
			math.Pow(x, float64(m-n+h))
	}
}

// hermDerivFactor returns the n-th derivative of x^m*exp(-alpha*x^2)
// divided by the Gaussian factor exp(-alpha*x^2), i.e. the polynomial
// part of the derivative, evaluated at x. n must be >=1 and m>=0.
func hermDerivFactor(n, m int, alpha, x float64) float64 {
	c := make([]float64, n+1)
	hermDerivCoeffs(c, n, m, alpha, x)
	return HermVal(math.Sqrt(alpha)*x, c)
}
