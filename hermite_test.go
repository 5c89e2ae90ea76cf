/*
 * hermite_test.go, part of gbasis.
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
	"math"
	"testing"
)

// TestHermVal compares the Clenshaw evaluation against the explicit
// physicists' Hermite polynomials up to degree 4:
// H0=1, H1=2x, H2=4x^2-2, H3=8x^3-12x, H4=16x^4-48x^2+12.
func TestHermVal(Te *testing.T) {
	hs := []func(x float64) float64{
		func(x float64) float64 { return 1 },
		func(x float64) float64 { return 2 * x },
		func(x float64) float64 { return 4*x*x - 2 },
		func(x float64) float64 { return 8*x*x*x - 12*x },
		func(x float64) float64 { return 16*math.Pow(x, 4) - 48*x*x + 12 },
	}
	for deg, h := range hs {
		c := make([]float64, deg+1)
		c[deg] = 1
		for _, x := range []float64{-2.3, -0.5, 0, 0.17, 1, 3.4} {
			got := HermVal(x, c)
			if math.Abs(got-h(x)) > 1e-10*math.Max(1, math.Abs(h(x))) {
				Te.Errorf("H%d(%v): got %v, want %v", deg, x, got, h(x))
			}
		}
	}
	//a mixed series, and the empty one
	c := []float64{0.3, -1.2, 0.08}
	x := 0.9
	want := 0.3*hs[0](x) - 1.2*hs[1](x) + 0.08*hs[2](x)
	if got := HermVal(x, c); math.Abs(got-want) > 1e-12 {
		Te.Errorf("mixed series: got %v, want %v", got, want)
	}
	if HermVal(1.0, nil) != 0 {
		Te.Error("empty coefficient vector should evaluate to 0")
	}
}

// TestHermMask checks the term-masking predicate against the two rules:
// no term beyond the derivative order, no term before the monomial is
// exhausted.
func TestHermMask(Te *testing.T) {
	cases := []struct {
		h, n, m int
		alive   bool
	}{
		{0, 1, 0, false}, //h < n-m
		{1, 1, 0, true},
		{0, 1, 1, true},
		{2, 1, 1, false}, //h > n
		{0, 3, 1, false},
		{2, 3, 1, true},
		{5, 4, 10, false},
		{0, 4, 10, true},
	}
	for _, c := range cases {
		if hermTermAlive(c.h, c.n, c.m) != c.alive {
			Te.Errorf("hermTermAlive(%d,%d,%d) != %v", c.h, c.n, c.m, c.alive)
		}
		if c.alive && c.m-c.n+c.h < 0 {
			Te.Errorf("alive term (%d,%d,%d) has negative monomial power", c.h, c.n, c.m)
		}
	}
}

// TestHermDerivFactor checks the full polynomial factor of the analytic
// derivatives of x^m*exp(-a*x^2) for the low cases worked out by hand:
// n=1,m=0 gives -2ax and n=1,m=1 gives 1-2ax^2, and
// n=2,m=0 gives 4a^2x^2-2a.
func TestHermDerivFactor(Te *testing.T) {
	a := 1.4
	for _, x := range []float64{-1.2, 0, 0.35, 2.0} {
		if got, want := hermDerivFactor(1, 0, a, x), -2*a*x; math.Abs(got-want) > 1e-12 {
			Te.Errorf("n=1 m=0 x=%v: got %v, want %v", x, got, want)
		}
		if got, want := hermDerivFactor(1, 1, a, x), 1-2*a*x*x; math.Abs(got-want) > 1e-12 {
			Te.Errorf("n=1 m=1 x=%v: got %v, want %v", x, got, want)
		}
		if got, want := hermDerivFactor(2, 0, a, x), 4*a*a*x*x-2*a; math.Abs(got-want) > 1e-11 {
			Te.Errorf("n=2 m=0 x=%v: got %v, want %v", x, got, want)
		}
	}
}
