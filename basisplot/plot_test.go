/*
 * plot_test.go, part of gbasis.
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

package basisplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rdguerrerom/gbasis"
)

// TestProfile plots a p shell and the x derivative of its functions.
func TestProfile(Te *testing.T) {
	S, err := gbasis.NewCartShell(1, [3]float64{0, 0, 0}, []float64{0.5, 2.0}, []float64{0.7, 0.3})
	if err != nil {
		Te.Error(err)
	}
	dir := Te.TempDir()
	name := filepath.Join(dir, "pshell")
	err = Profile(S, 0, -3, 3, 200, "p shell profile", name)
	if err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error("no png written:", err)
	}
	err = ProfileDeriv(S, [3]int{1, 0, 0}, 0, -3, 3, 200, "d/dx of p shell", filepath.Join(dir, "pshellderiv"))
	if err != nil {
		Te.Error(err)
	}
	//the failing inputs
	if err := Profile(S, 4, -3, 3, 200, "", filepath.Join(dir, "bad")); err == nil {
		Te.Error("axis 4 did not fail")
	}
	if err := Profile(S, 0, 3, -3, 200, "", filepath.Join(dir, "bad")); err == nil {
		Te.Error("empty range did not fail")
	}
	if err := Profile(S, 0, -3, 3, 1, "", filepath.Join(dir, "bad")); err == nil {
		Te.Error("single sample did not fail")
	}
}

func TestCompLabel(Te *testing.T) {
	cases := map[[3]int]string{
		{0, 0, 0}: "s",
		{1, 0, 0}: "x",
		{2, 0, 1}: "x2z",
		{0, 1, 1}: "yz",
	}
	for comp, want := range cases {
		if got := compLabel(comp); got != want {
			Te.Errorf("compLabel(%v) = %s, want %s", comp, got, want)
		}
	}
}
