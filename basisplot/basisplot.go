/*
 * basisplot.go, part of gbasis.
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

//Package basisplot draws profile plots of Gaussian basis functions
//along a coordinate axis, one line per Cartesian component of a shell.
package basisplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rdguerrerom/gbasis"
)

var axisnames = [3]string{"x", "y", "z"}

func basicProfilePlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())
	return p
}

// Profile plots every basis function of the shell along the given axis
// (0, 1 or 2) through the shell's center, sampling n points on
// [from, to] relative to the center, and writes the result to
// plotname.png.
func Profile(S *gbasis.Shell, axis int, from, to float64, n int, title, plotname string) error {
	return ProfileDeriv(S, [3]int{}, axis, from, to, n, title, plotname)
}

// ProfileDeriv is Profile for the given derivative of the shell's
// functions. Negative orders count as zero, as everywhere in gbasis.
func ProfileDeriv(S *gbasis.Shell, orders [3]int, axis int, from, to float64, n int, title, plotname string) error {
	if S == nil {
		panic("basisplot: given nil shell")
	}
	if axis < 0 || axis > 2 {
		return fmt.Errorf("basisplot: axis must be 0, 1 or 2, not %d", axis)
	}
	if n < 2 {
		return fmt.Errorf("basisplot: need at least 2 samples, got %d", n)
	}
	if to <= from {
		return fmt.Errorf("basisplot: empty sampling range [%g,%g]", from, to)
	}
	points := mat.NewDense(n, 3, nil)
	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		for d := 0; d < 3; d++ {
			points.Set(i, d, S.Center[d])
		}
		points.Set(i, axis, S.Center[axis]+from+float64(i)*step)
	}
	vals, err := S.EvalDeriv(points, orders)
	if err != nil {
		return err
	}
	p := basicProfilePlot(title, axisnames[axis]+" (relative to center)")
	for l := 0; l < S.NFuncs(); l++ {
		pts := make(plotter.XYs, n)
		for i := 0; i < n; i++ {
			pts[i].X = from + float64(i)*step
			pts[i].Y = vals.At(l, i)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		r, g, b := colors(l, S.NFuncs())
		line.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		p.Add(line)
		p.Legend.Add(compLabel(S.Comps[l]), line)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}

// compLabel writes an angular momentum component as, say, "x2z" for
// (2,0,1), or "s" for (0,0,0).
func compLabel(comp [3]int) string {
	if comp[0] == 0 && comp[1] == 0 && comp[2] == 0 {
		return "s"
	}
	label := ""
	for d, m := range comp {
		if m == 1 {
			label += axisnames[d]
		} else if m > 1 {
			label += fmt.Sprintf("%s%d", axisnames[d], m)
		}
	}
	return label
}

// colors spreads total hues evenly around the color wheel and returns
// the key-th one as RGB.
func colors(key, total int) (uint8, uint8, uint8) {
	const gap = 360.0
	hue := gap * float64(key) / float64(total)
	return iHVS2RGB(hue, 0.9, 0.9)
}

// takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var r, g, b float64
	c := v * s
	x := c * (1 - mod2abs(h/60.0))
	m := v - c
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return uint8(255 * (r + m)), uint8(255 * (g + m)), uint8(255 * (b + m))
}

// |(h/60 mod 2) - 1| for the HSV sector formula.
func mod2abs(h float64) float64 {
	for h >= 2 {
		h -= 2
	}
	if h < 1 {
		return 1 - h
	}
	return h - 1
}
