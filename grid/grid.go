package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rdguerrerom/gbasis"
)

// Grid is a rectilinear grid of points in 3-space: Shape[d] points along
// dimension d, starting at Origin and spaced by Step[d]. The point order
// follows the cube-file convention: the z index runs fastest, then y,
// then x.
type Grid struct {
	Origin [3]float64
	Step   [3]float64
	Shape  [3]int
}

// Centered returns a cubic grid of n points per side and the given total
// side length, centered on center.
func Centered(center [3]float64, side float64, n int) Grid {
	var G Grid
	G.Shape = [3]int{n, n, n}
	step := 0.0
	if n > 1 {
		step = side / float64(n-1)
	}
	for d := 0; d < 3; d++ {
		G.Step[d] = step
		G.Origin[d] = center[d] - side/2
	}
	if n == 1 {
		G.Origin = center
	}
	return G
}

// Check returns an error if the grid has a non-positive number of points
// along some dimension.
func (G Grid) Check() error {
	for d := 0; d < 3; d++ {
		if G.Shape[d] <= 0 {
			return Error{fmt.Sprintf("grid has %d points along dimension %d", G.Shape[d], d), "", []string{"Grid.Check"}, true}
		}
	}
	return nil
}

// NPoints returns the total number of points in the grid.
func (G Grid) NPoints() int {
	return G.Shape[0] * G.Shape[1] * G.Shape[2]
}

// Points returns the grid points as an NPoints()×3 matrix, one point per
// row, z index fastest.
func (G Grid) Points() *mat.Dense {
	ret := mat.NewDense(G.NPoints(), 3, nil)
	p := 0
	for i := 0; i < G.Shape[0]; i++ {
		for j := 0; j < G.Shape[1]; j++ {
			for k := 0; k < G.Shape[2]; k++ {
				ret.Set(p, 0, G.Origin[0]+float64(i)*G.Step[0])
				ret.Set(p, 1, G.Origin[1]+float64(j)*G.Step[1])
				ret.Set(p, 2, G.Origin[2]+float64(k)*G.Step[2])
				p++
			}
		}
	}
	return ret
}

// NFuncs returns the total number of basis functions in a set of shells.
func NFuncs(shells []*gbasis.Shell) int {
	n := 0
	for _, S := range shells {
		n += S.NFuncs()
	}
	return n
}

// Eval evaluates every basis function of every shell at every point of
// the grid. The returned matrix has one row per basis function, with the
// shells stacked in the given order, and one column per grid point.
func Eval(G Grid, shells []*gbasis.Shell) (*mat.Dense, error) {
	ret, err := EvalDeriv(G, [3]int{}, shells)
	if err != nil {
		return nil, errDecorate(err, "Eval")
	}
	return ret, nil
}

// EvalDeriv is Eval for the given derivative orders (negative orders
// count as zero, as in the root package).
func EvalDeriv(G Grid, orders [3]int, shells []*gbasis.Shell) (*mat.Dense, error) {
	if err := G.Check(); err != nil {
		return nil, errDecorate(err, "EvalDeriv")
	}
	if len(shells) == 0 {
		return nil, Error{"no shells given", "", []string{"EvalDeriv"}, true}
	}
	points := G.Points()
	ret := mat.NewDense(NFuncs(shells), G.NPoints(), nil)
	row := 0 //row offset of the current shell's block, as in shell-blocked integral code
	for i, S := range shells {
		vals, err := S.EvalDeriv(points, orders)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("EvalDeriv: shell %d", i))
		}
		for l := 0; l < S.NFuncs(); l++ {
			for p := 0; p < G.NPoints(); p++ {
				ret.Set(row+l, p, vals.At(l, p))
			}
		}
		row += S.NFuncs()
	}
	return ret, nil
}
