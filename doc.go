/*
 * doc.go, part of gbasis.
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

/*Package gbasis evaluates contracted Gaussian-type orbital basis functions,
and arbitrary-order partial derivatives thereof, at points in real space.

	**gbasis capabilities**

    Evaluates a Cartesian Gaussian primitive, or a contraction of primitives,
	at one point or at many points simultaneously.

    Evaluates arbitrary-order partial derivatives (independent orders in
	x, y and z) of primitives and contractions, via the Hermite-polynomial
	expansion of Gaussian derivatives.

    Generates the full set of Cartesian angular momentum components for a
	given total angular momentum.

    Bundles centers, components, exponents and contraction coefficients
	into Shell objects for use by integral and grid codes.

The subpackage grid evaluates whole sets of shells over rectilinear
real-space grids and caches the resulting fields in a compressed format.
The subpackage basisplot produces profile plots of basis functions.

gbasis operates purely in the Cartesian component representation. Parsing
of basis-set definition files, normalization conventions, transformation
to spherical harmonics and assembly of integral matrices belong to the
programs calling this library.

Points are handled as gonum mat.Dense matrices with one point per row,
so a set of N points is an N×3 matrix. This is the same rows-are-vectors
convention used by goChem.
*/
package gbasis
