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

//Package grid evaluates sets of Gaussian shells over rectilinear
//real-space grids, and caches the resulting scalar fields on disk in
//gdf, a simple compressed text format.

/******************** gdf format  **************************************

A gdf file may only contain ASCII symbols. Its extension selects the
compression: .gdf or .gdfs for z-standard, .gdfz for gzip, .gdfr for
flate and .gdfl for LZW. Anything else is read and written as
z-standard.

The file has a header of key=value lines, terminated by a line starting
with "**" followed by whitespace and the number of grid points per
field. Implementations are free to put grid metadata (origin, step,
shape) in the header; this package writes them under the keys "origin",
"step" and "shape" when the writer is built from a Grid.

After the header the file holds zero or more fields. A field is one
number per line, in Go's %g formatting, with as many lines as grid
points, followed by a terminating line holding a single "*". The "**"
sequence may only appear as the header terminator.

***********************************************************************/

package grid
