/*
 * doc.go, part of spglib.
 *
 * Copyright 2015 Albert DeFusco
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

/*Package spglib detects and handles the symmetry of periodic crystal
structures. Given a cell (lattice, fractional atomic positions, atom
types and optionally collinear spins) and a distance tolerance, it finds
the symmetry operations, classifies the structure into one of the 230
space groups, and derives standard settings from that classification.


	**Capabilities**

    Finds the space-group operations of a cell, rotations plus
	translations in the fractional basis, including the time-reversal
	operations of collinear magnetic cells.

    Identifies the space group, returning international and Hall
	symbols, the transformation to the conventional basis, the origin
	shift, Wyckoff letters and symmetry-equivalent atoms.

    Classifies rotation sets into the 32 crystallographic point groups.

    Extracts primitive cells and rebuilds idealized conventional cells.

    Reduces lattices to Niggli form (subpackage niggli).

    Reduces regular reciprocal-space meshes to irreducible k-points and
	builds momentum-conserving triplets (subpackage kmesh).

All tolerances are cartesian distances in the unit of the lattice; the
default symprec of 1e-5 suits idealized structures, relaxed ones may
need 1e-3 or looser. When an identification fails at the requested
tolerance the library retries with slightly loosened tolerances before
reporting ErrToleranceExhausted.

The subpackage m3 carries the small fixed-size matrix arithmetic the
engine runs on; gonum handles everything dense and real-valued behind
it.
*/
package spglib
