/*
 * primitive.go, part of spglib.
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
 */

package spglib

import (
	"math"

	"github.com/AlbertDeFusco/spglib/m3"
	"github.com/AlbertDeFusco/spglib/niggli"
)

//FindPrimitive returns the primitive cell of c, with the lattice brought
//to Niggli-reduced form. A cell that is already primitive comes back
//with the same volume (the basis may still change by the reduction).
func FindPrimitive(c *Cell, tol Tolerance) (*Cell, error) {
	ops, err := FindSymmetry(c, tol)
	if err != nil {
		return nil, errDecorate(err, "FindPrimitive")
	}
	prim, _, err := extractPrimitive(c, ops, tol)
	if err != nil {
		return nil, errDecorate(err, "FindPrimitive")
	}
	return prim, nil
}

//extractPrimitive builds the primitive cell from the pure translations
//among the symmetry operations. It also returns the real matrix V with
//L_prim = V . L_input, which identification uses to carry coordinates
//between the two settings. The returned lattice is Niggli reduced.
func extractPrimitive(c *Cell, ops []Operation, tol Tolerance) (*Cell, m3.Matrix, error) {
	ident := m3.IIdent()
	trans := [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, op := range ops {
		if op.Rotation == ident && !op.TimeReversal && !op.IsIdentity(tol.Symprec) {
			trans = append(trans, op.Translation)
		}
	}
	v, err := smallestBasis(trans, c.Lattice, tol)
	if err != nil {
		return nil, m3.Matrix{}, err
	}
	primLat := m3.Mul(v, c.Lattice)
	red, t, err := niggli.Reduce(primLat, tol.Symprec)
	if err != nil {
		return nil, m3.Matrix{}, err
	}
	v = m3.Mul(m3.IToF(t), v)
	//move atoms into the primitive basis and fold duplicates
	vinv, err := m3.Inverse(v)
	if err != nil {
		return nil, m3.Matrix{}, errDecorate(err, "extractPrimitive")
	}
	q := m3.Transpose(vinv)
	prim := &Cell{Lattice: red}
	for i, x := range c.Positions {
		px := m3.Wrap(m3.MulV(q, x), fracEps(red, tol))
		dup := false
		for j, y := range prim.Positions {
			if prim.Types[j] == c.Types[i] && cellDistance(red, px, y) <= tol.Symprec {
				dup = true
				break
			}
		}
		if !dup {
			prim.Positions = append(prim.Positions, px)
			prim.Types = append(prim.Types, c.Types[i])
			if c.Spins != nil {
				prim.Spins = append(prim.Spins, c.Spins[i])
			}
		}
	}
	ratio := math.Abs(m3.Det(v))
	want := int(math.Round(float64(c.Len()) * ratio))
	if want != prim.Len() {
		return nil, m3.Matrix{}, cerr(ErrInvalidInput, "extractPrimitive: atom count does not divide by the translation lattice")
	}
	return prim, v, nil
}

//smallestBasis picks, from the candidate translations plus the current
//basis vectors, the triple with the smallest non-zero volume. The result
//rows express the primitive basis in the input fractional coordinates.
func smallestBasis(trans [][3]float64, lattice m3.Matrix, tol Tolerance) (m3.Matrix, error) {
	n := len(trans)
	best := m3.Matrix{}
	bestVol := math.Inf(1)
	for i := 1; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				m := m3.Matrix{trans[i], trans[j], trans[k]}
				vol := math.Abs(m3.Det(m))
				if vol > tol.Symprec*tol.Symprec && vol < bestVol-1e-10 {
					bestVol = vol
					best = m
				}
			}
		}
	}
	if math.IsInf(bestVol, 1) {
		return m3.Matrix{}, cerr(ErrInvalidInput, "smallestBasis: no independent translations")
	}
	return best, nil
}

//fracEps converts the cartesian symprec into a fractional tolerance for
//the given lattice.
func fracEps(lattice m3.Matrix, tol Tolerance) float64 {
	v := math.Abs(m3.Det(lattice))
	if v <= 0 {
		return tol.Symprec
	}
	return tol.Symprec / math.Cbrt(v)
}

//cellDistance is the shortest periodic cartesian distance between two
//fractional positions in the given lattice.
func cellDistance(lattice m3.Matrix, a, b [3]float64) float64 {
	d := m3.ShortestImage([3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]})
	cart := m3.Cartesian(lattice, d)
	return m3.Norm(cart)
}
