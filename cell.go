/*
 * cell.go, part of spglib.
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
)

//Cell is a periodic atomic structure: a lattice whose rows are the basis
//vectors, fractional atomic positions, parallel integer species labels
//and, optionally, parallel collinear magnetic moments. A Cell passed to
//the engine is never mutated; operations that produce a different cell
//return a fresh one.
type Cell struct {
	Lattice   m3.Matrix
	Positions []m3.Vector
	Types     []int
	Spins     []float64 //nil for a non-magnetic structure
}

//NewCell builds a cell and validates the basic invariants: parallel
//slices of equal length and at least one atom. Positions are stored
//wrapped into [0,1).
func NewCell(lattice m3.Matrix, positions []m3.Vector, types []int, spins []float64) (*Cell, error) {
	c := &Cell{Lattice: lattice, Types: types, Spins: spins}
	c.Positions = make([]m3.Vector, len(positions))
	for i, p := range positions {
		c.Positions[i] = m3.Wrap(p, 1e-10)
	}
	if err := c.check(); err != nil {
		return nil, errDecorate(err, "NewCell")
	}
	return c, nil
}

func (c *Cell) check() error {
	if len(c.Positions) == 0 {
		return cerr(ErrInvalidInput, "check: empty atom set")
	}
	if len(c.Types) != len(c.Positions) {
		return cerr(ErrInvalidInput, "check: types length mismatch")
	}
	if c.Spins != nil && len(c.Spins) != len(c.Positions) {
		return cerr(ErrUnsupported, "check: spins length mismatch")
	}
	if math.Abs(m3.Det(c.Lattice)) < 1e-10 {
		return cerr(ErrInvalidInput, "check: singular lattice")
	}
	return nil
}

//Len returns the number of atoms in the cell.
func (c *Cell) Len() int { return len(c.Positions) }

//Copy returns a deep copy of the cell.
func (c *Cell) Copy() *Cell {
	n := &Cell{Lattice: c.Lattice}
	n.Positions = append([]m3.Vector(nil), c.Positions...)
	n.Types = append([]int(nil), c.Types...)
	if c.Spins != nil {
		n.Spins = append([]float64(nil), c.Spins...)
	}
	return n
}

//Volume returns the cell volume.
func (c *Cell) Volume() float64 {
	return math.Abs(m3.Det(c.Lattice))
}

//Distance returns the cartesian distance between the fractional points a
//and b under periodic boundary conditions, i.e. to the nearest image.
func (c *Cell) Distance(a, b m3.Vector) float64 {
	d := m3.ShortestImage(m3.Sub(a, b))
	return m3.Norm(m3.Cartesian(c.Lattice, d))
}

//Tolerance is the comparison policy threaded through every floating-point
//decision of the engine: Symprec is a cartesian length tolerance in the
//unit of the lattice, AngleTol an angle tolerance in degrees. A negative
//AngleTol (the conventional default) derives the angular tolerance from
//Symprec and the cell dimensions.
type Tolerance struct {
	Symprec  float64
	AngleTol float64
}

//DefaultTolerance is the customary starting point, 1e-5 length units with
//the angle tolerance derived from it.
func DefaultTolerance() Tolerance {
	return Tolerance{Symprec: 1e-5, AngleTol: -1}
}

//sameSite reports whether fractional points a and b of cell c coincide
//under periodic wrap within the tolerance.
func (tol Tolerance) sameSite(c *Cell, a, b m3.Vector) bool {
	return c.Distance(a, b) <= tol.Symprec
}

//metricEps returns the tolerance for comparing off-diagonal metric-tensor
//elements of the given lattice. With an explicit AngleTol the comparison
//happens in degrees elsewhere; this derived bound covers the AngleTol<0
//case, scaling Symprec to the squared-length magnitude of the cell.
func (tol Tolerance) metricEps(lattice m3.Matrix) float64 {
	v := math.Abs(m3.Det(lattice))
	return 2 * tol.Symprec * math.Pow(v, 1.0/3.0)
}

//relaxed returns the tolerance loosened by one internal retry step.
func (tol Tolerance) relaxed() Tolerance {
	tol.Symprec *= 1.05
	return tol
}
