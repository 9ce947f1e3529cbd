/*
 * refine.go, part of spglib.
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

//RefineCell rebuilds a cell in the conventional setting of its space
//group, with the lattice idealized to the metric of the crystal system
//and the atoms regenerated from orbit representatives. The result holds
//det(C) times the atoms of the primitive cell, where C is the centering
//multiplicity of the conventional lattice.
func RefineCell(c *Cell, tol Tolerance) (*Cell, error) {
	m, err := identifyMatch(c, tol)
	if err != nil {
		return nil, errDecorate(err, "RefineCell")
	}
	convLat := m3.Mul(m3.IToF(m.c), m.prim.Lattice)
	lat := idealLattice(convLat, m.system)
	cinv, err := m3.Inverse(m3.IToF(m.c))
	if err != nil {
		return nil, errDecorate(err, "RefineCell")
	}
	toConv := m3.Transpose(cinv)
	eps := originEps(m.prim.Lattice, tol)
	ops := m.entry.Ops()
	out := &Cell{Lattice: lat}
	for i, xp := range m.prim.Positions {
		x := m3.Wrap(m3.Sub(m3.MulV(toConv, xp), m.origin), 1e-8)
		if refinedIndex(out, m.prim.Types[i], x, eps) >= 0 {
			continue //covered by an earlier orbit
		}
		for _, op := range ops {
			y := m3.Wrap(m3.Add(m3.IMulVF(op.R, x), op.TFrac()), 1e-8)
			if refinedIndex(out, m.prim.Types[i], y, eps) >= 0 {
				continue
			}
			out.Positions = append(out.Positions, y)
			out.Types = append(out.Types, m.prim.Types[i])
			if m.prim.Spins != nil {
				out.Spins = append(out.Spins, m.prim.Spins[i])
			}
		}
	}
	mult := m3.IDet(m.c)
	if out.Len() != m.prim.Len()*mult {
		return nil, cerr(ErrToleranceExhausted, "RefineCell: orbit expansion does not close")
	}
	return out, nil
}

func refinedIndex(c *Cell, typ int, x m3.Vector, eps float64) int {
	for j, y := range c.Positions {
		if c.Types[j] == typ && fracClose(x, y, eps) {
			return j
		}
	}
	return -1
}

//idealLattice snaps the cell parameters of the conventional lattice to
//the metric of the crystal system and rebuilds it in the standard
//orientation, a along x and b in the x-y plane.
func idealLattice(lattice m3.Matrix, system crystalSystem) m3.Matrix {
	a := m3.Norm(lattice[0])
	b := m3.Norm(lattice[1])
	cl := m3.Norm(lattice[2])
	alpha := m3.Angle(lattice[1], lattice[2])
	beta := m3.Angle(lattice[0], lattice[2])
	gamma := m3.Angle(lattice[0], lattice[1])
	switch system {
	case cubic:
		m := (a + b + cl) / 3
		a, b, cl = m, m, m
		alpha, beta, gamma = 90, 90, 90
	case tetragonal:
		m := (a + b) / 2
		a, b = m, m
		alpha, beta, gamma = 90, 90, 90
	case orthorhombic:
		alpha, beta, gamma = 90, 90, 90
	case hexagonal, trigonal:
		m := (a + b) / 2
		a, b = m, m
		alpha, beta, gamma = 90, 90, 120
	case monoclinic:
		alpha, gamma = 90, 90
	}
	return latticeFromParams(a, b, cl, alpha, beta, gamma)
}

//latticeFromParams builds lattice rows from lengths and angles in
//degrees, in the standard orientation.
func latticeFromParams(a, b, c, alpha, beta, gamma float64) m3.Matrix {
	ca := math.Cos(alpha * math.Pi / 180)
	cb := math.Cos(beta * math.Pi / 180)
	cg := math.Cos(gamma * math.Pi / 180)
	sg := math.Sin(gamma * math.Pi / 180)
	cy := (ca - cb*cg) / sg
	cz := math.Sqrt(math.Max(0, 1-cb*cb-cy*cy))
	return m3.Matrix{
		{a, 0, 0},
		{b * cg, b * sg, 0},
		{c * cb, c * cy, c * cz},
	}
}
