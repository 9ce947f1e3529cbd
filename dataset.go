/*
 * dataset.go, part of spglib.
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
	"github.com/AlbertDeFusco/spglib/m3"
)

//Dataset collects everything the space-group identification determines
//about a cell. Transformation maps the input basis to the conventional
//one, L_conv = Transformation . L_input (lattice rows are basis
//vectors), and OriginShift moves the conventional origin to the
//standard one, x_std = x_conv - OriginShift.
type Dataset struct {
	Number          int    //space-group number, 1-230
	International   string //international short symbol
	Hall            string //Hall symbol of the matched setting
	HallNumber      int    //index into the Hall table
	PointGroup      string //crystal class symbol
	Transformation  m3.Matrix
	OriginShift     m3.Vector
	Operations      []Operation //symmetry of the input cell, in its basis
	Wyckoffs        []byte      //Wyckoff letter per input atom
	EquivalentAtoms []int       //lowest symmetry-equivalent atom index, per atom
}

func (m *spaceGroupMatch) dataset(c *Cell, tol Tolerance) (*Dataset, error) {
	ds := &Dataset{
		Number:         m.entry.Number,
		International:  m.entry.International,
		Hall:           m.entry.Symbol,
		HallNumber:     m.hallNumber,
		PointGroup:     m.pgSymbol,
		Transformation: m3.Mul(m3.IToF(m.c), m.v),
		OriginShift:    m.origin,
		Operations:     m.inputOps,
	}
	std, err := m.standardizer()
	if err != nil {
		return nil, errDecorate(err, "IdentifySpacegroup")
	}
	eps := originEps(m.prim.Lattice, tol)
	ds.Wyckoffs = make([]byte, c.Len())
	for i, x := range c.Positions {
		letter, _ := m.entry.Classify(std(x), eps)
		ds.Wyckoffs[i] = letter
	}
	ds.EquivalentAtoms = equivalentAtoms(c, m.inputOps, tol)
	return ds, nil
}

//standardizer returns a closure carrying input fractional coordinates to
//the standard setting of the matched space group.
func (m *spaceGroupMatch) standardizer() (func(m3.Vector) m3.Vector, error) {
	vinv, err := m3.Inverse(m.v)
	if err != nil {
		return nil, err
	}
	toPrim := m3.Transpose(vinv)
	cinv, err := m3.Inverse(m3.IToF(m.c))
	if err != nil {
		return nil, err
	}
	toConv := m3.Transpose(cinv)
	origin := m.origin
	return func(x m3.Vector) m3.Vector {
		xp := m3.MulV(toPrim, x)
		xc := m3.MulV(toConv, xp)
		return m3.Wrap(m3.Sub(xc, origin), 1e-8)
	}, nil
}

//equivalentAtoms maps every atom to the lowest-indexed atom its orbit
//reaches under the symmetry operations.
func equivalentAtoms(c *Cell, ops []Operation, tol Tolerance) []int {
	out := make([]int, c.Len())
	for i := range out {
		out[i] = i
	}
	for i := range c.Positions {
		for _, op := range ops {
			y := op.Apply(c.Positions[i])
			for j := 0; j < i; j++ {
				if c.Types[j] == c.Types[i] && tol.sameSite(c, y, c.Positions[j]) {
					if out[j] < out[i] {
						out[i] = out[j]
					}
				}
			}
		}
	}
	return out
}
