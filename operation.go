/*
 * operation.go, part of spglib.
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
	"sort"

	"github.com/AlbertDeFusco/spglib/m3"
)

//Operation is one rigid symmetry operation of a periodic structure: an
//integer rotation part expressed in the fractional basis of the cell and
//a fractional translation reduced into [0,1). The rotation is always
//unimodular. TimeReversal marks anti-unitary operations of a magnetic
//structure, where the mapped moments match only after a sign flip; it is
//always false for non-magnetic cells.
type Operation struct {
	Rotation     m3.IMatrix
	Translation  m3.Vector
	TimeReversal bool
}

//Identity returns the identity operation.
func Identity() Operation {
	return Operation{Rotation: m3.IIdent()}
}

//Apply maps the fractional point x under the operation, wrapping the
//image into [0,1).
func (op Operation) Apply(x m3.Vector) m3.Vector {
	y := m3.IMulVF(op.Rotation, x)
	return m3.Wrap(m3.Add(y, op.Translation), 1e-10)
}

//IsIdentity reports whether the operation is the identity modulo lattice
//translation, within eps on the translation.
func (op Operation) IsIdentity(eps float64) bool {
	if op.Rotation != m3.IIdent() {
		return false
	}
	d := m3.ShortestImage(op.Translation)
	return m3.Norm(d) < eps
}

//transformed expresses the operation in a new basis given by the integer
//unimodular coordinate transformation p (x_new = p*x_old).
func (op Operation) transformed(p m3.IMatrix) Operation {
	pinv := m3.IInverse(p)
	return Operation{
		Rotation:     m3.IMul(m3.IMul(p, op.Rotation), pinv),
		Translation:  m3.Wrap(m3.IMulVF(p, op.Translation), 1e-10),
		TimeReversal: op.TimeReversal,
	}
}

//sortOperations orders a found set canonically: the identity first, the
//remaining operations by rotation matrix, then translation, then the
//time-reversal flag. The order is deterministic and independent of the
//search order.
func sortOperations(ops []Operation) {
	sort.Slice(ops, func(i, j int) bool {
		a, b := ops[i], ops[j]
		ai, bi := a.IsIdentity(1e-8), b.IsIdentity(1e-8)
		if ai != bi {
			return ai
		}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if a.Rotation[r][c] != b.Rotation[r][c] {
					return a.Rotation[r][c] < b.Rotation[r][c]
				}
			}
		}
		for k := 0; k < 3; k++ {
			if a.Translation[k] != b.Translation[k] {
				return a.Translation[k] < b.Translation[k]
			}
		}
		return !a.TimeReversal && b.TimeReversal
	})
}

//Rotations extracts the rotation parts of an operation list.
func Rotations(ops []Operation) []m3.IMatrix {
	rs := make([]m3.IMatrix, len(ops))
	for i, op := range ops {
		rs[i] = op.Rotation
	}
	return rs
}
