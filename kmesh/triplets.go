/*
 * triplets.go, part of spglib.
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

package kmesh

import (
	"github.com/AlbertDeFusco/spglib/m3"
)

//Triplets describes the irreducible q1+q2+q3=G triplets of an unshifted
//mesh with q1 held fixed. For every grid point taken as q2, Mapping
//gives its representative under the stabilizer of q1, Weights counts
//the orbit at each representative, and ThirdQ is the grid index of the
//momentum-conserving q3.
type Triplets struct {
	Fixed      int
	Mesh       [3]int
	MeshPoints [][3]int
	Mapping    []int
	Weights    []int
	ThirdQ     []int
}

//TripletsAtQ reduces the q2 points of the triplets (q1, q2, -q1-q2)
//under the little group of q1, the rotations that leave the fixed grid
//point invariant modulo a reciprocal lattice vector. With time reversal
//the operations -W with W.q1 = -q1 join the stabilizer, exchanging q2
//and q3. The mesh carries no shift; momentum conservation needs the
//grid closed under negation.
func TripletsAtQ(fixed int, mesh [3]int, rotations []m3.IMatrix, timeReversal bool) (*Triplets, error) {
	if err := checkMesh(mesh, [3]int{}); err != nil {
		return nil, err
	}
	n := mesh[0] * mesh[1] * mesh[2]
	if fixed < 0 || fixed >= n {
		return nil, Error{message: "kmesh: fixed q index out of range"}
	}
	g1 := address(fixed, mesh)
	stab := littleGroup(g1, mesh, rotations, timeReversal)
	t := &Triplets{
		Fixed:      fixed,
		Mesh:       mesh,
		MeshPoints: make([][3]int, n),
		Mapping:    make([]int, n),
		Weights:    make([]int, n),
		ThirdQ:     make([]int, n),
	}
	for i := 0; i < n; i++ {
		t.MeshPoints[i] = address(i, mesh)
	}
	for i := 0; i < n; i++ {
		g2 := t.MeshPoints[i]
		d := [3]int{2 * g2[0], 2 * g2[1], 2 * g2[2]}
		best := i
		for _, r := range stab {
			img, ok := rotateDoubled(r, mesh, d)
			if !ok {
				continue
			}
			if j := doubledIndex(img, mesh, [3]int{}); j >= 0 && j < best {
				best = j
			}
		}
		if best == i {
			t.Mapping[i] = i
		} else {
			t.Mapping[i] = t.Mapping[best]
		}
		t.Weights[t.Mapping[i]]++
		g3 := [3]int{
			mod(-g1[0]-g2[0], mesh[0]),
			mod(-g1[1]-g2[1], mesh[1]),
			mod(-g1[2]-g2[2], mesh[2]),
		}
		t.ThirdQ[i] = g3[0] + mesh[0]*(g3[1]+mesh[1]*g3[2])
	}
	return t, nil
}

//littleGroup collects the mesh-compatible reciprocal rotations fixing
//the grid point g1 modulo the mesh, negated rotations included under
//time reversal.
func littleGroup(g1, mesh [3]int, rotations []m3.IMatrix, timeReversal bool) []m3.IMatrix {
	d1 := [3]int{2 * g1[0], 2 * g1[1], 2 * g1[2]}
	i1 := doubledIndex(d1, mesh, [3]int{})
	out := []m3.IMatrix{m3.IIdent()}
	add := func(r m3.IMatrix) {
		if !meshCompatible(r, mesh) {
			return
		}
		img, ok := rotateDoubled(r, mesh, d1)
		if !ok || doubledIndex(img, mesh, [3]int{}) != i1 {
			return
		}
		for _, have := range out {
			if m3.IEqual(r, have) {
				return
			}
		}
		out = append(out, r)
	}
	for _, w := range rotations {
		r := m3.ITranspose(w)
		add(r)
		if timeReversal {
			add(m3.IScale(-1, r))
		}
	}
	return out
}
