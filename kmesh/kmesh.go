/*
 * kmesh.go, part of spglib.
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

//Package kmesh reduces regular reciprocal-space meshes to their
//irreducible points under a crystal's rotation group. Grid points are
//addressed x-fastest, index = x + mx*(y + my*z), and a mesh may carry a
//half-step shift per axis. All reduction arithmetic is exact, on grid
//coordinates doubled so that shifted points stay integer.
package kmesh

import (
	"math"

	"github.com/AlbertDeFusco/spglib/m3"
)

//Grid is a reduced mesh: for every point its address, the index of the
//irreducible point representing its orbit, and at each representative
//the orbit size. Weights is zero away from representatives, and sums to
//the total point count.
type Grid struct {
	Mesh       [3]int
	Shift      [3]int
	MeshPoints [][3]int
	Mapping    []int
	Weights    []int
}

//Irreducible returns the indices of the orbit representatives.
func (g *Grid) Irreducible() []int {
	var out []int
	for i, w := range g.Weights {
		if w > 0 {
			out = append(out, i)
		}
	}
	return out
}

//Reduce folds a mesh under the given real-space rotations, optionally
//adding time reversal (k to -k). Shift components must be 0 or 1, a 1
//meaning a half-step offset on that axis. Rotations incompatible with
//the mesh subdivision are dropped; the identity always remains, so the
//worst case degenerates to no reduction rather than failing.
func Reduce(mesh, shift [3]int, rotations []m3.IMatrix, timeReversal bool) (*Grid, error) {
	if err := checkMesh(mesh, shift); err != nil {
		return nil, err
	}
	rec := compatibleReciprocal(mesh, shift, rotations)
	return reduce(mesh, shift, rec, timeReversal), nil
}

func checkMesh(mesh, shift [3]int) error {
	for i := 0; i < 3; i++ {
		if mesh[i] < 1 {
			return Error{message: "kmesh: mesh subdivisions must be positive"}
		}
		if shift[i] != 0 && shift[i] != 1 {
			return Error{message: "kmesh: shift components must be 0 or 1"}
		}
	}
	return nil
}

//compatibleReciprocal transposes the real-space rotations into
//reciprocal space and keeps those that map the (shifted) grid onto
//itself. A reciprocal rotation W is mesh compatible when W[j][i]*m[j] is
//divisible by m[i] for all pairs, and shift compatible when the image of
//the first grid point keeps the shift parity.
func compatibleReciprocal(mesh, shift [3]int, rotations []m3.IMatrix) []m3.IMatrix {
	out := []m3.IMatrix{m3.IIdent()}
	for _, w := range rotations {
		r := m3.ITranspose(w)
		if m3.IEqual(r, m3.IIdent()) {
			continue
		}
		if !meshCompatible(r, mesh) || !shiftCompatible(r, mesh, shift) {
			continue
		}
		dup := false
		for _, have := range out {
			if m3.IEqual(r, have) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	return out
}

func meshCompatible(r m3.IMatrix, mesh [3]int) bool {
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			if (r[j][i]*mesh[j])%mesh[i] != 0 {
				return false
			}
		}
	}
	return true
}

func shiftCompatible(r m3.IMatrix, mesh, shift [3]int) bool {
	d, ok := rotateDoubled(r, mesh, shift)
	if !ok {
		return false
	}
	for j := 0; j < 3; j++ {
		if (d[j]-shift[j])%2 != 0 {
			return false
		}
	}
	return true
}

//rotateDoubled applies a reciprocal rotation to doubled grid
//coordinates d (d_i = 2*g_i + s_i, so k_i = d_i/(2*m_i)), exactly. The
//common scale lcm(mesh) keeps every intermediate integer.
func rotateDoubled(r m3.IMatrix, mesh, d [3]int) ([3]int, bool) {
	l := lcm(lcm(mesh[0], mesh[1]), mesh[2])
	var out [3]int
	for j := 0; j < 3; j++ {
		num := 0
		for i := 0; i < 3; i++ {
			num += r[j][i] * d[i] * (l / mesh[i])
		}
		if (num*mesh[j])%l != 0 {
			return [3]int{}, false
		}
		out[j] = num * mesh[j] / l
	}
	return out, true
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func reduce(mesh, shift [3]int, rec []m3.IMatrix, timeReversal bool) *Grid {
	n := mesh[0] * mesh[1] * mesh[2]
	g := &Grid{
		Mesh:       mesh,
		Shift:      shift,
		MeshPoints: make([][3]int, n),
		Mapping:    make([]int, n),
		Weights:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		g.MeshPoints[i] = address(i, mesh)
	}
	for i := 0; i < n; i++ {
		ga := g.MeshPoints[i]
		d := [3]int{2*ga[0] + shift[0], 2*ga[1] + shift[1], 2*ga[2] + shift[2]}
		best := i
		for _, r := range rec {
			img, ok := rotateDoubled(r, mesh, d)
			if !ok {
				continue
			}
			if j := doubledIndex(img, mesh, shift); j >= 0 && j < best {
				best = j
			}
			if timeReversal {
				neg := [3]int{-img[0], -img[1], -img[2]}
				if j := doubledIndex(neg, mesh, shift); j >= 0 && j < best {
					best = j
				}
			}
		}
		if best == i {
			g.Mapping[i] = i
		} else {
			g.Mapping[i] = g.Mapping[best] //best < i, already resolved
		}
		g.Weights[g.Mapping[i]]++
	}
	return g
}

//address decomposes a grid index, x fastest.
func address(i int, mesh [3]int) [3]int {
	return [3]int{i % mesh[0], (i / mesh[0]) % mesh[1], i / (mesh[0] * mesh[1])}
}

//doubledIndex folds doubled coordinates back onto the grid and returns
//the point index, or -1 when the point misses the shifted grid.
func doubledIndex(d, mesh, shift [3]int) int {
	var g [3]int
	for j := 0; j < 3; j++ {
		if (d[j]-shift[j])%2 != 0 {
			return -1
		}
		g[j] = mod((d[j]-shift[j])/2, mesh[j])
	}
	return g[0] + mesh[0]*(g[1]+mesh[1]*g[2])
}

func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}

//Stabilized reduces a mesh under the subgroup of rotations that fix
//every listed q-point modulo a reciprocal lattice vector, as needed when
//folding a mesh in the presence of an external wave vector. With time
//reversal, -q images count as fixed too.
func Stabilized(mesh, shift [3]int, rotations []m3.IMatrix, qpoints []m3.Vector, timeReversal bool) (*Grid, error) {
	if err := checkMesh(mesh, shift); err != nil {
		return nil, err
	}
	if len(qpoints) == 0 {
		return nil, Error{message: "kmesh: Stabilized needs at least one q-point"}
	}
	var kept []m3.IMatrix
	for _, w := range rotations {
		r := m3.ITranspose(w)
		if stabilizes(r, qpoints, timeReversal) {
			kept = append(kept, m3.ITranspose(r)) //compatibleReciprocal transposes again
		}
	}
	rec := compatibleReciprocal(mesh, shift, kept)
	return reduce(mesh, shift, rec, timeReversal), nil
}

const qEps = 1e-5

func stabilizes(r m3.IMatrix, qpoints []m3.Vector, timeReversal bool) bool {
	for _, q := range qpoints {
		img := m3.IMulVF(r, q)
		ok := qInSet(img, qpoints)
		if !ok && timeReversal {
			ok = qInSet(m3.Vector{-img[0], -img[1], -img[2]}, qpoints)
		}
		if !ok {
			return false
		}
	}
	return true
}

func qInSet(img m3.Vector, qpoints []m3.Vector) bool {
	for _, q := range qpoints {
		match := true
		for j := 0; j < 3; j++ {
			d := img[j] - q[j]
			if math.Abs(d-math.Round(d)) > qEps {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

//Error is the kmesh error type.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err Error) Critical() bool { return false }
