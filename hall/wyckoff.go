/*
 * wyckoff.go, part of spglib.
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

package hall

import (
	"math"
	"sort"

	"github.com/AlbertDeFusco/spglib/m3"
)

//The Wyckoff template of an entry is derived from its own operation set
//rather than stored: every operation translation is a multiple of 1/24,
//so every fixed point, axis and plane of the group passes through the
//24x24x24 grid, and the grid orbits under the group, merged along their
//common fixed subspaces, are exactly the Wyckoff positions. Letters run
//a,b,c,... through positions sorted by increasing multiplicity with the
//lexicographically smallest representative breaking ties, and the general
//position last.

const wgrid = Denom

//letters is the Wyckoff alphabet, as in the original dataset convention.
const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

//Position is one Wyckoff position of a space-group setting.
type Position struct {
	Letter       byte
	Multiplicity int //atoms per conventional cell
	SiteOrder    int //order of the site-symmetry group

	//one grid representative per merged orbit, with the index set of the
	//operations fixing it; used to classify arbitrary points.
	reps  [][3]int
	stabs [][]int
}

func gridIndex(p [3]int) int {
	return p[0] + wgrid*(p[1]+wgrid*p[2])
}

func gridWrap(p [3]int) [3]int {
	for i := 0; i < 3; i++ {
		p[i] %= wgrid
		if p[i] < 0 {
			p[i] += wgrid
		}
	}
	return p
}

//applyGrid applies op o to a grid point, exactly.
func applyGrid(o Op, p [3]int) [3]int {
	q := m3.IMulV(o.R, p)
	return gridWrap([3]int{q[0] + o.T[0], q[1] + o.T[1], q[2] + o.T[2]})
}

//stabilizerGrid returns the sorted indices of the operations fixing p.
func stabilizerGrid(ops []Op, p [3]int) []int {
	var s []int
	for i, o := range ops {
		if applyGrid(o, p) == p {
			s = append(s, i)
		}
	}
	return s
}

func sameIndexSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

//connectedGrid reports whether p and q lie on the same fixed subspace of
//the stabilizer, i.e. whether some periodic image of p-q is annihilated
//by R-I for every operation R of the stabilizer. All arithmetic is exact.
func connectedGrid(ops []Op, stab []int, p, q [3]int) bool {
	for _, l0 := range []int{-2 * wgrid, -wgrid, 0, wgrid, 2 * wgrid} {
		for _, l1 := range []int{-2 * wgrid, -wgrid, 0, wgrid, 2 * wgrid} {
			for _, l2 := range []int{-2 * wgrid, -wgrid, 0, wgrid, 2 * wgrid} {
				w := [3]int{p[0] - q[0] + l0, p[1] - q[1] + l1, p[2] - q[2] + l2}
				ok := true
				for _, i := range stab {
					rw := m3.IMulV(ops[i].R, w)
					if rw != w {
						ok = false
						break
					}
				}
				if ok {
					return true
				}
			}
		}
	}
	return false
}

type gridOrbit struct {
	rep  [3]int
	stab []int
}

//deriveWyckoff builds the Wyckoff template of an operation set.
func deriveWyckoff(ops []Op) []Position {
	visited := make([]bool, wgrid*wgrid*wgrid)
	var special []gridOrbit
	generalSeen := false

	var p [3]int
	for p[2] = 0; p[2] < wgrid; p[2]++ {
		for p[1] = 0; p[1] < wgrid; p[1]++ {
			for p[0] = 0; p[0] < wgrid; p[0]++ {
				if visited[gridIndex(p)] {
					continue
				}
				rep := p
				n := 0
				for _, o := range ops {
					q := applyGrid(o, p)
					if !visited[gridIndex(q)] {
						visited[gridIndex(q)] = true
						n++
					}
					if lessGrid(q, rep) {
						rep = q
					}
				}
				if n*len(stabilizerGrid(ops, rep)) != len(ops) {
					//cannot happen for a closed operation set
					panic(m3.PanicMsg("spglib/hall: inconsistent orbit"))
				}
				stab := stabilizerGrid(ops, rep)
				if len(stab) == 1 {
					generalSeen = true
					continue
				}
				special = append(special, gridOrbit{rep: rep, stab: stab})
			}
		}
	}

	//merge grid orbits lying on the same fixed subspace
	parent := make([]int, len(special))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	for i := 0; i < len(special); i++ {
		for j := i + 1; j < len(special); j++ {
			if !sameIndexSet(special[i].stab, special[j].stab) {
				continue
			}
			if connectedGrid(ops, special[i].stab, special[i].rep, special[j].rep) {
				parent[find(j)] = find(i)
			}
		}
	}

	groups := map[int][]int{}
	for i := range special {
		r := find(i)
		groups[r] = append(groups[r], i)
	}

	var positions []Position
	for _, members := range groups {
		stab := special[members[0]].stab
		pos := Position{
			Multiplicity: len(ops) / len(stab),
			SiteOrder:    len(stab),
		}
		for _, m := range members {
			pos.reps = append(pos.reps, special[m].rep)
			pos.stabs = append(pos.stabs, special[m].stab)
		}
		sort.Slice(pos.reps, func(a, b int) bool { return lessGrid(pos.reps[a], pos.reps[b]) })
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(a, b int) bool {
		if positions[a].Multiplicity != positions[b].Multiplicity {
			return positions[a].Multiplicity < positions[b].Multiplicity
		}
		return lessGrid(positions[a].reps[0], positions[b].reps[0])
	})
	if generalSeen {
		positions = append(positions, Position{Multiplicity: len(ops), SiteOrder: 1})
	}
	for i := range positions {
		positions[i].Letter = letters[i%len(letters)]
	}
	return positions
}

func lessGrid(a, b [3]int) bool {
	//compare z-major so that (0,0,1/2) sorts before (0,1/2,0)
	if a[2] != b[2] {
		return a[2] < b[2]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[0] < b[0]
}

//Classify returns the Wyckoff letter and the site-symmetry order of an
//arbitrary fractional point under this entry's operations. eps is a
//fractional-coordinate tolerance; points produced by orbit expansion of
//the entry's own operations are essentially exact, so a loose eps is
//safe. Classify never fails: a point with trivial site symmetry belongs
//to the general position.
func (e *Entry) Classify(x m3.Vector, eps float64) (byte, int) {
	ops := e.Ops()
	wy := e.Wyckoff()
	stabX := stabilizerReal(ops, x, eps)
	if len(stabX) == 1 {
		return wy[len(wy)-1].Letter, 1
	}
	for _, g := range ops {
		y := applyReal(g, x)
		stabY := stabilizerReal(ops, y, eps)
		if len(stabY) != len(stabX) {
			continue
		}
		for pi := range wy {
			if wy[pi].SiteOrder != len(stabX) {
				continue
			}
			for ri, rep := range wy[pi].reps {
				if sameIndexSet(stabY, wy[pi].stabs[ri]) && connectedReal(ops, wy[pi].stabs[ri], y, rep, eps) {
					return wy[pi].Letter, wy[pi].SiteOrder
				}
			}
		}
	}
	//site group conjugate to no template member: fall back to the general
	//position rather than fail, so a slightly distorted point still gets
	//a label.
	return wy[len(wy)-1].Letter, len(stabX)
}

func applyReal(o Op, x m3.Vector) m3.Vector {
	y := m3.IMulVF(o.R, x)
	t := o.TFrac()
	for i := 0; i < 3; i++ {
		y[i] += t[i]
		y[i] -= math.Floor(y[i])
	}
	return y
}

func stabilizerReal(ops []Op, x m3.Vector, eps float64) []int {
	var s []int
	for i, o := range ops {
		d := m3.ShortestImage(m3.Sub(applyReal(o, x), x))
		if m3.Norm(d) < eps {
			s = append(s, i)
		}
	}
	return s
}

func connectedReal(ops []Op, stab []int, x m3.Vector, rep [3]int, eps float64) bool {
	r := m3.Vector{float64(rep[0]) / wgrid, float64(rep[1]) / wgrid, float64(rep[2]) / wgrid}
	for l0 := -2.0; l0 <= 2.0; l0++ {
		for l1 := -2.0; l1 <= 2.0; l1++ {
			for l2 := -2.0; l2 <= 2.0; l2++ {
				w := m3.Vector{x[0] - r[0] + l0, x[1] - r[1] + l1, x[2] - r[2] + l2}
				ok := true
				for _, i := range stab {
					rw := m3.IMulVF(ops[i].R, w)
					if m3.Norm(m3.Sub(rw, w)) > eps {
						ok = false
						break
					}
				}
				if ok {
					return true
				}
			}
		}
	}
	return false
}
