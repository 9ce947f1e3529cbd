/*
 * pointgroup.go, part of spglib.
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

//Crystal systems, ordered by increasing symmetry.
type crystalSystem int

const (
	triclinic crystalSystem = iota
	monoclinic
	orthorhombic
	tetragonal
	trigonal
	hexagonal
	cubic
)

//rotation types indexed 0..9: -6, -4, -3, -2(m), -1, 1, 2, 3, 4, 6.
//The type of an integer rotation matrix follows from its determinant and
//trace alone.
func rotationType(w m3.IMatrix) int {
	d := m3.IDet(w)
	t := m3.ITrace(w)
	if d == 1 {
		switch t {
		case 3:
			return 5 //1
		case -1:
			return 6 //2
		case 0:
			return 7 //3
		case 1:
			return 8 //4
		case 2:
			return 9 //6
		}
	} else if d == -1 {
		switch t {
		case -2:
			return 0 //-6
		case -1:
			return 1 //-4
		case 0:
			return 2 //-3
		case 1:
			return 3 //m
		case -3:
			return 4 //-1
		}
	}
	return -1
}

//pointGroupClass pairs a point-group symbol with its rotation-type
//histogram and crystal system. The 32 crystal classes are uniquely
//identified by the histogram.
type pointGroupClass struct {
	number int
	symbol string
	counts [10]int
	system crystalSystem
}

var pointGroups = []pointGroupClass{
	{1, "1", [10]int{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}, triclinic},
	{2, "-1", [10]int{0, 0, 0, 0, 1, 1, 0, 0, 0, 0}, triclinic},
	{3, "2", [10]int{0, 0, 0, 0, 0, 1, 1, 0, 0, 0}, monoclinic},
	{4, "m", [10]int{0, 0, 0, 1, 0, 1, 0, 0, 0, 0}, monoclinic},
	{5, "2/m", [10]int{0, 0, 0, 1, 1, 1, 1, 0, 0, 0}, monoclinic},
	{6, "222", [10]int{0, 0, 0, 0, 0, 1, 3, 0, 0, 0}, orthorhombic},
	{7, "mm2", [10]int{0, 0, 0, 2, 0, 1, 1, 0, 0, 0}, orthorhombic},
	{8, "mmm", [10]int{0, 0, 0, 3, 1, 1, 3, 0, 0, 0}, orthorhombic},
	{9, "4", [10]int{0, 0, 0, 0, 0, 1, 1, 0, 2, 0}, tetragonal},
	{10, "-4", [10]int{0, 2, 0, 0, 0, 1, 1, 0, 0, 0}, tetragonal},
	{11, "4/m", [10]int{0, 2, 0, 1, 1, 1, 1, 0, 2, 0}, tetragonal},
	{12, "422", [10]int{0, 0, 0, 0, 0, 1, 5, 0, 2, 0}, tetragonal},
	{13, "4mm", [10]int{0, 0, 0, 4, 0, 1, 1, 0, 2, 0}, tetragonal},
	{14, "-42m", [10]int{0, 2, 0, 2, 0, 1, 3, 0, 0, 0}, tetragonal},
	{15, "4/mmm", [10]int{0, 2, 0, 5, 1, 1, 5, 0, 2, 0}, tetragonal},
	{16, "3", [10]int{0, 0, 0, 0, 0, 1, 0, 2, 0, 0}, trigonal},
	{17, "-3", [10]int{0, 0, 2, 0, 1, 1, 0, 2, 0, 0}, trigonal},
	{18, "32", [10]int{0, 0, 0, 0, 0, 1, 3, 2, 0, 0}, trigonal},
	{19, "3m", [10]int{0, 0, 0, 3, 0, 1, 0, 2, 0, 0}, trigonal},
	{20, "-3m", [10]int{0, 0, 2, 3, 1, 1, 3, 2, 0, 0}, trigonal},
	{21, "6", [10]int{0, 0, 0, 0, 0, 1, 1, 2, 0, 2}, hexagonal},
	{22, "-6", [10]int{2, 0, 0, 1, 0, 1, 0, 2, 0, 0}, hexagonal},
	{23, "6/m", [10]int{2, 0, 2, 1, 1, 1, 1, 2, 0, 2}, hexagonal},
	{24, "622", [10]int{0, 0, 0, 0, 0, 1, 7, 2, 0, 2}, hexagonal},
	{25, "6mm", [10]int{0, 0, 0, 6, 0, 1, 1, 2, 0, 2}, hexagonal},
	{26, "-6m2", [10]int{2, 0, 0, 4, 0, 1, 3, 2, 0, 0}, hexagonal},
	{27, "6/mmm", [10]int{2, 0, 2, 7, 1, 1, 7, 2, 0, 2}, hexagonal},
	{28, "23", [10]int{0, 0, 0, 0, 0, 1, 3, 8, 0, 0}, cubic},
	{29, "m-3", [10]int{0, 0, 8, 3, 1, 1, 3, 8, 0, 0}, cubic},
	{30, "432", [10]int{0, 0, 0, 0, 0, 1, 9, 8, 6, 0}, cubic},
	{31, "-43m", [10]int{0, 6, 0, 6, 0, 1, 3, 8, 0, 0}, cubic},
	{32, "m-3m", [10]int{0, 6, 8, 9, 1, 1, 9, 8, 6, 0}, cubic},
}

//PointGroup classifies a set of integer rotation matrices as one of the
//32 crystallographic point groups. It returns the international symbol,
//the point-group number in the conventional 1-32 ordering, and an
//integer transformation whose rows are the canonical axes of the class
//expressed in the input basis. The rotation set must be closed; a set
//whose rotation-type histogram matches no crystal class yields an error.
func PointGroup(rotations []m3.IMatrix) (string, int, m3.IMatrix, error) {
	if len(rotations) == 0 {
		return "", 0, m3.IMatrix{}, cerr(ErrInvalidInput, "PointGroup: empty rotation set")
	}
	var counts [10]int
	for _, w := range rotations {
		rt := rotationType(w)
		if rt < 0 {
			return "", 0, m3.IMatrix{}, cerr(ErrInvalidInput, "PointGroup: non-crystallographic rotation")
		}
		counts[rt]++
	}
	for _, pg := range pointGroups {
		if pg.counts == counts {
			tr := canonicalAxes(rotations, pg.system)
			return pg.symbol, pg.number, tr, nil
		}
	}
	return "", 0, m3.IMatrix{}, cerr(ErrInvalidInput, "PointGroup: no matching crystal class")
}

func pointGroupSystem(symbol string) crystalSystem {
	for _, pg := range pointGroups {
		if pg.symbol == symbol {
			return pg.system
		}
	}
	return triclinic
}

//properize returns the proper rotation associated with w: w itself when
//det(w)=1, -w otherwise (the proper part of an improper operation).
func properize(w m3.IMatrix) m3.IMatrix {
	if m3.IDet(w) == -1 {
		return m3.IScale(-1, w)
	}
	return w
}

//rotationOrder returns the order n of a proper rotation (w^n = 1).
func rotationOrder(w m3.IMatrix) int {
	switch m3.ITrace(w) {
	case 3:
		return 1
	case -1:
		return 2
	case 0:
		return 3
	case 1:
		return 4
	case 2:
		return 6
	}
	return 0
}

//properAxis returns the primitive integer axis vector of a proper
//rotation of order > 1, with a canonical sign (first non-zero component
//positive). The axis is read off the non-zero columns of the sum
//1 + w + ... + w^(n-1), which projects onto the rotation axis.
func properAxis(w m3.IMatrix) [3]int {
	n := rotationOrder(w)
	sum := m3.IIdent()
	p := w
	for k := 1; k < n; k++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				sum[i][j] += p[i][j]
			}
		}
		p = m3.IMul(p, w)
	}
	var ax [3]int
	for j := 0; j < 3; j++ {
		col := [3]int{sum[0][j], sum[1][j], sum[2][j]}
		if col != ([3]int{}) {
			ax = col
			break
		}
	}
	return primitiveVec(ax)
}

//primitiveVec divides out the gcd of the components and fixes the sign
//so that the first non-zero component is positive.
func primitiveVec(v [3]int) [3]int {
	g := 0
	for _, x := range v {
		g = gcd(g, abs(x))
	}
	if g > 1 {
		for i := range v {
			v[i] /= g
		}
	}
	for _, x := range v {
		if x > 0 {
			break
		}
		if x < 0 {
			return [3]int{-v[0], -v[1], -v[2]}
		}
	}
	return v
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

//axesByOrder collects the distinct proper axes of a rotation set, keyed
//by rotation order. Improper operations contribute through their proper
//parts, so mirror normals arrive as two-fold axes.
func axesByOrder(rotations []m3.IMatrix) map[int][][3]int {
	out := map[int][][3]int{}
	seen := map[[4]int]bool{}
	for _, w := range rotations {
		p := properize(w)
		n := rotationOrder(p)
		if n < 2 {
			continue
		}
		ax := properAxis(p)
		key := [4]int{n, ax[0], ax[1], ax[2]}
		if !seen[key] {
			seen[key] = true
			out[n] = append(out[n], ax)
		}
	}
	return out
}

//canonicalAxes picks conventional axis directions for a crystal system
//from the rotation axes alone: the highest-order axis becomes c, a
//perpendicular two-fold (when the class has one) becomes a, and the
//remaining direction completes a right-handed integer triple of minimal
//determinant. Metric-aware refinement of these directions happens in the
//space-group identification, which also knows the lattice.
func canonicalAxes(rotations []m3.IMatrix, system crystalSystem) m3.IMatrix {
	axes := axesByOrder(rotations)
	switch system {
	case cubic:
		set := axes[4]
		if len(set) < 3 {
			set = axes[2]
		}
		if len(set) >= 3 {
			return completeRight(set[0], set[1], set[2])
		}
	case hexagonal, trigonal:
		principal := 6
		if len(axes[6]) == 0 {
			principal = 3
		}
		if len(axes[principal]) > 0 {
			c := axes[principal][0]
			var a [3]int
			if len(axes[2]) > 0 {
				a = axes[2][0]
			} else {
				a = anyIndependent(c)
			}
			//b from the threefold image of a keeps the 120 degree relation
			w3 := findOrderRotation(rotations, 3)
			b := m3.IMulV(w3, a)
			return completeRight(a, b, c)
		}
	case tetragonal:
		if len(axes[4]) > 0 {
			c := axes[4][0]
			var a [3]int
			if len(axes[2]) > 0 {
				for _, cand := range axes[2] {
					if cand != c {
						a = cand
						break
					}
				}
			}
			if a == ([3]int{}) {
				a = anyIndependent(c)
			}
			w4 := findOrderRotation(rotations, 4)
			b := m3.IMulV(w4, a)
			return completeRight(a, b, c)
		}
	case orthorhombic:
		if len(axes[2]) >= 3 {
			return completeRight(axes[2][0], axes[2][1], axes[2][2])
		}
	case monoclinic:
		if len(axes[2]) > 0 {
			b := axes[2][0]
			a := anyIndependent(b)
			c := crossInt(a, b)
			return completeRight(a, b, primitiveVec(c))
		}
	}
	return m3.IIdent()
}

//findOrderRotation returns a proper rotation of the given order from the
//set, properizing improper operations as needed.
func findOrderRotation(rotations []m3.IMatrix, order int) m3.IMatrix {
	for _, w := range rotations {
		p := properize(w)
		if rotationOrder(p) == order {
			return p
		}
	}
	return m3.IIdent()
}

func anyIndependent(c [3]int) [3]int {
	for _, e := range [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		if crossInt(e, c) != ([3]int{}) {
			return e
		}
	}
	return [3]int{1, 0, 0}
}

func crossInt(a, b [3]int) [3]int {
	return [3]int{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

//completeRight assembles the axis rows into a right-handed matrix,
//flipping c when the triple comes out left-handed.
func completeRight(a, b, c [3]int) m3.IMatrix {
	m := m3.IMatrix{{a[0], a[1], a[2]}, {b[0], b[1], b[2]}, {c[0], c[1], c[2]}}
	if m3.IDet(m) < 0 {
		m[2] = [3]int{-c[0], -c[1], -c[2]}
	}
	if m3.IDet(m) == 0 {
		return m3.IIdent()
	}
	return m
}
