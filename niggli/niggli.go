/*
 * niggli.go, part of spglib.
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

//Package niggli computes the Niggli-reduced form of a lattice basis with
//the Krivy-Gruber iteration. The reduced basis generates the same lattice
//as the input and is canonical up to the documented tie-breaking of the
//algorithm for degenerate (equal-length) cases.
package niggli

import (
	"math"

	"github.com/AlbertDeFusco/spglib/m3"
)

//MaxSteps caps the reduction iteration. The algorithm terminates in a
//finite number of steps for any valid lattice; hitting the cap signals a
//numerically pathological (near-singular or extremely skewed) input.
const MaxSteps = 100

//ErrNotConverged is returned when the iteration cap is reached.
var ErrNotConverged = Error{message: "spglib/niggli: reduction did not converge", critical: true}

//Reduce returns a Niggli-reduced basis for the lattice (rows are basis
//vectors), together with the integer unimodular transformation T such
//that reduced = T*lattice. eps is the length tolerance used in every
//comparison; it should be of the order of the symmetry precision.
func Reduce(lattice m3.Matrix, eps float64) (m3.Matrix, m3.IMatrix, error) {
	if math.Abs(m3.Det(lattice)) < eps {
		return m3.Matrix{}, m3.IMatrix{}, Error{message: "spglib/niggli: singular lattice", critical: true}
	}
	l := lattice
	t := m3.IIdent()
	//The loop compares squared lengths, so the tolerance is scaled to the
	//squared-length magnitude of the cell, V^(2/3).
	eps2 := eps * math.Pow(math.Abs(m3.Det(lattice)), 2.0/3.0)
	if eps2 <= 0 {
		eps2 = eps
	}
	for i := 0; i < MaxSteps; i++ {
		if step(&l, &t, eps2) {
			return l, t, nil
		}
	}
	return m3.Matrix{}, m3.IMatrix{}, ErrNotConverged
}

//params returns the Niggli characteristic (A, B, C, xi, eta, zeta) of l.
func params(l m3.Matrix) (A, B, C, xi, eta, zeta float64) {
	g := m3.Metric(l)
	return g[0][0], g[1][1], g[2][2], 2 * g[1][2], 2 * g[0][2], 2 * g[0][1]
}

//apply replaces the basis rows by integer combinations given by the rows
//of m, and accumulates m into the total transformation.
func apply(l *m3.Matrix, t *m3.IMatrix, m m3.IMatrix) {
	*l = m3.Mul(m3.IToF(m), *l)
	*t = m3.IMul(m, *t)
}

//step performs one pass of the Krivy-Gruber steps 1-8. It returns true
//when the basis is reduced and no step applies.
func step(l *m3.Matrix, t *m3.IMatrix, eps float64) bool {
	A, B, C, xi, eta, zeta := params(*l)

	//step 1: order |a| <= |b|
	if A > B+eps || (math.Abs(A-B) <= eps && math.Abs(xi) > math.Abs(eta)+eps) {
		apply(l, t, m3.IMatrix{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}})
		return false
	}
	//step 2: order |b| <= |c|
	if B > C+eps || (math.Abs(B-C) <= eps && math.Abs(eta) > math.Abs(zeta)+eps) {
		apply(l, t, m3.IMatrix{{-1, 0, 0}, {0, 0, -1}, {0, -1, 0}})
		return false
	}
	//steps 3/4: fix the signs of (xi, eta, zeta)
	l1, l2, l3 := signEps(xi, eps), signEps(eta, eps), signEps(zeta, eps)
	if l1*l2*l3 == 1 {
		//step 3: all three can be made positive at once
		if l1 < 0 || l2 < 0 || l3 < 0 {
			i, j, k := l1, l2, l3
			apply(l, t, m3.IMatrix{{i, 0, 0}, {0, j, 0}, {0, 0, k}})
			return false
		}
	} else if l1 == 1 || l2 == 1 || l3 == 1 {
		//step 4: make all three non-positive. The sign matrix must have
		//determinant +1; when the forced flips have odd parity one of the
		//zero entries absorbs the extra flip (one always exists here).
		i, j, k := 1, 1, 1
		free := -1
		if l1 == 1 {
			i = -1
		} else if l1 == 0 {
			free = 0
		}
		if l2 == 1 {
			j = -1
		} else if l2 == 0 {
			free = 1
		}
		if l3 == 1 {
			k = -1
		} else if l3 == 0 {
			free = 2
		}
		if i*j*k == -1 {
			switch free {
			case 0:
				i = -1
			case 1:
				j = -1
			case 2:
				k = -1
			}
		}
		apply(l, t, m3.IMatrix{{i, 0, 0}, {0, j, 0}, {0, 0, k}})
		return false
	}
	//step 5
	if math.Abs(xi) > B+eps ||
		(math.Abs(xi-B) <= eps && 2*eta < zeta-eps) ||
		(math.Abs(xi+B) <= eps && zeta < -eps) {
		s := 1
		if xi < 0 {
			s = -1
		}
		apply(l, t, m3.IMatrix{{1, 0, 0}, {0, 1, 0}, {0, -s, 1}})
		return false
	}
	//step 6
	if math.Abs(eta) > A+eps ||
		(math.Abs(eta-A) <= eps && 2*xi < zeta-eps) ||
		(math.Abs(eta+A) <= eps && zeta < -eps) {
		s := 1
		if eta < 0 {
			s = -1
		}
		apply(l, t, m3.IMatrix{{1, 0, 0}, {0, 1, 0}, {-s, 0, 1}})
		return false
	}
	//step 7
	if math.Abs(zeta) > A+eps ||
		(math.Abs(zeta-A) <= eps && 2*xi < eta-eps) ||
		(math.Abs(zeta+A) <= eps && eta < -eps) {
		s := 1
		if zeta < 0 {
			s = -1
		}
		apply(l, t, m3.IMatrix{{1, 0, 0}, {-s, 1, 0}, {0, 0, 1}})
		return false
	}
	//step 8
	if xi+eta+zeta+A+B < -eps ||
		(math.Abs(xi+eta+zeta+A+B) <= eps && 2*(A+eta)+zeta > eps) {
		apply(l, t, m3.IMatrix{{1, 0, 0}, {0, 1, 0}, {1, 1, 1}})
		return false
	}
	return true
}

//signEps classifies v as -1, 0 or +1 with a dead band of width eps.
func signEps(v, eps float64) int {
	if v > eps {
		return 1
	}
	if v < -eps {
		return -1
	}
	return 0
}

//IsReduced reports whether the lattice already satisfies the main Niggli
//conditions: ordered squared lengths and consistent signs of the mixed
//products, within eps.
func IsReduced(lattice m3.Matrix, eps float64) bool {
	A, B, C, xi, eta, zeta := params(lattice)
	e := eps * math.Pow(math.Abs(m3.Det(lattice)), 2.0/3.0)
	if A > B+e || B > C+e {
		return false
	}
	if math.Abs(xi) > B+e || math.Abs(eta) > A+e || math.Abs(zeta) > A+e {
		return false
	}
	pos := 0
	neg := 0
	for _, v := range []float64{xi, eta, zeta} {
		if v > e {
			pos++
		} else if v < -e {
			neg++
		}
	}
	//all positive or none positive
	return pos == 3 || pos == 0
}

//Error is the error type of the package, mirroring the root package's.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

//Decorate adds dec to the decoration stack of the error and returns the
//resulting stack.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical.
func (err Error) Critical() bool { return err.critical }
