/*
 * symmetry.go, part of spglib.
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

//FindSymmetry returns every rigid operation (rotation plus translation)
//mapping the periodic structure onto itself within the tolerance. The
//identity is always present in the result. For a magnetic cell (Spins
//non-nil) an operation is also accepted when every mapped pair of moments
//matches after a global sign flip; such operations carry TimeReversal.
//
//The search runs in a Niggli-reduced basis, where the rotation parts of
//all lattice point-group operations have elements in {-1,0,1}, and maps
//the result back to the input basis. The operation count of any
//crystallographic structure is bounded by 48 per primitive repeat;
//exceeding 48 per atom means the tolerance has merged distinct atoms and
//is reported as ErrBufferTooSmall.
func FindSymmetry(c *Cell, tol Tolerance) ([]Operation, error) {
	if err := c.check(); err != nil {
		return nil, errDecorate(err, "FindSymmetry")
	}
	red, t, err := niggli.Reduce(c.Lattice, tol.Symprec)
	if err != nil {
		return nil, cerr(ErrNotConverged, "FindSymmetry: "+err.Error())
	}
	//coordinates transform with the inverse transpose of the basis change
	p := m3.ITranspose(m3.IInverse(t))
	rc := &Cell{Lattice: red, Types: c.Types, Spins: c.Spins}
	rc.Positions = make([]m3.Vector, c.Len())
	for i, x := range c.Positions {
		rc.Positions[i] = m3.Wrap(m3.IMulVF(p, x), 1e-10)
	}

	rots := latticeCandidates(red, tol)
	var ops []Operation
	for _, w := range rots {
		ops = appendRotationOps(ops, rc, w, tol)
	}

	//back to the input basis
	pinv := m3.IInverse(p)
	for i := range ops {
		ops[i] = ops[i].transformed(pinv)
	}
	ops = dedupeOperations(c, ops, tol)
	sortOperations(ops)
	if len(ops) > 48*c.Len() {
		return nil, cerr(ErrBufferTooSmall, "FindSymmetry")
	}
	return ops, nil
}

//latticeCandidates enumerates the unimodular integer matrices preserving
//the metric tensor of the (reduced) lattice within tolerance. For a
//Niggli-reduced basis all candidates have elements in {-1,0,1}, so the
//enumeration space is 3^9.
func latticeCandidates(lattice m3.Matrix, tol Tolerance) []m3.IMatrix {
	g := m3.Metric(lattice)
	lengths := m3.Vector{math.Sqrt(g[0][0]), math.Sqrt(g[1][1]), math.Sqrt(g[2][2])}
	eps := tol.metricEps(lattice)

	var out []m3.IMatrix
	var w m3.IMatrix
	var scan func(k int)
	scan = func(k int) {
		if k == 9 {
			d := m3.IDet(w)
			if d != 1 && d != -1 {
				return
			}
			if metricPreserved(g, lengths, w, tol, eps) {
				out = append(out, w)
			}
			return
		}
		for v := -1; v <= 1; v++ {
			w[k/3][k%3] = v
			scan(k + 1)
		}
	}
	scan(0)
	return out
}

//metricPreserved checks transpose(W)*G*W against G: basis-vector lengths
//within Symprec, pair angles within AngleTol degrees (or the derived
//metric bound when AngleTol is negative).
func metricPreserved(g m3.Matrix, lengths m3.Vector, w m3.IMatrix, tol Tolerance, eps float64) bool {
	wt := m3.ITranspose(w)
	gp := m3.Mul(m3.Mul(m3.IToF(wt), g), m3.IToF(w))
	for i := 0; i < 3; i++ {
		li := math.Sqrt(gp[i][i])
		if math.Abs(li-lengths[i]) > 2*tol.Symprec {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if tol.AngleTol > 0 {
				a := angleFromMetric(g, i, j)
				ap := angleFromMetric(gp, i, j)
				if math.Abs(a-ap) > tol.AngleTol {
					return false
				}
			} else if math.Abs(gp[i][j]-g[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

func angleFromMetric(g m3.Matrix, i, j int) float64 {
	c := g[i][j] / math.Sqrt(g[i][i]*g[j][j])
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c) * 180 / math.Pi
}

//appendRotationOps finds the admissible translations of one candidate
//rotation. Aligning one atom of the rarest species onto every atom of
//the same species reduces the translation search to O(atoms) candidates,
//each verified against the full atom set.
func appendRotationOps(ops []Operation, c *Cell, w m3.IMatrix, tol Tolerance) []Operation {
	ref := rarestAtom(c)
	wref := m3.IMulVF(w, c.Positions[ref])
	for j := range c.Positions {
		if c.Types[j] != c.Types[ref] {
			continue
		}
		t := m3.Wrap(m3.Sub(c.Positions[j], wref), 1e-10)
		if tr, ok := mapsCell(c, w, t, tol); ok {
			ops = append(ops, Operation{Rotation: w, Translation: t, TimeReversal: tr})
		}
	}
	return ops
}

//rarestAtom returns the index of the first atom of the least-populated
//species, the cheapest anchor for translation alignment.
func rarestAtom(c *Cell) int {
	counts := map[int]int{}
	for _, t := range c.Types {
		counts[t]++
	}
	best, bestN := 0, c.Len()+1
	for i, t := range c.Types {
		if counts[t] < bestN {
			best, bestN = i, counts[t]
		}
	}
	return best
}

//mapsCell verifies that the candidate operation (w, t) maps every atom
//onto an atom of the same species within Symprec. For magnetic cells it
//additionally reports whether the match required time reversal: the
//moments must either all agree or all agree after a sign flip.
func mapsCell(c *Cell, w m3.IMatrix, t m3.Vector, tol Tolerance) (timeReversal bool, ok bool) {
	proper := true
	flipped := c.Spins != nil
	for k := range c.Positions {
		y := m3.Add(m3.IMulVF(w, c.Positions[k]), t)
		found := false
		for m := range c.Positions {
			if c.Types[m] != c.Types[k] {
				continue
			}
			if c.Distance(y, c.Positions[m]) > tol.Symprec {
				continue
			}
			found = true
			if c.Spins != nil {
				if math.Abs(c.Spins[m]-c.Spins[k]) > tol.Symprec {
					proper = false
				}
				if math.Abs(c.Spins[m]+c.Spins[k]) > tol.Symprec {
					flipped = false
				}
			}
			break
		}
		if !found {
			return false, false
		}
	}
	if c.Spins == nil {
		return false, true
	}
	if proper {
		return false, true
	}
	if flipped {
		return true, true
	}
	return false, false
}

//dedupeOperations removes operations equal modulo lattice translation,
//keeping the lexicographically smallest fractional translation among
//tolerance-equivalent candidates.
func dedupeOperations(c *Cell, ops []Operation, tol Tolerance) []Operation {
	var out []Operation
	for _, op := range ops {
		dup := false
		for i, kept := range out {
			if kept.Rotation != op.Rotation || kept.TimeReversal != op.TimeReversal {
				continue
			}
			if c.Distance(kept.Translation, op.Translation) <= tol.Symprec {
				if lexLess(op.Translation, kept.Translation) {
					out[i].Translation = op.Translation
				}
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, op)
		}
	}
	return out
}

func lexLess(a, b m3.Vector) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
