/*
 * identify.go, part of spglib.
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
	"fmt"
	"math"

	"github.com/AlbertDeFusco/spglib/hall"
	"github.com/AlbertDeFusco/spglib/m3"
)

//spaceGroupMatch carries everything the identification learned about a
//cell: the matched table entry, the conventional basis expressed in the
//primitive one, and the origin shift that aligns the cell with the
//standard setting. RefineCell reuses it to rebuild the cell.
type spaceGroupMatch struct {
	entry      *hall.Entry
	hallNumber int
	pgSymbol   string
	pgNumber   int
	system     crystalSystem
	prim       *Cell
	v          m3.Matrix   //L_prim = v . L_input
	c          m3.IMatrix  //conventional axes, rows in primitive fractional coords
	origin     m3.Vector   //x_std = x_conv - origin
	centerings []m3.Vector //lattice cosets of the conventional cell
	inputOps   []Operation
}

//IdentifySpacegroup determines the space group of a cell and returns a
//Dataset describing the standard setting. On failure the tolerance is
//relaxed by 5% and the search repeated, up to four times, after which
//ErrToleranceExhausted is returned.
func IdentifySpacegroup(c *Cell, tol Tolerance) (*Dataset, error) {
	m, err := identifyMatch(c, tol)
	if err != nil {
		return nil, err
	}
	return m.dataset(c, tol)
}

//Spacegroup is a convenience wrapper returning the international symbol
//with the group number appended, in the style "Im-3m (229)".
func Spacegroup(c *Cell, tol Tolerance) (string, error) {
	ds, err := IdentifySpacegroup(c, tol)
	if err != nil {
		return "", errDecorate(err, "Spacegroup")
	}
	return fmt.Sprintf("%s (%d)", ds.International, ds.Number), nil
}

func identifyMatch(c *Cell, tol Tolerance) (*spaceGroupMatch, error) {
	t := tol
	var last error
	for try := 0; try < 5; try++ {
		m, err := identifyOnce(c, t)
		if err == nil {
			return m, nil
		}
		last = err
		t = t.relaxed()
	}
	return nil, errDecorate(cerr(ErrToleranceExhausted, "IdentifySpacegroup"), last.Error())
}

func identifyOnce(c *Cell, tol Tolerance) (*spaceGroupMatch, error) {
	inputOps, err := FindSymmetry(c, tol)
	if err != nil {
		return nil, err
	}
	prim, v, err := extractPrimitive(c, inputOps, tol)
	if err != nil {
		return nil, err
	}
	primOps, err := FindSymmetry(prim, tol)
	if err != nil {
		return nil, err
	}
	//identification works with the unitary subgroup; time-reversal
	//operations of magnetic cells do not enter space-group tables
	unitary := primOps[:0:0]
	for _, op := range primOps {
		if !op.TimeReversal {
			unitary = append(unitary, op)
		}
	}
	primOps = unitary
	rots := Rotations(primOps)
	pgSymbol, pgNumber, _, err := PointGroup(rots)
	if err != nil {
		return nil, err
	}
	system := pointGroupSystem(pgSymbol)
	axes := conventionalAxes(prim, primOps, system, tol)
	mult := m3.IDet(axes)
	if mult < 1 || mult > 4 {
		return nil, cerr(ErrInvalidInput, "IdentifySpacegroup: degenerate conventional axes")
	}
	epsO := originEps(prim.Lattice, tol)
	for _, u := range settingCorrections(system) {
		ca := m3.IMul(u, axes)
		convOps, cvs, ok := conventionalOps(primOps, ca)
		if !ok {
			continue
		}
		for hn := 1; hn <= hall.Len(); hn++ {
			e := hall.Get(hn)
			if hall.PointGroupSymbol(e.Number) != pgSymbol {
				continue
			}
			dbOps := e.Ops()
			if len(dbOps) != len(primOps)*len(cvs) {
				continue
			}
			p, ok := matchSetting(convOps, cvs, dbOps, epsO)
			if !ok {
				continue
			}
			return &spaceGroupMatch{
				entry:      e,
				hallNumber: hn,
				pgSymbol:   pgSymbol,
				pgNumber:   pgNumber,
				system:     system,
				prim:       prim,
				v:          v,
				c:          ca,
				origin:     p,
				centerings: cvs,
				inputOps:   inputOps,
			}, nil
		}
	}
	return nil, cerr(ErrInvalidInput, "IdentifySpacegroup: no table entry matches the symmetry")
}

func originEps(lattice m3.Matrix, tol Tolerance) float64 {
	e := 2 * fracEps(lattice, tol)
	if e < 1e-4 {
		e = 1e-4
	}
	if e > 0.02 {
		e = 0.02
	}
	return e
}

//conventionalAxes builds integer rows, in the primitive fractional
//basis, for the conventional cell of the crystal system. The principal
//axis comes from the rotation set; in-plane directions are the shortest
//lattice vectors perpendicular to it.
func conventionalAxes(prim *Cell, ops []Operation, system crystalSystem, tol Tolerance) m3.IMatrix {
	rots := Rotations(ops)
	axes := axesByOrder(rots)
	switch system {
	case cubic:
		set := axes[4]
		if len(set) < 3 {
			set = axes[2]
		}
		if len(set) >= 3 {
			return completeRight(set[0], set[1], set[2])
		}
	case tetragonal:
		if len(axes[4]) > 0 {
			cax := axes[4][0]
			a := shortestPerp(prim.Lattice, cax, [3]int{})
			w4 := findOrderRotation(rots, 4)
			b := m3.IMulV(w4, a)
			return completeRight(a, b, cax)
		}
	case hexagonal, trigonal:
		principal := 6
		if len(axes[6]) == 0 {
			principal = 3
		}
		if len(axes[principal]) > 0 {
			cax := axes[principal][0]
			a := shortestPerp(prim.Lattice, cax, [3]int{})
			w3 := findOrderRotation(rots, 3)
			b := m3.IMulV(w3, a)
			return completeRight(a, b, cax)
		}
	case orthorhombic:
		if len(axes[2]) >= 3 {
			return completeRight(axes[2][0], axes[2][1], axes[2][2])
		}
	case monoclinic:
		if len(axes[2]) > 0 {
			bax := axes[2][0]
			a := shortestPerp(prim.Lattice, bax, [3]int{})
			cax := shortestPerp(prim.Lattice, bax, a)
			return completeRight(a, bax, cax)
		}
	}
	return m3.IIdent()
}

//shortestPerp finds the shortest lattice vector perpendicular to the
//given axis, skipping multiples of avoid when that is non-zero.
//Perpendicularity is judged in cartesian space through the lattice.
func shortestPerp(lattice m3.Matrix, ax [3]int, avoid [3]int) [3]int {
	axCart := m3.Cartesian(lattice, m3.Vector{float64(ax[0]), float64(ax[1]), float64(ax[2])})
	axNorm := m3.Norm(axCart)
	best := [3]int{}
	bestLen := math.Inf(1)
	for i := -3; i <= 3; i++ {
		for j := -3; j <= 3; j++ {
			for k := -3; k <= 3; k++ {
				n := [3]int{i, j, k}
				if n == ([3]int{}) {
					continue
				}
				if avoid != ([3]int{}) && crossInt(n, avoid) == ([3]int{}) {
					continue
				}
				cart := m3.Cartesian(lattice, m3.Vector{float64(i), float64(j), float64(k)})
				l := m3.Norm(cart)
				if l <= 0 {
					continue
				}
				if math.Abs(m3.Dot(cart, axCart))/(l*axNorm) > 1e-3 {
					continue
				}
				if l < bestLen-1e-8 || (math.Abs(l-bestLen) <= 1e-8 && intLess(n, best)) {
					bestLen = l
					best = n
				}
			}
		}
	}
	if best == ([3]int{}) {
		return anyIndependent(ax)
	}
	return primitiveVec(best)
}

func intLess(a, b [3]int) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

//settingCorrections returns the unimodular basis changes tried on top of
//the computed conventional axes. Only proper transforms appear; an
//improper one would turn an enantiomorphic group into its partner.
func settingCorrections(system crystalSystem) []m3.IMatrix {
	switch system {
	case cubic, tetragonal, orthorhombic:
		return properSignedPerms()
	case hexagonal, trigonal:
		return hexagonalRotations()
	case monoclinic:
		return monoclinicCorrections()
	}
	return []m3.IMatrix{m3.IIdent()}
}

func properSignedPerms() []m3.IMatrix {
	perms := [][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}, {0, 2, 1}, {1, 0, 2}, {2, 1, 0}}
	var out []m3.IMatrix
	for _, p := range perms {
		for s := 0; s < 8; s++ {
			var m m3.IMatrix
			for i := 0; i < 3; i++ {
				sign := 1
				if s&(1<<uint(i)) != 0 {
					sign = -1
				}
				m[i][p[i]] = sign
			}
			if m3.IDet(m) == 1 {
				out = append(out, m)
			}
		}
	}
	return out
}

//hexagonalRotations is the proper symmetry of the hexagonal prism in
//hexagonal axes: the 12 elements generated by the sixfold about c and a
//twofold along a.
func hexagonalRotations() []m3.IMatrix {
	gens := []m3.IMatrix{
		{{1, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{1, -1, 0}, {0, -1, 0}, {0, 0, -1}},
	}
	set := []m3.IMatrix{m3.IIdent()}
	for changed := true; changed; {
		changed = false
		for _, a := range set {
			for _, g := range gens {
				p := m3.IMul(g, a)
				found := false
				for _, q := range set {
					if m3.IEqual(p, q) {
						found = true
						break
					}
				}
				if !found {
					set = append(set, p)
					changed = true
				}
			}
		}
	}
	return set
}

//monoclinicCorrections enumerates the proper cell choices preserving the
//unique b axis: shears and swaps within the a-c plane with entries in
//{-1,0,1}, optionally flipping b to keep the determinant positive.
func monoclinicCorrections() []m3.IMatrix {
	var out []m3.IMatrix
	for _, e := range []int{1, -1} {
		for p := -1; p <= 1; p++ {
			for q := -1; q <= 1; q++ {
				for r := -1; r <= 1; r++ {
					for s := -1; s <= 1; s++ {
						if e*(p*s-q*r) != 1 {
							continue
						}
						out = append(out, m3.IMatrix{
							{p, 0, q},
							{0, e, 0},
							{r, 0, s},
						})
					}
				}
			}
		}
	}
	return out
}

//conventionalOps rewrites the primitive-basis operations in the basis
//given by the integer rows ca and collects the centering translations of
//the primitive lattice in that basis. It reports failure when a rotation
//does not come out integer, which means ca is not a lattice basis for
//this symmetry.
func conventionalOps(primOps []Operation, ca m3.IMatrix) ([]Operation, []m3.Vector, bool) {
	caf := m3.IToF(ca)
	inv, err := m3.Inverse(caf)
	if err != nil {
		return nil, nil, false
	}
	q := m3.Transpose(inv) //x_conv = q . x_prim
	qi := m3.Transpose(caf)
	out := make([]Operation, 0, len(primOps))
	for _, op := range primOps {
		wf := m3.Mul(m3.Mul(q, m3.IToF(op.Rotation)), qi)
		w, ok := m3.NearInt(wf, 1e-5)
		if !ok {
			return nil, nil, false
		}
		t := m3.Wrap(m3.MulV(q, op.Translation), 1e-8)
		out = append(out, Operation{Rotation: w, Translation: t, TimeReversal: op.TimeReversal})
	}
	mult := m3.IDet(ca)
	cvs := []m3.Vector{{0, 0, 0}}
	for a := 0; a < 4 && len(cvs) < mult; a++ {
		for b := 0; b < 4 && len(cvs) < mult; b++ {
			for cc := 0; cc < 4 && len(cvs) < mult; cc++ {
				u := m3.Wrap(m3.MulV(q, m3.Vector{float64(a), float64(b), float64(cc)}), 1e-8)
				dup := false
				for _, have := range cvs {
					if fracClose(u, have, 1e-6) {
						dup = true
						break
					}
				}
				if !dup {
					cvs = append(cvs, u)
				}
			}
		}
	}
	if len(cvs) != mult {
		return nil, nil, false
	}
	return out, cvs, true
}

func fracClose(a, b m3.Vector, eps float64) bool {
	d := m3.ShortestImage(m3.Sub(a, b))
	return math.Abs(d[0]) < eps && math.Abs(d[1]) < eps && math.Abs(d[2]) < eps
}

//matchSetting checks whether the conventional-basis operations are the
//table entry's operations up to an origin shift, and returns that shift.
//Rotation multisets are compared first; the shift is then searched on
//the 1/24 grid, which carries every rational origin difference between
//standard settings. Translations are compared modulo the centering
//vectors, so one representative per distinct rotation suffices.
func matchSetting(convOps []Operation, cvs []m3.Vector, dbOps []hall.Op, eps float64) (m3.Vector, bool) {
	ourCount := map[m3.IMatrix]int{}
	var reps []settingRep
	for _, op := range convOps {
		if op.TimeReversal {
			return m3.Vector{}, false
		}
		if ourCount[op.Rotation] == 0 {
			reps = append(reps, settingRep{w: op.Rotation, tOurs: op.Translation})
		}
		ourCount[op.Rotation]++
	}
	dbCount := map[m3.IMatrix]int{}
	dbFirst := map[m3.IMatrix]m3.Vector{}
	for _, op := range dbOps {
		if dbCount[op.R] == 0 {
			dbFirst[op.R] = op.TFrac()
		}
		dbCount[op.R]++
	}
	if len(ourCount) != len(dbCount) {
		return m3.Vector{}, false
	}
	mult := len(cvs)
	for i := range reps {
		//the table lists each rotation once per centering coset
		n, ok := dbCount[reps[i].w]
		if !ok || n != ourCount[reps[i].w]*mult {
			return m3.Vector{}, false
		}
		reps[i].tDB = dbFirst[reps[i].w]
	}
	if p, ok := gridOrigin(reps, cvs, eps); ok {
		return p, true
	}
	return solvedOrigin(reps, cvs, eps)
}

type settingRep struct {
	w     m3.IMatrix
	tOurs m3.Vector
	tDB   m3.Vector
}

//originWorks checks one origin-shift candidate: every representative
//must satisfy t_ours + (W-1)p = t_db modulo the centering lattice.
func originWorks(p m3.Vector, reps []settingRep, cvs []m3.Vector, eps float64) bool {
	for _, r := range reps {
		shift := m3.Sub(m3.IMulVF(r.w, p), p) //(W-1)p
		t := m3.Add(r.tOurs, shift)
		if !closeModCentering(t, r.tDB, cvs, eps) {
			return false
		}
	}
	return true
}

//gridOrigin scans the 1/24 grid, which carries every rational origin
//difference between standard settings.
func gridOrigin(reps []settingRep, cvs []m3.Vector, eps float64) (m3.Vector, bool) {
	for iz := 0; iz < hall.Denom; iz++ {
		for iy := 0; iy < hall.Denom; iy++ {
			for ix := 0; ix < hall.Denom; ix++ {
				p := m3.Vector{
					float64(ix) / hall.Denom,
					float64(iy) / hall.Denom,
					float64(iz) / hall.Denom,
				}
				if originWorks(p, reps, cvs, eps) {
					return p, true
				}
			}
		}
	}
	return m3.Vector{}, false
}

//solvedOrigin recovers origins off the rational grid, which arise when
//the cell's own origin is arbitrary, e.g. a lone atom at a generic
//position. A rotation leaving no direction fixed pins p through
//(W-1)p = t_db - t_ours up to a lattice translation, so the finitely
//many right-hand sides are solved exactly and verified in full. A group
//with no such rotation leaves at least one origin component free, and
//the grid has already covered the pinned ones.
func solvedOrigin(reps []settingRep, cvs []m3.Vector, eps float64) (m3.Vector, bool) {
	for _, r := range reps {
		a := m3.IToF(r.w)
		for i := 0; i < 3; i++ {
			a[i][i]--
		}
		if math.Abs(m3.Det(a)) < 0.5 {
			continue
		}
		inv, err := m3.Inverse(a)
		if err != nil {
			continue
		}
		for _, cv := range cvs {
			for nx := -4; nx <= 4; nx++ {
				for ny := -4; ny <= 4; ny++ {
					for nz := -4; nz <= 4; nz++ {
						rhs := m3.Vector{
							r.tDB[0] + cv[0] + float64(nx) - r.tOurs[0],
							r.tDB[1] + cv[1] + float64(ny) - r.tOurs[1],
							r.tDB[2] + cv[2] + float64(nz) - r.tOurs[2],
						}
						p := m3.Wrap(m3.MulV(inv, rhs), 1e-8)
						if originWorks(p, reps, cvs, eps) {
							return p, true
						}
					}
				}
			}
		}
		//any valid origin satisfies this rotation's equation for some
		//offset in range, so a miss here is a miss for the entry
		return m3.Vector{}, false
	}
	return m3.Vector{}, false
}

func closeModCentering(a, b m3.Vector, cvs []m3.Vector, eps float64) bool {
	for _, cv := range cvs {
		if fracClose(a, m3.Add(b, cv), eps) {
			return true
		}
	}
	return false
}
