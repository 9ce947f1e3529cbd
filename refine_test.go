/*
 * refine_test.go, part of spglib.
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
	"testing"

	"github.com/AlbertDeFusco/spglib/m3"
)

func TestRefineDistortedCubic(t *testing.T) {
	c := cubicCell(t, 4.0)
	c.Lattice = m3.Matrix{{4.00001, 0, 0}, {0.00002, 3.99999, 0}, {0, 0, 4.00002}}
	out, err := RefineCell(c, Tolerance{Symprec: 1e-3, AngleTol: -1})
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 1 {
		t.Fatalf("refined cell holds %d atoms, want 1", out.Len())
	}
	a := m3.Norm(out.Lattice[0])
	b := m3.Norm(out.Lattice[1])
	cl := m3.Norm(out.Lattice[2])
	if math.Abs(a-b) > 1e-12 || math.Abs(b-cl) > 1e-12 {
		t.Errorf("cubic lengths not equalized: %v %v %v", a, b, cl)
	}
	for _, pair := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		ang := m3.Angle(out.Lattice[pair[0]], out.Lattice[pair[1]])
		if math.Abs(ang-90) > 1e-10 {
			t.Errorf("angle between rows %v: %v, want 90", pair, ang)
		}
	}
}

func TestRefineFCCFromPrimitive(t *testing.T) {
	prim, err := FindPrimitive(fccCell(t, 4.0), DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	out, err := RefineCell(prim, DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 4 {
		t.Fatalf("refined fcc holds %d atoms, want 4", out.Len())
	}
	if math.Abs(out.Volume()-4*prim.Volume()) > 1e-6 {
		t.Errorf("volume %v, want %v", out.Volume(), 4*prim.Volume())
	}
	ang := m3.Angle(out.Lattice[0], out.Lattice[1])
	if math.Abs(ang-90) > 1e-10 {
		t.Errorf("conventional gamma %v, want 90", ang)
	}
}

func TestRefineHCP(t *testing.T) {
	out, err := RefineCell(hcpCell(t, 3.2, 5.2), DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 2 {
		t.Fatalf("refined hcp holds %d atoms, want 2", out.Len())
	}
	gamma := m3.Angle(out.Lattice[0], out.Lattice[1])
	if math.Abs(gamma-120) > 1e-10 {
		t.Errorf("hexagonal gamma %v, want 120", gamma)
	}
	if math.Abs(m3.Norm(out.Lattice[0])-m3.Norm(out.Lattice[1])) > 1e-12 {
		t.Error("hexagonal a and b differ")
	}
}

//refinement must land on a cell of the same space group
func TestRefineRoundTrip(t *testing.T) {
	cells := map[string]*Cell{
		"fcc":       fccCell(t, 4.0),
		"hcp":       hcpCell(t, 3.21, 5.21),
		"rock salt": rockSaltCell(t, 5.64),
	}
	for name, c := range cells {
		before, err := IdentifySpacegroup(c, DefaultTolerance())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		ref, err := RefineCell(c, DefaultTolerance())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		after, err := IdentifySpacegroup(ref, DefaultTolerance())
		if err != nil {
			t.Fatalf("%s refined: %v", name, err)
		}
		if after.Number != before.Number {
			t.Errorf("%s: group %d before refinement, %d after", name, before.Number, after.Number)
		}
	}
}

func TestRefinePreservesSpecies(t *testing.T) {
	out, err := RefineCell(rockSaltCell(t, 5.64), DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	counts := map[int]int{}
	for _, typ := range out.Types {
		counts[typ]++
	}
	if counts[11] != 4 || counts[17] != 4 {
		t.Errorf("species counts %v, want 4 of each", counts)
	}
}
