/*
 * identify_test.go, part of spglib.
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

func identifyNumber(t *testing.T, c *Cell) *Dataset {
	t.Helper()
	ds, err := IdentifySpacegroup(c, DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestIdentifySimpleCubic(t *testing.T) {
	ds := identifyNumber(t, cubicCell(t, 4.0))
	if ds.Number != 221 || ds.International != "Pm-3m" {
		t.Fatalf("simple cubic: got %s (%d), want Pm-3m (221)", ds.International, ds.Number)
	}
	if ds.PointGroup != "m-3m" {
		t.Errorf("point group %q, want m-3m", ds.PointGroup)
	}
	if len(ds.Operations) != 48 {
		t.Errorf("%d operations, want 48", len(ds.Operations))
	}
	if len(ds.Wyckoffs) != 1 || len(ds.EquivalentAtoms) != 1 {
		t.Fatalf("per-atom arrays sized %d, %d", len(ds.Wyckoffs), len(ds.EquivalentAtoms))
	}
	if ds.EquivalentAtoms[0] != 0 {
		t.Error("single atom not its own equivalent")
	}
}

func TestIdentifyFCC(t *testing.T) {
	ds := identifyNumber(t, fccCell(t, 4.0))
	if ds.Number != 225 || ds.International != "Fm-3m" {
		t.Fatalf("fcc: got %s (%d), want Fm-3m (225)", ds.International, ds.Number)
	}
	for i, e := range ds.EquivalentAtoms {
		if e != 0 {
			t.Errorf("atom %d not equivalent to atom 0", i)
		}
	}
	for i := 1; i < 4; i++ {
		if ds.Wyckoffs[i] != ds.Wyckoffs[0] {
			t.Errorf("centering copies got different Wyckoff letters %c, %c", ds.Wyckoffs[0], ds.Wyckoffs[i])
		}
	}
}

func TestIdentifyBCC(t *testing.T) {
	c, err := NewCell(
		m3.Matrix{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]m3.Vector{{0, 0, 0}, {0.5, 0.5, 0.5}},
		[]int{26, 26}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ds := identifyNumber(t, c)
	if ds.Number != 229 || ds.International != "Im-3m" {
		t.Fatalf("bcc: got %s (%d), want Im-3m (229)", ds.International, ds.Number)
	}
}

func TestIdentifyRockSalt(t *testing.T) {
	ds := identifyNumber(t, rockSaltCell(t, 5.64))
	if ds.Number != 225 {
		t.Fatalf("rock salt: got %s (%d), want Fm-3m (225)", ds.International, ds.Number)
	}
	if ds.Wyckoffs[0] == ds.Wyckoffs[4] {
		t.Errorf("Na and Cl share Wyckoff letter %c", ds.Wyckoffs[0])
	}
	for i := 0; i < 4; i++ {
		if ds.EquivalentAtoms[i] != 0 || ds.EquivalentAtoms[i+4] != 4 {
			t.Errorf("equivalence classes wrong: %v", ds.EquivalentAtoms)
		}
	}
}

func TestIdentifyCsCl(t *testing.T) {
	c, err := NewCell(
		m3.Matrix{{4.11, 0, 0}, {0, 4.11, 0}, {0, 0, 4.11}},
		[]m3.Vector{{0, 0, 0}, {0.5, 0.5, 0.5}},
		[]int{55, 17}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ds := identifyNumber(t, c)
	if ds.Number != 221 {
		t.Fatalf("CsCl: got %s (%d), want Pm-3m (221)", ds.International, ds.Number)
	}
	if ds.Wyckoffs[0] == ds.Wyckoffs[1] {
		t.Error("Cs and Cl share a Wyckoff letter")
	}
}

func TestIdentifyHCP(t *testing.T) {
	ds := identifyNumber(t, hcpCell(t, 3.21, 5.21))
	if ds.Number != 194 || ds.International != "P6_3/mmc" {
		t.Fatalf("hcp: got %s (%d), want P6_3/mmc (194)", ds.International, ds.Number)
	}
	if ds.Wyckoffs[0] != ds.Wyckoffs[1] {
		t.Error("the two hcp atoms belong to one orbit")
	}
}

func TestIdentifyTetragonal(t *testing.T) {
	c, err := NewCell(
		m3.Matrix{{4, 0, 0}, {0, 4, 0}, {0, 0, 5}},
		[]m3.Vector{{0, 0, 0}},
		[]int{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ds := identifyNumber(t, c)
	if ds.Number != 123 {
		t.Fatalf("tetragonal P: got %s (%d), want P4/mmm (123)", ds.International, ds.Number)
	}
}

func TestIdentifyOrthorhombic(t *testing.T) {
	c, err := NewCell(
		m3.Matrix{{3, 0, 0}, {0, 4, 0}, {0, 0, 5}},
		[]m3.Vector{{0, 0, 0}},
		[]int{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ds := identifyNumber(t, c)
	if ds.Number != 47 {
		t.Fatalf("orthorhombic P: got %s (%d), want Pmmm (47)", ds.International, ds.Number)
	}
}

func TestIdentifyHexagonal(t *testing.T) {
	c := hcpCell(t, 3.0, 4.0)
	c.Positions = c.Positions[:1]
	c.Positions[0] = m3.Vector{0, 0, 0}
	c.Types = c.Types[:1]
	ds := identifyNumber(t, c)
	if ds.Number != 191 {
		t.Fatalf("hexagonal P: got %s (%d), want P6/mmm (191)", ds.International, ds.Number)
	}
}

func TestIdentifyOffsetAtom(t *testing.T) {
	//a lone atom away from the origin is still perfect Pm-3m, with a
	//continuous origin shift no rational grid can carry
	c, err := NewCell(
		m3.Matrix{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]m3.Vector{{0.0003, 0.9998, 0.0004}},
		[]int{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ds, err := IdentifySpacegroup(c, Tolerance{Symprec: 1e-6, AngleTol: -1})
	if err != nil {
		t.Fatal(err)
	}
	if ds.Number != 221 {
		t.Errorf("offset atom: got %s (%d), want Pm-3m (221)", ds.International, ds.Number)
	}
}

func TestIdentifyTriclinic(t *testing.T) {
	lat := m3.Matrix{{4, 0, 0}, {0.8, 5, 0}, {0.3, 0.7, 6}}
	one, err := NewCell(lat, []m3.Vector{{0.11, 0.23, 0.31}}, []int{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	//a single atom always carries inversion through its own site
	ds := identifyNumber(t, one)
	if ds.Number != 2 || ds.International != "P-1" {
		t.Fatalf("lone triclinic atom: got %s (%d), want P-1 (2)", ds.International, ds.Number)
	}
	//two unrelated species break the inversion
	two, err := NewCell(lat,
		[]m3.Vector{{0.11, 0.23, 0.31}, {0.57, 0.13, 0.83}},
		[]int{1, 2}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ds = identifyNumber(t, two)
	if ds.Number != 1 || ds.International != "P1" {
		t.Fatalf("generic pair: got %s (%d), want P1 (1)", ds.International, ds.Number)
	}
}

func TestIdentifyMonoclinic(t *testing.T) {
	beta := 100.0 * math.Pi / 180
	c, err := NewCell(
		m3.Matrix{{4, 0, 0}, {0, 5, 0}, {6 * math.Cos(beta), 0, 6 * math.Sin(beta)}},
		[]m3.Vector{{0, 0, 0}},
		[]int{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ds := identifyNumber(t, c)
	if ds.Number != 10 || ds.International != "P2/m" {
		t.Fatalf("monoclinic P: got %s (%d), want P2/m (10)", ds.International, ds.Number)
	}
}

func TestIdentifyRhombohedral(t *testing.T) {
	c, err := NewCell(
		m3.Matrix{{4, 0.5, 0.5}, {0.5, 4, 0.5}, {0.5, 0.5, 4}},
		[]m3.Vector{{0, 0, 0}},
		[]int{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ds := identifyNumber(t, c)
	if ds.Number != 166 || ds.International != "R-3m" {
		t.Fatalf("rhombohedral: got %s (%d), want R-3m (166)", ds.International, ds.Number)
	}
}

func TestIdentifyDistorted(t *testing.T) {
	//distortion below the tolerance must not change the answer
	c := cubicCell(t, 4.0)
	c.Lattice[0][1] = 1e-7
	ds, err := IdentifySpacegroup(c, Tolerance{Symprec: 1e-4, AngleTol: -1})
	if err != nil {
		t.Fatal(err)
	}
	if ds.Number != 221 {
		t.Errorf("distorted cubic: got %d, want 221", ds.Number)
	}
}

func TestSpacegroupString(t *testing.T) {
	s, err := Spacegroup(cubicCell(t, 4.0), DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if s != "Pm-3m (221)" {
		t.Errorf("got %q, want %q", s, "Pm-3m (221)")
	}
}

func TestIdentifyDiamond(t *testing.T) {
	//diamond in the conventional cubic cell, origin choice 2
	base := []m3.Vector{{0, 0, 0}, {0.5, 0.5, 0}, {0.5, 0, 0.5}, {0, 0.5, 0.5}}
	var pos []m3.Vector
	var types []int
	for _, b := range base {
		pos = append(pos, b)
		pos = append(pos, m3.Vector{b[0] + 0.25, b[1] + 0.25, b[2] + 0.25})
		types = append(types, 6, 6)
	}
	c, err := NewCell(m3.Matrix{{3.57, 0, 0}, {0, 3.57, 0}, {0, 0, 3.57}}, pos, types, nil)
	if err != nil {
		t.Fatal(err)
	}
	ds := identifyNumber(t, c)
	if ds.Number != 227 {
		t.Fatalf("diamond: got %s (%d), want Fd-3m (227)", ds.International, ds.Number)
	}
	for i := 1; i < len(ds.Wyckoffs); i++ {
		if ds.Wyckoffs[i] != ds.Wyckoffs[0] {
			t.Error("diamond atoms split across Wyckoff positions")
			break
		}
	}
}
