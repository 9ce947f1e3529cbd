/*
 * symmetry_test.go, part of spglib.
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

func cubicCell(t *testing.T, a float64) *Cell {
	t.Helper()
	c, err := NewCell(
		m3.Matrix{{a, 0, 0}, {0, a, 0}, {0, 0, a}},
		[]m3.Vector{{0, 0, 0}},
		[]int{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func fccCell(t *testing.T, a float64) *Cell {
	t.Helper()
	c, err := NewCell(
		m3.Matrix{{a, 0, 0}, {0, a, 0}, {0, 0, a}},
		[]m3.Vector{{0, 0, 0}, {0.5, 0.5, 0}, {0.5, 0, 0.5}, {0, 0.5, 0.5}},
		[]int{1, 1, 1, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func rockSaltCell(t *testing.T, a float64) *Cell {
	t.Helper()
	c, err := NewCell(
		m3.Matrix{{a, 0, 0}, {0, a, 0}, {0, 0, a}},
		[]m3.Vector{
			{0, 0, 0}, {0.5, 0.5, 0}, {0.5, 0, 0.5}, {0, 0.5, 0.5},
			{0.5, 0.5, 0.5}, {0, 0, 0.5}, {0, 0.5, 0}, {0.5, 0, 0},
		},
		[]int{11, 11, 11, 11, 17, 17, 17, 17}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func hcpCell(t *testing.T, a, c float64) *Cell {
	t.Helper()
	s := math.Sqrt(3) / 2
	cell, err := NewCell(
		m3.Matrix{{a, 0, 0}, {-a / 2, a * s, 0}, {0, 0, c}},
		[]m3.Vector{{1. / 3, 2. / 3, 0.25}, {2. / 3, 1. / 3, 0.75}},
		[]int{1, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return cell
}

func TestFindSymmetrySimpleCubic(t *testing.T) {
	ops, err := FindSymmetry(cubicCell(t, 4.0), DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 48 {
		t.Fatalf("simple cubic: %d operations, want 48", len(ops))
	}
	if !ops[0].IsIdentity(1e-8) {
		t.Error("first operation is not the identity")
	}
	for _, op := range ops {
		if m3.Norm(op.Translation) > 1e-6 {
			t.Errorf("symmorphic cell produced translation %v", op.Translation)
		}
	}
}

func TestFindSymmetryFCC(t *testing.T) {
	ops, err := FindSymmetry(fccCell(t, 4.0), DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 192 {
		t.Fatalf("fcc conventional cell: %d operations, want 192", len(ops))
	}
	//every operation must map the cell onto itself
	c := fccCell(t, 4.0)
	tol := DefaultTolerance()
	for _, op := range ops {
		for i, x := range c.Positions {
			y := op.Apply(x)
			found := false
			for j := range c.Positions {
				if c.Types[j] == c.Types[i] && tol.sameSite(c, y, c.Positions[j]) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("operation %v does not map atom %d onto the cell", op, i)
			}
		}
	}
}

func TestFindSymmetryNoise(t *testing.T) {
	c := cubicCell(t, 4.0)
	c.Positions[0] = m3.Vector{1e-8, -1e-8, 1e-8}
	ops, err := FindSymmetry(c, DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 48 {
		t.Errorf("noise below symprec broke symmetry: %d operations", len(ops))
	}
}

func TestFindSymmetryBrokenSymmetry(t *testing.T) {
	//a tetragonal distortion well above symprec cuts the group to 16
	c, err := NewCell(
		m3.Matrix{{4, 0, 0}, {0, 4, 0}, {0, 0, 4.2}},
		[]m3.Vector{{0, 0, 0}},
		[]int{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ops, err := FindSymmetry(c, DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 16 {
		t.Errorf("tetragonal cell: %d operations, want 16", len(ops))
	}
}

func TestFindSymmetryTwoSpecies(t *testing.T) {
	//CsCl: types must not mix even though the geometry alone is bcc
	c, err := NewCell(
		m3.Matrix{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]m3.Vector{{0, 0, 0}, {0.5, 0.5, 0.5}},
		[]int{55, 17}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ops, err := FindSymmetry(c, DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 48 {
		t.Errorf("CsCl: %d operations, want 48", len(ops))
	}
	for _, op := range ops {
		if m3.Norm(op.Translation) > 1e-6 {
			t.Errorf("CsCl is symmorphic, got translation %v", op.Translation)
		}
	}
}

func TestFindSymmetryAntiferromagnet(t *testing.T) {
	//up/down spins on a bcc arrangement: pure spatial group halves,
	//time-reversal operations restore the rest
	c, err := NewCell(
		m3.Matrix{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]m3.Vector{{0, 0, 0}, {0.5, 0.5, 0.5}},
		[]int{26, 26}, []float64{1, -1})
	if err != nil {
		t.Fatal(err)
	}
	ops, err := FindSymmetry(c, DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	var reversing int
	for _, op := range ops {
		if op.TimeReversal {
			reversing++
		}
	}
	if reversing == 0 {
		t.Error("no time-reversal operations found for the antiferromagnet")
	}
	if reversing != len(ops)/2 {
		t.Errorf("%d of %d operations reverse time, want half", reversing, len(ops))
	}
}

func TestFindSymmetryHCP(t *testing.T) {
	ops, err := FindSymmetry(hcpCell(t, 3.2, 5.2), DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 24 {
		t.Fatalf("hcp: %d operations, want 24", len(ops))
	}
	//P6_3/mmc is non-symmorphic: some operation carries a half c translation
	var screw bool
	for _, op := range ops {
		if math.Abs(op.Translation[2]-0.5) < 1e-6 {
			screw = true
			break
		}
	}
	if !screw {
		t.Error("no operation with the 6_3 half-translation")
	}
}

func TestFindSymmetryInvalid(t *testing.T) {
	_, err := NewCell(m3.Matrix{{1, 0, 0}, {2, 0, 0}, {0, 0, 1}}, []m3.Vector{{0, 0, 0}}, []int{1}, nil)
	if err == nil {
		t.Error("NewCell accepted a singular lattice")
	}
	_, err = NewCell(m3.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, []m3.Vector{{0, 0, 0}}, []int{1, 2}, nil)
	if err == nil {
		t.Error("NewCell accepted mismatched types")
	}
}
