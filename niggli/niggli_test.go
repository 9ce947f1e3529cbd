/*
 * niggli_test.go, part of spglib.
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

package niggli

import (
	"math"
	"testing"

	"github.com/AlbertDeFusco/spglib/m3"
)

func reduceOK(t *testing.T, lat m3.Matrix) (m3.Matrix, m3.IMatrix) {
	t.Helper()
	red, tr, err := Reduce(lat, 1e-5)
	if err != nil {
		t.Fatal(err)
	}
	d := m3.IDet(tr)
	if d != 1 && d != -1 {
		t.Fatalf("transform determinant %d, want +-1", d)
	}
	//the transform must actually produce the reduced lattice
	back := m3.Mul(m3.IToF(tr), lat)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(back[i][j]-red[i][j]) > 1e-9 {
				t.Fatalf("transform does not reproduce the reduced lattice at [%d][%d]", i, j)
			}
		}
	}
	if math.Abs(math.Abs(m3.Det(red))-math.Abs(m3.Det(lat))) > 1e-9 {
		t.Fatal("reduction changed the cell volume")
	}
	if !IsReduced(red, 1e-5) {
		t.Fatalf("result not Niggli reduced: %v", red)
	}
	return red, tr
}

func TestReduceSkewed(t *testing.T) {
	//a cubic cell hidden behind a strongly sheared basis
	lat := m3.Matrix{{1, 0, 0}, {4, 1, 0}, {-3, -2, 1}}
	red, _ := reduceOK(t, lat)
	for i := 0; i < 3; i++ {
		if math.Abs(m3.Norm(red[i])-1) > 1e-9 {
			t.Errorf("row %d has length %v, want 1", i, m3.Norm(red[i]))
		}
	}
}

func TestReduceIdempotent(t *testing.T) {
	lat := m3.Matrix{{3, 0, 0}, {1.2, 2.8, 0}, {0.5, 0.9, 2.5}}
	red, _ := reduceOK(t, lat)
	again, _ := reduceOK(t, red)
	for i := 0; i < 3; i++ {
		if math.Abs(m3.Norm(again[i])-m3.Norm(red[i])) > 1e-9 {
			t.Errorf("second reduction changed row lengths")
		}
	}
}

func TestReduceOrthorhombicOrder(t *testing.T) {
	//reduction sorts the axes by length
	lat := m3.Matrix{{4, 0, 0}, {0, 2, 0}, {0, 0, 3}}
	red, _ := reduceOK(t, lat)
	a, b, c := m3.Norm(red[0]), m3.Norm(red[1]), m3.Norm(red[2])
	if a > b+1e-9 || b > c+1e-9 {
		t.Errorf("axes not sorted: %v %v %v", a, b, c)
	}
}

func TestIsReduced(t *testing.T) {
	if !IsReduced(m3.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1e-5) {
		t.Error("identity lattice reported as not reduced")
	}
	if IsReduced(m3.Matrix{{1, 0, 0}, {4, 1, 0}, {-3, -2, 1}}, 1e-5) {
		t.Error("sheared lattice reported as reduced")
	}
}
