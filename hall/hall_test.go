/*
 * hall_test.go, part of spglib.
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
	"testing"

	"github.com/AlbertDeFusco/spglib/m3"
)

func TestTableComplete(t *testing.T) {
	if Len() != 230 {
		t.Fatalf("table holds %d entries, want 230", Len())
	}
	for n := 1; n <= 230; n++ {
		if len(ByNumber(n)) == 0 {
			t.Errorf("space group %d has no setting", n)
		}
	}
	for hn := 1; hn <= Len(); hn++ {
		e := Get(hn)
		if e.Number < 1 || e.Number > 230 || e.Symbol == "" || e.International == "" {
			t.Errorf("entry %d is incomplete: %+v", hn, e)
		}
	}
}

//group orders for a few well-known settings
func TestDecodeOrders(t *testing.T) {
	cases := []struct {
		symbol string
		want   int
	}{
		{"P 1", 1},
		{"-P 1", 2},
		{"P 2y", 2},
		{"-P 2ybc", 4},     //P2_1/c
		{"P 2ac 2ab", 4},   //P2_12_12_1
		{"C 2c -2", 8},     //Cmc2_1 has centering doubling
		{"-P 4 2", 16},     //P4/mmm
		{"P 3", 3},
		{"-R 3 2\"", 36},   //R-3m, hexagonal axes
		{"-P 6c 2c", 24},   //P6_3/mmc
		{"-P 4 2 3", 48},   //Pm-3m
		{"-F 4 2 3", 192},  //Fm-3m
		{"-I 4 2 3", 96},   //Im-3m
		{"F 4d 2 3", 96},   //Fd-3... F-centering times 24
		{"-F 4vw 2vw 3", 192}, //Fd-3m
	}
	for _, c := range cases {
		ops := Decode(c.symbol)
		if len(ops) != c.want {
			t.Errorf("Decode(%q): %d operations, want %d", c.symbol, len(ops), c.want)
		}
	}
}

//groups whose screw/glide generators compose into centering-coset
//operations; the closure must absorb them instead of overflowing
func TestDecodeCenteredCubic(t *testing.T) {
	cases := map[int]int{
		203: 96,  //Fd-3
		210: 96,  //F4_132
		219: 96,  //F-43c
		226: 192, //Fm-3c
		227: 192, //Fd-3m
		228: 192, //Fd-3c
		230: 96,  //Ia-3d
	}
	for number, want := range cases {
		hns := ByNumber(number)
		if len(hns) == 0 {
			t.Fatalf("space group %d has no setting", number)
		}
		e := Get(hns[0])
		ops := e.Ops()
		if len(ops) != want {
			t.Errorf("%q (group %d): %d operations, want %d", e.Symbol, number, len(ops), want)
		}
		seen := map[string]bool{}
		for _, op := range ops {
			k := opString(op)
			if seen[k] {
				t.Fatalf("%q: duplicate operation", e.Symbol)
			}
			seen[k] = true
		}
	}
}

func TestDecodeWellFormed(t *testing.T) {
	for hn := 1; hn <= Len(); hn++ {
		e := Get(hn)
		ops := e.Ops()
		if len(ops) == 0 || len(ops) > 192 {
			t.Errorf("%q: suspicious operation count %d", e.Symbol, len(ops))
		}
		if !m3.IEqual(ops[0].R, m3.IIdent()) || ops[0].T != ([3]int{}) {
			t.Errorf("%q: first operation is not the identity", e.Symbol)
		}
		seen := map[string]bool{}
		for _, op := range ops {
			d := m3.IDet(op.R)
			if d != 1 && d != -1 {
				t.Fatalf("%q: rotation with determinant %d", e.Symbol, d)
			}
			for _, x := range op.T {
				if x < 0 || x >= Denom || x%2 != 0 {
					t.Fatalf("%q: translation %v outside the even 24ths", e.Symbol, op.T)
				}
			}
			k := opString(op)
			if seen[k] {
				t.Fatalf("%q: duplicate operation", e.Symbol)
			}
			seen[k] = true
		}
		//closure
		for _, a := range ops {
			p := mulOp(a, ops[1%len(ops)])
			if !seen[opString(p)] {
				t.Fatalf("%q: operations not closed under composition", e.Symbol)
			}
		}
	}
}

func opString(op Op) string {
	b := make([]byte, 0, 24)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b = append(b, byte(op.R[i][j]+3))
		}
		b = append(b, byte(op.T[i]))
	}
	return string(b)
}

func TestPointGroupSymbol(t *testing.T) {
	cases := map[int]string{
		1: "1", 2: "-1", 14: "2/m", 19: "222", 62: "mmm",
		123: "4/mmm", 129: "4/mmm", 141: "4/mmm", 166: "-3m",
		186: "6mm", 194: "6/mmm", 221: "m-3m", 225: "m-3m",
		227: "m-3m", 229: "m-3m", 230: "m-3m",
	}
	for n, want := range cases {
		if got := PointGroupSymbol(n); got != want {
			t.Errorf("PointGroupSymbol(%d): got %q, want %q", n, got, want)
		}
	}
}

func TestWyckoffGeneralPosition(t *testing.T) {
	for _, hn := range []int{1, 2, ByNumber(221)[0], ByNumber(225)[0], ByNumber(194)[0]} {
		e := Get(hn)
		wy := e.Wyckoff()
		if len(wy) == 0 {
			t.Fatalf("%q: no Wyckoff positions", e.Symbol)
		}
		gen := wy[len(wy)-1]
		if gen.Multiplicity != len(e.Ops()) {
			t.Errorf("%q: general multiplicity %d, want %d", e.Symbol, gen.Multiplicity, len(e.Ops()))
		}
		if gen.SiteOrder != 1 {
			t.Errorf("%q: general site order %d", e.Symbol, gen.SiteOrder)
		}
		for i := 1; i < len(wy); i++ {
			if wy[i].Multiplicity < wy[i-1].Multiplicity {
				t.Errorf("%q: positions not sorted by multiplicity", e.Symbol)
			}
		}
	}
}

func TestClassifyRockSalt(t *testing.T) {
	e := Get(ByNumber(225)[0]) //Fm-3m
	la, sa := e.Classify(m3.Vector{0, 0, 0}, 1e-4)
	lb, sb := e.Classify(m3.Vector{0.5, 0.5, 0.5}, 1e-4)
	if la == lb {
		t.Errorf("origin and cell center got the same letter %c", la)
	}
	if sa != 48 || sb != 48 {
		t.Errorf("site orders %d, %d, want 48, 48", sa, sb)
	}
	lg, sg := e.Classify(m3.Vector{0.123, 0.456, 0.789}, 1e-6)
	wy := e.Wyckoff()
	if lg != wy[len(wy)-1].Letter || sg != 1 {
		t.Errorf("generic point classified as %c with order %d", lg, sg)
	}
}
