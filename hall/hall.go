/*
 * hall.go, part of spglib.
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

//Package hall holds the space-group database: one entry per supported Hall
//setting, each carrying the space-group number, its international and Hall
//symbols, and, decoded on first use, the full coset-representative
//operation set of the group. The decoder implements Hall's concise
//space-group notation (Acta Cryst. A37, 517 (1981)).
//
//Operation translations are kept in 24ths of the cell edges, which
//represents every glide, screw and centering translation exactly, so the
//decoded groups close under exact integer arithmetic.
package hall

import (
	"strconv"
	"strings"
	"sync"

	"github.com/AlbertDeFusco/spglib/m3"
)

//Denom is the common denominator of all operation translations.
const Denom = 24

//Op is one symmetry operation of a space group in its conventional
//setting: an integer rotation part and a translation in 24ths.
type Op struct {
	R m3.IMatrix
	T [3]int //24ths of the cell edges, each in [0,24)
}

//TFrac returns the translation of the operation as a fractional vector.
func (o Op) TFrac() m3.Vector {
	return m3.Vector{float64(o.T[0]) / Denom, float64(o.T[1]) / Denom, float64(o.T[2]) / Denom}
}

func modDenom(t [3]int) [3]int {
	for i := 0; i < 3; i++ {
		t[i] %= Denom
		if t[i] < 0 {
			t[i] += Denom
		}
	}
	return t
}

//mulOp composes two operations: (a*b)(x) = a(b(x)).
func mulOp(a, b Op) Op {
	var t [3]int
	for i := 0; i < 3; i++ {
		t[i] = a.T[i]
		for k := 0; k < 3; k++ {
			t[i] += a.R[i][k] * b.T[k]
		}
	}
	return Op{R: m3.IMul(a.R, b.R), T: modDenom(t)}
}

//Entry is one Hall setting of a space-group type. Entries live in the
//static table of this package and are never mutated after decoding; the
//decoded operation set and Wyckoff template are built once behind a
//sync.Once, so concurrent readers are safe.
type Entry struct {
	Number        int    //international space-group number, 1-230
	International string //short Hermann-Mauguin symbol
	Symbol        string //Hall symbol

	once    sync.Once
	ops     []Op
	wyckoff []Position
}

//Ops returns the full coset-representative operation set of the entry,
//centering translations included. The returned slice is shared and must
//not be modified.
func (e *Entry) Ops() []Op {
	e.decode()
	return e.ops
}

//Wyckoff returns the Wyckoff-position template of the entry, ordered as
//lettered: index 0 is position 'a'. The slice is shared read-only data.
func (e *Entry) Wyckoff() []Position {
	e.decode()
	return e.wyckoff
}

func (e *Entry) decode() {
	e.once.Do(func() {
		e.ops = Decode(e.Symbol)
		e.wyckoff = deriveWyckoff(e.ops)
	})
}

//Get returns the entry with the given Hall number (1-based index into the
//table) or nil if out of range.
func Get(hallNumber int) *Entry {
	if hallNumber < 1 || hallNumber > len(table) {
		return nil
	}
	return &table[hallNumber-1]
}

//Len returns the number of Hall settings in the table.
func Len() int { return len(table) }

//ByNumber returns the Hall numbers of all settings of the given
//space-group number.
func ByNumber(number int) []int {
	var hn []int
	for i := range table {
		if table[i].Number == number {
			hn = append(hn, i+1)
		}
	}
	return hn
}

//PointGroupSymbol returns the crystallographic point-group symbol
//(international notation) of a space-group number. The 230 types partition
//into the 32 geometric crystal classes in fixed numeric ranges.
func PointGroupSymbol(number int) string {
	switch {
	case number < 1 || number > 230:
		return ""
	case number <= 1:
		return "1"
	case number <= 2:
		return "-1"
	case number <= 5:
		return "2"
	case number <= 9:
		return "m"
	case number <= 15:
		return "2/m"
	case number <= 24:
		return "222"
	case number <= 46:
		return "mm2"
	case number <= 74:
		return "mmm"
	case number <= 80:
		return "4"
	case number <= 82:
		return "-4"
	case number <= 88:
		return "4/m"
	case number <= 98:
		return "422"
	case number <= 110:
		return "4mm"
	case number <= 122:
		return "-42m"
	case number <= 142:
		return "4/mmm"
	case number <= 146:
		return "3"
	case number <= 148:
		return "-3"
	case number <= 155:
		return "32"
	case number <= 161:
		return "3m"
	case number <= 167:
		return "-3m"
	case number <= 173:
		return "6"
	case number <= 174:
		return "-6"
	case number <= 176:
		return "6/m"
	case number <= 182:
		return "622"
	case number <= 186:
		return "6mm"
	case number <= 190:
		return "-6m2"
	case number <= 194:
		return "6/mmm"
	case number <= 199:
		return "23"
	case number <= 206:
		return "m-3"
	case number <= 214:
		return "432"
	case number <= 220:
		return "-43m"
	default:
		return "m-3m"
	}
}

//centerings maps the lattice letter to its centering translations, in
//24ths. The identity translation is implied and not listed.
var centerings = map[byte][][3]int{
	'P': {},
	'A': {{0, 12, 12}},
	'B': {{12, 0, 12}},
	'C': {{12, 12, 0}},
	'I': {{12, 12, 12}},
	'R': {{8, 16, 16}, {16, 8, 8}},
	'F': {{0, 12, 12}, {12, 0, 12}, {12, 12, 0}},
}

//principal rotation matrices about z; x and y variants are obtained by
//conjugation with the cyclic coordinate permutation.
var rotZ = map[int]m3.IMatrix{
	1: {{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	2: {{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	3: {{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
	4: {{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	6: {{1, -1, 0}, {1, 0, 0}, {0, 0, 1}},
}

//two-fold axes in the diagonal directions, relative to the z axis.
var (
	rot2PrimeZ  = m3.IMatrix{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}} //axis a-b
	rot2DPrimeZ = m3.IMatrix{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}   //axis a+b
	rot3Star    = m3.IMatrix{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}    //axis a+b+c
)

//cyc is the cyclic permutation (x,y,z) -> (z,x,y); conjugating a z-axis
//matrix with cyc gives the x-axis variant, with its transpose the y-axis
//variant.
var cyc = m3.IMatrix{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}

func axisMatrix(n int, axis byte, prime int) m3.IMatrix {
	var base m3.IMatrix
	switch prime {
	case 0:
		base = rotZ[n]
	case 1:
		base = rot2PrimeZ
	case 2:
		base = rot2DPrimeZ
	}
	switch axis {
	case 'z':
		return base
	case 'x':
		return m3.IMul(m3.IMul(cyc, base), m3.ITranspose(cyc))
	case 'y':
		return m3.IMul(m3.IMul(m3.ITranspose(cyc), base), cyc)
	}
	panic(m3.PanicMsg("spglib/hall: bad axis " + string(axis)))
}

//translations maps the Hall translation letters to 24ths.
var translations = map[byte][3]int{
	'a': {12, 0, 0},
	'b': {0, 12, 0},
	'c': {0, 0, 12},
	'n': {12, 12, 12},
	'u': {6, 0, 0},
	'v': {0, 6, 0},
	'w': {0, 0, 6},
	'd': {6, 6, 6},
}

//Decode expands a Hall symbol into the full operation set of the group it
//denotes: rotation generators, glide/screw translations, the centering of
//the lattice letter, the improper '-' prefix and a trailing origin-shift
//field "(v1 v2 v3)" in 12ths. It panics on a malformed symbol, since the
//only symbols it ever sees come from the static table, which the package
//tests validate entry by entry.
func Decode(symbol string) []Op {
	fields := strings.Fields(symbol)
	if len(fields) == 0 {
		panic(m3.PanicMsg("spglib/hall: empty symbol"))
	}
	lat := fields[0]
	improper := false
	if lat[0] == '-' {
		improper = true
		lat = lat[1:]
	}
	cent, ok := centerings[lat[0]]
	if !ok {
		panic(m3.PanicMsg("spglib/hall: unknown lattice letter in " + symbol))
	}

	var gens []Op
	var shift [3]int //origin shift in 12ths
	prevN := 0
	field := 0
	for _, f := range fields[1:] {
		if f[0] == '(' {
			shift = parseShift(fields)
			break
		}
		field++
		g, n := parseField(f, field, prevN, symbol)
		prevN = n
		gens = append(gens, g)
	}
	if improper {
		inv := Op{R: m3.IScale(-1, m3.IIdent())}
		gens = append(gens, inv)
	}
	//centering translations join the generators rather than being applied
	//to a closed point set afterwards: products of screw and glide
	//generators can themselves land in a centering coset (the d glides of
	//Fd-3m, for one), so only the closure over the centered group reaches
	//every representative exactly once
	for _, c := range cent {
		gens = append(gens, Op{R: m3.IIdent(), T: [3]int{c[0], c[1], c[2]}})
	}

	full := close24(gens)
	if shift != ([3]int{}) {
		for i, o := range full {
			//t' = t + v - R*v, with v in 24ths
			v := [3]int{2 * shift[0], 2 * shift[1], 2 * shift[2]}
			rv := m3.IMulV(o.R, v)
			full[i].T = modDenom([3]int{o.T[0] + v[0] - rv[0], o.T[1] + v[1] - rv[1], o.T[2] + v[2] - rv[2]})
		}
	}
	return sortOps(full)
}

//parseShift reads the trailing "(v1 v2 v3)" origin-shift field, in 12ths.
func parseShift(fields []string) [3]int {
	//rejoin from the first field that opens the parenthesis
	start := -1
	for i, f := range fields {
		if strings.HasPrefix(f, "(") {
			start = i
			break
		}
	}
	s := strings.Join(fields[start:], " ")
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.Fields(s)
	if len(parts) != 3 {
		panic(m3.PanicMsg("spglib/hall: bad origin shift " + s))
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			panic(m3.PanicMsg("spglib/hall: bad origin shift " + s))
		}
		v[i] = n
	}
	return v
}

//parseField decodes one rotation field of a Hall symbol into a generator.
//field is the 1-based position of the field, prevN the rotation order of
//the preceding field; both feed Hall's implicit-axis rules.
func parseField(f string, field, prevN int, symbol string) (Op, int) {
	improper := false
	i := 0
	if f[i] == '-' {
		improper = true
		i++
	}
	n := int(f[i] - '0')
	if rotZ[n] == (m3.IMatrix{}) && n != 1 {
		panic(m3.PanicMsg("spglib/hall: bad rotation order in " + symbol))
	}
	i++

	axis := byte(0)
	prime := 0
	var t [3]int
	screw := 0
	for ; i < len(f); i++ {
		c := f[i]
		switch {
		case c == 'x' || c == 'y' || c == 'z':
			axis = c
		case c == '\'':
			prime = 1
		case c == '"':
			prime = 2
		case c == '*':
			prime = 3
		case c >= '1' && c <= '5':
			screw = int(c - '0')
		default:
			tr, ok := translations[c]
			if !ok {
				panic(m3.PanicMsg("spglib/hall: bad character in " + symbol))
			}
			t[0] += tr[0]
			t[1] += tr[1]
			t[2] += tr[2]
		}
	}

	//implicit axis rules
	if axis == 0 && prime == 0 {
		switch {
		case field == 1:
			axis = 'z'
		case field == 2 && n == 2 && (prevN == 2 || prevN == 4):
			axis = 'x'
		case field == 2 && n == 2 && (prevN == 3 || prevN == 6):
			prime = 1 //a-b relative to the preceding z axis
		case field == 3 && n == 3:
			prime = 3
		default:
			axis = 'z'
		}
	}
	if prime == 1 || prime == 2 {
		//primed two-folds are relative to z unless an axis is spelled out
		if axis == 0 {
			axis = 'z'
		}
	}

	var r m3.IMatrix
	if prime == 3 {
		r = rot3Star
	} else {
		if axis == 0 {
			axis = 'z'
		}
		r = axisMatrix(n, axis, prime)
	}
	if screw > 0 {
		//screw translation of screw/n along the rotation axis
		s := screw * Denom / n
		switch axis {
		case 'x':
			t[0] += s
		case 'y':
			t[1] += s
		default:
			t[2] += s
		}
	}
	if improper {
		r = m3.IScale(-1, r)
	}
	return Op{R: r, T: modDenom(t)}, n
}

//close24 generates the closure of the generators under composition,
//translations mod 1. With the centering translations among the
//generators the largest group is Fm-3m with 192 representatives per
//conventional cell; the cap guards against a malformed generator set
//looping forever.
func close24(gens []Op) []Op {
	ident := Op{R: m3.IIdent()}
	ops := []Op{ident}
	seen := map[[12]int]bool{opKey(ident): true}
	for changed := true; changed; {
		changed = false
		for _, a := range ops {
			for _, g := range gens {
				p := mulOp(a, g)
				k := opKey(p)
				if !seen[k] {
					seen[k] = true
					ops = append(ops, p)
					changed = true
					if len(ops) > 192 {
						panic(m3.PanicMsg("spglib/hall: generator closure exceeded 192 operations"))
					}
				}
			}
		}
	}
	return ops
}

func opKey(o Op) [12]int {
	return [12]int{
		o.R[0][0], o.R[0][1], o.R[0][2],
		o.R[1][0], o.R[1][1], o.R[1][2],
		o.R[2][0], o.R[2][1], o.R[2][2],
		o.T[0], o.T[1], o.T[2],
	}
}

//sortOps orders operations canonically: identity first, then by rotation
//matrix and translation, lexicographically.
func sortOps(ops []Op) []Op {
	keyLess := func(a, b Op) bool {
		ka, kb := opKey(a), opKey(b)
		if a.R == m3.IIdent() && b.R != m3.IIdent() {
			return true
		}
		if b.R == m3.IIdent() && a.R != m3.IIdent() {
			return false
		}
		for i := range ka {
			if ka[i] != kb[i] {
				return ka[i] < kb[i]
			}
		}
		return false
	}
	sorted := make([]Op, len(ops))
	copy(sorted, ops)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && keyLess(sorted[j], sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}
