/*
 * int.go, part of spglib.
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

package m3

//Integer 3x3 matrices carry the rotation parts of symmetry operations and
//unimodular basis transformations. Their arithmetic is exact, so these
//helpers never need a tolerance.

//IMatrix is an integer 3x3 matrix.
type IMatrix = [3][3]int

//IIdent is the integer 3x3 identity.
func IIdent() IMatrix {
	return IMatrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

//IDet returns the determinant of a.
func IDet(a IMatrix) int {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

//ITrace returns the trace of a.
func ITrace(a IMatrix) int {
	return a[0][0] + a[1][1] + a[2][2]
}

//IMul returns the product a*b.
func IMul(a, b IMatrix) IMatrix {
	var r IMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return r
}

//IMulV returns the product a*v for an integer vector v.
func IMulV(a IMatrix, v [3]int) [3]int {
	var r [3]int
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			r[i] += a[i][k] * v[k]
		}
	}
	return r
}

//IMulVF applies the integer matrix a to a fractional (real) vector.
func IMulVF(a IMatrix, v Vector) Vector {
	var r Vector
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			r[i] += float64(a[i][k]) * v[k]
		}
	}
	return r
}

//ITranspose returns the transpose of a.
func ITranspose(a IMatrix) IMatrix {
	var r IMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[j][i]
		}
	}
	return r
}

//IScale returns a with every element multiplied by s.
func IScale(s int, a IMatrix) IMatrix {
	var r IMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = s * a[i][j]
		}
	}
	return r
}

//Adjugate returns the adjugate (transposed cofactor matrix) of a, so that
//a*Adjugate(a) = IDet(a)*I exactly.
func Adjugate(a IMatrix) IMatrix {
	var r IMatrix
	r[0][0] = a[1][1]*a[2][2] - a[1][2]*a[2][1]
	r[0][1] = a[0][2]*a[2][1] - a[0][1]*a[2][2]
	r[0][2] = a[0][1]*a[1][2] - a[0][2]*a[1][1]
	r[1][0] = a[1][2]*a[2][0] - a[1][0]*a[2][2]
	r[1][1] = a[0][0]*a[2][2] - a[0][2]*a[2][0]
	r[1][2] = a[0][2]*a[1][0] - a[0][0]*a[1][2]
	r[2][0] = a[1][0]*a[2][1] - a[1][1]*a[2][0]
	r[2][1] = a[0][1]*a[2][0] - a[0][0]*a[2][1]
	r[2][2] = a[0][0]*a[1][1] - a[0][1]*a[1][0]
	return r
}

//IInverse returns the exact inverse of a unimodular integer matrix.
//It panics if det(a) is not +1 or -1; unimodularity is an invariant of
//every rotation part and basis transformation in this library.
func IInverse(a IMatrix) IMatrix {
	d := IDet(a)
	if d != 1 && d != -1 {
		panic(PanicMsg("spglib/m3.IInverse: matrix is not unimodular"))
	}
	return IScale(d, Adjugate(a))
}

//IToF converts an integer matrix to a real one.
func IToF(a IMatrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = float64(a[i][j])
		}
	}
	return r
}

//IEqual reports whether a and b are identical.
func IEqual(a, b IMatrix) bool {
	return a == b
}

//NearInt reports whether every element of a is within eps of an integer,
//and if so also returns the rounded integer matrix.
func NearInt(a Matrix, eps float64) (IMatrix, bool) {
	var r IMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			n := int(roundHalf(a[i][j]))
			if diff := a[i][j] - float64(n); diff > eps || diff < -eps {
				return IMatrix{}, false
			}
			r[i][j] = n
		}
	}
	return r, true
}

func roundHalf(v float64) float64 {
	if v < 0 {
		return float64(int(v - 0.5))
	}
	return float64(int(v + 0.5))
}
