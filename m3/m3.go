/*
 * m3.go, part of spglib.
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

//Package m3 provides 3x3 matrix and 3-vector arithmetic for lattice work.
//Throughout the library a lattice is a [3][3]float64 whose *rows* are the
//basis vectors, and a fractional position is a column 3-vector, so that the
//cartesian image of x is transpose(L)*x. All heavier linear algebra
//(inversion, determinants) is delegated to gonum.
package m3

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a real 3x3 matrix. Rows first.
type Matrix = [3][3]float64

//Vector is a real 3-vector.
type Vector = [3]float64

//Ident is the 3x3 identity.
func Ident() Matrix {
	return Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func dense(a Matrix) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	})
}

func fromDense(d *mat.Dense) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = d.At(i, j)
		}
	}
	return r
}

//Det returns the determinant of a.
func Det(a Matrix) float64 {
	return mat.Det(dense(a))
}

//Inverse returns the inverse of a. It returns an error for a singular or
//near-singular matrix instead of panicking, since singular input lattices
//are an expected caller mistake.
func Inverse(a Matrix) (Matrix, error) {
	var inv mat.Dense
	if err := inv.Inverse(dense(a)); err != nil {
		return Matrix{}, Error{message: "m3.Inverse: " + err.Error(), deco: []string{"Inverse"}}
	}
	return fromDense(&inv), nil
}

//Mul returns the matrix product a*b.
func Mul(a, b Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return r
}

//MulV returns the matrix-vector product a*v.
func MulV(a Matrix, v Vector) Vector {
	var r Vector
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			r[i] += a[i][k] * v[k]
		}
	}
	return r
}

//Transpose returns the transpose of a.
func Transpose(a Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[j][i]
		}
	}
	return r
}

//Scale returns a with every element multiplied by s.
func Scale(s float64, a Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = s * a[i][j]
		}
	}
	return r
}

//Add returns the element-wise sum of two vectors.
func Add(a, b Vector) Vector {
	return Vector{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

//Sub returns a-b element-wise.
func Sub(a, b Vector) Vector {
	return Vector{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

//Dot returns the inner product of a and b.
func Dot(a, b Vector) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

//Cross returns the cross product a x b.
func Cross(a, b Vector) Vector {
	return Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

//Norm returns the euclidean norm of v.
func Norm(v Vector) float64 {
	return math.Sqrt(Dot(v, v))
}

//Angle returns the angle between a and b in degrees.
func Angle(a, b Vector) float64 {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		panic(PanicMsg("spglib/m3.Angle: zero-length vector"))
	}
	c := Dot(a, b) / (na * nb)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c) * 180 / math.Pi
}

//Metric returns the metric tensor L*transpose(L) of a lattice whose rows
//are the basis vectors, i.e. G[i][j] is the dot product of basis vectors
//i and j.
func Metric(lattice Matrix) Matrix {
	var g Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g[i][j] = lattice[i][0]*lattice[j][0] + lattice[i][1]*lattice[j][1] + lattice[i][2]*lattice[j][2]
		}
	}
	return g
}

//Cartesian converts the fractional vector x to cartesian coordinates in
//the given lattice.
func Cartesian(lattice Matrix, x Vector) Vector {
	var r Vector
	for k := 0; k < 3; k++ {
		r[k] = x[0]*lattice[0][k] + x[1]*lattice[1][k] + x[2]*lattice[2][k]
	}
	return r
}

//Wrap reduces every component of x into [0,1). Values within eps below an
//integer are snapped up so that, e.g., 0.9999999 wraps to 0 and not to
//itself, which keeps representative choices stable under noise.
func Wrap(x Vector, eps float64) Vector {
	var r Vector
	for i := 0; i < 3; i++ {
		v := x[i] - math.Floor(x[i])
		if v > 1-eps {
			v = 0
		}
		r[i] = v
	}
	return r
}

//ShortestImage reduces every component of the fractional difference d into
//[-1/2, 1/2), the nearest periodic image.
func ShortestImage(d Vector) Vector {
	var r Vector
	for i := 0; i < 3; i++ {
		r[i] = d[i] - math.Round(d[i])
	}
	return r
}
