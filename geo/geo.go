/*
 * geo.go, part of find-pair.
 *
 * Copyright 2026 The find-pair authors
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package geo implements sets of vectors in 3D space as thin wrappers over
//gonum dense matrices. Within the package a "vector" is a row vector: the
//cartesian coordinates of one point. The names of several functions reflect
//this.
package geo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of row vectors in 3D space (an Nx3 matrix) or, when square,
//a linear operator on such vectors. It embeds a gonum Dense matrix, so all
//gonum operations remain available.
type Matrix struct {
	*mat.Dense
}

//NewMatrix builds a Matrix with 3 columns from data, which is read in
//row-major order. It returns an error if the length of data is not divisible
//by 3.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, fmt.Errorf("geo: input slice length %d not divisible by %d", l, cols)
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Vec builds a single row vector from its 3 components.
func Vec(x, y, z float64) *Matrix {
	return &Matrix{mat.NewDense(1, 3, []float64{x, y, z})}
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, make([]float64, vecs*3))}
}

//Eye returns the 3x3 identity operator.
func Eye() *Matrix {
	r := Zeros(3)
	for i := 0; i < 3; i++ {
		r.Set(i, i, 1)
	}
	return r
}

//Dense2Matrix wraps a gonum Dense into a Matrix.
func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

//NVecs returns the number of vectors in the Matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of F. Changes in the view are
//reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

//CopyAll returns a fresh deep copy of F.
func (F *Matrix) CopyAll() *Matrix {
	r := Zeros(F.NVecs())
	r.Dense.Copy(F.Dense)
	return r
}

//SomeVecs fills F with the vectors of A whose indexes are given in clist,
//in the given order. F must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	for k, j := range clist {
		for c := 0; c < 3; c++ {
			F.Set(k, c, A.At(j, c))
		}
	}
}

//SwapVecs swaps the vectors i and j of F.
func (F *Matrix) SwapVecs(i, j int) {
	for c := 0; c < 3; c++ {
		vi, vj := F.At(i, c), F.At(j, c)
		F.Set(i, c, vj)
		F.Set(j, c, vi)
	}
}

//AddVec adds the row vector vec to each vector of A, putting the result
//in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	for i := 0; i < A.NVecs(); i++ {
		for c := 0; c < 3; c++ {
			F.Set(i, c, A.At(i, c)+vec.At(0, c))
		}
	}
}

//SubVec subtracts the row vector vec from each vector of A, putting the
//result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	for i := 0; i < A.NVecs(); i++ {
		for c := 0; c < 3; c++ {
			F.Set(i, c, A.At(i, c)-vec.At(0, c))
		}
	}
}

//Mul wraps the gonum Mul to take care of the case when one of the arguments
//is a Matrix rather than a bare Dense. The receiver may not alias A or B.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if A2, ok := A.(*Matrix); ok {
		A = A2.Dense
	}
	if B2, ok := B.(*Matrix); ok {
		B = B2.Dense
	}
	F.Dense.Mul(A, B)
}

//Scale multiplies the elements of A by f, putting the result in the
//receiver. Like Mul, it unwraps Matrix arguments to bare Dense so gonum
//recognizes a receiver scaling itself in place.
func (F *Matrix) Scale(f float64, A mat.Matrix) {
	if A2, ok := A.(*Matrix); ok {
		A = A2.Dense
	}
	F.Dense.Scale(f, A)
}

//Add adds A and B element-wise, putting the result in the receiver. The
//receiver may be one of the arguments; Matrix arguments are unwrapped as
//in Mul.
func (F *Matrix) Add(A, B mat.Matrix) {
	if A2, ok := A.(*Matrix); ok {
		A = A2.Dense
	}
	if B2, ok := B.(*Matrix); ok {
		B = B2.Dense
	}
	F.Dense.Add(A, B)
}

//Sub subtracts B from A element-wise, putting the result in the receiver.
//The receiver may be one of the arguments; Matrix arguments are unwrapped
//as in Mul.
func (F *Matrix) Sub(A, B mat.Matrix) {
	if A2, ok := A.(*Matrix); ok {
		A = A2.Dense
	}
	if B2, ok := B.(*Matrix); ok {
		B = B2.Dense
	}
	F.Dense.Sub(A, B)
}

//Dot returns the dot product of the first vectors of a and b.
func Dot(a, b *Matrix) float64 {
	return a.At(0, 0)*b.At(0, 0) + a.At(0, 1)*b.At(0, 1) + a.At(0, 2)*b.At(0, 2)
}

//Cross puts the cross product of the first vectors of a and b in the first
//vector of the receiver.
func (F *Matrix) Cross(a, b *Matrix) {
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

//Norm returns the euclidean norm of the first vector of F.
func (F *Matrix) Norm() float64 {
	return math.Sqrt(Dot(F, F))
}

//Unit normalizes the first vector of A into the receiver. If A is the zero
//vector the receiver is left untouched.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm()
	if n == 0 {
		return
	}
	for c := 0; c < 3; c++ {
		F.Set(0, c, A.At(0, c)/n)
	}
}

//Dist returns the euclidean distance between the first vectors of a and b.
func Dist(a, b *Matrix) float64 {
	var d, s float64
	for c := 0; c < 3; c++ {
		d = a.At(0, c) - b.At(0, c)
		s += d * d
	}
	return math.Sqrt(s)
}

//Angle returns the angle, in radians, between the first vectors of v1
//and v2. The cosine is clamped to [-1,1] so nearly-parallel vectors do not
//produce NaN from floating point noise.
func Angle(v1, v2 *Matrix) float64 {
	n := v1.Norm() * v2.Norm()
	if n == 0 {
		panic("geo: Angle of a zero-length vector")
	}
	c := Dot(v1, v2) / n
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

//Centroid puts the (unweighted) centroid of the vectors of A in the first
//vector of the receiver.
func (F *Matrix) Centroid(A *Matrix) {
	n := A.NVecs()
	var x, y, z float64
	for i := 0; i < n; i++ {
		x += A.At(i, 0)
		y += A.At(i, 1)
		z += A.At(i, 2)
	}
	fn := float64(n)
	F.Set(0, 0, x/fn)
	F.Set(0, 1, y/fn)
	F.Set(0, 2, z/fn)
}

//Det returns the determinant of a 3x3 operator. Panics if A is not 3x3.
func Det(A *Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic("geo: determinants are only available for 3x3 matrices")
	}
	return A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) -
		A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) +
		A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2))
}

//Rotator returns the 3x3 operator for a rotation of gamma radians around
//the given axis (Rodrigues construction). The axis need not be normalized,
//but must not be the zero vector.
func Rotator(axis *Matrix, gamma float64) *Matrix {
	u := Zeros(1)
	u.Unit(axis)
	ux, uy, uz := u.At(0, 0), u.At(0, 1), u.At(0, 2)
	s, c := math.Sin(gamma), math.Cos(gamma)
	t := 1 - c
	op := []float64{
		c + ux*ux*t, ux*uy*t - uz*s, ux*uz*t + uy*s,
		uy*ux*t + uz*s, c + uy*uy*t, uy*uz*t - ux*s,
		uz*ux*t - uy*s, uz*uy*t + ux*s, c + uz*uz*t,
	}
	r, _ := NewMatrix(op) //hardcoded operator, it has the right dimensions
	return r
}

//RotateVec applies the 3x3 operator R to the row vector v (v·Rᵀ) and
//returns the result as a new vector.
func RotateVec(R, v *Matrix) *Matrix {
	out := Zeros(1)
	for i := 0; i < 3; i++ {
		out.Set(0, i, R.At(i, 0)*v.At(0, 0)+R.At(i, 1)*v.At(0, 1)+R.At(i, 2)*v.At(0, 2))
	}
	return out
}

//String returns a readable representation of the Matrix.
func (F *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(F.Dense))
}
