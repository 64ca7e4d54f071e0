/*
 * fit.go, part of find-pair.
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

//Package fit implements quaternion-based rigid-body superposition of two
//equal-sized point sets. The eigen-decomposition of the 4x4 key matrix is
//done with a cyclic Jacobi solver with a fixed sweep cap, which reproduces
//the numerical behavior of classic fitting codes on pathological inputs.
package fit

import (
	"fmt"
	"math"

	"github.com/jyesselm/find-pair-sub009/geo"
)

const (
	//jacobiSweeps caps the Jacobi iteration count.
	jacobiSweeps = 100
	//jacobiEps is the off-diagonal convergence threshold.
	jacobiEps = 1e-7
)

//Result holds a rigid transform fit by Superpose, such that
//Rot·p + Trans lands each template point p on its experimental partner,
//plus the root mean square deviation after the fit.
type Result struct {
	Rot   *geo.Matrix //3x3 rotation, orthonormal and right-handed
	Trans *geo.Matrix //1x3 translation
	RMS   float64
}

//Apply transforms the row-vector set points by the fitted rotation and
//translation, returning a new set.
func (R *Result) Apply(points *geo.Matrix) *geo.Matrix {
	out := geo.Zeros(points.NVecs())
	for i := 0; i < points.NVecs(); i++ {
		v := geo.RotateVec(R.Rot, points.VecView(i))
		for c := 0; c < 3; c++ {
			out.Set(i, c, v.At(0, c)+R.Trans.At(0, c))
		}
	}
	return out
}

//Superpose fits the rigid rotation and translation minimizing the summed
//squared distances between the transformed template points and the
//experimental points, in that order of rows. It returns an error if the two
//sets differ in size or have fewer than 3 points.
func Superpose(exper, templ *geo.Matrix) (*Result, error) {
	n := exper.NVecs()
	if n != templ.NVecs() {
		return nil, fmt.Errorf("fit: point sets differ in size: %d vs %d", n, templ.NVecs())
	}
	if n < 3 {
		return nil, fmt.Errorf("fit: need at least 3 points, got %d", n)
	}
	ce := geo.Zeros(1)
	ct := geo.Zeros(1)
	ce.Centroid(exper)
	ct.Centroid(templ)

	//3x3 cross-covariance between the centered template (rows) and the
	//centered experimental set (columns).
	var m [3][3]float64
	for k := 0; k < n; k++ {
		var t, e [3]float64
		for c := 0; c < 3; c++ {
			t[c] = templ.At(k, c) - ct.At(0, c)
			e[c] = exper.At(k, c) - ce.At(0, c)
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				m[i][j] += t[i] * e[j]
			}
		}
	}

	//4x4 symmetric key matrix of the quaternion formulation.
	var S [4][4]float64
	S[0][0] = m[0][0] + m[1][1] + m[2][2]
	S[0][1] = m[1][2] - m[2][1]
	S[0][2] = m[2][0] - m[0][2]
	S[0][3] = m[0][1] - m[1][0]
	S[1][1] = m[0][0] - m[1][1] - m[2][2]
	S[1][2] = m[0][1] + m[1][0]
	S[1][3] = m[0][2] + m[2][0]
	S[2][2] = -m[0][0] + m[1][1] - m[2][2]
	S[2][3] = m[1][2] + m[2][1]
	S[3][3] = -m[0][0] - m[1][1] + m[2][2]
	for i := 1; i < 4; i++ {
		for j := 0; j < i; j++ {
			S[i][j] = S[j][i]
		}
	}

	evals, evecs := jacobi4(S)
	//the eigenvector of the largest eigenvalue is the optimal quaternion.
	best := 0
	for i := 1; i < 4; i++ {
		if evals[i] > evals[best] {
			best = i
		}
	}
	q := [4]float64{evecs[0][best], evecs[1][best], evecs[2][best], evecs[3][best]}
	rot := quat2mat(q)

	//translation = experimental centroid - R·template centroid
	rct := geo.RotateVec(rot, ct)
	trans := geo.Zeros(1)
	for c := 0; c < 3; c++ {
		trans.Set(0, c, ce.At(0, c)-rct.At(0, c))
	}

	r := &Result{Rot: rot, Trans: trans}
	fitted := r.Apply(templ)
	var dev float64
	for k := 0; k < n; k++ {
		for c := 0; c < 3; c++ {
			d := fitted.At(k, c) - exper.At(k, c)
			dev += d * d
		}
	}
	r.RMS = math.Sqrt(dev / float64(n))
	return r, nil
}

//quat2mat converts a unit quaternion (w,x,y,z) to the corresponding
//rotation matrix.
func quat2mat(q [4]float64) *geo.Matrix {
	w, x, y, z := q[0], q[1], q[2], q[3]
	data := []float64{
		w*w + x*x - y*y - z*z, 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), w*w - x*x + y*y - z*z, 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), w*w - x*x - y*y + z*z,
	}
	r, _ := NewSquare(data)
	return r
}

//NewSquare builds a 3x3 operator from 9 row-major values.
func NewSquare(data []float64) (*geo.Matrix, error) {
	if len(data) != 9 {
		return nil, fmt.Errorf("fit: a square operator needs 9 values, got %d", len(data))
	}
	return geo.NewMatrix(data)
}

//jacobi4 diagonalizes a symmetric 4x4 matrix with cyclic Jacobi rotations.
//It returns the eigenvalues and the matrix of eigenvectors (one per column).
//Iteration stops when the sum of squared off-diagonal elements drops below
//jacobiEps or after jacobiSweeps sweeps, whichever comes first.
func jacobi4(a [4][4]float64) ([4]float64, [4][4]float64) {
	const n = 4
	var v [4][4]float64
	for i := 0; i < n; i++ {
		v[i][i] = 1
	}
	for sweep := 0; sweep < jacobiSweeps; sweep++ {
		var off float64
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				off += a[p][q] * a[p][q]
			}
		}
		if off < jacobiEps {
			break
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				if a[p][q] == 0 {
					continue
				}
				theta := (a[q][q] - a[p][p]) / (2 * a[p][q])
				t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				if theta < 0 {
					t = -t
				}
				c := 1 / math.Sqrt(t*t+1)
				s := t * c
				tau := s / (1 + c)
				h := t * a[p][q]
				a[p][p] -= h
				a[q][q] += h
				a[p][q] = 0
				a[q][p] = 0
				for i := 0; i < n; i++ {
					if i != p && i != q {
						g, f := a[i][p], a[i][q]
						a[i][p] = g - s*(f+tau*g)
						a[i][q] = f + s*(g-tau*f)
						a[p][i] = a[i][p]
						a[q][i] = a[i][q]
					}
					g, f := v[i][p], v[i][q]
					v[i][p] = g - s*(f+tau*g)
					v[i][q] = f + s*(g-tau*f)
				}
			}
		}
	}
	var evals [4]float64
	for i := 0; i < n; i++ {
		evals[i] = a[i][i]
	}
	return evals, v
}
