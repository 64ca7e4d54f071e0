/*
 * params.go, part of find-pair.
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

package helix

import (
	"math"

	findpair "github.com/jyesselm/find-pair-sub009"
	"github.com/jyesselm/find-pair-sub009/geo"
)

//StepParameters are the rigid-body parameters between two consecutive
//base-pair frames: the local step parameters (mid-frame decomposition) and
//the helical parameters (single-rotation construction). Translations are
//in Å, rotations in degrees.
type StepParameters struct {
	Shift, Slide, Rise float64
	Tilt, Roll, Twist  float64
	XDisp, YDisp       float64
	HRise, Incl        float64
	Tip, HTwist        float64
}

const rad2deg = 180 / math.Pi

//Step computes the step and helical parameters carrying frame f1 onto
//frame f2. It is a pure closed-form function of the two frames.
func Step(f1, f2 findpair.ReferenceFrame) *StepParameters {
	p := new(StepParameters)

	z1 := f1.Z()
	z2 := f2.Z()
	hinge := geo.Zeros(1)
	hinge.Cross(z1, z2)
	gamma := geo.Angle(z1, z2)

	//rotate each frame halfway about the hinge so both z axes coincide,
	//then average into the mid-step triad
	x1h, y1h := f1.X(), f1.Y()
	x2h, y2h := f2.X(), f2.Y()
	zm := z1.CopyAll()
	if hinge.Norm() > 1e-12 {
		rplus := geo.Rotator(hinge, gamma/2)
		rminus := geo.Rotator(hinge, -gamma/2)
		x1h = geo.RotateVec(rplus, x1h)
		y1h = geo.RotateVec(rplus, y1h)
		zm = geo.RotateVec(rplus, z1)
		x2h = geo.RotateVec(rminus, x2h)
		y2h = geo.RotateVec(rminus, y2h)
	}
	xm := geo.Zeros(1)
	xm.Add(x1h, x2h)
	xm.Unit(xm)
	ym := geo.Zeros(1)
	ym.Cross(zm, xm)

	//twist: signed angle from the first hinge-rotated y axis to the
	//second, about the common normal
	p.Twist = signedAngle(y1h, y2h, zm) * rad2deg

	//roll/tilt: the hinge angle decomposed by its phase in the mid triad
	if hinge.Norm() > 1e-12 {
		hu := geo.Zeros(1)
		hu.Unit(hinge)
		phi := signedAngle(hu, ym, zm)
		p.Roll = gamma * math.Cos(phi) * rad2deg
		p.Tilt = gamma * math.Sin(phi) * rad2deg
	}

	d := geo.Zeros(1)
	d.Sub(f2.Origin, f1.Origin)
	p.Shift = geo.Dot(d, xm)
	p.Slide = geo.Dot(d, ym)
	p.Rise = geo.Dot(d, zm)

	helicalParams(p, f1, f2, d, xm, ym, zm)
	return p
}

//helicalParams fills the single-rotation ("helical") parameters: the one
//rotation axis and angle carrying frame 1 onto frame 2, the rise along
//that axis, the tip/inclination decomposition of the mid-frame normal
//against the axis, and the axis displacement in the mid frame.
func helicalParams(p *StepParameters, f1, f2 findpair.ReferenceFrame, d, xm, ym, zm *geo.Matrix) {
	//A = R2·R1ᵀ
	a := geo.Zeros(3)
	r1t := geo.Zeros(3)
	r1t.Dense.CloneFrom(f1.Rot.T())
	a.Mul(f2.Rot, r1t)

	tr := a.At(0, 0) + a.At(1, 1) + a.At(2, 2)
	ca := (tr - 1) / 2
	if ca > 1 {
		ca = 1
	} else if ca < -1 {
		ca = -1
	}
	omega := math.Acos(ca)
	axis := zm.CopyAll()
	if math.Sin(omega) > 1e-9 {
		axis = geo.Vec(a.At(2, 1)-a.At(1, 2), a.At(0, 2)-a.At(2, 0), a.At(1, 0)-a.At(0, 1))
		axis.Scale(1/(2*math.Sin(omega)), axis)
	}
	if geo.Dot(axis, zm) < 0 {
		axis.Scale(-1, axis)
		omega = -omega
	}
	p.HTwist = omega * rad2deg
	p.HRise = geo.Dot(d, axis)

	//tip/inclination: decompose the angle between the helical axis and
	//the mid-frame normal by its phase in the mid frame, mirroring the
	//roll/tilt decomposition
	lambda := geo.Angle(axis, zm)
	ax := geo.Dot(axis, xm)
	ay := geo.Dot(axis, ym)
	if lambda > 1e-9 {
		psi := math.Atan2(ax, ay)
		p.Incl = lambda * math.Cos(psi) * rad2deg
		p.Tip = lambda * math.Sin(psi) * rad2deg
	}

	//x/y displacement: distance from the mid origin to the helical axis,
	//in mid-frame coordinates. The axis pivot is where the perpendicular
	//component of the step is turned by the helical twist.
	om := geo.Zeros(1)
	om.Add(f1.Origin, f2.Origin)
	om.Scale(0.5, om)
	dperp := d.CopyAll()
	par := axis.CopyAll()
	par.Scale(p.HRise, par)
	dperp.Sub(dperp, par)
	pivot := f1.Origin.CopyAll()
	if math.Abs(math.Tan(omega/2)) > 1e-9 {
		half := dperp.CopyAll()
		half.Scale(0.5, half)
		pivot.Add(pivot, half)
		swing := geo.Zeros(1)
		swing.Cross(axis, dperp)
		swing.Scale(1/(2*math.Tan(omega/2)), swing)
		pivot.Add(pivot, swing)
	}
	disp := geo.Zeros(1)
	disp.Sub(om, pivot)
	p.XDisp = geo.Dot(disp, xm)
	p.YDisp = geo.Dot(disp, ym)
}

//signedAngle is the angle from a to b about the normal n, in (-π, π].
func signedAngle(a, b, n *geo.Matrix) float64 {
	c := geo.Zeros(1)
	c.Cross(a, b)
	return math.Atan2(geo.Dot(c, n), geo.Dot(a, b))
}
