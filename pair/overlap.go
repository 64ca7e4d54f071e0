/*
 * overlap.go, part of find-pair.
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

package pair

import (
	"math"
	"sort"
	"strings"

	findpair "github.com/jyesselm/find-pair-sub009"
	"github.com/jyesselm/find-pair-sub009/geo"
)

//point2 is a point in the shared projection plane.
type point2 struct{ x, y float64 }

//overlapArea projects the ring and immediate exocyclic atoms of both
//residues onto the plane normal to zm through the midpoint of the two
//frame origins, takes the convex hull of each base, and returns the area
//of the polygon intersection. Hydrogens are never part of the atom name
//lists used here.
func overlapArea(mol *findpair.Structure, ri, rj *findpair.Residue, zm *geo.Matrix) float64 {
	mid := geo.Zeros(1)
	mid.Add(ri.Frame.Origin, rj.Frame.Origin)
	mid.Scale(0.5, mid)

	//in-plane axes: u ⟂ zm, v = zm × u
	u := planeAxis(zm)
	v := geo.Zeros(1)
	v.Cross(zm, u)

	pi := basePolygon(mol, ri, mid, u, v, zm)
	pj := basePolygon(mol, rj, mid, u, v, zm)
	if len(pi) < 3 || len(pj) < 3 {
		return 0
	}
	return polyArea(clipConvex(pi, pj))
}

//planeAxis returns a unit vector orthogonal to n.
func planeAxis(n *geo.Matrix) *geo.Matrix {
	ref := geo.Vec(1, 0, 0)
	if math.Abs(geo.Dot(ref, n)) > 0.9*n.Norm() {
		ref = geo.Vec(0, 1, 0)
	}
	u := geo.Zeros(1)
	u.Cross(n, ref)
	u.Unit(u)
	return u
}

//basePolygon projects the overlap atoms of r onto the (u,v) plane through
//mid and returns their convex hull, counter-clockwise.
func basePolygon(mol *findpair.Structure, r *findpair.Residue, mid, u, v, zm *geo.Matrix) []point2 {
	var pts []point2
	for _, name := range findpair.OverlapAtoms(r.Class) {
		i := mol.AtomIndex(r, name)
		if i < 0 {
			continue
		}
		if strings.HasPrefix(mol.Atom(i).Symbol, "H") {
			continue
		}
		d := geo.Zeros(1)
		d.Sub(mol.Coord(i), mid)
		pts = append(pts, point2{geo.Dot(d, u), geo.Dot(d, v)})
	}
	return convexHull(pts)
}

//convexHull is the monotone chain construction; the result is in
//counter-clockwise order.
func convexHull(pts []point2) []point2 {
	if len(pts) < 3 {
		return pts
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].x != pts[j].x {
			return pts[i].x < pts[j].x
		}
		return pts[i].y < pts[j].y
	})
	cross := func(o, a, b point2) float64 {
		return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
	}
	var lower, upper []point2
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

//clipConvex clips the convex polygon subject against the convex polygon
//clip (Sutherland-Hodgman). Both must be counter-clockwise.
func clipConvex(subject, clip []point2) []point2 {
	out := subject
	n := len(clip)
	for i := 0; i < n && len(out) > 0; i++ {
		a := clip[i]
		b := clip[(i+1)%n]
		in := out
		out = nil
		inside := func(p point2) bool {
			return (b.x-a.x)*(p.y-a.y)-(b.y-a.y)*(p.x-a.x) >= 0
		}
		intersect := func(p, q point2) point2 {
			//line a-b with segment p-q
			a1 := b.y - a.y
			b1 := a.x - b.x
			c1 := a1*a.x + b1*a.y
			a2 := q.y - p.y
			b2 := p.x - q.x
			c2 := a2*p.x + b2*p.y
			det := a1*b2 - a2*b1
			if det == 0 {
				return p
			}
			return point2{(b2*c1 - b1*c2) / det, (a1*c2 - a2*c1) / det}
		}
		m := len(in)
		for k := 0; k < m; k++ {
			cur := in[k]
			prev := in[(k+m-1)%m]
			if inside(cur) {
				if !inside(prev) {
					out = append(out, intersect(prev, cur))
				}
				out = append(out, cur)
			} else if inside(prev) {
				out = append(out, intersect(prev, cur))
			}
		}
	}
	return out
}

//polyArea is the shoelace area of a simple polygon.
func polyArea(p []point2) float64 {
	if len(p) < 3 {
		return 0
	}
	var s float64
	for i := range p {
		j := (i + 1) % len(p)
		s += p[i].x*p[j].y - p[j].x*p[i].y
	}
	return math.Abs(s) / 2
}
