/*
 * helix.go, part of find-pair.
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

//Package helix groups selected base pairs into helices, fixes the 5'→3'
//strand direction, and derives the step and helical parameters between
//consecutive pairs. It only ever reorders pairs and sets per-pair
//orientation flags; residue and frame data are never touched.
package helix

import (
	"sort"

	findpair "github.com/jyesselm/find-pair-sub009"
	"github.com/jyesselm/find-pair-sub009/geo"
	"github.com/jyesselm/find-pair-sub009/pair"
)

//OrientedPair points into the selected BasePair slice. Flipped means the
//pair's strand roles are swapped within its helix: its J residue sits on
//the leading strand.
type OrientedPair struct {
	Index   int
	Flipped bool
}

//Helix is an ordered run of base pairs with strand continuity. Circular
//marks a closed run with no free 5'/3' ends; Broken marks a run that was
//split from a backbone-continuous neighbor by an origin gap.
type Helix struct {
	Pairs    []OrientedPair
	Circular bool
	Broken   bool
}

//Organize groups the selected pairs into helices ordered 5'→3' along the
//leading strand.
func Organize(mol *findpair.Structure, bps []*pair.BasePair, set *findpair.Settings) []*Helix {
	n := len(bps)
	if n == 0 {
		return nil
	}
	adj := adjacency(mol, bps, set)
	visited := make([]bool, n)
	var out []*Helix

	//walk open runs first, starting from endpoints, then whatever is left
	//is circular
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ra := mol.Residues[bps[order[a]].I]
		rb := mol.Residues[bps[order[b]].I]
		if ra.Chain != rb.Chain {
			return ra.Chain < rb.Chain
		}
		return ra.ID < rb.ID
	})
	for _, start := range order {
		if visited[start] || len(adj[start].next) > 1 {
			continue
		}
		out = append(out, walkRun(mol, bps, adj, visited, start, false))
	}
	for _, start := range order {
		if visited[start] {
			continue
		}
		out = append(out, walkRun(mol, bps, adj, visited, start, true))
	}
	for _, h := range out {
		orient(mol, bps, h)
	}
	return out
}

type edges struct {
	next   []int
	broken bool
}

//adjacency links pairs whose residues are backbone neighbors on both
//strands. Sequence-adjacent pairs whose origins sit farther apart than the
//helix-break cutoff are NOT linked; instead both sides carry a broken mark
//so the resulting runs are reported as distinct, broken helices.
func adjacency(mol *findpair.Structure, bps []*pair.BasePair, set *findpair.Settings) []edges {
	n := len(bps)
	adj := make([]edges, n)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if !pairsLinked(mol, bps[a], bps[b]) {
				continue
			}
			if midDist(bps[a], bps[b]) > set.HelixBreak {
				adj[a].broken = true
				adj[b].broken = true
				continue
			}
			adj[a].next = append(adj[a].next, b)
			adj[b].next = append(adj[b].next, a)
		}
	}
	return adj
}

//pairsLinked reports whether two pairs are strand-continuous: each residue
//of one is the sequence neighbor of a residue of the other, on both
//strands.
func pairsLinked(mol *findpair.Structure, p, q *pair.BasePair) bool {
	nb := func(i, j int) bool { return backboneNeighbors(mol, i, j) }
	if nb(p.I, q.I) && nb(p.J, q.J) {
		return true
	}
	return nb(p.I, q.J) && nb(p.J, q.I)
}

//backboneNeighbors reports whether residues i and j are consecutive on the
//same chain. When both the O3' and the P atoms are present the actual
//O3'-P linkage distance is checked, which catches chain breaks hidden
//behind consecutive numbering.
func backboneNeighbors(mol *findpair.Structure, i, j int) bool {
	ri := mol.Residues[i]
	rj := mol.Residues[j]
	if ri.Chain != rj.Chain {
		return false
	}
	d := rj.ID - ri.ID
	if d != 1 && d != -1 {
		return false
	}
	up, down := ri, rj
	if d == -1 {
		up, down = rj, ri
	}
	o3 := mol.AtomIndex(up, "O3'")
	if o3 < 0 {
		o3 = mol.AtomIndex(up, "O3*")
	}
	p := mol.AtomIndex(down, "P")
	if o3 >= 0 && p >= 0 {
		return geo.Dist(mol.Coord(o3), mol.Coord(p)) < 2.5
	}
	return true
}

//midDist is the distance between the midpoints of two pairs' frame
//origins.
func midDist(p, q *pair.BasePair) float64 {
	pm := midpoint(p)
	qm := midpoint(q)
	return geo.Dist(pm, qm)
}

func midpoint(p *pair.BasePair) *geo.Matrix {
	m := geo.Zeros(1)
	m.Add(p.FrameI.Origin, p.FrameJ.Origin)
	m.Scale(0.5, m)
	return m
}

//walkRun collects the run containing start, in adjacency order.
func walkRun(mol *findpair.Structure, bps []*pair.BasePair, adj []edges, visited []bool, start int, circular bool) *Helix {
	h := &Helix{Circular: circular}
	cur := start
	prev := -1
	for {
		visited[cur] = true
		h.Pairs = append(h.Pairs, OrientedPair{Index: cur})
		if adj[cur].broken {
			h.Broken = true
		}
		next := -1
		for _, nb := range adj[cur].next {
			if nb != prev && !visited[nb] {
				next = nb
				break
			}
		}
		if next == -1 {
			break
		}
		prev = cur
		cur = next
	}
	return h
}

//orient assigns the per-pair Flipped flags so consecutive pairs keep their
//leading-strand residues adjacent, then reverses the whole run when the
//frame normals disagree with the origin progression, so the emitted order
//follows the 5'→3' convention.
func orient(mol *findpair.Structure, bps []*pair.BasePair, h *Helix) {
	ps := h.Pairs
	if len(ps) == 0 {
		return
	}
	//chain the flips: the leading residue of each pair must neighbor the
	//leading residue of the previous one
	for k := 1; k < len(ps); k++ {
		prev := ps[k-1]
		cur := &ps[k]
		pl := leadingResidue(bps, prev)
		if backboneNeighbors(mol, pl, bps[cur.Index].I) {
			cur.Flipped = false
		} else if backboneNeighbors(mol, pl, bps[cur.Index].J) {
			cur.Flipped = true
		}
	}
	//direction: the effective pair normal should track the origin
	//progression along the run
	var s float64
	for k := 1; k < len(ps); k++ {
		d := geo.Zeros(1)
		d.Sub(midpoint(bps[ps[k].Index]), midpoint(bps[ps[k-1].Index]))
		s += geo.Dot(effectiveNormal(bps, ps[k-1]), d)
	}
	if s < 0 {
		reverse(ps)
	} else if s == 0 && len(ps) > 1 {
		//single-step tie: fall back to the sequence heuristic
		a := mol.Residues[leadingResidue(bps, ps[0])]
		b := mol.Residues[leadingResidue(bps, ps[len(ps)-1])]
		if a.Chain == b.Chain && a.ID > b.ID {
			reverse(ps)
		}
	}
	h.Pairs = ps
}

//leadingResidue is the residue index of the pair's leading-strand member,
//honoring the Flipped flag.
func leadingResidue(bps []*pair.BasePair, op OrientedPair) int {
	if op.Flipped {
		return bps[op.Index].J
	}
	return bps[op.Index].I
}

//effectiveNormal is the z axis of the leading-strand frame.
func effectiveNormal(bps []*pair.BasePair, op OrientedPair) *geo.Matrix {
	if op.Flipped {
		return bps[op.Index].FrameJ.Z()
	}
	return bps[op.Index].FrameI.Z()
}

func reverse(ps []OrientedPair) {
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
}
