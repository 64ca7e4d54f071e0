/*
 * selector.go, part of find-pair.
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
	"runtime"
	"sync"
)

//Selector runs the greedy mutual-best-match algorithm over all residues,
//using an Oracle as the scoring authority. The candidate score table is
//computed up front (optionally concurrently, each goroutine owning its own
//rows) and is read-only during the sequential commit loop, which is
//inherently order-dependent and must stay single-threaded.
type Selector struct {
	oracle Oracle
	cpus   int
}

//NewSelector returns a Selector over the given oracle.
func NewSelector(o Oracle) *Selector {
	return &Selector{oracle: o, cpus: runtime.NumCPU()}
}

//Cpus returns the number of goroutines used for the score table and sets
//it, if a valid value is given.
func (S *Selector) Cpus(cpus ...int) int {
	ret := S.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		S.cpus = cpus[0]
	}
	return ret
}

//Table validates every residue pair once and returns the full symmetric
//candidate table. table[i][j] and table[j][i] share the same Candidate;
//the diagonal is nil.
func (S *Selector) Table() [][]*Candidate {
	n := S.oracle.Len()
	table := make([][]*Candidate, n)
	for i := range table {
		table[i] = make([]*Candidate, n)
	}
	cpus := S.cpus
	if cpus < 1 {
		cpus = 1
	}
	//Each worker takes whole rows i and fills table[i][j] plus the mirror
	//cell table[j][i] for j > i. A given cell is written by exactly one
	//worker, so no locking is needed; the table is immutable afterwards.
	rows := make(chan int)
	var wg sync.WaitGroup
	wg.Add(cpus)
	for w := 0; w < cpus; w++ {
		go func() {
			defer wg.Done()
			for i := range rows {
				for j := i + 1; j < n; j++ {
					c := S.oracle.Validate(i, j)
					table[i][j] = c
					table[j][i] = c
				}
			}
		}()
	}
	for i := 0; i < n-1; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()
	return table
}

//Select returns the maximal set of candidates such that every residue
//appears in at most one pair and each selected pair is the reciprocal
//best-scoring valid partner of both members.
//
//The loop keeps an explicit pool of unmatched residues and repeats until a
//pass commits nothing. Best-partner comparison is a strict less-than: an
//equally good candidate seen later never displaces the first one, so the
//tie-break is deterministic. The pool only shrinks, so the loop terminates
//in at most n passes.
func (S *Selector) Select() []*Candidate {
	table := S.Table()
	n := len(table)
	inPool := make([]bool, n)
	for i := range inPool {
		inPool[i] = true
	}
	var selected []*Candidate
	for {
		best := make([]int, n)
		for i := range best {
			best[i] = -1
		}
		bestScore := make([]float64, n)
		for i := 0; i < n; i++ {
			if !inPool[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if j == i || !inPool[j] {
					continue
				}
				c := table[i][j]
				if c == nil || !c.Valid {
					continue
				}
				if best[i] == -1 || c.Score < bestScore[i] {
					best[i] = j
					bestScore[i] = c.Score
				}
			}
		}
		changed := false
		for i := 0; i < n; i++ {
			if !inPool[i] {
				continue
			}
			j := best[i]
			if j > i && best[j] == i {
				selected = append(selected, table[i][j])
				inPool[i] = false
				inPool[j] = false
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return selected
}

//SelectPairs is the convenience used by the pipeline: it runs Select over
//a Validator and promotes the survivors to BasePairs with their frames.
func SelectPairs(V *Validator) []*BasePair {
	s := NewSelector(V)
	s.Cpus(V.set.Cpus)
	cands := s.Select()
	out := make([]*BasePair, 0, len(cands))
	for _, c := range cands {
		out = append(out, V.Promote(c))
	}
	return out
}
