/*
 * doc.go, part of find-pair.
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

/*
Package findpair analyzes 3D nucleic-acid structures to detect base pairs
and describe their double-helical organization. It provides the atom,
residue and structure model, the residue classification registry, the
standard base templates, the threshold configuration, PDB input, and the
per-residue reference frame calculation.

The pipeline for one structure is:

	mol, err := findpair.PDBFileRead("structure.pdb")
	set := findpair.DefaultSettings()
	findpair.AssignFrames(mol, set)
	bps := pair.SelectPairs(pair.NewValidator(mol, set))
	helices := helix.Organize(mol, bps, set)

Each structure is processed independently; Settings, the registry and the
templates are read-only after load, so independent structures may be
handled from concurrent goroutines sharing them.
*/
package findpair
