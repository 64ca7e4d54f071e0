/*
 * templates.go, part of find-pair.
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

package findpair

import "github.com/jyesselm/find-pair-sub009/geo"

//The standard base geometries below are expressed in the standard
//reference frame (Tsukuba convention): the frame origin is (0,0,0), the
//axes are the identity, and the base lies in the xy plane. Fitting the
//template onto the experimental ring atoms therefore yields the
//experimental frame directly: rotation = fitted rotation, origin = fitted
//translation.

//TemplateAtom is one heavy atom of a standard base.
type TemplateAtom struct {
	Name    string
	X, Y, Z float64
}

var templateA = []TemplateAtom{
	{"N9", -1.291, 4.498, 0.000},
	{"C8", 0.024, 4.897, 0.000},
	{"N7", 0.877, 3.902, 0.000},
	{"C5", 0.071, 2.771, 0.000},
	{"C6", 0.369, 1.398, 0.000},
	{"N6", 1.611, 0.909, 0.000},
	{"N1", -0.668, 0.532, 0.000},
	{"C2", -1.912, 1.023, 0.000},
	{"N3", -2.320, 2.290, 0.000},
	{"C4", -1.267, 3.124, 0.000},
}

var templateG = []TemplateAtom{
	{"N9", -1.289, 4.551, 0.000},
	{"C8", 0.023, 4.962, 0.000},
	{"N7", 0.870, 3.969, 0.000},
	{"C5", 0.071, 2.833, 0.000},
	{"C6", 0.424, 1.460, 0.000},
	{"O6", 1.554, 0.955, 0.000},
	{"N1", -0.700, 0.641, 0.000},
	{"C2", -1.999, 1.087, 0.000},
	{"N2", -2.949, 0.139, -0.001},
	{"N3", -2.342, 2.364, 0.001},
	{"C4", -1.265, 3.177, 0.000},
}

var templateC = []TemplateAtom{
	{"N1", -1.285, 4.542, 0.000},
	{"C2", -1.472, 3.158, 0.000},
	{"O2", -2.628, 2.709, 0.001},
	{"N3", -0.391, 2.344, 0.000},
	{"C4", 0.837, 2.868, 0.000},
	{"N4", 1.875, 2.027, 0.001},
	{"C5", 1.056, 4.275, 0.000},
	{"C6", -0.023, 5.068, 0.000},
}

var templateT = []TemplateAtom{
	{"N1", -1.284, 4.500, 0.000},
	{"C2", -1.462, 3.135, 0.000},
	{"O2", -2.562, 2.608, 0.000},
	{"N3", -0.298, 2.407, 0.000},
	{"C4", 0.994, 2.897, 0.000},
	{"O4", 1.944, 2.119, 0.000},
	{"C5", 1.106, 4.338, 0.000},
	{"C7", 2.466, 4.961, 0.001},
	{"C6", -0.024, 5.057, 0.000},
}

var templateU = []TemplateAtom{
	{"N1", -1.284, 4.500, 0.000},
	{"C2", -1.462, 3.131, 0.000},
	{"O2", -2.563, 2.608, 0.000},
	{"N3", -0.302, 2.397, 0.000},
	{"C4", 0.989, 2.884, 0.000},
	{"O4", 1.935, 2.094, -0.001},
	{"C5", 1.089, 4.311, 0.000},
	{"C6", -0.024, 5.053, 0.000},
}

var templates = map[byte][]TemplateAtom{
	'A': templateA,
	'G': templateG,
	'C': templateC,
	'T': templateT,
	'U': templateU,
	'I': templateG, //inosine shares the guanine ring geometry
}

//PurineRing lists the 9 purine ring atoms used for frame fitting, and
//PyrimidineRing the 6 pyrimidine ones. The pyrimidine list doubles as the
//shared 6-atom core for the purine two-try fallback.
var (
	PurineRing     = []string{"C4", "C5", "N7", "C8", "N9", "N1", "C2", "N3", "C6"}
	PyrimidineRing = []string{"N1", "C2", "N3", "C4", "C5", "C6"}
)

//ringOutline gives the ring atoms in perimeter order, used to build the
//projected base polygon for overlap calculations.
var (
	purineOutline     = []string{"N1", "C2", "N3", "C4", "N9", "C8", "N7", "C5", "C6"}
	pyrimidineOutline = []string{"N1", "C2", "N3", "C4", "C5", "C6"}
)

//exocyclic lists the immediate non-hydrogen ring substituents included in
//the overlap polygon together with the ring.
var exocyclic = []string{"O2", "O4", "O6", "N2", "N4", "N6", "C7", "C5M"}

//RingAtoms returns the ring atom names for the given classification.
func RingAtoms(c Classification) []string {
	if c == Purine {
		return PurineRing
	}
	return PyrimidineRing
}

//RingOutline returns the ring atom names in perimeter order.
func RingOutline(c Classification) []string {
	if c == Purine {
		return purineOutline
	}
	return pyrimidineOutline
}

//OverlapAtoms returns the names considered for the base overlap polygon:
//the ring outline plus the immediate exocyclic heavy atoms.
func OverlapAtoms(c Classification) []string {
	out := append([]string{}, RingOutline(c)...)
	return append(out, exocyclic...)
}

//Template returns the standard base template for the one-letter code, or
//nil if there is none. The returned slice is shared and must not be
//modified.
func Template(code byte) []TemplateAtom {
	return templates[code]
}

//TemplateCoords extracts the template coordinates of the given atom names,
//in order, as a coordinate set. Names not present in the template are
//skipped; the matched names are returned alongside.
func TemplateCoords(code byte, names []string) (*geo.Matrix, []string) {
	t := Template(code)
	if t == nil {
		return nil, nil
	}
	data := make([]float64, 0, 3*len(names))
	found := make([]string, 0, len(names))
	for _, n := range names {
		for _, a := range t {
			if a.Name == n {
				data = append(data, a.X, a.Y, a.Z)
				found = append(found, n)
				break
			}
		}
	}
	if len(found) == 0 {
		return nil, nil
	}
	m, _ := geo.NewMatrix(data) //length is a multiple of 3 by construction
	return m, found
}
