/*
 * registry.go, part of find-pair.
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

import "strings"

//RegistryEntry maps a residue name to its one-letter base code and its
//chemical classification.
type RegistryEntry struct {
	Code  byte
	Class Classification
}

//registry is the modified-nucleotide lookup table, keyed by trimmed,
//upper-cased residue name. It is the authoritative source of residue
//classification: entries found here are final and geometry code must not
//override them. Loaded once, read-only afterward.
var registry = map[string]RegistryEntry{
	//standard ribonucleotides
	"A": {'A', Purine}, "ADE": {'A', Purine},
	"G": {'G', Purine}, "GUA": {'G', Purine},
	"C": {'C', Pyrimidine}, "CYT": {'C', Pyrimidine},
	"U": {'U', Pyrimidine}, "URA": {'U', Pyrimidine}, "URI": {'U', Pyrimidine},
	"T": {'T', Pyrimidine}, "THY": {'T', Pyrimidine},
	"I": {'I', Purine}, "INO": {'I', Purine},
	//standard deoxyribonucleotides
	"DA": {'A', Purine},
	"DG": {'G', Purine},
	"DC": {'C', Pyrimidine},
	"DT": {'T', Pyrimidine},
	"DU": {'U', Pyrimidine},
	"DI": {'I', Purine},
	//common modified nucleotides. The code is the parent base.
	"1MA": {'A', Purine},  //1-methyladenosine
	"2MA": {'A', Purine},  //2-methyladenosine
	"MIA": {'A', Purine},  //2-methylthio-N6-isopentenyladenosine
	"T6A": {'A', Purine},  //N6-threonylcarbamoyladenosine
	"OMG": {'G', Purine},  //O2'-methylguanosine
	"2MG": {'G', Purine},  //N2-methylguanosine
	"M2G": {'G', Purine},  //N2,N2-dimethylguanosine
	"7MG": {'G', Purine},  //7-methylguanosine
	"1MG": {'G', Purine},  //1-methylguanosine
	"YG":  {'G', Purine},  //wybutosine
	"G7M": {'G', Purine},  //
	"5MC": {'C', Pyrimidine}, //5-methylcytidine
	"OMC": {'C', Pyrimidine}, //O2'-methylcytidine
	"4OC": {'C', Pyrimidine},
	"PSU": {'U', Pyrimidine}, //pseudouridine
	"H2U": {'U', Pyrimidine}, //dihydrouridine
	"5MU": {'U', Pyrimidine}, //ribothymidine
	"4SU": {'U', Pyrimidine}, //4-thiouridine
	"OMU": {'U', Pyrimidine},
	"5BU": {'U', Pyrimidine}, //5-bromouridine
	"BRU": {'U', Pyrimidine},
	"UMS": {'U', Pyrimidine},
	"CBR": {'C', Pyrimidine},
	"5IU": {'U', Pyrimidine},
}

//LookupResidue consults the registry for the residue name. The boolean
//reports whether the name was registered; an unregistered name yields a
//zero entry and leaves classification to the caller's geometry heuristics.
func LookupResidue(name string) (RegistryEntry, bool) {
	e, ok := registry[strings.ToUpper(strings.TrimSpace(name))]
	return e, ok
}
