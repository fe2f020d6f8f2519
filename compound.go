/*
 * compound.go, part of libcifpp.
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

package mmcif

import "strings"

//A Compound is the dictionary definition of a residue type: what a
//comp id means chemically. The data here covers the standard amino
//acids, water and the common selenomethionine variant; everything else
//resolves as NotFound, which callers treat as "no chemistry known",
//not as a fatal condition.
type Compound struct {
	ID           string
	Name         string
	Formula      string
	Type         string //"peptide linking", "non-polymer" or "water"
	FormalCharge int
}

//IsWater reports whether the compound is a water molecule.
func (c *Compound) IsWater() bool {
	return c.Type == "water"
}

//IsPeptide reports whether the compound links into a peptide chain.
func (c *Compound) IsPeptide() bool {
	return c.Type == "peptide linking"
}

var compounds = map[string]Compound{
	"ALA": {"ALA", "ALANINE", "C3 H7 N O2", "peptide linking", 0},
	"ARG": {"ARG", "ARGININE", "C6 H15 N4 O2 1", "peptide linking", 1},
	"ASN": {"ASN", "ASPARAGINE", "C4 H8 N2 O3", "peptide linking", 0},
	"ASP": {"ASP", "ASPARTIC ACID", "C4 H7 N O4", "peptide linking", 0},
	"CYS": {"CYS", "CYSTEINE", "C3 H7 N O2 S", "peptide linking", 0},
	"GLN": {"GLN", "GLUTAMINE", "C5 H10 N2 O3", "peptide linking", 0},
	"GLU": {"GLU", "GLUTAMIC ACID", "C5 H9 N O4", "peptide linking", 0},
	"GLY": {"GLY", "GLYCINE", "C2 H5 N O2", "peptide linking", 0},
	"HIS": {"HIS", "HISTIDINE", "C6 H10 N3 O2 1", "peptide linking", 1},
	"ILE": {"ILE", "ISOLEUCINE", "C6 H13 N O2", "peptide linking", 0},
	"LEU": {"LEU", "LEUCINE", "C6 H13 N O2", "peptide linking", 0},
	"LYS": {"LYS", "LYSINE", "C6 H15 N2 O2 1", "peptide linking", 1},
	"MET": {"MET", "METHIONINE", "C5 H11 N O2 S", "peptide linking", 0},
	"MSE": {"MSE", "SELENOMETHIONINE", "C5 H11 N O2 Se", "peptide linking", 0},
	"PHE": {"PHE", "PHENYLALANINE", "C9 H11 N O2", "peptide linking", 0},
	"PRO": {"PRO", "PROLINE", "C5 H9 N O2", "peptide linking", 0},
	"SER": {"SER", "SERINE", "C3 H7 N O3", "peptide linking", 0},
	"THR": {"THR", "THREONINE", "C4 H9 N O3", "peptide linking", 0},
	"TRP": {"TRP", "TRYPTOPHAN", "C11 H12 N2 O2", "peptide linking", 0},
	"TYR": {"TYR", "TYROSINE", "C9 H11 N O3", "peptide linking", 0},
	"VAL": {"VAL", "VALINE", "C5 H11 N O2", "peptide linking", 0},
	"HOH": {"HOH", "WATER", "H2 O", "water", 0},
	"H2O": {"H2O", "WATER", "H2 O", "water", 0},
	"WAT": {"WAT", "WATER", "H2 O", "water", 0},
}

//CompoundByID resolves a comp id to its dictionary definition. A miss
//is a NotFound error.
func CompoundByID(id string) (*Compound, error) {
	c, ok := compounds[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return nil, notFoundError("mmcif: unknown compound %q", id)
	}
	return &c, nil
}

//IsWaterCompID reports whether the comp id names a water, without
//requiring the compound to resolve.
func IsWaterCompID(id string) bool {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "HOH", "H2O", "WAT":
		return true
	}
	return false
}
