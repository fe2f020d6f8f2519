/*
 * monomer.go, part of libcifpp.
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

import (
	"math"

	"github.com/MartinSalinas98/libcifpp/geom"
)

//A Monomer is a residue in chain context: it knows its polymer and its
//index within it, which is what the neighbor-relative torsion angles
//need. All torsion accessors are best effort: a missing atom, a chain
//break or degenerate geometry yields the NoTorsion sentinel (or 0 for
//the cosine-valued tco), never an error.
type Monomer struct {
	Residue

	polymer *Polymer
	index   int
}

//Polymer returns the chain this monomer belongs to.
func (m *Monomer) Polymer() *Polymer { return m.polymer }

//Index returns the 0-based position of this monomer in its polymer.
func (m *Monomer) Index() int { return m.index }

//IsFirstInChain reports whether this is the first monomer of its chain.
func (m *Monomer) IsFirstInChain() bool { return m.index == 0 }

//IsLastInChain reports whether this is the last monomer of its chain.
func (m *Monomer) IsLastInChain() bool { return m.index == len(m.polymer.monomers)-1 }

//Prev returns the preceding monomer in the chain, or nil.
func (m *Monomer) Prev() *Monomer {
	if m.index == 0 {
		return nil
	}
	return m.polymer.monomers[m.index-1]
}

//Next returns the following monomer in the chain, or nil.
func (m *Monomer) Next() *Monomer {
	if m.index+1 >= len(m.polymer.monomers) {
		return nil
	}
	return m.polymer.monomers[m.index+1]
}

//atom returns the location of the named atom and whether it exists.
func (m *Monomer) atom(name string) (geom.Point, bool) {
	a, err := m.AtomByID(name)
	if err != nil {
		return geom.Point{}, false
	}
	return a.Location(), true
}

//Phi returns the backbone φ torsion, C(i-1)-N-CA-C. The predecessor
//must carry the sequence number directly below this monomer's;
//otherwise the chain is broken here and the result is NoTorsion.
func (m *Monomer) Phi() float64 {
	prev := m.Prev()
	if prev == nil || prev.seqID != m.seqID-1 {
		return NoTorsion
	}

	pc, ok1 := prev.atom("C")
	n, ok2 := m.atom("N")
	ca, ok3 := m.atom("CA")
	c, ok4 := m.atom("C")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return NoTorsion
	}
	return geom.DihedralAngle(pc, n, ca, c)
}

//Psi returns the backbone ψ torsion, N-CA-C-N(i+1), NoTorsion at chain
//breaks.
func (m *Monomer) Psi() float64 {
	next := m.Next()
	if next == nil || next.seqID != m.seqID+1 {
		return NoTorsion
	}

	n, ok1 := m.atom("N")
	ca, ok2 := m.atom("CA")
	c, ok3 := m.atom("C")
	nn, ok4 := next.atom("N")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return NoTorsion
	}
	return geom.DihedralAngle(n, ca, c, nn)
}

//Omega returns the ω torsion of the peptide bond to the next monomer,
//CA-C-N(i+1)-CA(i+1).
func (m *Monomer) Omega() float64 {
	next := m.Next()
	if next == nil {
		return NoTorsion
	}
	return OmegaAngle(m, next)
}

//OmegaAngle returns the ω torsion of the peptide bond from a to b.
func OmegaAngle(a, b *Monomer) float64 {
	ca1, ok1 := a.atom("CA")
	c, ok2 := a.atom("C")
	n, ok3 := b.atom("N")
	ca2, ok4 := b.atom("CA")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return NoTorsion
	}
	return geom.DihedralAngle(ca1, c, n, ca2)
}

//Kappa returns the virtual bond angle at CA, computed over the CA atoms
//of the monomers two before and two after. Both neighbours must exist
//and their sequence numbers must span exactly four.
func (m *Monomer) Kappa() float64 {
	if m.index < 2 || m.index+2 >= len(m.polymer.monomers) {
		return NoTorsion
	}
	prevPrev := m.polymer.monomers[m.index-2]
	nextNext := m.polymer.monomers[m.index+2]
	if prevPrev.seqID+4 != nextNext.seqID {
		return NoTorsion
	}

	ca, ok1 := m.atom("CA")
	cappp, ok2 := prevPrev.atom("CA")
	cannn, ok3 := nextNext.atom("CA")
	if !ok1 || !ok2 || !ok3 {
		return NoTorsion
	}

	ckap := geom.CosinusAngle(ca, cappp, cannn, ca)
	skap := math.Sqrt(1 - ckap*ckap)
	return math.Atan2(skap, ckap) * 180 / math.Pi
}

//TCO returns the cosine of the angle between this monomer's C=O bond
//and the previous one's, 0 when either is unavailable.
func (m *Monomer) TCO() float64 {
	prev := m.Prev()
	if prev == nil || prev.seqID != m.seqID-1 {
		return 0
	}

	c, ok1 := m.atom("C")
	o, ok2 := m.atom("O")
	pc, ok3 := prev.atom("C")
	po, ok4 := prev.atom("O")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return 0
	}
	return geom.CosinusAngle(c, o, pc, po)
}

//Alpha returns the virtual torsion over the CA atoms of monomers
//i-1, i, i+1 and i+2, NoTorsion near chain ends.
func (m *Monomer) Alpha() float64 {
	if m.index < 1 || m.index+2 >= len(m.polymer.monomers) {
		return NoTorsion
	}
	prev := m.polymer.monomers[m.index-1]
	next := m.polymer.monomers[m.index+1]
	nextNext := m.polymer.monomers[m.index+2]

	caPrev, ok1 := prev.atom("CA")
	ca, ok2 := m.atom("CA")
	caNext, ok3 := next.atom("CA")
	caNext2, ok4 := nextNext.atom("CA")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return NoTorsion
	}
	return geom.DihedralAngle(caPrev, ca, caNext, caNext2)
}

//chiAtoms maps a compound id to the side-chain atom names that extend
//the N,CA,CB stem; each consecutive window of four names defines one χ.
var chiAtoms = map[string][]string{
	"ASP": {"CG", "OD1"},
	"ASN": {"CG", "OD1"},
	"ARG": {"CG", "CD", "NE", "CZ", "NH1"},
	"HIS": {"CG", "ND1"},
	"GLN": {"CG", "CD", "OE1"},
	"GLU": {"CG", "CD", "OE1"},
	"SER": {"OG"},
	"THR": {"OG1"},
	"LYS": {"CG", "CD", "CE", "NZ"},
	"TYR": {"CG", "CD1"},
	"PHE": {"CG", "CD1"},
	"LEU": {"CG", "CD1"},
	"TRP": {"CG", "CD1"},
	"CYS": {"SG"},
	"ILE": {"CG1", "CD1"},
	"MET": {"CG", "SD", "CE"},
	"MSE": {"CG", "SE", "CE"},
	"PRO": {"CG", "CD"},
	"VAL": {"CG1"},
}

//NrOfChis returns how many χ angles this residue type defines.
func (m *Monomer) NrOfChis() int {
	return len(chiAtoms[m.compID])
}

//chiAtomNames returns the full torsion atom sequence for this residue
//type, with the LEU/VAL terminal branch resolved by chirality: when the
//chiral volume is positive the conventional branch atom is the other
//one.
func (m *Monomer) chiAtomNames() []string {
	ext, ok := chiAtoms[m.compID]
	if !ok {
		return nil
	}

	names := append([]string{"N", "CA", "CB"}, ext...)

	last := names[len(names)-1]
	if (m.compID == "LEU" && last == "CD1") || (m.compID == "VAL" && last == "CG1") {
		if m.ChiralVolume() > 0 {
			if m.compID == "LEU" {
				names[len(names)-1] = "CD2"
			} else {
				names[len(names)-1] = "CG2"
			}
		}
	}
	return names
}

//Chi returns the i-th (0-based) side-chain torsion, NoTorsion when the
//residue type has no such angle or an atom is missing.
func (m *Monomer) Chi(i int) float64 {
	names := m.chiAtomNames()
	if i < 0 || i+3 >= len(names) {
		return NoTorsion
	}

	var pts [4]geom.Point
	for j := 0; j < 4; j++ {
		p, ok := m.atom(names[i+j])
		if !ok {
			return NoTorsion
		}
		pts[j] = p
	}
	return geom.DihedralAngle(pts[0], pts[1], pts[2], pts[3])
}

//ChiralVolume returns the signed scalar triple product over the branch
//atoms of LEU (CB, CD1, CD2 seen from CG) and VAL (CA, CG1, CG2 seen
//from CB), and 0 for every other residue type.
func (m *Monomer) ChiralVolume() float64 {
	var center string
	var branches [3]string

	switch m.compID {
	case "LEU":
		center, branches = "CG", [3]string{"CB", "CD1", "CD2"}
	case "VAL":
		center, branches = "CB", [3]string{"CA", "CG1", "CG2"}
	default:
		return 0
	}

	c, ok := m.atom(center)
	if !ok {
		return 0
	}
	var v [3]geom.Point
	for i, name := range branches {
		p, ok := m.atom(name)
		if !ok {
			return 0
		}
		v[i] = p.Sub(c)
	}
	return v[0].Dot(v[1].Cross(v[2]))
}

//IsComplete reports whether all four backbone atoms are present.
func (m *Monomer) IsComplete() bool {
	var n, ca, c, o bool
	for _, a := range m.atoms {
		switch a.LabelAtomID() {
		case "N":
			n = true
		case "CA":
			ca = true
		case "C":
			c = true
		case "O":
			o = true
		}
	}
	return n && ca && c && o
}

//HasAlternateBackboneAtoms reports whether any backbone atom occurs in
//an alternate conformation.
func (m *Monomer) HasAlternateBackboneAtoms() bool {
	for _, a := range m.atoms {
		if a.IsBackbone() && a.LabelAltID() != "" {
			return true
		}
	}
	return false
}

//IsCis reports whether the peptide bond to the next monomer is cis,
//meaning |ω| of at most 30 degrees.
func (m *Monomer) IsCis() bool {
	next := m.Next()
	if next == nil {
		return false
	}
	return IsCisPeptide(m, next)
}

//IsCisPeptide reports whether the peptide bond from a to b is cis.
func IsCisPeptide(a, b *Monomer) bool {
	omega := OmegaAngle(a, b)
	return omega != NoTorsion && math.Abs(omega) <= 30
}

//AreBonded reports whether monomers a and b are joined by a peptide
//bond: the Cα–Cα distance must match the expected value, 3.0 Å for a
//cis bond and 3.8 Å for trans, within the tolerance (0.5 Å when the
//given tolerance is not positive).
func AreBonded(a, b *Monomer, tolerance float64) bool {
	if tolerance <= 0 {
		tolerance = 0.5
	}

	ca1, ok1 := a.atom("CA")
	ca2, ok2 := b.atom("CA")
	if !ok1 || !ok2 {
		return false
	}

	d := geom.Distance(ca1, ca2)
	expected := 3.8
	if IsCisPeptide(a, b) {
		expected = 3.0
	}
	return math.Abs(d-expected) <= tolerance
}
