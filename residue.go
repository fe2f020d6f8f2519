/*
 * residue.go, part of libcifpp.
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
	"fmt"

	"github.com/MartinSalinas98/libcifpp/geom"
)

//A Residue groups the atoms of one chemical residue. Identity is the
//(asym id, comp id, seq id) triple; a seq id of 0 marks a non-polymer
//residue addressed by its auth seq id instead, which is how waters are
//told apart even though they share label identity. A Residue is built
//once during Structure construction; later structural edits do not
//retroactively update it.
type Residue struct {
	structure *Structure

	compID    string
	asymID    string
	seqID     int
	authSeqID string

	atoms []Atom
}

func (r *Residue) CompID() string    { return r.compID }
func (r *Residue) AsymID() string    { return r.asymID }
func (r *Residue) SeqID() int        { return r.seqID }
func (r *Residue) AuthSeqID() string { return r.authSeqID }

//Structure returns the structure this residue was built from.
func (r *Residue) Structure() *Structure { return r.structure }

//Compound resolves the dictionary definition for this residue type.
func (r *Residue) Compound() (*Compound, error) {
	return CompoundByID(r.compID)
}

//Atoms returns the member atoms in insertion order. The chemical order
//of atoms within the residue is whatever the source records held.
func (r *Residue) Atoms() []Atom {
	return r.atoms
}

//UniqueAtoms returns the atoms filtered on alternate conformation: all
//atoms without an alt id plus those matching the residue's unique alt
//id (the first non-empty one seen).
func (r *Residue) UniqueAtoms() []Atom {
	alt := r.UniqueAltID()
	var result []Atom
	for _, a := range r.atoms {
		if a.LabelAltID() == "" || a.LabelAltID() == alt {
			result = append(result, a)
		}
	}
	return result
}

//UniqueAltID returns the first non-empty alternate-conformation id
//among the member atoms, or the empty string.
func (r *Residue) UniqueAltID() string {
	for _, a := range r.atoms {
		if a.LabelAltID() != "" {
			return a.LabelAltID()
		}
	}
	return ""
}

//AtomByID returns the member atom with the given label atom id. A miss
//is a NotFound error: whether an atom exists is information the caller
//needs, never something to default.
func (r *Residue) AtomByID(atomID string) (Atom, error) {
	for _, a := range r.atoms {
		if a.LabelAtomID() == atomID {
			return a, nil
		}
	}
	return Atom{}, notFoundError("mmcif: residue %s has no atom %q", r.LabelID(), atomID)
}

//EntityID returns the label entity id of the residue, read from the
//first member atom.
func (r *Residue) EntityID() string {
	if len(r.atoms) == 0 {
		return ""
	}
	return r.atoms[0].Property("label_entity_id")
}

//CenterAndRadius returns the centroid of the member atoms and the
//radius of the sphere around it that contains them all.
func (r *Residue) CenterAndRadius() (geom.Point, float64) {
	if len(r.atoms) == 0 {
		return geom.Point{}, 0
	}

	pts := make([]geom.Point, len(r.atoms))
	for i, a := range r.atoms {
		pts[i] = a.Location()
	}

	center := geom.Centroid(pts)
	radius := 0.0
	for _, p := range pts {
		if d := geom.Distance(center, p); d > radius {
			radius = d
		}
	}
	return center, radius
}

//LabelID returns a human-readable label-space identifier.
func (r *Residue) LabelID() string {
	if r.seqID == 0 {
		return fmt.Sprintf("%s %s (auth %s)", r.compID, r.asymID, r.authSeqID)
	}
	return fmt.Sprintf("%s %s %d", r.compID, r.asymID, r.seqID)
}

//AuthID returns a human-readable auth-space identifier.
func (r *Residue) AuthID() string {
	if len(r.atoms) == 0 {
		return r.LabelID()
	}
	a := r.atoms[0]
	return fmt.Sprintf("%s %s %s", r.compID, a.AuthAsymID(), a.AuthSeqID())
}

//contains reports whether the atom matches this residue's identity.
func (r *Residue) contains(a Atom) bool {
	if a.LabelAsymID() != r.asymID || a.LabelCompID() != r.compID {
		return false
	}
	if r.seqID == 0 {
		return a.AuthSeqID() == r.authSeqID
	}
	return a.LabelSeqID() == r.seqID
}
