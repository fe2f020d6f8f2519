/*
 * atom.go, part of libcifpp.
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
	"sync"

	"github.com/MartinSalinas98/libcifpp/cif"
	"github.com/MartinSalinas98/libcifpp/geom"
)

//atomImpl is the shared storage behind Atom handles. Several handles
//may point to the same impl; a Clone gets an impl of its own with a
//detached row, so writing through the clone cannot touch the original
//record.
type atomImpl struct {
	db  *cif.Datablock //nil for detached clones
	row *cif.Row

	id       string
	typ      AtomType
	location geom.Point

	//prefetched label identity
	atomID    string
	compID    string
	asymID    string
	altID     string
	seqID     int
	authSeqID string

	//symmetry operator that produced this copy, empty for real atoms
	symop string

	compOnce sync.Once
	compound *Compound
	compErr  error
}

//An Atom is a lightweight handle on one atom record. Copying an Atom
//copies the handle, not the record: both copies see and affect the same
//storage. Use Clone for an independent atom.
type Atom struct {
	impl *atomImpl
}

//newAtom builds an atom over a backing atom_site row. The element
//symbol and the Cartesian coordinates must be present and well-formed.
func newAtom(db *cif.Datablock, row *cif.Row) (Atom, error) {
	im := &atomImpl{db: db, row: row}

	im.id = row.Str("id")
	im.atomID = row.Str("label_atom_id")
	im.compID = row.Str("label_comp_id")
	im.asymID = row.Str("label_asym_id")
	im.altID = row.Str("label_alt_id")
	im.authSeqID = row.Str("auth_seq_id")

	if row.Has("label_seq_id") {
		seq, err := row.Int("label_seq_id")
		if err != nil {
			return Atom{}, errDecorate(malformedError("mmcif: atom %s: bad label_seq_id", im.id), "newAtom")
		}
		im.seqID = seq
	}

	inf, err := AtomTypeTraits(row.Str("type_symbol"))
	if err != nil {
		im.typ = Nn
	} else {
		im.typ = inf.Type
	}

	x, errx := row.Float("Cartn_x")
	y, erry := row.Float("Cartn_y")
	z, errz := row.Float("Cartn_z")
	if errx != nil || erry != nil || errz != nil {
		return Atom{}, errDecorate(malformedError("mmcif: atom %s: missing coordinates", im.id), "newAtom")
	}
	im.location = geom.Point{X: x, Y: y, Z: z}

	return Atom{impl: im}, nil
}

//IsZero reports whether the handle is empty.
func (a Atom) IsZero() bool { return a.impl == nil }

func (a Atom) ID() string        { return a.impl.id }
func (a Atom) Type() AtomType    { return a.impl.typ }
func (a Atom) LabelAtomID() string { return a.impl.atomID }
func (a Atom) LabelCompID() string { return a.impl.compID }
func (a Atom) LabelAsymID() string { return a.impl.asymID }
func (a Atom) LabelAltID() string  { return a.impl.altID }
func (a Atom) LabelSeqID() int     { return a.impl.seqID }
func (a Atom) AuthSeqID() string   { return a.impl.authSeqID }

//AuthAsymID reads the published chain id from the backing record.
func (a Atom) AuthAsymID() string { return a.impl.row.Str("auth_asym_id") }

//SymmetryOp returns the operator label for symmetry copies, and the
//empty string for real atoms.
func (a Atom) SymmetryOp() string { return a.impl.symop }

//IsSymmetryCopy reports whether this handle is a symmetry-generated
//image rather than an atom of the asymmetric unit.
func (a Atom) IsSymmetryCopy() bool { return a.impl.symop != "" }

//Location returns the Cartesian position of the atom.
func (a Atom) Location() geom.Point { return a.impl.location }

//Equals reports whether two handles denote the same atom: either
//shared storage, or the same record of the same datablock.
func (a Atom) Equals(b Atom) bool {
	if a.impl == nil || b.impl == nil {
		return a.impl == b.impl
	}
	if a.impl == b.impl {
		return true
	}
	return a.impl.db != nil && a.impl.db == b.impl.db && a.impl.id == b.impl.id
}

//Clone returns an atom with fully detached storage. Mutations on the
//clone touch only the clone.
func (a Atom) Clone() Atom {
	im := &atomImpl{
		db:        nil,
		row:       a.impl.row.Clone(),
		id:        a.impl.id,
		typ:       a.impl.typ,
		location:  a.impl.location,
		atomID:    a.impl.atomID,
		compID:    a.impl.compID,
		asymID:    a.impl.asymID,
		altID:     a.impl.altID,
		seqID:     a.impl.seqID,
		authSeqID: a.impl.authSeqID,
		symop:     a.impl.symop,
	}
	return Atom{impl: im}
}

//symmetryCopy returns a read-only image of the atom at the transformed
//location, labelled with the operator that produced it.
func (a Atom) symmetryCopy(loc geom.Point, symop string) Atom {
	im := &atomImpl{
		db:        a.impl.db,
		row:       a.impl.row,
		id:        a.impl.id,
		typ:       a.impl.typ,
		location:  loc,
		atomID:    a.impl.atomID,
		compID:    a.impl.compID,
		asymID:    a.impl.asymID,
		altID:     a.impl.altID,
		seqID:     a.impl.seqID,
		authSeqID: a.impl.authSeqID,
		symop:     symop,
	}
	return Atom{impl: im}
}

//MoveTo changes the location of the atom, writing through to the
//backing record. Symmetry copies cannot be moved.
func (a Atom) MoveTo(p geom.Point) error {
	if a.IsSymmetryCopy() {
		return CError{msg: string(ErrSymmetryMutation)}
	}
	a.impl.location = p
	a.impl.row.SetFloat("Cartn_x", p.X, 3)
	a.impl.row.SetFloat("Cartn_y", p.Y, 3)
	a.impl.row.SetFloat("Cartn_z", p.Z, 3)
	return nil
}

//SetProperty writes a field of the backing record. Symmetry copies
//cannot be changed.
func (a Atom) SetProperty(field, value string) error {
	if a.IsSymmetryCopy() {
		return CError{msg: string(ErrSymmetryMutation)}
	}
	a.impl.row.SetStr(field, value)
	switch field {
	case "label_atom_id":
		a.impl.atomID = value
	case "label_comp_id":
		a.impl.compID = value
	case "label_asym_id":
		a.impl.asymID = value
	case "label_alt_id":
		a.impl.altID = value
	case "auth_seq_id":
		a.impl.authSeqID = value
	case "id":
		a.impl.id = value
	}
	return nil
}

//Property reads a field of the backing record.
func (a Atom) Property(field string) string {
	return a.impl.row.Str(field)
}

//Occupancy returns the occupancy of the atom, defaulting to 1 when the
//record does not carry one.
func (a Atom) Occupancy() float64 {
	if !a.impl.row.Has("occupancy") {
		return 1.0
	}
	occ, err := a.impl.row.Float("occupancy")
	if err != nil {
		return 1.0
	}
	return occ
}

//UIso returns the isotropic displacement parameter, converting from
//B_iso when only that is present. A record carrying neither is
//malformed.
func (a Atom) UIso() (float64, error) {
	row := a.impl.row
	if row.Has("U_iso_or_equiv") {
		return row.Float("U_iso_or_equiv")
	}
	if row.Has("B_iso_or_equiv") {
		b, err := row.Float("B_iso_or_equiv")
		if err != nil {
			return 0, errDecorate(err, "UIso")
		}
		return b / (8 * math.Pi * math.Pi), nil
	}
	return 0, errDecorate(malformedError("mmcif: atom %s: neither U_iso nor B_iso present", a.impl.id), "UIso")
}

//AnisoU returns the six anisotropic displacement components
//(U11,U12,U13,U22,U23,U33) from the atom_site_anisotrop category, or a
//NotFound error when the atom has no anisotropic record.
func (a Atom) AnisoU() ([6]float64, error) {
	var u [6]float64

	if a.impl.db == nil || !a.impl.db.Has("atom_site_anisotrop") {
		return u, notFoundError("mmcif: atom %s: no anisotropic displacement", a.impl.id)
	}

	r := a.impl.db.Get("atom_site_anisotrop").First(cif.Eq("id", a.impl.id))
	if r == nil {
		return u, notFoundError("mmcif: atom %s: no anisotropic displacement", a.impl.id)
	}

	fields := []string{"U[1][1]", "U[1][2]", "U[1][3]", "U[2][2]", "U[2][3]", "U[3][3]"}
	for i, f := range fields {
		v, err := r.Float(f)
		if err != nil {
			return u, errDecorate(err, "AnisoU")
		}
		u[i] = v
	}
	return u, nil
}

//Charge returns the formal charge, from the record when present and
//from the compound definition otherwise.
func (a Atom) Charge() int {
	if a.impl.row.Has("pdbx_formal_charge") {
		c, err := a.impl.row.Int("pdbx_formal_charge")
		if err == nil {
			return c
		}
	}
	if c, err := a.Compound(); err == nil {
		return c.FormalCharge
	}
	return 0
}

//Compound resolves the dictionary definition of the atom's residue
//type, caching the result. The cache also holds a miss: an atom of an
//unknown compound answers the same NotFound every time.
func (a Atom) Compound() (*Compound, error) {
	im := a.impl
	im.compOnce.Do(func() {
		im.compound, im.compErr = CompoundByID(im.compID)
	})
	return im.compound, im.compErr
}

//IsWater reports whether the atom belongs to a water molecule.
func (a Atom) IsWater() bool {
	return IsWaterCompID(a.impl.compID)
}

//IsBackbone reports whether this is one of the four protein backbone
//atoms.
func (a Atom) IsBackbone() bool {
	switch a.impl.atomID {
	case "N", "CA", "C", "O":
		return true
	}
	return false
}

//IsMetal reports whether the element of this atom is a metal.
func (a Atom) IsMetal() bool {
	inf, err := AtomTypeTraitsForType(a.impl.typ)
	return err == nil && inf.Metal
}
