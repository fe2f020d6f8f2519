/*
 * structure.go, part of libcifpp.
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
	"sort"
	"strconv"

	"github.com/MartinSalinas98/libcifpp/cif"
	"github.com/MartinSalinas98/libcifpp/geom"
)

//Options for opening a Structure from a datablock. The zero value is
//usable; DefaultOpenOptions spells the defaults out.
type OpenOptions struct {
	skipHydrogen bool
}

//DefaultOpenOptions returns the default open options: every atom of
//the requested model is loaded.
func DefaultOpenOptions() *OpenOptions {
	return &OpenOptions{}
}

//Returns whether hydrogens are skipped while loading,
//and sets it to a new value, if given.
func (O *OpenOptions) SkipHydrogen(b ...bool) bool {
	if len(b) > 0 {
		O.skipHydrogen = b[0]
	}
	return O.skipHydrogen
}

//A Structure is the full data model for one model of a crystal
//structure: the atom list as source of truth, a sorted id index over
//it, and the partition into polymers, non-polymer residues and branch
//residues. The id index is rebuilt after every mutation; lookups
//through a stale index are a defect, not a supported state.
type Structure struct {
	db      *cif.Datablock
	modelNr int

	atoms   []Atom
	idIndex map[string]int

	polymers    []*Polymer
	nonPolymers []*Residue
	branch      []*Residue
}

//NewStructure builds the data model for the given model number from a
//datablock of validated records.
func NewStructure(db *cif.Datablock, modelNr int, options *OpenOptions) (*Structure, error) {
	if db == nil {
		panic(ErrNilStructure)
	}
	if options == nil {
		options = DefaultOpenOptions()
	}

	s := &Structure{db: db, modelNr: modelNr}

	model := strconv.Itoa(modelNr)
	for _, row := range db.Get("atom_site").Rows() {
		if row.Has("pdbx_PDB_model_num") && row.Str("pdbx_PDB_model_num") != model {
			continue
		}
		if options.skipHydrogen {
			sym := row.Str("type_symbol")
			if sym == "H" || sym == "D" {
				continue
			}
		}

		a, err := newAtom(db, row)
		if err != nil {
			return nil, errDecorate(err, "NewStructure")
		}
		s.atoms = append(s.atoms, a)
	}

	s.rebuildIndex()
	s.buildPolymers()
	s.buildNonPolymers()
	s.buildBranch()

	return s, nil
}

//rebuildIndex recomputes the id→atom index. Called after every
//structural mutation.
func (s *Structure) rebuildIndex() {
	s.idIndex = make(map[string]int, len(s.atoms))
	for i, a := range s.atoms {
		s.idIndex[a.ID()] = i
	}
}

//buildPolymers partitions the polymeric atoms into chains following
//the polymer-sequence scheme: one polymer per run of (asym id, entity
//id), monomers in the order the scheme lists them.
func (s *Structure) buildPolymers() {
	if !s.db.Has("pdbx_poly_seq_scheme") {
		return
	}

	var current *Polymer
	for _, row := range s.db.Get("pdbx_poly_seq_scheme").Rows() {
		asymID := row.Str("asym_id")
		entityID := row.Str("entity_id")
		seqID, err := row.Int("seq_id")
		if err != nil {
			continue
		}
		compID := row.Str("mon_id")

		if current == nil || current.asymID != asymID || current.entityID != entityID {
			current = &Polymer{structure: s, entityID: entityID, asymID: asymID}
			s.polymers = append(s.polymers, current)
		}

		m := &Monomer{
			Residue: Residue{
				structure: s,
				compID:    compID,
				asymID:    asymID,
				seqID:     seqID,
			},
		}
		for _, a := range s.atoms {
			if m.contains(a) {
				m.atoms = append(m.atoms, a)
			}
		}
		current.appendMonomer(m)
	}
}

//buildNonPolymers builds the non-polymer residue list. Waters are
//grouped by auth seq id: independent waters share label identity, the
//auth number is what tells them apart.
func (s *Structure) buildNonPolymers() {
	if !s.db.Has("pdbx_nonpoly_scheme") {
		return
	}

	seen := make(map[string]bool)
	for _, row := range s.db.Get("pdbx_nonpoly_scheme").Rows() {
		asymID := row.Str("asym_id")
		compID := row.Str("mon_id")
		authSeqID := row.Str("pdb_seq_num")

		key := asymID + "/" + compID + "/" + authSeqID
		if seen[key] {
			continue
		}
		seen[key] = true

		r := &Residue{
			structure: s,
			compID:    compID,
			asymID:    asymID,
			seqID:     0,
			authSeqID: authSeqID,
		}
		for _, a := range s.atoms {
			if r.contains(a) {
				r.atoms = append(r.atoms, a)
			}
		}
		s.nonPolymers = append(s.nonPolymers, r)
	}
}

//buildBranch builds the branched (oligosaccharide) residue list from
//the branch scheme.
func (s *Structure) buildBranch() {
	if !s.db.Has("pdbx_branch_scheme") {
		return
	}

	seen := make(map[string]bool)
	for _, row := range s.db.Get("pdbx_branch_scheme").Rows() {
		asymID := row.Str("asym_id")
		compID := row.Str("mon_id")
		authSeqID := row.Str("pdb_seq_num")

		key := asymID + "/" + compID + "/" + authSeqID
		if seen[key] {
			continue
		}
		seen[key] = true

		r := &Residue{
			structure: s,
			compID:    compID,
			asymID:    asymID,
			seqID:     0,
			authSeqID: authSeqID,
		}
		for _, a := range s.atoms {
			if r.contains(a) {
				r.atoms = append(r.atoms, a)
			}
		}
		s.branch = append(s.branch, r)
	}
}

//Datablock returns the backing record store.
func (s *Structure) Datablock() *cif.Datablock { return s.db }

//ModelNr returns the model number this structure was built for.
func (s *Structure) ModelNr() int { return s.modelNr }

//Atoms returns all atoms, in file order (or id order after SortAtoms).
func (s *Structure) Atoms() []Atom { return s.atoms }

//Waters returns the atoms belonging to water molecules.
func (s *Structure) Waters() []Atom {
	var result []Atom
	for _, a := range s.atoms {
		if a.IsWater() {
			result = append(result, a)
		}
	}
	return result
}

//Polymers returns the polymer chains.
func (s *Structure) Polymers() []*Polymer { return s.polymers }

//NonPolymers returns the non-polymer residues, waters included.
func (s *Structure) NonPolymers() []*Residue { return s.nonPolymers }

//BranchResidues returns the branched-entity residues.
func (s *Structure) BranchResidues() []*Residue { return s.branch }

//GetAtomByID returns the atom with the given record id. A miss is a
//NotFound error.
func (s *Structure) GetAtomByID(id string) (Atom, error) {
	i, ok := s.idIndex[id]
	if !ok {
		return Atom{}, notFoundError("mmcif: no atom with id %q", id)
	}
	return s.atoms[i], nil
}

//GetAtomByLabel returns the atom matching the full label identity. The
//alt id only has to match when the atom carries one.
func (s *Structure) GetAtomByLabel(atomID, asymID, compID string, seqID int, altID string) (Atom, error) {
	for _, a := range s.atoms {
		if a.LabelAtomID() == atomID &&
			a.LabelAsymID() == asymID &&
			a.LabelCompID() == compID &&
			a.LabelSeqID() == seqID &&
			(altID == "" || a.LabelAltID() == "" || a.LabelAltID() == altID) {
			return a, nil
		}
	}
	return Atom{}, notFoundError("mmcif: no atom %s in %s %s %d", atomID, compID, asymID, seqID)
}

//GetAtomByPosition returns the atom closest to p within tolerance.
func (s *Structure) GetAtomByPosition(p geom.Point, tolerance float64) (Atom, error) {
	best := -1
	bestD := tolerance
	for i, a := range s.atoms {
		if d := geom.Distance(a.Location(), p); d <= bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return Atom{}, notFoundError("mmcif: no atom within %g of %v", tolerance, p)
	}
	return s.atoms[best], nil
}

//GetAtomByPositionAndType is GetAtomByPosition restricted to atoms with
//the given label atom id and comp id.
func (s *Structure) GetAtomByPositionAndType(p geom.Point, tolerance float64, atomID, compID string) (Atom, error) {
	best := -1
	bestD := tolerance
	for i, a := range s.atoms {
		if a.LabelAtomID() != atomID || a.LabelCompID() != compID {
			continue
		}
		if d := geom.Distance(a.Location(), p); d <= bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return Atom{}, notFoundError("mmcif: no %s/%s atom within %g of %v", compID, atomID, tolerance, p)
	}
	return s.atoms[best], nil
}

//GetResidue returns the residue with the given label identity, polymer
//or not.
func (s *Structure) GetResidue(asymID, compID string, seqID int) (*Residue, error) {
	for _, p := range s.polymers {
		if p.asymID != asymID {
			continue
		}
		for _, m := range p.monomers {
			if m.seqID == seqID && m.compID == compID {
				return &m.Residue, nil
			}
		}
	}
	for _, lists := range [][]*Residue{s.nonPolymers, s.branch} {
		for _, r := range lists {
			if r.asymID == asymID && r.compID == compID && r.seqID == seqID {
				return r, nil
			}
		}
	}
	return nil, notFoundError("mmcif: no residue %s %s %d", compID, asymID, seqID)
}

//GetResiduesByAsym returns every residue of the given asym id.
func (s *Structure) GetResiduesByAsym(asymID string) []*Residue {
	var result []*Residue
	for _, p := range s.polymers {
		if p.asymID != asymID {
			continue
		}
		for _, m := range p.monomers {
			result = append(result, &m.Residue)
		}
	}
	for _, lists := range [][]*Residue{s.nonPolymers, s.branch} {
		for _, r := range lists {
			if r.asymID == asymID {
				result = append(result, r)
			}
		}
	}
	return result
}

//GetResidueForAtom returns the residue the atom belongs to.
func (s *Structure) GetResidueForAtom(a Atom) (*Residue, error) {
	for _, p := range s.polymers {
		for _, m := range p.monomers {
			if m.contains(a) {
				return &m.Residue, nil
			}
		}
	}
	for _, lists := range [][]*Residue{s.nonPolymers, s.branch} {
		for _, r := range lists {
			if r.contains(a) {
				return r, nil
			}
		}
	}
	return nil, notFoundError("mmcif: atom %s belongs to no residue", a.ID())
}

//mapScheme looks a row up in the polymer scheme first and in the
//non-polymer scheme second, per the given predicates.
func (s *Structure) mapScheme(polyPred, nonpolyPred cif.Predicate) *cif.Row {
	if s.db.Has("pdbx_poly_seq_scheme") {
		if r := s.db.Get("pdbx_poly_seq_scheme").First(polyPred); r != nil {
			return r
		}
	}
	if s.db.Has("pdbx_nonpoly_scheme") {
		if r := s.db.Get("pdbx_nonpoly_scheme").First(nonpolyPred); r != nil {
			return r
		}
	}
	return nil
}

//MapLabelToAuth maps a label (asym id, seq id) to the auth (asym id,
//seq id) pair. A miss is a NotFound error, never a default.
func (s *Structure) MapLabelToAuth(asymID string, seqID int) (string, string, error) {
	r := s.mapScheme(
		cif.And(cif.Eq("asym_id", asymID), cif.EqInt("seq_id", seqID)),
		cif.And(cif.Eq("asym_id", asymID), cif.EqInt("ndb_seq_num", seqID)),
	)
	if r == nil {
		return "", "", notFoundError("mmcif: no auth mapping for %s %d", asymID, seqID)
	}
	return r.Str("pdb_strand_id"), r.Str("pdb_seq_num"), nil
}

//MapAuthToLabel maps an auth (asym id, seq id, ins code) triple to the
//label (asym id, seq id) pair.
func (s *Structure) MapAuthToLabel(authAsymID, authSeqID, insCode string) (string, int, error) {
	polyPred := cif.And(cif.Eq("pdb_strand_id", authAsymID), cif.Eq("pdb_seq_num", authSeqID))
	nonpolyPred := polyPred
	if insCode != "" {
		polyPred = cif.And(polyPred, cif.Eq("pdb_ins_code", insCode))
		nonpolyPred = polyPred
	}

	r := s.mapScheme(polyPred, nonpolyPred)
	if r == nil {
		return "", 0, notFoundError("mmcif: no label mapping for %s %s", authAsymID, authSeqID)
	}

	seqID, err := r.Int("seq_id")
	if err != nil {
		//non-polymer rows carry no meaningful label seq id
		seqID = 0
	}
	return r.Str("asym_id"), seqID, nil
}

//MapLabelToPDB maps a label (asym id, seq id, comp id) triple to its
//published PDB identity: strand, seq number, comp id and insertion
//code.
func (s *Structure) MapLabelToPDB(asymID string, seqID int, compID string) (string, int, string, string, error) {
	r := s.mapScheme(
		cif.And(cif.Eq("asym_id", asymID), cif.EqInt("seq_id", seqID), cif.Eq("mon_id", compID)),
		cif.And(cif.Eq("asym_id", asymID), cif.EqInt("ndb_seq_num", seqID), cif.Eq("mon_id", compID)),
	)
	if r == nil {
		return "", 0, "", "", notFoundError("mmcif: no PDB mapping for %s %d %s", asymID, seqID, compID)
	}

	seqNum, err := r.Int("pdb_seq_num")
	if err != nil {
		return "", 0, "", "", errDecorate(err, "MapLabelToPDB")
	}
	return r.Str("pdb_strand_id"), seqNum, r.Str("pdb_mon_id"), r.Str("pdb_ins_code"), nil
}

//MapPDBToLabel maps a published PDB identity back to label space.
func (s *Structure) MapPDBToLabel(strandID string, seqNum int, compID, insCode string) (string, int, string, error) {
	pred := cif.And(
		cif.Eq("pdb_strand_id", strandID),
		cif.EqInt("pdb_seq_num", seqNum),
		cif.Eq("pdb_mon_id", compID),
	)
	if insCode != "" {
		pred = cif.And(pred, cif.Eq("pdb_ins_code", insCode))
	}

	r := s.mapScheme(pred, pred)
	if r == nil {
		return "", 0, "", notFoundError("mmcif: no label mapping for %s %d %s", strandID, seqNum, compID)
	}

	seqID, err := r.Int("seq_id")
	if err != nil {
		seqID = 0
	}
	return r.Str("asym_id"), seqID, r.Str("mon_id"), nil
}

// --------------------------------------------------------------------
// actions

//RemoveAtom removes the atom from the structure and from the backing
//record store.
func (s *Structure) RemoveAtom(a Atom) {
	s.db.Get("atom_site").Delete(cif.Eq("id", a.ID()))

	for i := range s.atoms {
		if s.atoms[i].Equals(a) {
			s.atoms = append(s.atoms[:i], s.atoms[i+1:]...)
			break
		}
	}
	s.rebuildIndex()
}

//RemoveResidue removes a residue and all its atoms.
func (s *Structure) RemoveResidue(r *Residue) {
	for _, a := range r.atoms {
		s.db.Get("atom_site").Delete(cif.Eq("id", a.ID()))
	}

	kept := s.atoms[:0]
	for _, a := range s.atoms {
		if !r.contains(a) {
			kept = append(kept, a)
		}
	}
	s.atoms = kept

	for i, nr := range s.nonPolymers {
		if nr == r {
			s.nonPolymers = append(s.nonPolymers[:i], s.nonPolymers[i+1:]...)
			break
		}
	}
	s.rebuildIndex()
}

//SwapAtoms exchanges the label identities of two atoms, including the
//auth atom ids. Their locations stay put: this is the operation used to
//repair nomenclature, not geometry.
func (s *Structure) SwapAtoms(a1, a2 Atom) error {
	l1, l2 := a1.LabelAtomID(), a2.LabelAtomID()
	if err := a1.SetProperty("label_atom_id", l2); err != nil {
		return errDecorate(err, "SwapAtoms")
	}
	if err := a2.SetProperty("label_atom_id", l1); err != nil {
		return errDecorate(err, "SwapAtoms")
	}

	p1, p2 := a1.Property("auth_atom_id"), a2.Property("auth_atom_id")
	if err := a1.SetProperty("auth_atom_id", p2); err != nil {
		return errDecorate(err, "SwapAtoms")
	}
	if err := a2.SetProperty("auth_atom_id", p1); err != nil {
		return errDecorate(err, "SwapAtoms")
	}
	return nil
}

//MoveAtom changes an atom's location, through the atom's own
//write-through path.
func (s *Structure) MoveAtom(a Atom, p geom.Point) error {
	return a.MoveTo(p)
}

//ChangeResidue renames a residue to a new compound and remaps atom
//names per the given (from, to) pairs.
func (s *Structure) ChangeResidue(r *Residue, newCompID string, remap map[string]string) error {
	for _, a := range r.atoms {
		if err := a.SetProperty("label_comp_id", newCompID); err != nil {
			return errDecorate(err, "ChangeResidue")
		}
		a.SetProperty("auth_comp_id", newCompID)
		if to, ok := remap[a.LabelAtomID()]; ok {
			if err := a.SetProperty("label_atom_id", to); err != nil {
				return errDecorate(err, "ChangeResidue")
			}
		}
	}
	r.compID = newCompID
	return nil
}

//SortAtoms orders the atoms by (asym id, residue, atom) and reassigns
//sequential ids from 1. Atom ids cached outside the structure are
//invalid afterwards.
func (s *Structure) SortAtoms() {
	sort.SliceStable(s.atoms, func(i, j int) bool {
		a, b := s.atoms[i], s.atoms[j]
		if a.LabelAsymID() != b.LabelAsymID() {
			return a.LabelAsymID() < b.LabelAsymID()
		}
		if a.LabelSeqID() != b.LabelSeqID() {
			return a.LabelSeqID() < b.LabelSeqID()
		}
		if a.AuthSeqID() != b.AuthSeqID() {
			return a.AuthSeqID() < b.AuthSeqID()
		}
		return a.LabelAtomID() < b.LabelAtomID()
	})

	for i, a := range s.atoms {
		a.SetProperty("id", fmt.Sprintf("%d", i+1))
	}
	s.rebuildIndex()
}

//Translate moves every atom by t.
func (s *Structure) Translate(t geom.Point) {
	for _, a := range s.atoms {
		a.MoveTo(a.Location().Add(t))
	}
}

//Rotate rotates every atom by q about the origin.
func (s *Structure) Rotate(q geom.Quaternion) {
	for _, a := range s.atoms {
		a.MoveTo(a.Location().Rotate(q))
	}
}

//TranslateAndRotate moves every atom by t and then rotates by q.
func (s *Structure) TranslateAndRotate(t geom.Point, q geom.Quaternion) {
	for _, a := range s.atoms {
		a.MoveTo(a.Location().Add(t).Rotate(q))
	}
}

//TranslateRotateAndTranslate applies the full transform used for
//symmetry copies to every atom.
func (s *Structure) TranslateRotateAndTranslate(t1 geom.Point, q geom.Quaternion, t2 geom.Point) {
	for _, a := range s.atoms {
		a.MoveTo(geom.TranslateRotateTranslate(a.Location(), t1, q, t2))
	}
}

//Clone returns a fully independent deep copy: its own datablock, its
//own atoms, its own partition. The copy is what you hand to a worker
//goroutine that will mutate positions; the shared storage of the
//original is not safe for that.
func (s *Structure) Clone() (*Structure, error) {
	return NewStructure(s.db.Clone(), s.modelNr, nil)
}
