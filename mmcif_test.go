/*
 * mmcif_test.go, part of libcifpp.
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
	"strconv"
	"testing"

	"github.com/MartinSalinas98/libcifpp/cif"
)

//addAtomSite appends one atom_site row with the fields the model reads.
func addAtomSite(db *cif.Datablock, id int, name, comp, asym string, seq int, authSeq string, x, y, z float64, symbol string) {
	row := map[string]string{
		"id":                 strconv.Itoa(id),
		"label_atom_id":      name,
		"label_comp_id":      comp,
		"label_asym_id":      asym,
		"label_entity_id":    "1",
		"auth_asym_id":       asym,
		"auth_seq_id":        authSeq,
		"type_symbol":        symbol,
		"Cartn_x":            strconv.FormatFloat(x, 'f', 3, 64),
		"Cartn_y":            strconv.FormatFloat(y, 'f', 3, 64),
		"Cartn_z":            strconv.FormatFloat(z, 'f', 3, 64),
		"occupancy":          "1.00",
		"B_iso_or_equiv":     "20.00",
		"pdbx_PDB_model_num": "1",
	}
	if seq > 0 {
		row["label_seq_id"] = strconv.Itoa(seq)
	}
	db.Get("atom_site").Append(row)
}

func addPolySeq(db *cif.Datablock, asym, entity string, seq int, comp, strand string, pdbSeq int) {
	db.Get("pdbx_poly_seq_scheme").Append(map[string]string{
		"asym_id":       asym,
		"entity_id":     entity,
		"seq_id":        strconv.Itoa(seq),
		"mon_id":        comp,
		"pdb_strand_id": strand,
		"pdb_seq_num":   strconv.Itoa(pdbSeq),
		"pdb_mon_id":    comp,
		"pdb_ins_code":  ".",
	})
}

func addNonPoly(db *cif.Datablock, asym, comp, pdbSeq string) {
	db.Get("pdbx_nonpoly_scheme").Append(map[string]string{
		"asym_id":       asym,
		"mon_id":        comp,
		"pdb_seq_num":   pdbSeq,
		"pdb_strand_id": asym,
		"pdb_mon_id":    comp,
		"pdb_ins_code":  ".",
	})
}

//dipeptideBlock builds a two-residue ALA chain with a trans peptide
//bond plus one water. The geometry is exact: the Cα–Cα distance is
//3.801 Å and ω is 180.
func dipeptideBlock() *cif.Datablock {
	db := cif.NewDatablock("1TST")

	//residue 1
	addAtomSite(db, 1, "N", "ALA", "A", 1, "10", -0.45, 1.37, 0, "N")
	addAtomSite(db, 2, "CA", "ALA", "A", 1, "10", 0, 0, 0, "C")
	addAtomSite(db, 3, "C", "ALA", "A", 1, "10", 1.52, 0, 0, "C")
	addAtomSite(db, 4, "O", "ALA", "A", 1, "10", 2.1, -1.05, 0, "O")
	//residue 2, trans across the peptide bond
	addAtomSite(db, 5, "N", "ALA", "A", 2, "11", 2.103, 1.196, 0, "N")
	addAtomSite(db, 6, "CA", "ALA", "A", 2, "11", 3.554, 1.349, 0, "C")
	addAtomSite(db, 7, "C", "ALA", "A", 2, "11", 4.2, 2.7, 0, "C")
	addAtomSite(db, 8, "O", "ALA", "A", 2, "11", 5.4, 2.8, 0, "O")
	//a water, off to the side
	addAtomSite(db, 9, "O", "HOH", "B", 0, "101", 8, 8, 8, "O")

	addPolySeq(db, "A", "1", 1, "ALA", "A", 10)
	addPolySeq(db, "A", "1", 2, "ALA", "A", 11)
	addNonPoly(db, "B", "HOH", "101")

	return db
}

//cisDipeptideBlock is the same chain with residue 2 placed cis: Cα–Cα
//3.001 Å, ω = 0.
func cisDipeptideBlock() *cif.Datablock {
	db := cif.NewDatablock("1TSC")

	addAtomSite(db, 1, "N", "ALA", "A", 1, "10", -0.45, 1.37, 0, "N")
	addAtomSite(db, 2, "CA", "ALA", "A", 1, "10", 0, 0, 0, "C")
	addAtomSite(db, 3, "C", "ALA", "A", 1, "10", 1.52, 0, 0, "C")
	addAtomSite(db, 4, "O", "ALA", "A", 1, "10", 2.1, -1.05, 0, "O")
	addAtomSite(db, 5, "N", "ALA", "A", 2, "11", 2.103, 1.196, 0, "N")
	addAtomSite(db, 6, "CA", "ALA", "A", 2, "11", 1.574, 2.555, 0, "C")
	addAtomSite(db, 7, "C", "ALA", "A", 2, "11", 0.3, 3.3, 0, "C")
	addAtomSite(db, 8, "O", "ALA", "A", 2, "11", -0.8, 2.9, 0, "O")

	addPolySeq(db, "A", "1", 1, "ALA", "A", 10)
	addPolySeq(db, "A", "1", 2, "ALA", "A", 11)

	return db
}

//leucineBlock builds a single LEU residue whose branch atoms have a
//positive chiral volume.
func leucineBlock() *cif.Datablock {
	db := cif.NewDatablock("1LEU")

	addAtomSite(db, 1, "N", "LEU", "A", 1, "1", 3, 0, 1, "N")
	addAtomSite(db, 2, "CA", "LEU", "A", 1, "1", 2, 0, 1, "C")
	addAtomSite(db, 3, "CB", "LEU", "A", 1, "1", 1, 0, 0, "C")
	addAtomSite(db, 4, "CG", "LEU", "A", 1, "1", 0, 0, 0, "C")
	addAtomSite(db, 5, "CD1", "LEU", "A", 1, "1", 0, 1, 0, "C")
	addAtomSite(db, 6, "CD2", "LEU", "A", 1, "1", 0, 0, 1, "C")

	addPolySeq(db, "A", "1", 1, "LEU", "A", 1)

	return db
}

func mustStructure(Te *testing.T, db *cif.Datablock) *Structure {
	Te.Helper()
	s, err := NewStructure(db, 1, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return s
}
