/*
 * cif_test.go, part of libcifpp.
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

package cif

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testBlock() *Datablock {
	db := NewDatablock("TEST")
	as := db.Get("atom_site")
	as.Append(map[string]string{"id": "1", "label_atom_id": "N", "Cartn_x": "1.5"})
	as.Append(map[string]string{"id": "2", "label_atom_id": "CA", "Cartn_x": "2.5"})
	as.Append(map[string]string{"id": "3", "label_atom_id": "C", "Cartn_x": "?"})
	return db
}

func TestRowAccess(Te *testing.T) {
	db := testBlock()
	rows := db.Get("atom_site").Rows()

	if rows[0].Str("label_atom_id") != "N" {
		Te.Errorf("Str: got %q", rows[0].Str("label_atom_id"))
	}
	if id, err := rows[1].Int("id"); err != nil || id != 2 {
		Te.Errorf("Int: got %v, %v", id, err)
	}
	if x, err := rows[0].Float("Cartn_x"); err != nil || x != 1.5 {
		Te.Errorf("Float: got %v, %v", x, err)
	}

	//"?" and "." mean no value
	if rows[2].Has("Cartn_x") {
		Te.Error("Has on ? field")
	}
	if rows[2].Str("Cartn_x") != "" {
		Te.Errorf("Str on ? field: got %q", rows[2].Str("Cartn_x"))
	}
	if _, err := rows[2].Float("Cartn_x"); err == nil {
		Te.Error("Float on ? field did not error")
	}
	if _, err := rows[0].Int("label_atom_id"); err == nil {
		Te.Error("Int on non-numeric field did not error")
	}
}

func TestRowSet(Te *testing.T) {
	r := NewRow(nil)
	r.SetStr("label_atom_id", "OXT")
	r.SetInt("id", 42)
	r.SetFloat("Cartn_x", 3.14159, 3)

	if r.Str("label_atom_id") != "OXT" {
		Te.Error("SetStr round trip failed")
	}
	if v, _ := r.Int("id"); v != 42 {
		Te.Error("SetInt round trip failed")
	}
	if r.Str("Cartn_x") != "3.142" {
		Te.Errorf("SetFloat: got %q, want 3.142", r.Str("Cartn_x"))
	}
}

func TestFind(Te *testing.T) {
	db := testBlock()
	as := db.Get("atom_site")

	r := as.First(Eq("label_atom_id", "CA"))
	if r == nil || r.Str("id") != "2" {
		Te.Errorf("First: got %v", r)
	}
	if as.First(Eq("label_atom_id", "ZN")) != nil {
		Te.Error("First on absent value returned a row")
	}

	found := as.Find(func(r *Row) bool { return r.Has("Cartn_x") })
	if len(found) != 2 {
		Te.Errorf("Find: got %d rows, want 2", len(found))
	}

	r = as.First(And(EqInt("id", 3), Eq("label_atom_id", "C")))
	if r == nil {
		Te.Error("And predicate missed its row")
	}
}

func TestDelete(Te *testing.T) {
	db := testBlock()
	as := db.Get("atom_site")

	if n := as.Delete(Eq("label_atom_id", "CA")); n != 1 {
		Te.Errorf("Delete: removed %d, want 1", n)
	}
	if as.Len() != 2 {
		Te.Errorf("Len after delete: %d", as.Len())
	}

	//insertion order survives deletion
	var ids []string
	for _, r := range as.Rows() {
		ids = append(ids, r.Str("id"))
	}
	if diff := cmp.Diff([]string{"1", "3"}, ids); diff != "" {
		Te.Errorf("order after delete (-want +got):\n%s", diff)
	}

	row := as.Rows()[0]
	if !as.DeleteRow(row) {
		Te.Error("DeleteRow missed a present row")
	}
	if as.DeleteRow(row) {
		Te.Error("DeleteRow removed an absent row")
	}
}

func TestClone(Te *testing.T) {
	db := testBlock()
	cp := db.Clone()

	//mutating the copy leaves the original alone
	cp.Get("atom_site").Rows()[0].SetStr("label_atom_id", "MUTATED")
	cp.Get("atom_site").Append(map[string]string{"id": "4"})

	if db.Get("atom_site").Rows()[0].Str("label_atom_id") != "N" {
		Te.Error("clone mutation leaked into the original row")
	}
	if db.Get("atom_site").Len() != 3 {
		Te.Error("clone append leaked into the original category")
	}
}

func TestDatablock(Te *testing.T) {
	db := NewDatablock("X")
	if db.Has("cell") {
		Te.Error("Has on absent category")
	}
	c := db.Get("cell")
	if db.Has("cell") {
		Te.Error("Has on empty category")
	}
	c.Append(map[string]string{"length_a": "10"})
	if !db.Has("cell") {
		Te.Error("Has on populated category")
	}
	if db.Get("cell") != c {
		Te.Error("Get did not return the existing category")
	}
	if len(db.Categories()) != 1 {
		Te.Errorf("Categories: got %d", len(db.Categories()))
	}
}
