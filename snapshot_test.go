/*
 * snapshot_test.go, part of libcifpp.
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
	"bytes"
	"testing"

	"github.com/MartinSalinas98/libcifpp/geom"
)

func TestSnapshotRoundTrip(Te *testing.T) {
	s := mustStructure(Te, dipeptideBlock())

	snap := TakeSnapshot(s)
	if len(snap.Atoms) != len(s.Atoms()) {
		Te.Fatalf("snapshot should carry %d atoms, got %d", len(s.Atoms()), len(snap.Atoms))
	}

	var buf bytes.Buffer
	if err := snap.Write(&buf); err != nil {
		Te.Fatal(err)
	}
	back, err := ReadSnapshot(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if back.Name != snap.Name || back.ModelNr != snap.ModelNr {
		Te.Errorf("snapshot header changed in transit: %+v", back)
	}
	if len(back.Atoms) != len(snap.Atoms) {
		Te.Fatalf("atom count changed in transit: %d", len(back.Atoms))
	}
	for i := range snap.Atoms {
		if geom.Distance(back.Atoms[i].Location, snap.Atoms[i].Location) > 1e-6 {
			Te.Errorf("atom %d moved in transit", i)
		}
	}
}

func TestSnapshotApply(Te *testing.T) {
	s := mustStructure(Te, dipeptideBlock())
	snap := TakeSnapshot(s)

	//scramble the structure, then restore from the snapshot
	s.Translate(geom.Point{X: 100, Y: 0, Z: 0})
	if err := snap.Apply(s); err != nil {
		Te.Fatal(err)
	}
	a, _ := s.GetAtomByID("2")
	if geom.Distance(a.Location(), geom.Point{}) > 1e-6 {
		Te.Errorf("apply did not restore atom 2, it sits at %v", a.Location())
	}

	//a snapshot of a different structure does not apply
	s.RemoveAtom(a)
	if err := snap.Apply(s); !IsNotFound(err) {
		Te.Errorf("applying onto a structure missing an atom should be NotFound, got %v", err)
	}
}
