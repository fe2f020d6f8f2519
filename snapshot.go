/*
 * snapshot.go, part of libcifpp.
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
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/MartinSalinas98/libcifpp/geom"
)

//A Snapshot is the serializable state of a structure's atoms: identity
//plus location, enough to hand positions to another process and take
//them back. It is not a structure file format.
type Snapshot struct {
	Name    string         `json:"name"`
	ModelNr int            `json:"model_nr"`
	Atoms   []SnapshotAtom `json:"atoms"`
}

//A SnapshotAtom is one atom in a snapshot.
type SnapshotAtom struct {
	ID       string     `json:"id"`
	AtomID   string     `json:"atom_id"`
	CompID   string     `json:"comp_id"`
	AsymID   string     `json:"asym_id"`
	SeqID    int        `json:"seq_id,omitempty"`
	Location geom.Point `json:"location"`
}

//TakeSnapshot captures the current atom identities and locations of
//the structure.
func TakeSnapshot(s *Structure) *Snapshot {
	snap := &Snapshot{
		Name:    s.Datablock().Name(),
		ModelNr: s.ModelNr(),
		Atoms:   make([]SnapshotAtom, 0, len(s.Atoms())),
	}
	for _, a := range s.Atoms() {
		snap.Atoms = append(snap.Atoms, SnapshotAtom{
			ID:       a.ID(),
			AtomID:   a.LabelAtomID(),
			CompID:   a.LabelCompID(),
			AsymID:   a.LabelAsymID(),
			SeqID:    a.LabelSeqID(),
			Location: a.Location(),
		})
	}
	return snap
}

//Write serializes the snapshot as zstd-compressed JSON.
func (snap *Snapshot) Write(w io.Writer) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return errDecorate(err, "Snapshot.Write")
	}
	if err := json.NewEncoder(zw).Encode(snap); err != nil {
		zw.Close()
		return errDecorate(err, "Snapshot.Write")
	}
	return zw.Close()
}

//ReadSnapshot reads a snapshot written by Write.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, errDecorate(err, "ReadSnapshot")
	}
	defer zr.Close()

	var snap Snapshot
	if err := json.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, errDecorate(err, "ReadSnapshot")
	}
	return &snap, nil
}

//Apply moves the structure's atoms to the locations in the snapshot,
//matching by atom id. Atoms the snapshot does not mention stay put;
//snapshot entries for atoms the structure no longer has are a NotFound
//error.
func (snap *Snapshot) Apply(s *Structure) error {
	for _, sa := range snap.Atoms {
		a, err := s.GetAtomByID(sa.ID)
		if err != nil {
			return errDecorate(err, "Snapshot.Apply")
		}
		if err := a.MoveTo(sa.Location); err != nil {
			return errDecorate(err, "Snapshot.Apply")
		}
	}
	return nil
}
