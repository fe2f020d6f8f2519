/*
 * distmap.go, part of libcifpp.
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
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/MartinSalinas98/libcifpp/geom"
	"github.com/MartinSalinas98/libcifpp/symmetry"
)

//DistanceCutoff is the distance up to which the symmetry-aware map
//tracks pairs. Anything farther answers FarAway.
const DistanceCutoff = 5.0

//A DistanceMap answers minimum-distance queries over the atoms it was
//built on. It is immutable once built, so queries need no locking.
//Pairs the map does not track answer FarAway, which means "not close",
//not "exactly this far".
type DistanceMap struct {
	atoms []Atom
	index map[string]int
	dist  map[[2]int]float64
}

func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

//NewDistanceMap builds a plain Euclidean distance map over the given
//atoms, every pair stored.
func NewDistanceMap(atoms []Atom) *DistanceMap {
	dm := &DistanceMap{
		atoms: atoms,
		index: make(map[string]int, len(atoms)),
		dist:  make(map[[2]int]float64),
	}
	for i, a := range atoms {
		dm.index[a.ID()] = i
	}

	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			dm.dist[pairKey(i, j)] = geom.Distance(atoms[i].Location(), atoms[j].Location())
		}
	}
	return dm
}

//NewSymmetryDistanceMap builds the symmetry-aware distance map over all
//atoms of the structure. For each pair the distance is the minimum over
//every symmetry image of the second atom, including the 27 whole-cell
//lattice translations around the origin; only pairs below the cutoff
//are kept.
//
//The build runs on a fixed pool of workers, one per CPU. Workers pull
//atom rows off a shared counter; only map inserts take the lock, the
//distance arithmetic runs on private data. The progress callback, when
//not nil, is advisory: it is called from worker goroutines as rows
//complete.
func NewSymmetryDistanceMap(s *Structure, sg *symmetry.Spacegroup, cell *symmetry.Cell, progress func(done, total int)) *DistanceMap {
	atoms := s.Atoms()

	dm := &DistanceMap{
		atoms: atoms,
		index: make(map[string]int, len(atoms)),
		dist:  make(map[[2]int]float64),
	}

	locations := make([]geom.Point, len(atoms))
	for i, a := range atoms {
		dm.index[a.ID()] = i
		locations[i] = cell.ToCell(a.Location())
	}

	rtOrth := symmetry.AlternativeSites(sg, cell)

	var (
		next uint64
		done uint64
		m    sync.Mutex
		wg   sync.WaitGroup
	)

	n := runtime.NumCPU()
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddUint64(&next, 1)) - 1
				if i >= len(locations) {
					return
				}

				pi := locations[i]
				for j := i + 1; j < len(locations); j++ {
					minR2 := math.MaxFloat64
					for _, rt := range rtOrth {
						pj := rt.Apply(locations[j])
						if r2 := geom.DistanceSq(pi, pj); r2 < minR2 {
							minR2 = r2
						}
					}

					if minR2 < DistanceCutoff*DistanceCutoff {
						d := math.Sqrt(minR2)
						k := pairKey(i, j)
						m.Lock()
						dm.dist[k] = d
						m.Unlock()
					}
				}

				if progress != nil {
					progress(int(atomic.AddUint64(&done, 1)), len(locations))
				}
			}
		}()
	}
	wg.Wait()

	return dm
}

//Distance returns the tracked distance between a and b. An atom the map
//does not know is a NotFound error; a known but untracked pair answers
//FarAway.
func (dm *DistanceMap) Distance(a, b Atom) (float64, error) {
	ixa, ok := dm.index[a.ID()]
	if !ok {
		return 0, notFoundError("mmcif: atom %s not in distance map", a.ID())
	}
	ixb, ok := dm.index[b.ID()]
	if !ok {
		return 0, notFoundError("mmcif: atom %s not in distance map", b.ID())
	}
	if ixa == ixb {
		return 0, nil
	}

	d, ok := dm.dist[pairKey(ixa, ixb)]
	if !ok {
		return FarAway, nil
	}
	return d, nil
}

//Near returns every atom whose tracked distance to a is at most
//maxDistance, by linear scan over the map's atoms.
func (dm *DistanceMap) Near(a Atom, maxDistance float64) ([]Atom, error) {
	ixa, ok := dm.index[a.ID()]
	if !ok {
		return nil, notFoundError("mmcif: atom %s not in distance map", a.ID())
	}

	var result []Atom
	for i := range dm.atoms {
		if i == ixa {
			continue
		}
		if d, ok := dm.dist[pairKey(ixa, i)]; ok && d <= maxDistance {
			result = append(result, dm.atoms[i])
		}
	}
	return result, nil
}
