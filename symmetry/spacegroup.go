/*
 * spacegroup.go, part of libcifpp.
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

//Package symmetry holds the crystallographic machinery the data model
//needs: a static spacegroup/operator table and the unit cell with its
//orthogonalization and fractionalization transforms.
package symmetry

import (
	"fmt"
	"strings"

	"github.com/MartinSalinas98/libcifpp/geom"
)

//Error is the error type for the symmetry package.
type Error struct {
	message  string
	notFound bool
}

func (err Error) Error() string { return err.message }

//NotFound reports whether the error denotes a missing spacegroup rather
//than malformed input.
func (err Error) NotFound() bool { return err.notFound }

//A Symop is one symmetry operation of a spacegroup, expressed in
//fractional space as a 3x3 rotation part and a translation part.
type Symop struct {
	Rot [3][3]float64
	Trn [3]float64
}

//Apply transforms the fractional-space point p by the operation.
func (s Symop) Apply(p geom.Point) geom.Point {
	return geom.Point{
		X: s.Rot[0][0]*p.X + s.Rot[0][1]*p.Y + s.Rot[0][2]*p.Z + s.Trn[0],
		Y: s.Rot[1][0]*p.X + s.Rot[1][1]*p.Y + s.Rot[1][2]*p.Z + s.Trn[1],
		Z: s.Rot[2][0]*p.X + s.Rot[2][1]*p.Y + s.Rot[2][2]*p.Z + s.Trn[2],
	}
}

//IsIdentity reports whether the operation leaves every point unchanged.
func (s Symop) IsIdentity() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if s.Rot[i][j] != want {
				return false
			}
		}
		if s.Trn[i] != 0 {
			return false
		}
	}
	return true
}

//A Spacegroup is a crystallographic spacegroup: its International
//Tables number, its Hermann-Mauguin symbol and its ordered list of
//symmetry operations. The first operation is always the identity.
type Spacegroup struct {
	Number int
	Name   string
	Symops []Symop
}

//normalizeName reduces a Hermann-Mauguin symbol to a canonical form for
//lookup: spaces stripped, upper case. "P 21 21 21" and "P212121" name
//the same group.
func normalizeName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, " ", ""))
}

//GetSpacegroupByNumber returns the spacegroup with the given
//International Tables number.
func GetSpacegroupByNumber(nr int) (*Spacegroup, error) {
	for i := range spacegroups {
		if spacegroups[i].Number == nr {
			return &spacegroups[i], nil
		}
	}
	return nil, Error{fmt.Sprintf("symmetry: no spacegroup with number %d", nr), true}
}

//GetSpacegroupByName returns the spacegroup with the given
//Hermann-Mauguin symbol. Spacing within the symbol does not matter.
func GetSpacegroupByName(name string) (*Spacegroup, error) {
	n := normalizeName(name)
	for i := range spacegroups {
		if normalizeName(spacegroups[i].Name) == n {
			return &spacegroups[i], nil
		}
	}
	return nil, Error{fmt.Sprintf("symmetry: no spacegroup named %q", name), true}
}
