/*
 * symmetry_test.go, part of libcifpp.
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

package symmetry

import (
	"math"
	"testing"

	"github.com/MartinSalinas98/libcifpp/geom"
)

func TestSpacegroupLookup(Te *testing.T) {
	sg, err := GetSpacegroupByNumber(19)
	if err != nil {
		Te.Error(err)
	}
	if sg.Name != "P 21 21 21" || len(sg.Symops) != 4 {
		Te.Errorf("got %q with %d symops", sg.Name, len(sg.Symops))
	}
	if !sg.Symops[0].IsIdentity() {
		Te.Error("first symop is not the identity")
	}

	//spacing in the symbol does not matter
	for _, name := range []string{"P 21 21 21", "P212121", "p 21 21 21"} {
		byName, err := GetSpacegroupByName(name)
		if err != nil {
			Te.Error(err)
			continue
		}
		if byName.Number != 19 {
			Te.Errorf("%q resolved to number %d", name, byName.Number)
		}
	}

	_, err = GetSpacegroupByNumber(999)
	if err == nil {
		Te.Error("unknown number did not return an error")
	}
	var serr Error
	if serr, _ = err.(Error); !serr.NotFound() {
		Te.Error("unknown number error is not NotFound")
	}
	if _, err = GetSpacegroupByName("X 1"); err == nil {
		Te.Error("unknown name did not return an error")
	}
}

//TestSymopClosure applies every P212121 operation twice with wrapping;
//a 21 screw applied twice is a whole-cell translation, so every doubled
//operation must land back on the original fractional position.
func TestSymopClosure(Te *testing.T) {
	sg, err := GetSpacegroupByNumber(19)
	if err != nil {
		Te.Fatal(err)
	}

	p := geom.Point{X: 0.1, Y: 0.2, Z: 0.3}
	for i, s := range sg.Symops {
		q := s.Apply(s.Apply(p))
		q.X -= math.Floor(q.X)
		q.Y -= math.Floor(q.Y)
		q.Z -= math.Floor(q.Z)
		if geom.Distance(p, q) > 1e-9 {
			Te.Errorf("symop %d applied twice: got %v, want %v", i, q, p)
		}
	}
}

func TestCellOrthogonal(Te *testing.T) {
	//an orthorhombic cell: orthogonalization is a plain scaling
	c, err := NewCell(10, 20, 30, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}

	o := c.Orthogonalize(geom.Point{X: 0.5, Y: 0.5, Z: 0.5})
	if geom.Distance(o, geom.Point{X: 5, Y: 10, Z: 15}) > 1e-9 {
		Te.Errorf("orthogonalize: got %v", o)
	}

	f := c.Fractionalize(o)
	if geom.Distance(f, geom.Point{X: 0.5, Y: 0.5, Z: 0.5}) > 1e-9 {
		Te.Errorf("fractionalize round trip: got %v", f)
	}

	if math.Abs(c.Volume()-6000) > 1e-6 {
		Te.Errorf("volume: got %v, want 6000", c.Volume())
	}
}

func TestCellTriclinic(Te *testing.T) {
	c, err := NewCell(23.4, 31.8, 42.1, 83.2, 97.5, 105.1)
	if err != nil {
		Te.Fatal(err)
	}

	//round trip through fractional space
	p := geom.Point{X: 7.3, Y: -2.8, Z: 15.1}
	r := c.Orthogonalize(c.Fractionalize(p))
	if geom.Distance(p, r) > 1e-9 {
		Te.Errorf("round trip: got %v, want %v", r, p)
	}

	//ToCell wraps into the cell: fractional coordinates in [0,1)
	f := c.Fractionalize(c.ToCell(p))
	for _, v := range []float64{f.X, f.Y, f.Z} {
		if v < 0 || v >= 1 {
			Te.Errorf("ToCell left fractional coordinate %v outside [0,1)", v)
		}
	}
}

func TestCellDegenerate(Te *testing.T) {
	if _, err := NewCell(0, 10, 10, 90, 90, 90); err == nil {
		Te.Error("zero edge accepted")
	}
	if _, err := NewCell(10, 10, 10, 90, 90, 180); err == nil {
		Te.Error("collapsed angle accepted")
	}
}

//TestAlternativeSites checks the P1 identity image and the lattice
//translations: 27 transforms, one of them the identity, and the image
//of a point under the +a shift lies one cell away.
func TestAlternativeSites(Te *testing.T) {
	sg, err := GetSpacegroupByNumber(1)
	if err != nil {
		Te.Fatal(err)
	}
	cell, err := NewCell(10, 10, 10, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}

	rts := AlternativeSites(sg, cell)
	if len(rts) != 27 {
		Te.Fatalf("got %d transforms, want 27", len(rts))
	}

	nIdentity := 0
	for _, rt := range rts {
		if rt.IsIdentity(1e-9) {
			nIdentity++
		}
	}
	if nIdentity != 1 {
		Te.Errorf("got %d identity transforms, want 1", nIdentity)
	}

	//one of the images of (1,0,0) must be (11,0,0), the +a neighbour
	p := geom.Point{X: 1, Y: 0, Z: 0}
	found := false
	for _, rt := range rts {
		if geom.Distance(rt.Apply(p), geom.Point{X: 11, Y: 0, Z: 0}) < 1e-9 {
			found = true
		}
	}
	if !found {
		Te.Error("+a lattice image missing")
	}
}

//TestAlternativeSitesScrew checks a 21 screw image in Cartesian space.
func TestAlternativeSitesScrew(Te *testing.T) {
	sg, err := GetSpacegroupByName("P 1 21 1")
	if err != nil {
		Te.Fatal(err)
	}
	cell, err := NewCell(10, 10, 10, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}

	//the screw takes (x,y,z) to (-x, y+b/2, -z)
	rt := cell.Orthogonal(sg.Symops[1], 0, 0, 0)
	got := rt.Apply(geom.Point{X: 1, Y: 2, Z: 3})
	if geom.Distance(got, geom.Point{X: -1, Y: 7, Z: -3}) > 1e-9 {
		Te.Errorf("screw image: got %v, want (-1,7,-3)", got)
	}
}
