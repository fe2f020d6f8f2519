/*
 * atomtype_test.go, part of libcifpp.
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
	"testing"
)

func TestAtomTypeTraits(Te *testing.T) {
	for _, symbol := range []string{"Fe", "FE", "fe"} {
		inf, err := AtomTypeTraits(symbol)
		if err != nil {
			Te.Fatalf("lookup of %q failed: %v", symbol, err)
		}
		if inf.Type != Fe || !inf.Metal {
			Te.Errorf("%q should resolve to metallic iron", symbol)
		}
	}

	if _, err := AtomTypeTraits("Xx"); !IsNotFound(err) {
		Te.Errorf("unknown symbol should be NotFound, got %v", err)
	}

	inf, err := AtomTypeTraitsForType(C)
	if err != nil || inf.Symbol != "C" {
		Te.Errorf("type lookup for carbon failed: %v", err)
	}
}

func TestRadiusFallback(Te *testing.T) {
	c, err := AtomTypeTraits("C")
	if err != nil {
		Te.Fatal(err)
	}
	if r := c.Radius(RadiusCovalent); math.Abs(r-0.76) > 0.05 {
		Te.Errorf("carbon covalent radius expected ~0.76, got %v", r)
	}
	if r := c.Radius(RadiusVanderWaals); r <= c.Radius(RadiusCovalent) {
		Te.Errorf("carbon vdW radius should exceed the covalent one, got %v", r)
	}

	//a kind the table does not carry falls back to covalent
	k, _ := AtomTypeTraits("K")
	if r := k.Radius(RadiusTripleBond); r != k.Radius(RadiusCovalent) {
		Te.Errorf("missing radius should fall back to covalent, got %v", r)
	}
}

func TestScatteringFactors(Te *testing.T) {
	c, _ := AtomTypeTraits("C")
	sf, err := c.ScatteringFactors(0)
	if err != nil {
		Te.Fatal(err)
	}
	//at s=0 the scattering factor equals the electron count
	sum := sf.C
	for _, a := range sf.A {
		sum += a
	}
	if math.Abs(sum-6) > 0.1 {
		Te.Errorf("carbon f(0) should be ~6 electrons, got %v", sum)
	}

	//an ion falls back to the neutral coefficients
	ion, err := c.ScatteringFactors(4)
	if err != nil || ion != sf {
		Te.Error("ionized lookup should answer the neutral coefficients")
	}

	fe, _ := AtomTypeTraits("Fe")
	if _, err = fe.ScatteringFactors(0); !IsNotFound(err) {
		Te.Errorf("element outside the table should be NotFound, got %v", err)
	}
}
