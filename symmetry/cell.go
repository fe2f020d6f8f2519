/*
 * cell.go, part of libcifpp.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/MartinSalinas98/libcifpp/geom"
)

//A Cell is a crystallographic unit cell: edge lengths in Ångström,
//angles in degrees, and the derived orthogonalization and
//fractionalization matrices. Construct cells with NewCell so the
//matrices are always consistent with the parameters.
type Cell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64

	orth *mat.Dense
	frac *mat.Dense
}

//NewCell returns the unit cell for the given parameters. Degenerate
//parameters (a non-positive edge or a collapsed volume) are rejected.
func NewCell(a, b, c, alpha, beta, gamma float64) (*Cell, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, Error{fmt.Sprintf("symmetry: invalid cell edges %g %g %g", a, b, c), false}
	}

	ca := math.Cos(geom.Deg2Rad(alpha))
	cb := math.Cos(geom.Deg2Rad(beta))
	cg := math.Cos(geom.Deg2Rad(gamma))
	sg := math.Sin(geom.Deg2Rad(gamma))

	//volume per unit abc
	v := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if v <= 0 || sg == 0 {
		return nil, Error{fmt.Sprintf("symmetry: degenerate cell angles %g %g %g", alpha, beta, gamma), false}
	}
	v = math.Sqrt(v)

	orth := mat.NewDense(3, 3, []float64{
		a, b * cg, c * cb,
		0, b * sg, c * (ca - cb*cg) / sg,
		0, 0, c * v / sg,
	})

	frac := mat.NewDense(3, 3, nil)
	if err := frac.Inverse(orth); err != nil {
		return nil, Error{fmt.Sprintf("symmetry: cell not invertible: %v", err), false}
	}

	return &Cell{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma, orth: orth, frac: frac}, nil
}

//Volume returns the cell volume in Å³.
func (c *Cell) Volume() float64 {
	return c.orth.At(0, 0) * c.orth.At(1, 1) * c.orth.At(2, 2)
}

//Orth returns a copy of the 3x3 orthogonalization matrix, taking
//fractional to Cartesian coordinates.
func (c *Cell) Orth() *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	m.Copy(c.orth)
	return m
}

//Frac returns a copy of the 3x3 fractionalization matrix, the inverse
//of Orth.
func (c *Cell) Frac() *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	m.Copy(c.frac)
	return m
}

func apply(m *mat.Dense, p geom.Point) geom.Point {
	return geom.Point{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2)*p.Z,
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2)*p.Z,
		Z: m.At(2, 0)*p.X + m.At(2, 1)*p.Y + m.At(2, 2)*p.Z,
	}
}

//Orthogonalize converts a fractional-space point to Cartesian.
func (c *Cell) Orthogonalize(p geom.Point) geom.Point {
	return apply(c.orth, p)
}

//Fractionalize converts a Cartesian point to fractional space.
func (c *Cell) Fractionalize(p geom.Point) geom.Point {
	return apply(c.frac, p)
}

//ToCell wraps a Cartesian point into the unit cell: its fractional
//coordinates are shifted into [0,1) and the result is orthogonalized
//again.
func (c *Cell) ToCell(p geom.Point) geom.Point {
	f := c.Fractionalize(p)
	f.X -= math.Floor(f.X)
	f.Y -= math.Floor(f.Y)
	f.Z -= math.Floor(f.Z)
	return c.Orthogonalize(f)
}

//An RTorth is a rotation plus translation acting directly on Cartesian
//coordinates, derived from a fractional-space symmetry operation and a
//cell.
type RTorth struct {
	Rot *mat.Dense
	Trn geom.Point
}

//Apply transforms the Cartesian point p.
func (rt RTorth) Apply(p geom.Point) geom.Point {
	return apply(rt.Rot, p).Add(rt.Trn)
}

//IsIdentity reports whether the transform leaves points unchanged,
//within the given tolerance.
func (rt RTorth) IsIdentity(tolerance float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(rt.Rot.At(i, j)-want) > tolerance {
				return false
			}
		}
	}
	return rt.Trn.Norm() <= tolerance
}

//Orthogonal converts the fractional operation to Cartesian space for
//this cell: rotation Orth·R·Frac, translation Orth·(t+offset) with
//offset a whole-cell lattice shift.
func (c *Cell) Orthogonal(s Symop, u, v, w int) RTorth {
	r := mat.NewDense(3, 3, []float64{
		s.Rot[0][0], s.Rot[0][1], s.Rot[0][2],
		s.Rot[1][0], s.Rot[1][1], s.Rot[1][2],
		s.Rot[2][0], s.Rot[2][1], s.Rot[2][2],
	})

	rot := mat.NewDense(3, 3, nil)
	rot.Product(c.orth, r, c.frac)

	trn := c.Orthogonalize(geom.Point{
		X: s.Trn[0] + float64(u),
		Y: s.Trn[1] + float64(v),
		Z: s.Trn[2] + float64(w),
	})

	return RTorth{Rot: rot, Trn: trn}
}

//AlternativeSites returns the Cartesian transforms for every symmetry
//operation of the spacegroup combined with each of the 27 whole-cell
//lattice translations in (-1,0,1)³. Feeding a location through all of
//them yields every image that can come within one cell of the original.
func AlternativeSites(sg *Spacegroup, cell *Cell) []RTorth {
	result := make([]RTorth, 0, len(sg.Symops)*27)
	for _, s := range sg.Symops {
		for u := -1; u <= 1; u++ {
			for v := -1; v <= 1; v++ {
				for w := -1; w <= 1; w++ {
					result = append(result, cell.Orthogonal(s, u, v, w))
				}
			}
		}
	}
	return result
}
