/*
 * align.go, part of libcifpp.
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

package geom

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

//largestDepressedQuarticSolution returns the largest real solution of the
//depressed quartic
//
//	x^4 + ax^2 + bx + c = 0
//
//using Ferrari's method. The intermediates are evaluated with complex
//arithmetic so that square roots of negative discriminants do not turn
//into NaNs halfway through.
func largestDepressedQuarticSolution(a, b, c float64) float64 {
	ac := complex(a, 0)
	bc := complex(b, 0)

	P := complex(-(a*a)/12-c, 0)
	Q := complex(-(a*a*a)/108+(a*c)/3-(b*b)/8, 0)
	R := -Q/2 + cmplx.Sqrt((Q*Q)/4+(P*P*P)/27)

	U := cmplx.Pow(R, 1.0/3.0)

	var y complex128
	if U == 0 {
		y = -5.0*ac/6.0 + U - cmplx.Pow(Q, 1.0/3.0)
	} else {
		y = -5.0*ac/6.0 + U - P/(3.0*U)
	}

	W := cmplx.Sqrt(ac + 2.0*y)

	//result = (±W + sqrt(-(3a + 2y ± 2b/W))) / 2; we want the largest.
	t := []float64{
		real((W + cmplx.Sqrt(-(3.0*ac + 2.0*y + 2.0*bc/W))) / 2.0),
		real((W + cmplx.Sqrt(-(3.0*ac + 2.0*y - 2.0*bc/W))) / 2.0),
		real((-W + cmplx.Sqrt(-(3.0*ac + 2.0*y + 2.0*bc/W))) / 2.0),
		real((-W + cmplx.Sqrt(-(3.0*ac + 2.0*y - 2.0*bc/W))) / 2.0),
	}

	result := t[0]
	for _, v := range t[1:] {
		if v > result {
			result = v
		}
	}
	return result
}

//cofactors returns the matrix of cofactors of the 4x4 matrix m.
func cofactors(m *mat.Dense) *mat.Dense {
	cf := mat.NewDense(4, 4, nil)

	ixs := [4][3]int{
		{1, 2, 3},
		{0, 2, 3},
		{0, 1, 3},
		{0, 1, 2},
	}

	for x := 0; x < 4; x++ {
		ix := ixs[x]
		for y := 0; y < 4; y++ {
			iy := ixs[y]

			v := m.At(ix[0], iy[0])*m.At(ix[1], iy[1])*m.At(ix[2], iy[2]) +
				m.At(ix[0], iy[1])*m.At(ix[1], iy[2])*m.At(ix[2], iy[0]) +
				m.At(ix[0], iy[2])*m.At(ix[1], iy[0])*m.At(ix[2], iy[1]) -
				m.At(ix[0], iy[2])*m.At(ix[1], iy[1])*m.At(ix[2], iy[0]) -
				m.At(ix[0], iy[1])*m.At(ix[1], iy[0])*m.At(ix[2], iy[2]) -
				m.At(ix[0], iy[0])*m.At(ix[1], iy[2])*m.At(ix[2], iy[1])

			if (x+y)%2 == 1 {
				v = -v
			}
			cf.Set(x, y, v)
		}
	}

	return cf
}

//AlignPoints returns the quaternion that optimally (in the least squares
//sense) rotates the point set pa onto the point set pb. The sets must be
//centered on the origin beforehand (see CenterPoints) and ordered so that
//pa[i] corresponds to pb[i].
//
//This is the quaternion form of the superposition problem. Rather than
//calling a general eigensolver, the largest eigenvalue of the 4x4 key
//matrix is obtained from the closed form solution of its characteristic
//quartic, and the eigenvector is then extracted from the cofactor matrix,
//picking the cofactor row with the greatest first-column magnitude for
//numerical stability. For point sets that are already aligned the result
//is the identity rotation, within floating tolerance.
func AlignPoints(pa, pb []Point) (Quaternion, error) {
	if len(pa) != len(pb) {
		return IdentityQuaternion(), Error{string(ErrMismatchedLengths), []string{"AlignPoints"}, true}
	}
	if len(pa) < 3 {
		return IdentityQuaternion(), Error{string(ErrNotEnoughPoints), []string{"AlignPoints"}, true}
	}

	//M contains the sums of products of the coordinates of A and B.
	M := mat.NewDense(3, 3, nil)
	for i := range pa {
		a := pa[i]
		b := pb[i]

		M.Set(0, 0, M.At(0, 0)+a.X*b.X)
		M.Set(0, 1, M.At(0, 1)+a.X*b.Y)
		M.Set(0, 2, M.At(0, 2)+a.X*b.Z)
		M.Set(1, 0, M.At(1, 0)+a.Y*b.X)
		M.Set(1, 1, M.At(1, 1)+a.Y*b.Y)
		M.Set(1, 2, M.At(1, 2)+a.Y*b.Z)
		M.Set(2, 0, M.At(2, 0)+a.Z*b.X)
		M.Set(2, 1, M.At(2, 1)+a.Z*b.Y)
		M.Set(2, 2, M.At(2, 2)+a.Z*b.Z)
	}

	//N is the symmetric 4x4 key matrix built from M.
	N := mat.NewSymDense(4, nil)

	N.SetSym(0, 0, M.At(0, 0)+M.At(1, 1)+M.At(2, 2))
	N.SetSym(0, 1, M.At(1, 2)-M.At(2, 1))
	N.SetSym(0, 2, M.At(2, 0)-M.At(0, 2))
	N.SetSym(0, 3, M.At(0, 1)-M.At(1, 0))

	N.SetSym(1, 1, M.At(0, 0)-M.At(1, 1)-M.At(2, 2))
	N.SetSym(1, 2, M.At(0, 1)+M.At(1, 0))
	N.SetSym(1, 3, M.At(0, 2)+M.At(2, 0))

	N.SetSym(2, 2, -M.At(0, 0)+M.At(1, 1)-M.At(2, 2))
	N.SetSym(2, 3, M.At(1, 2)+M.At(2, 1))

	N.SetSym(3, 3, -M.At(0, 0)-M.At(1, 1)+M.At(2, 2))

	//det(N - λI) = 0 expands to λ^4 + Cλ^2 + Dλ + E = 0, a depressed
	//quartic (the λ^3 coefficient vanishes because trace(N) == 0).
	C := -2 * (M.At(0, 0)*M.At(0, 0) + M.At(0, 1)*M.At(0, 1) + M.At(0, 2)*M.At(0, 2) +
		M.At(1, 0)*M.At(1, 0) + M.At(1, 1)*M.At(1, 1) + M.At(1, 2)*M.At(1, 2) +
		M.At(2, 0)*M.At(2, 0) + M.At(2, 1)*M.At(2, 1) + M.At(2, 2)*M.At(2, 2))

	D := 8*(M.At(0, 0)*M.At(1, 2)*M.At(2, 1)+
		M.At(1, 1)*M.At(2, 0)*M.At(0, 2)+
		M.At(2, 2)*M.At(0, 1)*M.At(1, 0)) -
		8*(M.At(0, 0)*M.At(1, 1)*M.At(2, 2)+
			M.At(1, 2)*M.At(2, 0)*M.At(0, 1)+
			M.At(2, 1)*M.At(1, 0)*M.At(0, 2))

	//E is the determinant of N.
	E := (N.At(0, 0)*N.At(1, 1)-N.At(0, 1)*N.At(0, 1))*(N.At(2, 2)*N.At(3, 3)-N.At(2, 3)*N.At(2, 3)) +
		(N.At(0, 1)*N.At(0, 2)-N.At(0, 0)*N.At(2, 1))*(N.At(2, 1)*N.At(3, 3)-N.At(2, 3)*N.At(1, 3)) +
		(N.At(0, 0)*N.At(1, 3)-N.At(0, 1)*N.At(0, 3))*(N.At(2, 1)*N.At(2, 3)-N.At(2, 2)*N.At(1, 3)) +
		(N.At(0, 1)*N.At(2, 1)-N.At(1, 1)*N.At(0, 2))*(N.At(0, 2)*N.At(3, 3)-N.At(2, 3)*N.At(0, 3)) +
		(N.At(1, 1)*N.At(0, 3)-N.At(0, 1)*N.At(1, 3))*(N.At(0, 2)*N.At(2, 3)-N.At(2, 2)*N.At(0, 3)) +
		(N.At(0, 2)*N.At(1, 3)-N.At(2, 1)*N.At(0, 3))*(N.At(0, 2)*N.At(1, 3)-N.At(2, 1)*N.At(0, 3))

	lambda := largestDepressedQuarticSolution(C, D, E)

	//t = N - λI
	t := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v := N.At(i, j)
			if i == j {
				v -= lambda
			}
			t.Set(i, j, v)
		}
	}

	//The eigenvector for λ lives in the cofactor matrix of t; any nonzero
	//row works, take the one with the largest leading magnitude.
	cf := cofactors(t)

	maxR := 0
	for r := 1; r < 4; r++ {
		if math.Abs(cf.At(r, 0)) > math.Abs(cf.At(maxR, 0)) {
			maxR = r
		}
	}

	q := NewQuaternion(cf.At(maxR, 0), cf.At(maxR, 1), cf.At(maxR, 2), cf.At(maxR, 3))
	return q, nil
}
