/*
 * point.go, part of libcifpp.
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

//Package geom provides the small geometric kernel used by the structural
//data model: 3D points, quaternion rotations, dihedral angles and the
//quaternion-based optimal superposition of point sets. The functions here
//are usable independently of the rest of the library.
package geom

import "math"

//appzero is used to correct floating point errors. Everything with an
//absolute value equal or smaller than this is considered zero.
const appzero float64 = 0.0000001

//Deg2Rad converts an angle in degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

//Rad2Deg converts an angle in radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

//Point is a location in 3D orthogonal (cartesian) space, in Angstroms.
type Point struct {
	X, Y, Z float64
}

//Add returns the sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

//Sub returns the difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

//Scale returns p scaled by the factor f.
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f, p.Z * f}
}

//Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

//Cross returns the cross product of p and q.
func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

//Norm returns the Euclidean norm of p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

//NormSq returns the squared Euclidean norm of p.
func (p Point) NormSq() float64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

//Normalize returns p scaled to unit length. A near-zero vector is
//returned unchanged, so degenerate input cannot produce NaNs downstream.
func (p Point) Normalize() Point {
	n := p.Norm()
	if n <= appzero {
		return p
	}
	return p.Scale(1 / n)
}

//Rotate returns p rotated by the quaternion q.
func (p Point) Rotate(q Quaternion) Point {
	//p' = q * p * conj(q), with p as a pure quaternion.
	pq := Quaternion{0, p.X, p.Y, p.Z}
	r := q.Mul(pq).Mul(q.Conj())
	return Point{r.B, r.C, r.D}
}

//TranslateRotateTranslate translates p by t1, rotates it by q and
//translates it again by t2. This is the composition used for all
//coordinate transforms, symmetry copies included.
func TranslateRotateTranslate(p, t1 Point, q Quaternion, t2 Point) Point {
	return p.Add(t1).Rotate(q).Add(t2)
}

//Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Sub(b).Norm()
}

//DistanceSq returns the squared Euclidean distance between a and b.
func DistanceSq(a, b Point) float64 {
	return a.Sub(b).NormSq()
}

//Centroid returns the (unweighted) centroid of the given points.
//It panics on an empty set, as that has to be a programming error.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		panic(ErrNotEnoughPoints)
	}
	var t Point
	for _, p := range pts {
		t = t.Add(p)
	}
	return t.Scale(1 / float64(len(pts)))
}

//CenterPoints translates the given points, in place, so their centroid
//falls on the origin. It returns the centroid that was removed.
func CenterPoints(pts []Point) Point {
	t := Centroid(pts)
	for i := range pts {
		pts[i] = pts[i].Sub(t)
	}
	return t
}

//DihedralAngle returns the signed angle, in degrees, between the plane
//through p1,p2,p3 and the plane through p2,p3,p4. The atan2-based formula
//keeps the value stable near 0 and 180 degrees. Degenerate input (collinear
//points) yields 360, the same sentinel used for undefined torsions, rather
//than an error or a NaN.
func DihedralAngle(p1, p2, p3, p4 Point) float64 {
	v12 := p1.Sub(p2)
	v43 := p4.Sub(p3)
	z := p2.Sub(p3)

	p := z.Cross(v12)
	x := z.Cross(v43)
	y := z.Cross(x)

	u := x.Dot(x)
	v := y.Dot(y)

	result := 360.0
	if u > 0 && v > 0 {
		u = p.Dot(x) / math.Sqrt(u)
		v = p.Dot(y) / math.Sqrt(v)
		if u != 0 || v != 0 {
			result = math.Atan2(v, u) * 180 / math.Pi
		}
	}
	return result
}

//CosinusAngle returns the cosine of the angle between the vectors p2-p1
//and p4-p3, or 0 when either vector is degenerate.
func CosinusAngle(p1, p2, p3, p4 Point) float64 {
	v12 := p1.Sub(p2)
	v34 := p3.Sub(p4)

	x := v12.Dot(v12) * v34.Dot(v34)
	if x <= 0 {
		return 0
	}
	return v12.Dot(v34) / math.Sqrt(x)
}

//RMSd returns the root mean square of the per-point distances between the
//correspondence-ordered sets a and b, which must have equal lengths.
func RMSd(a, b []Point) (float64, error) {
	if len(a) != len(b) {
		return 0, Error{string(ErrMismatchedLengths), []string{"RMSd"}, true}
	}
	if len(a) == 0 {
		return 0, Error{string(ErrNotEnoughPoints), []string{"RMSd"}, true}
	}
	var sum float64
	for i := range a {
		sum += DistanceSq(a[i], b[i])
	}
	return math.Sqrt(sum / float64(len(a))), nil
}
