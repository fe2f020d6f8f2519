/*
 * quaternion.go, part of libcifpp.
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

import "math"

//Quaternion is a rotation in 3D space, stored as the 4-tuple (a,b,c,d)
//with a the scalar part. Construct quaternions with NewQuaternion or
//QuaternionFromAngleAxis so that they are always normalized.
type Quaternion struct {
	A, B, C, D float64
}

//IdentityQuaternion returns the rotation that leaves points unchanged.
func IdentityQuaternion() Quaternion {
	return Quaternion{1, 0, 0, 0}
}

//NewQuaternion returns the normalized quaternion (a,b,c,d). A degenerate
//(near zero length) input yields the identity rotation rather than NaNs.
func NewQuaternion(a, b, c, d float64) Quaternion {
	return Quaternion{a, b, c, d}.Normalize()
}

//Normalize returns q scaled to unit length, or the identity quaternion if
//q is too short for the division to be meaningful.
func (q Quaternion) Normalize() Quaternion {
	length := math.Sqrt(q.A*q.A + q.B*q.B + q.C*q.C + q.D*q.D)
	if length <= 0.001 {
		return IdentityQuaternion()
	}
	return Quaternion{q.A / length, q.B / length, q.C / length, q.D / length}
}

//Conj returns the conjugate of q, i.e. the inverse rotation for a unit
//quaternion.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{q.A, -q.B, -q.C, -q.D}
}

//Mul returns the quaternion product q*r, the composition of the two
//rotations (r applied first).
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		q.A*r.A - q.B*r.B - q.C*r.C - q.D*r.D,
		q.A*r.B + q.B*r.A + q.C*r.D - q.D*r.C,
		q.A*r.C - q.B*r.D + q.C*r.A + q.D*r.B,
		q.A*r.D + q.B*r.C - q.C*r.B + q.D*r.A,
	}
}

//QuaternionFromAngleAxis returns the quaternion for a rotation of angle
//degrees about the given axis. The axis does not need to be normalized.
func QuaternionFromAngleAxis(angle float64, axis Point) Quaternion {
	a := math.Cos(Deg2Rad(angle) / 2)
	s := math.Sqrt(1 - a*a)

	axis = axis.Normalize()

	return NewQuaternion(a, s*axis.X, s*axis.Y, s*axis.Z)
}

//AngleAxis returns the rotation angle in degrees and the rotation axis of
//q. The scalar component is clamped to [-1,1] before taking the arc
//cosine, so floating point round-off cannot take acos out of its domain.
func (q Quaternion) AngleAxis() (float64, Point) {
	if q.A > 1 || q.A < -1 {
		q = q.Normalize()
	}
	a := q.A
	if a > 1 {
		a = 1
	} else if a < -1 {
		a = -1
	}

	angle := Rad2Deg(2 * math.Acos(a))

	s := math.Sqrt(1 - a*a)
	if s < 0.001 {
		s = 1
	}

	return angle, Point{q.B / s, q.C / s, q.D / s}
}

//ConstructForDihedralAngle returns the quaternion that, when applied to p4
//about the p2-p3 axis centered at p3, brings the dihedral p1,p2,p3,p4 to
//within esd degrees of the requested angle. The search is iterative and
//bounded to 100 rounds; it is used to synthesize idealized geometry for
//missing atoms.
func ConstructForDihedralAngle(p1, p2, p3, p4 Point, angle, esd float64) Quaternion {
	p1 = p1.Sub(p3)
	p2 = p2.Sub(p3)
	p4 = p4.Sub(p3)
	axis := p2
	p3 = Point{}

	q := IdentityQuaternion()

	dh := DihedralAngle(p1, p2, p3, p4)
	for iteration := 0; iteration < 100; iteration++ {
		delta := math.Mod(angle-dh, 360)
		if delta < -180 {
			delta += 360
		}
		if delta > 180 {
			delta -= 360
		}

		if math.Abs(delta) < esd {
			break
		}

		q2 := QuaternionFromAngleAxis(delta, axis)
		if iteration == 0 {
			q = q2
		} else {
			q = q.Mul(q2)
		}

		p4 = p4.Rotate(q2)
		dh = DihedralAngle(p1, p2, p3, p4)
	}

	return q
}
