/*
 * geom_test.go, part of libcifpp.
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
	"testing"
)

//TestDihedralAngle checks the signed dihedral against a hand-checked
//set of four points and a few symmetric variants.
func TestDihedralAngle(Te *testing.T) {
	p1 := Point{0, 0, 0}
	p2 := Point{1, 0, 0}
	p3 := Point{1, 1, 0}
	p4 := Point{2, 1, 1}

	dh := DihedralAngle(p1, p2, p3, p4)
	if math.Abs(dh-135.0) > 1e-6 {
		Te.Errorf("dihedral: got %.6f, want 135.0", dh)
	}

	//mirroring p4 through the p1,p2,p3 plane flips the sign
	dh = DihedralAngle(p1, p2, p3, Point{2, 1, -1})
	if math.Abs(dh+135.0) > 1e-6 {
		Te.Errorf("mirrored dihedral: got %.6f, want -135.0", dh)
	}

	//a planar, eclipsed arrangement is 0
	dh = DihedralAngle(Point{0, 1, 0}, Point{0, 0, 0}, Point{1, 0, 0}, Point{1, 1, 0})
	if math.Abs(dh) > 1e-6 {
		Te.Errorf("eclipsed dihedral: got %.6f, want 0", dh)
	}
}

//TestDihedralDegenerate makes sure collinear input yields the 360
//sentinel instead of a NaN.
func TestDihedralDegenerate(Te *testing.T) {
	p1 := Point{0, 0, 0}
	p2 := Point{1, 0, 0}
	p3 := Point{2, 0, 0}
	p4 := Point{3, 0, 0}

	dh := DihedralAngle(p1, p2, p3, p4)
	if dh != 360 {
		Te.Errorf("collinear dihedral: got %v, want 360", dh)
	}
	if math.IsNaN(dh) {
		Te.Error("collinear dihedral produced NaN")
	}
}

func TestCosinusAngle(Te *testing.T) {
	o := Point{0, 0, 0}
	//perpendicular vectors
	c := CosinusAngle(Point{1, 0, 0}, o, Point{0, 1, 0}, o)
	if math.Abs(c) > 1e-9 {
		Te.Errorf("perpendicular: got %v, want 0", c)
	}
	//parallel vectors
	c = CosinusAngle(Point{2, 0, 0}, o, Point{5, 0, 0}, o)
	if math.Abs(c-1) > 1e-9 {
		Te.Errorf("parallel: got %v, want 1", c)
	}
	//degenerate input is 0, not NaN
	c = CosinusAngle(o, o, Point{1, 0, 0}, o)
	if c != 0 {
		Te.Errorf("degenerate: got %v, want 0", c)
	}
}

func TestAngleAxisRoundTrip(Te *testing.T) {
	q := QuaternionFromAngleAxis(67, Point{0, 0, 1})
	angle, axis := q.AngleAxis()
	if math.Abs(angle-67) > 1e-6 {
		Te.Errorf("angle: got %.6f, want 67", angle)
	}
	if math.Abs(axis.Z-1) > 1e-6 || math.Abs(axis.X) > 1e-6 || math.Abs(axis.Y) > 1e-6 {
		Te.Errorf("axis: got %v, want (0,0,1)", axis)
	}

	//rotating (1,0,0) by 90 degrees about z gives (0,1,0)
	r := Point{1, 0, 0}.Rotate(QuaternionFromAngleAxis(90, Point{0, 0, 1}))
	if Distance(r, Point{0, 1, 0}) > 1e-6 {
		Te.Errorf("rotate: got %v, want (0,1,0)", r)
	}
}

func TestQuaternionNormalize(Te *testing.T) {
	q := NewQuaternion(2, 0, 0, 0)
	if q != IdentityQuaternion() {
		Te.Errorf("got %v, want identity", q)
	}
	//a near-zero quaternion collapses to the identity
	q = Quaternion{1e-9, 1e-9, 0, 0}.Normalize()
	if q != IdentityQuaternion() {
		Te.Errorf("near-zero: got %v, want identity", q)
	}
}

//TestConstructForDihedralAngle builds the quaternion that moves p4 so the
//dihedral becomes the requested value, then applies it and measures.
func TestConstructForDihedralAngle(Te *testing.T) {
	p1 := Point{0, 0, 0}
	p2 := Point{1, 0, 0}
	p3 := Point{1, 1, 0}
	p4 := Point{2, 1, 1}

	for _, target := range []float64{-60, 0, 90, 180} {
		q := ConstructForDihedralAngle(p1, p2, p3, p4, target, 0.01)

		//the rotation acts about the p2-p3 axis with p3 at the origin
		moved := TranslateRotateTranslate(p4, p3.Scale(-1), q, p3)

		dh := DihedralAngle(p1, p2, p3, moved)
		delta := math.Mod(dh-target, 360)
		if delta > 180 {
			delta -= 360
		}
		if delta < -180 {
			delta += 360
		}
		if math.Abs(delta) > 0.1 {
			Te.Errorf("target %v: got dihedral %.4f", target, dh)
		}
	}

	//already at the target: the identity comes back
	q := ConstructForDihedralAngle(p1, p2, p3, p4, 135, 0.5)
	if q != IdentityQuaternion() {
		Te.Errorf("converged at start: got %v, want identity", q)
	}
}

func TestCentroid(Te *testing.T) {
	pts := []Point{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}, {0, 0, 2}}
	c := Centroid(pts)
	if Distance(c, Point{0.5, 0.5, 0.5}) > 1e-9 {
		Te.Errorf("centroid: got %v", c)
	}

	removed := CenterPoints(pts)
	if Distance(removed, c) > 1e-9 {
		Te.Errorf("CenterPoints returned %v, want %v", removed, c)
	}
	if Distance(Centroid(pts), Point{}) > 1e-9 {
		Te.Errorf("points not centered: centroid now %v", Centroid(pts))
	}

	defer func() {
		if recover() == nil {
			Te.Error("Centroid on empty set did not panic")
		}
	}()
	Centroid(nil)
}

func TestRMSd(Te *testing.T) {
	a := []Point{{0, 0, 0}, {1, 0, 0}}
	b := []Point{{0, 0, 1}, {1, 0, 1}}

	r, err := RMSd(a, b)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(r-1) > 1e-9 {
		Te.Errorf("RMSd: got %v, want 1", r)
	}

	if _, err := RMSd(a, b[:1]); err == nil {
		Te.Error("mismatched lengths did not return an error")
	}
}
