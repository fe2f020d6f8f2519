/*
 * symop_data.go, part of libcifpp.
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

//Operator table for the spacegroups that cover the vast majority of
//macromolecular crystal structures. Rotation parts are given row-wise in
//fractional space; translations in fractions of a cell edge. The
//general positions follow the standard settings of the International
//Tables, volume A.

//short names keep the table readable
const (
	h  = 1.0 / 2
	q  = 1.0 / 4
	t3 = 1.0 / 3
	s3 = 2.0 / 3
	q3 = 3.0 / 4
)

var spacegroups = []Spacegroup{
	{
		Number: 1, Name: "P 1",
		Symops: []Symop{
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		},
	},
	{
		Number: 2, Name: "P -1",
		Symops: []Symop{
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}},
		},
	},
	{
		Number: 3, Name: "P 1 2 1",
		Symops: []Symop{
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}},
		},
	},
	{
		Number: 4, Name: "P 1 21 1",
		Symops: []Symop{
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, Trn: [3]float64{0, h, 0}},
		},
	},
	{
		Number: 5, Name: "C 1 2 1",
		Symops: []Symop{
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}},
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Trn: [3]float64{h, h, 0}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, Trn: [3]float64{h, h, 0}},
		},
	},
	{
		Number: 18, Name: "P 21 21 2",
		Symops: []Symop{
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, Trn: [3]float64{h, h, 0}},
			{Rot: [3][3]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, Trn: [3]float64{h, h, 0}},
		},
	},
	{
		Number: 19, Name: "P 21 21 21",
		Symops: []Symop{
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, Trn: [3]float64{h, 0, h}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, Trn: [3]float64{0, h, h}},
			{Rot: [3][3]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, Trn: [3]float64{h, h, 0}},
		},
	},
	{
		Number: 20, Name: "C 2 2 21",
		Symops: []Symop{
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, Trn: [3]float64{0, 0, h}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, Trn: [3]float64{0, 0, h}},
			{Rot: [3][3]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}},
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Trn: [3]float64{h, h, 0}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, Trn: [3]float64{h, h, h}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, Trn: [3]float64{h, h, h}},
			{Rot: [3][3]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, Trn: [3]float64{h, h, 0}},
		},
	},
	{
		Number: 96, Name: "P 43 21 2",
		Symops: []Symop{
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, Trn: [3]float64{0, 0, h}},
			{Rot: [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, Trn: [3]float64{h, h, q3}},
			{Rot: [3][3]float64{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}, Trn: [3]float64{h, h, q}},
			{Rot: [3][3]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, Trn: [3]float64{h, h, q3}},
			{Rot: [3][3]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, Trn: [3]float64{h, h, q}},
			{Rot: [3][3]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}},
			{Rot: [3][3]float64{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}}, Trn: [3]float64{0, 0, h}},
		},
	},
	{
		Number: 152, Name: "P 31 2 1",
		Symops: []Symop{
			{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
			{Rot: [3][3]float64{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}}, Trn: [3]float64{0, 0, t3}},
			{Rot: [3][3]float64{{-1, 1, 0}, {-1, 0, 0}, {0, 0, 1}}, Trn: [3]float64{0, 0, s3}},
			{Rot: [3][3]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}},
			{Rot: [3][3]float64{{1, -1, 0}, {0, -1, 0}, {0, 0, -1}}, Trn: [3]float64{0, 0, s3}},
			{Rot: [3][3]float64{{-1, 0, 0}, {-1, 1, 0}, {0, 0, -1}}, Trn: [3]float64{0, 0, t3}},
		},
	},
}
