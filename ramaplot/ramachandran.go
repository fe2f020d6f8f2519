/*
 * ramachandran.go, part of libcifpp.
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

//Package ramaplot draws Ramachandran plots from polymer chains.
package ramaplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	mmcif "github.com/MartinSalinas98/libcifpp"
)

//A RamaPoint is one (φ,ψ) observation, with enough identity to label
//or highlight it.
type RamaPoint struct {
	Phi, Psi float64
	CompID   string
	SeqID    int
}

//Collect gathers the defined (φ,ψ) pairs of the chain. Monomers at
//chain breaks and termini have no complete pair and are skipped.
func Collect(pol *mmcif.Polymer) []RamaPoint {
	var result []RamaPoint
	for _, m := range pol.Monomers() {
		phi := m.Phi()
		psi := m.Psi()
		if phi == mmcif.NoTorsion || psi == mmcif.NoTorsion {
			continue
		}
		result = append(result, RamaPoint{Phi: phi, Psi: psi, CompID: m.CompID(), SeqID: m.SeqID()})
	}
	return result
}

func basicRamaPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = vg.Millimeter * 3
	p.Title.Text = title
	p.X.Label.Text = "Phi"
	p.Y.Label.Text = "Psi"
	//Constant axes
	p.X.Min = -180
	p.X.Max = 180
	p.Y.Min = -180
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	return p
}

//residueClass buckets points the way Ramachandran statistics are
//usually shown: glycine and proline get their own distributions.
func residueClass(compID string) int {
	switch compID {
	case "GLY":
		return 1
	case "PRO":
		return 2
	}
	return 0
}

var classColors = []color.RGBA{
	{R: 60, G: 90, B: 200, A: 255},  //general
	{R: 220, G: 130, B: 20, A: 255}, //glycine
	{R: 30, G: 160, B: 60, A: 255},  //proline
}

var classNames = []string{"general", "GLY", "PRO"}

//FromPolymer draws the Ramachandran plot of one chain and saves it as
//plotname.png.
func FromPolymer(pol *mmcif.Polymer, title, plotname string) error {
	points := Collect(pol)
	if len(points) == 0 {
		return fmt.Errorf("ramaplot: chain %s has no defined phi/psi pairs", pol.AsymID())
	}

	p := basicRamaPlot(title)

	for class := 0; class < len(classNames); class++ {
		var xys plotter.XYs
		for _, pt := range points {
			if residueClass(pt.CompID) != class {
				continue
			}
			xys = append(xys, plotter.XY{X: pt.Phi, Y: pt.Psi})
		}
		if len(xys) == 0 {
			continue
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = classColors[class]
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(classNames[class], s)
	}

	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
