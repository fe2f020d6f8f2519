/*
 * atomtype.go, part of libcifpp.
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

import "strings"

//AtomType is the element identity of an atom. Nn is the unknown
//element; D is deuterium, kept separate from H the way structure files
//keep it.
type AtomType int

const (
	Nn AtomType = iota //unknown
	H                  //Hydrogen
	D                  //Deuterium
	C                  //Carbon
	N                  //Nitrogen
	O                  //Oxygen
	F                  //Fluorine
	Na                 //Sodium
	Mg                 //Magnesium
	Si                 //Silicon
	P                  //Phosphorus
	S                  //Sulfur
	Cl                 //Chlorine
	K                  //Potassium
	Ca                 //Calcium
	Cr                 //Chromium
	Mn                 //Manganese
	Fe                 //Iron
	Co                 //Cobalt
	Cu                 //Copper
	Zn                 //Zinc
	Se                 //Selenium
	Br                 //Bromine
	I                  //Iodine
)

//RadiusType selects one of the radius kinds known per element.
type RadiusType int

const (
	RadiusCovalent RadiusType = iota
	RadiusVanderWaals
	RadiusSingleBond
	RadiusDoubleBond
	RadiusTripleBond
)

//SFData holds the coefficients of a 4-Gaussian scattering factor
//approximation: f(s) = c + Σ a_i·exp(-b_i·s²).
type SFData struct {
	A [4]float64
	B [4]float64
	C float64
}

//AtomTypeInfo is the immutable data record for one element.
type AtomTypeInfo struct {
	Type   AtomType
	Name   string
	Symbol string
	Weight float64
	Metal  bool

	//radii in Ångström, by RadiusType; 0 means unknown
	radii [5]float64

	//X-ray scattering factors for the neutral atom; only filled in for
	//the elements that dominate macromolecular density
	sf    SFData
	hasSF bool
}

//Radius returns the radius of the given kind, in Ångström, falling back
//to the covalent radius when the requested kind is not known for this
//element.
func (inf *AtomTypeInfo) Radius(kind RadiusType) float64 {
	if r := inf.radii[kind]; r > 0 {
		return r
	}
	return inf.radii[RadiusCovalent]
}

//Covalent and van der Waals radii from the sources the rest of this
//module uses throughout: Cordero et al. 2008 for covalent, Bondi-style
//compilations for van der Waals. Single/double/triple bond radii from
//Pyykkö & Atsumi. Weights per IUPAC 2021.
var atomTypeData = []AtomTypeInfo{
	{Type: Nn, Name: "Unknown", Symbol: "X"},
	{Type: H, Name: "Hydrogen", Symbol: "H", Weight: 1.008,
		radii: [5]float64{0.31, 1.10, 0.32, 0, 0},
		sf: SFData{
			A: [4]float64{0.489918, 0.262003, 0.196767, 0.049879},
			B: [4]float64{20.6593, 7.74039, 49.5519, 2.20159},
			C: 0.001305,
		}, hasSF: true},
	{Type: D, Name: "Deuterium", Symbol: "D", Weight: 2.014,
		radii: [5]float64{0.31, 1.10, 0.32, 0, 0},
		sf: SFData{
			A: [4]float64{0.489918, 0.262003, 0.196767, 0.049879},
			B: [4]float64{20.6593, 7.74039, 49.5519, 2.20159},
			C: 0.001305,
		}, hasSF: true},
	{Type: C, Name: "Carbon", Symbol: "C", Weight: 12.011,
		radii: [5]float64{0.76, 1.70, 0.75, 0.67, 0.60},
		sf: SFData{
			A: [4]float64{2.31, 1.02, 1.5886, 0.865},
			B: [4]float64{20.8439, 10.2075, 0.5687, 51.6512},
			C: 0.2156,
		}, hasSF: true},
	{Type: N, Name: "Nitrogen", Symbol: "N", Weight: 14.007,
		radii: [5]float64{0.71, 1.55, 0.71, 0.60, 0.54},
		sf: SFData{
			A: [4]float64{12.2126, 3.1322, 2.0125, 1.1663},
			B: [4]float64{0.0057, 9.8933, 28.9975, 0.5826},
			C: -11.529,
		}, hasSF: true},
	{Type: O, Name: "Oxygen", Symbol: "O", Weight: 15.999,
		radii: [5]float64{0.66, 1.52, 0.63, 0.57, 0.53},
		sf: SFData{
			A: [4]float64{3.0485, 2.2868, 1.5463, 0.867},
			B: [4]float64{13.2771, 5.7011, 0.3239, 32.9089},
			C: 0.2508,
		}, hasSF: true},
	{Type: F, Name: "Fluorine", Symbol: "F", Weight: 18.998,
		radii: [5]float64{0.57, 1.47, 0.64, 0.59, 0.53}},
	{Type: Na, Name: "Sodium", Symbol: "Na", Weight: 22.990, Metal: true,
		radii: [5]float64{1.66, 2.27, 1.55, 1.60, 0}},
	{Type: Mg, Name: "Magnesium", Symbol: "Mg", Weight: 24.305, Metal: true,
		radii: [5]float64{1.41, 1.73, 1.39, 1.32, 1.27}},
	{Type: Si, Name: "Silicon", Symbol: "Si", Weight: 28.085,
		radii: [5]float64{1.11, 2.10, 1.16, 1.07, 1.02}},
	{Type: P, Name: "Phosphorus", Symbol: "P", Weight: 30.974,
		radii: [5]float64{1.07, 1.80, 1.11, 1.02, 0.94},
		sf: SFData{
			A: [4]float64{6.4345, 4.1791, 1.78, 1.4908},
			B: [4]float64{1.9067, 27.157, 0.526, 68.1645},
			C: 1.1149,
		}, hasSF: true},
	{Type: S, Name: "Sulfur", Symbol: "S", Weight: 32.06,
		radii: [5]float64{1.05, 1.80, 1.03, 0.94, 0.95},
		sf: SFData{
			A: [4]float64{6.9053, 5.2034, 1.4379, 1.5863},
			B: [4]float64{1.4679, 22.2151, 0.2536, 56.172},
			C: 0.8669,
		}, hasSF: true},
	{Type: Cl, Name: "Chlorine", Symbol: "Cl", Weight: 35.45,
		radii: [5]float64{1.02, 1.75, 0.99, 0.95, 0.93}},
	{Type: K, Name: "Potassium", Symbol: "K", Weight: 39.098, Metal: true,
		radii: [5]float64{2.03, 2.75, 1.96, 1.93, 0}},
	{Type: Ca, Name: "Calcium", Symbol: "Ca", Weight: 40.078, Metal: true,
		radii: [5]float64{1.76, 2.31, 1.71, 1.47, 1.33}},
	{Type: Cr, Name: "Chromium", Symbol: "Cr", Weight: 51.996, Metal: true,
		radii: [5]float64{1.39, 1.97, 1.22, 1.11, 1.03}},
	{Type: Mn, Name: "Manganese", Symbol: "Mn", Weight: 54.938, Metal: true,
		radii: [5]float64{1.61, 1.96, 1.19, 1.05, 1.03}},
	{Type: Fe, Name: "Iron", Symbol: "Fe", Weight: 55.845, Metal: true,
		radii: [5]float64{1.52, 1.96, 1.16, 1.09, 1.02}},
	{Type: Co, Name: "Cobalt", Symbol: "Co", Weight: 58.933, Metal: true,
		radii: [5]float64{1.50, 1.95, 1.11, 1.03, 0.96}},
	{Type: Cu, Name: "Copper", Symbol: "Cu", Weight: 63.546, Metal: true,
		radii: [5]float64{1.32, 2.00, 1.12, 1.15, 1.20}},
	{Type: Zn, Name: "Zinc", Symbol: "Zn", Weight: 65.38, Metal: true,
		radii: [5]float64{1.22, 2.02, 1.18, 1.20, 0}},
	{Type: Se, Name: "Selenium", Symbol: "Se", Weight: 78.971,
		radii: [5]float64{1.20, 1.90, 1.16, 1.07, 1.07}},
	{Type: Br, Name: "Bromine", Symbol: "Br", Weight: 79.904,
		radii: [5]float64{1.20, 1.83, 1.14, 1.09, 1.10}},
	{Type: I, Name: "Iodine", Symbol: "I", Weight: 126.904,
		radii: [5]float64{1.39, 1.98, 1.33, 1.29, 1.25}},
}

var atomTypeBySymbol = func() map[string]*AtomTypeInfo {
	m := make(map[string]*AtomTypeInfo, len(atomTypeData))
	for i := range atomTypeData {
		m[strings.ToUpper(atomTypeData[i].Symbol)] = &atomTypeData[i]
	}
	return m
}()

//AtomTypeTraits returns the element data for the given symbol. The
//symbol is case-normalized first ("FE", "fe" and "Fe" all work). An
//unknown symbol is a NotFound error.
func AtomTypeTraits(symbol string) (*AtomTypeInfo, error) {
	inf, ok := atomTypeBySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return nil, notFoundError("mmcif: unknown element symbol %q", symbol)
	}
	return inf, nil
}

//AtomTypeTraitsForType returns the element data for the given type.
func AtomTypeTraitsForType(t AtomType) (*AtomTypeInfo, error) {
	for i := range atomTypeData {
		if atomTypeData[i].Type == t {
			return &atomTypeData[i], nil
		}
	}
	return nil, notFoundError("mmcif: unknown atom type %d", t)
}

//ScatteringFactors returns the 4-Gaussian X-ray scattering coefficients
//for the element, or a NotFound error for elements the table does not
//cover. The coefficients are the Cromer-Mann values for the neutral
//atom; ionized species fall back to the neutral coefficients.
func (inf *AtomTypeInfo) ScatteringFactors(charge int) (SFData, error) {
	if !inf.hasSF {
		return SFData{}, notFoundError("mmcif: no scattering factors for %s", inf.Symbol)
	}
	return inf.sf, nil
}
