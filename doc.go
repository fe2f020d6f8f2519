/*
 * doc.go, part of libcifpp.
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

/*Package mmcif is a toolkit for macromolecular crystal structures. It
provides the structural data model used to work with protein, nucleic
acid and ligand coordinates as structure-determination pipelines
produce them.

	**Capabilities**

    Builds a full data model from validated structural records: atoms
	over shared storage, residues, monomers with chain context, and
	polymer chains, covering both the internal label addressing and
	the published auth numbering of the same physical atoms.

    Derives biochemical geometry: the backbone torsions φ, ψ, ω, κ and
	the virtual α, the side-chain χ angles with the LEU/VAL branch
	resolved by chiral volume, cis/trans peptide classification and
	peptide bond detection.

    Answers which atoms are close under crystallographic symmetry: a
	distance map built in parallel over every symmetry operator and
	unit-cell translation, queried by atom pair or by radius.

    Mutates structures safely: remove, move and swap atoms, rename
	residues, reassign ids in canonical order, and deep-copy a whole
	structure to hand to a worker goroutine.

    Snapshots atom positions as zstd-compressed JSON for exchange
	between processes.

The geometry kernel lives in the geom subpackage and is usable on its
own; the record store, spacegroup/cell machinery and Ramachandran
plotting live in cif, symmetry and ramaplot.*/
package mmcif
