/*
 * polymer.go, part of libcifpp.
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

//A Polymer is one chain: the ordered monomers for an (entity id,
//asym id) pair, ascending by sequence number as read from the
//polymer-sequence scheme.
type Polymer struct {
	structure *Structure
	entityID  string
	asymID    string

	monomers []*Monomer
}

func (p *Polymer) EntityID() string { return p.entityID }
func (p *Polymer) AsymID() string   { return p.asymID }

//Structure returns the structure this polymer was built from.
func (p *Polymer) Structure() *Structure { return p.structure }

//Len returns the number of monomers in the chain.
func (p *Polymer) Len() int { return len(p.monomers) }

//Monomers returns the monomers in chain order.
func (p *Polymer) Monomers() []*Monomer { return p.monomers }

//ChainID returns the published (auth) chain identifier, read from the
//first atom of the chain.
func (p *Polymer) ChainID() string {
	for _, m := range p.monomers {
		if len(m.atoms) > 0 {
			return m.atoms[0].AuthAsymID()
		}
	}
	return ""
}

//GetBySeqID returns the monomer with the given label seq id. A miss is
//a NotFound error.
func (p *Polymer) GetBySeqID(seqID int) (*Monomer, error) {
	for _, m := range p.monomers {
		if m.seqID == seqID {
			return m, nil
		}
	}
	return nil, notFoundError("mmcif: polymer %s/%s has no monomer with seq id %d", p.entityID, p.asymID, seqID)
}

//SeqDistance returns how many sequence positions separate a and b,
//which must both belong to this polymer.
func (p *Polymer) SeqDistance(a, b *Monomer) (int, error) {
	if a.polymer != p || b.polymer != p {
		return 0, notFoundError("mmcif: monomer not part of polymer %s/%s", p.entityID, p.asymID)
	}
	d := b.seqID - a.seqID
	if d < 0 {
		d = -d
	}
	return d, nil
}

//appendMonomer adds a monomer built by Structure construction.
func (p *Polymer) appendMonomer(m *Monomer) {
	m.polymer = p
	m.index = len(p.monomers)
	p.monomers = append(p.monomers, m)
}
