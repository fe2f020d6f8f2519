/*
 * errors.go, part of libcifpp.
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

import (
	"errors"
	"fmt"
)

//CError is the concrete error type of this package. deco accumulates the
//names of the callers an error passed through, so the trail is available
//without wrapping chains.
type CError struct {
	msg      string
	deco     []string
	notFound bool
}

func (err CError) Error() string { return err.msg }

//Decorate adds dec to the decoration trail of the error and returns the
//trail.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//NotFound reports whether the error means a lookup missed, as opposed to
//malformed or inconsistent data.
func (err CError) NotFound() bool { return err.notFound }

//Errorer is implemented by decorable errors of this module.
type Errorer interface {
	error
	Decorate(string) []string
}

//errDecorate adds the caller to an error's trail when the error supports
//it, and wraps it otherwise.
func errDecorate(err error, caller string) error {
	errd, ok := err.(Errorer)
	if !ok {
		return fmt.Errorf("%s: %w", caller, err)
	}
	errd.Decorate(caller)
	return errd
}

//notFoundError returns a CError for a failed lookup.
func notFoundError(format string, args ...interface{}) CError {
	return CError{msg: fmt.Sprintf(format, args...), notFound: true}
}

//malformedError returns a CError for a record missing required data.
func malformedError(format string, args ...interface{}) CError {
	return CError{msg: fmt.Sprintf(format, args...)}
}

//IsNotFound reports whether err denotes a failed lookup, in this package
//or in one of its subpackages.
func IsNotFound(err error) bool {
	var nf interface{ NotFound() bool }
	if errors.As(err, &nf) {
		return nf.NotFound()
	}
	return false
}

//PanicMsg is the type used for panics on programming errors, as opposed
//to recoverable conditions which use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrSymmetryMutation = PanicMsg("mmcif: atom is a symmetry copy and cannot be changed")
	ErrNilStructure     = PanicMsg("mmcif: nil structure")
	ErrIndexOutOfRange  = PanicMsg("mmcif: index out of range")
)

//NoTorsion is the sentinel returned for torsion angles that do not
//exist, at chain breaks and termini. 360 is not a value a real torsion
//can take, while still being harmless in batch statistics that filter
//on it.
const NoTorsion = 360.0

//FarAway is the distance a DistanceMap answers for pairs it does not
//track, well beyond any cutoff of interest.
const FarAway = 100.0
