/*
 * errors.go, part of gopack.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package pack

import (
	"fmt"
	"strings"
)

//Error is the general structure for gopack errors. A *Error fulfills the Decorator interface.
//Only recoverable conditions (mostly I/O) are reported as errors. Broken invariants
//are programming errors and cause a panic with a PanicMsg.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

//NewError returns an Error with the given message, file name (can be empty) and
//caller name. The error is critical.
func NewError(message, filename, caller string) Error {
	return Error{message: message, filename: filename, deco: []string{caller}, critical: true}
}

//Error returns a string with an error message.
func (err Error) Error() string {
	if err.filename != "" {
		return fmt.Sprintf("gopack: file %s: %s (%s)", err.filename, err.message, strings.Join(err.deco, "<-"))
	}
	return fmt.Sprintf("gopack: %s (%s)", err.message, strings.Join(err.deco, "<-"))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty string just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//FileName returns the name of the file involved in the error, if any.
func (err Error) FileName() string { return err.filename }

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//ErrDecorate is a helper function that adds the caller's name to the error, if
//the error is a gopack Error. Other errors are wrapped in a new Error.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case Error:
		e.Decorate(caller)
		return e
	case *Error:
		e.Decorate(caller)
		return e
	default:
		return Error{message: err.Error(), deco: []string{caller}, critical: true}
	}
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//Messages for the invariant violations. All of them mean that the program (or its configuration)
//is wrong, so they are not recoverable.
const (
	ErrMoltenCount       = PanicMsg("gopack: the task and the actual number of packable residues disagree")
	ErrUnknownGraph      = PanicMsg("gopack: unknown interaction graph type encountered in ComputeEnergies")
	ErrLinkInconsistent  = PanicMsg("gopack: rotamer links reference a residue that is not being packed")
	ErrNotMolten         = PanicMsg("gopack: residue is not molten")
	ErrResidOutOfRange   = PanicMsg("gopack: residue index out of range")
	ErrRotamerOutOfRange = PanicMsg("gopack: rotamer index out of range")
	ErrNoTask            = PanicMsg("gopack: no packer task has been set")
)
