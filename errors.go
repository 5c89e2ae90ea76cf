/*
 * errors.go, part of gbasis.
 *
 * Copyright 2023 Ruben D. Guerrero
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

package gbasis

import "fmt"

// Errer is the interface for errors that the packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// The decorate slice should contain a list of functions in the calling stack,
// plus, for each function, any relevant information, or nothing.
type Errer interface {
	Error() string
	Decorate(string) []string //If passed an empty string, it should just return the current decoration, not add the empty string to it.
	Critical() bool
}

// Error implements the Errer interface. It is returned by the evaluation
// entry points on malformed shapes.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("%s", err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }

// errDecorate asserts that err implements Errer and decorates it with
// the caller's name before returning it. It panics on any other error type.
func errDecorate(err error, caller string) error {
	err2 := err.(Errer)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics, even though it does satisfy the
// error interface. For recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilPoints      = PanicMsg("gbasis: nil points matrix given")
	ErrNotNx3Matrix   = PanicMsg("gbasis: a points matrix must have 3 columns")
	ErrNegativeAngMom = PanicMsg("gbasis: angular momentum components must be non-negative integers")
	ErrEval           = PanicMsg("gbasis: evaluation of a well-formed primitive can not fail")
)
