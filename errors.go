/*
 * errors.go, part of find-pair.
 *
 * Copyright 2026 The find-pair authors
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

package findpair

import "fmt"

//Error is the structured error for the whole module. Only critical errors
//(unreadable or empty input) abort a structure's processing; everything
//else is recorded per residue or per candidate and reported as a normal
//outcome.
type Error struct {
	message  string
	filename string //the input file with problems, or the empty string
	deco     []string
	critical bool
}

//NewError builds an Error.
func NewError(message, filename string, critical bool) Error {
	return Error{message: message, filename: filename, critical: critical}
}

//Error returns a string with an error message.
func (err Error) Error() string {
	if err.filename == "" {
		return err.message
	}
	return fmt.Sprintf("file %s: %s", err.filename, err.message)
}

//Decorate adds new information to the error and returns the decoration
//trail. Even though the receiver is not a pointer, deco is a slice, hence
//itself a pointer.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the input file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error should abort the whole-structure run.
func (err Error) Critical() bool { return err.critical }

//Message constants for the errors produced in this package.
const (
	UnableToOpen   = "unable to open file"
	EmptyStructure = "no atoms found in structure"
	WrongFormat    = "malformed coordinate record"
)

//errDecorate asserts that err carries a decoration trail and adds the
//caller's name to it before handing the error back.
func errDecorate(err error, caller string) error {
	err2, ok := err.(interface {
		Error() string
		Decorate(string) []string
	})
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err
}
