/*
 * errors.go, part of spglib.
 *
 * Copyright 2015 Albert DeFusco
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
 */

package m3

//The same error machinery as the root spglib package, duplicated here to
//avoid a circular import.

//Error is the error type returned by the package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns the error message.
func (err Error) Error() string { return err.message }

//Decorate adds dec to the decoration stack of the error and returns the
//resulting stack. An empty dec only queries the current value.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is the type used for the messages of panics raised by the
//fundamental helpers of this package.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
