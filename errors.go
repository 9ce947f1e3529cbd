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

package spglib

//Error is the interface implemented by all errors of this library. The
//Decorate method adds information to the error as it travels up the call
//stack without changing its type or wrapping it.
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//CError is the concrete error of the package.
type CError struct {
	msg  string
	deco []string
}

//Error returns the error message.
func (err CError) Error() string { return err.msg }

//Decorate adds dec to the decoration stack of the error and returns the
//resulting stack. An empty dec only queries the current value.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical. Every error of the
//engine is: an operation either fully succeeds or reports failure with
//no partial result.
func (err CError) Critical() bool { return true }

//Is supports errors.Is against the sentinel messages below.
func (err CError) Is(target error) bool {
	t, ok := target.(PanicMsg)
	return ok && err.msg == string(t)
}

//PanicMsg is the message type for panics raised by fundamental helpers
//and for the sentinel error kinds of the engine.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//The error kinds of the engine. They are matched with errors.Is.
const (
	//ErrInvalidInput covers empty atom sets, mismatched array lengths
	//and non-invertible lattices.
	ErrInvalidInput = PanicMsg("spglib: invalid input cell")
	//ErrToleranceExhausted means no consistent symmetry or space-group
	//match was found even after the bounded internal relaxation.
	ErrToleranceExhausted = PanicMsg("spglib: no space-group match within tolerance")
	//ErrBufferTooSmall means the found operation count exceeded the
	//48-per-atom crystallographic bound, indicating a tolerance so loose
	//that distinct atoms coincide.
	ErrBufferTooSmall = PanicMsg("spglib: operation count exceeds crystallographic bound")
	//ErrNotConverged mirrors niggli.ErrNotConverged at this package's
	//boundary.
	ErrNotConverged = PanicMsg("spglib: lattice reduction did not converge")
	//ErrUnsupported covers inconsistent optional inputs, e.g. a spin
	//array whose length disagrees with the atom count.
	ErrUnsupported = PanicMsg("spglib: unsupported configuration")
)

//cerr builds a CError from a sentinel kind and the name of the caller.
func cerr(kind PanicMsg, caller string) CError {
	return CError{msg: string(kind), deco: []string{caller}}
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
