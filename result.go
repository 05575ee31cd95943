/************************************************************************************
 *
 * corvus, a lightweight Go client SDK for a hosted chat platform
 *
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright 2026 corvus contributors
 *
 * Licensed under the BSD 3-Clause License.
 * See the LICENSE file for details.
 *
 ************************************************************************************/

package corvus

// Result carries either a value or an error from a REST call. Every
// resource wrapper in this package returns one instead of the bare (T,
// error) pair, so callers can chain IsErr/Value/Err without an extra
// branch at every call site.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// From builds a Result from a (value, error) pair, the shape most Go APIs
// already return.
func From[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// IsErr reports whether the result carries an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// IsOk reports whether the result carries a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the wrapped value. Callers must check IsErr first; the
// zero value is returned on error.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the wrapped error, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap panics if the result is an error, otherwise returns the value.
// Intended for tests and scripts, not for library-embedding code paths.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Status extracts the Status tag from the wrapped error, if it is an
// *APIError, or StatusOK/StatusUnknown otherwise.
func (r Result[T]) Status() Status {
	if r.err == nil {
		return StatusOK
	}
	if apiErr, ok := r.err.(*APIError); ok {
		return apiErr.Status
	}
	return StatusUnknown
}

// Void is the Result shape for calls with no return payload.
type Void struct {
	err error
}

// OkVoid reports a successful call with no payload.
func OkVoid() Void {
	return Void{}
}

// ErrVoid wraps a failed call with no payload.
func ErrVoid(err error) Void {
	return Void{err: err}
}

// IsErr reports whether the call failed.
func (v Void) IsErr() bool {
	return v.err != nil
}

// Err returns the wrapped error, or nil on success.
func (v Void) Err() error {
	return v.err
}
