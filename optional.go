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

import "github.com/bytedance/sonic"

// Option distinguishes "field absent" from "field present with zero value"
// for the many nullable/optional fields Discord-shaped JSON sends.
type Option[T any] struct {
	value T
	set   bool
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, set: true}
}

// None is the absent-field value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the field was present.
func (o Option[T]) IsSome() bool {
	return o.set
}

// Get returns the wrapped value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// ValueOr returns the wrapped value, or fallback if absent.
func (o Option[T]) ValueOr(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// MarshalJSON emits null for an absent option.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return sonic.Marshal(o.value)
}

// UnmarshalJSON treats `null` and an absent key identically: the zero
// Option. Any other payload is decoded as present.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*o = Option[T]{}
		return nil
	}
	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Option[T]{value: v, set: true}
	return nil
}
