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

// BitField is any integer type corvus's flag enums (ChannelFlags,
// GatewayIntent, UserFlags, Permissions, ...) are defined over, so the
// Add/Remove/Has/Missing/Toggle helpers below work across all of them
// without each enum reimplementing bitwise plumbing.
//
//	flags := BitFieldAdd(uint8(0), 1, 4)      // 0b101
//	BitFieldHas(flags, uint8(1))              // true
//	flags = BitFieldRemove(flags, uint8(1))   // 0b100
type BitField interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitFieldAdd ORs every bitmask into bitfield and returns the result.
func BitFieldAdd[T BitField](bitfield T, bitmasks ...T) T {
	for _, bitmask := range bitmasks {
		bitfield |= bitmask
	}
	return bitfield
}

// BitFieldRemove clears every bitmask from bitfield and returns the result.
func BitFieldRemove[T BitField](bitfield T, bitmasks ...T) T {
	for _, bitmask := range bitmasks {
		bitfield &^= bitmask
	}
	return bitfield
}

// BitFieldHas reports whether bitfield has every one of bitmasks set.
func BitFieldHas[T BitField](bitfield T, bitmasks ...T) bool {
	for _, bitmask := range bitmasks {
		if bitfield&bitmask != bitmask {
			return false
		}
	}
	return true
}

// BitFieldMissing returns the subset of bitmasks not currently set in
// bitfield, or zero if all of them already are.
func BitFieldMissing[T BitField](bitfield T, bitmasks ...T) T {
	var missing T
	for _, bitmask := range bitmasks {
		if bitfield&bitmask == 0 {
			missing |= bitmask
		}
	}
	return missing
}

// BitFieldToggle flips the presence of every one of bitmasks in bitfield:
// a set bit clears, a clear bit sets.
func BitFieldToggle[T BitField](bitfield T, bitmasks ...T) T {
	for _, bitmask := range bitmasks {
		bitfield ^= bitmask
	}
	return bitfield
}
