// Package ising - spin/bit conversions.
//
// Convention: bit=1 ⇔ spin=+1 ⇔ the item joins subset S₁; bit=0 ⇔
// spin=−1 ⇔ subset S₂. All helpers are pure and allocate fresh slices.
package ising

// SpinsFromBits maps a {0,1} assignment to {−1,+1} spins.
//
// Errors: ErrBadBit if any value is outside {0,1}.
//
// Complexity: O(n).
func SpinsFromBits(bits []uint8) ([]int8, error) {
	out := make([]int8, len(bits))

	var i int
	for i = 0; i < len(bits); i++ {
		switch bits[i] {
		case 0:
			out[i] = -1
		case 1:
			out[i] = 1
		default:
			return nil, ErrBadBit
		}
	}

	return out, nil
}

// BitsFromSpins maps {−1,+1} spins back to a {0,1} assignment.
//
// Errors: ErrBadSpin if any value is outside {−1,+1}.
//
// Complexity: O(n).
func BitsFromSpins(spins []int8) ([]uint8, error) {
	out := make([]uint8, len(spins))

	var i int
	for i = 0; i < len(spins); i++ {
		switch spins[i] {
		case -1:
			out[i] = 0
		case 1:
			out[i] = 1
		default:
			return nil, ErrBadSpin
		}
	}

	return out, nil
}

// Complement flips every bit (0↔1). The partition objective is invariant
// under this global flip: swapping S₁ and S₂ changes nothing.
//
// Errors: ErrBadBit if any value is outside {0,1}.
//
// Complexity: O(n).
func Complement(bits []uint8) ([]uint8, error) {
	out := make([]uint8, len(bits))

	var i int
	for i = 0; i < len(bits); i++ {
		switch bits[i] {
		case 0:
			out[i] = 1
		case 1:
			out[i] = 0
		default:
			return nil, ErrBadBit
		}
	}

	return out, nil
}
