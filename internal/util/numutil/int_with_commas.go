package numutil

import "fmt"

// Integer is any integer type wide enough to hold 1000.
type Integer interface {
	~int | ~int16 | ~int32 | ~int64 |
		~uint | ~uint16 | ~uint32 | ~uint64
}

// IntWithCommas returns a string representation of an integer with commas
// between every group of three digits.
//
// Example:
//
//	12345 -> "12,345"
func IntWithCommas[T Integer](i T) string {
	if i < 0 {
		// Negate through int64 so the minimum value of every signed type
		// below 64 bits is handled.
		return "-" + IntWithCommas(uint64(-int64(i)))
	}
	if i < 1000 {
		return fmt.Sprintf("%d", i)
	}
	return IntWithCommas(i/1000) + "," + fmt.Sprintf("%03d", i%1000)
}
