// Package alphaidx converts between numeric pile indices and the
// spreadsheet-style letter labels shown to the player (A..Z, AA, AB, ...).
// The mapping is bijective base-26: there is no zero digit, so every
// non-negative integer has exactly one label and every label exactly one
// integer, with no leading-letter ambiguity.
package alphaidx

import (
	"errors"
	"strings"
)

// ErrBadLabel is returned when a label contains anything but letters.
var ErrBadLabel = errors.New("labels may only contain the letters A-Z")

// floorVal returns the smallest integer labelled by a string of the given
// length. Strings of length 1 cover the first 26 integers, length 2 the
// next 26², and so on; the closed form is (26^length - 26) / 25.
func floorVal(length int) int {
	pow := 1
	for i := 0; i < length; i++ {
		pow *= 26
	}
	return (pow - 26) / 25
}

// Encode returns the letter label for n. Encode(0) is "A", Encode(25) is
// "Z", Encode(26) is "AA". n must be non-negative.
func Encode(n int) string {
	length := 1
	for floorVal(length+1) <= n {
		length++
	}
	n -= floorVal(length)
	buf := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf)
}

// Decode is the inverse of Encode. Lowercase input is accepted; anything
// outside A-Z is an ErrBadLabel.
func Decode(label string) (int, error) {
	if label == "" {
		return 0, ErrBadLabel
	}
	label = strings.ToUpper(label)
	n := 0
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c < 'A' || c > 'Z' {
			return 0, ErrBadLabel
		}
		n = n*26 + int(c-'A')
	}
	return n + floorVal(len(label)), nil
}
