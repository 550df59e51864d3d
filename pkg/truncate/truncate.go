package truncate

import (
	"math"
	"unicode/utf8"
)

// Truncate bounds str to t's configured maxLength, inserting t's omission
// marker at t's configured position. A str that already fits is returned
// unchanged.
func (t *Truncator) Truncate(str string) string {
	return truncateCore(str, t.maxLength, t.omission, t.position)
}

// truncateCore dispatches to the position-specific truncator once it has
// confirmed truncation is actually needed and the marker fits.
func truncateCore(str string, length int, omission string, pos Position) string {
	if length < 1 {
		return ""
	}
	r := []rune(str)
	sLen := len(r)
	oLen := utf8.RuneCountInString(omission)
	if length >= sLen {
		return str
	}
	if length <= oLen {
		return truncateEnd(r, length, "", 0)
	}
	switch pos {
	case PositionStart:
		return truncateStart(r, length, omission, oLen)
	case PositionMiddle:
		return truncateMiddle(r, length, omission, oLen)
	default:
		return truncateEnd(r, length, omission, oLen)
	}
}

// truncateStart keeps the tail, prepending the marker.
func truncateStart(r []rune, length int, omission string, oLen int) string {
	return omission + string(r[len(r)-length+oLen:])
}

// truncateEnd keeps the head, appending the marker.
func truncateEnd(r []rune, length int, omission string, oLen int) string {
	return string(r[:length-oLen]) + omission
}

// truncateMiddle keeps both ends, splicing the marker between them. At
// least one rune must survive on each side of the marker or this falls back
// to a plain end-cut. The split point rounds toward the side that keeps the
// result visually balanced for the original string's parity.
func truncateMiddle(r []rune, length int, omission string, oLen int) string {
	sLen := len(r)
	if length < oLen+2 {
		return truncateEnd(r, length, "", oLen)
	}
	var delta int
	if sLen%2 == 0 {
		delta = int(math.Ceil(float64(length-oLen) / 2))
	} else {
		delta = int(math.Floor(float64(length-oLen) / 2))
	}
	result := make([]rune, length)
	copy(result, r[0:delta])
	copy(result[delta:], []rune(omission))
	copy(result[delta+oLen:], r[sLen-length+oLen+delta:])
	return string(result)
}
