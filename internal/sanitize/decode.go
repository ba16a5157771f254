package sanitize

// Sentinel scalars yielded by decodeNext for sequences that do not produce
// a Unicode scalar value. Neither is a valid rune, so they can never collide
// with a decoded character.
const (
	// invalidScalar marks a complete sequence whose bit pattern is a
	// surrogate or lies beyond U+10FFFF.
	invalidScalar rune = -1
	// truncatedScalar marks a sequence cut short by the end of input.
	truncatedScalar rune = -2
)

// sequenceLen returns how many bytes a sequence starting with lead consumes.
// Length is decided by the lead byte alone: 0xF0 and above take four bytes,
// 0xE0-0xEF take three, and everything else down to 0x80 takes two. A stray
// continuation byte in leading position is therefore consumed as a two-byte
// sequence, swallowing the byte after it; malformed input degrades to
// deterministic garbage instead of an error.
func sequenceLen(lead byte) int {
	switch {
	case lead >= 0xF0:
		return 4
	case lead >= 0xE0:
		return 3
	default:
		return 2
	}
}

// decodeNext reassembles the multi-byte sequence at the start of b, whose
// first byte must be >= 0x80. It returns the decoded scalar value (or a
// sentinel) and the number of bytes consumed. Continuation bytes contribute
// their low six bits regardless of their high bits, so an ASCII byte caught
// inside a sequence window is consumed with it. decodeNext never fails:
// every input yields a scalar or a sentinel and always makes progress.
func decodeNext(b []byte) (rune, int) {
	n := sequenceLen(b[0])
	if n > len(b) {
		return truncatedScalar, len(b)
	}
	var r rune
	switch n {
	case 2:
		r = rune(b[0]&0x1F)<<6 | rune(b[1]&0x3F)
	case 3:
		r = rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
	case 4:
		r = rune(b[0]&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
	}
	if (r >= 0xD800 && r <= 0xDFFF) || r > 0x10FFFF {
		return invalidScalar, n
	}
	return r, n
}
