// Package sanitize rewrites filesystem entry names into a safe ASCII
// subset. Characters outside that subset are folded to ASCII equivalents
// where the transliteration table knows them, dropped where they are
// combining marks, and otherwise collapsed into a single underscore per run
// of disallowed input.
//
// The package operates on raw path-component bytes in the platform's native
// encoding; input is not required to be valid UTF-8 and malformed sequences
// are degraded deterministically rather than reported.
package sanitize

import "strings"

// Clean rewrites one path component into its ASCII-safe form. The result is
// deterministic, depends only on the input, and is idempotent: a name that
// is already clean comes back byte-identical, which is the sole signal
// callers use to decide whether a rename is needed.
func Clean(name string) string {
	var out strings.Builder
	out.Grow(len(name))
	b := []byte(name)
	lastCollapse := false
	for i := 0; i < len(b); {
		if b[i] < 0x80 {
			lastCollapse = emitASCII(&out, b[i], lastCollapse)
			i++
			continue
		}
		r, n := decodeNext(b[i:])
		i += n
		if r == truncatedScalar {
			// input ended mid-sequence; nothing to emit
			continue
		}
		lastCollapse = emitScalar(&out, r, lastCollapse)
	}
	return out.String()
}

// emitASCII applies the single-byte policy to c and returns the new value of
// the collapse flag.
func emitASCII(out *strings.Builder, c byte, lastCollapse bool) bool {
	if isCollapseByte(c) {
		if !lastCollapse {
			out.WriteByte('_')
		}
		return true
	}
	out.WriteByte(c)
	return false
}

// emitScalar applies the transliteration table to a decoded scalar and
// returns the new value of the collapse flag. Undecodable sequences are
// handled like any unrecognized scalar: one de-duplicated underscore.
func emitScalar(out *strings.Builder, r rune, lastCollapse bool) bool {
	s, act := classify(r)
	switch act {
	case actionFold:
		out.WriteString(s)
		return false
	case actionHyphen:
		out.WriteString("-")
		return false
	case actionDrop:
		return lastCollapse
	default:
		if !lastCollapse {
			out.WriteByte('_')
		}
		return true
	}
}
