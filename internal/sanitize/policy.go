package sanitize

// isCollapseByte classifies a single non-continuation byte below 0x80.
// Collapsed ranges: control characters and low punctuation (0-44), the path
// separator (47), the ":" through "@" run (58-64), the "[" through "`" run
// (91-96) and "{" through DEL (123-127). Everything else passes through as
// a literal: letters, digits, "-" (45) and "." (46).
//
// "_" (95) sits inside the 91-96 range on purpose: an underscore already in
// the name is re-emitted as the collapse placeholder, which is what makes
// collapsing idempotent across runs.
func isCollapseByte(c byte) bool {
	switch {
	case c <= 44:
		return true
	case c == 47:
		return true
	case c >= 58 && c <= 64:
		return true
	case c >= 91 && c <= 96:
		return true
	case c >= 123:
		return true
	}
	return false
}
