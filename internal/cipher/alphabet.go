package cipher

const alphabetSize = 26

// caseBase returns the first letter of ch's alphabet, or false when ch is not an ASCII letter.
func caseBase(ch rune) (rune, bool) {
	switch {
	case ch >= 'a' && ch <= 'z':
		return 'a', true
	case ch >= 'A' && ch <= 'Z':
		return 'A', true
	default:
		return 0, false
	}
}

// rotate shifts an ASCII letter within its own case. The result is always in
// [0,26) even for negative shifts.
func rotate(ch rune, shift int64) rune {
	base, ok := caseBase(ch)
	if !ok {
		return ch
	}
	off := (int64(ch-base) + shift%alphabetSize) % alphabetSize
	if off < 0 {
		off += alphabetSize
	}
	return base + rune(off)
}

func isLetter(ch rune) bool {
	_, ok := caseBase(ch)
	return ok
}
