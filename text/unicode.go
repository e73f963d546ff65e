package text

import (
	"unicode/utf16"
	"unicode/utf8"
)

// appendUnicodeEscape decodes a \uXXXX escape (or a \uXXXX\uXXXX surrogate
// pair) at the start of src into UTF-8 on dst. n is the number of bytes of src
// consumed, zero if src does not begin with a decodable escape, in which case
// dst is returned untouched.
func appendUnicodeEscape(dst, src []byte) (b []byte, n int) {
	r, ok := hex4(src)
	if !ok {
		return dst, 0
	}
	if !utf16.IsSurrogate(r) {
		return utf8.AppendRune(dst, r), 6
	}
	// a lone surrogate has no UTF-8 form, so it is only decoded as a pair.
	if r < 0xdc00 && len(src) >= 12 {
		if r2, ok2 := hex4(src[6:]); ok2 {
			if joined := utf16.DecodeRune(r, r2); joined != utf8.RuneError {
				return utf8.AppendRune(dst, joined), 12
			}
		}
	}
	return dst, 0
}

// hex4 reads the code unit of a \uXXXX escape at the start of b.
func hex4(b []byte) (r rune, ok bool) {
	if len(b) < 6 || b[0] != '\\' || b[1] != 'u' {
		return
	}
	for _, c := range b[2:6] {
		switch {
		case c >= '0' && c <= '9':
			c -= '0'
		case c >= 'a' && c <= 'f':
			c = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			c = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(c)
	}
	return r, true
}
