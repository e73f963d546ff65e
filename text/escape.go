package text

// EscapeOnce appends src to dst with exactly one level of JSON string escaping
// applied, and returns the extended slice.
//
// A reverse solidus becomes \\ and a solidus becomes \/, so text that is
// already escaped gets escaped again rather than passed through:
//
//	base64\/with  ->  base64\\\/with
//
// The rest of the RFC8259 set is also covered. A double quote is written as
// \", the C-style control codes as \b \t \n \f \r and every other byte below
// 0x20 as \u00XX. All remaining bytes, including multi-byte UTF-8, are copied
// verbatim.
func EscapeOnce(dst, src []byte) []byte {
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '\\':
			dst = append(dst, '\\', '\\')
		case '/':
			dst = append(dst, '\\', '/')
		case '"':
			dst = append(dst, '\\', '"')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\r':
			dst = append(dst, '\\', 'r')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4],
					hexDigits[c&0xf])
				continue
			}
			dst = append(dst, c)
		}
	}
	return dst
}

const hexDigits = "0123456789abcdef"

// UnescapeOnce removes exactly one level of escaping from src, appending the
// result to dst. It does not loop until nothing is left to decode:
//
//	base64\\\/with  ->  base64\/with
//
// src is never modified. Unknown escapes, malformed \u sequences and a
// dangling trailing backslash are copied through unchanged; there is no error
// case.
func UnescapeOnce(dst, src []byte) []byte {
	l := len(src)
	for r := 0; r < l; r++ {
		c := src[r]
		if c != '\\' || r+1 == l {
			dst = append(dst, c)
			continue
		}
		switch next := src[r+1]; next {
		case '\\', '/', '"':
			dst = append(dst, next)
			r++
		case 'b':
			dst = append(dst, '\b')
			r++
		case 't':
			dst = append(dst, '\t')
			r++
		case 'n':
			dst = append(dst, '\n')
			r++
		case 'f':
			dst = append(dst, '\f')
			r++
		case 'r':
			dst = append(dst, '\r')
			r++
		case 'u':
			var n int
			if dst, n = appendUnicodeEscape(dst, src[r:]); n == 0 {
				// not a usable \u escape, keep the backslash and let the rest
				// through as plain text.
				dst = append(dst, c)
				continue
			}
			r += n - 1
		default:
			dst = append(dst, c)
		}
	}
	return dst
}
