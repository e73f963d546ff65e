package text

// DefaultDelimiter opens and closes a JSON string literal.
const DefaultDelimiter = '"'

type AppendBytesClosure func(dst, src []byte) []byte

// IsQuoted reports whether b is at least two bytes long and both begins and
// ends with delim.
func IsQuoted(b []byte, delim byte) bool {
	return len(b) >= 2 && b[0] == delim && b[len(b)-1] == delim
}

// Unquote returns the interior of b with its first and last byte dropped. It
// does not check what those bytes are, see IsQuoted.
func Unquote(b []byte) []byte { return b[1 : len(b)-1] }

// AppendDelimited writes delim, then src as transformed by ac, then delim
// again.
func AppendDelimited(dst []byte, delim byte, src []byte,
	ac AppendBytesClosure) []byte {
	dst = append(dst, delim)
	dst = ac(dst, src)
	dst = append(dst, delim)
	return dst
}

// AppendQuote is AppendDelimited with the default delimiter.
func AppendQuote(dst, src []byte, ac AppendBytesClosure) []byte {
	return AppendDelimited(dst, DefaultDelimiter, src, ac)
}

// Quote appends src to dst escaped once and wrapped in delim.
func Quote(dst []byte, delim byte, src []byte) []byte {
	return AppendDelimited(dst, delim, src, EscapeOnce)
}

// Dequote is the reverse of Quote for input that IsQuoted: the interior is
// unescaped once onto dst. Anything else is appended verbatim.
func Dequote(dst []byte, delim byte, src []byte) []byte {
	if !IsQuoted(src, delim) {
		return append(dst, src...)
	}
	return UnescapeOnce(dst, Unquote(src))
}
