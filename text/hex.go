package text

import (
	"jsonq.mleku.dev/hex"
)

// AppendHexFromBinary appends the hex form of src, optionally in quotes, for
// dumping wire bytes where escapes would be hard to read.
func AppendHexFromBinary(dst, src []byte, quote bool) (b []byte) {
	if quote {
		dst = AppendQuote(dst, src, hex.EncAppend)
	} else {
		dst = hex.EncAppend(dst, src)
	}
	b = dst
	return
}
