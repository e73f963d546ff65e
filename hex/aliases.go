// Package hex wraps the SIMD hex codec from templexxx/xhex in the append style
// the rest of the module uses.
package hex

import (
	"encoding/hex"

	"github.com/templexxx/xhex"

	"jsonq.mleku.dev/errorf"
)

var Enc = hex.EncodeToString

// EncAppend appends the lower case hex encoding of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// DecAppend decodes the hex in src onto the end of dst.
func DecAppend(dst, src []byte) (b []byte, err error) {
	if len(src)%2 != 0 {
		err = errorf.E("invalid length for hex: %d", len(src))
		return dst, err
	}
	l := len(dst)
	b = append(dst, make([]byte, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); err != nil {
		return dst, err
	}
	return
}
