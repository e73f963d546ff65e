// Package json provides the two JSON string element kinds: Raw, an opaque
// passthrough, and String, a settable field with a default.
package json

import (
	"jsonq.mleku.dev/codec"
	"jsonq.mleku.dev/text"
)

var (
	_ codec.Element = (*Raw)(nil)
	_ codec.Element = (*String)(nil)
)

func delimiter(d byte) byte {
	if d == 0 {
		return text.DefaultDelimiter
	}
	return d
}
