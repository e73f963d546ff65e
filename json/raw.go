package json

import (
	"jsonq.mleku.dev/text"
)

// Raw is an opaque JSON string element. V holds exactly what was last stored,
// which may or may not itself look quoted; quote detection only happens when
// the element is marshalled or unmarshalled.
//
// Create one with a literal, which is stored as is with no parsing:
//
//	r := json.NewRaw("base64/with/forward/slash")
//
// or decode one from the wire:
//
//	r := &json.Raw{}
//	_, _ = r.Unmarshal(b)
type Raw struct {
	V []byte
	// Delimiter opens and closes the string on the wire, the zero value means
	// text.DefaultDelimiter.
	Delimiter byte
}

func NewRaw[V string | []byte](s V) *Raw { return &Raw{V: []byte(s)} }

func (r *Raw) delim() byte { return delimiter(r.Delimiter) }

// Bytes returns V unchanged.
func (r *Raw) Bytes() []byte { return r.V }

// Marshal wraps V in the delimiter with one level of escaping. If V already
// begins and ends with the delimiter only its interior is escaped, so one
// Unmarshal followed by one Marshal gives back the original quoted input.
func (r *Raw) Marshal(dst []byte) (b []byte) {
	d := r.delim()
	if text.IsQuoted(r.V, d) {
		return text.Quote(dst, d, text.Unquote(r.V))
	}
	return text.Quote(dst, d, r.V)
}

// Unmarshal stores b. Quoted input has one level of escaping removed from its
// interior and keeps its delimiters as part of V; anything else is stored
// verbatim. The whole of b is consumed and it never returns an error.
func (r *Raw) Unmarshal(b []byte) (rem []byte, err error) {
	d := r.delim()
	if !text.IsQuoted(b, d) {
		r.V = append([]byte{}, b...)
		return
	}
	v := make([]byte, 0, len(b))
	v = append(v, d)
	v = text.UnescapeOnce(v, text.Unquote(b))
	r.V = append(v, d)
	return
}

// FromString is Unmarshal for a string input.
func (r *Raw) FromString(s string) { _, _ = r.Unmarshal([]byte(s)) }

// ToString is Marshal into a new string.
func (r *Raw) ToString() string { return string(r.Marshal(nil)) }
