package json

import (
	"jsonq.mleku.dev/text"
)

// String is a settable JSON string field with a default. It is unassigned when
// created and becomes assigned, permanently, on Set or Unmarshal.
//
// While unassigned a reader sees the default but the field marshals as an
// empty string, so defaults never leak into output that was not explicitly
// given them:
//
//	s := json.NewString("hello")
//	s.Bytes()       // hello
//	s.Marshal(nil)  // ""
//
// The value is stored unescaped and without delimiters, and escaped only to
// output JSON.
type String struct {
	value    []byte
	def      []byte
	assigned bool
	// Delimiter opens and closes the string on the wire, the zero value means
	// text.DefaultDelimiter.
	Delimiter byte
}

// NewString creates an unassigned String with the given default.
func NewString[V string | []byte](def V) *String {
	return &String{def: []byte(def)}
}

func (s *String) delim() byte { return delimiter(s.Delimiter) }

// Bytes returns the assigned value, or the default if nothing was assigned.
func (s *String) Bytes() []byte {
	if s.assigned {
		return s.value
	}
	return s.def
}

// Default returns the default given at construction.
func (s *String) Default() []byte { return s.def }

// Assigned reports whether Set or Unmarshal has been called.
func (s *String) Assigned() bool { return s.assigned }

// Set assigns v, copying it.
func (s *String) Set(v []byte) {
	s.value = append([]byte{}, v...)
	s.assigned = true
}

// Marshal appends the quoted, escaped value, or an empty quoted string if the
// field is unassigned.
func (s *String) Marshal(dst []byte) (b []byte) {
	if !s.assigned {
		return text.Quote(dst, s.delim(), nil)
	}
	return text.Quote(dst, s.delim(), s.value)
}

// Unmarshal assigns the value from b. Quoted input has its delimiters dropped
// and one level of escaping removed from the interior; anything else is taken
// verbatim. The whole of b is consumed and it never returns an error.
func (s *String) Unmarshal(b []byte) (rem []byte, err error) {
	s.value = text.Dequote(make([]byte, 0, len(b)), s.delim(), b)
	s.assigned = true
	return
}

// FromString is Unmarshal for a string input.
func (s *String) FromString(str string) { _, _ = s.Unmarshal([]byte(str)) }

// ToString is Marshal into a new string.
func (s *String) ToString() string { return string(s.Marshal(nil)) }
