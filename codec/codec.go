// Package codec is the interface the JSON string element kinds implement, so a
// document model can hold them without knowing which kind it has.
package codec

// JSON is a somewhat simplified version of the json.Marshaler/json.Unmarshaler
// that has no error for the Marshal side of the operation.
type JSON interface {
	// Marshal converts the data of the type into JSON, appending it to the
	// provided slice and returning the extended slice.
	Marshal(dst []byte) (b []byte)
	// Unmarshal decodes a JSON form of a type back into the runtime form, and
	// returns whatever remains after the type has been decoded out.
	Unmarshal(b []byte) (r []byte, err error)
}

// Element is a JSON scalar that also exposes the value a reader of it sees,
// which need not be the bytes it marshals to.
type Element interface {
	JSON
	// Bytes returns the logical value held by the element.
	Bytes() []byte
}
