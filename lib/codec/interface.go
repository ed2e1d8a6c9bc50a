package codec

// ICodec is the interface for all collection codecs.
// A codec turns a Go value into the byte form stored in the key-value store
// and back.
type ICodec interface {
	// Encode serializes a value into a byte array
	// It returns the serialized byte array and an error if any
	Encode(v interface{}) ([]byte, error)
	// Decode deserializes a byte array into the value pointed to by v
	// It returns an error if any
	Decode(b []byte, v interface{}) error
	// Name returns the codec identifier (e.g. for config and logging)
	Name() string
}
