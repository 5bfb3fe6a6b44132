package marshal

import (
	"io"
	"reflect"

	"github.com/ugorji/go/codec"
)

// JSONHandle decodes upstream JSON documents. Objects of unknown shape
// become map[string]interface{} and integers int64, so decoded documents
// can be walked without caring which codec produced them.
var JSONHandle = newJSONHandle()

// PrettyHandle encodes JSON for humans: two-space indentation, sorted
// keys, and non-ASCII and HTML characters left as they are.
var PrettyHandle = newPrettyHandle()

func newJSONHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.MapType = reflect.TypeOf(map[string]interface{}(nil))
	h.SignedInteger = true
	return h
}

func newPrettyHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{Indent: 2, HTMLCharsAsIs: true}
	h.Canonical = true
	return h
}

// OrderedMap is encoded as a JSON object whose keys come in slice order,
// even under PrettyHandle. It holds alternating keys and values.
type OrderedMap []interface{}

// MapBySlice implements codec.MapBySlice
func (OrderedMap) MapBySlice() {}

// DecodeJSON decodes a single JSON document from r into v.
func DecodeJSON(r io.Reader, v interface{}) error {
	return codec.NewDecoder(r, JSONHandle).Decode(v)
}

// DecodeJSONBytes decodes the JSON document in b into v.
func DecodeJSONBytes(b []byte, v interface{}) error {
	return codec.NewDecoderBytes(b, JSONHandle).Decode(v)
}

// EncodeJSON writes v to w as compact JSON.
func EncodeJSON(w io.Writer, v interface{}) error {
	return codec.NewEncoder(w, &codec.JsonHandle{}).Encode(v)
}

// EncodePretty writes v to w using PrettyHandle, followed by a newline.
func EncodePretty(w io.Writer, v interface{}) error {
	if err := codec.NewEncoder(w, PrettyHandle).Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
