// Package codec is the CBOR configuration shared by every binary output of
// the command line tool. Encoding is Core Deterministic (RFC 8949 §4.2), so
// one value always produces the same bytes.
package codec

import (
	"encoding/hex"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encOptions := cbor.CoreDetEncOptions()
	// bounded integers and addresses keep their textual form
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// MarshalHex encodes v and returns the bytes as lower case hex.
func MarshalHex(v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

// Diagnose returns the diagnostic notation (RFC 8949 §8) of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
