package log

import (
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/daytime-project/daytime-go/pkg/wire"
)

// EncodeEvent encodes an Event to CBOR bytes using the wire encoding.
func EncodeEvent(event Event) ([]byte, error) {
	return wire.Marshal(event)
}

// DecodeEvent decodes CBOR bytes into an Event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := wire.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder creates a CBOR encoder for log events that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return wire.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder for log events that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return wire.NewDecoder(r)
}
