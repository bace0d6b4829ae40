package wire

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for daytime records.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for daytime records.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient for forward compatibility
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a new CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a new CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// EncodeOperand encodes a single operand.
func EncodeOperand(op Operand) ([]byte, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return Marshal(op)
}

// DecodeOperand decodes and validates a single operand.
func DecodeOperand(data []byte) (Operand, error) {
	var op Operand
	if err := Unmarshal(data, &op); err != nil {
		return Operand{}, fmt.Errorf("failed to decode operand: %w", err)
	}
	if err := op.Validate(); err != nil {
		return Operand{}, err
	}
	return op, nil
}

// EncodeRecord encodes an evaluation record to CBOR bytes.
func EncodeRecord(rec *Record) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return Marshal(rec)
}

// DecodeRecord decodes CBOR bytes into an evaluation record.
func DecodeRecord(data []byte) (*Record, error) {
	var rec Record
	if err := Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}
