// Package message implements the at-rest message envelope stored as the
// value of gateway records: a payload, its content type, and a header map.
// The envelope is the durable counterpart of the frames exchanged with the
// function over RPC.
package message

import (
	"fmt"

	"github.com/golang/protobuf/proto"

	"github.com/trisberg/streaming-processor/errors"
)

// Encode serializes an at-rest message for publication as a record value.
func Encode(m *Message) ([]byte, error) {
	data, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.WrapInvalid(err, "message", "Encode", "envelope marshalling")
	}
	return data, nil
}

// Decode parses a record value into an at-rest message. A value that does
// not parse as an envelope is invalid live data, not a transient condition.
func Decode(value []byte) (*Message, error) {
	var m Message
	if err := proto.Unmarshal(value, &m); err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %v", errors.ErrMalformedMessage, err),
			"message", "Decode", "envelope parsing")
	}
	return &m, nil
}
