package artnet

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when a packet ends in the middle of a field.
var ErrTruncated = errors.New("unexpected end of packet")

// TooShortError is returned when a buffer is smaller than the minimum
// Art-Net packet (header, opcode and the smallest body).
type TooShortError struct {
	Length int
	Min    int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("packet too short: %d bytes, need at least %d", e.Length, e.Min)
}

// HeaderError is returned when a buffer does not start with the
// "Art-Net\0" literal.
type HeaderError struct {
	Header []byte
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("invalid Art-Net header %q", e.Header)
}

// UnknownOpcodeError is returned when the opcode field holds a value
// that is not in the documented opcode table.
type UnknownOpcodeError struct {
	Code uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%04X", e.Code)
}

// FieldError wraps a failure while encoding or decoding a single field
// of a packet body. Marshal and Unmarshal add the packet name on top
// via PacketError.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// PacketError wraps a body-level failure with the name of the packet
// kind being encoded or decoded.
type PacketError struct {
	Name string
	Err  error
}

func (e *PacketError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *PacketError) Unwrap() error { return e.Err }

// RangeError reports a value outside its permitted range, such as a
// port address above 32767 or a DMX payload longer than 512 channels.
type RangeError struct {
	What  string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be %d-%d, got %d", e.What, e.Min, e.Max, e.Value)
}
