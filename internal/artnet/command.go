// Package artnet encodes and decodes Art-Net 4 control packets: the
// shared "Art-Net\0" envelope, the opcode router, and the bodies for
// Poll, PollReply, Output, Sync, Timecode and Trigger. The codec is
// purely value-oriented; all socket I/O lives in Receiver and in the
// cmd/ programs.
package artnet

import (
	"bytes"
	"encoding/binary"
)

// Header is the 8-byte literal that starts every Art-Net packet.
var Header = []byte("Art-Net\x00")

// ProtocolVersion is the protocol revision this package speaks,
// written as the two version bytes of each body. Decoding accepts
// lower versions; the field is informational, not a gate.
var ProtocolVersion = [2]byte{0x00, 0x0E}

// DefaultPort is the UDP port Art-Net devices listen on.
const DefaultPort = 6454

// minPacketLen is the 8-byte header, the 2-byte opcode and the
// smallest body (ArtPoll, 4 bytes).
const minPacketLen = 14

// Command is one Art-Net packet of any supported kind. The set of
// implementations is closed: Poll, PollReply, Output, Sync, Timecode,
// Trigger, and Placeholder for every other documented opcode.
type Command interface {
	// Opcode reports the opcode this command is sent under.
	Opcode() Opcode

	// marshalBody appends the wire form of the packet body in strict
	// field order. Unexported so the variant set stays closed and in
	// sync with the opcode table.
	marshalBody(buf *bytes.Buffer) error
}

// Placeholder stands in for a documented opcode whose body this
// package does not interpret. It carries no payload and encodes as
// header and opcode only.
type Placeholder struct {
	Op Opcode
}

func (p Placeholder) Opcode() Opcode { return p.Op }

func (p Placeholder) marshalBody(*bytes.Buffer) error { return nil }

// Marshal encodes a command into a datagram ready for transmission:
// header, little-endian opcode, then the body field by field.
func Marshal(cmd Command) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, minPacketLen))
	buf.Write(Header)
	putUint16LE(buf, uint16(cmd.Opcode()))
	if err := cmd.marshalBody(buf); err != nil {
		return nil, &PacketError{Name: cmd.Opcode().String(), Err: err}
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a received datagram into a command. The buffer
// must be at least 14 bytes, start with the Art-Net header, and carry
// an opcode from the documented table.
func Unmarshal(buf []byte) (Command, error) {
	if len(buf) < minPacketLen {
		return nil, &TooShortError{Length: len(buf), Min: minPacketLen}
	}
	if !bytes.Equal(buf[:8], Header) {
		return nil, &HeaderError{Header: append([]byte(nil), buf[:8]...)}
	}
	op := Opcode(binary.LittleEndian.Uint16(buf[8:10]))
	entry, ok := opcodeTable[op]
	if !ok {
		return nil, &UnknownOpcodeError{Code: uint16(op)}
	}
	if entry.decode == nil {
		return Placeholder{Op: op}, nil
	}
	cmd, err := entry.decode(newCursor(buf[10:]))
	if err != nil {
		return nil, &PacketError{Name: entry.name, Err: err}
	}
	return cmd, nil
}
