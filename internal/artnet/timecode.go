package artnet

import (
	"bytes"
	"fmt"
)

// FrameType is the frame rate of a timecode stream. The set is closed
// by the protocol: decoding any byte above SMPTE fails.
type FrameType uint8

const (
	// FrameTypeFilm is 24 fps film timecode.
	FrameTypeFilm FrameType = 0
	// FrameTypeEBU is 25 fps EBU timecode.
	FrameTypeEBU FrameType = 1
	// FrameTypeDF is 29.97 fps drop-frame timecode.
	FrameTypeDF FrameType = 2
	// FrameTypeSMPTE is 30 fps SMPTE timecode.
	FrameTypeSMPTE FrameType = 3
)

// FrameTypeFromByte validates a wire byte as a FrameType.
func FrameTypeFromByte(b byte) (FrameType, error) {
	if b > byte(FrameTypeSMPTE) {
		return 0, &RangeError{What: "timecode frame type", Value: int(b), Min: 0, Max: int(FrameTypeSMPTE)}
	}
	return FrameType(b), nil
}

func (f FrameType) String() string {
	switch f {
	case FrameTypeFilm:
		return "Film"
	case FrameTypeEBU:
		return "EBU"
	case FrameTypeDF:
		return "DF"
	case FrameTypeSMPTE:
		return "SMPTE"
	}
	return fmt.Sprintf("FrameType(%d)", uint8(f))
}

// Timecode is the ArtTimeCode packet, transporting SMPTE-style time
// over the network.
type Timecode struct {
	// Version is the sender's protocol revision, ProtocolVersion by
	// default.
	Version [2]byte

	// Filler1 is ignored by receivers and sent as zero.
	Filler1 byte

	// StreamID distinguishes timecode streams; 0x00 is the master.
	StreamID byte

	Frames  byte // 0-29, depending on FrameType
	Seconds byte // 0-59
	Minutes byte // 0-59
	Hours   byte // 0-23

	// FrameType is the frame rate of this stream.
	FrameType FrameType
}

// NewTimecode returns a Timecode with the current protocol version.
func NewTimecode() *Timecode {
	return &Timecode{Version: ProtocolVersion}
}

func (t *Timecode) Opcode() Opcode { return OpTimecode }

func (t *Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%02d (%s)", t.Hours, t.Minutes, t.Seconds, t.Frames, t.FrameType)
}

func (t *Timecode) marshalBody(buf *bytes.Buffer) error {
	buf.Write(t.Version[:])
	buf.WriteByte(t.Filler1)
	buf.WriteByte(t.StreamID)
	buf.WriteByte(t.Frames)
	buf.WriteByte(t.Seconds)
	buf.WriteByte(t.Minutes)
	buf.WriteByte(t.Hours)
	buf.WriteByte(byte(t.FrameType))
	return nil
}

func decodeTimecode(c *cursor) (Command, error) {
	t := &Timecode{}
	if err := c.readInto(t.Version[:]); err != nil {
		return nil, &FieldError{Field: "Version", Err: err}
	}
	var err error
	if t.Filler1, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Filler1", Err: err}
	}
	if t.StreamID, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "StreamID", Err: err}
	}
	if t.Frames, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Frames", Err: err}
	}
	if t.Seconds, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Seconds", Err: err}
	}
	if t.Minutes, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Minutes", Err: err}
	}
	if t.Hours, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Hours", Err: err}
	}
	b, err := c.readByte()
	if err != nil {
		return nil, &FieldError{Field: "FrameType", Err: err}
	}
	if t.FrameType, err = FrameTypeFromByte(b); err != nil {
		return nil, &FieldError{Field: "FrameType", Err: err}
	}
	return t, nil
}
