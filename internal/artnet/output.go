package artnet

import "bytes"

// Output is the ArtDmx packet carrying one universe of DMX512 data.
// The format is identical between controllers and nodes in every
// direction.
type Output struct {
	// Version is the sender's protocol revision, ProtocolVersion by
	// default.
	Version [2]byte

	// Sequence lets receivers re-order packets that arrive out of
	// order. Senders increment it within 0x01-0xFF; 0x00 disables
	// sequencing.
	Sequence byte

	// Physical is the physical input port the data originated from.
	// Informational only; routing uses PortAddress.
	Physical byte

	// PortAddress is the 15-bit address of the destination universe.
	PortAddress PortAddress

	// Length is the payload length observed on the wire, set when
	// decoding. The encoder ignores it and always writes the padded
	// length of Data, so callers never have to keep it in sync.
	Length uint16

	// Data is the channel payload, 1-512 values.
	Data DMXData
}

// NewOutput returns an Output for data addressed to universe 1 with
// the current protocol version and sequencing disabled.
func NewOutput(data DMXData) *Output {
	return &Output{
		Version:     ProtocolVersion,
		PortAddress: 1,
		Data:        data,
	}
}

func (o *Output) Opcode() Opcode { return OpOutput }

func (o *Output) marshalBody(buf *bytes.Buffer) error {
	// Validate the payload up front so an oversized or empty frame
	// fails before any field bytes are written.
	if err := o.Data.validate(); err != nil {
		return &FieldError{Field: "Data", Err: err}
	}
	buf.Write(o.Version[:])
	buf.WriteByte(o.Sequence)
	buf.WriteByte(o.Physical)
	putUint16LE(buf, uint16(o.PortAddress))
	// The length field is big-endian and always derived from the
	// payload, never from o.Length.
	putUint16BE(buf, uint16(o.Data.PaddedLen()))
	return o.Data.encodeTo(buf)
}

func decodeOutput(c *cursor) (Command, error) {
	o := &Output{}
	if err := c.readInto(o.Version[:]); err != nil {
		return nil, &FieldError{Field: "Version", Err: err}
	}
	var err error
	if o.Sequence, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Sequence", Err: err}
	}
	if o.Physical, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Physical", Err: err}
	}
	if o.PortAddress, err = decodePortAddress(c); err != nil {
		return nil, &FieldError{Field: "PortAddress", Err: err}
	}
	if o.Length, err = c.readUint16BE(); err != nil {
		return nil, &FieldError{Field: "Length", Err: err}
	}
	o.Data = decodeDMXData(c)
	return o, nil
}
