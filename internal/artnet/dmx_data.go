package artnet

import "bytes"

// MaxDMXChannels is the number of channels in a full DMX512 frame.
const MaxDMXChannels = 512

// DMXData is the variable-length channel payload of an ArtDmx packet.
// A payload holds 1 to 512 channel values. The wire form is always an
// even number of bytes: odd payloads gain a single trailing zero when
// encoded. A zero-length payload can never be encoded.
type DMXData []byte

// Len returns the logical payload length in channels.
func (d DMXData) Len() int { return len(d) }

// PaddedLen returns the encoded length: Len rounded up to even. This
// is also the value the ArtDmx length field carries.
func (d DMXData) PaddedLen() int {
	n := len(d)
	if n%2 != 0 {
		n++
	}
	return n
}

// validate checks the logical length bound before any bytes are
// written, so an invalid payload never partially encodes.
func (d DMXData) validate() error {
	if len(d) == 0 || len(d) > MaxDMXChannels {
		return &RangeError{What: "DMX data length", Value: len(d), Min: 1, Max: MaxDMXChannels}
	}
	return nil
}

func (d DMXData) encodeTo(buf *bytes.Buffer) error {
	if err := d.validate(); err != nil {
		return err
	}
	buf.Write(d)
	if len(d)%2 != 0 {
		buf.WriteByte(0)
	}
	return nil
}

// decodeDMXData consumes the rest of the packet; the payload is the
// trailing field of ArtDmx and carries no length prefix of its own.
func decodeDMXData(c *cursor) DMXData {
	return DMXData(c.rest())
}
