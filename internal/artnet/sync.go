package artnet

import "bytes"

// Sync is the ArtSync packet. A controller sends it after a burst of
// ArtDmx packets to make nodes transfer the buffered data to their
// DMX outputs simultaneously.
type Sync struct {
	// Version is the sender's protocol revision, ProtocolVersion by
	// default.
	Version [2]byte

	// Aux1 and Aux2 are transmitted as zero.
	Aux1 byte
	Aux2 byte
}

// NewSync returns a Sync with the current protocol version.
func NewSync() *Sync {
	return &Sync{Version: ProtocolVersion}
}

func (s *Sync) Opcode() Opcode { return OpSync }

func (s *Sync) marshalBody(buf *bytes.Buffer) error {
	buf.Write(s.Version[:])
	buf.WriteByte(s.Aux1)
	buf.WriteByte(s.Aux2)
	return nil
}

func decodeSync(c *cursor) (Command, error) {
	s := &Sync{}
	if err := c.readInto(s.Version[:]); err != nil {
		return nil, &FieldError{Field: "Version", Err: err}
	}
	var err error
	if s.Aux1, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Aux1", Err: err}
	}
	if s.Aux2, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Aux2", Err: err}
	}
	return s, nil
}
