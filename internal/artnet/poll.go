package artnet

import "bytes"

// Poll asks every device on the network to identify itself with an
// ArtPollReply. Controllers broadcast it periodically for discovery.
type Poll struct {
	// Version is the sender's protocol revision, ProtocolVersion by
	// default. Receivers treat it as informational.
	Version [2]byte

	// TalkToMe configures how the nodes respond.
	TalkToMe TalkToMe

	// DiagnosticsPriority is the lowest priority of diagnostic
	// message the sender wants to receive.
	DiagnosticsPriority byte
}

// NewPoll returns a Poll with the standard defaults: current protocol
// version, no TalkToMe flags, low diagnostics priority (0x80).
func NewPoll() *Poll {
	return &Poll{
		Version:             ProtocolVersion,
		DiagnosticsPriority: 0x80,
	}
}

func (p *Poll) Opcode() Opcode { return OpPoll }

func (p *Poll) marshalBody(buf *bytes.Buffer) error {
	buf.Write(p.Version[:])
	buf.WriteByte(byte(p.TalkToMe))
	buf.WriteByte(p.DiagnosticsPriority)
	return nil
}

func decodePoll(c *cursor) (Command, error) {
	p := &Poll{}
	if err := c.readInto(p.Version[:]); err != nil {
		return nil, &FieldError{Field: "Version", Err: err}
	}
	b, err := c.readByte()
	if err != nil {
		return nil, &FieldError{Field: "TalkToMe", Err: err}
	}
	p.TalkToMe = TalkToMeFromByte(b)
	if p.DiagnosticsPriority, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "DiagnosticsPriority", Err: err}
	}
	return p, nil
}
