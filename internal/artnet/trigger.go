package artnet

import (
	"bytes"
	"fmt"
)

// TriggerKey selects how a receiver interprets an ArtTrigger. The set
// is open: any byte is a valid key, so unrecognized (vendor-specific
// or future) values survive a decode/encode round trip unchanged.
type TriggerKey uint8

const (
	// TriggerKeyAscii treats SubKey as a keyboard character.
	TriggerKeyAscii TriggerKey = 0
	// TriggerKeyMacro treats SubKey as a macro number to execute.
	TriggerKeyMacro TriggerKey = 1
	// TriggerKeySoft treats SubKey as a soft-key number.
	TriggerKeySoft TriggerKey = 2
	// TriggerKeyShow treats SubKey as the number of a show to run.
	TriggerKeyShow TriggerKey = 3
)

func (k TriggerKey) String() string {
	switch k {
	case TriggerKeyAscii:
		return "Ascii"
	case TriggerKeyMacro:
		return "Macro"
	case TriggerKeySoft:
		return "Soft"
	case TriggerKeyShow:
		return "Show"
	}
	return fmt.Sprintf("TriggerKey(%d)", uint8(k))
}

// Trigger is the ArtTrigger packet, broadcasting a macro or cue event
// to the nodes matching the OEM filter.
type Trigger struct {
	// Version is the sender's protocol revision, ProtocolVersion by
	// default.
	Version [2]byte

	// Filler1 and Filler2 are ignored by receivers and sent as zero.
	Filler1 byte
	Filler2 byte

	// OemHi and OemLo filter which nodes act on the trigger. The
	// pair 0xFF, 0xFF addresses all nodes.
	OemHi byte
	OemLo byte

	// Key selects the interpretation of SubKey and Data.
	Key TriggerKey

	// SubKey is the key- or macro-specific payload byte.
	SubKey byte

	// Data is interpreted according to Key.
	Data [512]byte
}

// NewTrigger returns a Trigger addressed to all nodes (OEM filter
// 0xFFFF) with the Show key.
func NewTrigger() *Trigger {
	return &Trigger{
		Version: ProtocolVersion,
		OemHi:   0xFF,
		OemLo:   0xFF,
		Key:     TriggerKeyShow,
	}
}

func (t *Trigger) Opcode() Opcode { return OpTrigger }

func (t *Trigger) marshalBody(buf *bytes.Buffer) error {
	buf.Write(t.Version[:])
	buf.WriteByte(t.Filler1)
	buf.WriteByte(t.Filler2)
	buf.WriteByte(t.OemHi)
	buf.WriteByte(t.OemLo)
	buf.WriteByte(byte(t.Key))
	buf.WriteByte(t.SubKey)
	buf.Write(t.Data[:])
	return nil
}

func decodeTrigger(c *cursor) (Command, error) {
	t := &Trigger{}
	if err := c.readInto(t.Version[:]); err != nil {
		return nil, &FieldError{Field: "Version", Err: err}
	}
	var err error
	if t.Filler1, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Filler1", Err: err}
	}
	if t.Filler2, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Filler2", Err: err}
	}
	if t.OemHi, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "OemHi", Err: err}
	}
	if t.OemLo, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "OemLo", Err: err}
	}
	b, err := c.readByte()
	if err != nil {
		return nil, &FieldError{Field: "Key", Err: err}
	}
	t.Key = TriggerKey(b)
	if t.SubKey, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "SubKey", Err: err}
	}
	if err = c.readInto(t.Data[:]); err != nil {
		return nil, &FieldError{Field: "Data", Err: err}
	}
	return t, nil
}
