package artnet

import (
	"bytes"
	"fmt"
	"net/netip"
)

// PollReply is a node's answer to Poll, describing its address,
// identity and port configuration. The 229-byte body follows the
// Art-Net 4 field layout exactly; fields this package does not
// interpret are carried as raw bytes so a decoded reply re-encodes
// byte for byte.
type PollReply struct {
	// Address is the node's IPv4 address.
	Address netip.Addr

	// Port is the node's UDP port, DefaultPort on compliant nodes.
	Port uint16

	// Version is the node's firmware revision.
	Version [2]byte

	// PortAddress holds the NetSwitch and SubSwitch halves of the
	// node's 15-bit port address; the low nibbles live in SwIn and
	// SwOut.
	PortAddress [2]byte

	// Oem identifies the equipment vendor and feature set.
	Oem [2]byte

	// UbeaVersion is the UBEA firmware version, zero if unprogrammed.
	UbeaVersion byte

	// Status1 is the general status register.
	Status1 byte

	// EstaCode is the ESTA manufacturer code.
	EstaCode uint16

	// ShortName is a NUL-terminated name of up to 17 characters.
	ShortName [18]byte

	// LongName is a NUL-terminated name of up to 63 characters.
	LongName [64]byte

	// NodeReport is a textual status report, formatted as
	// "#xxxx [yyyy..] zzzzz...".
	NodeReport [64]byte

	// NumPorts is the node's input/output port count, 0-4.
	NumPorts [2]byte

	// PortTypes describes the operation and protocol of each channel.
	PortTypes [4]byte

	// GoodInput and GoodOutput report per-port input/output status.
	GoodInput  [4]byte
	GoodOutput [4]byte

	// SwIn and SwOut carry bits 3-0 of each port's port address.
	SwIn  [4]byte
	SwOut [4]byte

	SwVideo  byte
	SwMacro  byte
	SwRemote byte

	// Spare is transmitted as zero.
	Spare [3]byte

	// Style is the equipment style code of the device.
	Style byte

	// Mac is the node's MAC address, zero if unknown.
	Mac [6]byte

	// BindIP is the root device's IP for modular products.
	BindIP [4]byte

	// BindIndex orders bound devices; 1 is the root device.
	BindIndex byte

	Status2 byte

	// Filler is transmitted as zero, reserved for expansion.
	Filler [26]byte
}

// NewPollReply returns a zero-valued reply listening on DefaultPort,
// per the convention that unused fields transmit as zero.
func NewPollReply() *PollReply {
	return &PollReply{
		Address: netip.AddrFrom4([4]byte{}),
		Port:    DefaultPort,
	}
}

func (r *PollReply) Opcode() Opcode { return OpPollReply }

// ShortNameString returns ShortName up to its NUL terminator.
func (r *PollReply) ShortNameString() string { return cstring(r.ShortName[:]) }

// LongNameString returns LongName up to its NUL terminator.
func (r *PollReply) LongNameString() string { return cstring(r.LongName[:]) }

// NodeReportString returns NodeReport up to its NUL terminator.
func (r *PollReply) NodeReportString() string { return cstring(r.NodeReport[:]) }

// PortCount returns NumPorts as an integer.
func (r *PollReply) PortCount() int {
	return int(r.NumPorts[0])<<8 | int(r.NumPorts[1])
}

func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func (r *PollReply) marshalBody(buf *bytes.Buffer) error {
	if !r.Address.Is4() {
		return &FieldError{Field: "Address", Err: fmt.Errorf("not an IPv4 address: %v", r.Address)}
	}
	ip := r.Address.As4()
	buf.Write(ip[:])
	putUint16LE(buf, r.Port)
	buf.Write(r.Version[:])
	buf.Write(r.PortAddress[:])
	buf.Write(r.Oem[:])
	buf.WriteByte(r.UbeaVersion)
	buf.WriteByte(r.Status1)
	putUint16LE(buf, r.EstaCode)
	buf.Write(r.ShortName[:])
	buf.Write(r.LongName[:])
	buf.Write(r.NodeReport[:])
	buf.Write(r.NumPorts[:])
	buf.Write(r.PortTypes[:])
	buf.Write(r.GoodInput[:])
	buf.Write(r.GoodOutput[:])
	buf.Write(r.SwIn[:])
	buf.Write(r.SwOut[:])
	buf.WriteByte(r.SwVideo)
	buf.WriteByte(r.SwMacro)
	buf.WriteByte(r.SwRemote)
	buf.Write(r.Spare[:])
	buf.WriteByte(r.Style)
	buf.Write(r.Mac[:])
	buf.Write(r.BindIP[:])
	buf.WriteByte(r.BindIndex)
	buf.WriteByte(r.Status2)
	buf.Write(r.Filler[:])
	return nil
}

func decodePollReply(c *cursor) (Command, error) {
	r := &PollReply{}
	var ip [4]byte
	if err := c.readInto(ip[:]); err != nil {
		return nil, &FieldError{Field: "Address", Err: err}
	}
	r.Address = netip.AddrFrom4(ip)
	var err error
	if r.Port, err = c.readUint16LE(); err != nil {
		return nil, &FieldError{Field: "Port", Err: err}
	}
	if err = c.readInto(r.Version[:]); err != nil {
		return nil, &FieldError{Field: "Version", Err: err}
	}
	if err = c.readInto(r.PortAddress[:]); err != nil {
		return nil, &FieldError{Field: "PortAddress", Err: err}
	}
	if err = c.readInto(r.Oem[:]); err != nil {
		return nil, &FieldError{Field: "Oem", Err: err}
	}
	if r.UbeaVersion, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "UbeaVersion", Err: err}
	}
	if r.Status1, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Status1", Err: err}
	}
	if r.EstaCode, err = c.readUint16LE(); err != nil {
		return nil, &FieldError{Field: "EstaCode", Err: err}
	}
	if err = c.readInto(r.ShortName[:]); err != nil {
		return nil, &FieldError{Field: "ShortName", Err: err}
	}
	if err = c.readInto(r.LongName[:]); err != nil {
		return nil, &FieldError{Field: "LongName", Err: err}
	}
	if err = c.readInto(r.NodeReport[:]); err != nil {
		return nil, &FieldError{Field: "NodeReport", Err: err}
	}
	if err = c.readInto(r.NumPorts[:]); err != nil {
		return nil, &FieldError{Field: "NumPorts", Err: err}
	}
	if err = c.readInto(r.PortTypes[:]); err != nil {
		return nil, &FieldError{Field: "PortTypes", Err: err}
	}
	if err = c.readInto(r.GoodInput[:]); err != nil {
		return nil, &FieldError{Field: "GoodInput", Err: err}
	}
	if err = c.readInto(r.GoodOutput[:]); err != nil {
		return nil, &FieldError{Field: "GoodOutput", Err: err}
	}
	if err = c.readInto(r.SwIn[:]); err != nil {
		return nil, &FieldError{Field: "SwIn", Err: err}
	}
	if err = c.readInto(r.SwOut[:]); err != nil {
		return nil, &FieldError{Field: "SwOut", Err: err}
	}
	if r.SwVideo, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "SwVideo", Err: err}
	}
	if r.SwMacro, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "SwMacro", Err: err}
	}
	if r.SwRemote, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "SwRemote", Err: err}
	}
	if err = c.readInto(r.Spare[:]); err != nil {
		return nil, &FieldError{Field: "Spare", Err: err}
	}
	if r.Style, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Style", Err: err}
	}
	if err = c.readInto(r.Mac[:]); err != nil {
		return nil, &FieldError{Field: "Mac", Err: err}
	}
	if err = c.readInto(r.BindIP[:]); err != nil {
		return nil, &FieldError{Field: "BindIP", Err: err}
	}
	if r.BindIndex, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "BindIndex", Err: err}
	}
	if r.Status2, err = c.readByte(); err != nil {
		return nil, &FieldError{Field: "Status2", Err: err}
	}
	if err = c.readInto(r.Filler[:]); err != nil {
		return nil, &FieldError{Field: "Filler", Err: err}
	}
	return r, nil
}
