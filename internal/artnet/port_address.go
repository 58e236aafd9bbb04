package artnet

import "fmt"

// MaxPortAddress is the highest valid port address (15 bits).
const MaxPortAddress = 0x7FFF

// PortAddress is the 15-bit address (0-32767) identifying a DMX
// universe. It splits into a 7-bit net, a 4-bit sub-net and a 4-bit
// universe number. Converting from a byte is always safe; use
// NewPortAddress for anything wider.
type PortAddress uint16

// NewPortAddress range-checks v and returns it as a PortAddress.
func NewPortAddress(v int) (PortAddress, error) {
	if v < 0 || v > MaxPortAddress {
		return 0, &RangeError{What: "port address", Value: v, Min: 0, Max: MaxPortAddress}
	}
	return PortAddress(v), nil
}

// Net returns bits 14-8, the network switch of the address.
func (p PortAddress) Net() uint8 { return uint8(p >> 8) }

// SubNet returns bits 7-4, the sub-net switch of the address.
func (p PortAddress) SubNet() uint8 { return uint8(p>>4) & 0x0F }

// Universe returns bits 3-0, the universe number within the sub-net.
func (p PortAddress) Universe() uint8 { return uint8(p) & 0x0F }

func (p PortAddress) String() string {
	return fmt.Sprintf("%d", uint16(p))
}

// decodePortAddress reads a little-endian port address and rejects
// wire values with the top bit set rather than truncating them.
func decodePortAddress(c *cursor) (PortAddress, error) {
	v, err := c.readUint16LE()
	if err != nil {
		return 0, err
	}
	return NewPortAddress(int(v))
}
