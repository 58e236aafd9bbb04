package artnet

import (
	"bytes"
	"errors"
	"testing"
)

func TestDMXData_Padding(t *testing.T) {
	tests := []struct {
		name    string
		data    DMXData
		want    []byte
		wantErr bool
	}{
		{"single channel pads to two", DMXData{0xFF}, []byte{0xFF, 0x00}, false},
		{"even payload unchanged", DMXData{1, 2, 3, 4}, []byte{1, 2, 3, 4}, false},
		{"odd payload gains one zero", DMXData{1, 2, 3}, []byte{1, 2, 3, 0}, false},
		{"full frame unchanged", make(DMXData, 512), make([]byte, 512), false},
		{"empty payload rejected", DMXData{}, nil, true},
		{"oversized payload rejected", make(DMXData, 513), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := tt.data.encodeTo(&buf)
			if tt.wantErr {
				if err == nil {
					t.Fatal("encodeTo() expected error, got nil")
				}
				var rangeErr *RangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("expected *RangeError, got %T: %v", err, err)
				}
				if buf.Len() != 0 {
					t.Errorf("invalid payload wrote %d bytes, want 0", buf.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("encodeTo() returned error: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Errorf("encodeTo() = % X, want % X", buf.Bytes(), tt.want)
			}
		})
	}
}

func TestDMXData_PaddedLen(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 2},
		{2, 2},
		{3, 4},
		{511, 512},
		{512, 512},
	}
	for _, tt := range tests {
		if got := make(DMXData, tt.n).PaddedLen(); got != tt.want {
			t.Errorf("PaddedLen() of %d channels = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestOutput_LengthFieldIsBigEndianAndComputed(t *testing.T) {
	output := NewOutput(make(DMXData, 512))
	// The stored field must never reach the wire; the encoder derives
	// the length from the payload alone.
	output.Length = 0xAAAA

	buf, err := Marshal(output)
	if err != nil {
		t.Fatalf("Marshal() returned error: %v", err)
	}

	// Length sits at offset 16-17 of the packet, big-endian.
	if buf[16] != 0x02 || buf[17] != 0x00 {
		t.Errorf("length bytes = %02X %02X, want 02 00", buf[16], buf[17])
	}

	output = NewOutput(DMXData{0xFF})
	buf, err = Marshal(output)
	if err != nil {
		t.Fatalf("Marshal() returned error: %v", err)
	}
	if buf[16] != 0x00 || buf[17] != 0x02 {
		t.Errorf("length bytes = %02X %02X, want 00 02", buf[16], buf[17])
	}
}

func TestOutput_EmptyDataFailsBeforeEncoding(t *testing.T) {
	output := NewOutput(nil)

	_, err := Marshal(output)
	if err == nil {
		t.Fatal("Marshal() expected error for empty payload, got nil")
	}

	var pktErr *PacketError
	if !errors.As(err, &pktErr) {
		t.Fatalf("expected *PacketError, got %T: %v", err, err)
	}
	if pktErr.Name != "Output" {
		t.Errorf("PacketError.Name = %q, want %q", pktErr.Name, "Output")
	}
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *RangeError in chain, got %v", err)
	}
}

func TestOutput_Defaults(t *testing.T) {
	output := NewOutput(DMXData{1})
	if output.Version != ProtocolVersion {
		t.Errorf("Version = %v, want %v", output.Version, ProtocolVersion)
	}
	if output.PortAddress != 1 {
		t.Errorf("PortAddress = %d, want 1", output.PortAddress)
	}
	if output.Sequence != 0 {
		t.Errorf("Sequence = %d, want 0 (sequencing disabled)", output.Sequence)
	}
}

func TestOutput_DecodePreservesWireLengthField(t *testing.T) {
	// The decoded Length reports what the wire said even when it
	// disagrees with the payload; re-encoding recomputes it.
	buf := []byte{
		'A', 'r', 't', '-', 'N', 'e', 't', 0x00,
		0x00, 0x50,
		0x00, 0x0E,
		0x00, 0x00,
		0x01, 0x00,
		0x01, 0xFF, // nonsense length
		0x10, 0x20,
	}

	cmd, err := Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}
	output := cmd.(*Output)
	if output.Length != 0x01FF {
		t.Errorf("Length = 0x%04X, want 0x01FF", output.Length)
	}

	reencoded, err := Marshal(output)
	if err != nil {
		t.Fatalf("Marshal() returned error: %v", err)
	}
	if reencoded[16] != 0x00 || reencoded[17] != 0x02 {
		t.Errorf("re-encoded length bytes = %02X %02X, want 00 02", reencoded[16], reencoded[17])
	}
}
