package artnet

import (
	"errors"
	"testing"
)

func TestNewPortAddress(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{256, false},
		{32767, false},
		{32768, true},
		{-1, true},
		{65535, true},
	}

	for _, tt := range tests {
		p, err := NewPortAddress(tt.value)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewPortAddress(%d) expected error, got nil", tt.value)
				continue
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("NewPortAddress(%d): expected *RangeError, got %T", tt.value, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewPortAddress(%d) returned error: %v", tt.value, err)
			continue
		}
		if int(p) != tt.value {
			t.Errorf("NewPortAddress(%d) = %d", tt.value, p)
		}
	}
}

func TestPortAddress_Split(t *testing.T) {
	// 0x7FFF is net 127, sub-net 15, universe 15.
	p := PortAddress(0x7FFF)
	if p.Net() != 127 || p.SubNet() != 15 || p.Universe() != 15 {
		t.Errorf("split of 0x7FFF = %d/%d/%d, want 127/15/15", p.Net(), p.SubNet(), p.Universe())
	}

	// 0x0123 is net 1, sub-net 2, universe 3.
	p = PortAddress(0x0123)
	if p.Net() != 1 || p.SubNet() != 2 || p.Universe() != 3 {
		t.Errorf("split of 0x0123 = %d/%d/%d, want 1/2/3", p.Net(), p.SubNet(), p.Universe())
	}
}

func TestTalkToMe_TruncatesUnknownBits(t *testing.T) {
	// 0xFF carries bit 0 and bits 5-7, none of which are defined.
	got := TalkToMeFromByte(0xFF)
	want := TalkToMeEmitChanges | TalkToMeDiagnostics | TalkToMeUnicastDiag | TalkToMeVLC
	if got != want {
		t.Errorf("TalkToMeFromByte(0xFF) = %08b, want %08b", got, want)
	}

	if TalkToMeFromByte(0x00) != 0 {
		t.Errorf("TalkToMeFromByte(0x00) = %08b, want 0", TalkToMeFromByte(0x00))
	}

	if !got.Has(TalkToMeDiagnostics) {
		t.Error("Has(TalkToMeDiagnostics) = false, want true")
	}
	if TalkToMe(0).Has(TalkToMeVLC) {
		t.Error("zero value Has(TalkToMeVLC) = true, want false")
	}
}
