package artnet

import (
	"testing"
)

func TestTrigger_UnknownKeySurvivesRoundTrip(t *testing.T) {
	// TriggerKey is an open set: vendor-specific keys pass through
	// decode and encode untouched.
	trigger := NewTrigger()
	trigger.Key = TriggerKey(0xC8)

	encoded, err := Marshal(trigger)
	if err != nil {
		t.Fatalf("Marshal() returned error: %v", err)
	}

	decoded, err := Unmarshal(encoded)
	if err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}

	got := decoded.(*Trigger)
	if got.Key != TriggerKey(0xC8) {
		t.Errorf("Key = %d, want 200", got.Key)
	}
}

func TestTrigger_Defaults(t *testing.T) {
	trigger := NewTrigger()
	if trigger.Version != ProtocolVersion {
		t.Errorf("Version = %v, want %v", trigger.Version, ProtocolVersion)
	}
	if trigger.OemHi != 0xFF || trigger.OemLo != 0xFF {
		t.Errorf("OEM filter = %02X %02X, want FF FF (all nodes)", trigger.OemHi, trigger.OemLo)
	}
	if trigger.Key != TriggerKeyShow {
		t.Errorf("Key = %v, want Show", trigger.Key)
	}
}

func TestTrigger_WireSize(t *testing.T) {
	buf, err := Marshal(NewTrigger())
	if err != nil {
		t.Fatalf("Marshal() returned error: %v", err)
	}
	// 10-byte envelope plus the fixed 520-byte body.
	if len(buf) != 530 {
		t.Errorf("encoded size = %d, want 530", len(buf))
	}
}

func TestTriggerKey_String(t *testing.T) {
	tests := []struct {
		key  TriggerKey
		want string
	}{
		{TriggerKeyAscii, "Ascii"},
		{TriggerKeyMacro, "Macro"},
		{TriggerKeySoft, "Soft"},
		{TriggerKeyShow, "Show"},
		{TriggerKey(200), "TriggerKey(200)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("TriggerKey(%d).String() = %q, want %q", uint8(tt.key), got, tt.want)
		}
	}
}
