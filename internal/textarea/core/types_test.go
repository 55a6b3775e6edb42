package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		want    Color
		wantErr bool
	}{
		{"#ffffff", Color{255, 255, 255, 255}, false},
		{"000000", Color{0, 0, 0, 255}, false},
		{"#f00", Color{255, 0, 0, 255}, false},
		{"#11223344", Color{0x11, 0x22, 0x33, 0x44}, false},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ColorFromHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q): expected error, got %v", tt.hex, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q): unexpected error %v", tt.hex, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ColorFromHex(%q): expected %v, got %v", tt.hex, got, tt.want)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := ColorFromRGB(0xab, 0xcd, 0xef)
	got, err := ColorFromHex(c.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != c {
		t.Errorf("expected %v, got %v", c, got)
	}
}

func TestLineSpan(t *testing.T) {
	l := Line{Start: 10, Length: 5}

	if l.End() != 15 {
		t.Errorf("expected end 15, got %d", l.End())
	}
	if !l.Contains(10) {
		t.Error("line should contain its start offset")
	}
	if !l.Contains(14) {
		t.Error("line should contain its last offset")
	}
	if l.Contains(15) {
		t.Error("line should not contain its end offset")
	}
	if l.Contains(9) {
		t.Error("line should not contain offsets before start")
	}
}
