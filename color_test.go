package udfc

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"yellow", Yellow, false},
		{"Light Gray", LightGray, false},
		{"#00F", color.NRGBA{0, 0, 255, 255}, false},
		{"ff8000", color.NRGBA{255, 128, 0, 255}, false},
		{"#FF800080", color.NRGBA{255, 128, 0, 128}, false},
		{"#12345", color.NRGBA{}, true},
		{"#GG0000", color.NRGBA{}, true},
		{"mauve", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatColor(t *testing.T) {
	tests := []struct {
		c    color.NRGBA
		want string
	}{
		{Yellow, "#FFFF00"},
		{color.NRGBA{1, 2, 3, 4}, "#01020304"},
	}
	for _, tt := range tests {
		if got := FormatColor(tt.c); got != tt.want {
			t.Errorf("FormatColor(%v) = %q, want %q", tt.c, got, tt.want)
		}
		back, err := ParseColor(tt.want)
		if err != nil || back != tt.c {
			t.Errorf("ParseColor(%q) = %v, %v", tt.want, back, err)
		}
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-3, 0},
		{0, 0},
		{127.4, 127},
		{127.5, 128},
		{300, 255},
	}
	for _, tt := range tests {
		if got := clamp255(tt.in); got != tt.want {
			t.Errorf("clamp255(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
