package colour

import (
	"image/color"
	"math"
	"testing"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: "#ff0000",
		},
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: "#000000",
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: "#ffffff",
		},
		{
			name: "mixed",
			rgb:  RGB{R: 26, G: 43, B: 60},
			want: "#1a2b3c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "lowercase",
			input: "#1a2b3c",
			want:  RGB{R: 26, G: 43, B: 60},
		},
		{
			name:  "uppercase",
			input: "#FF8000",
			want:  RGB{R: 255, G: 128, B: 0},
		},
		{
			name:    "missing hash",
			input:   "1a2b3c",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "#abc1",
			wantErr: true,
		},
		{
			name:    "not hex",
			input:   "#zzzzzz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	hexes := []string{"#000000", "#ffffff", "#ff0000", "#7f7f7f", "#012345"}
	for _, hex := range hexes {
		rgb, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) unexpected error: %v", hex, err)
		}
		if got := rgb.Hex(); got != hex {
			t.Errorf("round trip of %q produced %q", hex, got)
		}
	}
}

func TestToRGB(t *testing.T) {
	got := ToRGB(color.RGBA{R: 12, G: 34, B: 56, A: 255})
	want := RGB{R: 12, G: 34, B: 56}
	if got != want {
		t.Errorf("ToRGB() = %+v, want %+v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want Vec3
	}{
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: Vec3{0, 0, 0},
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: Vec3{1, 1, 1},
		},
		{
			name: "mid grey",
			rgb:  RGB{R: 128, G: 128, B: 128},
			want: Vec3{128.0 / 255.0, 128.0 / 255.0, 128.0 / 255.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.rgb)
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("Normalize()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
				if got[i] < 0 || got[i] > 1 {
					t.Errorf("Normalize()[%d] = %v, outside [0, 1]", i, got[i])
				}
			}
		})
	}
}
