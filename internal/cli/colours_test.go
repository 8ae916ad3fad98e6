package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tonal-dev/tonal/internal/colour"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    colour.RGB
		wantErr bool
	}{
		{
			name:  "hex with hash",
			input: "#0078d7",
			want:  colour.RGB{R: 0, G: 120, B: 215},
		},
		{
			name:  "hex shorthand",
			input: "#fff",
			want:  colour.RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "decimal triple",
			input: "32,32,32",
			want:  colour.RGB{R: 32, G: 32, B: 32},
		},
		{
			name:  "decimal triple with spaces",
			input: "255, 120, 0",
			want:  colour.RGB{R: 255, G: 120, B: 0},
		},
		{
			name:    "channel out of range",
			input:   "256,0,0",
			wantErr: true,
		},
		{
			name:    "negative channel",
			input:   "-1,0,0",
			wantErr: true,
		},
		{
			name:    "too few channels",
			input:   "12,34",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not-a-colour",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColour(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseColour(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseColour(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRequiredRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		textSize float64
		bold     bool
		ui       bool
		want     float64
	}{
		{
			name: "default is normal text",
			want: 4.5,
		},
		{
			name:  "explicit ratio wins",
			ratio: 7.0,
			ui:    true,
			want:  7.0,
		},
		{
			name:     "text size applies the text rule",
			textSize: 18,
			want:     3.0,
		},
		{
			name:     "bold lowers the large-text boundary",
			textSize: 14,
			bold:     true,
			want:     3.0,
		},
		{
			name: "ui flag uses the element threshold",
			ui:   true,
			want: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requiredRatio(tt.ratio, tt.textSize, tt.bold, tt.ui)
			if got != tt.want {
				t.Errorf("requiredRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatRamp(t *testing.T) {
	base := colour.RGB{R: 0, G: 120, B: 215}
	ramp := []colour.RGB{
		{R: 100, G: 180, B: 255},
		{R: 140, G: 200, B: 255},
	}

	t.Run("hex", func(t *testing.T) {
		out, err := formatRamp(base, colour.DarkModeBackground, true, ramp, "hex", false)
		if err != nil {
			t.Fatalf("formatRamp returned error: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 2 || lines[0] != "#64b4ff" || lines[1] != "#8cc8ff" {
			t.Errorf("hex output = %q", out)
		}
	})

	t.Run("rgb", func(t *testing.T) {
		out, err := formatRamp(base, colour.DarkModeBackground, true, ramp, "rgb", false)
		if err != nil {
			t.Fatalf("formatRamp returned error: %v", err)
		}
		if !strings.Contains(out, "rgb(100, 180, 255)") {
			t.Errorf("rgb output = %q", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := formatRamp(base, colour.DarkModeBackground, true, ramp, "json", false)
		if err != nil {
			t.Fatalf("formatRamp returned error: %v", err)
		}
		var decoded rampJSON
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("json output does not parse: %v", err)
		}
		if decoded.Base.Hex != base.Hex() {
			t.Errorf("json base = %q, want %q", decoded.Base.Hex, base.Hex())
		}
		if !decoded.DarkMode || len(decoded.Steps) != 2 {
			t.Errorf("json shape wrong: %+v", decoded)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := formatRamp(base, colour.DarkModeBackground, true, ramp, "yaml", false); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}
