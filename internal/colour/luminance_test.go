package colour

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestLinearizeChannel(t *testing.T) {
	tests := []struct {
		name string
		v    uint8
		want float64
	}{
		{
			name: "zero is zero",
			v:    0,
			want: 0.0,
		},
		{
			name: "low values use the linear segment",
			v:    8, // 8/255 = 0.0314 <= 0.03928
			want: (8.0 / 255.0) / 12.92,
		},
		{
			name: "high values use the power segment",
			v:    128,
			want: math.Pow((128.0/255.0+0.055)/1.055, 2.4),
		},
		{
			name: "full scale is one",
			v:    255,
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearizeChannel(tt.v)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("LinearizeChannel(%d) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestLinearizeChannelMatchesTable(t *testing.T) {
	// The lookup table must agree with the piecewise formula for every
	// possible channel value.
	for i := 0; i < 256; i++ {
		v := float64(i) / 255.0
		want := v / 12.92
		if v > 0.03928 {
			want = math.Pow((v+0.055)/1.055, 2.4)
		}
		if got := LinearizeChannel(uint8(i)); math.Abs(got-want) > tolerance {
			t.Fatalf("LinearizeChannel(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: 0.0,
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: 1.0,
		},
		{
			name: "pure red carries the red weight",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: 0.2126,
		},
		{
			name: "pure green carries the green weight",
			rgb:  RGB{R: 0, G: 255, B: 0},
			want: 0.7152,
		},
		{
			name: "pure blue carries the blue weight",
			rgb:  RGB{R: 0, G: 0, B: 255},
			want: 0.0722,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeLuminance(tt.rgb)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("RelativeLuminance(%v) = %v, want %v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name   string
		l1, l2 float64
		want   float64
	}{
		{
			name: "black vs white is maximum contrast",
			l1:   0.0,
			l2:   1.0,
			want: 21.0,
		},
		{
			name: "equal luminances give exactly one",
			l1:   0.4,
			l2:   0.4,
			want: 1.0,
		},
		{
			name: "mid grey vs black",
			l1:   0.2,
			l2:   0.0,
			want: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContrastRatio(tt.l1, tt.l2)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("ContrastRatio(%v, %v) = %v, want %v", tt.l1, tt.l2, got, tt.want)
			}
		})
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	luminances := []float64{0.0, 0.05, 0.18, 0.5, 0.73, 1.0}
	for _, l1 := range luminances {
		for _, l2 := range luminances {
			a := ContrastRatio(l1, l2)
			b := ContrastRatio(l2, l1)
			if a != b {
				t.Errorf("ContrastRatio(%v, %v) = %v but reversed = %v", l1, l2, a, b)
			}
			if a < 1.0 {
				t.Errorf("ContrastRatio(%v, %v) = %v, below 1", l1, l2, a)
			}
		}
	}
}

func TestIsCompliant(t *testing.T) {
	tests := []struct {
		name          string
		background    RGB
		foreground    RGB
		requiredRatio float64
		want          bool
	}{
		{
			name:       "black on white passes",
			background: White,
			foreground: Black,
			want:       true,
		},
		{
			name:       "black on black fails",
			background: Black,
			foreground: Black,
			want:       false,
		},
		{
			name:       "red on white fails normal text",
			background: White,
			foreground: RGB{R: 255, G: 0, B: 0},
			want:       false,
		},
		{
			name:          "red on white passes the large-text ratio",
			background:    White,
			foreground:    RGB{R: 255, G: 0, B: 0},
			requiredRatio: 3.0,
			want:          true,
		},
		{
			name:          "zero ratio defaults to 4.5",
			background:    White,
			foreground:    RGB{R: 118, G: 118, B: 118},
			requiredRatio: 0,
			want:          true, // #767676 is the canonical 4.54:1 grey
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsCompliant(tt.background, tt.foreground, tt.requiredRatio)
			if got != tt.want {
				t.Errorf("IsCompliant(%v, %v, %v) = %v, want %v",
					tt.background, tt.foreground, tt.requiredRatio, got, tt.want)
			}
		})
	}
}

func TestRequiredRatioForText(t *testing.T) {
	tests := []struct {
		name   string
		sizePt float64
		isBold bool
		want   float64
	}{
		{
			name:   "normal body text",
			sizePt: 12,
			want:   4.5,
		},
		{
			name:   "regular 18pt is large text",
			sizePt: 18,
			want:   3.0,
		},
		{
			name:   "regular 17pt is still normal text",
			sizePt: 17,
			want:   4.5,
		},
		{
			name:   "bold 14pt is large text",
			sizePt: 14,
			isBold: true,
			want:   3.0,
		},
		{
			name:   "regular 14pt is normal text",
			sizePt: 14,
			want:   4.5,
		},
		{
			name:   "bold 13pt is normal text",
			sizePt: 13,
			isBold: true,
			want:   4.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequiredRatioForText(tt.sizePt, tt.isBold)
			if got != tt.want {
				t.Errorf("RequiredRatioForText(%v, %v) = %v, want %v",
					tt.sizePt, tt.isBold, got, tt.want)
			}
		})
	}
}

func TestIsTextCompliant(t *testing.T) {
	// Red on white sits at ~4:1, between the two thresholds.
	red := RGB{R: 255, G: 0, B: 0}
	if IsTextCompliant(White, red, 12, false) {
		t.Error("red on white should fail as normal text")
	}
	if !IsTextCompliant(White, red, 18, false) {
		t.Error("red on white should pass as large text")
	}
	if !IsTextCompliant(White, red, 14, true) {
		t.Error("red on white should pass as bold 14pt text")
	}
}

func TestIsUIElementCompliant(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	if !IsUIElementCompliant(White, red, 0) {
		t.Error("red on white should pass the default 3:1 UI threshold")
	}
	if IsUIElementCompliant(White, red, 4.5) {
		t.Error("red on white should fail an explicit 4.5:1 threshold")
	}
}
