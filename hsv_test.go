package artifact

import "testing"

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSV
	}{
		{"black", RGB{0, 0, 0}, HSV{0, 0, 0}},
		{"white", RGB{255, 255, 255}, HSV{0, 0, 255}},
		{"gray", RGB{128, 128, 128}, HSV{0, 0, 128}},
		{"red", RGB{255, 0, 0}, HSV{0, 255, 255}},
		{"green", RGB{0, 255, 0}, HSV{85, 255, 255}},
		{"blue", RGB{0, 0, 255}, HSV{170, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHSV(tt.in); got != tt.want {
				t.Errorf("RGBToHSV(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHSVRoundTripGray(t *testing.T) {
	for v := 0; v < 256; v += 17 {
		c := RGB{uint8(v), uint8(v), uint8(v)}
		if got := RGBToHSV(c).RGB(); got != c {
			t.Errorf("round trip %v = %v", c, got)
		}
	}
}

func TestHSVRoundTripClose(t *testing.T) {
	colors := []RGB{{200, 120, 180}, {90, 40, 160}, {250, 240, 245}, {12, 200, 30}}
	for _, c := range colors {
		got := RGBToHSV(c).RGB()
		for i := range c {
			d := int(got[i]) - int(c[i])
			if d < -8 || d > 8 {
				t.Errorf("round trip %v = %v", c, got)
				break
			}
		}
	}
}

func TestImageHSVRoundTrip(t *testing.T) {
	img := NewUniform(4, 3, RGB{100, 100, 100})
	back := FromHSV(4, 3, img.ToHSV())
	if !back.Equal(img) {
		t.Error("gray image changed after HSV round trip")
	}
}

func TestScaleChannel(t *testing.T) {
	tests := []struct {
		v    uint8
		f    float64
		want uint8
	}{
		{100, 1, 100},
		{100, 0.5, 50},
		{100, 1.99, 199},
		{200, 2, 255},
		{10, -1, 0},
	}
	for _, tt := range tests {
		if got := scaleChannel(tt.v, tt.f); got != tt.want {
			t.Errorf("scaleChannel(%d, %v) = %d, want %d", tt.v, tt.f, got, tt.want)
		}
	}
}
