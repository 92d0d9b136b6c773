package artifact

import "testing"

func TestAlphaByte(t *testing.T) {
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{0, 0},
		{0.75, 191},
		{0.5, 127},
		{1, 255},
		{1.5, 255},
		{-0.2, 0},
	}
	for _, tt := range tests {
		if got := alphaByte(tt.alpha); got != tt.want {
			t.Errorf("alphaByte(%v) = %d, want %d", tt.alpha, got, tt.want)
		}
	}
}

func TestMaskSetRegionOverwrites(t *testing.T) {
	r := NewRegion(4, 1)
	r.data[1], r.data[2] = true, true
	m := MaskFromRegion(r, 1)

	rim := NewRegion(4, 1)
	rim.data[2], rim.data[3] = true, true
	m.SetRegion(rim, 0.75)

	want := []uint8{0, 255, 191, 191}
	for x, w := range want {
		if got := m.At(x, 0); got != w {
			t.Errorf("At(%d) = %d, want %d", x, got, w)
		}
	}
}

func TestMaskBounds(t *testing.T) {
	m := NewMask(3, 2)
	m.Set(-1, 0, 9)
	m.Set(3, 1, 9)
	m.Set(1, 1, 9)
	if got := m.At(1, 1); got != 9 {
		t.Errorf("At(1,1) = %d, want 9", got)
	}
	if got := m.At(5, 5); got != 0 {
		t.Errorf("At outside = %d, want 0", got)
	}
	sum := 0
	for _, v := range m.Data() {
		sum += int(v)
	}
	if sum != 9 {
		t.Errorf("out-of-bounds Set wrote data: sum = %d", sum)
	}

	c := m.Clone()
	c.Fill(1)
	if m.At(0, 0) != 0 {
		t.Error("Fill on clone changed original")
	}
}
