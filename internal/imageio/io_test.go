package imageio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/artifact"
)

func testImage() *artifact.Image {
	img := artifact.NewImage(7, 5)
	for y := range 5 {
		for x := range 7 {
			img.SetRGB(x, y, artifact.RGB{uint8(x * 30), uint8(y * 50), uint8(x*y + 10)})
		}
	}
	return img
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a/b.png", PNG},
		{"x.JPG", JPEG},
		{"x.jpeg", JPEG},
		{"scan.tif", TIFF},
		{"scan.TIFF", TIFF},
		{"old.bmp", BMP},
		{"web.webp", WebP},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatOf("notes.txt"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatOf(notes.txt) err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveLoadLossless(t *testing.T) {
	dir := t.TempDir()
	img := testImage()
	for _, ext := range []string{"png", "tiff", "bmp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "tile."+ext)
			if err := Save(path, img); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !got.Equal(img) {
				t.Error("round trip changed pixels")
			}
		})
	}
}

func TestSaveLoadJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.jpg")
	img := artifact.NewUniform(16, 16, artifact.RGB{120, 120, 120})
	if err := Save(path, img); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Width() != 16 || got.Height() != 16 {
		t.Fatalf("size = %dx%d, want 16x16", got.Width(), got.Height())
	}
	c := got.RGBAt(8, 8)
	for _, v := range c {
		if v < 115 || v > 125 {
			t.Errorf("center = %v, want about 120", c)
			break
		}
	}
}

func TestSaveWebPUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.webp")
	err := Save(path, testImage())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("failed save left a file behind")
	}
}

func TestWritableFormat(t *testing.T) {
	if f, err := WritableFormat("a.tif"); err != nil || f != TIFF {
		t.Errorf("WritableFormat(a.tif) = %q, %v; want tiff", f, err)
	}
	if _, err := WritableFormat("a.webp"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("WritableFormat(a.webp) err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), PNG); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(testImage()) {
		t.Error("Decode changed pixels")
	}

	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Decode(garbage) succeeded")
	}
}

func TestSaveFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.png")
	if err := Save(path, artifact.NewImage(0, 0)); err == nil {
		t.Fatal("Save of a 0x0 image succeeded")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("failed save left %d file(s), first %q", len(entries), entries[0].Name())
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.png")
	if err := Save(path, artifact.NewUniform(4, 4, artifact.RGB{1, 2, 3})); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(path, testImage()); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(testImage()) {
		t.Error("second Save did not replace the file")
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), Format("gif")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}
