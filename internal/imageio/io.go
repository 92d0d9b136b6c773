// Package imageio loads and saves artifact images, choosing the codec from
// the file extension.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder

	"github.com/gogpu/artifact"
)

// ErrUnsupportedFormat is returned when the extension has no codec.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// JPEGQuality is the quality used when saving JPEG files.
const JPEGQuality = 75

// Format is an image container format.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	TIFF Format = "tiff"
	BMP  Format = "bmp"
	WebP Format = "webp"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads an image file. The content is sniffed, so the extension only
// needs to be accurate for Save.
func Load(path string) (*artifact.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes any registered format and converts it to RGB.
func Decode(r io.Reader) (*artifact.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return artifact.FromImage(img), nil
}

// WritableFormat is FormatOf restricted to formats Save can encode.
func WritableFormat(path string) (Format, error) {
	format, err := FormatOf(path)
	if err != nil {
		return "", err
	}
	if format == WebP {
		return "", fmt.Errorf("%w: webp encoding", ErrUnsupportedFormat)
	}
	return format, nil
}

// Save writes img to path in the format given by its extension. The image
// is encoded into a temporary file in the same directory and renamed into
// place, so a failed save never leaves a partial file at path.
func Save(path string, img *artifact.Image) (err error) {
	format, err := WritableFormat(path)
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = Encode(f, img, format); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("imageio: chmod file: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("imageio: rename file: %w", err)
	}
	return nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img *artifact.Image, format Format) error {
	src := img.ToNRGBA()
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, src)
	case JPEG:
		err = jpeg.Encode(w, src, &jpeg.Options{Quality: JPEGQuality})
	case TIFF:
		err = tiff.Encode(w, src, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		err = bmp.Encode(w, src)
	default:
		return fmt.Errorf("%w: %s encoding", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}
