package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/artifact"
)

// Identities derives the seeding identities of a tile from its path. Tiles
// are expected under <slideParent>/<slideDir>/<tile>.<ext>: the tile
// identity is slideParent/slideDir/tile and the slide identity is
// slideParent/slideDir. Components missing from short paths are skipped.
// The separator is always "/" so seeds agree across platforms.
func Identities(path string) (tile, slide string) {
	dir, name := split(path)
	parent, slideDir := split(dir)
	_, slideParent := split(parent)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	slide = joinIdentity(slideParent, slideDir)
	tile = joinIdentity(slideParent, slideDir, stem)
	return tile, slide
}

// Identity returns the tile or slide identity of path.
func Identity(path string, perTile bool) string {
	tile, slide := Identities(path)
	if perTile {
		return tile
	}
	return slide
}

// Seed derives the generator seed for the tile at path.
func Seed(path string, t artifact.Type, perTile bool, offset int64) (uint32, string) {
	id := Identity(path, perTile)
	return artifact.DeriveSeed(id, t, offset), id
}

// OutputName returns <stem>_<suffix>.<ext> for the input path. An empty ext
// keeps the input extension.
func OutputName(input string, t artifact.Type, ext string) string {
	_, name := split(input)
	inExt := filepath.Ext(name)
	stem := strings.TrimSuffix(name, inExt)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = strings.TrimPrefix(inExt, ".")
	}
	return stem + "_" + t.Suffix() + "." + ext
}

// split separates the last path element, dropping trailing separators
// from the head.
func split(p string) (head, tail string) {
	i := len(p) - 1
	for i >= 0 && !os.IsPathSeparator(p[i]) {
		i--
	}
	head, tail = p[:i+1], p[i+1:]
	if trimmed := strings.TrimRightFunc(head, isSep); trimmed != "" {
		head = trimmed
	}
	return head, tail
}

func isSep(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}

func joinIdentity(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}
