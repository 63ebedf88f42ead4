package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeImage decodes an embedded image without creating a GPU texture.
func DecodeImage(path string) (image.Image, error) {
	clean := cleanAssetPath(path)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	return img, nil
}

// Loader caches images by path. A failed load is logged once and leaves the
// image nil so callers can fall back to placeholder drawing.
type Loader struct {
	load     func(string) (*ebiten.Image, error)
	images   map[string]*ebiten.Image
	failures []string
}

func NewLoader() *Loader {
	return &Loader{load: LoadImage, images: make(map[string]*ebiten.Image)}
}

// NewLoaderFunc builds a Loader over a custom load function.
func NewLoaderFunc(load func(string) (*ebiten.Image, error)) *Loader {
	return &Loader{load: load, images: make(map[string]*ebiten.Image)}
}

func (l *Loader) Image(path string) *ebiten.Image {
	if l == nil || path == "" {
		return nil
	}
	if img, ok := l.images[path]; ok {
		return img
	}
	img, err := l.load(path)
	if err != nil {
		log.Error("sprite unavailable", "path", path, "err", err)
		l.failures = append(l.failures, path)
		img = nil
	}
	l.images[path] = img
	return img
}

// Failures lists the paths that could not be loaded, in load order.
func (l *Loader) Failures() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.failures...)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
