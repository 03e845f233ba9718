package draw

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontDescriptor names a face: a family and a pixel size.
type FontDescriptor struct {
	Family string
	Size   float64
}

// DefaultFont is the HUD face.
var DefaultFont = FontDescriptor{Family: "Go Regular", Size: 18}

// fontFamilies maps the families the cache can build to embedded TrueType data.
var fontFamilies = map[string][]byte{
	"Go Regular": goregular.TTF,
	"Go Mono":    gomono.TTF,
}

// FontCache lazily builds and keeps a single face.
type FontCache struct {
	desc FontDescriptor
	face *text.GoXFace
}

// NewFontCache returns a cache for desc. Nothing is loaded until Face is
// first called.
func NewFontCache(desc FontDescriptor) *FontCache {
	return &FontCache{desc: desc}
}

// Descriptor returns the face the cache was created for.
func (fc *FontCache) Descriptor() FontDescriptor {
	return fc.desc
}

// Loaded reports whether the face has been built.
func (fc *FontCache) Loaded() bool {
	return fc.face != nil
}

// Face returns the cached face, building it on first use. A font that cannot
// be loaded is a broken build, not a runtime condition, so it panics.
func (fc *FontCache) Face() *text.GoXFace {
	if fc.face == nil {
		face, err := loadFace(fc.desc)
		if err != nil {
			panic(err)
		}
		fc.face = face
	}
	return fc.face
}

// Close releases the underlying face. The cache may be reused afterwards;
// the next Face call rebuilds it.
func (fc *FontCache) Close() error {
	if fc.face == nil {
		return nil
	}
	err := fc.face.UnsafeInternal().Close()
	fc.face = nil
	return err
}

func loadFace(desc FontDescriptor) (*text.GoXFace, error) {
	ttf, ok := fontFamilies[desc.Family]
	if !ok {
		return nil, fmt.Errorf("font family %q not available", desc.Family)
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", desc.Family, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    desc.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %q: %w", desc.Family, err)
	}
	return text.NewGoXFace(face), nil
}
