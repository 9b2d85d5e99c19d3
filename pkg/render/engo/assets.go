// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// maxCachedTexts bounds the text texture cache. The HUD changes while the
// user drags, so old strings are dropped wholesale once the cache fills.
const maxCachedTexts = 64

// TextSource turns strings into drawables
type TextSource interface {
	Text(s string) (common.Drawable, float32, float32)
}

// AssetManager rasterises text with the built-in bitmap face and caches the
// resulting textures. Textures are uploaded to the GPU, so Text must only
// be called from the engo update loop.
type AssetManager struct {
	face  font.Face
	texts map[string]cachedText
}

type cachedText struct {
	drawable      common.Drawable
	width, height float32
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		face:  basicfont.Face7x13,
		texts: make(map[string]cachedText),
	}
}

// Text returns a texture for s along with its size in pixels
func (am *AssetManager) Text(s string) (common.Drawable, float32, float32) {
	if cached, ok := am.texts[s]; ok {
		return cached.drawable, cached.width, cached.height
	}
	if len(am.texts) >= maxCachedTexts {
		am.texts = make(map[string]cachedText)
	}

	img := TextImage(am.face, s)
	bounds := img.Bounds()
	cached := cachedText{
		drawable: am.convertToEngoTexture(img),
		width:    float32(bounds.Dx()),
		height:   float32(bounds.Dy()),
	}
	am.texts[s] = cached
	return cached.drawable, cached.width, cached.height
}

// Cached returns how many strings currently have a texture
func (am *AssetManager) Cached() int {
	return len(am.texts)
}

// TextImage draws s in white on a transparent image sized to fit it. Each
// line of s becomes one row of text.
func TextImage(face font.Face, s string) *image.NRGBA {
	lines := strings.Split(s, "\n")
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	width := 1
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, lineHeight*len(lines)))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(0, ascent+i*lineHeight)
		d.DrawString(line)
	}
	return img
}

// convertToEngoTexture converts an image to an Engo-compatible texture
func (am *AssetManager) convertToEngoTexture(img *image.NRGBA) common.Drawable {
	texture := common.NewImageObject(img)
	return common.NewTextureSingle(texture)
}
