package engo

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestNewAssetManager(t *testing.T) {
	am := NewAssetManager()
	if am == nil {
		t.Fatal("NewAssetManager() returned nil")
	}
	if am.face == nil {
		t.Error("face not initialized")
	}
	if am.Cached() != 0 {
		t.Errorf("cache should start empty, got %d entries", am.Cached())
	}
}

func TestTextImage(t *testing.T) {
	face := basicfont.Face7x13
	tests := []struct {
		name       string
		text       string
		wantWidth  int
		wantHeight int
	}{
		{"single line", "HIT!", 4 * 7, 13},
		{"two lines", "ab\nlonger", 6 * 7, 2 * 13},
		{"empty", "", 1, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := TextImage(face, tt.text)
			b := img.Bounds()
			if b.Dx() != tt.wantWidth || b.Dy() != tt.wantHeight {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestTextImage_DrawsOpaquePixels(t *testing.T) {
	img := TextImage(basicfont.Face7x13, "M")

	var lit int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			lit++
			if r := img.Pix[i-3]; r != 0xff {
				t.Fatalf("text pixel red = %d, want white", r)
			}
		}
	}
	if lit == 0 {
		t.Error("no glyph pixels drawn")
	}
}
