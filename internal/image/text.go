package imagepkg

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

const ellipsis = "…"

var defaultFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
})

// parseFont parses OpenType/TrueType bytes, or returns Go Bold for nil.
func parseFont(data []byte) (*opentype.Font, error) {
	if len(data) == 0 {
		return defaultFont()
	}
	return opentype.Parse(data)
}

// faces caches one face per size for a single render.
type faces struct {
	font   *opentype.Font
	bySize map[float64]font.Face
}

func newFaces(f *opentype.Font) *faces {
	return &faces{font: f, bySize: map[float64]font.Face{}}
}

func (fs *faces) get(size float64) (font.Face, error) {
	if face, ok := fs.bySize[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(fs.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	fs.bySize[size] = face
	return face, nil
}

func (fs *faces) close() {
	for _, face := range fs.bySize {
		face.Close()
	}
}

// Truncate shortens s so it fits in maxWidth pixels on one line, ending it
// with an ellipsis when anything was cut.
func Truncate(face font.Face, s string, maxWidth int) string {
	if font.MeasureString(face, s).Ceil() <= maxWidth {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := strings.TrimRightFunc(string(runes[:n]), unicode.IsSpace) + ellipsis
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			return candidate
		}
	}
	if font.MeasureString(face, ellipsis).Ceil() <= maxWidth {
		return ellipsis
	}
	return ""
}
