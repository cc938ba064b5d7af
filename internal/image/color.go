package imagepkg

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// parseHexColor accepts #rgb, #rrggbb and #rrggbbaa. An empty string is
// transparent and returns nil.
func parseHexColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return nil, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
