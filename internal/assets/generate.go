package assets

import (
	"bytes"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"

	imagepkg "github.com/youruser/nfdog/internal/image"
)

// Sizes of the generated placeholders; they match the slots they fill.
const (
	defaultW, defaultH = 1200, 630
	avatarSize         = 200
	bannerW, bannerH   = 1200, 400
)

// Generate paints the built-in asset set. The font is Go Bold.
func Generate() (*Assets, error) {
	def, err := encodeJPEG(defaultImage())
	if err != nil {
		return nil, errors.Wrap(err, "default image")
	}
	avatar, err := encodeJPEG(avatarImage())
	if err != nil {
		return nil, errors.Wrap(err, "fallback avatar")
	}
	banner, err := encodeJPEG(bannerImage())
	if err != nil {
		return nil, errors.Wrap(err, "fallback banner")
	}
	return &Assets{
		Font:           gobold.TTF,
		DefaultImage:   def,
		FallbackAvatar: avatar,
		FallbackBanner: banner,
	}, nil
}

func defaultImage() image.Image {
	dc := gg.NewContext(defaultW, defaultH)
	dc.SetHexColor(BrandColor)
	dc.Clear()

	// Soft lighter disc behind the mark.
	dc.SetRGBA(1, 1, 1, 0.12)
	dc.DrawCircle(defaultW/2, defaultH/2, 240)
	dc.Fill()

	if mark, err := imagepkg.RasterizeSVG(LogoSVG, 420, 420); err == nil {
		dc.DrawImageAnchored(mark, defaultW/2, defaultH/2, 0.5, 0.5)
	}
	return dc.Image()
}

func avatarImage() image.Image {
	dc := gg.NewContext(avatarSize, avatarSize)
	dc.SetHexColor("#E5E7EB")
	dc.Clear()

	dc.SetHexColor("#9CA3AF")
	dc.DrawCircle(avatarSize/2, 78, 38)
	dc.Fill()
	dc.DrawEllipse(avatarSize/2, 196, 72, 64)
	dc.Fill()
	return dc.Image()
}

func bannerImage() image.Image {
	dc := gg.NewContext(bannerW, bannerH)
	grad := gg.NewLinearGradient(0, 0, bannerW, bannerH)
	grad.AddColorStop(0, hex(BrandColor))
	grad.AddColorStop(1, hex("#FFC2A8"))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, bannerW, bannerH)
	dc.Fill()
	return dc.Image()
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hex(s string) color.Color {
	v, _ := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
