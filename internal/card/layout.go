package card

import (
	"github.com/youruser/nfdog/internal/assets"
	imagepkg "github.com/youruser/nfdog/internal/image"
)

// Every outcome renders on the same canvas.
const (
	Width  = 1200
	Height = 630
)

const (
	bannerHeight  = 400
	avatarSize    = 200
	avatarLeft    = 60
	avatarTop     = 300
	nameTop       = 515
	nameMaxWidth  = 880
	nameFontSize  = 48
	logoSize      = 112
	logoRight     = 64
	logoBottom    = 56
	qrGap         = 24
	qrPadding     = 8
	errorBG       = "#1a1a1a"
	avatarBorder  = 4
	placeholderBG = "#f3f4f6"
)

// Card is the resolved content of a name card. Empty Avatar or Banner means
// the fallback asset is shown.
type Card struct {
	Name   string
	Avatar string
	Banner string
	QRText string
}

// DefaultLayout is the card shown when no name was requested.
func DefaultLayout(a *assets.Assets) *imagepkg.Node {
	return &imagepkg.Node{Kind: imagepkg.KindBox, W: Width, H: Height, Children: []*imagepkg.Node{
		{Kind: imagepkg.KindImage, W: Width, H: Height, Src: a.DefaultImageURI()},
	}}
}

// CardLayout places banner, avatar, name and logo mark. Remote media carry
// the static asset as their fallback.
func CardLayout(c Card, a *assets.Assets) *imagepkg.Node {
	bannerFallback := a.FallbackBannerURI()
	avatarFallback := a.FallbackAvatarURI()

	logoX := Width - logoRight - logoSize
	logoY := Height - logoBottom - logoSize

	root := &imagepkg.Node{Kind: imagepkg.KindBox, W: Width, H: Height, Fill: "#ffffff", Children: []*imagepkg.Node{
		{Kind: imagepkg.KindBox, W: Width, H: bannerHeight, Fill: placeholderBG, Children: []*imagepkg.Node{
			{Kind: imagepkg.KindImage, W: Width, H: bannerHeight, Src: orDefault(c.Banner, bannerFallback), Fallback: bannerFallback},
		}},
		{
			Kind: imagepkg.KindBox, X: avatarLeft, Y: avatarTop, W: avatarSize, H: avatarSize,
			Circle: true, Fill: placeholderBG, BorderWidth: avatarBorder, BorderColor: "#ffffff",
			Children: []*imagepkg.Node{
				{Kind: imagepkg.KindImage, W: avatarSize, H: avatarSize, Src: orDefault(c.Avatar, avatarFallback), Fallback: avatarFallback},
			},
		},
		{
			Kind: imagepkg.KindText, X: avatarLeft, Y: nameTop, W: nameMaxWidth, H: 72,
			Text: c.Name, Size: nameFontSize, Color: "#000000", Ellipsis: true,
		},
		{Kind: imagepkg.KindBox, X: logoX, Y: logoY, W: logoSize, H: logoSize, Circle: true, Fill: assets.BrandColor, Children: []*imagepkg.Node{
			{Kind: imagepkg.KindSVG, W: logoSize, H: logoSize, Markup: assets.LogoSVG},
		}},
	}}

	if c.QRText != "" {
		root.Children = append(root.Children, &imagepkg.Node{
			Kind: imagepkg.KindBox, X: logoX - qrGap - logoSize, Y: logoY, W: logoSize, H: logoSize,
			Radius: 12, Fill: "#ffffff", BorderWidth: 2, BorderColor: "#e5e7eb",
			Children: []*imagepkg.Node{
				{Kind: imagepkg.KindQR, X: qrPadding, Y: qrPadding, W: logoSize - 2*qrPadding, H: logoSize - 2*qrPadding, Text: c.QRText},
			},
		})
	}
	return root
}

// ErrorLayout is the placeholder for a card that failed to render.
func ErrorLayout() *imagepkg.Node {
	return &imagepkg.Node{Kind: imagepkg.KindBox, W: Width, H: Height, Fill: errorBG, Children: []*imagepkg.Node{
		{Kind: imagepkg.KindText, Y: 255, W: Width, H: 60, Text: "Error generating image", Size: 40, Color: "#ffffff", Align: imagepkg.AlignCenter},
		{Kind: imagepkg.KindText, Y: 325, W: Width, H: 40, Text: "Please try again later", Size: 24, Color: "#999999", Align: imagepkg.AlignCenter},
	}}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
