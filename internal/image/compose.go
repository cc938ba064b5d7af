package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// canvas draws a validated tree whose images are already loaded.
type canvas struct {
	images map[*Node]image.Image
	faces  *faces
}

func (c *canvas) draw(dc *gg.Context, n *Node, ox, oy int) error {
	x, y := ox+n.X, oy+n.Y
	switch n.Kind {
	case KindBox:
		return c.drawBox(dc, n, x, y)
	case KindImage:
		img := c.images[n]
		if n.Fit == FitStretch {
			img = imaging.Resize(img, n.W, n.H, imaging.Lanczos)
		} else {
			img = imaging.Fill(img, n.W, n.H, imaging.Center, imaging.Lanczos)
		}
		dc.DrawImage(img, x, y)
	case KindText:
		return c.drawText(dc, n, x, y)
	case KindSVG:
		img, err := RasterizeSVG(n.Markup, n.W, n.H)
		if err != nil {
			return fmt.Errorf("svg: %w", err)
		}
		dc.DrawImage(img, x, y)
	case KindQR:
		img, err := GenerateQRImage(n.Text, n.W)
		if err != nil {
			return fmt.Errorf("qr: %w", err)
		}
		dc.DrawImage(imaging.Resize(img, n.W, n.H, imaging.NearestNeighbor), x, y)
	}
	return nil
}

func (c *canvas) drawBox(dc *gg.Context, n *Node, x, y int) error {
	fill, _ := parseHexColor(n.Fill)

	if !n.clips() {
		if fill != nil {
			dc.SetColor(fill)
			dc.DrawRectangle(float64(x), float64(y), float64(n.W), float64(n.H))
			dc.Fill()
		}
		for _, child := range n.Children {
			if err := c.draw(dc, child, x, y); err != nil {
				return err
			}
		}
		return c.drawBorder(dc, n, x, y)
	}

	// Clipping boxes draw into their own layer and are masked onto dst.
	layer := gg.NewContext(n.W, n.H)
	if fill != nil {
		layer.SetColor(fill)
		layer.Clear()
	}
	for _, child := range n.Children {
		if err := c.draw(layer, child, 0, 0); err != nil {
			return err
		}
	}

	mask := gg.NewContext(n.W, n.H)
	shapePath(mask, n, 0, 0, 0)
	mask.SetColor(color.White)
	mask.Fill()

	dst, ok := dc.Image().(draw.Image)
	if !ok {
		return fmt.Errorf("canvas is not drawable")
	}
	r := image.Rect(x, y, x+n.W, y+n.H)
	draw.DrawMask(dst, r, layer.Image(), image.Point{}, mask.AsMask(), image.Point{}, draw.Over)

	return c.drawBorder(dc, n, x, y)
}

func (c *canvas) drawBorder(dc *gg.Context, n *Node, x, y int) error {
	if n.BorderWidth <= 0 {
		return nil
	}
	bc, _ := parseHexColor(n.BorderColor)
	if bc == nil {
		bc = color.Black
	}
	inset := float64(n.BorderWidth) / 2
	shapePath(dc, n, x, y, inset)
	dc.SetColor(bc)
	dc.SetLineWidth(float64(n.BorderWidth))
	dc.Stroke()
	return nil
}

// shapePath traces the outline of box n at (x, y), shrunk by inset.
func shapePath(dc *gg.Context, n *Node, x, y int, inset float64) {
	fx, fy := float64(x)+inset, float64(y)+inset
	w, h := float64(n.W)-2*inset, float64(n.H)-2*inset
	switch {
	case n.Circle:
		dc.DrawCircle(fx+w/2, fy+h/2, min(w, h)/2)
	case n.Radius > 0:
		dc.DrawRoundedRectangle(fx, fy, w, h, float64(n.Radius)-inset)
	default:
		dc.DrawRectangle(fx, fy, w, h)
	}
}

func (c *canvas) drawText(dc *gg.Context, n *Node, x, y int) error {
	face, err := c.faces.get(n.Size)
	if err != nil {
		return fmt.Errorf("font face: %w", err)
	}
	fg, _ := parseHexColor(n.Color)
	if fg == nil {
		fg = color.Black
	}

	s := n.Text
	if n.Ellipsis {
		s = Truncate(face, s, n.W)
	}

	ax, px := 0.0, float64(x)
	switch n.Align {
	case AlignCenter:
		ax, px = 0.5, float64(x)+float64(n.W)/2
	case AlignRight:
		ax, px = 1, float64(x+n.W)
	}

	dc.SetFontFace(face)
	dc.SetColor(fg)
	dc.DrawStringAnchored(s, px, float64(y)+float64(n.H)/2, ax, 0.5)
	return nil
}
