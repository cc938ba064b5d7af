package imagepkg

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/fogleman/gg"
)

// Options are the output parameters of a render.
type Options struct {
	Width  int
	Height int
	// Font is an OpenType or TrueType font used for all text; nil means Go Bold.
	Font []byte
}

// Renderer turns a node tree into a PNG.
type Renderer struct {
	client *http.Client
}

// NewRenderer returns a Renderer that downloads remote image sources with
// client.
func NewRenderer(client *http.Client) *Renderer {
	if client == nil {
		client = http.DefaultClient
	}
	return &Renderer{client: client}
}

// Render draws root onto a Width x Height canvas and encodes it as PNG.
// Malformed trees fail with *MalformedError before anything is fetched.
func (r *Renderer) Render(ctx context.Context, root *Node, opts Options) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, malformed("canvas", "invalid size %dx%d", opts.Width, opts.Height)
	}
	if root == nil {
		return nil, malformed("root", "nil node")
	}
	if err := validate(root, "root"); err != nil {
		return nil, err
	}

	f, err := parseFont(opts.Font)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	fs := newFaces(f)
	defer fs.close()

	images, err := r.loadImages(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("load images: %w", err)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	c := &canvas{images: images, faces: fs}
	if err := c.draw(dc, root, 0, 0); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func validate(n *Node, path string) error {
	if n == nil {
		return malformed(path, "nil node")
	}
	if n.W <= 0 || n.H <= 0 {
		return malformed(path, "%s has invalid size %dx%d", n.Kind, n.W, n.H)
	}
	for _, c := range []string{n.Fill, n.BorderColor, n.Color} {
		if _, err := parseHexColor(c); err != nil {
			return malformed(path, "%v", err)
		}
	}
	if n.Kind != KindBox && len(n.Children) > 0 {
		return malformed(path, "%s cannot have children", n.Kind)
	}

	switch n.Kind {
	case KindBox:
		if n.BorderWidth < 0 || n.Radius < 0 {
			return malformed(path, "negative border or radius")
		}
		for i, child := range n.Children {
			if err := validate(child, fmt.Sprintf("%s/%d", path, i)); err != nil {
				return err
			}
		}
	case KindImage:
		if n.Src == "" {
			return malformed(path, "image without src")
		}
	case KindText:
		if n.Size <= 0 {
			return malformed(path, "text without font size")
		}
	case KindSVG:
		if n.Markup == "" {
			return malformed(path, "empty svg")
		}
	case KindQR:
		if n.Text == "" {
			return malformed(path, "empty qr payload")
		}
	default:
		return malformed(path, "unknown kind %d", int(n.Kind))
	}
	return nil
}
