package imagepkg

// Kind is the type of a node in a render tree.
type Kind int

const (
	KindBox Kind = iota + 1
	KindImage
	KindText
	KindSVG
	KindQR
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindImage:
		return "image"
	case KindText:
		return "text"
	case KindSVG:
		return "svg"
	case KindQR:
		return "qr"
	default:
		return "unknown"
	}
}

// Fit controls how an image is scaled into its node.
type Fit int

const (
	FitCover Fit = iota
	FitStretch
)

// Align is the horizontal alignment of text inside its node.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Node is one element of a declarative render tree. X and Y are pixel
// offsets from the parent box. Fields not relevant to Kind are ignored.
type Node struct {
	Kind       Kind
	X, Y, W, H int

	// Box. A Circle or Radius box clips its children to its shape.
	Fill        string
	Radius      int
	Circle      bool
	BorderWidth int
	BorderColor string
	Children    []*Node

	// Image. Src and Fallback are http(s) URLs or base64 data URIs; Fallback
	// is drawn when Src cannot be loaded or decoded.
	Src      string
	Fallback string
	Fit      Fit

	// Text, and the payload of a QR node.
	Text     string
	Size     float64
	Color    string
	Align    Align
	Ellipsis bool

	// SVG markup.
	Markup string
}

func (n *Node) clips() bool {
	return n.Kind == KindBox && (n.Circle || n.Radius > 0)
}

// Walk calls fn for n and every descendant, depth first.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
