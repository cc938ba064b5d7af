package card

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/nfdog/internal/assets"
	imagepkg "github.com/youruser/nfdog/internal/image"
	"github.com/youruser/nfdog/internal/logging"
	"github.com/youruser/nfdog/internal/media"
	"github.com/youruser/nfdog/internal/nfd"
)

// IdentityResolver looks up an NFD record. A nil profile without error means
// the name is not registered.
type IdentityResolver interface {
	Resolve(ctx context.Context, name string, view nfd.View) (*nfd.Profile, error)
}

// IdentityFactory returns the resolver for a network.
type IdentityFactory func(network nfd.Network) IdentityResolver

type MediaResolver interface {
	Resolve(ctx context.Context, ref string) media.Resolved
}

type Renderer interface {
	Render(ctx context.Context, root *imagepkg.Node, opts imagepkg.Options) ([]byte, error)
}

// Outcome is which of the fixed card states was rendered.
type Outcome int

const (
	OutcomeDefault Outcome = iota
	OutcomeResolved
	OutcomeFallback
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDefault:
		return "default"
	case OutcomeResolved:
		return "resolved"
	case OutcomeFallback:
		return "fallback"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is a rendered PNG and the state it shows.
type Result struct {
	PNG     []byte
	Outcome Outcome
}

// Composer renders name cards. It holds no per-request state.
type Composer struct {
	identities IdentityFactory
	media      MediaResolver
	renderer   Renderer
	assets     *assets.Assets
}

func NewComposer(identities IdentityFactory, media MediaResolver, renderer Renderer, a *assets.Assets) *Composer {
	return &Composer{identities: identities, media: media, renderer: renderer, assets: a}
}

// Compose always returns a Width x Height PNG. Lookup failures degrade to
// fallback media; render failures switch to the error placeholder.
func (c *Composer) Compose(ctx context.Context, req Request) Result {
	if req.Name == "" {
		return c.render(ctx, DefaultLayout(c.assets), OutcomeDefault)
	}

	card := Card{Name: req.Name}
	if req.QR {
		card.QRText = ProfileURL(req.Name)
	}

	outcome := OutcomeFallback
	if profile := c.lookup(ctx, req); profile != nil {
		card.Avatar, card.Banner = c.resolveMedia(ctx, profile)
		outcome = OutcomeResolved
	}
	return c.render(ctx, CardLayout(card, c.assets), outcome)
}

func (c *Composer) lookup(ctx context.Context, req Request) (profile *nfd.Profile) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("Error fetching NFD data for %s: panic: %v", req.Name, r)
			profile = nil
		}
	}()

	profile, err := c.identities(req.Network).Resolve(ctx, req.Name, nfd.ViewFull)
	if err != nil {
		logging.Error("Error fetching NFD data for %s on %s: %v", req.Name, req.Network, err)
		return nil
	}
	if profile == nil {
		logging.Info("NFD %s not found on %s", req.Name, req.Network)
	}
	return profile
}

// resolveMedia resolves avatar and banner concurrently and returns the URLs
// the renderer can use; unusable media come back empty.
func (c *Composer) resolveMedia(ctx context.Context, profile *nfd.Profile) (avatar, banner string) {
	var (
		g      errgroup.Group
		av, bn media.Resolved
	)
	g.Go(func() error {
		av = c.media.Resolve(ctx, profile.Avatar())
		return nil
	})
	g.Go(func() error {
		bn = c.media.Resolve(ctx, profile.Banner())
		return nil
	})
	_ = g.Wait()
	return usable(av), usable(bn)
}

func usable(r media.Resolved) string {
	if r.URL == "" || r.Unsupported {
		return ""
	}
	return r.URL
}

func (c *Composer) options() imagepkg.Options {
	return imagepkg.Options{Width: Width, Height: Height, Font: c.assets.Font}
}

func (c *Composer) render(ctx context.Context, root *imagepkg.Node, outcome Outcome) Result {
	png, err := c.safeRender(ctx, root)
	if err == nil {
		return Result{PNG: png, Outcome: outcome}
	}
	logging.Error("Error generating OG image (%s): %v", outcome, err)

	png, err = c.safeRender(ctx, ErrorLayout())
	if err != nil {
		logging.Error("error placeholder failed to render: %v", err)
		png = blankPNG()
	}
	return Result{PNG: png, Outcome: OutcomeError}
}

func (c *Composer) safeRender(ctx context.Context, root *imagepkg.Node) (png []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panic: %v", r)
		}
	}()
	return c.renderer.Render(ctx, root, c.options())
}

// blankPNG is the last-resort error image: the error background, no text.
var blankPNG = sync.OnceValue(func() []byte {
	var buf bytes.Buffer
	img := imaging.New(Width, Height, color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff})
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		logging.Error("encode blank card: %v", err)
	}
	return buf.Bytes()
})
