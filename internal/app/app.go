// Package app builds the card pipeline from configuration. Both the server
// and the ogrender CLI use it.
package app

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/youruser/nfdog/internal/assets"
	"github.com/youruser/nfdog/internal/card"
	"github.com/youruser/nfdog/internal/config"
	imagepkg "github.com/youruser/nfdog/internal/image"
	"github.com/youruser/nfdog/internal/media"
	"github.com/youruser/nfdog/internal/nfd"
	"github.com/youruser/nfdog/internal/util"
)

// NewComposer wires assets, gateways, the NFD API and the renderer.
func NewComposer(cfg *config.Config) (*card.Composer, error) {
	a, err := assets.Load(cfg.AssetsDir)
	if err != nil {
		return nil, errors.Wrap(err, "load assets")
	}

	client := util.NewClient(cfg.FetchTimeout)
	resolver := media.NewResolver(client, media.Gateways{
		Primary:   cfg.PrimaryGateway,
		Secondary: cfg.SecondaryGateway,
	}, cfg.ProbeTimeout)

	return card.NewComposer(Identities(cfg, client), resolver, imagepkg.NewRenderer(client), a), nil
}

// Identities builds a fresh NFD client for each lookup.
func Identities(cfg *config.Config, client *http.Client) card.IdentityFactory {
	return func(network nfd.Network) card.IdentityResolver {
		base := cfg.MainNetAPI
		if network == nfd.TestNet {
			base = cfg.TestNetAPI
		}
		return nfd.New(network, nfd.WithBaseURL(base), nfd.WithHTTPClient(client))
	}
}
