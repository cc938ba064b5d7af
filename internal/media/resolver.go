package media

import (
	"context"
	"net/http"
	"time"

	"github.com/youruser/nfdog/internal/logging"
	"github.com/youruser/nfdog/internal/util"
)

// Resolved is a direct HTTP(S) URL for a media reference. Unsupported is
// only ever set when URL is non-empty.
type Resolved struct {
	URL         string
	Unsupported bool
}

// Resolver turns avatar/banner references into URLs the renderer can load.
// Probes are best-effort: failures only make the result less informed.
type Resolver struct {
	client       *http.Client
	gateways     Gateways
	probeTimeout time.Duration
}

// NewResolver returns a Resolver probing with client. A zero probeTimeout
// leaves probes bounded only by the client.
func NewResolver(client *http.Client, gateways Gateways, probeTimeout time.Duration) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &Resolver{client: client, gateways: gateways, probeTimeout: probeTimeout}
}

// Resolve never fails. An empty ref yields an empty Resolved.
func (r *Resolver) Resolve(ctx context.Context, ref string) Resolved {
	if ref == "" {
		return Resolved{}
	}

	id, ok := ContentID(ref)
	if !ok {
		unsupported, err := r.probe(ctx, ref)
		if err != nil {
			logging.Warn("content type check failed for %s: %v", ref, err)
			return Resolved{URL: ref}
		}
		return Resolved{URL: ref, Unsupported: unsupported}
	}

	logging.Debug("resolving ipfs media %s (%s)", id, describeCID(id))

	primary := GatewayURL(r.gateways.Primary, id)
	unsupported, err := r.probe(ctx, primary)
	if err == nil {
		return Resolved{URL: primary, Unsupported: unsupported}
	}
	logging.Info("CID %s is not cached on %s (%v), trying IPFS gateway", id, r.gateways.Primary, err)

	secondary := GatewayURL(r.gateways.Secondary, id)
	unsupported, err = r.probe(ctx, secondary)
	if err == nil {
		return Resolved{URL: secondary, Unsupported: unsupported}
	}
	logging.Warn("failed to probe IPFS gateway for CID %s: %v", id, err)

	return Resolved{URL: secondary}
}

func (r *Resolver) probe(ctx context.Context, url string) (bool, error) {
	if r.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.probeTimeout)
		defer cancel()
	}
	contentType, err := util.Head(ctx, r.client, url)
	if err != nil {
		return false, err
	}
	return UnsupportedFormat(contentType), nil
}
