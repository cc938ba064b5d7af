package imagepkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"net/http"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/nfdog/internal/logging"
	"github.com/youruser/nfdog/internal/util"
)

// DownloadImage downloads an image from URL and returns image.Image (decoded).
func DownloadImage(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	body, err := util.GetBytes(ctx, client, url)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body), imaging.AutoOrientation(true))
}

// DataURI encodes b as a base64 data URI of the given media type.
func DataURI(mediaType string, b []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(b)
}

func decodeDataURI(uri string) ([]byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, errors.New("not a data uri")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, errors.New("data uri is not base64")
	}
	return base64.StdEncoding.DecodeString(payload)
}

func (r *Renderer) loadSource(ctx context.Context, src string) (image.Image, error) {
	if strings.HasPrefix(src, "data:") {
		b, err := decodeDataURI(src)
		if err != nil {
			return nil, err
		}
		return imaging.Decode(bytes.NewReader(b))
	}
	return DownloadImage(ctx, r.client, src)
}

// loadImages fetches every image node of the tree concurrently. A node whose
// Src fails falls back to its Fallback; only when both fail is it an error.
func (r *Renderer) loadImages(ctx context.Context, root *Node) (map[*Node]image.Image, error) {
	var (
		mu  sync.Mutex
		out = map[*Node]image.Image{}
	)
	g, gctx := errgroup.WithContext(ctx)
	Walk(root, func(n *Node) {
		if n.Kind != KindImage {
			return
		}
		g.Go(func() error {
			img, err := r.loadSource(gctx, n.Src)
			if err != nil {
				if n.Fallback == "" {
					return err
				}
				logging.Warn("image %s failed to load, using fallback: %v", truncateForLog(n.Src), err)
				img, err = r.loadSource(gctx, n.Fallback)
				if err != nil {
					return err
				}
			}
			mu.Lock()
			out[n] = img
			mu.Unlock()
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func truncateForLog(s string) string {
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}
