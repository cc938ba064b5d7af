package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// gateway fakes a HEAD-able image host. status 0 closes the connection.
func gateway(t *testing.T, status int, contentType string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodHead, r.Method)
		if status == 0 {
			hj, ok := w.(http.Hijacker)
			if ok {
				conn, _, _ := hj.Hijack()
				conn.Close()
			}
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestResolver(primary, secondary string) *Resolver {
	return NewResolver(&http.Client{}, Gateways{Primary: primary, Secondary: secondary}, time.Second)
}

func TestResolve_Empty(t *testing.T) {
	r := newTestResolver("http://127.0.0.1:1", "http://127.0.0.1:1")
	assert.Equal(t, Resolved{}, r.Resolve(context.Background(), ""))
}

func TestResolve_PrimaryGatewayHit(t *testing.T) {
	primary, _ := gateway(t, http.StatusOK, "image/png")
	secondary, secondaryHits := gateway(t, http.StatusOK, "image/png")

	got := newTestResolver(primary.URL, secondary.URL).Resolve(context.Background(), "ipfs://Qm123")

	assert.Equal(t, Resolved{URL: primary.URL + "/ipfs/Qm123"}, got)
	assert.Zero(t, atomic.LoadInt32(secondaryHits))
}

func TestResolve_PrimaryWebP(t *testing.T) {
	primary, _ := gateway(t, http.StatusOK, "image/webp")
	secondary, _ := gateway(t, http.StatusOK, "image/png")

	got := newTestResolver(primary.URL, secondary.URL).Resolve(context.Background(), "ipfs://Qm123")

	assert.Equal(t, Resolved{URL: primary.URL + "/ipfs/Qm123", Unsupported: true}, got)
}

func TestResolve_FallsBackToSecondary(t *testing.T) {
	primary, _ := gateway(t, http.StatusNotFound, "")
	secondary, _ := gateway(t, http.StatusOK, "image/webp")

	got := newTestResolver(primary.URL, secondary.URL).Resolve(context.Background(), "ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi/avatar.png")

	assert.Equal(t, secondary.URL+"/ipfs/bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi/avatar.png", got.URL)
	assert.True(t, got.Unsupported)
}

func TestResolve_PrimaryNetworkErrorFallsBack(t *testing.T) {
	primary, _ := gateway(t, 0, "")
	secondary, _ := gateway(t, http.StatusOK, "image/jpeg")

	got := newTestResolver(primary.URL, secondary.URL).Resolve(context.Background(), "ipfs://Qm123")

	assert.Equal(t, Resolved{URL: secondary.URL + "/ipfs/Qm123"}, got)
}

func TestResolve_BothGatewaysFail(t *testing.T) {
	primary, _ := gateway(t, http.StatusInternalServerError, "")
	secondary, _ := gateway(t, http.StatusNotFound, "image/webp")

	got := newTestResolver(primary.URL, secondary.URL).Resolve(context.Background(), "ipfs://Qm123")

	assert.Equal(t, Resolved{URL: secondary.URL + "/ipfs/Qm123", Unsupported: false}, got)
}

func TestResolve_ProbeTimeoutFallsBack(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()
	secondary, _ := gateway(t, http.StatusOK, "image/png")

	r := NewResolver(&http.Client{}, Gateways{Primary: slow.URL, Secondary: secondary.URL}, 50*time.Millisecond)
	got := r.Resolve(context.Background(), "ipfs://Qm123")

	assert.Equal(t, secondary.URL+"/ipfs/Qm123", got.URL)
}

func TestResolve_PlainURL(t *testing.T) {
	host, _ := gateway(t, http.StatusOK, "image/webp; charset=binary")
	got := newTestResolver("http://127.0.0.1:1", "http://127.0.0.1:1").Resolve(context.Background(), host.URL+"/a.webp")
	assert.Equal(t, Resolved{URL: host.URL + "/a.webp", Unsupported: true}, got)
}

func TestResolve_PlainURLProbeFailure(t *testing.T) {
	host, _ := gateway(t, http.StatusForbidden, "image/webp")
	got := newTestResolver("http://127.0.0.1:1", "http://127.0.0.1:1").Resolve(context.Background(), host.URL+"/a.webp")
	assert.Equal(t, Resolved{URL: host.URL + "/a.webp"}, got)
}

func TestDefaultGatewayURLs(t *testing.T) {
	assert.Equal(t, "https://images.nf.domains/ipfs/Qm123", GatewayURL(DefaultGateways.Primary, "Qm123"))
	assert.Equal(t, "https://ipfs.algonode.dev/ipfs/Qm123", GatewayURL(DefaultGateways.Secondary, "Qm123"))
	assert.Equal(t, "https://x.test/ipfs/Qm1", GatewayURL("https://x.test/", "Qm1"))
}

func TestContentID(t *testing.T) {
	id, ok := ContentID("ipfs://Qm123/pic.png")
	assert.True(t, ok)
	assert.Equal(t, "Qm123/pic.png", id)

	_, ok = ContentID("https://example.com/ipfs://Qm123")
	assert.False(t, ok)
}

func TestDescribeCID(t *testing.T) {
	assert.Equal(t, "cidv0", describeCID("QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/readme"))
	assert.Equal(t, "cidv1", describeCID("bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"))
	assert.Equal(t, "unrecognized cid", describeCID("Qm123"))
}

func TestUnsupportedFormat(t *testing.T) {
	assert.True(t, UnsupportedFormat("image/webp"))
	assert.True(t, UnsupportedFormat("IMAGE/WEBP"))
	assert.False(t, UnsupportedFormat("image/png"))
	assert.False(t, UnsupportedFormat(""))
}
