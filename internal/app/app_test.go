package app

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/nfdog/internal/card"
	"github.com/youruser/nfdog/internal/config"
)

type hitLog struct {
	mu   sync.Mutex
	hits []string
}

func (h *hitLog) add(s string) {
	h.mu.Lock()
	h.hits = append(h.hits, s)
	h.mu.Unlock()
}

func (h *hitLog) list() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.hits...)
}

func TestComposeEndToEnd_TestnetIPFSAvatar(t *testing.T) {
	var avatar bytes.Buffer
	require.NoError(t, imaging.Encode(&avatar, imaging.New(64, 64, color.NRGBA{B: 255, A: 255}), imaging.PNG))

	gatewayHits := &hitLog{}
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gatewayHits.add(r.Method + " " + r.URL.Path)
		if r.URL.Path != "/ipfs/Qm123" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if r.Method == http.MethodGet {
			w.Write(avatar.Bytes())
		}
	}))
	defer primary.Close()
	secondary := httptest.NewServer(http.NotFoundHandler())
	defer secondary.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nfd/alice.algo", r.URL.Path)
		assert.Equal(t, "full", r.URL.Query().Get("view"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"alice.algo","properties":{"verified":{"avatar":"ipfs://Qm123"}}}`))
	}))
	defer api.Close()

	cfg := &config.Config{
		PrimaryGateway:   primary.URL,
		SecondaryGateway: secondary.URL,
		MainNetAPI:       "http://127.0.0.1:1",
		TestNetAPI:       api.URL,
		ProbeTimeout:     time.Second,
		FetchTimeout:     5 * time.Second,
	}
	composer, err := NewComposer(cfg)
	require.NoError(t, err)

	res := composer.Compose(context.Background(), card.ParseRequest("alice.algo", "testnet", ""))

	assert.Equal(t, card.OutcomeResolved, res.Outcome)
	assert.Contains(t, gatewayHits.list(), "HEAD /ipfs/Qm123")
	assert.Contains(t, gatewayHits.list(), "GET /ipfs/Qm123")

	img, err := png.Decode(bytes.NewReader(res.PNG))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, card.Width, card.Height), img.Bounds())
	// Centre of the avatar circle shows the gateway image.
	got := color.NRGBAModel.Convert(img.At(160, 400)).(color.NRGBA)
	assert.InDelta(t, 255, got.B, 3)
	assert.InDelta(t, 0, got.R, 3)
}

func TestIdentities_PicksNetworkBaseURL(t *testing.T) {
	var hits hitLog
	mainnet := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.add("mainnet")
		http.NotFound(w, r)
	}))
	defer mainnet.Close()
	testnet := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.add("testnet")
		http.NotFound(w, r)
	}))
	defer testnet.Close()

	factory := Identities(&config.Config{MainNetAPI: mainnet.URL, TestNetAPI: testnet.URL}, http.DefaultClient)
	for _, network := range []string{"mainnet", "testnet", "other"} {
		p, err := factory(card.ParseRequest("x.algo", network, "").Network).Resolve(context.Background(), "x.algo", "full")
		require.NoError(t, err)
		assert.Nil(t, p)
	}
	assert.Equal(t, []string{"mainnet", "testnet", "mainnet"}, hits.list())
}
