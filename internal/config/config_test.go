package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "PRIMARY_GATEWAY", "SECONDARY_GATEWAY", "PROBE_TIMEOUT", "FETCH_TIMEOUT", "ASSETS_DIR"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://images.nf.domains", cfg.PrimaryGateway)
	assert.Equal(t, "https://ipfs.algonode.dev", cfg.SecondaryGateway)
	assert.Equal(t, "https://api.nf.domains", cfg.MainNetAPI)
	assert.Equal(t, "https://api.testnet.nf.domains", cfg.TestNetAPI)
	assert.Equal(t, 4*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Empty(t, cfg.AssetsDir)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PRIMARY_GATEWAY", "http://localhost:5001")
	t.Setenv("PROBE_TIMEOUT", "750ms")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "http://localhost:5001", cfg.PrimaryGateway)
	assert.Equal(t, 750*time.Millisecond, cfg.ProbeTimeout)
}

func TestFromEnv_InvalidDuration(t *testing.T) {
	t.Setenv("PROBE_TIMEOUT", "soon")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("PROBE_TIMEOUT", "-1s")
	_, err = FromEnv()
	assert.Error(t, err)
}
