package util

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
	}))
	defer srv.Close()
	client := NewClient(time.Second)

	ct, err := Head(context.Background(), client, srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	_, err = Head(context.Background(), client, srv.URL+"/missing")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Status)
}

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("payload"))
	}))
	defer srv.Close()
	client := NewClient(time.Second)

	b, err := GetBytes(context.Background(), client, srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))

	_, err = GetBytes(context.Background(), client, srv.URL+"/broken")
	assert.Error(t, err)
}

func TestReadOptional(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2}, 0o644))

	b, ok, err := ReadOptional(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2}, b)

	_, ok, err = ReadOptional(filepath.Join(dir, "missing.bin"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "deeper", "out.png")
	require.NoError(t, EnsureParentDir(target))
	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.NoError(t, EnsureParentDir("out.png"))
}
