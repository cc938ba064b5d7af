package assets

import (
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"

	imagepkg "github.com/youruser/nfdog/internal/image"
	"github.com/youruser/nfdog/internal/util"
)

// Assets are the static binaries every card may embed. They are read once
// and never modified.
type Assets struct {
	Font           []byte
	DefaultImage   []byte
	FallbackAvatar []byte
	FallbackBanner []byte
}

// Default is the lazily generated built-in set, shared by all requests.
var Default = sync.OnceValues(Generate)

// Load reads assets from dir, generating whatever is missing. An empty dir
// yields the built-in set.
func Load(dir string) (*Assets, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return base, nil
	}

	out := *base
	files := []struct {
		names []string
		dst   *[]byte
	}{
		{[]string{"font.otf", "font.ttf"}, &out.Font},
		{[]string{"default.jpg"}, &out.DefaultImage},
		{[]string{"avatar.jpg"}, &out.FallbackAvatar},
		{[]string{"banner.jpg"}, &out.FallbackBanner},
	}
	for _, f := range files {
		for _, name := range f.names {
			b, ok, err := util.ReadOptional(filepath.Join(dir, name))
			if err != nil {
				return nil, errors.Wrapf(err, "read asset %s", name)
			}
			if ok {
				*f.dst = b
				break
			}
		}
	}
	return &out, nil
}

func (a *Assets) DefaultImageURI() string   { return dataURI(a.DefaultImage) }
func (a *Assets) FallbackAvatarURI() string { return dataURI(a.FallbackAvatar) }
func (a *Assets) FallbackBannerURI() string { return dataURI(a.FallbackBanner) }

func dataURI(b []byte) string {
	mediaType := http.DetectContentType(b)
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return imagepkg.DataURI(mediaType, b)
}
