package media

import "strings"

// UnsupportedFormat reports whether a declared content type is one the card
// renderer cannot decode. Currently that is WebP only; remove this check once
// the renderer can decode it.
func UnsupportedFormat(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "image/webp")
}
