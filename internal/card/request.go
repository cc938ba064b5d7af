package card

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/youruser/nfdog/internal/nfd"
)

// Request is what a card is rendered from.
type Request struct {
	Name    string
	Network nfd.Network
	// QR adds a QR code linking to the name's profile page.
	QR bool
}

// ParseRequest builds a Request from raw query values. An empty name renders
// the default image; any network other than "testnet" is mainnet.
func ParseRequest(name, network, qr string) Request {
	wantQR, _ := strconv.ParseBool(qr)
	return Request{
		Name:    strings.TrimSpace(name),
		Network: nfd.ParseNetwork(network),
		QR:      wantQR,
	}
}

// ProfileURL is the public page of name.
func ProfileURL(name string) string {
	return "https://app.nf.domains/name/" + url.PathEscape(name)
}
