package media

import (
	"strconv"
	"strings"

	"github.com/ipfs/go-cid"
)

const ipfsScheme = "ipfs://"

// Gateways are the HTTP gateways used for ipfs:// media, tried in order.
type Gateways struct {
	Primary   string
	Secondary string
}

// DefaultGateways is the NFD image cache followed by the public AlgoNode
// gateway.
var DefaultGateways = Gateways{
	Primary:   "https://images.nf.domains",
	Secondary: "https://ipfs.algonode.dev",
}

// ContentID returns the content identifier of an ipfs:// reference. The
// identifier is opaque and may carry a path after the CID.
func ContentID(ref string) (string, bool) {
	if !strings.HasPrefix(ref, ipfsScheme) {
		return "", false
	}
	return strings.TrimPrefix(ref, ipfsScheme), true
}

// GatewayURL builds <base>/ipfs/<id>.
func GatewayURL(base, id string) string {
	return strings.TrimRight(base, "/") + "/ipfs/" + id
}

// describeCID gives a short description of the CID at the head of id for
// logs. Undecodable identifiers are still resolved.
func describeCID(id string) string {
	head, _, _ := strings.Cut(id, "/")
	c, err := cid.Decode(head)
	if err != nil {
		return "unrecognized cid"
	}
	return "cidv" + strconv.FormatUint(c.Version(), 10)
}
