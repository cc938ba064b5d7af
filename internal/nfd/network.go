package nfd

import "strings"

// Network selects which NFD registry a name is resolved against.
type Network string

const (
	MainNet Network = "mainnet"
	TestNet Network = "testnet"
)

// ParseNetwork returns TestNet iff s equals "testnet" ignoring case; anything
// else, including the empty string, is MainNet.
func ParseNetwork(s string) Network {
	if strings.EqualFold(s, string(TestNet)) {
		return TestNet
	}
	return MainNet
}

// DefaultBaseURL is the public NFD API for a network.
func DefaultBaseURL(n Network) string {
	if n == TestNet {
		return "https://api.testnet.nf.domains"
	}
	return "https://api.nf.domains"
}
