// Package solana resolves network endpoints and checks base58 identifiers handed to the Solana CLI tools.
package solana

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go/rpc"
)

// DefaultCluster is used when neither a cluster nor an explicit URL is configured.
const DefaultCluster = "devnet"

var clusters = map[string]rpc.Cluster{
	"devnet":       rpc.DevNet,
	"testnet":      rpc.TestNet,
	"mainnet-beta": rpc.MainNetBeta,
	"mainnet":      rpc.MainNetBeta,
	"localnet":     rpc.LocalNet,
}

// Endpoint picks the RPC URL passed to the tools via --url. An explicit url wins,
// then a cluster name (or a URL given as the cluster), then DefaultCluster.
func Endpoint(cluster, url string) (string, error) {
	if url = strings.TrimSpace(url); url != "" {
		return url, nil
	}
	cluster = strings.TrimSpace(cluster)
	name := strings.ToLower(cluster)
	if name == "" {
		name = DefaultCluster
	}
	// URLs pass through verbatim; paths and api keys are case-sensitive.
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return cluster, nil
	}
	c, ok := clusters[name]
	if !ok {
		return "", fmt.Errorf("unknown cluster %q", cluster)
	}
	return c.RPC, nil
}
