// Package config also resolves the settings for the external Solana tooling.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that take precedence over the file.
const (
	EnvRPCURL  = "SOLANA_RPC_URL"
	EnvCluster = "SOLANA_CLUSTER"
)

const (
	defaultSolanaBin   = "solana"
	defaultSPLTokenBin = "spl-token"
)

// LoadDotenv reads a .env file from the working directory if one exists.
func LoadDotenv(paths ...string) {
	_ = godotenv.Load(paths...) // best-effort
}

// Tools captures how the external CLI tools are invoked.
type Tools struct {
	Cluster     string // devnet|testnet|mainnet-beta|localnet
	RPCURL      string // wins over Cluster when set
	SolanaBin   string
	SPLTokenBin string
}

// Tools merges file values with environment overrides.
func (c *Config) Tools() Tools {
	return Tools{
		Cluster:     getEnv(EnvCluster, c.String(KeyCluster)),
		RPCURL:      getEnv(EnvRPCURL, c.String(KeyRPCURL)),
		SolanaBin:   c.StringOr(KeySolanaBin, defaultSolanaBin),
		SPLTokenBin: c.StringOr(KeySPLTokenBin, defaultSPLTokenBin),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
