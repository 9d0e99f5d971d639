package bot

import (
	"fmt"

	"walletlog-go/internal/config"
	"walletlog-go/internal/dex/solana"
)

// toolSettings returns the tool configuration and the --url value. A --cluster flag beats
// both the file and SOLANA_RPC_URL.
func toolSettings(cfg *config.Config, clusterFlag string) (config.Tools, string, error) {
	tools := cfg.Tools()
	if clusterFlag != "" {
		tools.Cluster = clusterFlag
		tools.RPCURL = ""
	}
	endpoint, err := solana.Endpoint(tools.Cluster, tools.RPCURL)
	if err != nil {
		return tools, "", &config.Error{Key: config.KeyCluster, Err: err}
	}
	return tools, endpoint, nil
}

type addressField struct {
	key   string
	value string
}

// checkAddresses decodes every field as a public key when validate_addresses is on.
func checkAddresses(cfg *config.Config, fields ...addressField) error {
	if !cfg.Bool(config.KeyValidateAddresses) {
		return nil
	}
	for _, f := range fields {
		if err := solana.ValidateAddress(f.value); err != nil {
			return &config.Error{Key: f.key, Err: fmt.Errorf("%w: %v", config.ErrInvalidAddress, err)}
		}
	}
	return nil
}
