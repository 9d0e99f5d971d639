// Package config loads the per-invocation bot configuration from a JSON (or YAML) object on disk.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Well-known configuration keys.
const (
	KeyWalletPubkey      = "wallet_pubkey"
	KeyTokenMint         = "token_mint"
	KeyRecipientWallet   = "recipient_wallet"
	KeyTransferAmount    = "transfer_amount"
	KeyCluster           = "cluster"
	KeyRPCURL            = "rpc_url"
	KeySolanaBin         = "solana_bin"
	KeySPLTokenBin       = "spl_token_bin"
	KeyValidateAddresses = "validate_addresses"
	KeyMaxTransferAmount = "max_transfer_amount"
)

// ForbiddenSecrets lists substrings that must never appear in a serialized config.
var ForbiddenSecrets = []string{"PRIVATE_KEY", "MNEMONIC", "SEED", "KEYPAIR"}

var (
	ErrNotFound       = errors.New("config file not found")
	ErrMissingKey     = errors.New("missing required key")
	ErrSecretField    = errors.New("config contains secret-like fields; remove sensitive data")
	ErrInvalidAddress = errors.New("invalid base58 address")
	ErrMalformed      = errors.New("malformed config")
)

// Error is the ConfigError kind: every failure to obtain a usable configuration.
type Error struct {
	Path string
	Key  string
	Hint string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	switch {
	case e.Key != "":
		fmt.Fprintf(&b, "%s: %v", e.Key, e.Err)
	case e.Path != "":
		fmt.Fprintf(&b, "%v: %s", e.Err, e.Path)
	default:
		b.WriteString(e.Err.Error())
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, " (%s)", e.Hint)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Missing builds the error reported when a required key has no usable value.
func Missing(key, hint string) error {
	return &Error{Key: key, Hint: hint, Err: ErrMissingKey}
}

// Config is an immutable string-keyed view of the loaded object.
type Config struct {
	path   string
	values map[string]any
}

// New wraps an in-memory object, applying the same secret scan as Load.
func New(values map[string]any) (*Config, error) {
	if values == nil {
		values = map[string]any{}
	}
	if err := RejectSecrets(values); err != nil {
		return nil, err
	}
	return &Config{values: values}, nil
}

// Load reads the object at path and rejects it if it carries secret-like content.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &Error{Path: path, Err: ErrNotFound}
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	values, err := decode(path, data)
	if err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if err := RejectSecrets(values); err != nil {
		var cfgErr *Error
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}
		return nil, err
	}
	return &Config{path: path, values: values}, nil
}

func decode(path string, data []byte) (map[string]any, error) {
	var values map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&values); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, errors.New("decode json: extra data after top-level object")
		}
	}
	if values == nil {
		return nil, errors.New("top-level value must be an object")
	}
	return values, nil
}

// RejectSecrets fails when the upper-cased JSON form of values contains any ForbiddenSecrets entry.
func RejectSecrets(values map[string]any) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return &Error{Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	text := strings.ToUpper(string(raw))
	for _, bad := range ForbiddenSecrets {
		if strings.Contains(text, bad) {
			return &Error{Err: ErrSecretField}
		}
	}
	return nil
}

// Path reports where the config was read from, empty for in-memory configs.
func (c *Config) Path() string { return c.path }

// String renders the value stored under key; absent and null values yield "".
func (c *Config) String(key string) string {
	v, ok := c.values[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Bool interprets key as a flag; JSON booleans and "true"/"1" strings are accepted.
func (c *Config) Bool(key string) bool {
	switch t := c.values[key].(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(t))
		return b
	default:
		return false
	}
}

// StringOr returns the value under key or def when it is empty.
func (c *Config) StringOr(key, def string) string {
	if v := c.String(key); v != "" {
		return v
	}
	return def
}

// WalletPubkey is the wallet whose balance is queried and which sends transfers.
func (c *Config) WalletPubkey() string { return c.String(KeyWalletPubkey) }

// TokenMint is the SPL token moved by the transfer bot.
func (c *Config) TokenMint() string { return c.String(KeyTokenMint) }

// RecipientWallet receives transfers.
func (c *Config) RecipientWallet() string { return c.String(KeyRecipientWallet) }

// TransferAmount is the configured amount as written in the file.
func (c *Config) TransferAmount() string { return c.String(KeyTransferAmount) }
