package solana

import (
	"fmt"

	solana "github.com/gagliardetto/solana-go"
)

// ValidateAddress checks that addr decodes to a 32-byte public key.
func ValidateAddress(addr string) error {
	if _, err := solana.PublicKeyFromBase58(addr); err != nil {
		return fmt.Errorf("decode public key %q: %w", addr, err)
	}
	return nil
}

// CheckSignature checks that sig decodes to a 64-byte transaction signature.
func CheckSignature(sig string) error {
	if _, err := solana.SignatureFromBase58(sig); err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}
	return nil
}
