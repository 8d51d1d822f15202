package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Amr-9/SolHunter/pkg/generator"
	"github.com/Amr-9/SolHunter/pkg/generator/solana"
)

// SaveMatch appends "address | privateKey" to path and returns its absolute path.
// The exported key is decoded again and must reproduce the address before
// anything is written. The file is created with owner-only permissions.
func SaveMatch(path string, result *generator.Result) (string, error) {
	secret := solana.PrivateKeyBase58(result.Keypair)
	kp, err := solana.KeypairFromBase58(secret)
	if err != nil {
		return "", fmt.Errorf("exported private key does not decode: %w", err)
	}
	if solana.Address(kp) != result.Address {
		return "", fmt.Errorf("exported private key belongs to %s, not %s", solana.Address(kp), result.Address)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return "", fmt.Errorf("open matches file: %w", err)
	}
	line := fmt.Sprintf("%s | %s\n", result.Address, secret)
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return "", fmt.Errorf("write matches file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close matches file: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
