// Package solana implements Ed25519 key generation and Base58 addressing for
// Solana vanity search.
package solana

import (
	"bufio"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/Amr-9/SolHunter/pkg/generator"
	"github.com/mr-tron/base58"
)

// entropyBufferSize is how much randomness a Source pulls from the OS per read.
const entropyBufferSize = 32 * ed25519.SeedSize

// Source generates Ed25519 keypairs. It is not safe for concurrent use:
// each worker gets its own Source from NewSource.
type Source struct {
	entropy io.Reader
	seed    [ed25519.SeedSize]byte
}

// NewSource returns a Source reading from crypto/rand. It matches generator.SourceFactory.
func NewSource() generator.KeySource {
	return NewSourceFrom(rand.Reader)
}

// NewSourceFrom returns a Source reading seeds from r.
func NewSourceFrom(r io.Reader) *Source {
	return &Source{entropy: bufio.NewReaderSize(r, entropyBufferSize)}
}

// NewKeypair returns a fresh keypair. PrivateKey is the 64-byte seed||pubkey form
// used by Solana wallets.
func (s *Source) NewKeypair() (generator.Keypair, error) {
	if _, err := io.ReadFull(s.entropy, s.seed[:]); err != nil {
		return generator.Keypair{}, fmt.Errorf("read seed: %w", err)
	}
	priv := ed25519.NewKeyFromSeed(s.seed[:])
	return generator.Keypair{
		PublicKey:  priv[ed25519.SeedSize:],
		PrivateKey: priv,
	}, nil
}

// Encode is the Solana address encoding of a public key. It matches generator.Encoder.
func Encode(publicKey []byte) string {
	return base58.Encode(publicKey)
}

// Address returns the Base58 address of kp.
func Address(kp generator.Keypair) string {
	return Encode(kp.PublicKey)
}

// PrivateKeyBase58 returns the Base58 private key as imported by Solana wallets.
func PrivateKeyBase58(kp generator.Keypair) string {
	return base58.Encode(kp.PrivateKey)
}

// KeypairFromBase58 decodes a 64-byte Base58 private key and checks that its
// public half matches the seed.
func KeypairFromBase58(s string) (generator.Keypair, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return generator.Keypair{}, fmt.Errorf("decode private key: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return generator.Keypair{}, fmt.Errorf("private key is %d bytes, want %d", len(raw), ed25519.PrivateKeySize)
	}
	priv := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if string(priv[ed25519.SeedSize:]) != string(raw[ed25519.SeedSize:]) {
		return generator.Keypair{}, fmt.Errorf("public key does not match seed")
	}
	return generator.Keypair{PublicKey: priv[ed25519.SeedSize:], PrivateKey: priv}, nil
}
