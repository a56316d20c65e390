// Package password generates one-time credentials for newly provisioned
// machines.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphabet is the character set credentials are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!@#$%^&*"

// DefaultLength is the credential length used by the provisioning workflow.
const DefaultLength = 12

// Generate returns a random credential of the given length drawn uniformly
// from Alphabet. The credential is the sole initial authentication secret for
// a new machine, so only a cryptographically strong source is acceptable.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(Alphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		out[i] = Alphabet[n.Int64()]
	}
	return string(out), nil
}
