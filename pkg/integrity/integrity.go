// Package integrity validates BCSV payloads against a sidecar checksum file
// before they are trusted for decoding. The check is caller-controlled: an
// empty sidecar path skips it entirely.
package integrity

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMismatch is returned when a payload does not match its recorded
// checksum. It is distinct from structural decode errors so callers can tell
// tampering apart from malformation.
var ErrMismatch = errors.New("integrity: checksum mismatch")

// Sum returns the SHA-256 digest of the payload.
func Sum(data []byte) [sha256.Size]byte {
	return sha256.Sum256(data)
}

// Verify compares the payload against the checksum stored at sumPath. The
// sidecar holds either the raw 32 digest bytes or their hex encoding with an
// optional trailing newline. An empty sumPath skips verification.
func Verify(data []byte, sumPath string) error {
	if sumPath == "" {
		return nil
	}
	stored, err := os.ReadFile(sumPath)
	if err != nil {
		return fmt.Errorf("integrity: read %s: %w", sumPath, err)
	}
	want, err := parseSum(stored)
	if err != nil {
		return fmt.Errorf("integrity: %s: %w", sumPath, err)
	}
	got := Sum(data)
	if !bytes.Equal(got[:], want) {
		return fmt.Errorf("%w: payload %x, %s records %x", ErrMismatch, got, sumPath, want)
	}
	return nil
}

// WriteSum records the payload's checksum at sumPath in hex form.
func WriteSum(data []byte, sumPath string) error {
	got := Sum(data)
	out := hex.EncodeToString(got[:]) + "\n"
	if err := os.WriteFile(sumPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("integrity: write %s: %w", sumPath, err)
	}
	return nil
}

func parseSum(stored []byte) ([]byte, error) {
	if len(stored) == sha256.Size {
		return stored, nil
	}
	text := strings.TrimSpace(string(stored))
	sum, err := hex.DecodeString(text)
	if err != nil || len(sum) != sha256.Size {
		return nil, errors.New("not a sha-256 checksum")
	}
	return sum, nil
}
