package snapshot

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// HashSize is the length in bytes of a content hash.
const HashSize = 32

// Hash is the BLAKE3-256 digest of a file's content. It identifies content,
// not files: two files with the same bytes share a Hash.
type Hash [HashSize]byte

// HashBytes hashes data.
func HashBytes(data []byte) Hash {
	return Hash(blake3.Sum256(data))
}

// HashReader hashes everything read from r until EOF.
func HashReader(r io.Reader) (Hash, error) {
	h := blake3.New()
	if _, err := io.Copy(h, r); err != nil {
		return Hash{}, err
	}

	var out Hash
	copy(out[:], h.Sum(nil))
	return out, nil
}

// ParseHash decodes the 64-character hex form produced by Hash.String.
func ParseHash(s string) (Hash, error) {
	var h Hash
	if len(s) != hex.EncodedLen(HashSize) {
		return h, fmt.Errorf("hash %q: want %d hex characters, got %d", s, hex.EncodedLen(HashSize), len(s))
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return h, fmt.Errorf("hash %q: %w", s, err)
	}
	return h, nil
}

// String returns the lowercase hex encoding.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 8 hex characters, for display.
func (h Hash) Short() string {
	return h.String()[:8]
}

// IsZero reports whether h is the zero value.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
