package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Hash returns the hex-encoded SHA-256 digest of data. Conversion
// entries are addressed by the digest of the analysis document, render
// entries by the digest of the exported graph.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// deriveKey builds a "<kind>:<digest>" key from the fields that
// identify an entry. Fields are separated by NUL before hashing so
// ("ab", "c") and ("a", "bc") cannot collide.
func deriveKey(kind string, fields ...string) string {
	h := sha256.New()
	for _, f := range fields {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}

// DefaultKeyer derives keys as "<kind>:<sha256 of the identifying fields>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ConversionKey identifies a converted graph.
func (k *DefaultKeyer) ConversionKey(format, docHash string) string {
	return deriveKey("convert", format, docHash)
}

// RenderKey identifies a rendered artifact. Every option that changes
// the output bytes is part of the key.
func (k *DefaultKeyer) RenderKey(graphHash string, opts RenderKeyOpts) string {
	return deriveKey("render", graphHash, opts.Format, opts.Direction, strconv.FormatBool(opts.Detailed))
}
