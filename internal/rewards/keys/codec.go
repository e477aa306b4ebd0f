// Package keys derives and matches the textual representations of a device
// identifier: raw bytes, hex, standard base64, plain base58 and checksummed
// base58 with a version byte.
package keys

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DefaultVersion is the version byte used when a key is derived from raw
// payload bytes rather than an already-versioned encoding.
const DefaultVersion byte = 0

const checksumLen = 4

// Payload lengths the raw-bytes dispatch recognizes.
const (
	keyBlobLen    = 264
	ed25519KeyLen = 32
)

// Formats holds every representation of one device key. All fields are
// derived once per target at the start of a scan and read-only afterwards.
// Base58Check is empty when the original input was plain base58 and no
// version byte is known.
type Formats struct {
	Original    string
	RawBase58   string
	Hex         string
	Base64      string
	Base58Check string
}

// CheckEncode encodes version ‖ payload ‖ first 4 bytes of
// SHA256(SHA256(version ‖ payload)) with the standard base58 alphabet.
func CheckEncode(payload []byte, version byte) string {
	versioned := make([]byte, 0, 1+len(payload)+checksumLen)
	versioned = append(versioned, version)
	versioned = append(versioned, payload...)
	checksum := chainhash.DoubleHashB(versioned)[:checksumLen]
	return base58.Encode(append(versioned, checksum...))
}

// CheckDecode is the inverse of CheckEncode. It validates the trailing
// checksum and splits off the leading version byte.
func CheckDecode(encoded string) (payload []byte, version byte, err error) {
	decoded := base58.Decode(encoded)
	if len(decoded) < 1+checksumLen {
		return nil, 0, fmt.Errorf("checksummed key too short: %d bytes", len(decoded))
	}
	body := decoded[:len(decoded)-checksumLen]
	checksum := decoded[len(decoded)-checksumLen:]

	want := chainhash.DoubleHashB(body)[:checksumLen]
	for i := range checksum {
		if checksum[i] != want[i] {
			return nil, 0, fmt.Errorf("checksum mismatch for key %q", encoded)
		}
	}
	return body[1:], body[0], nil
}

// DeriveFormats derives every representation of a human-supplied key. The
// input is tried as checksummed base58 first, then hex, then standard
// base64; anything else is treated as plain base58. DeriveFormats never
// fails: an undecodable input simply yields fewer usable representations.
func DeriveFormats(key string) Formats {
	f := Formats{Original: key}

	if payload, version, err := CheckDecode(key); err == nil {
		f.Base58Check = CheckEncode(payload, version)
		f.RawBase58 = base58.Encode(payload)
		f.Hex = hex.EncodeToString(payload)
		f.Base64 = base64.StdEncoding.EncodeToString(payload)
		return f
	}

	if payload, err := hex.DecodeString(key); err == nil && len(payload) > 0 {
		f.Base58Check = CheckEncode(payload, DefaultVersion)
		f.RawBase58 = base58.Encode(payload)
		f.Hex = key
		f.Base64 = base64.StdEncoding.EncodeToString(payload)
		return f
	}

	if payload, err := base64.StdEncoding.DecodeString(key); err == nil && len(payload) > 0 {
		f.Base58Check = CheckEncode(payload, DefaultVersion)
		f.RawBase58 = base58.Encode(payload)
		f.Hex = hex.EncodeToString(payload)
		f.Base64 = key
		return f
	}

	// Plain base58: the version byte is unknown, so no checksummed form.
	f.RawBase58 = key
	if payload := base58.Decode(key); len(payload) > 0 {
		f.Hex = hex.EncodeToString(payload)
		f.Base64 = base64.StdEncoding.EncodeToString(payload)
	}
	return f
}

// FromRawBytes converts key bytes found inside a decoded message to a
// displayable identifier. A 264-byte payload is a versioned public key blob
// and is checksum-encoded whole; a 32-byte payload is a raw Ed25519 public
// key and is plain-base58 encoded. Other lengths yield a diagnostic
// placeholder rather than an error.
func FromRawBytes(payload []byte) string {
	switch len(payload) {
	case keyBlobLen:
		return CheckEncode(payload, DefaultVersion)
	case ed25519KeyLen:
		return base58.Encode(payload)
	default:
		return fmt.Sprintf("unsupported-key-%db", len(payload))
	}
}
