// Package framing splits a decompressed byte stream into length-prefixed frames.
package framing

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hotspotmetrics/rewardscan-backend/pkg/safe"
)

// MaxFrameLen caps a single frame. A corrupt length prefix must not be able
// to trigger a multi-gigabyte allocation.
const MaxFrameLen = 64 << 20

// ErrFrameTooLarge marks a length prefix beyond MaxFrameLen.
var ErrFrameTooLarge = errors.New("frame exceeds size limit")

// Scanner yields discrete message payloads from a stream where each message
// is preceded by a 4-byte unsigned big-endian length. The underlying reader
// may deliver data in arbitrarily sized chunks; frame boundaries are exact
// regardless of chunking. A truncated trailing frame is an accepted terminal
// condition and is silently discarded.
type Scanner struct {
	r      io.Reader
	header [4]byte
	done   bool
}

// NewScanner wraps r for frame splitting. The scanner is single use.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: r}
}

// Next returns the next frame payload, io.EOF when the stream is exhausted
// (including a partial trailing frame), or an error for an oversized frame.
func (s *Scanner) Next() ([]byte, error) {
	if s.done {
		return nil, io.EOF
	}

	if _, err := io.ReadFull(s.r, s.header[:]); err != nil {
		// A short header means the producer stopped mid-frame; per the
		// format that terminates the stream, it is not an error.
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			s.done = true
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read frame header: %w", err)
	}

	length := binary.BigEndian.Uint32(s.header[:])
	if length > MaxFrameLen {
		s.done = true
		return nil, fmt.Errorf("frame length %d: %w", length, ErrFrameTooLarge)
	}
	size, err := safe.Int(length)
	if err != nil {
		s.done = true
		return nil, fmt.Errorf("frame length %d: %w", length, ErrFrameTooLarge)
	}

	frame := make([]byte, size)
	if _, err := io.ReadFull(s.r, frame); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			s.done = true
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read frame body: %w", err)
	}
	return frame, nil
}
