package mimekit

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Signature defines one candidate byte pattern for content detection.
type Signature struct {
	// Bytes is the expected pattern. Required, non-empty.
	Bytes []byte

	// Mask selects the significant bits per position. When nil every bit
	// is significant (0xFF). When present it must have the same length
	// as Bytes.
	Mask []byte

	// Offset is the buffer position where the comparison begins.
	Offset int
}

// Match reports whether the signature matches buf. A buffer shorter than
// Offset+len(Bytes) never matches; there is not enough data to decide.
func (s Signature) Match(buf []byte) bool {
	if len(buf) < s.Offset+len(s.Bytes) {
		return false
	}
	for i, b := range s.Bytes {
		m := byte(0xFF)
		if s.Mask != nil {
			m = s.Mask[i]
		}
		if buf[s.Offset+i]&m != b&m {
			return false
		}
	}
	return true
}

// validate checks the signature's static invariants.
func (s Signature) validate() error {
	if len(s.Bytes) == 0 {
		return fmt.Errorf("%w: empty byte pattern", ErrInvalidSignature)
	}
	if s.Mask != nil && len(s.Mask) != len(s.Bytes) {
		return fmt.Errorf("%w: mask length %d does not match pattern length %d",
			ErrInvalidSignature, len(s.Mask), len(s.Bytes))
	}
	if s.Offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrInvalidSignature, s.Offset)
	}
	return nil
}

// SignatureGroup pairs a MIME type with alternative signatures. Any one
// signature matching is sufficient.
type SignatureGroup struct {
	MIME       string
	Signatures []Signature
}

// Detector matches byte buffers against an ordered signature table.
// Groups are tried in declaration order and the first match wins, so
// table order is the tie-break when patterns could overlap.
//
// A Detector is immutable after construction and safe for concurrent use.
type Detector struct {
	groups      []SignatureGroup
	maxSpan     int
	fingerprint uint64
}

// NewDetector builds a Detector from signature groups. Malformed table
// data (empty MIME, empty group, mask length mismatch, negative offset)
// is rejected here rather than silently mismatching at runtime.
func NewDetector(groups ...SignatureGroup) (*Detector, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no signature groups", ErrInvalidSignature)
	}

	d := &Detector{groups: groups}
	h := xxhash.New()

	for gi, g := range groups {
		if g.MIME == "" {
			return nil, fmt.Errorf("%w: group %d has an empty MIME type", ErrInvalidSignature, gi)
		}
		if len(g.Signatures) == 0 {
			return nil, fmt.Errorf("%w: group %q has no signatures", ErrInvalidSignature, g.MIME)
		}
		for si, s := range g.Signatures {
			if err := s.validate(); err != nil {
				return nil, fmt.Errorf("group %q signature %d: %w", g.MIME, si, err)
			}
			if span := s.Offset + len(s.Bytes); span > d.maxSpan {
				d.maxSpan = span
			}
			fmt.Fprintf(h, "%s|%d|%x|%x;", g.MIME, s.Offset, s.Bytes, s.Mask)
		}
	}

	d.fingerprint = h.Sum64()
	return d, nil
}

// mustDetector builds a Detector from table data known to be valid.
func mustDetector(groups ...SignatureGroup) *Detector {
	d, err := NewDetector(groups...)
	if err != nil {
		panic("mimekit: " + err.Error())
	}
	return d
}

// Detect scans the table in declaration order and returns the MIME type
// of the first matching signature, or false when nothing matches.
func (d *Detector) Detect(buf []byte) (string, bool) {
	for _, g := range d.groups {
		for _, s := range g.Signatures {
			if s.Match(buf) {
				return g.MIME, true
			}
		}
	}
	return "", false
}

// MaxSpan returns the largest Offset+len(Bytes) across the table: the
// minimum buffer length that can exercise every signature.
func (d *Detector) MaxSpan() int {
	return d.maxSpan
}

// Fingerprint returns a stable hash of the table contents. Resolvers use
// it to namespace cache keys, so detectors with different tables can
// share one cache backend.
func (d *Detector) Fingerprint() uint64 {
	return d.fingerprint
}
