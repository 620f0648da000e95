/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package binfile

import (
	"bytes"
	"crypto/rsa"
	"fmt"
	"log"

	"github.com/ConnorHowell/VW-Flash/internal/signing"
)

// SigStatus classifies the outcome of checking one signature slot.
type SigStatus int

const (
	SigNotPresent SigStatus = iota // no trailer on the stream
	SigValid
	SigInvalid
	SigAbsent     // slot mirrors the primary signature: no independent signer
	SigUnverified // signature present but no key available to check it
)

func (s SigStatus) String() string {
	switch s {
	case SigNotPresent:
		return "not-present"
	case SigValid:
		return "valid"
	case SigInvalid:
		return "invalid"
	case SigAbsent:
		return "absent"
	case SigUnverified:
		return "unverified"
	default:
		return fmt.Sprintf("SigStatus(%d)", int(s))
	}
}

// Report describes what was found attached to a byte stream. It is a plain
// result value: cryptographic mismatch is recorded here, never raised.
type Report struct {
	TrailerPresent bool
	Primary        SigStatus
	Secondary      SigStatus
	Metadata       Metadata
	SignatureSize  int
}

// Authentic reports whether every signature that could be checked passed:
// the primary must be valid and a checked secondary must not have failed.
// An absent or unverified secondary does not count against the image.
func (r *Report) Authentic() bool {
	return r.Primary == SigValid && r.Secondary != SigInvalid
}

// Parser detects authenticity trailers on byte streams and verifies their
// signatures. The trust anchor is the tool-distributed public key the primary
// signature must match; it is injected here rather than read from a
// well-known location.
type Parser struct {
	anchor  *rsa.PublicKey
	enforce bool
	logger  *log.Logger
}

// NewParser constructs a Parser. anchor must be non-nil; its modulus size
// fixes the expected trailer length. With enforce set, Parse additionally
// returns ErrImageRejected for images whose trailer does not verify.
func NewParser(anchor *rsa.PublicKey, enforce bool, logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{anchor: anchor, enforce: enforce, logger: logger}
}

// TrailerSize returns the number of trailing bytes occupied by a trailer for
// this parser's signature size.
func (p *Parser) TrailerSize() int {
	return MetadataSize + 2*p.anchor.Size()
}

// Parse splits data into raw payload and trailer and checks the signatures.
// A stream that is too short to carry a trailer, or whose candidate trailer
// does not start with the recognized prefix, is treated as unsigned and
// returned unchanged. The payload is always returned, whatever the
// verification outcome; only in enforce mode does an unauthentic trailer
// additionally yield ErrImageRejected.
func (p *Parser) Parse(data []byte, secondary *rsa.PublicKey) ([]byte, *Report, error) {
	s := p.anchor.Size()
	trailer := MetadataSize + 2*s

	if len(data) < trailer || !bytes.HasPrefix(data[len(data)-trailer:], []byte(metadataPrefix)) {
		report := &Report{
			Primary:       SigNotPresent,
			Secondary:     SigNotPresent,
			SignatureSize: s,
		}
		return data, report, nil
	}

	p.logger.Printf("Found signature block in bin file, validating")

	payload := data[:len(data)-trailer]
	rawMetadata := data[len(data)-trailer : len(data)-2*s]
	sig1 := data[len(data)-2*s : len(data)-s]
	sig2 := data[len(data)-s:]

	// Both signatures cover the payload concatenated with the metadata
	// record, i.e. everything up to the first signature.
	signed := data[:len(data)-2*s]

	report := &Report{
		TrailerPresent: true,
		Metadata:       decodeMetadata(rawMetadata),
		SignatureSize:  s,
	}

	if signing.Verify(signed, sig1, p.anchor) {
		report.Primary = SigValid
		p.logger.Printf("First signature validated")
	} else {
		report.Primary = SigInvalid
		p.logger.Printf("First signature failed!")
	}

	switch {
	case bytes.Equal(sig1, sig2):
		report.Secondary = SigAbsent
		p.logger.Printf("No secondary signature found")
	case secondary != nil:
		if signing.Verify(signed, sig2, secondary) {
			report.Secondary = SigValid
			p.logger.Printf("Second signature validated")
		} else {
			report.Secondary = SigInvalid
			p.logger.Printf("Second signature failed!")
		}
	default:
		report.Secondary = SigUnverified
		p.logger.Printf("File contains additional signature, but no public key provided")
	}

	if p.enforce && !report.Authentic() {
		return payload, report, ErrImageRejected
	}
	return payload, report, nil
}
