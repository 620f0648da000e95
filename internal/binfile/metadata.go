/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package binfile implements the signed firmware image format: a fixed-width
// metadata record plus two RSA signatures appended to a raw payload, and the
// fail-safe detection, verification and stripping of that trailer.
package binfile

import "strings"

// Wire layout of a trailer, appended to the end of the payload:
//
//	"METADATA:"              9 bytes
//	boxcode, space-padded   15 bytes
//	notes, space-padded     70 bytes
//	signature #1             S bytes (S = RSA modulus byte length)
//	signature #2             S bytes
//
// S is 128 for the stock 1024-bit VW scheme, giving a 350-byte trailer.
const (
	metadataPrefix = "METADATA:"

	BoxcodeSize  = 15
	NotesSize    = 70
	MetadataSize = len(metadataPrefix) + BoxcodeSize + NotesSize
)

// Metadata is the descriptive record carried in the trailer. The encoded form
// pads both fields with spaces, so decoding cannot tell trailing spaces in
// the original input apart from padding; the round trip is lossy on purpose.
type Metadata struct {
	Boxcode string
	Notes   string
}

// EncodeMetadata builds the fixed-width metadata record. Inputs longer than
// their field are truncated, shorter ones right-padded with spaces; the
// result is always exactly MetadataSize bytes.
func EncodeMetadata(boxcode, notes string) []byte {
	buf := make([]byte, 0, MetadataSize)
	buf = append(buf, metadataPrefix...)
	buf = appendPadded(buf, boxcode, BoxcodeSize)
	buf = appendPadded(buf, notes, NotesSize)
	return buf
}

func appendPadded(buf []byte, s string, width int) []byte {
	b := []byte(s)
	if len(b) > width {
		b = b[:width]
	}
	buf = append(buf, b...)
	for i := len(b); i < width; i++ {
		buf = append(buf, ' ')
	}
	return buf
}

// decodeMetadata expects a raw record of exactly MetadataSize bytes starting
// with the recognized prefix.
func decodeMetadata(raw []byte) Metadata {
	boxcode := raw[len(metadataPrefix) : len(metadataPrefix)+BoxcodeSize]
	notes := raw[len(metadataPrefix)+BoxcodeSize:]
	return Metadata{
		Boxcode: strings.TrimRight(string(boxcode), " "),
		Notes:   strings.TrimRight(string(notes), " "),
	}
}
