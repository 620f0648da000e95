/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package binfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeMetadata_Padding(t *testing.T) {
	raw := EncodeMetadata("ABC", "test")

	assert.Len(t, raw, MetadataSize)
	assert.Equal(t, "METADATA:", string(raw[:9]))
	assert.Equal(t, "ABC"+strings.Repeat(" ", 12), string(raw[9:24]))
	assert.Equal(t, "test"+strings.Repeat(" ", 66), string(raw[24:]))
}

func TestEncodeMetadata_Truncation(t *testing.T) {
	longBoxcode := strings.Repeat("B", 20)
	longNotes := strings.Repeat("n", 100)
	raw := EncodeMetadata(longBoxcode, longNotes)

	assert.Len(t, raw, MetadataSize)
	assert.Equal(t, strings.Repeat("B", 15), string(raw[9:24]))
	assert.Equal(t, strings.Repeat("n", 70), string(raw[24:]))
}

func TestEncodeMetadata_Empty(t *testing.T) {
	raw := EncodeMetadata("", "")

	assert.Len(t, raw, MetadataSize)
	assert.Equal(t, "METADATA:"+strings.Repeat(" ", 85), string(raw))
}

func TestDecodeMetadata_TrimsPadding(t *testing.T) {
	// Decoding is lossy: trailing spaces in the original input are
	// indistinguishable from padding and come back trimmed.
	raw := EncodeMetadata("04E906016HA ", "test")
	m := decodeMetadata(raw)

	assert.Equal(t, "04E906016HA", m.Boxcode)
	assert.Equal(t, "test", m.Notes)
}
