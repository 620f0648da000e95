/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package util

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// RenderCBORPretty decodes CBOR-encoded data and renders it as indented JSON
// for human consumption. Byte strings are shown in CBOR diagnostic h'..'
// notation.
func RenderCBORPretty(data []byte) (string, error) {
	var decoded any
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("decode CBOR: %w", err)
	}

	pretty, err := json.MarshalIndent(normaliseForJSON(decoded), "", "  ")
	if err != nil {
		return "", err
	}
	return string(pretty), nil
}

func normaliseForJSON(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = normaliseForJSON(elem)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := make(map[string]any, len(v))
		for _, k := range keys {
			out[k] = normaliseForJSON(v[k])
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[stringifyCBORKey(key)] = normaliseForJSON(val)
		}
		return out
	case []byte:
		return fmt.Sprintf("h'%x'", v)
	default:
		return v
	}
}

func stringifyCBORKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	case []byte:
		return fmt.Sprintf("h'%x'", k)
	default:
		return fmt.Sprint(k)
	}
}
