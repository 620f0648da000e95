/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package binfile

import (
	"crypto/rsa"
	"fmt"
	"os"
)

// LoadAndVerify reads the file at path and runs Parse on its contents.
func (p *Parser) LoadAndVerify(path string, secondary *rsa.PublicKey) ([]byte, *Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read image %s: %w", path, err)
	}
	return p.Parse(data, secondary)
}

// ComposeAndSave writes the signed image for payload to path.
func ComposeAndSave(path string, payload []byte, boxcode, notes string, primary, secondary *rsa.PrivateKey) error {
	image, err := Compose(payload, boxcode, notes, primary, secondary)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, image, 0o644); err != nil {
		return fmt.Errorf("write signed image %s: %w", path, err)
	}
	return nil
}
