// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

// macLength is the number of octets in a MAC-48 address.
const macLength = 6

// RandomMAC draws six bytes from r and renders them as colon-separated
// lowercase hex octets ("xx:xx:xx:xx:xx:xx"). A nil r means crypto/rand.
func RandomMAC(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}

	buf := make([]byte, macLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("error reading random bytes for mac: %w", err)
	}

	return FormatMAC(buf), nil
}

// FormatMAC renders b as colon-separated lowercase hex octets.
func FormatMAC(b []byte) string {
	octets := make([]string, len(b))
	for i, v := range b {
		octets[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(octets, ":")
}
