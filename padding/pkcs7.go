// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package padding implements PKCS#7 padding (RFC 5652, section 6.3).
package padding

import (
	"errors"
	"fmt"
)

// ErrInvalidPadding is returned by Unpad when the input does not end in
// well-formed PKCS#7 padding.
var ErrInvalidPadding = errors.New("padding: malformed PKCS#7 padding")

// Pad returns a copy of in extended with 1..blockSize bytes, each holding
// the number of bytes added. blockSize must be in [1, 255].
func Pad(in []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 255 {
		panic(fmt.Sprintf("padding: invalid block size %d", blockSize))
	}
	n := blockSize - len(in)%blockSize
	out := make([]byte, len(in), len(in)+n)
	copy(out, in)
	for i := 0; i < n; i++ {
		out = append(out, byte(n))
	}
	return out
}

// Unpad strips PKCS#7 padding from in. The returned slice aliases in.
func Unpad(in []byte, blockSize int) ([]byte, error) {
	if len(in) == 0 || len(in)%blockSize != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(in), ErrInvalidPadding)
	}
	n := int(in[len(in)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("pad byte %#02x: %w", n, ErrInvalidPadding)
	}
	for _, b := range in[len(in)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("pad byte %#02x: %w", n, ErrInvalidPadding)
		}
	}
	return in[:len(in)-n], nil
}
