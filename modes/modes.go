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

// Package modes implements the ECB and CBC block chaining modes on top
// of the AES-128 engine in internal/aes.
//
// Both modes operate on buffers whose length is a multiple of the AES
// block size; padding is the caller's business (see package padding).
// Every Encrypt/Decrypt call derives its own key schedule, so values of
// ECB may be shared freely. A CBC value carries its IV and must not be
// mutated with SetIV while another goroutine is using it.
package modes

import (
	"errors"
	"fmt"

	"github.com/SnellerInc/rijndael/internal/aes"
)

// BlockSize is the block size of every mode in this package.
const BlockSize = aes.BlockSize

var (
	// ErrNotBlockAligned is returned when an input is not a multiple of BlockSize bytes.
	ErrNotBlockAligned = errors.New("modes: input is not a multiple of the AES block size")

	// ErrIVSize is returned by SetIV when the IV is not BlockSize bytes.
	ErrIVSize = errors.New("modes: invalid IV size, must be 16 bytes")

	// ErrIVNotSet is returned by CBC when no IV has been set.
	ErrIVNotSet = errors.New("modes: IV is not initialized (use SetIV first)")

	// ErrKeySize is returned when the key is not 16 bytes.
	ErrKeySize = aes.ErrKeySize
)

// SymmetricCipher is implemented by every mode in this package.
type SymmetricCipher interface {
	// Encrypt encrypts plaintext under key and returns a new buffer.
	Encrypt(plaintext, key []byte) ([]byte, error)
	// Decrypt decrypts ciphertext under key and returns a new buffer.
	Decrypt(ciphertext, key []byte) ([]byte, error)
}

var (
	_ SymmetricCipher = ECB{}
	_ SymmetricCipher = (*CBC)(nil)
)

func checkAligned(op string, in []byte) error {
	if len(in)%BlockSize != 0 {
		return fmt.Errorf("%s: %d bytes: %w", op, len(in), ErrNotBlockAligned)
	}
	return nil
}

func newCipher(op string, key []byte) (*aes.Cipher, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func xorBlock(dst, a, b []byte) {
	for i := 0; i < BlockSize; i++ {
		dst[i] = a[i] ^ b[i]
	}
}
