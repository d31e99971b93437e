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

package modes

import (
	"fmt"

	"github.com/SnellerInc/rijndael/internal/aes"
)

// CBC is the cipher block chaining mode. SetIV must be called before
// Encrypt or Decrypt. The IV is kept across calls; reusing it for
// independent messages is the caller's responsibility to avoid.
type CBC struct {
	iv    aes.Block
	ivSet bool
}

// NewCBC returns a CBC with iv already set.
func NewCBC(iv []byte) (*CBC, error) {
	c := new(CBC)
	if err := c.SetIV(iv); err != nil {
		return nil, err
	}
	return c, nil
}

// SetIV sets the initialization vector. On error the previous IV is kept.
func (c *CBC) SetIV(iv []byte) error {
	if len(iv) != BlockSize {
		return fmt.Errorf("set iv: %d bytes: %w", len(iv), ErrIVSize)
	}
	copy(c.iv[:], iv)
	c.ivSet = true
	return nil
}

// IV returns a copy of the current IV, or nil if none is set.
func (c *CBC) IV() []byte {
	if !c.ivSet {
		return nil
	}
	return append([]byte(nil), c.iv[:]...)
}

func (c *CBC) check(op string, in []byte) error {
	if err := checkAligned(op, in); err != nil {
		return err
	}
	if !c.ivSet {
		return fmt.Errorf("%s: %w", op, ErrIVNotSet)
	}
	return nil
}

// Encrypt implements SymmetricCipher. Each block is xored with the
// previous ciphertext block (the IV for the first one) before it is
// encrypted, so this is strictly sequential.
func (c *CBC) Encrypt(plaintext, key []byte) ([]byte, error) {
	if err := c.check("cbc encrypt", plaintext); err != nil {
		return nil, err
	}
	b, err := newCipher("cbc encrypt", key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	mix := c.iv[:]
	for off := 0; off < len(plaintext); off += BlockSize {
		dst := out[off : off+BlockSize]
		xorBlock(dst, plaintext[off:off+BlockSize], mix)
		b.Encrypt(dst, dst)
		mix = dst
	}
	return out, nil
}

// Decrypt implements SymmetricCipher. Block i only depends on
// ciphertext blocks i and i-1, so large inputs are decrypted in parallel.
func (c *CBC) Decrypt(ciphertext, key []byte) ([]byte, error) {
	if err := c.check("cbc decrypt", ciphertext); err != nil {
		return nil, err
	}
	b, err := newCipher("cbc decrypt", key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	iv := c.iv
	forEachBlock(len(ciphertext)/BlockSize, func(i int) {
		off := i * BlockSize
		dst := out[off : off+BlockSize]
		b.Decrypt(dst, ciphertext[off:off+BlockSize])
		prev := iv[:]
		if i > 0 {
			prev = ciphertext[off-BlockSize : off]
		}
		xorBlock(dst, dst, prev)
	})
	return out, nil
}
