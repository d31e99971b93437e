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

package aes

import (
	"crypto/cipher"
)

// Cipher holds a precomputed key schedule so that many blocks can be
// processed without re-expanding the key. It implements cipher.Block
// and is safe for concurrent use once constructed.
type Cipher struct {
	ks Schedule
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key and returns a reusable cipher context.
func NewCipher(key []byte) (*Cipher, error) {
	ks, err := NewSchedule(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{ks: *ks}, nil
}

// Schedule returns the round keys of c.
func (c *Cipher) Schedule() *Schedule { return &c.ks }

// BlockSize implements cipher.Block.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt implements cipher.Block. Like the standard library it panics
// when src or dst is shorter than a block.
func (c *Cipher) Encrypt(dst, src []byte) {
	if err := c.ks.EncryptBlockTo(dst, src); err != nil {
		panic("aes: " + err.Error())
	}
}

// Decrypt implements cipher.Block.
func (c *Cipher) Decrypt(dst, src []byte) {
	if err := c.ks.DecryptBlockTo(dst, src); err != nil {
		panic("aes: " + err.Error())
	}
}
