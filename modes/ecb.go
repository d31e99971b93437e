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
	"crypto/cipher"
)

// ECB is the electronic codebook mode: every block is encrypted
// independently, so equal plaintext blocks give equal ciphertext blocks.
// The zero value is ready to use.
type ECB struct{}

// Encrypt implements SymmetricCipher.
func (ECB) Encrypt(plaintext, key []byte) ([]byte, error) {
	if err := checkAligned("ecb encrypt", plaintext); err != nil {
		return nil, err
	}
	c, err := newCipher("ecb encrypt", key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	ecbCrypt(c.Encrypt, out, plaintext)
	return out, nil
}

// Decrypt implements SymmetricCipher.
func (ECB) Decrypt(ciphertext, key []byte) ([]byte, error) {
	if err := checkAligned("ecb decrypt", ciphertext); err != nil {
		return nil, err
	}
	c, err := newCipher("ecb decrypt", key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	ecbCrypt(c.Decrypt, out, ciphertext)
	return out, nil
}

func ecbCrypt(fn func(dst, src []byte), dst, src []byte) {
	forEachBlock(len(src)/BlockSize, func(i int) {
		off := i * BlockSize
		fn(dst[off:off+BlockSize], src[off:off+BlockSize])
	})
}

type ecbEncrypter struct {
	b cipher.Block
}

type ecbDecrypter struct {
	b cipher.Block
}

// NewECBEncrypter returns a cipher.BlockMode which encrypts in ECB mode
// using b. Like the standard library modes, CryptBlocks panics on
// input that is not full blocks.
func NewECBEncrypter(b cipher.Block) cipher.BlockMode { return ecbEncrypter{b} }

// NewECBDecrypter returns a cipher.BlockMode which decrypts in ECB mode using b.
func NewECBDecrypter(b cipher.Block) cipher.BlockMode { return ecbDecrypter{b} }

func (e ecbEncrypter) BlockSize() int { return e.b.BlockSize() }
func (d ecbDecrypter) BlockSize() int { return d.b.BlockSize() }

func (e ecbEncrypter) CryptBlocks(dst, src []byte) { cryptBlocks(e.b.BlockSize(), e.b.Encrypt, dst, src) }
func (d ecbDecrypter) CryptBlocks(dst, src []byte) { cryptBlocks(d.b.BlockSize(), d.b.Decrypt, dst, src) }

func cryptBlocks(bs int, fn func(dst, src []byte), dst, src []byte) {
	if len(src)%bs != 0 {
		panic("modes: input not full blocks")
	} else if len(dst) < len(src) {
		panic("modes: output smaller than input")
	}
	for len(src) > 0 {
		fn(dst[:bs], src[:bs])
		src = src[bs:]
		dst = dst[bs:]
	}
}
