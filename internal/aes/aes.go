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

// Package aes implements the AES-128 block cipher as described in FIPS-197:
// GF(2^8) arithmetic, the round transformations on a 4x4 byte State, the
// key expansion and the single-block encryption/decryption sequence.
//
// The implementation is a portable, table-driven one. It makes no attempt
// at constant-time execution and must not be used where side channels matter.
package aes

import (
	"encoding/binary"
	"errors"

	"github.com/SnellerInc/rijndael/ints"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// KeySize is the only supported key size (AES-128) in bytes.
	KeySize = 16
	// Rounds is the number of rounds performed by AES-128.
	Rounds = 10
)

var (
	// ErrKeySize is returned when a key is not exactly KeySize bytes.
	ErrKeySize = errors.New("aes: invalid key size, must be 16 bytes")

	// ErrBlockSize is returned when a block is not exactly BlockSize bytes.
	ErrBlockSize = errors.New("aes: invalid block size, must be 16 bytes")
)

// Block is a single 16-byte unit of plaintext, ciphertext or round key material.
type Block [BlockSize]byte

// Key128 represents a 128-bit AES key as four little-endian words.
type Key128 [4]uint32

// ExpandedKey128 stores the 11 round keys produced by the AES key expansion algorithm.
type ExpandedKey128 [Rounds + 1]Key128

// ExpandFrom takes a Key128 key and expands it into 11 round keys
func (p *ExpandedKey128) ExpandFrom(key Key128) { auxExpandFromKey128(p, key) }

// Key128FromBytes packs a 16-byte key into words.
func Key128FromBytes(b []byte) (Key128, error) {
	var key Key128
	if len(b) != KeySize {
		return key, ErrKeySize
	}
	for i := range key {
		key[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return key, nil
}

// Block returns the byte representation of key.
func (key Key128) Block() Block {
	var b Block
	for i, w := range key {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

// RandomKey128 creates a 128-bit key with cryptographically strong RNG values
func RandomKey128() (Key128, error) {
	var key Key128
	err := ints.RandomFillSlice(key[:])
	return key, err
}

// RandomKey returns a fresh random 16-byte key.
func RandomKey() ([]byte, error) {
	key, err := RandomKey128()
	if err != nil {
		return nil, err
	}
	b := key.Block()
	return b[:], nil
}
