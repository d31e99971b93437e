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
	"fmt"
)

// EncryptBlock encrypts a single 16-byte block under a 16-byte key.
// The key schedule is derived on every call; use Cipher to amortize it.
func EncryptBlock(block, key []byte) ([]byte, error) {
	ks, err := NewSchedule(key)
	if err != nil {
		return nil, err
	}
	s, err := LoadState(block)
	if err != nil {
		return nil, err
	}
	ks.encrypt(&s)
	return s[:], nil
}

// DecryptBlock decrypts a single 16-byte block under a 16-byte key.
func DecryptBlock(block, key []byte) ([]byte, error) {
	ks, err := NewSchedule(key)
	if err != nil {
		return nil, err
	}
	s, err := LoadState(block)
	if err != nil {
		return nil, err
	}
	ks.decrypt(&s)
	return s[:], nil
}

// EncryptBlockTo encrypts src into dst with the already expanded schedule.
// Both slices must hold at least BlockSize bytes.
func (ks *Schedule) EncryptBlockTo(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return fmt.Errorf("encrypt: %w", ErrBlockSize)
	}
	var s State
	copy(s[:], src)
	ks.encrypt(&s)
	copy(dst, s[:])
	return nil
}

// DecryptBlockTo decrypts src into dst with the already expanded schedule.
func (ks *Schedule) DecryptBlockTo(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return fmt.Errorf("decrypt: %w", ErrBlockSize)
	}
	var s State
	copy(s[:], src)
	ks.decrypt(&s)
	copy(dst, s[:])
	return nil
}

func (ks *Schedule) encrypt(s *State) {
	AddRoundKey(s, &ks[0])
	for round := 1; round < Rounds; round++ {
		SubBytes(s)
		ShiftRows(s)
		MixColumns(s)
		AddRoundKey(s, &ks[round])
	}
	// the final round has no MixColumns
	SubBytes(s)
	ShiftRows(s)
	AddRoundKey(s, &ks[Rounds])
}

func (ks *Schedule) decrypt(s *State) {
	AddRoundKey(s, &ks[Rounds])
	for round := Rounds - 1; round > 0; round-- {
		InvShiftRows(s)
		InvSubBytes(s)
		AddRoundKey(s, &ks[round])
		InvMixColumns(s)
	}
	InvShiftRows(s)
	InvSubBytes(s)
	AddRoundKey(s, &ks[0])
}
