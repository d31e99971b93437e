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
	"math/bits"
)

// Schedule is the sequence of round keys derived from a single key.
// Schedule[0] is the key itself and Schedule[Rounds] the last round key.
type Schedule [Rounds + 1]Block

// NewSchedule expands a 16-byte key into the 11 AES-128 round keys.
func NewSchedule(key []byte) (*Schedule, error) {
	k, err := Key128FromBytes(key)
	if err != nil {
		return nil, err
	}
	var ek ExpandedKey128
	ek.ExpandFrom(k)
	s := new(Schedule)
	for i := range ek {
		s[i] = ek[i].Block()
	}
	return s, nil
}

// Bytes returns the 176-byte concatenation of all the round keys.
func (s *Schedule) Bytes() []byte {
	out := make([]byte, 0, len(s)*BlockSize)
	for i := range s {
		out = append(out, s[i][:]...)
	}
	return out
}

// RotWord rotates the bytes of w left by one position.
func RotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

// SubWord applies the S-box to every byte of w.
func SubWord(w [4]byte) [4]byte {
	return [4]byte{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

// Rcon returns the round constant word (rc(r), 0, 0, 0) for 1 <= r <= Rounds.
func Rcon(r int) [4]byte {
	return [4]byte{byte(roundConstant[r-1]), 0, 0, 0}
}

// Words are little-endian, so byte 0 of the word lives in the low bits.

func aesSubWord(x uint32) uint32 {
	s0 := sbox[byte(x)]
	s1 := sbox[byte(x>>8)]
	s2 := sbox[byte(x>>16)]
	s3 := sbox[byte(x>>24)]
	return (uint32(s3) << 24) | (uint32(s2) << 16) | (uint32(s1) << 8) | uint32(s0)
}

func aesRotWord(x uint32) uint32 {
	return bits.RotateLeft32(x, -8)
}

func auxExpandFromKey128(p *ExpandedKey128, key Key128) {
	p[0] = key
	for i := 4; i < 4*(Rounds+1); i++ {
		t := p[(i-1)/4][(i-1)%4]
		if i%4 == 0 {
			t = aesSubWord(aesRotWord(t)) ^ roundConstant[(i/4)-1]
		}
		p[i/4][i%4] = p[(i-4)/4][(i-4)%4] ^ t
	}
}

// roundConstant[r-1] is rc(r): rc(1) = 1, rc(r) = xtime(rc(r-1)).
var roundConstant = [Rounds]uint32{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
