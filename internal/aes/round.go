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

// The transformations below mutate the State in place (FIPS-197, 5.1 and 5.3).

// SubBytes substitutes every byte of s through the S-box.
func SubBytes(s *State) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

// InvSubBytes substitutes every byte of s through the inverse S-box.
func InvSubBytes(s *State) {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// ShiftRows rotates row r of s left by r positions.
func ShiftRows(s *State) {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s.At(r, (c+r)%4)
		}
		for c := 0; c < 4; c++ {
			s.Set(r, c, row[c])
		}
	}
}

// InvShiftRows rotates row r of s right by r positions.
func InvShiftRows(s *State) {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[(c+r)%4] = s.At(r, c)
		}
		for c := 0; c < 4; c++ {
			s.Set(r, c, row[c])
		}
	}
}

// mixMatrix and invMixMatrix are the first rows of the circulant MDS
// matrix and its inverse; row i is the first row rotated right by i.
var (
	mixMatrix    = [4]byte{0x02, 0x03, 0x01, 0x01}
	invMixMatrix = [4]byte{0x0e, 0x0b, 0x0d, 0x09}
)

func mixColumn(col [4]byte, m *[4]byte) [4]byte {
	var out [4]byte
	for r := 0; r < 4; r++ {
		var v byte
		for i := 0; i < 4; i++ {
			v ^= Mul(col[i], m[(i-r+4)%4])
		}
		out[r] = v
	}
	return out
}

// MixColumns multiplies every column of s by the AES MDS matrix.
func MixColumns(s *State) {
	for c := 0; c < 4; c++ {
		s.SetColumn(c, mixColumn(s.Column(c), &mixMatrix))
	}
}

// InvMixColumns multiplies every column of s by the inverse MDS matrix.
func InvMixColumns(s *State) {
	for c := 0; c < 4; c++ {
		s.SetColumn(c, mixColumn(s.Column(c), &invMixMatrix))
	}
}

// AddRoundKey xors k into s. It is its own inverse.
func AddRoundKey(s *State, k *Block) {
	for i := range s {
		s[i] ^= k[i]
	}
}
