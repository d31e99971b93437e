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

// State is a Block viewed as a 4x4 byte matrix in column-major order:
// byte 4*c+r holds row r of column c.
//
//	00 04 08 12
//	01 05 09 13
//	02 06 10 14
//	03 07 11 15
type State Block

// At returns the byte at row r, column c.
func (s *State) At(r, c int) byte { return s[4*c+r] }

// Set stores v at row r, column c.
func (s *State) Set(r, c int, v byte) { s[4*c+r] = v }

// Column returns column c.
func (s *State) Column(c int) [4]byte {
	return [4]byte{s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]}
}

// SetColumn replaces column c.
func (s *State) SetColumn(c int, col [4]byte) {
	copy(s[4*c:4*c+4], col[:])
}

// LoadState copies a 16-byte slice into a new State.
func LoadState(b []byte) (State, error) {
	var s State
	if len(b) != BlockSize {
		return s, ErrBlockSize
	}
	copy(s[:], b)
	return s, nil
}
