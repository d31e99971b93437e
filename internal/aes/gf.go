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

// Xtime multiplies b by x in GF(2^8) modulo x^8+x^4+x^3+x+1 (FIPS-197, 4.2.1).
func Xtime(b byte) byte {
	return (b << 1) ^ (0x1b & -(b >> 7))
}

// Mul multiplies a by n in GF(2^8) using repeated Xtime (FIPS-197, 4.2.1).
func Mul(a, n byte) byte {
	var p byte
	for n != 0 {
		if n&1 != 0 {
			p ^= a
		}
		a = Xtime(a)
		n >>= 1
	}
	return p
}
