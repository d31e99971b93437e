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

// Package analysis detects ECB-mode ciphertext by looking for repeated blocks.
package analysis

import (
	"bytes"

	"github.com/dchest/siphash"

	"github.com/SnellerInc/rijndael/ints"
)

// BlockSize is the size of the blocks compared by RepeatedBlockScore.
const BlockSize = 16

var k0, k1 uint64

func init() {
	var keys [2]uint64
	if err := ints.RandomFillSlice(keys[:]); err != nil {
		panic(err)
	}
	k0, k1 = keys[0], keys[1]
}

// RepeatedBlockScore returns the number of pairs of identical BlockSize
// blocks in in, divided by the total number of block pairs. The result is
// in [0, 1]; inputs with fewer than two blocks score 0. A trailing
// partial block is ignored.
func RepeatedBlockScore(in []byte) float64 {
	n := len(in) / BlockSize
	if n < 2 {
		return 0
	}
	buckets := make(map[uint64][][]byte, n)
	matching := 0
	for i := 0; i < n; i++ {
		blk := in[i*BlockSize : (i+1)*BlockSize]
		h := siphash.Hash(k0, k1, blk)
		for _, prev := range buckets[h] {
			if bytes.Equal(prev, blk) {
				matching++
			}
		}
		buckets[h] = append(buckets[h], blk)
	}
	return float64(matching) / float64(n*(n-1)/2)
}

// MostLikelyECB returns the index of the input with the highest
// RepeatedBlockScore and that score. It returns -1 for no inputs.
func MostLikelyECB(inputs [][]byte) (int, float64) {
	best, score := -1, -1.0
	for i, in := range inputs {
		if s := RepeatedBlockScore(in); s > score {
			best, score = i, s
		}
	}
	if best < 0 {
		return -1, 0
	}
	return best, score
}
