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
	"runtime"
	"sync"
)

// ParallelThreshold is the number of blocks at which block-independent
// work (ECB, CBC decryption) is spread across GOMAXPROCS goroutines.
var ParallelThreshold = 4096

// forEachBlock calls fn(i) for every i in [0, n). Calls for distinct i
// may run concurrently; fn must only touch block i of its output.
func forEachBlock(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	if n < ParallelThreshold || workers < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	if workers > n {
		workers = n
	}
	per := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += per {
		end := start + per
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
