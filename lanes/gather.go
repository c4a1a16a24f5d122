// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

// GatherLanes is the number of elements GatherWrapped resolves per step.
const GatherLanes = 8

// GatherWrapped loads dst[i] = table[idx[i] mod len(table)] for every i.
//
// Indices are treated as unsigned, so the wrapped position is always within
// the table. When len(table) is a power of two the modulo reduces to a mask.
// The main loop gathers GatherLanes elements per step; the remainder is
// handled one element at a time.
//
// Panics if table is empty or len(dst) < len(idx).
func GatherWrapped[T Lanes](dst, table []T, idx []int32) {
	if len(table) == 0 {
		panic("lanes: gather from empty table")
	}
	if len(dst) < len(idx) {
		panic("lanes: gather destination too short")
	}
	n := len(idx)
	size := uint32(len(table))
	full := n - n%GatherLanes

	if size&(size-1) == 0 {
		mask := size - 1
		for i := 0; i < full; i += GatherLanes {
			ix := idx[i : i+GatherLanes : i+GatherLanes]
			d := dst[i : i+GatherLanes : i+GatherLanes]
			d[0] = table[uint32(ix[0])&mask]
			d[1] = table[uint32(ix[1])&mask]
			d[2] = table[uint32(ix[2])&mask]
			d[3] = table[uint32(ix[3])&mask]
			d[4] = table[uint32(ix[4])&mask]
			d[5] = table[uint32(ix[5])&mask]
			d[6] = table[uint32(ix[6])&mask]
			d[7] = table[uint32(ix[7])&mask]
		}
		for i := full; i < n; i++ {
			dst[i] = table[uint32(idx[i])&mask]
		}
		return
	}

	for i := 0; i < full; i += GatherLanes {
		ix := idx[i : i+GatherLanes : i+GatherLanes]
		d := dst[i : i+GatherLanes : i+GatherLanes]
		d[0] = table[uint32(ix[0])%size]
		d[1] = table[uint32(ix[1])%size]
		d[2] = table[uint32(ix[2])%size]
		d[3] = table[uint32(ix[3])%size]
		d[4] = table[uint32(ix[4])%size]
		d[5] = table[uint32(ix[5])%size]
		d[6] = table[uint32(ix[6])%size]
		d[7] = table[uint32(ix[7])%size]
	}
	for i := full; i < n; i++ {
		dst[i] = table[uint32(idx[i])%size]
	}
}
