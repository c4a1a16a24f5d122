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

// ProcessWithTail splits size elements into blocks of width.
//
// It calls:
//   - fullFn(offset) for each full block (offset is the starting index)
//   - tailFn(offset, count) once for the remainder if size is not a multiple of width
//
// Example:
//
//	lanes.ProcessWithTail(len(xs), 16,
//	    func(offset int) {
//	        batch(xs[offset:offset+16], out[offset:offset+16])
//	    },
//	    func(offset, count int) {
//	        padded(xs[offset:offset+count], out[offset:offset+count])
//	    },
//	)
//
// Panics if width is not positive.
func ProcessWithTail(size, width int, fullFn func(offset int), tailFn func(offset, count int)) {
	if width <= 0 {
		panic("lanes: non-positive block width")
	}

	fullBlocks := size / width
	for i := range fullBlocks {
		fullFn(i * width)
	}

	remaining := size % width
	if remaining > 0 {
		tailFn(fullBlocks*width, remaining)
	}
}
