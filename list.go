// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package attrib

import "unsafe"

// List and Dict backing storage is allocated in fixed-size chunks so that
// repeated single-element growth reallocates only at chunk boundaries.
// Capacity never shrinks on removal; only a kind transition reclaims it.
const chunkBytes = 4096

var (
	attrElemSize = int(unsafe.Sizeof(Attribute{}))
	pairElemSize = int(unsafe.Sizeof(Pair{}))
)

// chunkedCap rounds a capacity of n elements up to the next chunk boundary.
func chunkedCap(n, elemSize int) int {
	if n == 0 {
		return 0
	}
	chunks := (n*elemSize + chunkBytes - 1) / chunkBytes
	return chunks * chunkBytes / elemSize
}

// MakeList turns the value into a list of n Nil elements.
func (a *Attribute) MakeList(n int) {
	a.Release()
	a.kind = KindList
	if n > 0 {
		a.GrowList(n)
	}
}

// GrowList resizes the list to n elements. Storage is reallocated only when
// the required chunk count exceeds the current capacity; growth within a
// chunk reuses the buffer and new elements come up Nil. Capacity is
// monotone: shrinking n never releases storage.
func (a *Attribute) GrowList(n int) {
	if a.kind != KindList {
		reportf(SeverityError, "grow on non-list kind %s", a.kind)
		return
	}
	if want := chunkedCap(n, attrElemSize); want > cap(a.list) {
		next := make([]Attribute, n, want)
		copy(next, a.list)
		a.list = next
	} else {
		// Slots past size are kept zeroed by the mutators, so extending
		// within capacity exposes only Nil elements.
		a.list = a.list[:n]
	}
	a.size = n
}

// AppendList appends a deep copy of item to the list.
func (a *Attribute) AppendList(item *Attribute) {
	if a.kind != KindList {
		reportf(SeverityError, "append on non-list kind %s", a.kind)
		return
	}
	a.GrowList(a.size + 1)
	a.list[a.size-1].CopyFrom(item)
}

// NewListItem grows the list by one Nil element and returns it for in-place
// construction.
func (a *Attribute) NewListItem() *Attribute {
	if a.kind != KindList {
		reportf(SeverityError, "append on non-list kind %s", a.kind)
		return &nilSentinel
	}
	a.GrowList(a.size + 1)
	return &a.list[a.size-1]
}

// InsertAt inserts a deep copy of item at index, shifting the elements at
// and after index up by one. index must be in [0, Len()]. The caller's item
// stays independently valid afterwards.
func (a *Attribute) InsertAt(index int, item *Attribute) {
	if a.kind != KindList {
		reportf(SeverityError, "insert on non-list kind %s", a.kind)
		return
	}
	if index < 0 || index > a.size {
		reportf(SeverityError, "insert index %d out of bounds (size %d)", index, a.size)
		return
	}
	next := make([]Attribute, a.size+1, chunkedCap(a.size+1, attrElemSize))
	copy(next, a.list[:index])
	next[index].CopyFrom(item)
	copy(next[index+1:], a.list[index:])
	a.list = next
	a.size++
}

// RemoveAt removes the element at index in O(1) by swapping the last element
// into its place. This does NOT preserve list order; callers that need
// order-preserving removal must use TrimRange instead.
func (a *Attribute) RemoveAt(index int) {
	if a.kind != KindList {
		reportf(SeverityError, "remove on non-list kind %s", a.kind)
		return
	}
	if index < 0 || index >= a.size {
		reportf(SeverityError, "remove index %d out of range (size %d)", index, a.size)
		return
	}
	a.list[index].Release()
	last := a.size - 1
	if index != last {
		a.SwapElements(index, last)
	}
	a.list[last] = Attribute{}
	a.size = last
	a.list = a.list[:a.size]
}

// TrimRange removes the half-open index range [start, end) while preserving
// the relative order of all remaining elements.
func (a *Attribute) TrimRange(start, end int) {
	if a.kind != KindList {
		reportf(SeverityError, "trim on non-list kind %s", a.kind)
		return
	}
	if start < 0 || end < start || end > a.size {
		reportf(SeverityError, "trim range [%d,%d) out of bounds (size %d)", start, end, a.size)
		return
	}
	n := end - start
	if n == 0 {
		return
	}
	for i := start; i < end; i++ {
		a.list[i].Release()
	}
	copy(a.list[start:], a.list[end:a.size])
	// Clear the vacated tail so the moved elements have a single live slot.
	for i := a.size - n; i < a.size; i++ {
		a.list[i] = Attribute{}
	}
	a.size -= n
	a.list = a.list[:a.size]
}

// SwapElements exchanges two elements as whole tag/size/payload units; no
// partially swapped state is ever observable. Required by Sort.
func (a *Attribute) SwapElements(n, m int) {
	if a.kind != KindList {
		reportf(SeverityError, "swap on non-list kind %s", a.kind)
		return
	}
	if n < 0 || n >= a.size || m < 0 || m >= a.size {
		reportf(SeverityError, "swap indices %d,%d out of range (size %d)", n, m, a.size)
		return
	}
	if n == m {
		return
	}
	a.list[n], a.list[m] = a.list[m], a.list[n]
}
