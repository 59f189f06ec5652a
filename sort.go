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

// Sort orders the list elements in place with a recursive, unstable,
// last-pivot quicksort. Comparable element kinds are String (bytewise),
// Int64 and Uint64. Elements that are themselves lists compare through
// their sub-element at keyIdx ("sort records by field keyIdx"); pass a
// negative keyIdx when no such access should happen.
//
// Meeting an element of any other kind aborts the current partition step
// with a diagnostic and returns ErrUnsortableKind: the list may be left
// partially sorted. Sorting a non-list is reported and is a no-op.
// Average O(n log n) comparisons, O(n^2) on adversarial pivots.
func (a *Attribute) Sort(keyIdx int) error {
	if a.kind != KindList {
		reportf(SeverityError, "sort applied to non-list kind %s", a.kind)
		return ErrNotList
	}
	return quicksort(a, 0, a.size-1, keyIdx)
}

func quicksort(a *Attribute, lo, hi, keyIdx int) error {
	if lo >= hi {
		return nil
	}
	p, err := partition(a, lo, hi, keyIdx)
	if err != nil {
		return err
	}
	if err := quicksort(a, lo, p-1, keyIdx); err != nil {
		return err
	}
	return quicksort(a, p+1, hi, keyIdx)
}

// partition applies the Lomuto scheme with the last element as pivot.
// Elements less than or equal to the pivot go to the lower side, so ties
// gather on the pivot side.
func partition(a *Attribute, lo, hi, keyIdx int) (int, error) {
	i := lo - 1
	for j := lo; j < hi; j++ {
		le, err := lessEq(&a.list[j], &a.list[hi], keyIdx)
		if err != nil {
			reportf(SeverityError, "sort: %v", err)
			return i + 1, err
		}
		if le {
			i++
			a.SwapElements(i, j)
		}
	}
	a.SwapElements(i+1, hi)
	return i + 1, nil
}

// sortKey selects the comparison value for an element: list elements
// compare through their keyIdx sub-element, everything else compares
// directly.
func sortKey(x *Attribute, keyIdx int) *Attribute {
	if x.kind == KindList && keyIdx >= 0 {
		return x.At(keyIdx)
	}
	return x
}

// lessEq compares x against the pivot y in x's comparison domain, the same
// domain rule the partition applies to every element.
func lessEq(x, y *Attribute, keyIdx int) (bool, error) {
	kx := sortKey(x, keyIdx)
	ky := sortKey(y, keyIdx)
	switch kx.kind {
	case KindString:
		return kx.str <= ky.str, nil
	case KindInt64:
		return kx.Int64() <= ky.Int64(), nil
	case KindUint64:
		return kx.Uint64() <= ky.Uint64(), nil
	}
	return false, ErrUnsortableKind
}
