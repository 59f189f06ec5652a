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

// MakeDict turns the value into an empty dictionary.
func (a *Attribute) MakeDict() {
	a.Release()
	a.kind = KindDict
}

// GrowDict resizes the pair storage to n entries under the same chunked,
// monotone capacity policy as GrowList. New pairs come up with an empty key
// and a Nil value.
func (a *Attribute) GrowDict(n int) {
	if a.kind != KindDict {
		reportf(SeverityError, "grow on non-dict kind %s", a.kind)
		return
	}
	if want := chunkedCap(n, pairElemSize); want > cap(a.dict) {
		next := make([]Pair, n, want)
		copy(next, a.dict)
		a.dict = next
	} else {
		a.dict = a.dict[:n]
	}
	a.size = n
}

// GetExisting looks up key by linear scan, first match wins. It never
// mutates the dictionary. The second result reports whether the key exists.
func (a *Attribute) GetExisting(key string) (*Attribute, bool) {
	if a.kind != KindDict {
		return nil, false
	}
	for i := 0; i < a.size; i++ {
		if a.dict[i].Key == key {
			return &a.dict[i].Value, true
		}
	}
	return nil, false
}

// GetOrInsert looks up key and, when absent, appends a new pair with that
// key and a Nil value, returning the new value. Mere lookup through this
// entry point therefore has a mutating side effect; callers relying on a
// pure read must use GetExisting.
func (a *Attribute) GetOrInsert(key string) *Attribute {
	if a.kind != KindDict {
		reportf(SeverityError, "key access on non-dict kind %s", a.kind)
		return &nilSentinel
	}
	if v, ok := a.GetExisting(key); ok {
		return v
	}
	a.GrowDict(a.size + 1)
	a.dict[a.size-1].Key = key
	a.dict[a.size-1].Value.MakeNil()
	return &a.dict[a.size-1].Value
}

// SetKey installs a deep copy of value under key, replacing an existing
// entry or appending a new one.
func (a *Attribute) SetKey(key string, value *Attribute) {
	a.GetOrInsert(key).CopyFrom(value)
}

// HasKey reports whether key exists with a non-Nil value. A vivified but
// never assigned entry does not count.
func (a *Attribute) HasKey(key string) bool {
	if a.kind != KindDict {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.dict[i].Key == key && !a.dict[i].Value.IsNil() {
			return true
		}
	}
	return false
}

// DictKey returns the i-th pair's key. Out-of-range or non-dict access is
// reported and answered with an empty key.
func (a *Attribute) DictKey(i int) string {
	if a.kind != KindDict || i < 0 || i >= a.size {
		reportf(SeverityError, "dict key index %d invalid on kind %s (size %d)", i, a.kind, a.size)
		return ""
	}
	return a.dict[i].Key
}

// DictValue returns the i-th pair's value, or the Nil sentinel when out of
// range or not a dict.
func (a *Attribute) DictValue(i int) *Attribute {
	if a.kind != KindDict || i < 0 || i >= a.size {
		reportf(SeverityError, "dict value index %d invalid on kind %s (size %d)", i, a.kind, a.size)
		return &nilSentinel
	}
	return &a.dict[i].Value
}
