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

// MakeData turns the value into a zero-filled byte buffer of n bytes.
// Payloads of up to inlineDataSize bytes live inside the value itself;
// larger ones get an owned heap buffer.
func (a *Attribute) MakeData(n int) {
	a.Release()
	a.kind = KindData
	a.size = n
	if n > inlineDataSize {
		a.buf = make([]byte, n)
	}
}

// MakeDataBytes turns the value into a byte buffer holding a copy of b.
// The value owns its copy; later changes to b are not observed.
func (a *Attribute) MakeDataBytes(b []byte) {
	a.MakeData(len(b))
	if a.size > inlineDataSize {
		copy(a.buf, b)
	} else {
		copy(a.inline[:], b)
	}
}

// DataBytes returns a view of the Data payload, or nil for any other kind.
// The view aliases the value's own storage and is invalidated by the next
// kind transition.
func (a *Attribute) DataBytes() []byte {
	if a.kind != KindData {
		return nil
	}
	if a.size > inlineDataSize {
		return a.buf[:a.size]
	}
	return a.inline[:a.size]
}

// Byte returns the i-th payload byte of a Data value, dispatching between
// inline and heap storage on size. Out-of-range access is reported and the
// first byte (or zero for empty payloads) is returned, never a fatal error.
func (a *Attribute) Byte(i int) byte {
	if a.kind != KindData {
		reportf(SeverityError, "byte access on non-data kind %s", a.kind)
		return 0
	}
	if i < 0 || i >= a.size {
		reportf(SeverityError, "data index %d out of range (size %d)", i, a.size)
		if a.size == 0 {
			return 0
		}
		i = 0
	}
	if a.size > inlineDataSize {
		return a.buf[i]
	}
	return a.inline[i]
}
