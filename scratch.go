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

import "strconv"

const hexDigits = "0123456789ABCDEF"

// scratch is a growable byte accumulator the encoder appends into. Reset
// keeps the backing storage, and ensure rounds new capacity up to chunk
// boundaries so deeply nested encodes do not reallocate per node.
type scratch struct {
	buf []byte
}

func (s *scratch) reset() { s.buf = s.buf[:0] }

func (s *scratch) ensure(n int) {
	need := len(s.buf) + n
	if need <= cap(s.buf) {
		return
	}
	next := make([]byte, len(s.buf), chunkedCap(need, 1))
	copy(next, s.buf)
	s.buf = next
}

func (s *scratch) writeByte(c byte) {
	s.ensure(1)
	s.buf = append(s.buf, c)
}

func (s *scratch) writeString(str string) {
	s.ensure(len(str))
	s.buf = append(s.buf, str...)
}

func (s *scratch) writeUint64(v uint64) {
	s.ensure(20)
	s.buf = strconv.AppendUint(s.buf, v, 10)
}

func (s *scratch) writeFloat(v float64) {
	s.ensure(24)
	s.buf = strconv.AppendFloat(s.buf, v, 'f', 4, 64)
}

// writeHexByte appends the fixed two-digit uppercase hex form of b.
func (s *scratch) writeHexByte(b byte) {
	s.ensure(2)
	s.buf = append(s.buf, hexDigits[b>>4], hexDigits[b&0x0F])
}
