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

// Encoder renders Attributes into the textual grammar. The scratch buffer
// is owned by the Encoder and reset at the start of every top-level Encode,
// so one Encoder amortizes allocation across calls while distinct Encoders
// encode concurrently without shared state.
//
// An Encoder is not safe for concurrent use by multiple goroutines.
type Encoder struct {
	// Reporter receives diagnostics for nodes the grammar cannot express.
	// Nil routes to the process-wide sink.
	Reporter Reporter

	buf scratch
	err error
}

// NewEncoder returns an Encoder reporting to the process-wide sink.
func NewEncoder() *Encoder { return &Encoder{} }

// EncodeText is a convenience wrapper encoding with a one-shot Encoder.
func EncodeText(a *Attribute) (string, error) {
	return NewEncoder().Encode(a)
}

// Encode renders a into its textual form. Grammar, bit-for-bit:
//
//	Nil          None
//	Int64/Uint64 unsigned decimal digits of the bit pattern (no sign marker)
//	Bool         true / false
//	Float        fixed 4-decimal-digit form
//	String       'raw bytes' (no escaping of quotes or control characters)
//	Data         (AB,01,FF) two-digit uppercase hex, () when empty
//	List         [a,b,c], [] when empty
//	Dict         {'key':value,...}
//	Ref          {'Type':'service','ModuleName':'<object name>'}
//
// A Ref with any other capability is reported and contributes no output;
// the returned text is complete except for such nodes and the error is
// ErrUnsupportedRef so callers can detect the omission.
func (e *Encoder) Encode(a *Attribute) (string, error) {
	e.buf.reset()
	e.err = nil
	e.encode(a)
	return string(e.buf.buf), e.err
}

func (e *Encoder) encode(a *Attribute) {
	switch a.kind {
	case KindNil:
		e.buf.writeString("None")
	case KindInt64, KindUint64:
		e.buf.writeUint64(a.num)
	case KindBool:
		if a.Bool() {
			e.buf.writeString("true")
		} else {
			e.buf.writeString("false")
		}
	case KindFloat:
		e.buf.writeFloat(a.Float())
	case KindString:
		e.buf.writeByte('\'')
		e.buf.writeString(a.str)
		e.buf.writeByte('\'')
	case KindList:
		e.buf.writeByte('[')
		for i := 0; i < a.size; i++ {
			if i > 0 {
				e.buf.writeByte(',')
			}
			e.encode(&a.list[i])
		}
		e.buf.writeByte(']')
	case KindDict:
		e.buf.writeByte('{')
		for i := 0; i < a.size; i++ {
			if i > 0 {
				e.buf.writeByte(',')
			}
			e.buf.writeByte('\'')
			e.buf.writeString(a.dict[i].Key)
			e.buf.writeString("':")
			e.encode(&a.dict[i].Value)
		}
		e.buf.writeByte('}')
	case KindData:
		e.buf.writeByte('(')
		for i := 0; i < a.size; i++ {
			if i > 0 {
				e.buf.writeByte(',')
			}
			e.buf.writeHexByte(a.Byte(i))
		}
		e.buf.writeByte(')')
	case KindRef:
		if a.ref.Capability != ServiceCapability || a.ref.Object == nil {
			reportTo(e.Reporter, SeverityError,
				"cannot encode reference with capability %q", a.ref.Capability)
			if e.err == nil {
				e.err = ErrUnsupportedRef
			}
			return
		}
		e.buf.writeString("{'Type':'")
		e.buf.writeString(a.ref.Capability)
		e.buf.writeString("','ModuleName':'")
		e.buf.writeString(a.ref.Object.ObjectName())
		e.buf.writeString("'}")
	}
}
