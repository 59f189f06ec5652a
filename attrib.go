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

import "math"

// Kind discriminates which payload representation an Attribute holds.
type Kind int8

const (
	KindNil Kind = iota
	KindBool
	KindInt64
	KindUint64
	KindFloat
	KindString
	KindData
	KindList
	KindDict
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindBool:
		return "Bool"
	case KindInt64:
		return "Int64"
	case KindUint64:
		return "Uint64"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindData:
		return "Data"
	case KindList:
		return "List"
	case KindDict:
		return "Dict"
	case KindRef:
		return "Ref"
	}
	return "Unknown"
}

// inlineDataSize is the largest Data payload stored inside the value itself
// with no separate buffer allocation.
const inlineDataSize = 8

// Pair is one Dict entry: an owned string key and its value. Key uniqueness
// is enforced by the mutators, not by construction.
type Pair struct {
	Key   string
	Value Attribute
}

// Attribute is a kind-tagged variant value. Exactly one payload field is
// live at a time, selected by kind; every Make* transition releases the
// previous payload first. The zero value is a valid Nil attribute.
type Attribute struct {
	kind Kind
	// size is the byte length for String/Data and the element/pair count for
	// List/Dict. It is zero for scalar kinds and after Release.
	size   int
	num    uint64 // Bool/Int64/Uint64/Float bit store
	inline [inlineDataSize]byte
	str    string
	buf    []byte // Data payloads larger than inlineDataSize
	list   []Attribute
	dict   []Pair
	ref    Ref
}

// nilSentinel is handed out by indexed access on non-indexable kinds or
// out-of-range positions. Callers must treat it as "not indexable", never as
// legitimate data.
var nilSentinel Attribute

// Kind reports the discriminant of the value.
func (a *Attribute) Kind() Kind { return a.kind }

// Len reports the size of the live payload: string length, data byte count,
// list element count or dict pair count. Scalars report zero.
func (a *Attribute) Len() int { return a.size }

func (a *Attribute) IsNil() bool    { return a.kind == KindNil }
func (a *Attribute) IsBool() bool   { return a.kind == KindBool }
func (a *Attribute) IsInt64() bool  { return a.kind == KindInt64 }
func (a *Attribute) IsUint64() bool { return a.kind == KindUint64 }
func (a *Attribute) IsFloat() bool  { return a.kind == KindFloat }
func (a *Attribute) IsString() bool { return a.kind == KindString }
func (a *Attribute) IsData() bool   { return a.kind == KindData }
func (a *Attribute) IsList() bool   { return a.kind == KindList }
func (a *Attribute) IsDict() bool   { return a.kind == KindDict }
func (a *Attribute) IsRef() bool    { return a.kind == KindRef }

// Scalar accessors read the shared bit store without checking kind, the same
// way the value's scalar payload is a single union slot. Reading through the
// wrong accessor yields the raw bit reinterpretation, not an error.

func (a *Attribute) Bool() bool     { return a.num != 0 }
func (a *Attribute) Int64() int64   { return int64(a.num) }
func (a *Attribute) Uint64() uint64 { return a.num }
func (a *Attribute) Float() float64 { return math.Float64frombits(a.num) }

// Str returns the string payload. Empty for any other kind.
func (a *Attribute) Str() string { return a.str }

// Release recursively frees the payload depth-first and leaves the value
// Nil with size zero. It is implied by every Make* transition.
func (a *Attribute) Release() {
	switch a.kind {
	case KindList:
		for i := range a.list {
			a.list[i].Release()
		}
	case KindDict:
		for i := range a.dict {
			a.dict[i].Value.Release()
		}
	}
	*a = Attribute{}
}

// MakeNil releases the value and leaves it Nil.
func (a *Attribute) MakeNil() { a.Release() }

func (a *Attribute) MakeBool(v bool) {
	a.Release()
	a.kind = KindBool
	if v {
		a.num = 1
	}
}

func (a *Attribute) MakeInt64(v int64) {
	a.Release()
	a.kind = KindInt64
	a.num = uint64(v)
}

func (a *Attribute) MakeUint64(v uint64) {
	a.Release()
	a.kind = KindUint64
	a.num = v
}

func (a *Attribute) MakeFloat(v float64) {
	a.Release()
	a.kind = KindFloat
	a.num = math.Float64bits(v)
}

func (a *Attribute) MakeString(s string) {
	a.Release()
	a.kind = KindString
	a.size = len(s)
	a.str = s
}

// MakeStringOrNil sets the value from an optional string. A nil pointer
// leaves the value Nil rather than producing an empty string.
func (a *Attribute) MakeStringOrNil(s *string) {
	if s == nil {
		a.Release()
		return
	}
	a.MakeString(*s)
}

// MakeRef turns the value into a non-owning reference to an externally
// owned object. Copying a Ref duplicates the reference, never the referent.
func (a *Attribute) MakeRef(capability string, obj Named) {
	a.Release()
	a.kind = KindRef
	a.ref = Ref{Capability: capability, Object: obj}
}

// Ref returns the reference payload. Zero for any other kind.
func (a *Attribute) Ref() Ref { return a.ref }

// EqualsString reports whether the value is a String with exactly the
// given content. Any other kind compares false.
func (a *Attribute) EqualsString(s string) bool {
	return a.kind == KindString && a.str == s
}

// Clone returns a full deep copy: String and Data copy bytes, List and Dict
// recursively clone every child, scalars copy by value, and Ref copies the
// reference only.
func (a *Attribute) Clone() *Attribute {
	var out Attribute
	out.CopyFrom(a)
	return &out
}

// CopyFrom replaces the value with a deep copy of src. Copying a value onto
// itself is a no-op.
func (a *Attribute) CopyFrom(src *Attribute) {
	if a == src {
		return
	}
	a.Release()
	switch src.kind {
	case KindString:
		a.MakeString(src.str)
	case KindData:
		a.MakeDataBytes(src.DataBytes())
	case KindList:
		a.MakeList(src.size)
		for i := 0; i < src.size; i++ {
			a.list[i].CopyFrom(&src.list[i])
		}
	case KindDict:
		a.MakeDict()
		a.GrowDict(src.size)
		for i := 0; i < src.size; i++ {
			a.dict[i].Key = src.dict[i].Key
			a.dict[i].Value.CopyFrom(&src.dict[i].Value)
		}
	default:
		a.kind = src.kind
		a.size = src.size
		a.num = src.num
		a.ref = src.ref
	}
}

// At returns the element at position i: the i-th List element, or the i-th
// Dict pair's value. Indexing any other kind, or out of range, is a contract
// violation: it is reported and the shared Nil sentinel is returned.
func (a *Attribute) At(i int) *Attribute {
	switch a.kind {
	case KindList:
		if i < 0 || i >= a.size {
			reportf(SeverityError, "list index %d out of range (size %d)", i, a.size)
			return &nilSentinel
		}
		return &a.list[i]
	case KindDict:
		if i < 0 || i >= a.size {
			reportf(SeverityError, "dict index %d out of range (size %d)", i, a.size)
			return &nilSentinel
		}
		return &a.dict[i].Value
	}
	reportf(SeverityError, "indexed access on non-indexable kind %s", a.kind)
	return &nilSentinel
}

// String renders the value through the textual codec. Nodes the encoder
// cannot represent are omitted, matching Encoder behavior.
func (a *Attribute) String() string {
	text, _ := EncodeText(a)
	return text
}
