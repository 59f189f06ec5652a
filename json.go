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

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// JSON bridge for boundaries that speak JSON instead of the attribute
// grammar. The mapping is lossy in both directions where JSON has no
// equivalent: Data renders as a list of two-digit hex strings, Refs as
// their Type/ModuleName object (and are not re-resolved on the way back),
// and JSON object key order is not preserved.

// MarshalJSON implements json.Marshaler.
func (a *Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.jsonValue())
}

func (a *Attribute) jsonValue() any {
	switch a.kind {
	case KindBool:
		return a.Bool()
	case KindInt64:
		return a.Int64()
	case KindUint64:
		return a.Uint64()
	case KindFloat:
		return a.Float()
	case KindString:
		return a.str
	case KindData:
		hex := make([]string, a.size)
		for i := 0; i < a.size; i++ {
			b := a.Byte(i)
			hex[i] = string([]byte{hexDigits[b>>4], hexDigits[b&0x0F]})
		}
		return hex
	case KindList:
		items := make([]any, a.size)
		for i := range items {
			items[i] = a.list[i].jsonValue()
		}
		return items
	case KindDict:
		obj := make(map[string]any, a.size)
		for i := 0; i < a.size; i++ {
			obj[a.dict[i].Key] = a.dict[i].Value.jsonValue()
		}
		return obj
	case KindRef:
		name := ""
		if a.ref.Object != nil {
			name = a.ref.Object.ObjectName()
		}
		return map[string]any{"Type": a.ref.Capability, "ModuleName": name}
	}
	return nil
}

// FromJSON builds an Attribute tree from JSON data. Numbers become Int64
// when integral and Float otherwise; objects become Dicts (no service
// resolution happens here), arrays become Lists.
func FromJSON(data []byte) (*Attribute, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	var out Attribute
	if err := fromJSONValue(v, &out); err != nil {
		out.Release()
		return nil, err
	}
	return &out, nil
}

func fromJSONValue(v any, out *Attribute) error {
	switch val := v.(type) {
	case nil:
		out.MakeNil()
	case bool:
		out.MakeBool(val)
	case string:
		out.MakeString(val)
	case json.Number:
		if iv, err := strconv.ParseInt(val.String(), 10, 64); err == nil {
			out.MakeInt64(iv)
			return nil
		}
		fv, err := val.Float64()
		if err != nil {
			return fmt.Errorf("unrepresentable number %q: %w", val.String(), err)
		}
		out.MakeFloat(fv)
	case []any:
		out.MakeList(0)
		for _, item := range val {
			if err := fromJSONValue(item, out.NewListItem()); err != nil {
				return err
			}
		}
	case map[string]any:
		out.MakeDict()
		for k, item := range val {
			if err := fromJSONValue(item, out.GetOrInsert(k)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported json value %T", v)
	}
	return nil
}
