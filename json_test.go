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
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONForms(t *testing.T) {
	cases := []struct {
		name string
		fill func(a *Attribute)
		want string
	}{
		{name: "nil", fill: (*Attribute).MakeNil, want: "null"},
		{name: "bool", fill: func(a *Attribute) { a.MakeBool(true) }, want: "true"},
		{name: "int", fill: func(a *Attribute) { a.MakeInt64(-3) }, want: "-3"},
		{name: "uint", fill: func(a *Attribute) { a.MakeUint64(7) }, want: "7"},
		{name: "string", fill: func(a *Attribute) { a.MakeString("s") }, want: `"s"`},
		{
			name: "data as hex pairs",
			fill: func(a *Attribute) { a.MakeDataBytes([]byte{0x01, 0xAB}) },
			want: `["01","AB"]`,
		},
		{
			name: "ref",
			fill: func(a *Attribute) { a.MakeRef(ServiceCapability, fakeService("core0")) },
			want: `{"ModuleName":"core0","Type":"service"}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Attribute
			tc.fill(&a)
			data, err := json.Marshal(&a)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(data))
		})
	}
}

func TestMarshalJSONList(t *testing.T) {
	a := intList(1, 2, 3)
	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, "[1,2,3]", string(data))
}

func TestFromJSONTree(t *testing.T) {
	a, err := FromJSON([]byte(`{"name":"core0","regs":[1,2.5,null],"on":true}`))
	require.NoError(t, err)
	require.Equal(t, KindDict, a.Kind())

	name, ok := a.GetExisting("name")
	require.True(t, ok)
	assert.Equal(t, "core0", name.Str())

	regs, ok := a.GetExisting("regs")
	require.True(t, ok)
	require.Equal(t, 3, regs.Len())
	assert.Equal(t, KindInt64, regs.At(0).Kind(), "integral numbers decode as Int64")
	assert.Equal(t, KindFloat, regs.At(1).Kind())
	assert.Equal(t, 2.5, regs.At(1).Float())
	assert.True(t, regs.At(2).IsNil())

	on, ok := a.GetExisting("on")
	require.True(t, ok)
	assert.True(t, on.Bool())
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := FromJSON([]byte("{"))
	assert.Error(t, err)
}

func TestJSONRoundTripStructure(t *testing.T) {
	orig, err := FromJSON([]byte(`{"a":[1,"x"],"b":{"c":false}}`))
	require.NoError(t, err)
	data, err := json.Marshal(orig)
	require.NoError(t, err)
	back, err := FromJSON(data)
	require.NoError(t, err)

	av, ok := back.GetExisting("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), av.At(0).Int64())
	assert.Equal(t, "x", av.At(1).Str())
	bv, ok := back.GetExisting("b")
	require.True(t, ok)
	cv, ok := bv.GetExisting("c")
	require.True(t, ok)
	assert.False(t, cv.Bool())
}
