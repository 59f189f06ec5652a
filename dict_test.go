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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrInsertVivifies(t *testing.T) {
	var a Attribute
	a.MakeDict()
	require.Zero(t, a.Len())

	v := a.GetOrInsert("x")
	assert.Equal(t, 1, a.Len(), "lookup of an absent key appends a pair")
	assert.True(t, v.IsNil())

	// A second lookup returns the same element, no duplicate key.
	v.MakeInt64(42)
	again := a.GetOrInsert("x")
	assert.Same(t, v, again)
	assert.Equal(t, 1, a.Len())
}

func TestGetExistingIsPure(t *testing.T) {
	var a Attribute
	a.MakeDict()
	_, ok := a.GetExisting("missing")
	assert.False(t, ok)
	assert.Zero(t, a.Len(), "pure lookup must not vivify")

	a.GetOrInsert("present").MakeString("v")
	v, ok := a.GetExisting("present")
	require.True(t, ok)
	assert.Equal(t, "v", v.Str())
}

func TestGetExistingFirstMatchWins(t *testing.T) {
	var a Attribute
	a.MakeDict()
	a.GrowDict(2)
	a.dict[0].Key = "dup"
	a.dict[0].Value.MakeInt64(1)
	a.dict[1].Key = "dup"
	a.dict[1].Value.MakeInt64(2)
	v, ok := a.GetExisting("dup")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Int64())
}

func TestGetOrInsertOnNonDict(t *testing.T) {
	rep := withCapture(t)
	var a Attribute
	a.MakeList(1)
	v := a.GetOrInsert("k")
	assert.True(t, v.IsNil())
	assert.Len(t, rep.msgs, 1)
}

func TestSetKeyReplaces(t *testing.T) {
	var a Attribute
	a.MakeDict()
	var v Attribute
	v.MakeInt64(1)
	a.SetKey("k", &v)
	v.MakeInt64(2)
	a.SetKey("k", &v)
	assert.Equal(t, 1, a.Len())
	got, _ := a.GetExisting("k")
	assert.Equal(t, int64(2), got.Int64())
}

func TestHasKeyRequiresNonNilValue(t *testing.T) {
	var a Attribute
	a.MakeDict()
	a.GetOrInsert("vivified")
	assert.False(t, a.HasKey("vivified"), "a vivified but never assigned entry does not count")

	a.GetOrInsert("set").MakeBool(false)
	assert.True(t, a.HasKey("set"))
	assert.False(t, a.HasKey("absent"))
}

func TestDictPairAccessors(t *testing.T) {
	var a Attribute
	a.MakeDict()
	a.GetOrInsert("one").MakeInt64(1)
	a.GetOrInsert("two").MakeInt64(2)
	assert.Equal(t, "one", a.DictKey(0))
	assert.Equal(t, "two", a.DictKey(1))
	assert.Equal(t, int64(2), a.DictValue(1).Int64())
}

func TestDictPairAccessorsOutOfRange(t *testing.T) {
	rep := withCapture(t)
	var a Attribute
	a.MakeDict()
	assert.Empty(t, a.DictKey(0))
	assert.True(t, a.DictValue(0).IsNil())
	assert.Len(t, rep.msgs, 2)
}

func TestDictChunkedGrowth(t *testing.T) {
	var a Attribute
	a.MakeDict()
	prevCap := 0
	for n := 1; n <= chunkedCap(1, pairElemSize)+2; n++ {
		a.GrowDict(n)
		c := cap(a.dict)
		assert.GreaterOrEqual(t, c, prevCap)
		assert.Equal(t, chunkedCap(n, pairElemSize), c)
		prevCap = c
	}
}
