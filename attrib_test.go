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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureReporter collects diagnostics so tests can assert on the
// reported-but-non-fatal paths.
type captureReporter struct {
	msgs []string
}

func (c *captureReporter) Report(sev Severity, msg string) {
	c.msgs = append(c.msgs, fmt.Sprintf("%d: %s", sev, msg))
}

// withCapture swaps the process-wide sink for the duration of a test.
func withCapture(t *testing.T) *captureReporter {
	t.Helper()
	c := &captureReporter{}
	SetReporter(c)
	t.Cleanup(func() { SetReporter(nil) })
	return c
}

type fakeService string

func (f fakeService) ObjectName() string { return string(f) }

func TestZeroValueIsNil(t *testing.T) {
	var a Attribute
	assert.Equal(t, KindNil, a.Kind())
	assert.True(t, a.IsNil())
	assert.Zero(t, a.Len())
}

func TestKindTransitionsAreTotal(t *testing.T) {
	var a Attribute
	a.MakeList(3)
	a.At(0).MakeString("inner")
	require.Equal(t, KindList, a.Kind())
	require.Equal(t, 3, a.Len())

	// Transitioning kind releases the previous representation fully.
	a.MakeInt64(-7)
	assert.Equal(t, KindInt64, a.Kind())
	assert.Equal(t, int64(-7), a.Int64())
	assert.Zero(t, len(a.list))

	a.MakeBool(true)
	assert.True(t, a.Bool())

	a.MakeUint64(1 << 63)
	assert.Equal(t, uint64(1)<<63, a.Uint64())

	a.MakeFloat(2.5)
	assert.Equal(t, 2.5, a.Float())

	a.MakeString("hello")
	assert.Equal(t, "hello", a.Str())
	assert.Equal(t, 5, a.Len())

	a.MakeNil()
	assert.True(t, a.IsNil())
	assert.Zero(t, a.Len())
}

func TestReleaseRecursive(t *testing.T) {
	var a Attribute
	a.MakeDict()
	a.GetOrInsert("items").MakeList(2)
	a.GetOrInsert("items").At(0).MakeString("x")
	a.Release()
	assert.True(t, a.IsNil())
	assert.Zero(t, a.Len())
	assert.Nil(t, a.dict)
}

func TestMakeStringOrNil(t *testing.T) {
	var a Attribute
	a.MakeInt64(1)
	a.MakeStringOrNil(nil)
	assert.True(t, a.IsNil(), "nil pointer must leave the value Nil, not empty string")

	s := ""
	a.MakeStringOrNil(&s)
	assert.True(t, a.IsString())
	assert.Zero(t, a.Len())
}

func TestEqualsString(t *testing.T) {
	var a Attribute
	a.MakeString("abc")
	assert.True(t, a.EqualsString("abc"))
	assert.False(t, a.EqualsString("abd"))

	a.MakeInt64(1)
	assert.False(t, a.EqualsString("1"), "non-string kinds never compare equal")
}

func TestCloneDeepCopyIndependence(t *testing.T) {
	var a Attribute
	a.MakeDict()
	a.GetOrInsert("name").MakeString("core0")
	lst := a.GetOrInsert("regs")
	lst.MakeList(2)
	lst.At(0).MakeInt64(10)
	lst.At(1).MakeDataBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})

	b := a.Clone()
	require.Equal(t, a.String(), b.String())

	// Mutating a nested element of either side must not affect the other.
	lst.At(0).MakeInt64(99)
	v, ok := b.GetExisting("regs")
	require.True(t, ok)
	assert.Equal(t, int64(10), v.At(0).Int64())

	v.At(1).MakeNil()
	assert.Equal(t, KindData, lst.At(1).Kind())
}

func TestCloneRefIsShallow(t *testing.T) {
	obj := fakeService("uart0")
	var a Attribute
	a.MakeRef(ServiceCapability, obj)
	b := a.Clone()
	require.Equal(t, KindRef, b.Kind())
	assert.Equal(t, a.Ref().Object, b.Ref().Object, "clone duplicates the reference, never the referent")
}

func TestCopyFromSelf(t *testing.T) {
	var a Attribute
	a.MakeString("same")
	a.CopyFrom(&a)
	assert.Equal(t, "same", a.Str())
}

func TestAtSentinelOnNonIndexable(t *testing.T) {
	rep := withCapture(t)
	var a Attribute
	a.MakeInt64(5)
	got := a.At(0)
	assert.True(t, got.IsNil())
	assert.Len(t, rep.msgs, 1)
}

func TestAtOutOfRange(t *testing.T) {
	rep := withCapture(t)
	var a Attribute
	a.MakeList(2)
	assert.True(t, a.At(2).IsNil())
	assert.True(t, a.At(-1).IsNil())
	assert.Len(t, rep.msgs, 2)
}

func TestAtOnDictReturnsPairValue(t *testing.T) {
	var a Attribute
	a.MakeDict()
	a.GetOrInsert("first").MakeInt64(1)
	a.GetOrInsert("second").MakeInt64(2)
	assert.Equal(t, int64(2), a.At(1).Int64())
}
