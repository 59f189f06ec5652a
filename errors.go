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
	"errors"
	"fmt"
)

var (
	// ErrNotList is returned by list-only operations applied to another kind.
	ErrNotList = errors.New("not a list attribute")

	// ErrUnsortableKind is returned when Sort meets an element (or key_path
	// sub-element) whose kind is not String, Int64 or Uint64. The list may be
	// left partially sorted.
	ErrUnsortableKind = errors.New("unsupported attribute kind for sorting")

	// ErrUnsupportedRef is returned when the encoder meets a Ref whose
	// capability is not ServiceCapability. The offending node produces no
	// output; the rest of the encoding is complete.
	ErrUnsupportedRef = errors.New("unsupported reference capability")
)

// SyntaxError reports malformed decoder input with the byte offset at which
// parsing failed. The decoder never reads past the buffer; truncated or
// malformed tokens fail with this error instead.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

func syntaxErr(offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
