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

// Package attrib implements the dynamically-typed Attribute value used as the
// universal data-interchange type of the debugging framework: configuration
// trees, inter-component commands and responses, and textual persistence all
// flow through this single type.
//
// An Attribute is a kind-tagged value holding one of Nil, Bool, Int64,
// Uint64, Float, String, Data, List, Dict or Ref. Values are mutated in place
// through the Make* family, which always releases the previous payload before
// installing the new one, so the tag and payload can never disagree. Clone
// performs a full deep copy; no two live Attributes alias aggregate storage,
// with the single exception of the Ref kind, which is a deliberate non-owning
// reference into an externally managed object.
//
// List and Dict backing storage grows in 4096-byte chunks and is never shrunk
// by removal; only a kind transition reclaims it. RemoveAt trades element
// order for O(1) cost — callers that need order-preserving removal must use
// TrimRange instead.
//
// The textual form is a Python-literal-like grammar:
//
//	Value := None | true | false | Int | 'String' | [Value,...] | {'key':Value,...} | (HH,HH,...)
//
// Encoder produces it and Decoder parses it back; Decoder additionally
// resolves dictionaries of the form {'Type':'service','ModuleName':...}
// through an injected Resolver into live object references. Non-fatal
// contract violations are routed to a Reporter and answered with safe
// sentinels rather than panics.
package attrib
