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

// ServiceCapability is the one reference capability the textual codec
// understands. Refs with any other capability cannot be encoded and are
// reported instead.
const ServiceCapability = "service"

// Named is the minimal view of an externally owned live object that an
// Attribute can reference. The Attribute never owns the referent; its
// lifetime is managed entirely outside this package.
type Named interface {
	ObjectName() string
}

// Ref is a non-owning reference to an externally owned object, identified
// by a capability name plus the live object handle.
type Ref struct {
	Capability string
	Object     Named
}

// Resolver turns a registered object name into a live object during decode.
// It is injected into the Decoder so decoding is testable without a live
// registry.
type Resolver interface {
	Resolve(name string) (Named, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(name string) (Named, error)

func (f ResolverFunc) Resolve(name string) (Named, error) { return f(name) }
