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

import "strings"

// Decoder parses the textual grammar back into Attributes by recursive
// descent. The Resolver is consulted only for dictionaries carrying
// 'Type':'service', turning them into live object references; a nil
// Resolver leaves such dictionaries plain (reported, not fatal).
type Decoder struct {
	// Resolver maps a ModuleName to a live object during decode.
	Resolver Resolver
	// Reporter receives non-fatal diagnostics. Nil routes to the
	// process-wide sink.
	Reporter Reporter
}

// NewDecoder returns a Decoder using r for service reference resolution.
func NewDecoder(r Resolver) *Decoder { return &Decoder{Resolver: r} }

// DecodeText is a convenience wrapper decoding a single value with a
// one-shot Decoder.
func DecodeText(text string, r Resolver) (*Attribute, error) {
	return NewDecoder(r).Decode(text)
}

// Decode parses one value from text. Trailing input after the value is
// permitted and ignored; use DecodeNext to consume a stream of values.
func (d *Decoder) Decode(text string) (*Attribute, error) {
	out, _, err := d.DecodeNext(text, 0)
	return out, err
}

// DecodeNext parses the next value starting at pos and returns it together
// with the position just past the consumed token, so callers can decode a
// stream of whitespace- or comma-separated values. Malformed or truncated
// input fails with *SyntaxError; the decoder never reads past the buffer.
func (d *Decoder) DecodeNext(text string, pos int) (*Attribute, int, error) {
	var out Attribute
	next, err := d.value(text, pos, &out)
	if err != nil {
		out.Release()
		return nil, pos, err
	}
	return &out, next, nil
}

// skipSpace advances past space, CR, LF and tab.
func skipSpace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\r', '\n', '\t':
			i++
		default:
			return i
		}
	}
	return i
}

func (d *Decoder) value(s string, i int, out *Attribute) (int, error) {
	i = skipSpace(s, i)
	if i >= len(s) {
		return i, syntaxErr(i, "unexpected end of input")
	}
	switch s[i] {
	case '\'', '"':
		return d.stringToken(s, i, out)
	case '[':
		return d.listToken(s, i, out)
	case '{':
		return d.dictToken(s, i, out)
	case '(':
		return d.dataToken(s, i, out)
	}
	return d.bareToken(s, i, out)
}

// stringToken consumes raw bytes up to the same quote character that opened
// the token. Escaped quotes are not supported by the grammar.
func (d *Decoder) stringToken(s string, i int, out *Attribute) (int, error) {
	quote := s[i]
	j := i + 1
	for j < len(s) && s[j] != quote {
		j++
	}
	if j >= len(s) {
		return i, syntaxErr(i, "unterminated string")
	}
	out.MakeString(s[i+1 : j])
	return j + 1, nil
}

func (d *Decoder) listToken(s string, i int, out *Attribute) (int, error) {
	start := i
	out.MakeList(0)
	i = skipSpace(s, i+1)
	for {
		if i >= len(s) {
			return start, syntaxErr(start, "unterminated list")
		}
		if s[i] == ']' {
			return skipSpace(s, i+1), nil
		}
		var err error
		if i, err = d.value(s, i, out.NewListItem()); err != nil {
			return i, err
		}
		i = skipSpace(s, i)
		if i < len(s) && s[i] == ',' {
			i = skipSpace(s, i+1)
		}
	}
}

func (d *Decoder) dictToken(s string, i int, out *Attribute) (int, error) {
	start := i
	out.MakeDict()
	i = skipSpace(s, i+1)
	for {
		if i >= len(s) {
			return start, syntaxErr(start, "unterminated dict")
		}
		if s[i] == '}' {
			i = skipSpace(s, i+1)
			break
		}
		var key Attribute
		var err error
		if i, err = d.value(s, i, &key); err != nil {
			return i, err
		}
		i = skipSpace(s, i)
		if i >= len(s) || s[i] != ':' {
			return i, syntaxErr(i, "expected ':' after dict key")
		}
		i = skipSpace(s, i+1)
		if i, err = d.value(s, i, out.GetOrInsert(key.Str())); err != nil {
			return i, err
		}
		i = skipSpace(s, i)
		if i < len(s) && s[i] == ',' {
			i = skipSpace(s, i+1)
		}
	}
	d.resolveRef(out)
	return i, nil
}

// resolveRef replaces a freshly decoded dict carrying 'Type':'service' with
// a live object reference looked up through the Resolver. Any other Type
// marker is unsupported and reported; the dict stays plain.
func (d *Decoder) resolveRef(out *Attribute) {
	typ, ok := out.GetExisting("Type")
	if !ok || typ.IsNil() {
		return
	}
	if !typ.EqualsString(ServiceCapability) {
		reportTo(d.Reporter, SeverityError,
			"unsupported reference type %q in dict", typ.Str())
		return
	}
	name, ok := out.GetExisting("ModuleName")
	if !ok || !name.IsString() {
		reportTo(d.Reporter, SeverityError, "service reference without ModuleName")
		return
	}
	if d.Resolver == nil {
		reportTo(d.Reporter, SeverityError,
			"no resolver for service reference %q", name.Str())
		return
	}
	obj, err := d.Resolver.Resolve(name.Str())
	if err != nil || obj == nil {
		reportTo(d.Reporter, SeverityError,
			"cannot resolve service %q: %v", name.Str(), err)
		return
	}
	out.MakeRef(ServiceCapability, obj)
}

// dataToken reads comma-separated two-digit uppercase hex byte values. Both
// digits are bounds-checked: truncated pairs or non-hex characters fail
// instead of reading past the token.
func (d *Decoder) dataToken(s string, i int, out *Attribute) (int, error) {
	start := i
	var bytes []byte
	i = skipSpace(s, i+1)
	for {
		if i >= len(s) {
			return start, syntaxErr(start, "unterminated data")
		}
		if s[i] == ')' {
			out.MakeDataBytes(bytes)
			return skipSpace(s, i+1), nil
		}
		if i+2 > len(s) {
			return i, syntaxErr(i, "truncated hex byte")
		}
		var b byte
		for n := 0; n < 2; n++ {
			nib, ok := hexNibble(s[i])
			if !ok {
				return i, syntaxErr(i, "invalid hex digit %q", s[i])
			}
			b = b<<4 | nib
			i++
		}
		bytes = append(bytes, b)
		i = skipSpace(s, i)
		if i < len(s) && s[i] == ',' {
			i = skipSpace(s, i+1)
		}
	}
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isDigitRun(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// bareToken handles the literal forms: None, true, false, or an integer
// literal consumed as a maximal run of hex/decimal digit characters, with
// the radix selected by a 0x prefix. Numeric parsing is deliberately
// lenient: the run is consumed in full and converted as far as it parses,
// wrapping past 64 bits, rather than failing.
func (d *Decoder) bareToken(s string, i int, out *Attribute) (int, error) {
	rest := s[i:]
	switch {
	case strings.HasPrefix(rest, "None"):
		out.MakeNil()
		return i + 4, nil
	case strings.HasPrefix(rest, "false"):
		out.MakeBool(false)
		return i + 5, nil
	case strings.HasPrefix(rest, "true"):
		out.MakeBool(true)
		return i + 4, nil
	}

	hex := false
	if strings.HasPrefix(rest, "0x") {
		hex = true
		i += 2
	}
	j := i
	for j < len(s) && isDigitRun(s[j]) {
		j++
	}
	if j == i {
		return i, syntaxErr(i, "unexpected character %q", s[i])
	}

	var v uint64
	for k := i; k < j; k++ {
		if hex {
			nib, _ := hexDigitValue(s[k])
			v = v<<4 | uint64(nib)
		} else {
			if s[k] < '0' || s[k] > '9' {
				// Stray hex letters in a decimal run: keep the decimal
				// prefix, still consume the whole run.
				break
			}
			v = v*10 + uint64(s[k]-'0')
		}
	}
	out.MakeInt64(int64(v))
	return j, nil
}

func hexDigitValue(c byte) (byte, bool) {
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10, true
	}
	return hexNibble(c)
}
