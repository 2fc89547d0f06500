/*
Copyright 2025 Nereid Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"strings"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// percentEncodeByte writes the %XX form of a single octet.
func percentEncodeByte(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperHex[c>>4])
	b.WriteByte(upperHex[c&0x0F])
}

// encodeWith percent-encodes every rune of s that the allowed predicate does
// not accept, using the UTF-8 representation of the rune. The input is always
// decoded component data, so a '%' is a literal percent sign and encodes as
// "%25": decoding the result reproduces s exactly, whatever it contains.
func encodeWith(s string, allowed func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r < utf8.RuneSelf && r != '%' && allowed(r) {
			b.WriteByte(s[i])
			i++
			continue
		}
		for j := 0; j < size; j++ {
			percentEncodeByte(&b, s[i+j])
		}
		i += size
	}
	return b.String()
}

// hexVal returns the value of an ASCII hex digit.
func hexVal(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// decodePercent decodes every percent-encoded triple in s. It fails with a
// syntax error on a '%' that is not followed by two hexadecimal digits, so an
// encoded string never contains a raw percent sign outside a valid triple.
func decodePercent(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+2 >= len(s) || !isASCIIHexDigit(rune(s[i+1])) || !isASCIIHexDigit(rune(s[i+2])) {
			return "", newSyntaxError("invalid percent encoding", s[i:min(i+3, len(s))])
		}
		b.WriteByte(hexVal(s[i+1])<<4 | hexVal(s[i+2]))
		i += 3
	}
	return b.String(), nil
}

// hasValidPercentTriples reports whether every '%' in s starts a valid triple.
func hasValidPercentTriples(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+2 >= len(s) || !isASCIIHexDigit(rune(s[i+1])) || !isASCIIHexDigit(rune(s[i+2])) {
			return false
		}
		i += 2
	}
	return true
}
