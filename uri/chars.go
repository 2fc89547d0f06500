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

import "strings"

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isASCIIHexDigit checks if a rune is an ASCII hexadecimal digit.
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isUnreserved checks if a rune is in the unreserved set of RFC 3986, Section 2.3.
func isUnreserved(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '-' || r == '.' || r == '_' || r == '~'
}

// isSubDelim checks if a rune is in the sub-delims set of RFC 3986, Section 2.2.
func isSubDelim(r rune) bool {
	return strings.ContainsRune("!$&'()*+,;=", r)
}

// isUnreservedOrSubDelim checks if a rune is in the unreserved or sub-delims sets.
func isUnreservedOrSubDelim(r rune) bool {
	return isUnreserved(r) || isSubDelim(r)
}

// isRegNameChar is the allowed set for a registered name (host) octet outside
// of percent-encoding, per RFC 3986, Section 3.2.2.
func isRegNameChar(r rune) bool {
	return isUnreservedOrSubDelim(r)
}

// isUserInfoChar is the allowed set for the userinfo component, per
// RFC 3986, Section 3.2.1.
func isUserInfoChar(r rune) bool {
	return isUnreservedOrSubDelim(r) || r == ':'
}

// isPChar is the allowed set for a path segment octet, per RFC 3986,
// Section 3.3. The '/' separator is deliberately excluded: a slash inside a
// decoded segment must stay percent-encoded so that re-splitting the encoded
// path reproduces the same segments.
func isPChar(r rune) bool {
	return isUnreservedOrSubDelim(r) || r == ':' || r == '@'
}

// isQueryChar is the allowed set for query and fragment octets before any
// separator carve-outs, per RFC 3986, Sections 3.4 and 3.5.
func isQueryChar(r rune) bool {
	return isPChar(r) || r == '/' || r == '?'
}

// isFragmentChar is the allowed set for the fragment component.
func isFragmentChar(r rune) bool {
	return isQueryChar(r)
}

// isZoneChar is the allowed set for a decoded IPv6 zone identifier, per
// RFC 6874. The gen-delims and control characters the grammar calls out are
// already outside this set.
func isZoneChar(r rune) bool {
	return isUnreservedOrSubDelim(r)
}

// isSchemeChar checks a non-initial scheme rune, per RFC 3986, Section 3.1.
func isSchemeChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.'
}
