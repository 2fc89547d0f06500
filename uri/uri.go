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

// Package uri provides immutable value types for parsing, validating,
// normalizing and structurally editing URIs (RFC 3986) and IRIs (RFC 3987)
// and their components: Host, Domain, Path, Query, Authority and Uri.
//
// Every type is constructed through a validating factory and never mutated;
// each operation returns a new value, sharing unmodified sub-structures
// where safe. The Modifier type composes structural edits across components
// while re-validating the resulting URI, and the package implements
// reference resolution (RFC 3986, Section 5.3) and its approximate inverse,
// relativization.
//
// The package performs no I/O. Public-suffix decomposition of domain hosts
// is delegated to an injected SuffixResolver; the psl package provides one
// backed by the list embedded in golang.org/x/net/publicsuffix.
package uri

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Uri is an immutable URI reference: an optional scheme, an optional
// authority, a path, an optional query and an optional fragment. The
// structural invariants of RFC 3986, Section 3.3 are enforced at
// construction and after every edit:
//
//   - with an authority, the path is empty or starts with "/";
//   - without an authority but with a scheme, the path must not start
//     with "//";
//   - without both, the first segment of a relative path must not contain
//     a ':'.
type Uri struct {
	scheme      string
	hasScheme   bool
	authority   *Authority
	path        *Path
	query       *Query
	fragment    string
	hasFragment bool
}

// parseConfig carries the injected collaborators of a parse.
type parseConfig struct {
	resolver SuffixResolver
	querySep byte
}

// ParseOption configures collaborators used while parsing.
type ParseOption func(*parseConfig)

// WithSuffixResolver attaches a public-suffix resolver to every host parsed
// under this option.
func WithSuffixResolver(r SuffixResolver) ParseOption {
	return func(cfg *parseConfig) { cfg.resolver = r }
}

// WithQuerySeparator selects the query pair separator; the default is '&'.
func WithQuerySeparator(sep byte) ParseOption {
	return func(cfg *parseConfig) { cfg.querySep = sep }
}

// Parse parses and validates an absolute URI. The input is normalized to
// Unicode Normalization Form C before parsing, so canonically equivalent
// inputs produce identical values.
func Parse(s string, opts ...ParseOption) (*Uri, error) {
	u, err := ParseReference(s, opts...)
	if err != nil {
		return nil, err
	}
	if !u.hasScheme {
		return nil, newSyntaxError("no scheme in an absolute URI", s)
	}
	return u, nil
}

// ParseReference parses and validates a URI reference, which may be
// relative. The input is normalized to NFC before parsing.
func ParseReference(s string, opts ...ParseOption) (*Uri, error) {
	cfg := parseConfig{querySep: DefaultSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}
	return parseReference(norm.NFC.String(s), cfg)
}

// splitScheme extracts a scheme from the front of a reference. It fails when
// the candidate does not satisfy the scheme grammar, in which case the colon
// belongs to a path segment.
func splitScheme(s string) (scheme, rest string, ok bool) {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return "", s, false
	}
	candidate := s[:i]
	if !isASCIILetter(rune(candidate[0])) {
		return "", s, false
	}
	for _, r := range candidate[1:] {
		if !isSchemeChar(r) {
			return "", s, false
		}
	}
	return candidate, s[i+1:], true
}

// parseReference deconstructs a reference string into components, validating
// each through its own factory: fragment first, then query, scheme,
// authority and path.
func parseReference(s string, cfg parseConfig) (*Uri, error) {
	u := &Uri{}
	rest := s

	if i := strings.IndexByte(rest, '#'); i != -1 {
		fragment, err := decodePercent(rest[i+1:])
		if err != nil {
			return nil, err
		}
		u.fragment = fragment
		u.hasFragment = true
		rest = rest[:i]
	}

	var queryRaw string
	hasQuery := false
	if i := strings.IndexByte(rest, '?'); i != -1 {
		queryRaw = rest[i+1:]
		hasQuery = true
		rest = rest[:i]
	}

	if scheme, tail, ok := splitScheme(rest); ok {
		u.scheme = strings.ToLower(scheme)
		u.hasScheme = true
		rest = tail
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		authorityRaw := rest
		pathRaw := ""
		if slash := strings.IndexByte(rest, '/'); slash != -1 {
			authorityRaw = rest[:slash]
			pathRaw = rest[slash:]
		}
		authority, err := ParseAuthorityWithResolver(authorityRaw, cfg.resolver)
		if err != nil {
			return nil, err
		}
		u.authority = authority
		rest = pathRaw
	}

	path, err := ParsePath(rest)
	if err != nil {
		return nil, err
	}
	u.path = path

	if hasQuery {
		query, err := ParseQueryWithSeparator(queryRaw, cfg.querySep)
		if err != nil {
			return nil, err
		}
		u.query = query
	}

	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// validate enforces the RFC 3986, Section 3.3 structural invariants.
func (u *Uri) validate() error {
	p := u.path
	if u.authority != nil {
		if !p.IsEmpty() && !p.IsAbsolute() {
			return newStructuralError("path must be empty or absolute when an authority is present", p.Encoded())
		}
		return nil
	}
	startsDoubleSlash := p.IsAbsolute() &&
		((len(p.segments) > 0 && p.segments[0] == "") || (len(p.segments) == 0 && p.trailing))
	if startsDoubleSlash {
		return newStructuralError("path must not start with // without an authority", p.Encoded())
	}
	if !u.hasScheme && !p.IsAbsolute() && len(p.segments) > 0 && strings.ContainsRune(p.segments[0], ':') {
		return newStructuralError("first segment of a relative reference must not contain ':'", p.segments[0])
	}
	return nil
}

// Scheme returns the lowercased scheme and whether it is present.
func (u *Uri) Scheme() (string, bool) { return u.scheme, u.hasScheme }

// IsAbsolute reports whether the URI has a scheme.
func (u *Uri) IsAbsolute() bool { return u.hasScheme }

// Authority returns the authority and whether it is present.
func (u *Uri) Authority() (*Authority, bool) { return u.authority, u.authority != nil }

// Host returns the host of the authority and whether one is present.
func (u *Uri) Host() (*Host, bool) {
	if u.authority == nil {
		return nil, false
	}
	return u.authority.host, true
}

// Path returns the path component; it is always present, possibly empty.
func (u *Uri) Path() *Path { return u.path }

// Query returns the query and whether it is present.
func (u *Uri) Query() (*Query, bool) { return u.query, u.query != nil }

// Fragment returns the decoded fragment and whether it is present.
func (u *Uri) Fragment() (string, bool) { return u.fragment, u.hasFragment }

// Encoded returns the encoded string form of the URI.
func (u *Uri) Encoded() string {
	var b strings.Builder
	if u.hasScheme {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if u.authority != nil {
		b.WriteString("//")
		b.WriteString(u.authority.Encoded())
	}
	b.WriteString(u.path.Encoded())
	if u.query != nil {
		b.WriteByte('?')
		b.WriteString(u.query.Encoded())
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(encodeWith(u.fragment, isFragmentChar))
	}
	return b.String()
}

// String returns the encoded form.
func (u *Uri) String() string { return u.Encoded() }

// Unicode returns the IRI display form: the encoded URI with the host in its
// Unicode shape.
func (u *Uri) Unicode() string {
	if u.authority == nil {
		return u.Encoded()
	}
	var b strings.Builder
	if u.hasScheme {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	b.WriteString("//")
	if info, ok := u.authority.UserInfo(); ok {
		b.WriteString(encodeWith(info, isUserInfoChar))
		b.WriteByte('@')
	}
	b.WriteString(u.authority.host.String())
	if port, ok := u.authority.Port(); ok {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(port)))
	}
	b.WriteString(u.path.Encoded())
	if u.query != nil {
		b.WriteByte('?')
		b.WriteString(u.query.Encoded())
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(encodeWith(u.fragment, isFragmentChar))
	}
	return b.String()
}

// derive shallow-copies the URI for an edit.
func (u *Uri) derive() *Uri {
	dup := *u
	return &dup
}

// WithScheme returns a URI with the given scheme.
func (u *Uri) WithScheme(scheme string) (*Uri, error) {
	lowered := strings.ToLower(scheme)
	if lowered == "" || !isASCIILetter(rune(lowered[0])) {
		return nil, newSyntaxError("invalid scheme", scheme)
	}
	for _, r := range lowered[1:] {
		if !isSchemeChar(r) {
			return nil, newSyntaxError("invalid scheme character", scheme)
		}
	}
	if u.hasScheme && u.scheme == lowered {
		return u, nil
	}
	dup := u.derive()
	dup.scheme = lowered
	dup.hasScheme = true
	return dup, dup.validate()
}

// WithoutScheme returns a relative reference with the scheme removed.
func (u *Uri) WithoutScheme() (*Uri, error) {
	if !u.hasScheme {
		return u, nil
	}
	dup := u.derive()
	dup.scheme = ""
	dup.hasScheme = false
	return dup, dup.validate()
}

// WithAuthority returns a URI with the given authority.
func (u *Uri) WithAuthority(a *Authority) (*Uri, error) {
	if u.authority.Equal(a) {
		return u, nil
	}
	dup := u.derive()
	dup.authority = a
	return dup, dup.validate()
}

// WithoutAuthority returns a URI with the authority removed.
func (u *Uri) WithoutAuthority() (*Uri, error) {
	if u.authority == nil {
		return u, nil
	}
	dup := u.derive()
	dup.authority = nil
	return dup, dup.validate()
}

// WithHost returns a URI whose authority holds the given host, creating an
// empty authority when none exists.
func (u *Uri) WithHost(h *Host) (*Uri, error) {
	dup := u.derive()
	if u.authority == nil {
		dup.authority = AuthorityFromHost(h)
	} else {
		dup.authority = u.authority.WithHost(h)
		if dup.authority == u.authority {
			return u, nil
		}
	}
	return dup, dup.validate()
}

// WithPath returns a URI with the given path.
func (u *Uri) WithPath(p *Path) (*Uri, error) {
	if u.path.Equal(p) {
		return u, nil
	}
	dup := u.derive()
	dup.path = p
	return dup, dup.validate()
}

// WithQuery returns a URI with the given query.
func (u *Uri) WithQuery(q *Query) (*Uri, error) {
	if u.query.Equal(q) {
		return u, nil
	}
	dup := u.derive()
	dup.query = q
	return dup, dup.validate()
}

// WithoutQuery returns a URI with the query removed.
func (u *Uri) WithoutQuery() *Uri {
	if u.query == nil {
		return u
	}
	dup := u.derive()
	dup.query = nil
	return dup
}

// WithFragment returns a URI with the given decoded fragment.
func (u *Uri) WithFragment(fragment string) *Uri {
	if u.hasFragment && u.fragment == fragment {
		return u
	}
	dup := u.derive()
	dup.fragment = fragment
	dup.hasFragment = true
	return dup
}

// WithoutFragment returns a URI with the fragment removed.
func (u *Uri) WithoutFragment() *Uri {
	if !u.hasFragment {
		return u
	}
	dup := u.derive()
	dup.fragment = ""
	dup.hasFragment = false
	return dup
}

// Normalize applies syntax-based normalization per RFC 3986, Section 6.2.2:
// dot segments are removed and, when an authority is present, an empty path
// becomes "/". Scheme and host case normalization already happen at
// construction.
func (u *Uri) Normalize() *Uri {
	path := u.path.RemoveDotSegments()
	if u.authority != nil && path.IsEmpty() {
		path = &Path{absolute: true}
	}
	if path == u.path {
		return u
	}
	dup := u.derive()
	dup.path = path
	return dup
}

// Equal reports whether two URIs have the same encoded form.
func (u *Uri) Equal(other *Uri) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.Encoded() == other.Encoded()
}

// MarshalJSON encodes the URI as a JSON string.
func (u *Uri) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Encoded())
}

// UnmarshalJSON decodes and validates a JSON string as a URI reference.
func (u *Uri) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseReference(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
