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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponents(t *testing.T) {
	u := mustParse("https://user@example.com:8443/a/b?x=1&y#frag")

	scheme, ok := u.Scheme()
	assert.True(t, ok)
	assert.Equal(t, "https", scheme)

	a, ok := u.Authority()
	require.True(t, ok)
	userinfo, hasUser := a.UserInfo()
	assert.True(t, hasUser)
	assert.Equal(t, "user", userinfo)
	port, hasPort := a.Port()
	assert.True(t, hasPort)
	assert.Equal(t, uint16(8443), port)

	host, ok := u.Host()
	require.True(t, ok)
	assert.Equal(t, "example.com", host.Encoded())

	assert.Equal(t, []string{"a", "b"}, u.Path().Segments())

	q, ok := u.Query()
	require.True(t, ok)
	assert.Equal(t, []Pair{NewPair("x", "1"), FlagPair("y")}, q.Pairs())

	fragment, ok := u.Fragment()
	assert.True(t, ok)
	assert.Equal(t, "frag", fragment)

	assert.Equal(t, "https://user@example.com:8443/a/b?x=1&y#frag", u.Encoded())
}

func TestParseSchemeCase(t *testing.T) {
	u := mustParse("HTTP://example.com/")
	scheme, _ := u.Scheme()
	assert.Equal(t, "http", scheme)
	assert.Equal(t, "http://example.com/", u.Encoded())
}

func TestParseRequiresScheme(t *testing.T) {
	_, err := Parse("//example.com/a")
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = ParseReference("//example.com/a")
	assert.NoError(t, err)
}

func TestParseReferenceKinds(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "network-path reference", input: "//example.com/a"},
		{name: "absolute-path reference", input: "/a/b"},
		{name: "relative-path reference", input: "a/b"},
		{name: "empty reference", input: ""},
		{name: "query-only reference", input: "?x=1"},
		{name: "fragment-only reference", input: "#frag"},
		{name: "scheme without authority", input: "mailto:user@example.com"},
		{name: "urn", input: "urn:isbn:0451450523"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := ParseReference(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.input, u.Encoded(), "round trip")
		})
	}
}

func TestStructuralInvariants(t *testing.T) {
	// A colon in the first segment of a bare relative path would read as a
	// scheme, so it must be rejected.
	_, err := ParseReference("a:b/c")
	// "a:b/c" actually parses as scheme "a"; a reference that cannot be
	// spelled at all needs the colon in a later position of the first
	// segment after an edit.
	assert.NoError(t, err)

	u := mustParseRef("x/y")
	bad, err := ParsePath("x:y/z")
	require.NoError(t, err)
	_, err = u.WithPath(bad)
	assert.ErrorIs(t, err, ErrStructuralViolation)

	// With an authority the path must be empty or absolute.
	withAuth := mustParse("http://example.com/a")
	relPath, err := ParsePath("rel")
	require.NoError(t, err)
	_, err = withAuth.WithPath(relPath)
	assert.ErrorIs(t, err, ErrStructuralViolation)

	// Dropping the authority under a "//"-ish path is ambiguous.
	doubleSlash := mustParse("http://example.com//x")
	_, err = doubleSlash.WithoutAuthority()
	assert.ErrorIs(t, err, ErrStructuralViolation)
}

func TestUriNFCNormalization(t *testing.T) {
	// "é" as a combining sequence and as a precomposed character must parse
	// to identical values.
	composed, err := ParseReference("/café")
	require.NoError(t, err)
	decomposed, err := ParseReference("/café")
	require.NoError(t, err)
	assert.True(t, composed.Equal(decomposed))
}

func TestUriEdits(t *testing.T) {
	u := mustParse("http://example.com/a?x=1#f")

	https, err := u.WithScheme("HTTPS")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a?x=1#f", https.Encoded())

	noQuery := u.WithoutQuery()
	assert.Equal(t, "http://example.com/a#f", noQuery.Encoded())
	assert.Same(t, noQuery, noQuery.WithoutQuery())

	noFrag := u.WithoutFragment()
	assert.Equal(t, "http://example.com/a?x=1", noFrag.Encoded())

	frag := u.WithFragment("new frag")
	assert.Equal(t, "http://example.com/a?x=1#new%20frag", frag.Encoded())

	host, err := ParseHost("other.example")
	require.NoError(t, err)
	moved, err := u.WithHost(host)
	require.NoError(t, err)
	assert.Equal(t, "http://other.example/a?x=1#f", moved.Encoded())

	_, err = u.WithScheme("1nvalid")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestUriWithHostCreatesAuthority(t *testing.T) {
	u := mustParse("mailto:user@example.com")
	host, err := ParseHost("example.org")
	require.NoError(t, err)

	// mailto has no authority and a relative path, so adding one violates
	// the path invariant.
	_, err = u.WithHost(host)
	assert.ErrorIs(t, err, ErrStructuralViolation)

	rooted := mustParse("http:/a")
	got, err := rooted.WithHost(host)
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/a", got.Encoded())
}

func TestUriNormalize(t *testing.T) {
	u := mustParse("http://example.com/a/b/c/./../../g")
	assert.Equal(t, "http://example.com/a/g", u.Normalize().Encoded())

	// An empty path with an authority normalizes to "/".
	u = mustParse("http://example.com")
	assert.Equal(t, "http://example.com/", u.Normalize().Encoded())

	clean := mustParse("http://example.com/a")
	assert.Same(t, clean, clean.Normalize())
}

func TestUriUnicodeDisplay(t *testing.T) {
	u := mustParse("http://b%C3%BCcher.de/ueber")
	assert.Equal(t, "http://xn--bcher-kva.de/ueber", u.Encoded())
	assert.Equal(t, "http://bücher.de/ueber", u.Unicode())
}

func TestUriJSON(t *testing.T) {
	u := mustParse("http://example.com/a?x=1")
	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `"http://example.com/a?x=1"`, string(data))

	var back Uri
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, u.Equal(&back))

	assert.Error(t, back.UnmarshalJSON([]byte(`"http://exa mple.com/"`)))
	assert.Error(t, back.UnmarshalJSON([]byte(`42`)))
}

func TestUriQuerySeparatorOption(t *testing.T) {
	u, err := Parse("http://example.com/?a=1;b=2", WithQuerySeparator(';'))
	require.NoError(t, err)
	q, ok := u.Query()
	require.True(t, ok)
	assert.Equal(t, []Pair{NewPair("a", "1"), NewPair("b", "2")}, q.Pairs())
	assert.Equal(t, "http://example.com/?a=1;b=2", u.Encoded())
}

func TestUriSuffixResolverOption(t *testing.T) {
	resolver := newListResolver("com")
	u, err := Parse("http://www.example.com/", WithSuffixResolver(resolver))
	require.NoError(t, err)
	host, ok := u.Host()
	require.True(t, ok)
	assert.Equal(t, "example.com", host.RegistrableDomain())
}
