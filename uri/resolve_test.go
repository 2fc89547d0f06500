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
	"testing"
)

// mustParse is a test helper that panics on an invalid absolute URI.
func mustParse(s string) *Uri {
	u, err := Parse(s)
	if err != nil {
		panic("test setup failed: could not parse URI: " + s)
	}
	return u
}

// mustParseRef is a test helper that panics on an invalid URI reference.
func mustParseRef(s string) *Uri {
	u, err := ParseReference(s)
	if err != nil {
		panic("test setup failed: could not parse reference: " + s)
	}
	return u
}

// TestResolveNormalExamples runs the normal examples of RFC 3986,
// Section 5.4.1 against the base "http://a/b/c/d;p?q".
func TestResolveNormalExamples(t *testing.T) {
	base := mustParse("http://a/b/c/d;p?q")
	testCases := []struct {
		ref      string
		expected string
	}{
		{ref: "g:h", expected: "g:h"},
		{ref: "g", expected: "http://a/b/c/g"},
		{ref: "./g", expected: "http://a/b/c/g"},
		{ref: "g/", expected: "http://a/b/c/g/"},
		{ref: "/g", expected: "http://a/g"},
		{ref: "//g", expected: "http://g"},
		{ref: "?y", expected: "http://a/b/c/d;p?y"},
		{ref: "g?y", expected: "http://a/b/c/g?y"},
		{ref: "#s", expected: "http://a/b/c/d;p?q#s"},
		{ref: "g#s", expected: "http://a/b/c/g#s"},
		{ref: "g?y#s", expected: "http://a/b/c/g?y#s"},
		{ref: ";x", expected: "http://a/b/c/;x"},
		{ref: "g;x", expected: "http://a/b/c/g;x"},
		{ref: "g;x?y#s", expected: "http://a/b/c/g;x?y#s"},
		{ref: "", expected: "http://a/b/c/d;p?q"},
		{ref: ".", expected: "http://a/b/c/"},
		{ref: "./", expected: "http://a/b/c/"},
		{ref: "..", expected: "http://a/b/"},
		{ref: "../", expected: "http://a/b/"},
		{ref: "../g", expected: "http://a/b/g"},
		{ref: "../..", expected: "http://a/"},
		{ref: "../../", expected: "http://a/"},
		{ref: "../../g", expected: "http://a/g"},
	}

	for _, tc := range testCases {
		t.Run(tc.ref, func(t *testing.T) {
			got, err := ResolveReference(base, tc.ref)
			if err != nil {
				t.Fatalf("ResolveReference(%q) returned error: %v", tc.ref, err)
			}
			if got.Encoded() != tc.expected {
				t.Errorf("ResolveReference(%q) = %q, want %q", tc.ref, got.Encoded(), tc.expected)
			}
		})
	}
}

// TestResolveAbnormalExamples runs the abnormal examples of RFC 3986,
// Section 5.4.2, following the strict interpretation throughout: excess ".."
// segments are dropped rather than preserved, and a reference with a scheme
// is always treated as absolute.
func TestResolveAbnormalExamples(t *testing.T) {
	base := mustParse("http://a/b/c/d;p?q")
	testCases := []struct {
		ref      string
		expected string
	}{
		{ref: "../../../g", expected: "http://a/g"},
		{ref: "../../../../g", expected: "http://a/g"},
		{ref: "/./g", expected: "http://a/g"},
		{ref: "/../g", expected: "http://a/g"},
		{ref: "g.", expected: "http://a/b/c/g."},
		{ref: ".g", expected: "http://a/b/c/.g"},
		{ref: "g..", expected: "http://a/b/c/g.."},
		{ref: "..g", expected: "http://a/b/c/..g"},
		{ref: "./../g", expected: "http://a/b/g"},
		{ref: "./g/.", expected: "http://a/b/c/g/"},
		{ref: "g/./h", expected: "http://a/b/c/g/h"},
		{ref: "g/../h", expected: "http://a/b/c/h"},
		{ref: "g;x=1/./y", expected: "http://a/b/c/g;x=1/y"},
		{ref: "g;x=1/../y", expected: "http://a/b/c/y"},
		{ref: "g?y/./x", expected: "http://a/b/c/g?y/./x"},
		{ref: "g?y/../x", expected: "http://a/b/c/g?y/../x"},
		{ref: "g#s/./x", expected: "http://a/b/c/g#s/./x"},
		{ref: "g#s/../x", expected: "http://a/b/c/g#s/../x"},
		{ref: "http:g", expected: "http:g"},
	}

	for _, tc := range testCases {
		t.Run(tc.ref, func(t *testing.T) {
			got, err := ResolveReference(base, tc.ref)
			if err != nil {
				t.Fatalf("ResolveReference(%q) returned error: %v", tc.ref, err)
			}
			if got.Encoded() != tc.expected {
				t.Errorf("ResolveReference(%q) = %q, want %q", tc.ref, got.Encoded(), tc.expected)
			}
		})
	}
}

func TestResolveClearsBaseFragment(t *testing.T) {
	base := mustParse("http://example.com/a#frag")
	got, err := ResolveReference(base, "")
	if err != nil {
		t.Fatalf("resolving the empty reference returned error: %v", err)
	}
	if got.Encoded() != "http://example.com/a" {
		t.Errorf("resolving the empty reference = %q, want the base without its fragment", got.Encoded())
	}
}

func TestResolveAgainstAuthorityOnlyBase(t *testing.T) {
	base := mustParse("http://example.com")
	got, err := ResolveReference(base, "g")
	if err != nil {
		t.Fatalf("ResolveReference returned error: %v", err)
	}
	// A relative reference merged onto an empty path with an authority
	// starts from "/".
	if got.Encoded() != "http://example.com/g" {
		t.Errorf("ResolveReference = %q, want http://example.com/g", got.Encoded())
	}
}

func TestResolveRequiresAbsoluteBase(t *testing.T) {
	base := mustParseRef("relative/base")
	if _, err := ResolveReference(base, "g"); err == nil {
		t.Error("Resolve accepted a relative base")
	}
}
