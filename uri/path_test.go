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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// mustParsePath is a test helper that panics on an invalid encoded path.
func mustParsePath(s string) *Path {
	p, err := ParsePath(s)
	if err != nil {
		panic("test setup failed: could not parse path: " + s)
	}
	return p
}

func TestParsePathRoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		segments []string
		absolute bool
		trailing bool
	}{
		{
			name:  "empty path",
			input: "",
		},
		{
			name:     "root",
			input:    "/",
			absolute: true,
		},
		{
			name:     "absolute file path",
			input:    "/a/b/c",
			segments: []string{"a", "b", "c"},
			absolute: true,
		},
		{
			name:     "directory path",
			input:    "/a/b/",
			segments: []string{"a", "b"},
			absolute: true,
			trailing: true,
		},
		{
			name:     "relative path",
			input:    "a/b",
			segments: []string{"a", "b"},
		},
		{
			name:     "internal empty segment survives",
			input:    "/a//b",
			segments: []string{"a", "", "b"},
			absolute: true,
		},
		{
			name:     "encoded slash stays inside its segment",
			input:    "/a%2Fb/c",
			segments: []string{"a/b", "c"},
			absolute: true,
		},
		{
			name:     "encoded space decodes",
			input:    "/a%20b",
			segments: []string{"a b"},
			absolute: true,
		},
		{
			name:     "percent triple as segment data survives the round trip",
			input:    "/v%2525",
			segments: []string{"v%25"},
			absolute: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePath(tc.input)
			if err != nil {
				t.Fatalf("ParsePath(%q) returned error: %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.segments, p.Segments(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParsePath(%q) segments mismatch (-want +got):\n%s", tc.input, diff)
			}
			if p.IsAbsolute() != tc.absolute {
				t.Errorf("ParsePath(%q) absolute = %v, want %v", tc.input, p.IsAbsolute(), tc.absolute)
			}
			if p.HasTrailingSlash() != tc.trailing {
				t.Errorf("ParsePath(%q) trailing = %v, want %v", tc.input, p.HasTrailingSlash(), tc.trailing)
			}
			if got := p.Encoded(); got != tc.input {
				t.Errorf("round trip of %q produced %q", tc.input, got)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, input := range []string{"/a%2/b", "/a%", "/%GG"} {
		if _, err := ParsePath(input); err == nil {
			t.Errorf("ParsePath(%q) succeeded, want error", input)
		}
	}
}

func TestRemoveDotSegments(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "/a/b/c/./../../g", expected: "/a/g"},
		{input: "mid/content=5/../6", expected: "mid/6"},
		{input: "/./g", expected: "/g"},
		{input: "/../g", expected: "/g"},
		{input: "/a/../../g", expected: "/g"},
		{input: "/a/b/..", expected: "/a/"},
		{input: "/a/b/.", expected: "/a/b/"},
		{input: "/.", expected: "/"},
		{input: "/..", expected: "/"},
		{input: ".", expected: ""},
		{input: "..", expected: ""},
		{input: "a/..", expected: ""},
		{input: "a/../b", expected: "b"},
		{input: "/a/./b/./c", expected: "/a/b/c"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := mustParsePath(tc.input).RemoveDotSegments()
			if got.Encoded() != tc.expected {
				t.Errorf("RemoveDotSegments(%q) = %q, want %q", tc.input, got.Encoded(), tc.expected)
			}
			// Idempotence: a second pass must change nothing.
			if again := got.RemoveDotSegments(); again != got {
				t.Errorf("RemoveDotSegments(%q) is not idempotent: %q then %q", tc.input, got.Encoded(), again.Encoded())
			}
		})
	}
}

func TestPathSlashEdits(t *testing.T) {
	p := mustParsePath("a/b")
	if got := p.WithLeadingSlash().Encoded(); got != "/a/b" {
		t.Errorf("WithLeadingSlash = %q, want /a/b", got)
	}
	if got := p.WithTrailingSlash().Encoded(); got != "a/b/" {
		t.Errorf("WithTrailingSlash = %q, want a/b/", got)
	}
	abs := mustParsePath("/a/b/")
	if got := abs.WithoutLeadingSlash().Encoded(); got != "a/b/" {
		t.Errorf("WithoutLeadingSlash = %q, want a/b/", got)
	}
	if got := abs.WithoutTrailingSlash().Encoded(); got != "/a/b" {
		t.Errorf("WithoutTrailingSlash = %q, want /a/b", got)
	}
	// No-op edits return the receiver.
	if abs.WithLeadingSlash() != abs {
		t.Error("WithLeadingSlash on an absolute path should be a no-op")
	}
	if p.WithoutTrailingSlash() != p {
		t.Error("WithoutTrailingSlash without a trailing slash should be a no-op")
	}
}

func TestPathWithoutEmptySegments(t *testing.T) {
	p := mustParsePath("/a//b///c")
	if got := p.WithoutEmptySegments().Encoded(); got != "/a/b/c" {
		t.Errorf("WithoutEmptySegments = %q, want /a/b/c", got)
	}
	clean := mustParsePath("/a/b")
	if clean.WithoutEmptySegments() != clean {
		t.Error("WithoutEmptySegments on a clean path should be a no-op")
	}
}

func TestPathAppendPrepend(t *testing.T) {
	p := mustParsePath("/a/b")
	if got := p.Append("c").Encoded(); got != "/a/b/c" {
		t.Errorf("Append = %q, want /a/b/c", got)
	}
	if got := p.Prepend("z").Encoded(); got != "/z/a/b" {
		t.Errorf("Prepend = %q, want /z/a/b", got)
	}
	// A slash inside a segment is data, not structure.
	if got := p.Append("x/y").Encoded(); got != "/a/b/x%2Fy" {
		t.Errorf("Append with slash = %q, want /a/b/x%%2Fy", got)
	}
}

func TestPathBasenameDirname(t *testing.T) {
	testCases := []struct {
		input    string
		basename string
		dirname  string
	}{
		{input: "/a/b/c.txt", basename: "c.txt", dirname: "/a/b/"},
		{input: "/a/b/", basename: "", dirname: "/a/b/"},
		{input: "", basename: "", dirname: ""},
		{input: "file", basename: "file", dirname: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			p := mustParsePath(tc.input)
			if got := p.Basename(); got != tc.basename {
				t.Errorf("Basename(%q) = %q, want %q", tc.input, got, tc.basename)
			}
			if got := p.Dirname().Encoded(); got != tc.dirname {
				t.Errorf("Dirname(%q) = %q, want %q", tc.input, got, tc.dirname)
			}
		})
	}
}

func TestPathReplaceBasename(t *testing.T) {
	p := mustParsePath("/docs/guide.md")
	got, err := p.ReplaceBasename("intro.md")
	if err != nil {
		t.Fatalf("ReplaceBasename returned error: %v", err)
	}
	if got.Encoded() != "/docs/intro.md" {
		t.Errorf("ReplaceBasename = %q, want /docs/intro.md", got.Encoded())
	}

	dir := mustParsePath("/docs/")
	got, err = dir.ReplaceBasename("index.html")
	if err != nil {
		t.Fatalf("ReplaceBasename on directory returned error: %v", err)
	}
	if got.Encoded() != "/docs/index.html" {
		t.Errorf("ReplaceBasename on directory = %q, want /docs/index.html", got.Encoded())
	}

	if _, err := p.ReplaceBasename("a/b"); err == nil {
		t.Error("ReplaceBasename accepted a basename containing a slash")
	}
}

func TestPathReplaceDirname(t *testing.T) {
	p := mustParsePath("/docs/guide.md")
	got, err := p.ReplaceDirname("/manual/v2")
	if err != nil {
		t.Fatalf("ReplaceDirname returned error: %v", err)
	}
	if got.Encoded() != "/manual/v2/guide.md" {
		t.Errorf("ReplaceDirname = %q, want /manual/v2/guide.md", got.Encoded())
	}
}

func TestPathExtension(t *testing.T) {
	testCases := []struct {
		input    string
		ext      string
		replaced string
	}{
		{input: "/a/b.txt", ext: "txt", replaced: "/a/b.md"},
		{input: "/a/archive.tar.gz", ext: "gz", replaced: "/a/archive.tar.md"},
		{input: "/a/.bashrc", ext: "", replaced: "/a/.bashrc.md"},
		{input: "/a/noext", ext: "", replaced: "/a/noext.md"},
		{input: "/a/b/", ext: "", replaced: "/a/b/"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			p := mustParsePath(tc.input)
			if got := p.Extension(); got != tc.ext {
				t.Errorf("Extension(%q) = %q, want %q", tc.input, got, tc.ext)
			}
			got, err := p.ReplaceExtension("md")
			if err != nil {
				t.Fatalf("ReplaceExtension returned error: %v", err)
			}
			if got.Encoded() != tc.replaced {
				t.Errorf("ReplaceExtension(%q, md) = %q, want %q", tc.input, got.Encoded(), tc.replaced)
			}
		})
	}

	p := mustParsePath("/a/b.txt")
	got, err := p.ReplaceExtension("")
	if err != nil {
		t.Fatalf("ReplaceExtension(\"\") returned error: %v", err)
	}
	if got.Encoded() != "/a/b" {
		t.Errorf("removing the extension gave %q, want /a/b", got.Encoded())
	}
}
