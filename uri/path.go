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

// Path is an immutable URI path modeled as decoded segments plus two
// structural flags. The leading and trailing slashes are flags rather than
// empty segments; internal empty segments ("a//b") are preserved as real
// segments. Re-assembling the segments with separators and flags reproduces
// an encoded form that percent-decodes back to the same segments: a '/'
// inside a decoded segment stays percent-encoded on output.
type Path struct {
	segments []string
	absolute bool
	trailing bool
}

// emptyPath is the canonical empty path value.
var emptyPath = &Path{}

// ParsePath splits an encoded path on '/' and percent-decodes each segment.
func ParsePath(raw string) (*Path, error) {
	if raw == "" {
		return emptyPath, nil
	}
	p := &Path{}
	s := raw
	if strings.HasPrefix(s, "/") {
		p.absolute = true
		s = s[1:]
	}
	if strings.HasSuffix(s, "/") {
		p.trailing = true
		s = s[:len(s)-1]
	}
	if s == "" {
		return p, nil
	}
	parts := strings.Split(s, "/")
	p.segments = make([]string, len(parts))
	for i, part := range parts {
		decoded, err := decodePercent(part)
		if err != nil {
			return nil, err
		}
		p.segments[i] = decoded
	}
	return p, nil
}

// NewPath builds a path from decoded segments and structural flags.
func NewPath(segments []string, absolute, trailing bool) *Path {
	if len(segments) == 0 && !absolute && !trailing {
		return emptyPath
	}
	segs := make([]string, len(segments))
	copy(segs, segments)
	return &Path{segments: segs, absolute: absolute, trailing: trailing}
}

// Segments returns a copy of the decoded segments.
func (p *Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.segments) }

// IsAbsolute reports whether the path begins with a slash.
func (p *Path) IsAbsolute() bool { return p.absolute }

// HasTrailingSlash reports whether the path ends with a slash.
func (p *Path) HasTrailingSlash() bool { return p.trailing }

// IsEmpty reports whether the path has no segments and no slashes.
func (p *Path) IsEmpty() bool { return !p.absolute && !p.trailing && len(p.segments) == 0 }

// Encoded returns the percent-encoded string form of the path.
func (p *Path) Encoded() string {
	var b strings.Builder
	if p.absolute {
		b.WriteByte('/')
	}
	for i, seg := range p.segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(encodeWith(seg, isPChar))
	}
	if p.trailing {
		b.WriteByte('/')
	}
	return b.String()
}

// String returns the encoded form.
func (p *Path) String() string { return p.Encoded() }

// containsDotSegments reports whether any segment is "." or "..".
func (p *Path) containsDotSegments() bool {
	for _, seg := range p.segments {
		if seg == "." || seg == ".." {
			return true
		}
	}
	return false
}

// RemoveDotSegments resolves "." and ".." segments per RFC 3986,
// Section 5.2.4. A ".." that cannot pop an output segment is dropped, so a
// path never climbs past its root. A final dot segment leaves a trailing
// slash behind. The operation is idempotent and returns the receiver when
// the path has no dot segments.
func (p *Path) RemoveDotSegments() *Path {
	if !p.containsDotSegments() {
		return p
	}
	var out []string
	endSlash := p.trailing
	for i, seg := range p.segments {
		last := i == len(p.segments)-1
		switch seg {
		case ".":
			if last {
				endSlash = true
			}
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			if last {
				endSlash = true
			}
		default:
			out = append(out, seg)
		}
	}
	if len(out) == 0 {
		if p.absolute {
			return &Path{absolute: true}
		}
		return emptyPath
	}
	return &Path{segments: out, absolute: p.absolute, trailing: endSlash}
}

// WithoutEmptySegments collapses consecutive separators by dropping internal
// empty segments.
func (p *Path) WithoutEmptySegments() *Path {
	kept := make([]string, 0, len(p.segments))
	for _, seg := range p.segments {
		if seg != "" {
			kept = append(kept, seg)
		}
	}
	if len(kept) == len(p.segments) {
		return p
	}
	return &Path{segments: kept, absolute: p.absolute, trailing: p.trailing}
}

// WithLeadingSlash returns the absolute form of the path.
func (p *Path) WithLeadingSlash() *Path {
	if p.absolute {
		return p
	}
	return &Path{segments: p.segments, absolute: true, trailing: p.trailing}
}

// WithoutLeadingSlash returns the relative form of the path.
func (p *Path) WithoutLeadingSlash() *Path {
	if !p.absolute {
		return p
	}
	return &Path{segments: p.segments, absolute: false, trailing: p.trailing}
}

// WithTrailingSlash returns the path with a trailing slash.
func (p *Path) WithTrailingSlash() *Path {
	if p.trailing {
		return p
	}
	return &Path{segments: p.segments, absolute: p.absolute, trailing: true}
}

// WithoutTrailingSlash returns the path without a trailing slash.
func (p *Path) WithoutTrailingSlash() *Path {
	if !p.trailing {
		return p
	}
	return &Path{segments: p.segments, absolute: p.absolute, trailing: false}
}

// Append adds a decoded segment at the end of the path. This is a
// segment-level operation, not string concatenation: a '/' inside the
// segment is percent-encoded in the output.
func (p *Path) Append(segment string) *Path {
	segs := append(append([]string{}, p.segments...), segment)
	return &Path{segments: segs, absolute: p.absolute, trailing: p.trailing}
}

// Prepend adds a decoded segment at the start of the path.
func (p *Path) Prepend(segment string) *Path {
	segs := append([]string{segment}, p.segments...)
	return &Path{segments: segs, absolute: p.absolute, trailing: p.trailing}
}

// Basename returns the last segment of the path, or "" when the path is
// empty or ends with a slash.
func (p *Path) Basename() string {
	if p.trailing || len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Dirname returns the path up to and excluding the basename.
func (p *Path) Dirname() *Path {
	if p.trailing || len(p.segments) == 0 {
		return p
	}
	dir := p.segments[:len(p.segments)-1]
	if len(dir) == 0 && !p.absolute {
		// The directory of a bare relative filename is the empty path, not "/".
		return emptyPath
	}
	return &Path{segments: dir, absolute: p.absolute, trailing: true}
}

// ReplaceBasename replaces the last segment of the path. The new basename
// must not contain a '/'. On an empty or directory-style path the basename
// is appended.
func (p *Path) ReplaceBasename(basename string) (*Path, error) {
	if strings.ContainsRune(basename, '/') {
		return nil, newSyntaxError("basename must not contain a slash", basename)
	}
	if p.trailing || len(p.segments) == 0 {
		segs := append(append([]string{}, p.segments...), basename)
		return &Path{segments: segs, absolute: p.absolute, trailing: false}, nil
	}
	if p.segments[len(p.segments)-1] == basename {
		return p, nil
	}
	segs := append([]string{}, p.segments...)
	segs[len(segs)-1] = basename
	return &Path{segments: segs, absolute: p.absolute, trailing: false}, nil
}

// ReplaceDirname replaces everything before the basename with the given
// encoded directory path.
func (p *Path) ReplaceDirname(dirname string) (*Path, error) {
	dir, err := ParsePath(dirname)
	if err != nil {
		return nil, err
	}
	segs := append([]string{}, dir.segments...)
	base := p.Basename()
	if base != "" {
		segs = append(segs, base)
	}
	return &Path{segments: segs, absolute: dir.absolute, trailing: base == ""}, nil
}

// Extension returns the basename's extension without its dot, or "". A
// leading dot alone (".bashrc" style names) does not start an extension.
func (p *Path) Extension() string {
	base := p.Basename()
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return base[i+1:]
	}
	return ""
}

// ReplaceExtension replaces the basename's extension; an empty extension
// removes it. The extension is given without its leading dot, which is also
// accepted and stripped. A path without a basename is returned unchanged.
func (p *Path) ReplaceExtension(ext string) (*Path, error) {
	ext = strings.TrimPrefix(ext, ".")
	if strings.ContainsRune(ext, '/') {
		return nil, newSyntaxError("extension must not contain a slash", ext)
	}
	base := p.Basename()
	if base == "" {
		return p, nil
	}
	stem := base
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		stem = base[:i]
	}
	if ext != "" {
		stem += "." + ext
	}
	return p.ReplaceBasename(stem)
}

// merge combines a base path with a relative reference path per RFC 3986,
// Section 5.2.3. It is only called when the reference path is relative.
func (p *Path) merge(ref *Path, baseHasAuthority bool) *Path {
	if baseHasAuthority && p.IsEmpty() {
		return &Path{segments: ref.Segments(), absolute: true, trailing: ref.trailing}
	}
	keep := p.segments
	if !p.trailing && len(keep) > 0 {
		keep = keep[:len(keep)-1]
	}
	segs := append(append([]string{}, keep...), ref.segments...)
	trailing := ref.trailing
	if len(ref.segments) == 0 {
		trailing = len(keep) > 0 || p.absolute
	}
	return &Path{segments: segs, absolute: p.absolute, trailing: trailing}
}

// Equal reports whether two paths have the same structure.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.absolute != other.absolute || p.trailing != other.trailing || len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}
