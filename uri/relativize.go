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

// Relativize computes a minimal reference that resolves to the target
// against the given absolute base: the approximate inverse of Resolve. When
// the scheme or authority differ there is no useful relative form and the
// target is returned unchanged. Paths containing dot segments cannot be
// relativized safely; normalize them first.
func Relativize(base, target *Uri) (*Uri, error) {
	if !base.IsAbsolute() {
		return nil, newStructuralError("relativization base must be absolute", base.Encoded())
	}
	if base.path.containsDotSegments() || target.path.containsDotSegments() {
		return nil, newStructuralError("cannot relativize a path containing dot segments", target.path.Encoded())
	}

	if !target.hasScheme || base.scheme != target.scheme || !base.authority.Equal(target.authority) {
		return target, nil
	}

	rel := &Uri{
		query:       target.query,
		fragment:    target.fragment,
		hasFragment: target.hasFragment,
	}

	basePath := effectivePath(base)
	targetPath := effectivePath(target)

	// The empty reference inherits the base query, so it is only minimal
	// when that inheritance is harmless.
	if basePath.Equal(targetPath) && queriesAllowEmptyRef(base, target) {
		rel.path = emptyPath
		return rel, nil
	}

	rel.path = relativePath(basePath, targetPath)
	if err := rel.validate(); err != nil {
		// The diffed path has no valid relative spelling (a ':' in its first
		// segment, say); the full target is always correct.
		return target, nil
	}
	return rel, nil
}

// effectivePath maps the empty path of an authority-carrying URI to "/".
func effectivePath(u *Uri) *Path {
	if u.authority != nil && u.path.IsEmpty() {
		return &Path{absolute: true}
	}
	return u.path
}

// queriesAllowEmptyRef reports whether resolving an empty-path reference
// against base reproduces the target query: either the reference carries the
// target query itself, or neither side has one to inherit.
func queriesAllowEmptyRef(base, target *Uri) bool {
	return target.query != nil || base.query == nil
}

// relativePath diffs two paths segment-by-segment from the root, producing
// "../" climbs for the divergent base directories followed by the remaining
// target tail.
func relativePath(basePath, targetPath *Path) *Path {
	baseDir := basePath.segments
	if !basePath.trailing && len(baseDir) > 0 {
		baseDir = baseDir[:len(baseDir)-1]
	}
	targetSegs := targetPath.segments

	// The target basename must stay in the tail, or the reference would
	// resolve to the directory instead of the file.
	maxCommon := len(targetSegs)
	if !targetPath.trailing && maxCommon > 0 {
		maxCommon--
	}

	common := 0
	for common < len(baseDir) && common < maxCommon && baseDir[common] == targetSegs[common] {
		common++
	}

	climbs := len(baseDir) - common
	tail := targetSegs[common:]

	segments := make([]string, 0, climbs+len(tail))
	for i := 0; i < climbs; i++ {
		segments = append(segments, "..")
	}
	segments = append(segments, tail...)

	if len(segments) == 0 {
		// Same directory; "." is the shortest spelling of it.
		return &Path{segments: []string{"."}}
	}
	return &Path{segments: segments, trailing: targetPath.trailing && len(tail) > 0}
}
