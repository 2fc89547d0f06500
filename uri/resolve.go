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

// Resolve computes the target of a reference against an absolute base URI,
// per RFC 3986, Section 5.3. The target never inherits the base fragment;
// resolving the empty reference yields the base with the fragment cleared.
func Resolve(base, ref *Uri) (*Uri, error) {
	if !base.IsAbsolute() {
		return nil, newStructuralError("resolution base must be absolute", base.Encoded())
	}

	t := &Uri{}
	switch {
	case ref.hasScheme:
		t.scheme, t.hasScheme = ref.scheme, true
		t.authority = ref.authority
		t.path = ref.path.RemoveDotSegments()
		t.query = ref.query
	case ref.authority != nil:
		t.scheme, t.hasScheme = base.scheme, base.hasScheme
		t.authority = ref.authority
		t.path = ref.path.RemoveDotSegments()
		t.query = ref.query
	case ref.path.IsEmpty():
		t.scheme, t.hasScheme = base.scheme, base.hasScheme
		t.authority = base.authority
		t.path = base.path
		if ref.query != nil {
			t.query = ref.query
		} else {
			t.query = base.query
		}
	case ref.path.IsAbsolute():
		t.scheme, t.hasScheme = base.scheme, base.hasScheme
		t.authority = base.authority
		t.path = ref.path.RemoveDotSegments()
		t.query = ref.query
	default:
		t.scheme, t.hasScheme = base.scheme, base.hasScheme
		t.authority = base.authority
		merged := base.path.merge(ref.path, base.authority != nil)
		t.path = merged.RemoveDotSegments()
		t.query = ref.query
	}
	t.fragment, t.hasFragment = ref.fragment, ref.hasFragment

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ResolveReference parses the reference string and resolves it against the
// base.
func ResolveReference(base *Uri, ref string, opts ...ParseOption) (*Uri, error) {
	parsed, err := ParseReference(ref, opts...)
	if err != nil {
		return nil, err
	}
	return Resolve(base, parsed)
}
