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

// Modifier is the fluent edit surface over a Uri. It is a plain value
// holding the current URI and the first error encountered; every edit
// returns a new Modifier and never mutates shared state. After the first
// failure all further edits are skipped, so a chain can be written without
// per-step error checks and inspected once at the end:
//
//	target, err := uri.Modify(u).
//		PrependLabel("www").
//		WithTrailingSlash().
//		SortQuery().
//		Uri()
//
// Host edits are forwarded to Host, path edits to Path and query edits to
// Query; the Modifier reassembles a new Uri from the edited component and
// re-validates the URI-level invariants, failing if an edit produces a
// structurally inconsistent URI.
type Modifier struct {
	uri *Uri
	err error
}

// Modify wraps a URI for fluent editing.
func Modify(u *Uri) Modifier {
	return Modifier{uri: u}
}

// ModifyString parses a URI reference and wraps it for fluent editing.
func ModifyString(s string, opts ...ParseOption) Modifier {
	u, err := ParseReference(s, opts...)
	return Modifier{uri: u, err: err}
}

// Uri returns the edited URI, or the first error of the chain.
func (m Modifier) Uri() (*Uri, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.uri, nil
}

// Err returns the first error of the chain, if any.
func (m Modifier) Err() error { return m.err }

// String returns the encoded form of the edited URI, or the first error.
func (m Modifier) String() (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.uri.Encoded(), nil
}

// apply runs one edit step, short-circuiting after a failure.
func (m Modifier) apply(f func(*Uri) (*Uri, error)) Modifier {
	if m.err != nil {
		return m
	}
	u, err := f(m.uri)
	if err != nil {
		return Modifier{uri: m.uri, err: err}
	}
	return Modifier{uri: u}
}

// hostEdit forwards an edit to the host component and reassembles the URI.
func (m Modifier) hostEdit(f func(*Host) (*Host, error)) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) {
		host, ok := u.Host()
		if !ok {
			return nil, newUnsupportedError("no host to edit", u.Encoded())
		}
		edited, err := f(host)
		if err != nil {
			return nil, err
		}
		return u.WithHost(edited)
	})
}

// pathEdit forwards an edit to the path component.
func (m Modifier) pathEdit(f func(*Path) (*Path, error)) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) {
		edited, err := f(u.path)
		if err != nil {
			return nil, err
		}
		return u.WithPath(edited)
	})
}

// queryEdit forwards an edit to the query component, starting from an empty
// query when the URI has none.
func (m Modifier) queryEdit(f func(*Query) (*Query, error)) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) {
		q := u.query
		if q == nil {
			q = &Query{sep: DefaultSeparator}
		}
		edited, err := f(q)
		if err != nil {
			return nil, err
		}
		return u.WithQuery(edited)
	})
}

// PrependLabel inserts a label at the leaf end of the host.
func (m Modifier) PrependLabel(label string) Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.Prepend(label) })
}

// AppendLabel inserts a label at the root end of the host.
func (m Modifier) AppendLabel(label string) Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.Append(label) })
}

// ReplaceLabel replaces the host label at the given index.
func (m Modifier) ReplaceLabel(index int, label string) Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.ReplaceLabel(index, label) })
}

// RemoveLabels removes the host labels at the given indices.
func (m Modifier) RemoveLabels(indices ...int) Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.WithoutLabels(indices...) })
}

// NormalizeIPv4Host canonicalizes a legacy IPv4 notation host.
func (m Modifier) NormalizeIPv4Host() Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.NormalizeIPv4(), nil })
}

// HostToASCII converts the host labels to their ASCII (ACE) form.
func (m Modifier) HostToASCII() Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.ToASCII() })
}

// HostToUnicode converts the host labels to their Unicode form.
func (m Modifier) HostToUnicode() Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.ToUnicode() })
}

// AddRootLabel makes the host domain absolute (trailing dot).
func (m Modifier) AddRootLabel() Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.WithRootLabel(), nil })
}

// RemoveRootLabel makes the host domain relative.
func (m Modifier) RemoveRootLabel() Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.WithoutRootLabel(), nil })
}

// RemoveZoneID strips the zone identifier from a scoped IPv6 host.
func (m Modifier) RemoveZoneID() Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.WithoutZoneIdentifier(), nil })
}

// WithPublicSuffix replaces the public suffix of the host.
func (m Modifier) WithPublicSuffix(suffix string) Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.WithPublicSuffix(suffix) })
}

// WithRegistrableDomain replaces the registrable domain of the host.
func (m Modifier) WithRegistrableDomain(domain string) Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.WithRegistrableDomain(domain) })
}

// WithSubdomain replaces the subdomain of the host.
func (m Modifier) WithSubdomain(sub string) Modifier {
	return m.hostEdit(func(h *Host) (*Host, error) { return h.WithSubdomain(sub) })
}

// WithHost replaces the host, parsing and validating the raw string.
func (m Modifier) WithHost(raw string) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) {
		var resolver SuffixResolver
		if current, ok := u.Host(); ok {
			resolver = current.resolver
		}
		host, err := ParseHostWithResolver(raw, resolver)
		if err != nil {
			return nil, err
		}
		return u.WithHost(host)
	})
}

// AppendSegment adds a decoded segment at the end of the path.
func (m Modifier) AppendSegment(segment string) Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.Append(segment), nil })
}

// PrependSegment adds a decoded segment at the start of the path.
func (m Modifier) PrependSegment(segment string) Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.Prepend(segment), nil })
}

// ReplaceBasename replaces the last path segment.
func (m Modifier) ReplaceBasename(basename string) Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.ReplaceBasename(basename) })
}

// ReplaceDirname replaces the directory part of the path.
func (m Modifier) ReplaceDirname(dirname string) Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.ReplaceDirname(dirname) })
}

// ReplaceExtension replaces the extension of the path basename.
func (m Modifier) ReplaceExtension(ext string) Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.ReplaceExtension(ext) })
}

// RemoveDotSegments normalizes "." and ".." segments out of the path.
func (m Modifier) RemoveDotSegments() Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.RemoveDotSegments(), nil })
}

// RemoveEmptySegments collapses consecutive path separators.
func (m Modifier) RemoveEmptySegments() Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.WithoutEmptySegments(), nil })
}

// WithLeadingSlash makes the path absolute.
func (m Modifier) WithLeadingSlash() Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.WithLeadingSlash(), nil })
}

// WithoutLeadingSlash makes the path relative.
func (m Modifier) WithoutLeadingSlash() Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.WithoutLeadingSlash(), nil })
}

// WithTrailingSlash adds a trailing slash to the path.
func (m Modifier) WithTrailingSlash() Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.WithTrailingSlash(), nil })
}

// WithoutTrailingSlash removes the trailing slash from the path.
func (m Modifier) WithoutTrailingSlash() Modifier {
	return m.pathEdit(func(p *Path) (*Path, error) { return p.WithoutTrailingSlash(), nil })
}

// WithPath replaces the path, parsing and validating the raw string.
func (m Modifier) WithPath(raw string) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) {
		path, err := ParsePath(raw)
		if err != nil {
			return nil, err
		}
		return u.WithPath(path)
	})
}

// WithQuery replaces the query, parsing the raw string with the current
// separator.
func (m Modifier) WithQuery(raw string) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) {
		sep := DefaultSeparator
		if u.query != nil {
			sep = u.query.sep
		}
		query, err := ParseQueryWithSeparator(raw, sep)
		if err != nil {
			return nil, err
		}
		return u.WithQuery(query)
	})
}

// WithQueryPair sets a query pair, replacing every pair with the same key.
func (m Modifier) WithQueryPair(key, value string) Modifier {
	return m.queryEdit(func(q *Query) (*Query, error) { return q.WithPair(key, value), nil })
}

// AppendQueryPair appends a query pair, keeping existing same-key pairs.
func (m Modifier) AppendQueryPair(key, value string) Modifier {
	return m.queryEdit(func(q *Query) (*Query, error) { return q.AppendPair(key, value), nil })
}

// MergeQuery merges the parsed raw query into the current one.
func (m Modifier) MergeQuery(raw string) Modifier {
	return m.queryEdit(func(q *Query) (*Query, error) {
		other, err := ParseQueryWithSeparator(raw, q.sep)
		if err != nil {
			return nil, err
		}
		return q.Merge(other), nil
	})
}

// RemoveQueryPairs drops every query pair with one of the given keys.
func (m Modifier) RemoveQueryPairs(keys ...string) Modifier {
	return m.queryEdit(func(q *Query) (*Query, error) { return q.WithoutPairs(keys...), nil })
}

// RemoveQueryParams drops query pairs matching the given parameter names,
// including array-style bracket variants.
func (m Modifier) RemoveQueryParams(names ...string) Modifier {
	return m.queryEdit(func(q *Query) (*Query, error) { return q.WithoutParams(names...), nil })
}

// SortQuery groups query pairs by key in first-occurrence order.
func (m Modifier) SortQuery() Modifier {
	return m.queryEdit(func(q *Query) (*Query, error) { return q.Sort(), nil })
}

// RemoveDuplicatePairs drops exact repeats of earlier query pairs.
func (m Modifier) RemoveDuplicatePairs() Modifier {
	return m.queryEdit(func(q *Query) (*Query, error) { return q.WithoutDuplicates(), nil })
}

// RemoveEmptyPairs drops query pairs with an empty key or no value.
func (m Modifier) RemoveEmptyPairs() Modifier {
	return m.queryEdit(func(q *Query) (*Query, error) { return q.WithoutEmptyPairs(), nil })
}

// WithoutQuery removes the query component.
func (m Modifier) WithoutQuery() Modifier {
	return m.apply(func(u *Uri) (*Uri, error) { return u.WithoutQuery(), nil })
}

// WithScheme replaces the scheme.
func (m Modifier) WithScheme(scheme string) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) { return u.WithScheme(scheme) })
}

// WithFragment replaces the decoded fragment.
func (m Modifier) WithFragment(fragment string) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) { return u.WithFragment(fragment), nil })
}

// WithoutFragment removes the fragment.
func (m Modifier) WithoutFragment() Modifier {
	return m.apply(func(u *Uri) (*Uri, error) { return u.WithoutFragment(), nil })
}

// WithUserInfo replaces the userinfo of the authority.
func (m Modifier) WithUserInfo(userinfo string) Modifier {
	return m.authorityEdit(func(a *Authority) (*Authority, error) { return a.WithUserInfo(userinfo), nil })
}

// WithoutUserInfo removes the userinfo from the authority.
func (m Modifier) WithoutUserInfo() Modifier {
	return m.authorityEdit(func(a *Authority) (*Authority, error) { return a.WithoutUserInfo(), nil })
}

// WithPort replaces the port of the authority.
func (m Modifier) WithPort(port uint16) Modifier {
	return m.authorityEdit(func(a *Authority) (*Authority, error) { return a.WithPort(port), nil })
}

// WithoutPort removes the port from the authority.
func (m Modifier) WithoutPort() Modifier {
	return m.authorityEdit(func(a *Authority) (*Authority, error) { return a.WithoutPort(), nil })
}

// WithoutAuthority removes the authority component.
func (m Modifier) WithoutAuthority() Modifier {
	return m.apply(func(u *Uri) (*Uri, error) { return u.WithoutAuthority() })
}

// authorityEdit forwards an edit to the authority component.
func (m Modifier) authorityEdit(f func(*Authority) (*Authority, error)) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) {
		if u.authority == nil {
			return nil, newUnsupportedError("no authority to edit", u.Encoded())
		}
		edited, err := f(u.authority)
		if err != nil {
			return nil, err
		}
		return u.WithAuthority(edited)
	})
}

// Resolve resolves a reference string against the current URI.
func (m Modifier) Resolve(ref string) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) { return ResolveReference(u, ref) })
}

// Relativize replaces the current URI with the minimal reference that
// resolves to the given target against it.
func (m Modifier) Relativize(target *Uri) Modifier {
	return m.apply(func(u *Uri) (*Uri, error) { return Relativize(u, target) })
}

// Normalize applies syntax-based normalization to the current URI.
func (m Modifier) Normalize() Modifier {
	return m.apply(func(u *Uri) (*Uri, error) { return u.Normalize(), nil })
}
