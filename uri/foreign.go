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
	"net/url"
	"strconv"
	"strings"
)

// Foreign is the component view of a URI held by another library. Each
// accessor reports the encoded component and, where a component is optional,
// whether it is present. FromForeign re-validates every component through
// this package's factories, so a Foreign implementation may hand over values
// it never checked itself.
type Foreign interface {
	Scheme() (string, bool)
	UserInfo() (string, bool)
	Hostname() string
	Port() (string, bool)
	Path() string
	RawQuery() (string, bool)
	Fragment() (string, bool)
}

// FromForeign builds a validated Uri from a foreign component view. An
// authority is materialized whenever the view carries a hostname, userinfo
// or port.
func FromForeign(f Foreign, opts ...ParseOption) (*Uri, error) {
	cfg := parseConfig{querySep: DefaultSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}

	u := &Uri{}
	if scheme, ok := f.Scheme(); ok {
		lowered := strings.ToLower(scheme)
		if lowered == "" || !isASCIILetter(rune(lowered[0])) {
			return nil, newSyntaxError("invalid scheme", scheme)
		}
		for _, r := range lowered[1:] {
			if !isSchemeChar(r) {
				return nil, newSyntaxError("invalid scheme character", scheme)
			}
		}
		u.scheme = lowered
		u.hasScheme = true
	}

	hostname := f.Hostname()
	userinfo, hasUserInfo := f.UserInfo()
	portRaw, hasPort := f.Port()
	if hostname != "" || hasUserInfo || hasPort {
		host, err := ParseHostWithResolver(hostname, cfg.resolver)
		if err != nil {
			return nil, err
		}
		a := &Authority{host: host}
		if hasUserInfo {
			decoded, err := decodePercent(userinfo)
			if err != nil {
				return nil, err
			}
			a.userInfo = decoded
			a.hasUserInfo = true
		}
		if hasPort && portRaw != "" {
			port, err := strconv.ParseUint(portRaw, 10, 16)
			if err != nil {
				return nil, newSyntaxError("invalid port", portRaw)
			}
			a.port = uint16(port)
			a.hasPort = true
		}
		u.authority = a
	}

	path, err := ParsePath(f.Path())
	if err != nil {
		return nil, err
	}
	u.path = path

	if raw, ok := f.RawQuery(); ok {
		query, err := ParseQueryWithSeparator(raw, cfg.querySep)
		if err != nil {
			return nil, err
		}
		u.query = query
	}

	if fragment, ok := f.Fragment(); ok {
		decoded, err := decodePercent(fragment)
		if err != nil {
			return nil, err
		}
		u.fragment = decoded
		u.hasFragment = true
	}

	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// foreignURL adapts a net/url URL to the Foreign view.
type foreignURL struct {
	u *url.URL
}

func (f foreignURL) Scheme() (string, bool) { return f.u.Scheme, f.u.Scheme != "" }

func (f foreignURL) UserInfo() (string, bool) {
	if f.u.User == nil {
		return "", false
	}
	return f.u.User.String(), true
}

func (f foreignURL) Hostname() string {
	host := f.u.Hostname()
	// net/url strips the brackets from IP literals; restore them so the host
	// parser sees the RFC 3986 spelling.
	if strings.ContainsRune(host, ':') && !strings.HasPrefix(host, "[") {
		return "[" + host + "]"
	}
	return host
}

func (f foreignURL) Port() (string, bool) {
	port := f.u.Port()
	return port, port != ""
}

func (f foreignURL) Path() string {
	if f.u.RawPath != "" {
		return f.u.RawPath
	}
	return f.u.EscapedPath()
}

func (f foreignURL) RawQuery() (string, bool) {
	return f.u.RawQuery, f.u.RawQuery != "" || f.u.ForceQuery
}

func (f foreignURL) Fragment() (string, bool) {
	return f.u.EscapedFragment(), f.u.Fragment != "" || f.u.RawFragment != ""
}

// FromURL builds a validated Uri from a net/url URL.
func FromURL(stdURL *url.URL, opts ...ParseOption) (*Uri, error) {
	return FromForeign(foreignURL{u: stdURL}, opts...)
}

// ToURL converts the URI to a net/url URL by re-parsing its encoded form.
func (u *Uri) ToURL() (*url.URL, error) {
	return url.Parse(u.Encoded())
}
