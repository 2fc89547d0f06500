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
	"strconv"
	"strings"
)

// Authority is the immutable composition of an optional userinfo, a Host and
// an optional port.
type Authority struct {
	userInfo    string
	hasUserInfo bool
	host        *Host
	port        uint16
	hasPort     bool
}

// splitAuthority separates an authority string into its userinfo, host and
// port parts without validating them. The userinfo ends at the last '@'; the
// port starts after the last ':' outside of brackets.
func splitAuthority(authority string) (userinfo, host, port string, hasUserInfo bool) {
	hostport := authority
	if at := strings.LastIndexByte(authority, '@'); at != -1 {
		userinfo = authority[:at]
		hostport = authority[at+1:]
		hasUserInfo = true
	}

	if strings.HasPrefix(hostport, "[") {
		if end := strings.LastIndexByte(hostport, ']'); end != -1 {
			host = hostport[:end+1]
			if end+1 < len(hostport) && hostport[end+1] == ':' {
				port = hostport[end+2:]
			}
			return userinfo, host, port, hasUserInfo
		}
		return userinfo, hostport, "", hasUserInfo
	}

	if colon := strings.LastIndexByte(hostport, ':'); colon != -1 {
		return userinfo, hostport[:colon], hostport[colon+1:], hasUserInfo
	}
	return userinfo, hostport, "", hasUserInfo
}

// ParseAuthority parses an encoded authority string (without the leading
// "//") into its validated parts.
func ParseAuthority(raw string) (*Authority, error) {
	return ParseAuthorityWithResolver(raw, nil)
}

// ParseAuthorityWithResolver is ParseAuthority with a public-suffix resolver
// attached to the parsed host.
func ParseAuthorityWithResolver(raw string, resolver SuffixResolver) (*Authority, error) {
	userinfoPart, hostPart, portPart, hasUserInfo := splitAuthority(raw)

	a := &Authority{}
	if hasUserInfo {
		if !hasValidPercentTriples(userinfoPart) {
			return nil, newSyntaxError("invalid percent encoding in userinfo", userinfoPart)
		}
		decoded, err := decodePercent(userinfoPart)
		if err != nil {
			return nil, err
		}
		a.userInfo = decoded
		a.hasUserInfo = true
	}

	host, err := ParseHostWithResolver(hostPart, resolver)
	if err != nil {
		return nil, err
	}
	a.host = host

	if portPart != "" {
		port := 0
		for i := 0; i < len(portPart); i++ {
			if !isASCIIDigit(rune(portPart[i])) {
				return nil, newSyntaxError("invalid port character", portPart)
			}
			port = port*10 + int(portPart[i]-'0')
			if port > 65535 {
				return nil, newSyntaxError("port out of range", portPart)
			}
		}
		a.port = uint16(port)
		a.hasPort = true
	}

	return a, nil
}

// AuthorityFromHost builds an authority holding just the given host.
func AuthorityFromHost(h *Host) *Authority {
	return &Authority{host: h}
}

// Host returns the host component.
func (a *Authority) Host() *Host { return a.host }

// UserInfo returns the decoded userinfo and whether it is present.
func (a *Authority) UserInfo() (string, bool) { return a.userInfo, a.hasUserInfo }

// Port returns the port and whether it is present.
func (a *Authority) Port() (uint16, bool) { return a.port, a.hasPort }

// Encoded returns the encoded authority, without the leading "//".
func (a *Authority) Encoded() string {
	var b strings.Builder
	if a.hasUserInfo {
		b.WriteString(encodeWith(a.userInfo, isUserInfoChar))
		b.WriteByte('@')
	}
	b.WriteString(a.host.Encoded())
	if a.hasPort {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(a.port)))
	}
	return b.String()
}

// String returns the encoded form.
func (a *Authority) String() string { return a.Encoded() }

// WithUserInfo returns an authority with the given decoded userinfo.
func (a *Authority) WithUserInfo(userinfo string) *Authority {
	if a.hasUserInfo && a.userInfo == userinfo {
		return a
	}
	dup := *a
	dup.userInfo = userinfo
	dup.hasUserInfo = true
	return &dup
}

// WithoutUserInfo returns an authority without a userinfo.
func (a *Authority) WithoutUserInfo() *Authority {
	if !a.hasUserInfo {
		return a
	}
	dup := *a
	dup.userInfo = ""
	dup.hasUserInfo = false
	return &dup
}

// WithPort returns an authority with the given port.
func (a *Authority) WithPort(port uint16) *Authority {
	if a.hasPort && a.port == port {
		return a
	}
	dup := *a
	dup.port = port
	dup.hasPort = true
	return &dup
}

// WithoutPort returns an authority without a port.
func (a *Authority) WithoutPort() *Authority {
	if !a.hasPort {
		return a
	}
	dup := *a
	dup.port = 0
	dup.hasPort = false
	return &dup
}

// WithHost returns an authority with the given host.
func (a *Authority) WithHost(h *Host) *Authority {
	if a.host.Equal(h) {
		return a
	}
	dup := *a
	dup.host = h
	return &dup
}

// Equal reports whether two authorities have the same encoded form.
func (a *Authority) Equal(other *Authority) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Encoded() == other.Encoded()
}
