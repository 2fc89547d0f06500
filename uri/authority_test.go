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

func TestParseAuthority(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		userinfo string
		hasUser  bool
		host     string
		port     uint16
		hasPort  bool
	}{
		{
			name:  "host only",
			input: "example.com",
			host:  "example.com",
		},
		{
			name:    "host and port",
			input:   "example.com:8080",
			host:    "example.com",
			port:    8080,
			hasPort: true,
		},
		{
			name:     "userinfo host port",
			input:    "user:pass@example.com:443",
			userinfo: "user:pass",
			hasUser:  true,
			host:     "example.com",
			port:     443,
			hasPort:  true,
		},
		{
			name:     "percent-encoded userinfo",
			input:    "u%40x@example.com",
			userinfo: "u@x",
			hasUser:  true,
			host:     "example.com",
		},
		{
			name:  "bracketed IPv6 with colons",
			input: "[2001:db8::1]",
			host:  "[2001:db8::1]",
		},
		{
			name:    "bracketed IPv6 with port",
			input:   "[2001:db8::1]:8080",
			host:    "[2001:db8::1]",
			port:    8080,
			hasPort: true,
		},
		{
			name:  "empty authority is the null host",
			input: "",
			host:  "",
		},
		{
			name:  "empty port is absent",
			input: "example.com:",
			host:  "example.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := ParseAuthority(tc.input)
			if err != nil {
				t.Fatalf("ParseAuthority(%q) returned error: %v", tc.input, err)
			}
			userinfo, hasUser := a.UserInfo()
			if hasUser != tc.hasUser || userinfo != tc.userinfo {
				t.Errorf("UserInfo() = (%q, %v), want (%q, %v)", userinfo, hasUser, tc.userinfo, tc.hasUser)
			}
			if got := a.Host().Encoded(); got != tc.host {
				t.Errorf("Host() = %q, want %q", got, tc.host)
			}
			port, hasPort := a.Port()
			if hasPort != tc.hasPort || port != tc.port {
				t.Errorf("Port() = (%d, %v), want (%d, %v)", port, hasPort, tc.port, tc.hasPort)
			}
		})
	}
}

func TestParseAuthorityErrors(t *testing.T) {
	inputs := []string{
		"example.com:99999",  // port out of range
		"example.com:80a",    // non-digit port
		"u%2@example.com",    // broken percent triple in userinfo
		"[2001:db8::1:8080",  // unterminated bracket
		"exa mple.com",       // invalid host
	}
	for _, input := range inputs {
		if _, err := ParseAuthority(input); err == nil {
			t.Errorf("ParseAuthority(%q) succeeded, want error", input)
		}
	}
}

func TestAuthorityEncoded(t *testing.T) {
	testCases := []string{
		"example.com",
		"example.com:8080",
		"user@example.com",
		"u%40x@example.com:443",
		"[2001:db8::1]:8080",
	}
	for _, input := range testCases {
		a, err := ParseAuthority(input)
		if err != nil {
			t.Fatalf("ParseAuthority(%q) returned error: %v", input, err)
		}
		if got := a.Encoded(); got != input {
			t.Errorf("round trip of %q produced %q", input, got)
		}
	}
}

func TestAuthorityEdits(t *testing.T) {
	a, err := ParseAuthority("example.com")
	if err != nil {
		t.Fatal(err)
	}

	withUser := a.WithUserInfo("alice")
	if got := withUser.Encoded(); got != "alice@example.com" {
		t.Errorf("WithUserInfo = %q, want alice@example.com", got)
	}
	if withUser.WithoutUserInfo().Encoded() != "example.com" {
		t.Error("WithoutUserInfo should drop the userinfo")
	}
	if a.WithoutUserInfo() != a {
		t.Error("WithoutUserInfo without userinfo should be a no-op")
	}

	withPort := a.WithPort(8080)
	if got := withPort.Encoded(); got != "example.com:8080" {
		t.Errorf("WithPort = %q, want example.com:8080", got)
	}
	if withPort.WithoutPort().Encoded() != "example.com" {
		t.Error("WithoutPort should drop the port")
	}

	other, err := ParseHost("other.example")
	if err != nil {
		t.Fatal(err)
	}
	if got := a.WithHost(other).Encoded(); got != "other.example" {
		t.Errorf("WithHost = %q, want other.example", got)
	}
}
