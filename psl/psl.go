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

// Package psl provides a uri.SuffixResolver backed by the public suffix
// list embedded in golang.org/x/net/publicsuffix.
package psl

import (
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/jplu/nereid/uri"
)

// Resolver decomposes domains against the embedded public suffix list. The
// zero value resolves against the full list, private section included; use
// ICANNOnly to restrict matches to the ICANN section.
//
// The embedded list is compiled into the binary; Resolve never performs I/O
// and is safe for concurrent use.
type Resolver struct {
	// ICANNOnly treats suffixes from the private section of the list (such
	// as "github.io") as unknown, falling back to the shorter ICANN match.
	ICANNOnly bool
}

var _ uri.SuffixResolver = Resolver{}

// Resolve splits an ASCII domain into its public suffix, registrable domain
// and subdomain. Info.Valid is false when the domain is itself a public
// suffix or matched only the wildcard rule, in which case no registrable
// domain exists.
func (r Resolver) Resolve(asciiDomain string) uri.SuffixInfo {
	domain := strings.ToLower(asciiDomain)
	if domain == "" {
		return uri.SuffixInfo{}
	}

	suffix, icann := publicsuffix.PublicSuffix(domain)
	if r.ICANNOnly && !icann {
		suffix = icannSuffix(suffix)
		if suffix == "" {
			return uri.SuffixInfo{}
		}
	}

	info := uri.SuffixInfo{PublicSuffix: suffix}
	if domain == suffix {
		return info
	}

	prefix := strings.TrimSuffix(domain, "."+suffix)
	if prefix == domain {
		return info
	}

	leaf := prefix
	if i := strings.LastIndexByte(prefix, '.'); i != -1 {
		info.Subdomain = prefix[:i]
		leaf = prefix[i+1:]
	}
	info.Valid = true
	info.RegistrableDomain = leaf + "." + suffix
	return info
}

// icannSuffix strips leading labels from a private-section suffix until the
// remainder matches an ICANN rule.
func icannSuffix(suffix string) string {
	rest := suffix
	for {
		i := strings.IndexByte(rest, '.')
		if i == -1 {
			return ""
		}
		rest = rest[i+1:]
		if s, icann := publicsuffix.PublicSuffix(rest); icann && s == rest {
			return rest
		}
	}
}
