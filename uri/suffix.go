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

import "sync"

// SuffixInfo is the result of a public-suffix decomposition of an ASCII
// domain name.
type SuffixInfo struct {
	// Valid reports whether the domain ends in a known public suffix.
	Valid bool
	// PublicSuffix is the longest matching suffix, e.g. "co.uk".
	PublicSuffix string
	// RegistrableDomain is the public suffix plus one label, e.g. "example.co.uk".
	RegistrableDomain string
	// Subdomain is everything left of the registrable domain, e.g. "www".
	Subdomain string
}

// SuffixResolver decomposes an ASCII, non-absolute domain name against a
// public suffix list. The core never fetches or parses the list itself; it
// only consumes this contract. A Host constructed without a resolver degrades
// to an empty, invalid SuffixInfo.
//
// Implementations must be safe for concurrent use; the psl package provides
// one backed by the list embedded in golang.org/x/net/publicsuffix.
type SuffixResolver interface {
	Resolve(asciiDomain string) SuffixInfo
}

// suffixCell memoizes the resolver result on the Host instance that performed
// the lookup. Hosts are otherwise write-once, so the cell is the only field
// needing a concurrency guard: concurrent first reads on the same instance
// compute the result at most once.
type suffixCell struct {
	once sync.Once
	info SuffixInfo
}
