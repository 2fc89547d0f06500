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
	"net/netip"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

const (
	// maxDomainLabels is the maximum number of labels in a domain name,
	// not counting the empty root label of an absolute name.
	maxDomainLabels = 127
	// maxLabelLength is the maximum number of characters in a single label.
	maxLabelLength = 63
)

// uts46 is the UTS-46 non-transitional profile used for every IDNA
// conversion. StrictDomainName is disabled because the host grammar admits
// sub-delims that plain DNS hostnames do not.
var uts46 = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
)

// HostForm identifies which of the host representations a Host carries.
// The set is closed; Form is always exactly one of these.
type HostForm int

const (
	// HostFormDomain is a syntactic domain name made of dot-separated labels.
	HostFormDomain HostForm = iota
	// HostFormOpaque is a registered name that satisfies the reg-name grammar
	// but is not a domain (empty labels, over-long labels, too many labels).
	HostFormOpaque
	// HostFormIPv4 is a dotted-decimal IPv4 address.
	HostFormIPv4
	// HostFormIPv6 is a bracketed IPv6 literal, optionally zone-scoped.
	HostFormIPv6
	// HostFormIPvFuture is a bracketed address literal of a future IP version.
	HostFormIPvFuture
)

// String returns a human-readable name for the host form.
func (f HostForm) String() string {
	switch f {
	case HostFormDomain:
		return "domain"
	case HostFormOpaque:
		return "registered-name"
	case HostFormIPv4:
		return "ipv4"
	case HostFormIPv6:
		return "ipv6"
	case HostFormIPvFuture:
		return "ipvfuture"
	default:
		return "unknown"
	}
}

// Host is an immutable URI host. It is one of a domain name (stored as
// decoded, lowercased labels in display order, leaf first), an opaque
// registered name, an IPv4 address, an IPv6 address with optional zone
// identifier, or an IPvFuture literal. The zero-label domain form is the
// null host of an empty authority host component.
//
// A Host optionally borrows a SuffixResolver; the public-suffix
// decomposition is computed lazily on first access and memoized on the
// instance. Every structural edit returns a new Host re-validated through
// the same state machine as ParseHost.
type Host struct {
	form     HostForm
	labels   []string
	absolute bool
	ip       netip.Addr
	zone     string
	future   string
	resolver SuffixResolver
	suffix   *suffixCell
}

// ParseHost parses and classifies a raw host string without a public-suffix
// resolver attached; suffix accessors on the result degrade to empty values.
func ParseHost(raw string) (*Host, error) {
	return ParseHostWithResolver(raw, nil)
}

// ParseHostWithResolver parses and classifies a raw host string.
// Classification runs in order: strict dotted-decimal IPv4, bracketed IP
// literal (IPv6 with optional zone, or IPvFuture), domain name (with an IDNA
// fallback for internationalized input), opaque registered name. Anything
// else is a syntax error.
func ParseHostWithResolver(raw string, resolver SuffixResolver) (*Host, error) {
	h := &Host{form: HostFormDomain, resolver: resolver, suffix: &suffixCell{}}
	if raw == "" {
		return h, nil
	}

	if addr, ok := parseStrictIPv4(raw); ok {
		h.form = HostFormIPv4
		h.ip = addr
		return h, nil
	}

	if strings.HasPrefix(raw, "[") {
		if !strings.HasSuffix(raw, "]") {
			return nil, newSyntaxError("unterminated IP literal", raw)
		}
		if err := parseIPLiteral(raw[1:len(raw)-1], h); err != nil {
			return nil, err
		}
		return h, nil
	}

	if labels, absolute, ok := parseDomainLabels(raw); ok {
		h.labels = labels
		h.absolute = absolute
		return h, nil
	}

	decoded, err := decodePercent(raw)
	if err != nil {
		return nil, err
	}

	if labels, absolute, ok := idnaFallbackLabels(decoded); ok {
		h.labels = labels
		h.absolute = absolute
		return h, nil
	}

	if isEncodedRegName(raw) {
		h.form = HostFormOpaque
		h.labels = []string{strings.ToLower(decoded)}
		return h, nil
	}

	return nil, newSyntaxError("invalid host", raw)
}

// parseIPLiteral fills h from the contents of a bracketed literal.
func parseIPLiteral(content string, h *Host) error {
	if i := strings.IndexByte(content, '%'); i != -1 {
		addrPart, zonePart := content[:i], content[i+1:]
		// RFC 6874 writes the delimiter as "%25"; accept a lenient bare "%" too.
		if strings.HasPrefix(zonePart, "25") && len(zonePart) > 2 {
			zonePart = zonePart[2:]
		}
		zone, err := decodePercent(zonePart)
		if err != nil {
			return err
		}
		if zone == "" {
			return newSyntaxError("empty zone identifier", content)
		}
		for _, r := range zone {
			if !isZoneChar(r) {
				return newSyntaxError("invalid zone identifier character", zone)
			}
		}
		addr, err := netip.ParseAddr(addrPart)
		if err != nil || !addr.Is6() {
			return newSyntaxError("invalid IPv6 address", addrPart)
		}
		// Zone identifiers are only meaningful on link-local addresses.
		if !addr.IsLinkLocalUnicast() {
			return newSyntaxError("zone identifier on a non-link-local address", content)
		}
		h.form = HostFormIPv6
		h.ip = addr
		h.zone = zone
		return nil
	}

	if strings.HasPrefix(content, "v") || strings.HasPrefix(content, "V") {
		return parseIPvFuture(content, h)
	}

	addr, err := netip.ParseAddr(content)
	if err != nil || !addr.Is6() {
		return newSyntaxError("invalid IP literal", content)
	}
	h.form = HostFormIPv6
	h.ip = addr
	return nil
}

// parseIPvFuture validates a "v<HEXDIG>+.<chars>+" literal. Versions "4" and
// "6" are rejected: those addresses have their own grammars.
func parseIPvFuture(content string, h *Host) error {
	dot := strings.IndexByte(content, '.')
	if dot == -1 {
		return newSyntaxError("IPvFuture literal without dot separator", content)
	}
	version, address := content[1:dot], content[dot+1:]
	if version == "" {
		return newSyntaxError("IPvFuture literal without version", content)
	}
	for _, r := range version {
		if !isASCIIHexDigit(r) {
			return newSyntaxError("invalid IPvFuture version character", version)
		}
	}
	if version == "4" || version == "6" {
		return newSyntaxError("IPvFuture version reserved for existing IP grammars", version)
	}
	if address == "" {
		return newSyntaxError("IPvFuture literal without address", content)
	}
	for _, r := range address {
		if !isUnreservedOrSubDelim(r) && r != ':' {
			return newSyntaxError("invalid IPvFuture address character", address)
		}
	}
	h.form = HostFormIPvFuture
	h.future = "v" + strings.ToLower(version) + "." + address
	return nil
}

// parseDomainLabels tests the encoded input against the domain-name grammar:
// dot-separated labels of unreserved, sub-delims or percent-encoded
// characters, each 1-63 decoded characters, at most 127 labels, with an
// optional trailing dot denoting the absolute form.
func parseDomainLabels(raw string) ([]string, bool, bool) {
	s := raw
	absolute := false
	if strings.HasSuffix(s, ".") {
		absolute = true
		s = s[:len(s)-1]
	}
	if s == "" {
		return nil, false, false
	}
	parts := strings.Split(s, ".")
	if len(parts) > maxDomainLabels {
		return nil, false, false
	}
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		if !isEncodedRegName(part) {
			return nil, false, false
		}
		decoded, err := decodePercent(part)
		if err != nil {
			return nil, false, false
		}
		n := utf8.RuneCountInString(decoded)
		if n < 1 || n > maxLabelLength {
			return nil, false, false
		}
		labels = append(labels, strings.ToLower(decoded))
	}
	return labels, absolute, true
}

// idnaFallbackLabels is the fallback validity test for input that fails the
// ASCII domain grammar but contains no generic delimiter: if a UTS-46
// non-transitional ToASCII conversion succeeds, the input is accepted as an
// internationalized domain.
func idnaFallbackLabels(decoded string) ([]string, bool, bool) {
	if decoded == "" || strings.ContainsAny(decoded, " :/?#[]@") {
		return nil, false, false
	}
	s := strings.ToLower(decoded)
	absolute := false
	if strings.HasSuffix(s, ".") {
		absolute = true
		s = s[:len(s)-1]
	}
	if s == "" {
		return nil, false, false
	}
	parts := strings.Split(s, ".")
	if len(parts) > maxDomainLabels {
		return nil, false, false
	}
	for _, part := range parts {
		n := utf8.RuneCountInString(part)
		if n < 1 || n > maxLabelLength {
			return nil, false, false
		}
	}
	if _, err := uts46.ToASCII(s); err != nil {
		return nil, false, false
	}
	return parts, absolute, true
}

// isEncodedRegName reports whether s satisfies the reg-name grammar in its
// encoded form: unreserved, sub-delims, '.' and valid percent triples.
func isEncodedRegName(s string) bool {
	for i := 0; i < len(s); {
		if s[i] == '%' {
			if i+2 >= len(s) || !isASCIIHexDigit(rune(s[i+1])) || !isASCIIHexDigit(rune(s[i+2])) {
				return false
			}
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r >= utf8.RuneSelf || (!isRegNameChar(r) && r != '.') {
			return false
		}
		i += size
	}
	return true
}

// Form returns the active host form.
func (h *Host) Form() HostForm { return h.form }

// IsNull reports whether this is the null host of an empty host component.
func (h *Host) IsNull() bool { return h.form == HostFormDomain && len(h.labels) == 0 }

// IsDomain reports whether the host is a non-null domain name.
func (h *Host) IsDomain() bool { return h.form == HostFormDomain && len(h.labels) > 0 }

// IsIP reports whether the host is an IPv4, IPv6 or IPvFuture literal.
func (h *Host) IsIP() bool {
	return h.form == HostFormIPv4 || h.form == HostFormIPv6 || h.form == HostFormIPvFuture
}

// Labels returns a copy of the decoded labels in display order, leaf first.
// It is empty for the null host and for IP forms.
func (h *Host) Labels() []string {
	if h.IsIP() {
		return nil
	}
	out := make([]string, len(h.labels))
	copy(out, h.labels)
	return out
}

// LabelCount returns the number of labels of a domain or opaque host.
func (h *Host) LabelCount() int {
	if h.IsIP() {
		return 0
	}
	return len(h.labels)
}

// IsAbsolute reports whether a domain host carries the trailing root dot.
func (h *Host) IsAbsolute() bool { return h.absolute }

// HasZoneID reports whether an IPv6 host carries a zone identifier.
func (h *Host) HasZoneID() bool { return h.zone != "" }

// ZoneID returns the decoded zone identifier of a scoped IPv6 host.
func (h *Host) ZoneID() string { return h.zone }

// IPVersion returns the IP version of the host ("4", "6", or the hexadecimal
// version of an IPvFuture literal) and whether the host is an IP at all.
func (h *Host) IPVersion() (string, bool) {
	switch h.form {
	case HostFormIPv4:
		return "4", true
	case HostFormIPv6:
		return "6", true
	case HostFormIPvFuture:
		version := h.future[1:strings.IndexByte(h.future, '.')]
		return version, true
	default:
		return "", false
	}
}

// Addr returns the address of an IPv4 or IPv6 host.
func (h *Host) Addr() (netip.Addr, bool) {
	if h.form == HostFormIPv4 || h.form == HostFormIPv6 {
		return h.ip, true
	}
	return netip.Addr{}, false
}

// isLabelChar restricts the reg-name set to characters that survive a
// split-on-dot round trip; a literal dot inside a decoded label stays
// percent-encoded on output.
func isLabelChar(r rune) bool {
	return isRegNameChar(r) && r != '.'
}

// isASCIIString reports whether s contains only ASCII bytes.
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// encodedLabel returns the wire form of one decoded label: ACE for
// internationalized labels, percent-encoding otherwise.
func encodedLabel(label string) string {
	if isASCIIString(label) {
		return encodeWith(label, isLabelChar)
	}
	if ascii, err := uts46.ToASCII(label); err == nil && ascii != "" {
		return ascii
	}
	return encodeWith(label, isLabelChar)
}

// unicodeLabel returns the display form of one stored label, converting an
// ACE label back to Unicode.
func unicodeLabel(label string) string {
	if strings.HasPrefix(label, "xn--") {
		if u, err := uts46.ToUnicode(label); err == nil && u != "" {
			return u
		}
	}
	return label
}

// Encoded returns the ASCII wire form of the host: ACE and percent-encoded
// labels for domains, dotted decimal for IPv4, a bracketed literal for IPv6
// (with an RFC 6874 "%25" zone delimiter) and IPvFuture.
func (h *Host) Encoded() string {
	switch h.form {
	case HostFormIPv4:
		return h.ip.String()
	case HostFormIPv6:
		if h.zone != "" {
			return "[" + h.ip.String() + "%25" + encodeWith(h.zone, isZoneChar) + "]"
		}
		return "[" + h.ip.String() + "]"
	case HostFormIPvFuture:
		return "[" + h.future + "]"
	case HostFormOpaque:
		return encodeWith(h.labels[0], isLabelChar)
	default:
		if len(h.labels) == 0 {
			return ""
		}
		parts := make([]string, len(h.labels))
		for i, label := range h.labels {
			parts[i] = encodedLabel(label)
		}
		s := strings.Join(parts, ".")
		if h.absolute {
			s += "."
		}
		return s
	}
}

// String returns the decoded Unicode display form of the host.
func (h *Host) String() string {
	switch h.form {
	case HostFormDomain:
		if len(h.labels) == 0 {
			return ""
		}
		parts := make([]string, len(h.labels))
		for i, label := range h.labels {
			parts[i] = unicodeLabel(label)
		}
		s := strings.Join(parts, ".")
		if h.absolute {
			s += "."
		}
		return s
	case HostFormOpaque:
		return h.labels[0]
	default:
		return h.Encoded()
	}
}

// WithResolver returns a host sharing this host's content with the given
// public-suffix resolver attached. The suffix cache starts fresh. Resolver
// implementations need not be comparable, so no identity short-circuit is
// attempted beyond the nil case.
func (h *Host) WithResolver(resolver SuffixResolver) *Host {
	if h.resolver == nil && resolver == nil {
		return h
	}
	dup := *h
	dup.resolver = resolver
	dup.suffix = &suffixCell{}
	return &dup
}

// asciiDomain returns the non-absolute ASCII form handed to the resolver.
func (h *Host) asciiDomain() string {
	parts := make([]string, len(h.labels))
	for i, label := range h.labels {
		parts[i] = encodedLabel(label)
	}
	return strings.Join(parts, ".")
}

// suffixInfo computes the public-suffix decomposition at most once per
// instance. Non-domain hosts and hosts without a resolver yield the zero
// SuffixInfo.
func (h *Host) suffixInfo() SuffixInfo {
	if !h.IsDomain() || h.resolver == nil {
		return SuffixInfo{}
	}
	h.suffix.once.Do(func() {
		h.suffix.info = h.resolver.Resolve(h.asciiDomain())
	})
	return h.suffix.info
}

// IsSuffixValid reports whether the domain ends in a known public suffix.
func (h *Host) IsSuffixValid() bool { return h.suffixInfo().Valid }

// PublicSuffix returns the public suffix of a domain host, or "".
func (h *Host) PublicSuffix() string { return h.suffixInfo().PublicSuffix }

// RegistrableDomain returns the registrable domain of a domain host, or "".
func (h *Host) RegistrableDomain() string { return h.suffixInfo().RegistrableDomain }

// Subdomain returns the labels left of the registrable domain, or "".
func (h *Host) Subdomain() string { return h.suffixInfo().Subdomain }

// rebuild re-validates a set of decoded labels through the host constructor,
// preserving the resolver.
func (h *Host) rebuild(labels []string, absolute bool) (*Host, error) {
	if len(labels) == 0 {
		return ParseHostWithResolver("", h.resolver)
	}
	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = encodeWith(label, isLabelChar)
	}
	raw := strings.Join(parts, ".")
	if absolute {
		raw += "."
	}
	return ParseHostWithResolver(raw, h.resolver)
}

// requireDomainEdit gates the label-edit surface: IP literals and opaque
// registered names have no labels to edit.
func (h *Host) requireDomainEdit(op string) error {
	if h.form == HostFormDomain {
		return nil
	}
	return newUnsupportedError(op+" is not supported on a "+h.form.String()+" host", h.Encoded())
}

// Prepend inserts a label at the leaf end ("www" onto "example.com" gives
// "www.example.com").
func (h *Host) Prepend(label string) (*Host, error) {
	if err := h.requireDomainEdit("prepending a label"); err != nil {
		return nil, err
	}
	if label == "" {
		return h, nil
	}
	return h.rebuild(append([]string{strings.ToLower(label)}, h.labels...), h.absolute)
}

// Append inserts a label at the root end ("com" onto "example" gives
// "example.com"). As the one sanctioned IP edit, appending to an IPv4 host
// recomposes the host string and succeeds only when the result re-validates
// as a domain ("127.0.0.1" + "localhost" gives "127.0.0.1.localhost").
func (h *Host) Append(label string) (*Host, error) {
	if label == "" && h.form == HostFormDomain {
		return h, nil
	}
	if h.form == HostFormIPv4 {
		recomposed, err := ParseHostWithResolver(h.Encoded()+"."+label, h.resolver)
		if err != nil {
			return nil, err
		}
		if recomposed.form != HostFormDomain {
			return nil, newUnsupportedError("appending a label to an ipv4 host must produce a domain", label)
		}
		return recomposed, nil
	}
	if err := h.requireDomainEdit("appending a label"); err != nil {
		return nil, err
	}
	return h.rebuild(append(append([]string{}, h.labels...), strings.ToLower(label)), h.absolute)
}

// resolveIndex maps a possibly negative label index to a slice offset.
func (h *Host) resolveIndex(i int) (int, error) {
	n := len(h.labels)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, newOffsetError("label index out of range", i)
	}
	return idx, nil
}

// ReplaceLabel replaces the label at the given display-order index; negative
// indices count from the end. Replacing a label with itself is a no-op.
func (h *Host) ReplaceLabel(i int, label string) (*Host, error) {
	if err := h.requireDomainEdit("replacing a label"); err != nil {
		return nil, err
	}
	idx, err := h.resolveIndex(i)
	if err != nil {
		return nil, err
	}
	lowered := strings.ToLower(label)
	if h.labels[idx] == lowered {
		return h, nil
	}
	labels := append([]string{}, h.labels...)
	labels[idx] = lowered
	return h.rebuild(labels, h.absolute)
}

// WithoutLabels removes the labels at the given display-order indices;
// negative indices count from the end. Removing every label yields the null
// host.
func (h *Host) WithoutLabels(indices ...int) (*Host, error) {
	if err := h.requireDomainEdit("removing labels"); err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return h, nil
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		idx, err := h.resolveIndex(i)
		if err != nil {
			return nil, err
		}
		drop[idx] = true
	}
	labels := make([]string, 0, len(h.labels))
	for i, label := range h.labels {
		if !drop[i] {
			labels = append(labels, label)
		}
	}
	return h.rebuild(labels, h.absolute)
}

// WithRootLabel returns the absolute (trailing-dot) form of a domain host.
// It is a no-op on every other form.
func (h *Host) WithRootLabel() *Host {
	if h.form != HostFormDomain || len(h.labels) == 0 || h.absolute {
		return h
	}
	dup := *h
	dup.absolute = true
	dup.suffix = &suffixCell{}
	return &dup
}

// WithoutRootLabel returns the relative form of a domain host. It is a no-op
// on every other form.
func (h *Host) WithoutRootLabel() *Host {
	if h.form != HostFormDomain || !h.absolute {
		return h
	}
	dup := *h
	dup.absolute = false
	dup.suffix = &suffixCell{}
	return &dup
}

// WithoutZoneIdentifier strips the zone identifier from a scoped IPv6 host.
// It is a no-op on every other host.
func (h *Host) WithoutZoneIdentifier() *Host {
	if h.zone == "" {
		return h
	}
	dup := *h
	dup.zone = ""
	dup.suffix = &suffixCell{}
	return &dup
}

// NormalizeIPv4 canonicalizes a host written in a legacy IPv4 notation
// (octal, hexadecimal, or fewer than four parts) into its dotted-decimal
// form. Hosts that are not legacy IPv4 notations are returned unchanged.
func (h *Host) NormalizeIPv4() *Host {
	if h.form != HostFormDomain && h.form != HostFormOpaque {
		return h
	}
	if len(h.labels) == 0 || h.absolute {
		return h
	}
	addr, err := ParseIPv4Legacy(strings.Join(h.labels, "."))
	if err != nil {
		return h
	}
	return &Host{form: HostFormIPv4, ip: addr, resolver: h.resolver, suffix: &suffixCell{}}
}

// ToASCII returns a host whose domain labels are all converted to their
// ASCII (ACE) form. Non-domain hosts are returned unchanged.
func (h *Host) ToASCII() (*Host, error) {
	if h.form != HostFormDomain || len(h.labels) == 0 {
		return h, nil
	}
	labels := make([]string, len(h.labels))
	changed := false
	for i, label := range h.labels {
		if isASCIIString(label) {
			labels[i] = label
			continue
		}
		ascii, err := uts46.ToASCII(label)
		if err != nil {
			return nil, newSyntaxError("label is not convertible to ASCII", label)
		}
		labels[i] = ascii
		changed = true
	}
	if !changed {
		return h, nil
	}
	return h.rebuild(labels, h.absolute)
}

// ToUnicode returns a host whose ACE labels are all converted to their
// Unicode form. Non-domain hosts are returned unchanged.
func (h *Host) ToUnicode() (*Host, error) {
	if h.form != HostFormDomain || len(h.labels) == 0 {
		return h, nil
	}
	labels := make([]string, len(h.labels))
	changed := false
	for i, label := range h.labels {
		u := unicodeLabel(label)
		labels[i] = u
		if u != label {
			changed = true
		}
	}
	if !changed {
		return h, nil
	}
	return h.rebuild(labels, h.absolute)
}

// countLabels counts the dot-separated labels of a non-empty domain string.
func countLabels(domain string) int {
	if domain == "" {
		return 0
	}
	return strings.Count(domain, ".") + 1
}

// splitSuffixArg parses a replacement suffix/domain argument into decoded
// labels. An empty argument means "remove".
func splitSuffixArg(arg string) ([]string, error) {
	if arg == "" {
		return nil, nil
	}
	parsed, err := ParseHost(arg)
	if err != nil {
		return nil, err
	}
	if parsed.form != HostFormDomain {
		return nil, newSyntaxError("replacement is not a domain", arg)
	}
	return parsed.labels, nil
}

// spliceAtRoot replaces the trailing offset labels with the replacement.
func (h *Host) spliceAtRoot(offset int, replacement []string) (*Host, error) {
	keep := h.labels[:len(h.labels)-offset]
	labels := append(append([]string{}, keep...), replacement...)
	return h.rebuild(labels, h.absolute)
}

// WithPublicSuffix replaces the public suffix of a domain host, keeping the
// labels to its left. The replacement is re-resolved lazily on the new host.
func (h *Host) WithPublicSuffix(suffix string) (*Host, error) {
	if err := h.requireDomainEdit("replacing the public suffix"); err != nil {
		return nil, err
	}
	replacement, err := splitSuffixArg(suffix)
	if err != nil {
		return nil, err
	}
	return h.spliceAtRoot(countLabels(h.PublicSuffix()), replacement)
}

// WithRegistrableDomain replaces the registrable domain of a domain host,
// keeping the subdomain labels.
func (h *Host) WithRegistrableDomain(domain string) (*Host, error) {
	if err := h.requireDomainEdit("replacing the registrable domain"); err != nil {
		return nil, err
	}
	replacement, err := splitSuffixArg(domain)
	if err != nil {
		return nil, err
	}
	return h.spliceAtRoot(countLabels(h.RegistrableDomain()), replacement)
}

// WithSubdomain replaces the subdomain of a domain host, keeping the
// registrable domain and suffix labels.
func (h *Host) WithSubdomain(sub string) (*Host, error) {
	if err := h.requireDomainEdit("replacing the subdomain"); err != nil {
		return nil, err
	}
	replacement, err := splitSuffixArg(sub)
	if err != nil {
		return nil, err
	}
	offset := countLabels(h.Subdomain())
	labels := append(append([]string{}, replacement...), h.labels[offset:]...)
	return h.rebuild(labels, h.absolute)
}

// Equal reports whether two hosts have the same encoded form.
func (h *Host) Equal(other *Host) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.Encoded() == other.Encoded()
}
