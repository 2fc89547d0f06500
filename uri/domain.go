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

// Domain is a Host known to be a syntactic domain name. The refinement is
// established at construction and can never be violated afterwards, since
// both types are immutable. Domain adds ordered label indexing and slicing
// over the display-order label sequence.
type Domain struct {
	host   *Host
	labels []string
}

// ParseDomain parses a raw host string and requires the result to be a
// domain name.
func ParseDomain(raw string) (*Domain, error) {
	h, err := ParseHost(raw)
	if err != nil {
		return nil, err
	}
	return DomainFromHost(h)
}

// DomainFromHost refines a Host into a Domain. It fails with a syntax error
// if the host is not a non-null domain name.
func DomainFromHost(h *Host) (*Domain, error) {
	if !h.IsDomain() {
		return nil, newSyntaxError("host is not a domain name", h.Encoded())
	}
	return &Domain{host: h, labels: h.Labels()}, nil
}

// Host returns the underlying Host value.
func (d *Domain) Host() *Host { return d.host }

// Labels returns a copy of the labels in left-to-right display order.
func (d *Domain) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// Len returns the number of labels.
func (d *Domain) Len() int { return len(d.labels) }

// Label returns the label at the given display-order index; negative indices
// count from the end.
func (d *Domain) Label(i int) (string, error) {
	idx := i
	if idx < 0 {
		idx += len(d.labels)
	}
	if idx < 0 || idx >= len(d.labels) {
		return "", newOffsetError("label index out of range", i)
	}
	return d.labels[idx], nil
}

// Slice returns the labels in the half-open display-order range [from, to);
// negative bounds count from the end.
func (d *Domain) Slice(from, to int) ([]string, error) {
	n := len(d.labels)
	lo, hi := from, to
	if lo < 0 {
		lo += n
	}
	if hi < 0 {
		hi += n
	}
	if lo < 0 || hi > n || lo > hi {
		return nil, newOffsetError("label range out of bounds", from)
	}
	out := make([]string, hi-lo)
	copy(out, d.labels[lo:hi])
	return out, nil
}

// Encoded returns the ASCII wire form of the domain.
func (d *Domain) Encoded() string { return d.host.Encoded() }

// String returns the Unicode display form of the domain.
func (d *Domain) String() string { return d.host.String() }
