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

import "strings"

// DefaultSeparator is the pair separator used unless a caller picks another.
const DefaultSeparator byte = '&'

// Pair is one decoded key/value query pair. A key without '=' in the encoded
// form has no value at all, which is distinct from an empty value.
type Pair struct {
	Key      string
	Value    string
	HasValue bool
}

// NewPair builds a pair with a value.
func NewPair(key, value string) Pair {
	return Pair{Key: key, Value: value, HasValue: true}
}

// FlagPair builds a valueless pair.
func FlagPair(key string) Pair {
	return Pair{Key: key}
}

// Query is an immutable, order-preserving sequence of query pairs with a
// configurable separator. Duplicate keys are permitted and distinguishable
// by position; insertion order is preserved except where an operation
// explicitly reorders.
type Query struct {
	pairs []Pair
	sep   byte
}

// ParseQuery parses an encoded query string with the '&' separator.
func ParseQuery(raw string) (*Query, error) {
	return ParseQueryWithSeparator(raw, DefaultSeparator)
}

// ParseQueryWithSeparator parses an encoded query string, splitting pairs on
// the given separator and each pair on its first '='. Keys and values are
// percent-decoded independently. The separator must not be '='.
func ParseQueryWithSeparator(raw string, sep byte) (*Query, error) {
	if sep == '=' {
		return nil, newSyntaxError("query separator must not be '='", string(sep))
	}
	q := &Query{sep: sep}
	if raw == "" {
		return q, nil
	}
	pieces := strings.Split(raw, string(sep))
	q.pairs = make([]Pair, 0, len(pieces))
	for _, piece := range pieces {
		keyPart, valuePart, hasValue := strings.Cut(piece, "=")
		key, err := decodePercent(keyPart)
		if err != nil {
			return nil, err
		}
		pair := Pair{Key: key}
		if hasValue {
			value, err := decodePercent(valuePart)
			if err != nil {
				return nil, err
			}
			pair.Value = value
			pair.HasValue = true
		}
		q.pairs = append(q.pairs, pair)
	}
	return q, nil
}

// NewQuery builds a query from decoded pairs with the '&' separator.
func NewQuery(pairs []Pair) *Query {
	return &Query{pairs: append([]Pair{}, pairs...), sep: DefaultSeparator}
}

// NewQueryWithSeparator builds a query from decoded pairs and a separator.
func NewQueryWithSeparator(pairs []Pair, sep byte) (*Query, error) {
	if sep == '=' {
		return nil, newSyntaxError("query separator must not be '='", string(sep))
	}
	return &Query{pairs: append([]Pair{}, pairs...), sep: sep}, nil
}

// Separator returns the pair separator.
func (q *Query) Separator() byte { return q.sep }

// Pairs returns a copy of the decoded pairs in order.
func (q *Query) Pairs() []Pair {
	out := make([]Pair, len(q.pairs))
	copy(out, q.pairs)
	return out
}

// Len returns the number of pairs.
func (q *Query) Len() int { return len(q.pairs) }

// IsEmpty reports whether the query has no pairs.
func (q *Query) IsEmpty() bool { return len(q.pairs) == 0 }

// derive returns a new query with the same separator.
func (q *Query) derive(pairs []Pair) *Query {
	return &Query{pairs: pairs, sep: q.sep}
}

// Encoded builds the encoded query string, the exact inverse of parsing:
// keys and values are percent-encoded with the query character set minus the
// separator (always encoded inside a key or value, whichever byte it is) and
// joined with '='; valueless pairs omit the '='.
func (q *Query) Encoded() string {
	sepRune := rune(q.sep)
	keyAllowed := func(r rune) bool { return isQueryChar(r) && r != sepRune && r != '=' }
	valueAllowed := func(r rune) bool { return isQueryChar(r) && r != sepRune }
	var b strings.Builder
	for i, pair := range q.pairs {
		if i > 0 {
			b.WriteByte(q.sep)
		}
		b.WriteString(encodeWith(pair.Key, keyAllowed))
		if pair.HasValue {
			b.WriteByte('=')
			b.WriteString(encodeWith(pair.Value, valueAllowed))
		}
	}
	return b.String()
}

// String returns the encoded form.
func (q *Query) String() string { return q.Encoded() }

// Has reports whether at least one pair has the given key.
func (q *Query) Has(key string) bool {
	for _, pair := range q.pairs {
		if pair.Key == key {
			return true
		}
	}
	return false
}

// Get returns the first pair with the given key. The boolean reports whether
// such a pair exists; a valueless pair yields an empty string, collapsing the
// distinction with an empty value. Use GetPair to keep it.
func (q *Query) Get(key string) (string, bool) {
	for _, pair := range q.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

// GetPair returns the first pair with the given key, preserving the
// value-present flag that Get collapses.
func (q *Query) GetPair(key string) (Pair, bool) {
	for _, pair := range q.pairs {
		if pair.Key == key {
			return pair, true
		}
	}
	return Pair{}, false
}

// GetAll returns the values of every pair with the given key, in original
// order; valueless pairs contribute an empty string.
func (q *Query) GetAll(key string) []string {
	var out []string
	for _, pair := range q.pairs {
		if pair.Key == key {
			out = append(out, pair.Value)
		}
	}
	return out
}

// WithPair removes every existing pair with the key and appends the new pair
// once at the end.
func (q *Query) WithPair(key, value string) *Query {
	pairs := make([]Pair, 0, len(q.pairs)+1)
	for _, pair := range q.pairs {
		if pair.Key != key {
			pairs = append(pairs, pair)
		}
	}
	pairs = append(pairs, NewPair(key, value))
	return q.derive(pairs)
}

// AppendPair inserts a pair at the end without removing existing same-key
// pairs.
func (q *Query) AppendPair(key, value string) *Query {
	return q.derive(append(append([]Pair{}, q.pairs...), NewPair(key, value)))
}

// AppendFlag inserts a valueless pair at the end.
func (q *Query) AppendFlag(key string) *Query {
	return q.derive(append(append([]Pair{}, q.pairs...), FlagPair(key)))
}

// Merge overlays other onto the receiver. A key present on both sides keeps
// its original position: the first receiver pair with that key is replaced in
// place by other's pairs for it, and later receiver pairs with the key are
// dropped. Keys only in other are appended at the end in their order. Pairs
// with an empty key and no value are dropped from the result.
func (q *Query) Merge(other *Query) *Query {
	groups := make(map[string][]Pair, other.Len())
	order := make([]string, 0, other.Len())
	for _, pair := range other.pairs {
		if _, seen := groups[pair.Key]; !seen {
			order = append(order, pair.Key)
		}
		groups[pair.Key] = append(groups[pair.Key], pair)
	}

	pairs := make([]Pair, 0, len(q.pairs)+len(other.pairs))
	spliced := make(map[string]bool, len(groups))
	for _, pair := range q.pairs {
		replacement, ok := groups[pair.Key]
		if !ok {
			pairs = append(pairs, pair)
			continue
		}
		if !spliced[pair.Key] {
			pairs = append(pairs, replacement...)
			spliced[pair.Key] = true
		}
	}
	for _, key := range order {
		if !spliced[key] {
			pairs = append(pairs, groups[key]...)
		}
	}

	kept := pairs[:0]
	for _, pair := range pairs {
		if pair.Key == "" && !pair.HasValue {
			continue
		}
		kept = append(kept, pair)
	}
	return q.derive(kept)
}

// WithoutPairs drops every pair whose key matches any of the given keys.
func (q *Query) WithoutPairs(keys ...string) *Query {
	drop := make(map[string]bool, len(keys))
	for _, key := range keys {
		drop[key] = true
	}
	pairs := make([]Pair, 0, len(q.pairs))
	for _, pair := range q.pairs {
		if !drop[pair.Key] {
			pairs = append(pairs, pair)
		}
	}
	if len(pairs) == len(q.pairs) {
		return q
	}
	return q.derive(pairs)
}

// matchesParam reports whether a key is the parameter name itself or an
// array-style variant of it ("name[0]", "name[sub][x]").
func matchesParam(key, name string) bool {
	if key == name {
		return true
	}
	return strings.HasPrefix(key, name+"[") && strings.HasSuffix(key, "]")
}

// WithoutParams drops every pair whose key matches one of the given
// parameter names, including bracketed array-style variants.
func (q *Query) WithoutParams(names ...string) *Query {
	pairs := make([]Pair, 0, len(q.pairs))
	for _, pair := range q.pairs {
		matched := false
		for _, name := range names {
			if matchesParam(pair.Key, name) {
				matched = true
				break
			}
		}
		if !matched {
			pairs = append(pairs, pair)
		}
	}
	if len(pairs) == len(q.pairs) {
		return q
	}
	return q.derive(pairs)
}

// Sort groups pairs by key: pairs sharing a key become contiguous, groups
// are ordered by the key's first occurrence, and the order inside a group is
// preserved. It is a no-op when every key is unique.
func (q *Query) Sort() *Query {
	counts := make(map[string]int, len(q.pairs))
	unique := true
	for _, pair := range q.pairs {
		counts[pair.Key]++
		if counts[pair.Key] > 1 {
			unique = false
		}
	}
	if unique {
		return q
	}
	groups := make(map[string][]Pair, len(counts))
	order := make([]string, 0, len(counts))
	for _, pair := range q.pairs {
		if _, seen := groups[pair.Key]; !seen {
			order = append(order, pair.Key)
		}
		groups[pair.Key] = append(groups[pair.Key], pair)
	}
	pairs := make([]Pair, 0, len(q.pairs))
	for _, key := range order {
		pairs = append(pairs, groups[key]...)
	}
	return q.derive(pairs)
}

// WithoutDuplicates drops every pair that exactly repeats an earlier pair.
func (q *Query) WithoutDuplicates() *Query {
	seen := make(map[Pair]bool, len(q.pairs))
	pairs := make([]Pair, 0, len(q.pairs))
	for _, pair := range q.pairs {
		if seen[pair] {
			continue
		}
		seen[pair] = true
		pairs = append(pairs, pair)
	}
	if len(pairs) == len(q.pairs) {
		return q
	}
	return q.derive(pairs)
}

// WithoutEmptyPairs drops pairs whose key is empty, or whose value is absent
// or the empty string.
func (q *Query) WithoutEmptyPairs() *Query {
	pairs := make([]Pair, 0, len(q.pairs))
	for _, pair := range q.pairs {
		if pair.Key == "" || !pair.HasValue || pair.Value == "" {
			continue
		}
		pairs = append(pairs, pair)
	}
	if len(pairs) == len(q.pairs) {
		return q
	}
	return q.derive(pairs)
}

// Equal reports whether two queries hold the same pairs and separator.
func (q *Query) Equal(other *Query) bool {
	if q == nil || other == nil {
		return q == other
	}
	if q.sep != other.sep || len(q.pairs) != len(other.pairs) {
		return false
	}
	for i := range q.pairs {
		if q.pairs[i] != other.pairs[i] {
			return false
		}
	}
	return true
}
