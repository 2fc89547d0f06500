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
	"math/big"
	"net/netip"
	"strconv"
	"strings"
)

// Num is an opaque numeric handle produced and consumed by an Arith backend.
type Num any

// Arith is the arithmetic capability used by the legacy IPv4 parser. The
// canonical computation multiplies powers of 256 before comparing against
// per-part maxima, so a backend must be wide enough to hold 256^4
// intermediates. The default 64-bit backend is sufficient on every platform
// Go supports; BigArith is provided for callers that want an
// arbitrary-precision guarantee.
type Arith interface {
	// ParseWithRadix converts a digit string in the given radix. It fails if
	// any digit is invalid for the radix.
	ParseWithRadix(digits string, radix int) (Num, error)
	// FromInt lifts a small constant into the backend's representation.
	FromInt(v uint64) Num
	Power(base, exp Num) Num
	Multiply(a, b Num) Num
	Divide(a, b Num) Num
	Modulo(a, b Num) Num
	Add(a, b Num) Num
	Subtract(a, b Num) Num
	// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
	Compare(a, b Num) int
	// ToInt lowers a value known to fit in 64 bits.
	ToInt(n Num) uint64
}

// FixedArith is the default backend over native uint64 values.
type FixedArith struct{}

func (FixedArith) ParseWithRadix(digits string, radix int) (Num, error) {
	v, err := strconv.ParseUint(digits, radix, 64)
	if err != nil {
		return nil, newSyntaxError("invalid IPv4 part for radix "+strconv.Itoa(radix), digits)
	}
	return v, nil
}

func (FixedArith) FromInt(v uint64) Num { return v }

func (FixedArith) Power(base, exp Num) Num {
	result := uint64(1)
	for i := uint64(0); i < exp.(uint64); i++ {
		result *= base.(uint64)
	}
	return result
}

func (FixedArith) Multiply(a, b Num) Num { return a.(uint64) * b.(uint64) }
func (FixedArith) Divide(a, b Num) Num   { return a.(uint64) / b.(uint64) }
func (FixedArith) Modulo(a, b Num) Num   { return a.(uint64) % b.(uint64) }
func (FixedArith) Add(a, b Num) Num      { return a.(uint64) + b.(uint64) }
func (FixedArith) Subtract(a, b Num) Num { return a.(uint64) - b.(uint64) }

func (FixedArith) Compare(a, b Num) int {
	x, y := a.(uint64), b.(uint64)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (FixedArith) ToInt(n Num) uint64 { return n.(uint64) }

// BigArith is an arbitrary-precision backend over math/big integers.
type BigArith struct{}

func (BigArith) ParseWithRadix(digits string, radix int) (Num, error) {
	v, ok := new(big.Int).SetString(digits, radix)
	if !ok || v.Sign() < 0 {
		return nil, newSyntaxError("invalid IPv4 part for radix "+strconv.Itoa(radix), digits)
	}
	return v, nil
}

func (BigArith) FromInt(v uint64) Num { return new(big.Int).SetUint64(v) }

func (BigArith) Power(base, exp Num) Num {
	return new(big.Int).Exp(base.(*big.Int), exp.(*big.Int), nil)
}

func (BigArith) Multiply(a, b Num) Num { return new(big.Int).Mul(a.(*big.Int), b.(*big.Int)) }
func (BigArith) Divide(a, b Num) Num   { return new(big.Int).Div(a.(*big.Int), b.(*big.Int)) }
func (BigArith) Modulo(a, b Num) Num   { return new(big.Int).Mod(a.(*big.Int), b.(*big.Int)) }
func (BigArith) Add(a, b Num) Num      { return new(big.Int).Add(a.(*big.Int), b.(*big.Int)) }
func (BigArith) Subtract(a, b Num) Num { return new(big.Int).Sub(a.(*big.Int), b.(*big.Int)) }
func (BigArith) Compare(a, b Num) int  { return a.(*big.Int).Cmp(b.(*big.Int)) }
func (BigArith) ToInt(n Num) uint64    { return n.(*big.Int).Uint64() }

// splitIPv4Part returns the radix and digit substring of one legacy part.
func splitIPv4Part(part string) (int, string, error) {
	switch {
	case part == "":
		return 0, "", newSyntaxError("empty IPv4 part", part)
	case strings.HasPrefix(part, "0x") || strings.HasPrefix(part, "0X"):
		if len(part) == 2 {
			return 0, "", newSyntaxError("empty hexadecimal IPv4 part", part)
		}
		return 16, part[2:], nil
	case len(part) > 1 && part[0] == '0':
		return 8, part[1:], nil
	default:
		return 10, part, nil
	}
}

// ParseIPv4Legacy canonicalizes a historical IPv4 notation (dotted or not,
// with decimal, octal and hexadecimal parts) into a 4-octet address using the
// default fixed-width backend.
//
// With fewer than four parts, the last part spans the remaining octets, so
// "0x7f.1" means 127.0.0.1 and "0" means 0.0.0.0.
func ParseIPv4Legacy(s string) (netip.Addr, error) {
	return ParseIPv4LegacyWith(s, FixedArith{})
}

// ParseIPv4LegacyWith is ParseIPv4Legacy with an injected arithmetic backend.
func ParseIPv4LegacyWith(s string, arith Arith) (netip.Addr, error) {
	if s == "" {
		return netip.Addr{}, newSyntaxError("empty IPv4 address", s)
	}
	parts := strings.Split(s, ".")
	if len(parts) > 4 {
		return netip.Addr{}, newSyntaxError("too many IPv4 parts", s)
	}

	values := make([]Num, len(parts))
	for i, part := range parts {
		radix, digits, err := splitIPv4Part(part)
		if err != nil {
			return netip.Addr{}, err
		}
		v, err := arith.ParseWithRadix(digits, radix)
		if err != nil {
			return netip.Addr{}, err
		}
		values[i] = v
	}

	octetMax := arith.FromInt(255)
	octetBase := arith.FromInt(256)
	n := len(values)

	// All parts but the last are single octets.
	for i := 0; i < n-1; i++ {
		if arith.Compare(values[i], octetMax) > 0 {
			return netip.Addr{}, newSyntaxError("IPv4 part exceeds 255", parts[i])
		}
	}

	// The last part absorbs the remaining 5-n octets' worth of value.
	spanned := 5 - n
	lastMax := arith.Subtract(arith.Power(octetBase, arith.FromInt(uint64(spanned))), arith.FromInt(1))
	last := values[n-1]
	if arith.Compare(last, lastMax) > 0 {
		return netip.Addr{}, newSyntaxError("IPv4 value out of range", parts[n-1])
	}

	var octets [4]byte
	for i := 0; i < n-1; i++ {
		octets[i] = byte(arith.ToInt(values[i]))
	}
	for i := spanned - 1; i >= 0; i-- {
		weight := arith.Power(octetBase, arith.FromInt(uint64(i)))
		octet := arith.Modulo(arith.Divide(last, weight), octetBase)
		octets[n-1+(spanned-1-i)] = byte(arith.ToInt(octet))
	}

	return netip.AddrFrom4(octets), nil
}

// parseStrictIPv4 is the fast path of the host state machine: exactly four
// decimal parts, each 0-255, no radix games.
func parseStrictIPv4(s string) (netip.Addr, bool) {
	var octets [4]byte
	n := 0
	for _, part := range strings.Split(s, ".") {
		if n == 4 || part == "" || len(part) > 3 {
			return netip.Addr{}, false
		}
		v := 0
		for i := 0; i < len(part); i++ {
			if !isASCIIDigit(rune(part[i])) {
				return netip.Addr{}, false
			}
			v = v*10 + int(part[i]-'0')
		}
		if v > 255 {
			return netip.Addr{}, false
		}
		octets[n] = byte(v)
		n++
	}
	if n != 4 {
		return netip.Addr{}, false
	}
	return netip.AddrFrom4(octets), true
}
