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
	"errors"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind error
	}{
		{name: "syntax", err: newSyntaxError("bad input", "deta il"), kind: ErrSyntax},
		{name: "offset", err: newOffsetError("index out of range", 42), kind: ErrOffsetOutOfBounds},
		{name: "structural", err: newStructuralError("bad structure", "//"), kind: ErrStructuralViolation},
		{name: "unsupported", err: newUnsupportedError("cannot do that", "ip"), kind: ErrUnsupportedOperation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tc.err, tc.kind)
			}
			var e *Error
			if !errors.As(tc.err, &e) {
				t.Fatalf("errors.As failed for %v", tc.err)
			}
			if e.Error() == "" {
				t.Error("Error() returned an empty message")
			}
		})
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	if errors.Is(newSyntaxError("x", "y"), ErrStructuralViolation) {
		t.Error("a syntax error must not match the structural sentinel")
	}
	if errors.Is(newOffsetError("x", 1), ErrSyntax) {
		t.Error("an offset error must not match the syntax sentinel")
	}
}
