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
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure the package can produce. Callers
// match them with errors.Is; the concrete *Error value carries the detail.
var (
	// ErrSyntax reports a component that does not satisfy its grammar: a bad
	// host, a broken percent triple, a '=' query separator, a basename
	// containing '/', or an invalid legacy IPv4 part.
	ErrSyntax = errors.New("syntax error")
	// ErrOffsetOutOfBounds reports a label or segment index outside the valid
	// range for an indexed edit.
	ErrOffsetOutOfBounds = errors.New("offset out of bounds")
	// ErrStructuralViolation reports a composed URI that breaks the
	// authority/path constraints of RFC 3986, Section 3.3.
	ErrStructuralViolation = errors.New("structural violation")
	// ErrUnsupportedOperation reports an edit requested on a host form that
	// cannot support it, such as label edits on an IP literal.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Error is the concrete error type returned by constructors and edits. It
// wraps one of the sentinel kinds and adds a message plus the offending input,
// if any.
type Error struct {
	kind    error
	Message string
	Detail  string
}

// Error formats the message with any available detail.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s %q", e.kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

// Unwrap exposes the sentinel kind for errors.Is matching.
func (e *Error) Unwrap() error {
	return e.kind
}

func newSyntaxError(message, detail string) *Error {
	return &Error{kind: ErrSyntax, Message: message, Detail: detail}
}

func newOffsetError(message string, index int) *Error {
	return &Error{kind: ErrOffsetOutOfBounds, Message: message, Detail: fmt.Sprintf("%d", index)}
}

func newStructuralError(message, detail string) *Error {
	return &Error{kind: ErrStructuralViolation, Message: message, Detail: detail}
}

func newUnsupportedError(message, detail string) *Error {
	return &Error{kind: ErrUnsupportedOperation, Message: message, Detail: detail}
}
