// Package jsoncedit provides selective, text-level edits of JSON-with-comments
// documents. A single top-level key can be replaced, inserted, or removed while
// every other byte of the document — comments, whitespace, indentation, key
// order — is preserved verbatim. No full parse/reprint round trip is performed.
package jsoncedit

import "errors"

// Errors returned by the scanning and editing functions.
var (
	ErrMalformedValue = errors.New("malformed value: no syntactic end found")
	ErrInvalidOffset  = errors.New("value offset out of range")
)

// Pair is one name/value element of the array value written by Set.
type Pair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Location marks where a key's declaration sits inside a document.
type Location struct {
	KeyStart   int // offset of the opening quote of the key name
	ValueStart int // offset of the value's first significant character
}

// Span is a half-open byte interval [Start, End) over a document.
type Span struct {
	Start int
	End   int
}
