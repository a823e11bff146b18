package jsoncedit

import (
	"bytes"
	"fmt"
)

// Set returns a copy of data in which key's value is the rendered form of
// pairs, inserting the key before the final closing brace when it is absent.
// An empty or whitespace-only document yields a fresh minimal object. Every
// byte outside the edited span is preserved verbatim.
func Set(data []byte, key string, pairs []Pair) ([]byte, error) {
	indent := DetectIndent(data)
	rendered := FormatPairs(pairs, indent)

	if len(bytes.TrimSpace(data)) == 0 {
		return ApplyInsert(nil, key, rendered, indent), nil
	}

	loc, ok := LocateKey(data, key)
	if !ok {
		return ApplyInsert(data, key, rendered, indent), nil
	}
	end, err := ScanValueEnd(data, loc.ValueStart)
	if err != nil {
		return nil, fmt.Errorf("value of %q: %w", key, err)
	}
	return ApplyReplace(data, Span{Start: loc.ValueStart, End: end}, rendered), nil
}

// Remove returns a copy of data with key's entry deleted, tidying separator
// commas and the entry's line. When the key is absent the document is returned
// unchanged.
func Remove(data []byte, key string) ([]byte, error) {
	loc, ok := LocateKey(data, key)
	if !ok {
		return data, nil
	}
	end, err := ScanValueEnd(data, loc.ValueStart)
	if err != nil {
		return nil, fmt.Errorf("value of %q: %w", key, err)
	}
	return ApplyRemove(data, Span{Start: loc.KeyStart, End: end}), nil
}
