package jsoncedit

import "bytes"

// defaultIndent is used when the document contains no indented line.
const defaultIndent = "    "

// DetectIndent infers the document's indentation unit from the first indented
// line holding non-blank content. Documents with no such line get the default
// four-space unit.
func DetectIndent(data []byte) string {
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == len(line) {
			continue
		}
		return string(line[:len(line)-len(trimmed)])
	}
	return defaultIndent
}
