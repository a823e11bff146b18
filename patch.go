package jsoncedit

import "bytes"

// ApplyReplace splices rendered over the value span, leaving every other byte
// of the document untouched.
func ApplyReplace(data []byte, value Span, rendered []byte) []byte {
	out := make([]byte, 0, len(data)-(value.End-value.Start)+len(rendered))
	out = append(out, data[:value.Start]...)
	out = append(out, rendered...)
	out = append(out, data[value.End:]...)
	return out
}

// ApplyInsert adds a new key/value entry before the document's final closing
// brace, indented one level, appending a separating comma when the object is
// neither empty nor already comma-terminated. A document with no closing brace
// at all is replaced by a fresh object holding only the new entry.
func ApplyInsert(data []byte, key string, rendered []byte, indent string) []byte {
	brace := bytes.LastIndexByte(data, '}')
	if brace < 0 {
		out := make([]byte, 0, len(key)+len(rendered)+len(indent)+8)
		out = append(out, '{', '\n')
		out = append(out, indent...)
		out = appendJSONString(out, key)
		out = append(out, ':', ' ')
		out = append(out, rendered...)
		out = append(out, '\n', '}', '\n')
		return out
	}

	head := bytes.TrimRight(data[:brace], " \t\r\n")
	needComma := len(head) > 0 && head[len(head)-1] != '{' && head[len(head)-1] != ','

	out := make([]byte, 0, len(data)+len(key)+len(rendered)+len(indent)+8)
	out = append(out, head...)
	if needComma {
		out = append(out, ',')
	}
	out = append(out, '\n')
	out = append(out, indent...)
	out = appendJSONString(out, key)
	out = append(out, ':', ' ')
	out = append(out, rendered...)
	out = append(out, '\n')
	out = append(out, data[brace:]...)
	return out
}

// ApplyRemove deletes the key/value pair covering pair. The span is widened so
// the pair's separating comma and, when its line becomes blank, the line
// itself disappear with it; a comma left dangling before the enclosing close
// bracket is stripped as well.
func ApplyRemove(data []byte, pair Span) []byte {
	start, end := pair.Start, pair.End

	// Forward: hop blanks and comments to at most one trailing comma, then
	// the line terminator when only blanks or a line comment remain on the
	// line. Comments crossed on the way to the comma sit between the removed
	// value and its separator, so they go with the entry.
	if n := nextSignificant(data, end); n < len(data) && data[n] == ',' {
		end = n + 1
	}
	i := end
	for i < len(data) && (data[i] == ' ' || data[i] == '\t') {
		i++
	}
	if i+1 < len(data) && data[i] == '/' && data[i+1] == '/' {
		i = skipComment(data, i) + 1
	}
	if i < len(data) && data[i] == '\r' {
		i++
	}
	if i < len(data) && data[i] == '\n' {
		end = i + 1
	}

	// Backward: leading blanks on the key's own line.
	for start > 0 && (data[start-1] == ' ' || data[start-1] == '\t') {
		start--
	}

	out := make([]byte, 0, len(data)-(end-start))
	out = append(out, data[:start]...)
	out = append(out, data[end:]...)

	// Removing the last entry can leave the previous entry's comma dangling
	// before the close bracket, with blanks or comments in between on either
	// side.
	next := nextSignificant(out, start)
	if next < len(out) && (out[next] == '}' || out[next] == ']') {
		if prev := prevSignificant(out, start); prev >= 0 && out[prev] == ',' {
			out = append(out[:prev], out[prev+1:]...)
		}
	}
	return out
}
