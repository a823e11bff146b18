package jsoncedit

// FormatPairs renders pairs as the literal text of the array value for a
// top-level key: an empty list is the two bytes "[]"; a non-empty list is a
// multi-line block with one element per line, elements indented two units and
// the closing bracket one unit, so the result embeds cleanly after a key line
// indented one unit.
func FormatPairs(pairs []Pair, indent string) []byte {
	if len(pairs) == 0 {
		return []byte("[]")
	}

	out := make([]byte, 0, 64*len(pairs))
	out = append(out, '[', '\n')
	for i, p := range pairs {
		out = append(out, indent...)
		out = append(out, indent...)
		out = append(out, `{ "name": `...)
		out = appendJSONString(out, p.Name)
		out = append(out, `, "value": `...)
		out = appendJSONString(out, p.Value)
		out = append(out, ' ', '}')
		if i < len(pairs)-1 {
			out = append(out, ',')
		}
		out = append(out, '\n')
	}
	out = append(out, indent...)
	out = append(out, ']')
	return out
}

// appendJSONString appends s as a quoted JSON string, escaping quotes,
// backslashes, and control characters.
func appendJSONString(out []byte, s string) []byte {
	const hexdigits = "0123456789abcdef"

	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			out = append(out, '\\', c)
		case '\b':
			out = append(out, '\\', 'b')
		case '\f':
			out = append(out, '\\', 'f')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			if c < 0x20 {
				out = append(out, '\\', 'u', '0', '0', hexdigits[c>>4], hexdigits[c&0xF])
			} else {
				out = append(out, c)
			}
		}
	}
	return append(out, '"')
}
