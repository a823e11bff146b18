package jsoncedit

// StripComments returns a copy of data with // and /* */ comments removed,
// yielding text a standard JSON parser accepts. Comment-like sequences inside
// string literals are left untouched. Newlines spanned by block comments are
// kept; byte offsets are otherwise not preserved. Intended for read-only
// fallback parsing, never as a basis for writing the document back.
func StripComments(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inString {
			out = append(out, c)
			if c == '\\' && i+1 < len(data) {
				out = append(out, data[i+1])
				i++
			} else if c == '"' {
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			out = append(out, c)
		case '/':
			last := skipComment(data, i)
			if last == i {
				out = append(out, c) // lone slash, not a comment
				continue
			}
			for ; i <= last && i < len(data); i++ {
				if data[i] == '\n' {
					out = append(out, '\n')
				}
			}
			i--
		default:
			out = append(out, c)
		}
	}
	return out
}
