package jsoncedit

// ScanValueEnd returns the offset one past the last byte of the JSON value
// beginning at data[start]. The value may be an object, array, string, or bare
// token (number, boolean, null). Brackets and quotes inside string literals or
// comments do not affect the result. Truncated input yields ErrMalformedValue;
// the returned offset is never less than start.
func ScanValueEnd(data []byte, start int) (int, error) {
	if start < 0 || start >= len(data) {
		return 0, ErrInvalidOffset
	}

	switch data[start] {
	case '{':
		return scanBlockEnd(data, start, '{', '}')
	case '[':
		return scanBlockEnd(data, start, '[', ']')
	case '"':
		return scanStringEnd(data, start)
	default:
		return scanBareEnd(data, start)
	}
}

// scanBlockEnd counts nesting of one open/close pair until the depth returns
// to zero. Other bracket kinds inside the block are irrelevant to the count.
func scanBlockEnd(data []byte, start int, openChar, closeChar byte) (int, error) {
	depth := 1
	inString := false

	for i := start + 1; i < len(data); i++ {
		c := data[i]

		if inString {
			if c == '\\' {
				i++ // escaped character, cannot close the string
				continue
			}
			if c == '"' {
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '/':
			i = skipComment(data, i)
		case openChar:
			depth++
		case closeChar:
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, ErrMalformedValue
}

// scanStringEnd scans a string literal starting at an opening quote and
// returns the offset after the closing quote.
func scanStringEnd(data []byte, start int) (int, error) {
	for i := start + 1; i < len(data); i++ {
		switch data[i] {
		case '\\':
			i++ // skip the escaped character
		case '"':
			return i + 1, nil
		}
	}
	return 0, ErrMalformedValue
}

// scanBareEnd handles unquoted tokens, which run until a structural delimiter,
// a line break, or the start of a comment. Trailing blanks are excluded from
// the span.
func scanBareEnd(data []byte, start int) (int, error) {
	i := start
scan:
	for i < len(data) {
		switch data[i] {
		case ',', '}', ']', '\n', '/':
			break scan
		}
		i++
	}
	for i > start && (data[i-1] == ' ' || data[i-1] == '\t' || data[i-1] == '\r') {
		i--
	}
	if i == start {
		return 0, ErrMalformedValue
	}
	return i, nil
}

// nextSignificant returns the offset of the first byte at or after pos that
// is neither whitespace nor part of a comment, or len(data).
func nextSignificant(data []byte, pos int) int {
	for i := pos; i < len(data); i++ {
		c := data[i]
		if c == '/' {
			if j := skipComment(data, i); j != i {
				i = j
				continue
			}
		}
		if c > ' ' {
			return i
		}
	}
	return len(data)
}

// prevSignificant returns the offset of the last byte before pos that is
// neither whitespace nor part of a comment, or -1. String literals count as
// significant in full.
func prevSignificant(data []byte, pos int) int {
	if pos > len(data) {
		pos = len(data)
	}
	last := -1
	for i := 0; i < pos; i++ {
		c := data[i]
		if c == '"' {
			end, err := scanStringEnd(data, i)
			if err != nil || end > pos {
				return i
			}
			last = end - 1
			i = end - 1
			continue
		}
		if c == '/' {
			if j := skipComment(data, i); j != i {
				i = j
				continue
			}
		}
		if c > ' ' {
			last = i
		}
	}
	return last
}

// skipComment returns the index of the last byte belonging to the comment
// starting at data[i], or i itself when data[i] does not begin one. The
// newline ending a line comment is not consumed.
func skipComment(data []byte, i int) int {
	if i+1 >= len(data) {
		return i
	}
	switch data[i+1] {
	case '/':
		j := i + 2
		for j < len(data) && data[j] != '\n' {
			j++
		}
		return j - 1
	case '*':
		for j := i + 2; j+1 < len(data); j++ {
			if data[j] == '*' && data[j+1] == '/' {
				return j + 1
			}
		}
		return len(data)
	}
	return i
}
