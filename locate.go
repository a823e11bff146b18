package jsoncedit

// LocateKey finds the first declaration of key among the top-level entries of
// the document. A candidate is only accepted when it is a real key position: a
// string literal at nesting depth one followed, after optional whitespace, by
// a colon. Occurrences of the key text inside other string literals, inside
// comments, or inside nested values are never matched.
//
// When the same key is declared more than once, only the first declaration is
// reported.
func LocateKey(data []byte, key string) (Location, bool) {
	depth := 0

	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '"':
			strStart := i
			end, err := scanStringEnd(data, i)
			if err != nil {
				return Location{}, false
			}
			i = end - 1
			if depth != 1 {
				continue
			}

			j := end
			for j < len(data) && data[j] <= ' ' {
				j++
			}
			if j >= len(data) || data[j] != ':' {
				continue // a string value, not a key
			}
			if string(data[strStart+1:end-1]) != key {
				continue
			}

			j++
			for j < len(data) && data[j] <= ' ' {
				j++
			}
			if j >= len(data) {
				return Location{}, false // key declared but value missing
			}
			return Location{KeyStart: strStart, ValueStart: j}, true

		case '/':
			i = skipComment(data, i)
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		}
	}
	return Location{}, false
}
