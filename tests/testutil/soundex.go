package testutil

// soundexCodes maps A..Z to American Soundex digits. '0' marks vowels (and Y),
// which separate equal codes; '-' marks H and W, which do not.
const soundexCodes = "0123012-02245501262301-202"

// Soundex returns the four character American Soundex code of s, matching the
// stores' SOUNDEX so the in-memory search agrees with them.
// Non-letters are ignored; a string without letters has the empty code.
func Soundex(s string) string {
	out := make([]byte, 0, 4)
	var prev byte

	for i := 0; i < len(s) && len(out) < 4; i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}

		code := soundexCodes[c-'A']
		if len(out) == 0 {
			out = append(out, c)
			prev = code
			continue
		}

		switch code {
		case '-':
			continue
		case '0':
			prev = code
			continue
		}
		if code != prev {
			out = append(out, code)
		}
		prev = code
	}

	if len(out) == 0 {
		return ""
	}
	for len(out) < 4 {
		out = append(out, '0')
	}
	return string(out)
}

// SoundsLike reports whether a and b share a non-empty Soundex code.
func SoundsLike(a, b string) bool {
	code := Soundex(a)
	return code != "" && code == Soundex(b)
}
