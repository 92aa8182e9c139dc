package domain

// HasPhoneticCode reports whether name contains an ASCII letter. Soundex codes
// are built from letters only, so a name without one sounds like nothing.
func HasPhoneticCode(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i] | 0x20
		if c >= 'a' && c <= 'z' {
			return true
		}
	}
	return false
}
