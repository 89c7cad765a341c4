package vtcore

import "github.com/unilibs/uniwidth"

// runeWidth reports how many columns r occupies on screen: 0 for
// combining marks and control characters, 2 for East Asian wide and
// fullwidth forms, 1 otherwise.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune reports whether r takes a two-column cell pair.
func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total column width of s.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
