// Package sanitize provides filename sanitization for names that are
// embedded into COPASI model files and used as filesystem paths. Report
// targets and output model names are reduced to a conservative character
// set before they touch the document or the disk.
package sanitize

import "strings"

// keepPunctuation is the set of non-alphanumeric characters that survive
// sanitization. Slashes are kept so relative paths remain usable.
const keepPunctuation = "._/"

// Filename reduces input to the character set [A-Za-z0-9._/]. Every other
// character is dropped, not replaced, so "my file (2).txt" becomes
// "myfile2.txt". The empty string maps to itself; callers that need a
// non-empty name must check for that.
func Filename(input string) string {
	if input == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case strings.ContainsRune(keepPunctuation, r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
