// Package token splits interpreter input lines into argument tokens.
package token

import "strings"

// Delimiters are the characters that separate tokens: space, tab, carriage
// return, newline, and bell.
const Delimiters = " \t\r\n\a"

// Split breaks a line into tokens on runs of delimiter characters. There is
// no quoting or escaping; an all-delimiter line yields no tokens.
func Split(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(Delimiters, r)
	})
}
