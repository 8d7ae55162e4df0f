// Package util provides common utility functions used across the codebase.
package util

import "strings"

// shellSafe are the characters that need no quoting in POSIX shells.
// Minted file name stems stay in this set for the common identifiers, so
// traces usually read exactly like the command an operator would type.
const shellSafe = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_@%+=:,./-"

// ShellQuote wraps a string in single quotes, escaping any existing single quotes.
// This is safe for use in shell commands where the string should be treated literally.
func ShellQuote(s string) string {
	// Replace ' with '\'' (end quote, escaped quote, start quote)
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}

// ShellJoin renders an argv as a copy-pasteable shell command line. Arguments
// are quoted only when they need it, so an empty argument shows up as ''
// instead of vanishing between two spaces.
func ShellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if needsQuoting(arg) {
			quoted[i] = ShellQuote(arg)
		} else {
			quoted[i] = arg
		}
	}
	return strings.Join(quoted, " ")
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, c := range s {
		if !strings.ContainsRune(shellSafe, c) {
			return true
		}
	}
	return false
}
