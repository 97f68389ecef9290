package message

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FormatTagLine returns "# <tag> <value>" without a line terminator.
func FormatTagLine(tag, value string) string {
	return string(Marker) + " " + tag + " " + value
}

// ParseTagLine splits a metadata line into its tag and value. Leading blanks
// and the blank after the marker are optional.
func ParseTagLine(line string) (tag, value string, err error) {
	s := strings.TrimLeft(line, " \t")
	if len(s) == 0 || s[0] != Marker {
		return "", "", fmt.Errorf("%w: expected %q line, got %q", ErrStructure, Marker, line)
	}
	s = strings.TrimSpace(s[1:])
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i], strings.TrimSpace(s[i:]), nil
	}
	return s, "", nil
}

// ExpectTag parses line and checks that it carries tag, returning its value.
func ExpectTag(line, tag string) (string, error) {
	got, value, err := ParseTagLine(line)
	if err != nil {
		return "", err
	}
	if got != tag {
		return "", fmt.Errorf("%w: expected %q, got %q", ErrStructure, tag, got)
	}
	return value, nil
}

// ExpectCount parses a tag line whose value is a non-negative integer.
func ExpectCount(line, tag string) (int, error) {
	value, err := ExpectTag(line, tag)
	if err != nil {
		return 0, err
	}
	return ParseCount(value, tag)
}

// ParseCount parses a non-negative decimal integer.
func ParseCount(value, what string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad %s value %q", ErrStructure, strings.TrimSuffix(what, ":"), value)
	}
	return n, nil
}
