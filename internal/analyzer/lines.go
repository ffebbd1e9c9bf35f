package analyzer

import "strings"

// CountLines returns the total line count (loc) and the count of lines
// whose trimmed content is non-empty (sloc) for raw file content. It does
// not depend on whether the content parses.
func CountLines(content []byte) (loc, sloc int) {
	lines := strings.Split(string(content), "\n")
	// Trim trailing empty line from final newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	loc = len(lines)
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			sloc++
		}
	}
	return loc, sloc
}
