package ui

// wrapText splits text into lines no wider than width, counting only
// visible characters so ANSI styling never skews the break points
func wrapText(text string, width int) []string {
	if width <= 0 {
		width = 80
	}

	if visibleLength(text) <= width {
		return []string{text}
	}

	var lines []string

	for len(text) > 0 {
		breakPoint := findBreakPoint(text, width)
		if breakPoint >= len(text) {
			lines = append(lines, text)
			break
		}

		lines = append(lines, text[:breakPoint])
		text = text[breakPoint:]
	}

	return lines
}

// visibleLength counts characters outside ANSI escape sequences
func visibleLength(text string) int {
	length := 0
	inEscape := false

	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\x1b':
			inEscape = true
		case inEscape && text[i] == 'm':
			inEscape = false
		case !inEscape:
			length++
		}
	}

	return length
}

// findBreakPoint returns the byte index after width visible characters
func findBreakPoint(text string, width int) int {
	visibleCount := 0
	inEscape := false

	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\x1b':
			inEscape = true
		case inEscape && text[i] == 'm':
			inEscape = false
		case !inEscape:
			visibleCount++
			if visibleCount >= width {
				return i + 1
			}
		}
	}

	return len(text)
}
