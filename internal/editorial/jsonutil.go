package editorial

import (
	"encoding/json"
	"strings"
)

// extractJSON pulls a JSON object out of an LLM response, preferring a
// ```json fenced block and otherwise matching braces from the first "{".
func extractJSON(response string) string {
	if idx := strings.Index(response, "```json"); idx != -1 {
		start := idx + len("```json")
		if end := strings.Index(response[start:], "```"); end != -1 {
			return strings.TrimSpace(response[start : start+end])
		}
	}

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}

	end := findMatchingBrace(response, start)
	if end == -1 {
		return strings.TrimSpace(response[start:])
	}

	return strings.TrimSpace(response[start : end+1])
}

// findMatchingBrace returns the index of the brace closing the one at start,
// ignoring braces inside string literals, or -1 when the text is truncated.
func findMatchingBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// sanitizeJSON escapes bare backslashes and control characters inside string
// values. LLMs frequently emit LaTeX like \frac without escaping it.
func sanitizeJSON(raw string) string {
	if json.Valid([]byte(raw)) {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw) + 16)

	inString := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if c == '"' {
			// count preceding backslashes to tell whether this quote is escaped
			backslashes := 0
			for j := i - 1; j >= 0 && raw[j] == '\\'; j-- {
				backslashes++
			}
			if backslashes%2 == 0 {
				inString = !inString
			}
			b.WriteByte(c)
			continue
		}

		if !inString {
			b.WriteByte(c)
			continue
		}

		switch c {
		case '\\':
			if i+1 < len(raw) && raw[i+1] == '\\' {
				b.WriteString(`\\`)
				i++
			} else if i+1 < len(raw) && strings.ContainsRune(`"ntrbf/u`, rune(raw[i+1])) {
				b.WriteByte('\\')
				b.WriteByte(raw[i+1])
				i++
			} else {
				b.WriteString(`\\`)
			}
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// repairJSON tries to fix a truncated response: closes an unterminated
// string, strips a trailing comma and closes open brackets and braces in
// nesting order. Returns the repaired string and whether it parses.
func repairJSON(raw string) (string, bool) {
	repaired := strings.TrimSpace(raw)

	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(repaired); i++ {
		c := repaired[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if inString {
		repaired += `"`
	}

	repaired = strings.TrimRight(repaired, " \t\n\r")
	repaired = strings.TrimSuffix(repaired, ",")

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			repaired += "}"
		} else {
			repaired += "]"
		}
	}

	return repaired, json.Valid([]byte(repaired))
}
