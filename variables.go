package tcss

import (
	"strings"

	"go.uber.org/zap"
)

// stripComments blanks /* ... */ spans with spaces so byte offsets and
// line positions survive for error reporting. Comments do not nest.
func stripComments(src string) (string, *SyntaxError) {
	out := []byte(src)
	i := 0
	for i < len(out) {
		if out[i] == '/' && i+1 < len(out) && out[i+1] == '*' {
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				line, col := position(src, i)
				return "", &SyntaxError{line, col, "unclosed comment"}
			}
			for j := i; j < i+2+end+2; j++ {
				if out[j] != '\n' {
					out[j] = ' '
				}
			}
			i += 2 + end + 2
			continue
		}
		i++
	}
	return string(out), nil
}

// position converts a byte offset to a 1-based line and column.
func position(src string, offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func isIdentByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-' || b == '_'
}

// extractVariables pulls top-level `$name: value;` definitions out of the
// source and returns the remaining text plus the definition table.
// Definitions may reference earlier definitions.
func extractVariables(src string) (string, map[string]string) {
	vars := map[string]string{}
	var out strings.Builder
	depth := 0
	i := 0
	for i < len(src) {
		b := src[i]
		switch b {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '$':
			if depth == 0 {
				j := i + 1
				for j < len(src) && isIdentByte(src[j]) {
					j++
				}
				name := src[i+1 : j]
				k := j
				for k < len(src) && (src[k] == ' ' || src[k] == '\t') {
					k++
				}
				if name != "" && k < len(src) && src[k] == ':' {
					end := strings.IndexByte(src[k:], ';')
					if end >= 0 {
						value := strings.TrimSpace(src[k+1 : k+end])
						vars[name] = substituteVariables(value, vars)
						// Blank the definition so later error
						// positions stay meaningful.
						for ; i <= k+end; i++ {
							if src[i] == '\n' {
								out.WriteByte('\n')
							} else {
								out.WriteByte(' ')
							}
						}
						continue
					}
				}
			}
		}
		out.WriteByte(b)
		i++
	}
	return out.String(), vars
}

// substituteVariables replaces $name references textually. References to
// undefined names are left in place; a color value may still resolve them
// from the theme, anything else fails that one declaration.
func substituteVariables(src string, vars map[string]string) string {
	if !strings.ContainsRune(src, '$') {
		return src
	}
	var out strings.Builder
	i := 0
	for i < len(src) {
		if src[i] == '$' {
			j := i + 1
			for j < len(src) && isIdentByte(src[j]) {
				j++
			}
			name := src[i+1 : j]
			if v, ok := vars[name]; ok {
				out.WriteString(v)
				i = j
				continue
			}
			logger.Debug("unresolved stylesheet variable", zap.String("name", name))
		}
		out.WriteByte(src[i])
		i++
	}
	return out.String()
}
