package utils

import "strings"

// NormalizeIdentifier converts the name of an identifier (a Go parameter or function name) to a valid
// one: only letters, digits, and underscores are allowed.
//
// Invalid characters are replaced with underscores.
// If the name starts with a digit, it is prefixed with an underscore.
func NormalizeIdentifier(name string) string {
	if name == "" {
		return ""
	}
	result := make([]rune, 0, len(name)+1)
	if name[0] >= '0' && name[0] <= '9' {
		result = append(result, '_')
	}
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}

// NormalizeNodeName converts a node name (or a scope namespace) to a valid one: letters, digits, '_', '.'
// and '-' are kept, anything else is replaced with an underscore.
//
// Names cannot start with '_' or '-', in which case they are prefixed with "n".
func NormalizeNodeName(name string) string {
	if name == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(name) + 1)
	if name[0] == '_' || name[0] == '-' {
		sb.WriteByte('n')
	}
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
			r == '_' || r == '.' || r == '-' {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
